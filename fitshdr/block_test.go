// Public domain.

package fitshdr_test

import (
	"testing"

	"github.com/soniakeys/fitsmod/fitshdr"
)

func sampleBlock() *fitshdr.Block {
	return fitshdr.NewBlock([]fitshdr.Card{
		{Keyword: "DATE-OBS", Value: "2020-01-15", Comment: "start of exposure"},
		{Keyword: "FILTER", Value: "V"},
		{Keyword: "COMMENT", Comment: "first comment"},
		{Keyword: "FILTER", Value: "R", Comment: "duplicated keyword"},
		{Keyword: "EXPTIME", Value: 30.},
	})
}

func TestFirstOccurrence(t *testing.T) {
	b := sampleBlock()
	c, ok := b.Get("FILTER")
	switch {
	case !ok:
		t.Fatal("missing FILTER")
	case c.Value != "V":
		t.Fatal("Get returned later duplicate:", c.Value)
	}

	// edits address the first card, later duplicates ride along
	b.SetValue("FILTER", "B")
	cards := b.Cards()
	if cards[1].Value != "B" || cards[3].Value != "R" {
		t.Fatal("bad duplicate handling:", cards[1].Value, cards[3].Value)
	}

	// delete promotes the duplicate
	if !b.Delete("filter") {
		t.Fatal("Delete found nothing")
	}
	c, ok = b.Get("FILTER")
	if !ok || c.Value != "R" {
		t.Fatal("duplicate not promoted:", c.Value)
	}
}

func TestSetPreservesOrder(t *testing.T) {
	b := sampleBlock()
	b.SetValue("DATE-OBS", "2020-01-15T03:45:12")
	b.SetValue("JD", 2458863.65638889)
	cards := b.Cards()
	switch {
	case cards[0].Keyword != "DATE-OBS":
		t.Fatal("replaced card moved")
	case cards[0].Comment != "start of exposure":
		t.Fatal("SetValue dropped comment")
	case cards[len(cards)-1].Keyword != "JD":
		t.Fatal("new card not appended")
	}
	b.Set("DATE-OBS", "2020-01-16", "replaced")
	if c, _ := b.Get("DATE-OBS"); c.Comment != "replaced" {
		t.Fatal("Set kept old comment:", c.Comment)
	}
}

func TestCloneIndependent(t *testing.T) {
	b := sampleBlock()
	c := b.Clone()
	c.SetValue("EXPTIME", 60.)
	c.Delete("COMMENT")
	if v, _ := b.Get("EXPTIME"); v.Value != 30. {
		t.Fatal("clone edit leaked into original")
	}
	if !b.Has("COMMENT") {
		t.Fatal("clone delete leaked into original")
	}
}

func TestFloat(t *testing.T) {
	b := fitshdr.NewBlock([]fitshdr.Card{
		{Keyword: "A", Value: 30.},
		{Keyword: "B", Value: 30},
		{Keyword: "C", Value: " 12.5 "},
		{Keyword: "D", Value: "pears"},
	})
	for _, k := range []string{"A", "B"} {
		if f, err := b.Float(k); err != nil || f != 30 {
			t.Fatal(k, f, err)
		}
	}
	if f, err := b.Float("C"); err != nil || f != 12.5 {
		t.Fatal("C", f, err)
	}
	if _, err := b.Float("D"); err == nil {
		t.Fatal("accepted pears")
	} else if _, ok := err.(fitshdr.FormatError); !ok {
		t.Fatal("wrong error type:", err)
	}
	if _, err := b.Float("E"); err == nil {
		t.Fatal("accepted missing keyword")
	} else if _, ok := err.(fitshdr.MissingFieldError); !ok {
		t.Fatal("wrong error type:", err)
	}
}
