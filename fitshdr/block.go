// Public domain.

// Package fitshdr edits FITS primary headers for photometric processing.
//
// A header is modeled as a Block, an ordered list of cards with lookups
// addressing the first card of a keyword.  A Normalizer applies a validated
// set of edits to blocks: observation times folded into a single ISO 8601
// DATE-OBS with derived MIDPOINT and JD, coordinates stored as decimal
// degrees, and direct overrides for the keywords photometry software reads.
package fitshdr

import (
	"fmt"
	"strconv"
	"strings"
)

// Keywords consulted or written by the normalizer.
const (
	KeyDateObs  = "DATE-OBS"
	KeyUTStart  = "UT-START"
	KeyMidpoint = "MIDPOINT"
	KeyJD       = "JD"
	KeyRA       = "RA"
	KeyDec      = "DEC"
	KeyObject   = "OBJECT"
	KeyFilter   = "FILTER"
	KeyCalStat  = "CALSTAT"
	KeyExpTime  = "EXPTIME"
	KeyAirmass  = "AIRMASS"
)

// A Card is a single header record.  Value holds one of the FITS scalar
// types: string, bool, int, or float64.  A nil Value is a commentary or
// blank card.
type Card struct {
	Keyword string
	Value   interface{}
	Comment string
}

// A Block is the editable form of a FITS header: cards in file order plus
// an index of first occurrences.  Lookups and edits address the first card
// bearing a keyword; any later duplicates ride along untouched.
type Block struct {
	cards []Card
	first map[string]int
}

// NewBlock copies cards into a Block.
func NewBlock(cards []Card) *Block {
	b := &Block{cards: append([]Card{}, cards...)}
	b.reindex()
	return b
}

func (b *Block) reindex() {
	b.first = make(map[string]int, len(b.cards))
	for i, c := range b.cards {
		k := keyOf(c.Keyword)
		if _, ok := b.first[k]; !ok {
			b.first[k] = i
		}
	}
}

// keyword comparison is case insensitive, stored form is upper case.
func keyOf(keyword string) string {
	return strings.ToUpper(strings.TrimSpace(keyword))
}

// Len returns the number of cards, duplicates included.
func (b *Block) Len() int { return len(b.cards) }

// Cards returns the card list in order.  The returned slice is a copy.
func (b *Block) Cards() []Card {
	return append([]Card{}, b.cards...)
}

// Clone returns an independent copy of b.
func (b *Block) Clone() *Block {
	return NewBlock(b.cards)
}

// Get returns the first card bearing keyword.
func (b *Block) Get(keyword string) (Card, bool) {
	i, ok := b.first[keyOf(keyword)]
	if !ok {
		return Card{}, false
	}
	return b.cards[i], true
}

// Has reports whether any card bears keyword.
func (b *Block) Has(keyword string) bool {
	_, ok := b.first[keyOf(keyword)]
	return ok
}

// Set replaces the value and comment of the first card bearing keyword.
// When no card bears it, a new card is appended.
func (b *Block) Set(keyword string, value interface{}, comment string) {
	k := keyOf(keyword)
	if i, ok := b.first[k]; ok {
		b.cards[i].Value = value
		b.cards[i].Comment = comment
		return
	}
	b.first[k] = len(b.cards)
	b.cards = append(b.cards, Card{Keyword: k, Value: value, Comment: comment})
}

// SetValue is Set keeping the existing comment of the card, if any.
func (b *Block) SetValue(keyword string, value interface{}) {
	k := keyOf(keyword)
	if i, ok := b.first[k]; ok {
		b.cards[i].Value = value
		return
	}
	b.first[k] = len(b.cards)
	b.cards = append(b.cards, Card{Keyword: k, Value: value})
}

// Delete removes the first card bearing keyword, reporting whether a card
// was removed.  A later duplicate becomes the new first occurrence.
func (b *Block) Delete(keyword string) bool {
	i, ok := b.first[keyOf(keyword)]
	if !ok {
		return false
	}
	b.cards = append(b.cards[:i], b.cards[i+1:]...)
	b.reindex()
	return true
}

// StrVal returns the first value for keyword rendered as a string.
func (b *Block) StrVal(keyword string) (string, bool) {
	c, ok := b.Get(keyword)
	switch {
	case !ok:
		return "", false
	case c.Value == nil:
		return "", true
	}
	if s, ok := c.Value.(string); ok {
		return s, true
	}
	return fmt.Sprint(c.Value), true
}

// Float returns the first value for keyword as a float64.  Numeric strings
// are accepted.  A missing keyword is a MissingFieldError, a non-numeric
// value a FormatError.
func (b *Block) Float(keyword string) (float64, error) {
	c, ok := b.Get(keyword)
	if !ok {
		return 0, MissingFieldError{keyOf(keyword)}
	}
	switch v := c.Value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f, nil
		}
	}
	return 0, FormatError{keyOf(keyword), fmt.Sprint(c.Value), "a number"}
}
