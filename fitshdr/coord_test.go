// Public domain.

package fitshdr_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/fitsmod/fitshdr"
	"github.com/soniakeys/unit"
)

var raTestCases = []struct {
	in  string
	deg float64
}{
	{"12:30:45.0", 187.6875},
	{"12 30 45", 187.6875},
	{"0:0:0", 0},
	{"6:30", 97.5},
	{"23:59:59.9999", 359.99999958333333},
	{"187.6875", 187.6875},
	{"0", 0},
}

func TestParseRA(t *testing.T) {
	for _, c := range raTestCases {
		ra, err := fitshdr.ParseRA(c.in)
		switch {
		case err != nil:
			t.Fatal(c.in, err)
		case math.Abs(ra.Deg()-c.deg) > 1e-9:
			t.Fatal("bad RA", c.in, "got", ra.Deg(), "want", c.deg)
		}
	}
}

var badRA = []string{
	"", "x", "24:00:00", "-1:00:00", "12:60:00", "12:30:60",
	"360", "-0.5", "1:2:3:4",
}

func TestParseRABad(t *testing.T) {
	for _, s := range badRA {
		if _, err := fitshdr.ParseRA(s); err == nil {
			t.Fatal("accepted", s)
		} else if _, ok := err.(fitshdr.FormatError); !ok {
			t.Fatal("wrong error type for", s, err)
		}
	}
}

var decTestCases = []struct {
	in  string
	deg float64
}{
	{"+41:16:09", 41 + 16./60 + 9./3600},
	{"41:16:09", 41 + 16./60 + 9./3600},
	{"-05:30:00", -5.5},
	{"-5 30 0", -5.5},
	{"-0:30:00", -.5},
	{"90:00:00", 90},
	{"-90 00 00", -90},
	{"41.26917", 41.26917},
	{"-41.26917", -41.26917},
}

func TestParseDec(t *testing.T) {
	for _, c := range decTestCases {
		dec, err := fitshdr.ParseDec(c.in)
		switch {
		case err != nil:
			t.Fatal(c.in, err)
		case math.Abs(dec.Deg()-c.deg) > 1e-9:
			t.Fatal("bad declination", c.in, "got", dec.Deg(), "want", c.deg)
		}
	}
}

var badDec = []string{
	"", "x", "91:00:00", "90:00:00.1", "12:60:00", "12:30:60",
	"90.1", "-90.5", "--5", "+",
}

func TestParseDecBad(t *testing.T) {
	for _, s := range badDec {
		if _, err := fitshdr.ParseDec(s); err == nil {
			t.Fatal("accepted", s)
		}
	}
}

// sexagesimal through degrees and back must hold to 1e-6 degrees.
func TestRoundTrip(t *testing.T) {
	for _, c := range raTestCases {
		ra, err := fitshdr.ParseRA(c.in)
		if err != nil {
			t.Fatal(c.in, err)
		}
		ra2, err := fitshdr.ParseRA(fitshdr.FormatRA(unit.RAFromDeg(ra.Deg())))
		if err != nil {
			t.Fatal(c.in, err)
		}
		if math.Abs(ra2.Deg()-ra.Deg()) > 1e-6 {
			t.Fatal("RA round trip", c.in, ra.Deg(), ra2.Deg())
		}
	}
	for _, c := range decTestCases {
		dec, err := fitshdr.ParseDec(c.in)
		if err != nil {
			t.Fatal(c.in, err)
		}
		dec2, err := fitshdr.ParseDec(fitshdr.FormatDec(unit.AngleFromDeg(dec.Deg())))
		if err != nil {
			t.Fatal(c.in, err)
		}
		if math.Abs(dec2.Deg()-dec.Deg()) > 1e-6 {
			t.Fatal("declination round trip", c.in, dec.Deg(), dec2.Deg())
		}
	}
}

func TestFormat(t *testing.T) {
	formatCases := []struct {
		got, want string
	}{
		{fitshdr.FormatRA(unit.RAFromDeg(187.6875)), "12:30:45.0000"},
		{fitshdr.FormatRA(unit.RAFromDeg(0)), "00:00:00.0000"},
		{fitshdr.FormatDec(unit.AngleFromDeg(-5.5)), "-05:30:00.000"},
		{fitshdr.FormatDec(unit.AngleFromDeg(90)), "+90:00:00.000"},
		{fitshdr.FormatDec(unit.AngleFromDeg(0)), "+00:00:00.000"},
	}
	for _, c := range formatCases {
		if c.got != c.want {
			t.Fatal("got", c.got, "want", c.want)
		}
	}
}

func ExampleParseRA() {
	ra, err := fitshdr.ParseRA("12:30:45.0")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f\n", ra.Deg())
	// Output:
	// 187.6875
}

func ExampleParseEqua() {
	eq, err := fitshdr.ParseEqua("12 30 45", "-5 30 0")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.4f %.4f\n", eq.RA.Deg(), eq.Dec.Deg())
	// Output:
	// 187.6875 -5.5000
}
