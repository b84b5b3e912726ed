// Public domain.

package fitshdr_test

import (
	"math"
	"testing"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/fitsmod/fitshdr"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// an observer on the equator with the target crossing the zenith
func TestAirmassZenith(t *testing.T) {
	jd := 2458864.
	lst := sidereal.Mean(jd).Hour()
	eq := coord.Equa{RA: unit.RAFromHour(lst)}
	x, err := fitshdr.Airmass(jd, 0, 0, eq)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-1) > 1e-9 {
		t.Fatal("zenith airmass", x)
	}
}

// hour angle 60 degrees at the equator puts the target at zenith
// distance 60, sec z exactly 2
func TestAirmassSecZ2(t *testing.T) {
	jd := 2458864.
	lst := sidereal.Mean(jd).Hour()
	eq := coord.Equa{RA: unit.RAFromHour(lst - 4)}
	x, err := fitshdr.Airmass(jd, 0, 0, eq)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(x-1.9945) > 1e-9 {
		t.Fatal("airmass at sec z 2:", x)
	}
}

func TestAirmassBelowHorizon(t *testing.T) {
	jd := 2458864.
	lst := sidereal.Mean(jd).Hour()
	eq := coord.Equa{RA: unit.RAFromHour(lst + 12)}
	_, err := fitshdr.Airmass(jd, 0, 0, eq)
	if err == nil {
		t.Fatal("accepted a target below the horizon")
	}
	if _, ok := err.(fitshdr.UnsupportedValueError); !ok {
		t.Fatal("wrong error type:", err)
	}
}

// the pole holds a constant altitude equal to the site latitude, so the
// computed value is independent of the observation time
func TestComputeAirmass(t *testing.T) {
	lat, lon := 42., -71.
	n := mustNormalizer(t, fitshdr.Config{
		AdjustTime:     true,
		ComputeAirmass: true,
		SiteLat:        &lat,
		SiteLong:       &lon,
	})
	out, err := n.Apply(fitshdr.NewBlock([]fitshdr.Card{
		{Keyword: "DATE-OBS", Value: "2020-01-15T03:45:12"},
		{Keyword: "EXPTIME", Value: 30.},
		{Keyword: "RA", Value: "02:31:49.1"},
		{Keyword: "DEC", Value: 90.},
	}))
	if err != nil {
		t.Fatal(err)
	}
	am, err := out.Float("AIRMASS")
	if err != nil || am != 1.493 {
		t.Fatal("bad AIRMASS:", am, err)
	}
}

// without time processing the midpoint for the airmass comes from the
// header times directly
func TestComputeAirmassNoJD(t *testing.T) {
	lat, lon := 42., -71.
	n := mustNormalizer(t, fitshdr.Config{
		ComputeAirmass: true,
		SiteLat:        &lat,
		SiteLong:       &lon,
	})
	out, err := n.Apply(fitshdr.NewBlock([]fitshdr.Card{
		{Keyword: "DATE-OBS", Value: "2020-01-15"},
		{Keyword: "UT-START", Value: "03:45:12"},
		{Keyword: "RA", Value: 187.6875},
		{Keyword: "DEC", Value: 90.},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if am, err := out.Float("AIRMASS"); err != nil || am != 1.493 {
		t.Fatal("bad AIRMASS:", am, err)
	}
	// derived only, header times left alone
	if !out.Has("UT-START") || out.Has("JD") {
		t.Fatal("airmass derivation edited time keywords")
	}
}
