// Public domain.

package fitshdr

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

const (
	raWant  = "sexagesimal hours or decimal degrees"
	decWant = "signed sexagesimal or decimal degrees"
)

// coordinate strings split on colons or white space.
func sexaFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ':' || r == ' ' || r == '\t'
	})
}

// ParseRA interprets s as a right ascension.  Accepted forms are
// sexagesimal hours with colon or space separators, H:M:S.s or H:M, and a
// single number taken as decimal degrees.
func ParseRA(s string) (unit.RA, error) {
	f := sexaFields(strings.TrimSpace(s))
	switch len(f) {
	case 1:
		d, err := strconv.ParseFloat(f[0], 64)
		if err != nil || d < 0 || d >= 360 {
			return 0, FormatError{KeyRA, s, raWant}
		}
		return unit.RAFromDeg(d), nil
	case 2, 3:
		var h, m int
		var sec float64
		h, err := strconv.Atoi(f[0])
		if err == nil {
			m, err = strconv.Atoi(f[1])
			if err == nil && len(f) == 3 {
				sec, err = strconv.ParseFloat(f[2], 64)
			}
		}
		if err != nil || h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec >= 60 {
			return 0, FormatError{KeyRA, s, raWant}
		}
		return unit.NewRA(h, m, sec), nil
	}
	return 0, FormatError{KeyRA, s, raWant}
}

// ParseDec interprets s as a declination.  Accepted forms are sexagesimal
// degrees with an optional sign and colon or space separators, and a single
// signed number taken as decimal degrees.
func ParseDec(s string) (unit.Angle, error) {
	t := strings.TrimSpace(s)
	neg := byte(' ')
	if len(t) > 0 {
		switch t[0] {
		case '-':
			neg = '-'
			t = t[1:]
		case '+':
			t = t[1:]
		}
	}
	f := sexaFields(t)
	switch len(f) {
	case 1:
		d, err := strconv.ParseFloat(f[0], 64)
		if err != nil || d < 0 || d > 90 {
			return 0, FormatError{KeyDec, s, decWant}
		}
		if neg == '-' {
			d = -d
		}
		return unit.AngleFromDeg(d), nil
	case 2, 3:
		var d, m int
		var sec float64
		d, err := strconv.Atoi(f[0])
		if err == nil {
			m, err = strconv.Atoi(f[1])
			if err == nil && len(f) == 3 {
				sec, err = strconv.ParseFloat(f[2], 64)
			}
		}
		if err != nil || d < 0 || d > 90 || m < 0 || m > 59 || sec < 0 || sec >= 60 {
			return 0, FormatError{KeyDec, s, decWant}
		}
		if d == 90 && (m > 0 || sec > 0) {
			return 0, FormatError{KeyDec, s, decWant}
		}
		return unit.NewAngle(neg, d, m, sec), nil
	}
	return 0, FormatError{KeyDec, s, decWant}
}

// ParseEqua parses a right ascension and declination pair.
func ParseEqua(ra, dec string) (coord.Equa, error) {
	var eq coord.Equa
	r, err := ParseRA(ra)
	if err != nil {
		return eq, err
	}
	d, err := ParseDec(dec)
	if err != nil {
		return eq, err
	}
	eq.RA = r
	eq.Dec = d
	return eq, nil
}

// FormatRA renders ra in the colon separated interchange form HH:MM:SS.ssss.
// Precision is a tenth of a millisecond of time, fine enough that a parsed
// value reformats within 1e-6 degrees.
func FormatRA(ra unit.RA) string {
	// tenths of milliseconds of time for exact carries
	n := int64(math.Round(ra.Hour() * 36e6))
	const day = 24 * 36e6
	n %= day
	if n < 0 {
		n += day
	}
	sec := float64(n%6e5) / 1e4
	m := n / 6e5 % 60
	h := n / 36e6
	return fmt.Sprintf("%02d:%02d:%07.4f", h, m, sec)
}

// FormatDec renders a in the colon separated interchange form +DD:MM:SS.sss.
func FormatDec(a unit.Angle) string {
	// milliarcseconds for exact carries
	n := int64(math.Round(a.Deg() * 36e5))
	sign := "+"
	if n < 0 {
		sign = "-"
		n = -n
	}
	sec := float64(n%6e4) / 1e3
	m := n / 6e4 % 60
	d := n / 36e5
	return fmt.Sprintf("%s%02d:%02d:%06.3f", sign, d, m, sec)
}
