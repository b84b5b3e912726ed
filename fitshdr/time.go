// Public domain.

package fitshdr

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	dateObsWant = "YYYY-MM-DD, DD/MM/YYYY, or an ISO 8601 datetime"
	clockWant   = "HH:MM or HH:MM:SS.s"
)

// an instant along with the fractional second digits of its source text.
type obsTime struct {
	t    time.Time
	prec int
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// parseDate interprets a date without time of day: ISO YYYY-MM-DD or the
// legacy camera form DD/MM/YYYY.  Legacy two digit years are 1900 based.
func parseDate(s string) (y, m, d int, ok bool) {
	var f []string
	legacy := strings.ContainsRune(s, '/')
	if legacy {
		f = strings.Split(s, "/")
	} else {
		f = strings.Split(s, "-")
	}
	if len(f) != 3 {
		return
	}
	a, err1 := strconv.Atoi(f[0])
	b, err2 := strconv.Atoi(f[1])
	c, err3 := strconv.Atoi(f[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return
	}
	if legacy {
		y, m, d = c, b, a
		if y < 100 {
			y += 1900
		}
	} else {
		y, m, d = a, b, c
	}
	if y < 1 || m < 1 || m > 12 || d < 1 || d > 31 {
		return 0, 0, 0, false
	}
	if date(y, m, d).Day() != d {
		// time.Date normalized it away, no such day in the month
		return 0, 0, 0, false
	}
	return y, m, d, true
}

// parseClock interprets an HH:MM[:SS.s] time of day, returning elapsed time
// since midnight and the count of fractional second digits present.
func parseClock(s string) (time.Duration, int, bool) {
	f := strings.Split(strings.TrimSpace(s), ":")
	if len(f) != 2 && len(f) != 3 {
		return 0, 0, false
	}
	var h, m int
	var sec float64
	prec := 0
	h, err := strconv.Atoi(f[0])
	if err == nil {
		m, err = strconv.Atoi(f[1])
		if err == nil && len(f) == 3 {
			if i := strings.IndexByte(f[2], '.'); i >= 0 {
				prec = len(f[2]) - i - 1
			}
			sec, err = strconv.ParseFloat(f[2], 64)
		}
	}
	if err != nil || h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec >= 60 {
		return 0, 0, false
	}
	d := time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(math.Round(sec*float64(time.Second)))
	return d, prec, true
}

// parseDateObs interprets a DATE-OBS value.  A value containing 'T' is a
// full datetime; anything else is a date only and full is false.
func parseDateObs(s string) (ot obsTime, full, ok bool) {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		y, m, d, ok := parseDate(s[:i])
		if !ok {
			return obsTime{}, false, false
		}
		clock, prec, ok := parseClock(s[i+1:])
		if !ok {
			return obsTime{}, false, false
		}
		return obsTime{date(y, m, d).Add(clock), prec}, true, true
	}
	y, m, d, ok := parseDate(s)
	if !ok {
		return obsTime{}, false, false
	}
	return obsTime{t: date(y, m, d)}, false, true
}

// formatISO renders t as an ISO 8601 datetime carrying at least prec
// fractional second digits, extended while trailing digits are nonzero.
// Six digits maximum.
func formatISO(t time.Time, prec int) string {
	need := 0
	if ns := t.Nanosecond(); ns != 0 {
		need = 9
		for need > 6 || need > 0 && ns%10 == 0 {
			ns /= 10
			need--
		}
	}
	if need < prec {
		need = prec
	}
	if need == 0 {
		return t.Format("2006-01-02T15:04:05")
	}
	return t.Format("2006-01-02T15:04:05." + strings.Repeat("0", need))
}

// jdOf returns the Julian date of t on the UTC scale.
func jdOf(t time.Time) float64 {
	t = t.UTC()
	frac := (float64(t.Hour())*3600 + float64(t.Minute())*60 +
		float64(t.Second()) + float64(t.Nanosecond())*1e-9) / 86400
	return julian.CalendarGregorianToJD(t.Year(), int(t.Month()), float64(t.Day())+frac)
}
