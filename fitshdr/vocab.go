// Public domain.

package fitshdr

import "strings"

// Filters lists the accepted FILTER band codes.
var Filters = []struct {
	Code, Name string
}{
	{"U", "Johnson U"},
	{"B", "Johnson B"},
	{"V", "Johnson V"},
	{"R", "Cousins R"},
	{"I", "Cousins I"},
	{"J", "NIR 1.2 micron"},
	{"H", "NIR 1.6 micron"},
	{"K", "NIR 2.2 micron"},
	{"SU", "Sloan u"},
	{"SG", "Sloan g"},
	{"SR", "Sloan r"},
	{"SI", "Sloan i"},
	{"SZ", "Sloan z"},
	{"TB", "tricolor blue"},
	{"TG", "tricolor green"},
	{"TR", "tricolor red"},
	{"CV", "clear, V zero point"},
	{"CR", "clear, R zero point"},
	{"HA", "H-alpha"},
	{"HAC", "H-alpha continuum"},
}

// ValidFilter reports whether code is an accepted FILTER band code.
func ValidFilter(code string) bool {
	for _, b := range Filters {
		if b.Code == code {
			return true
		}
	}
	return false
}

// FilterCodes returns the accepted band codes as a single spaced string.
func FilterCodes() string {
	cs := make([]string, len(Filters))
	for i, b := range Filters {
		cs[i] = b.Code
	}
	return strings.Join(cs, " ")
}

// CalStats lists the accepted CALSTAT values: the calibration steps applied
// to an image, B bias, D dark, F flat, in that order.
var CalStats = []string{"B", "D", "F", "BD", "BF", "DF", "BDF"}

// ValidCalStat reports whether s is an accepted CALSTAT value.
func ValidCalStat(s string) bool {
	for _, c := range CalStats {
		if c == s {
			return true
		}
	}
	return false
}
