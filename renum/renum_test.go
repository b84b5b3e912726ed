package main

import "testing"

var nameTestCases = []struct {
	fn     string
	offset int
	want   string
	ok     bool
}{
	{"IMG0042.FIT", 12, "img30.fit", true},
	{"IMG0042.FIT", 0, "img42.fit", true},
	{"ccd123.fits", 23, "ccd100.fits", true},
	{"Frame_07.fit", 7, "frame_0.fit", true},
	{"flat.fit", 0, "", false},        // no frame number
	{"IMG0042.FIT.bak", 0, "", false}, // two extensions
	{"0042.fit", 0, "", false},        // no prefix
	{"IMG12a34.fit", 0, "", false},    // digits inside the prefix
	{"IMG005.FIT", 12, "", false},     // would go negative
}

func TestNewName(t *testing.T) {
	for _, c := range nameTestCases {
		got, ok := newName(c.fn, c.offset)
		if ok != c.ok {
			t.Fatal("name", c.fn, "offset", c.offset, "match", ok)
		}
		if got != c.want {
			t.Fatalf("name %s offset %d: got %s, want %s",
				c.fn, c.offset, got, c.want)
		}
	}
}
