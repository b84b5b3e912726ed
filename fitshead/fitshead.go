package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/astrogo/fitsio"
	"github.com/soniakeys/exit"
)

const parentImport = "github.com/soniakeys/fitsmod"
const versionString = "fitshead version 0.1"
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()
	flag.Usage = func() {
		os.Stderr.WriteString(`Usage:
   fitshead [options] <fits-file> ...
   fitshead -v

Options:
   -k <keywords>   comma separated keywords to print

For full documentation:
   go doc ` + parentImport + `/fitshead
`)
	}
	keys := flag.String("k", "", "")
	vers := flag.Bool("v", false, "")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	var want map[string]bool
	if *keys > "" {
		want = make(map[string]bool)
		for _, k := range strings.Split(*keys, ",") {
			want[strings.ToUpper(strings.TrimSpace(k))] = true
		}
	}
	for _, fn := range flag.Args() {
		dump(fn, want, flag.NArg() > 1)
	}
}

// dump prints the primary header cards of one file, in header order.
func dump(fn string, want map[string]bool, label bool) {
	fin, err := os.Open(fn)
	if err != nil {
		exit.Log(err)
	}
	defer fin.Close()
	f, err := fitsio.Open(fin)
	if err != nil {
		exit.Log(fn + ": " + err.Error())
	}
	defer f.Close()
	hdr := f.HDU(0).Header()
	seen := make(map[string]bool)
	for _, key := range hdr.Keys() {
		if seen[key] {
			continue
		}
		seen[key] = true
		if want != nil && !want[strings.ToUpper(key)] {
			continue
		}
		c := hdr.Get(key)
		if c == nil {
			continue
		}
		line := fmt.Sprintf("%-8s = %s", key, valStr(c.Value))
		if c.Comment > "" {
			line += " / " + c.Comment
		}
		if label {
			line = fn + ": " + line
		}
		fmt.Println(line)
	}
}

// valStr renders a card value the way it reads in the file.  Floats print
// fixed point, as FITS shows them, not in Go's exponent form.
func valStr(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(v)
}
