package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const parentImport = "github.com/soniakeys/fitsmod"
const versionString = "renum version 0.1"
const copyrightString = "Public domain."

var dir string
var offset int
var ignored int

// a name is a digit-free prefix, a frame number, and an extension,
// nothing more.
var frame = regexp.MustCompile(`^(\D+)(\d+)\.(\w+)$`)

func main() {
	// parse command line
	flag.Usage = func() {
		os.Stderr.WriteString("Usage: renum [options] [file ...]\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc ` + parentImport + `/renum
`)
	}
	flag.StringVar(&dir, "d", "temp", "destination directory")
	flag.IntVar(&offset, "o", 0, "offset subtracted from frame numbers")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	// collect candidate names
	files := flag.Args()
	if len(files) == 0 {
		fis, err := ioutil.ReadDir(".")
		if err != nil {
			log.Fatalln(err)
		}
		for _, fi := range fis {
			if !fi.IsDir() {
				files = append(files, fi.Name())
			}
		}
	}
	// copy under shifted names
	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalln(err)
	}
	copied := 0
	for _, fn := range files {
		nn, ok := newName(filepath.Base(fn), offset)
		if !ok {
			ignored++
			continue
		}
		b, err := ioutil.ReadFile(fn)
		if err != nil {
			log.Fatalln(fn+":", err)
		}
		if err = ioutil.WriteFile(filepath.Join(dir, nn), b, 0644); err != nil {
			log.Fatalln(err)
		}
		copied++
	}
	fmt.Println("Copied to "+dir+":", copied)
	if ignored != 0 {
		fmt.Println("Ignored:", ignored)
	}
}

// newName returns the copy name for fn: the frame number less the offset,
// leading zeros stripped, all lower case.  ok is false for names not in
// sequence form and for numbers that would go negative.
func newName(fn string, offset int) (string, bool) {
	m := frame.FindStringSubmatch(fn)
	if m == nil {
		return "", false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil || n < offset {
		return "", false
	}
	return strings.ToLower(fmt.Sprintf("%s%d.%s", m[1], n-offset, m[3])), true
}
