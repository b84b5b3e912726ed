package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/soniakeys/fitsmod/fitshdr"
	"github.com/soniakeys/sexagesimal"
)

const parentImport = "github.com/soniakeys/fitsmod"
const versionString = "radec version 0.1"
const copyrightString = "Public domain."

var sym bool

func main() {
	// parse command line
	flag.Usage = func() {
		os.Stderr.WriteString("Usage: radec [options] <ra> <dec>\n")
		flag.PrintDefaults()
		os.Stderr.WriteString(`
For full documentation:
   go doc ` + parentImport + `/radec
`)
	}
	flag.BoolVar(&sym, "s", false, "display symbol form")
	vers := flag.Bool("v", false, "display version and copyright")
	flag.Parse()
	if *vers {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	// parse coordinates
	eq, err := fitshdr.ParseEqua(flag.Arg(0), flag.Arg(1))
	if err != nil {
		log.Fatalln(err)
	}
	// convert opposite to the input form
	if sexaForm(flag.Arg(0)) || sexaForm(flag.Arg(1)) {
		fmt.Printf("%.6f %.6f\n", eq.RA.Deg(), eq.Dec.Deg())
	} else {
		fmt.Println(fitshdr.FormatRA(eq.RA), fitshdr.FormatDec(eq.Dec))
	}
	if sym {
		fmt.Printf("%s %s\n", sexa.FmtRA(eq.RA), sexa.FmtAngle(eq.Dec))
	}
}

// sexaForm reports whether an argument is sexagesimal, that is, more than
// a single numeric field.
func sexaForm(arg string) bool {
	return strings.ContainsAny(arg, ": \t")
}
