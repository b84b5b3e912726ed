// Public domain.

package fmprog

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/soniakeys/exit"
	"github.com/soniakeys/fitsmod/fitshdr"
)

const versionString = "fitsmod version 0.2 Go source."
const copyrightString = "Public domain."

func Main() {
	defer exit.Handler()

	// these functions all set up package vars and terminate on error
	cl := parseCommandLine()
	st := readConfig(cl)
	nzr := makeNormalizer(cl, st)

	files := expandArgs(flag.Args())
	failed := 0
	for _, fn := range files {
		if err := processFile(cl, nzr, fn); err != nil {
			log.Println(fn+":", err)
			failed++
		}
	}
	if failed > 0 {
		exit.Log(fmt.Sprintf("%d of %d files failed", failed, len(files)))
	}
}

type commandLine struct {
	fc string // site config file
	w  string // output directory
	n  bool   // dry run
	vb bool   // verbose

	j   bool   // time processing
	m   bool   // midpoint to DATE-OBS
	i   string // IRIS date
	do  string // DATE-OBS override
	mp  string // MIDPOINT override
	jd  string // JD override
	r   string // RA
	d   string // declination
	o   string // object
	f   string // filter
	c   string // calstat
	a   string // airmass
	am  bool   // compute airmass
	e   string // exposure seconds
	t   string // timezone offset hours
	lat string // site latitude
	lon string // site east longitude
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.BoolVar(&cl.j, "j", false, "")
	flag.StringVar(&cl.t, "t", "", "")
	flag.StringVar(&cl.e, "e", "", "")
	flag.BoolVar(&cl.m, "m", false, "")
	flag.StringVar(&cl.i, "i", "", "")
	flag.StringVar(&cl.do, "D", "", "")
	flag.StringVar(&cl.mp, "M", "", "")
	flag.StringVar(&cl.jd, "J", "", "")
	flag.StringVar(&cl.r, "r", "", "")
	flag.StringVar(&cl.d, "d", "", "")
	flag.StringVar(&cl.o, "o", "", "")
	flag.StringVar(&cl.f, "f", "", "")
	flag.StringVar(&cl.c, "c", "", "")
	flag.StringVar(&cl.a, "a", "", "")
	flag.BoolVar(&cl.am, "A", false, "")
	flag.StringVar(&cl.lat, "lat", "", "")
	flag.StringVar(&cl.lon, "long", "", "")
	flag.StringVar(&cl.fc, "C", "", "")
	flag.StringVar(&cl.w, "w", "", "")
	flag.BoolVar(&cl.n, "n", false, "")
	flag.BoolVar(&cl.vb, "V", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: fitsmod [options] <fits-file> ...   edit FITS primary headers
       fitsmod -h                          display help and quick reference
       fitsmod -v                          display version and copyright

Options:
       -j                observation time processing
       -t <hours>        timezone offset added to recorded times
       -e <seconds>      exposure time
       -m                write mid-exposure time to DATE-OBS
       -i <yyyy-mm-dd>   rewrite DATE-OBS in IRIS DD/MM/YYYY form
       -D <datetime>     DATE-OBS override
       -M <datetime>     MIDPOINT override
       -J <jd>           JD override
       -r <ra>           RA override, sexagesimal or degrees
       -d <dec>          declination override, sexagesimal or degrees
       -o <name>         OBJECT override
       -f <band>         FILTER override
       -c <calstat>      CALSTAT override
       -a <airmass>      AIRMASS override
       -A                compute AIRMASS from site and midpoint
       -lat <degrees>    site latitude
       -long <degrees>   site east longitude
       -C <config-file>  site config file
       -w <dir>          write edited copies here instead of in place
       -n                show edits without writing
       -V                report each edit
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	case flag.NArg() == 0:
		flag.Usage()
		os.Exit(1)
	}
	return &cl
}

// observatory constants from the site config file.
type site struct {
	lat, lon, tz *float64
}

func readConfig(cl *commandLine) *site {
	st := new(site)
	fn := cl.fc
	if fn == "" {
		fn = "fitsmod.config"
	}
	f, err := os.Open(fn)
	if err != nil {
		if cl.fc == "" {
			return st // the default config file is optional
		}
		exit.Log(err)
	}
	defer f.Close()
	rxKV := regexp.MustCompile(`^[ \t]*(.*?)[ \t]*=[ \t]*(.+)$`)
	for lr := bufio.NewReader(f); ; {
		l, isPre, err := lr.ReadLine()
		switch {
		case err == io.EOF:
			return st
		case err != nil:
			exit.Log(err)
		case isPre:
			exit.Log("Unexpected long line in config file.")
		case len(l) == 0:
			continue
		case l[0] == '#':
			continue
		}
		ls := string(l)
		ss := rxKV.FindStringSubmatch(ls)
		if len(ss) != 3 {
			exit.Log("Unrecognized line in config file: " + ls)
		}
		v, err := strconv.ParseFloat(ss[2], 64)
		if err != nil {
			exit.Log(fmt.Sprintf("%s\nConfig file line: %s", err, ls))
		}
		switch ss[1] {
		case "latitude":
			st.lat = &v
		case "longitude":
			st.lon = &v
		case "tzoffset":
			st.tz = &v
		default:
			exit.Log("Unrecognized line in config file: " + ls)
		}
	}
}

// builds the header normalizer from flags and site constants.  flags win
// over the config file.
func makeNormalizer(cl *commandLine, st *site) *fitshdr.Normalizer {
	cfg := fitshdr.Config{
		AdjustTime:     cl.j,
		UseMidpoint:    cl.m,
		IrisDate:       cl.i,
		DateObs:        cl.do,
		Midpoint:       cl.mp,
		RA:             cl.r,
		Dec:            cl.d,
		Object:         cl.o,
		Filter:         cl.f,
		CalStat:        cl.c,
		ComputeAirmass: cl.am,
		SiteLat:        st.lat,
		SiteLong:       st.lon,
	}
	if st.tz != nil {
		cfg.TZOffset = *st.tz
	}
	cfg.TZOffset = floatFlag(cl.t, "-t", cfg.TZOffset)
	if cl.e > "" {
		v := floatFlag(cl.e, "-e", 0)
		cfg.ExpTime = &v
	}
	if cl.jd > "" {
		v := floatFlag(cl.jd, "-J", 0)
		cfg.JD = &v
	}
	if cl.a > "" {
		v := floatFlag(cl.a, "-a", 0)
		cfg.Airmass = &v
	}
	if cl.lat > "" {
		v := floatFlag(cl.lat, "-lat", 0)
		cfg.SiteLat = &v
	}
	if cl.lon > "" {
		v := floatFlag(cl.lon, "-long", 0)
		cfg.SiteLong = &v
	}
	nzr, err := fitshdr.NewNormalizer(cfg)
	if err != nil {
		exit.Log(err)
	}
	return nzr
}

func floatFlag(s, name string, dflt float64) float64 {
	if s == "" {
		return dflt
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		exit.Log(fmt.Sprintf("%s: %v", name, err))
	}
	return v
}

// each argument may be a glob pattern.  patterns matching nothing are kept
// literally so the per-file open reports the problem.
func expandArgs(args []string) []string {
	var files []string
	for _, a := range args {
		m, err := filepath.Glob(a)
		if err != nil || len(m) == 0 {
			files = append(files, a)
			continue
		}
		files = append(files, m...)
	}
	return files
}

// reportEdits prints the keyword changes between the original and edited
// blocks.
func reportEdits(fn string, before, after *fitshdr.Block) {
	for _, c := range after.Cards() {
		old, ok := before.Get(c.Keyword)
		switch {
		case !ok:
			fmt.Printf("%s: add %s = %s\n", fn, c.Keyword, valStr(c.Value))
		case valStr(old.Value) != valStr(c.Value):
			fmt.Printf("%s: set %s = %s (was %s)\n",
				fn, c.Keyword, valStr(c.Value), valStr(old.Value))
		}
	}
	for _, c := range before.Cards() {
		if !after.Has(c.Keyword) {
			fmt.Printf("%s: remove %s (was %s)\n", fn, c.Keyword, valStr(c.Value))
		}
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

func printHelp() {
	fmt.Println(`
Fitsmod prepares FITS image headers for photometry software.  It folds
split date and time keywords into a single ISO 8601 DATE-OBS, writes the
mid-exposure time as MIDPOINT and its Julian date as JD, and sets or
overrides the keywords photometric reduction reads: RA, DEC, OBJECT,
FILTER, EXPTIME, AIRMASS and CALSTAT.

With -j, DATE-OBS and UT-START are combined when DATE-OBS carries no time
of day, the -t offset is added, MIDPOINT and JD are written for the
exposure midpoint, and UT-START is removed.  The offset is added to the
recorded time as is: clocks recorded in local time need the negation of
the site's UTC offset.

Coordinates given to -r and -d accept colon or space separated sexagesimal
and decimal degrees.  Both are stored in decimal degrees.

Each file argument may be a glob pattern.  Files are edited in place
through a temporary file, or copied to the -w directory.  A file that
fails leaves the original untouched and does not stop the batch.

Config file keywords (fitsmod.config):
   latitude
   longitude
   tzoffset

FILTER bands:`)
	for _, b := range fitshdr.Filters {
		fmt.Printf("   %-3s  %s\n", b.Code, b.Name)
	}
	fmt.Println(`
CALSTAT values (B bias, D dark, F flat):
   ` + strings.Join(fitshdr.CalStats, " ") + `

For full documentation:
   go doc github.com/soniakeys/fitsmod`)
}
