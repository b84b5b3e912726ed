/*
Command fitsmod normalizes FITS image headers for photometric processing.

Contents

Version 0.2

  Program overview
  Installing from the Internet
  Command line usage
  Time processing
  Coordinates and airmass
  Site configuration file
  Keyword vocabularies
  Companion commands

Program overview

Amateur astronomical cameras and capture programs disagree on how an
image header records the observation.  Some write the time of day into
DATE-OBS, some put the date there and the time in UT-START, clocks may
run on local time, and coordinates appear as sexagesimal strings or as
degrees.  Photometric reduction software is far less forgiving than the
cameras.  Fitsmod rewrites the primary header of each file into one
consistent form: DATE-OBS as a full ISO 8601 datetime, the mid-exposure
time in MIDPOINT and its Julian date in JD, coordinates in decimal
degrees, and the remaining keywords photometry reads, OBJECT, FILTER,
EXPTIME, AIRMASS and CALSTAT, set or corrected from the command line.

Pixel data and keywords not named in the edits pass through unchanged.
Files are rewritten through a temporary file, so an error part way
through an edit leaves the original as it was.

Sample run:

Say xz.fit holds an unprocessed image.  The date and time of exposure
are split across two keywords, the camera clock was running five hours
behind UTC, and the coordinates are strings copied from the telescope.

  DATE-OBS= '2020-01-15'
  UT-START= '06:59:45'
  EXPTIME =                  30.
  RA      = '12:30:45'
  DEC     = '-05:30:00'

The -n option shows what an edit would do without writing anything:

  $ fitsmod -n -j -t 5 -f V -r 12:30:45 -d "-05:30:00" xz.fit
  xz.fit: set DATE-OBS = 2020-01-15T11:59:45 (was 2020-01-15)
  xz.fit: set RA = 187.6875 (was 12:30:45)
  xz.fit: set DEC = -5.5 (was -05:30:00)
  xz.fit: add MIDPOINT = 2020-01-15T12:00:00
  xz.fit: add JD = 2458864
  xz.fit: add FILTER = V
  xz.fit: remove UT-START (was 06:59:45)

The same command without -n performs the edit in place.  The -j option
requested time processing, -t 5 corrected the camera clock to UTC, and
the 30 second exposure put the midpoint 15 seconds after the start.

Installing from the Internet

You need Go installed and configured.  If you are new to Go, see
http://golang.org/ and http://golang.org/doc/install.  Then type

    go get github.com/soniakeys/fitsmod

This downloads, compiles and installs the fitsmod command and its
subordinate packages.  The companion commands described below install
the same way, for example

    go get github.com/soniakeys/fitsmod/fitshead

Command line usage

Invoking fitsmod without command line arguments (or with invalid
arguments) shows this usage prompt.

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

Each file argument may be a glob pattern, useful on systems where the
shell does not expand wildcards.  A file that fails to open or parse is
reported and skipped; the rest of the batch still runs, and fitsmod
exits nonzero at the end.

Options are validated as a set before any file is touched.  An invalid
coordinate or an unknown filter band stops the run with nothing edited.

Time processing

With -j, fitsmod determines the exposure start time as follows.  If
DATE-OBS contains a full datetime it is taken as is.  If it contains
only a date, the time of day is read from UT-START.  Legacy DD/MM/YYYY
dates are accepted; two digit years are taken in the 1900s.  The -t
offset, in hours, is then added to the result as is.  Times recorded on
a local clock convert to UTC with the negation of the site's UTC
offset: a camera clock at UTC-5 needs -t 5.

The exposure midpoint is the start plus half the exposure time, taken
from -e if given, else from the header EXPTIME, else zero.  Fitsmod
then writes DATE-OBS (the start, or the midpoint under -m), MIDPOINT,
and JD, and removes UT-START.  Fractional seconds keep the precision of
the source field, so a start time recorded to the millisecond does not
grow digits and one recorded to whole seconds does not lose them.

Time processing is idempotent.  Running fitsmod -j a second time over
an already folded header finds a full datetime in DATE-OBS, no
UT-START, and changes nothing.  In particular the -t offset is not
applied twice.

The -D, -M and -J options bypass processing and store their arguments
directly, for headers too mangled to repair any other way.  -i rewrites
DATE-OBS in the DD/MM/YYYY form the IRIS software expects, the one
conversion fitsmod performs away from ISO 8601.

Coordinates and airmass

The -r and -d options accept sexagesimal with colon or blank separators
(12:30:45, "12 30 45") or decimal degrees.  RA in sexagesimal is in
hours, minutes, seconds.  Whatever the input form, both are stored in
the header as decimal degrees, the form photometry packages read.

With -A, fitsmod computes the airmass at the exposure midpoint and
writes it to AIRMASS, rounded to three decimal places.  The computation
needs the site location, from -lat and -long or the config file, and
the target coordinates, from -r and -d or from RA and DEC already in
the header.  Sea level refraction-free airmass is computed with the
Hardie polynomial; a target below the horizon is an error for that
file.  -a instead stores a fixed airmass value without computation.

Site configuration file

Site constants can be kept in a small text file rather than repeated on
every command line.  Fitsmod reads fitsmod.config in the current
directory when it exists, or the file named with -C, which must exist.
Empty lines and lines beginning with # are ignored.  Other lines are
keyword = value pairs, values in decimal:

   latitude
   longitude
   tzoffset

Command line options take precedence over the file.  For example with

  # Sample config
  latitude = 31.9583
  longitude = -111.6

fitsmod -A needs no -lat or -long options.

Keyword vocabularies

The FILTER bands follow AAVSO single character and extended codes:

   Band  Meaning
   ----  -------------
   U     Johnson U
   B     Johnson B
   V     Johnson V
   R     Cousins R
   I     Cousins I
   J     NIR 1.2 micron
   H     NIR 1.6 micron
   K     NIR 2.2 micron
   SU    Sloan u
   SG    Sloan g
   SR    Sloan r
   SI    Sloan i
   SZ    Sloan z
   TB    tricolor blue
   TG    tricolor green
   TR    tricolor red
   CV    clear, V zero point
   CR    clear, R zero point
   HA    H-alpha
   HAC   H-alpha continuum

CALSTAT describes the calibration steps already applied to the image,
B bias, D dark, F flat, always in that order:

   B D F BD BF DF BDF

Band codes and CALSTAT values may be given in lower case; they are
stored upper case.  Anything else is rejected before the batch starts.

Companion commands

Three small commands are included with fitsmod.

Fitshead prints primary header cards, all of them or a named subset,
one per line in a form convenient for grep and diff:

  $ fitshead -k DATE-OBS,MIDPOINT,JD,RA,DEC xz.fit
  DATE-OBS = 2020-01-15T11:59:45
  MIDPOINT = 2020-01-15T12:00:00
  JD       = 2458864
  RA       = 187.6875
  DEC      = -5.5

Radec converts coordinates between sexagesimal and decimal degrees on
the command line, the same conversion fitsmod applies to -r and -d.

Renum renames numbered image sequences, offsetting the frame number,
for joining two nights' runs into one sequence.  See the full
documentation on each with, for example,

	go doc github.com/soniakeys/fitsmod/fitshead

-------------
Public domain.
*/
package main
