/*
Command radec converts coordinates between sexagesimal and decimal degrees.

It applies the same conversion fitsmod applies to its -r and -d options,
so a coordinate can be checked on the command line before editing a
night's files with it.

  Usage: radec [options] <ra> <dec>
    -s=false: display symbol form
    -v=false: display version and copyright

Right ascension is sexagesimal hours, H:M:S.s or H:M with colon or blank
separators, or a single number taken as decimal degrees.  Declination is
the same in degrees with an optional sign.  The conversion runs opposite
to the input form: sexagesimal arguments print in decimal degrees, the
form stored in headers,

  $ radec 12:30:45 -05:30:00
  187.687500 -5.500000

and decimal degree arguments print in the colon form,

  $ radec 187.6875 -5.5
  12:30:45.0000 -05:30:00.000

If either argument is sexagesimal, the pair counts as sexagesimal.
The -s option adds a line rendering the coordinates with unit symbols.
*/
package main
