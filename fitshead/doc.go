/*
Command fitshead prints FITS primary header cards.

It is an inspection aid for the fitsmod edit workflow: dump a header
before and after an edit, grep a batch for a keyword, diff two files.
Cards print one per line in transcription form, keyword, value, and any
comment,

  $ fitshead -k DATE-OBS,MIDPOINT,JD,RA,DEC xz.fit
  DATE-OBS = 2020-01-15T11:59:45
  MIDPOINT = 2020-01-15T12:00:00
  JD       = 2458864
  RA       = 187.6875
  DEC      = -5.5

Values print as parsed: strings without their quotes, floats in fixed
point.  The -k option takes comma separated keywords and prints only
those cards, in header order.  Without -k all cards print.  With more
than one file each line is prefixed with its file name, so output from
a batch stays greppable.
*/
package main
