/*
Command renum renumbers image sequences, offsetting the frame number.

Capture programs number the frames of a run from one.  When a run is
interrupted and restarted, or when two nights are to be reduced as one
sequence, the second run's numbers collide with or leave a gap after the
first.  Renum copies files under names with the frame number shifted,
leaving the originals untouched.

  Usage: renum [options] [file ...]
    -d="temp": destination directory
    -o=0: offset subtracted from frame numbers
    -v=false: display version and copyright

With no file arguments every file in the current directory is
considered.  A file participates when its whole name has the form of a
prefix without digits, a frame number, and an extension.  The copy is
named with the prefix, the number less the offset with leading zeros
stripped, and the extension, all in lower case.  For example

  $ renum -o 12 IMG0042.FIT

copies IMG0042.FIT to temp/img30.fit.  Files of any other shape, and
files whose number would go negative, are ignored and counted.
*/
package main
