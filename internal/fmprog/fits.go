// Public domain.

package fmprog

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/astrogo/fitsio"
	"github.com/soniakeys/fitsmod/fitshdr"
)

// processFile edits the primary header of one file.  With -n the edits are
// reported and nothing is written.
func processFile(cl *commandLine, nzr *fitshdr.Normalizer, fn string) error {
	fin, err := os.Open(fn)
	if err != nil {
		return err
	}
	defer fin.Close()
	f, err := fitsio.Open(fin)
	if err != nil {
		return err
	}
	defer f.Close()
	img, ok := f.HDU(0).(fitsio.Image)
	if !ok {
		return fmt.Errorf("primary HDU is not an image")
	}
	before := readBlock(img.Header())
	after, err := nzr.Apply(before)
	if err != nil {
		return err
	}
	if cl.vb || cl.n {
		reportEdits(fn, before, after)
	}
	if cl.n {
		return nil
	}
	return rewrite(cl, fn, f, after)
}

// readBlock copies the cards of a fitsio header into a Block.  A keyword
// repeated in the file keeps its first card only.
func readBlock(hdr *fitsio.Header) *fitshdr.Block {
	var cards []fitshdr.Card
	seen := make(map[string]bool)
	for _, key := range hdr.Keys() {
		if seen[key] {
			continue
		}
		seen[key] = true
		c := hdr.Get(key)
		if c == nil {
			continue
		}
		cards = append(cards, fitshdr.Card{
			Keyword: c.Name,
			Value:   c.Value,
			Comment: c.Comment,
		})
	}
	return fitshdr.NewBlock(cards)
}

// rewrite replaces fn, or its copy under the -w directory, with the edited
// file.  The new file is complete before it takes the destination name, so
// a failure leaves the destination as it was.
func rewrite(cl *commandLine, fn string, src *fitsio.File, b *fitshdr.Block) error {
	dest := fn
	if cl.w > "" {
		dest = filepath.Join(cl.w, filepath.Base(fn))
	}
	tf, err := ioutil.TempFile(filepath.Dir(dest), "fitsmod")
	if err != nil {
		return err
	}
	err = writeFits(tf, src, b)
	if err != nil {
		tf.Close()
		os.Remove(tf.Name())
		return err
	}
	if err = tf.Close(); err != nil {
		os.Remove(tf.Name())
		return err
	}
	return os.Rename(tf.Name(), dest)
}

// writeFits writes the edited primary HDU and then any extension HDUs
// unchanged.
func writeFits(w io.Writer, src *fitsio.File, b *fitshdr.Block) error {
	fout, err := fitsio.Create(w)
	if err != nil {
		return err
	}
	if err = writePrimary(fout, src.HDU(0).(fitsio.Image), b); err != nil {
		fout.Close()
		return err
	}
	for i, hdu := range src.HDUs() {
		if i == 0 {
			continue
		}
		if err = fout.Write(hdu); err != nil {
			fout.Close()
			return err
		}
	}
	return fout.Close()
}

// writePrimary writes an image HDU with the edited cards and the source
// pixel data.  Structural cards are left to the library, which writes them
// from the image geometry.
func writePrimary(fout *fitsio.File, src fitsio.Image, b *fitshdr.Block) error {
	hdr := src.Header()
	im := fitsio.NewImage(hdr.Bitpix(), hdr.Axes())
	defer im.Close()
	var cards []fitsio.Card
	for _, c := range b.Cards() {
		if structuralKey(c.Keyword) {
			continue
		}
		cards = append(cards, fitsio.Card{
			Name:    c.Keyword,
			Value:   c.Value,
			Comment: c.Comment,
		})
	}
	if err := im.Header().Append(cards...); err != nil {
		return err
	}
	if err := copyPixels(src, im); err != nil {
		return err
	}
	return fout.Write(im)
}

// structuralKey reports whether the library writes this card itself.
// BZERO, BSCALE and BLANK are data description, not structure, and pass
// through.
func structuralKey(keyword string) bool {
	k := strings.ToUpper(strings.TrimSpace(keyword))
	switch k {
	case "SIMPLE", "BITPIX", "NAXIS", "EXTEND", "XTENSION",
		"PCOUNT", "GCOUNT", "END":
		return true
	}
	if strings.HasPrefix(k, "NAXIS") && len(k) > 5 {
		for _, r := range k[5:] {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

func npix(axes []int) int {
	if len(axes) == 0 {
		return 0
	}
	n := 1
	for _, x := range axes {
		n *= x
	}
	return n
}

// copyPixels moves the image data between HDUs in its stored type.
func copyPixels(src, dst fitsio.Image) error {
	n := npix(src.Header().Axes())
	if n == 0 {
		return nil
	}
	switch bp := src.Header().Bitpix(); bp {
	case 8:
		pix := make([]uint8, 0, n)
		if err := src.Read(&pix); err != nil {
			return err
		}
		return dst.Write(pix)
	case 16:
		pix := make([]int16, 0, n)
		if err := src.Read(&pix); err != nil {
			return err
		}
		return dst.Write(pix)
	case 32:
		pix := make([]int32, 0, n)
		if err := src.Read(&pix); err != nil {
			return err
		}
		return dst.Write(pix)
	case 64:
		pix := make([]int64, 0, n)
		if err := src.Read(&pix); err != nil {
			return err
		}
		return dst.Write(pix)
	case -32:
		pix := make([]float32, 0, n)
		if err := src.Read(&pix); err != nil {
			return err
		}
		return dst.Write(pix)
	case -64:
		pix := make([]float64, 0, n)
		if err := src.Read(&pix); err != nil {
			return err
		}
		return dst.Write(pix)
	default:
		return fmt.Errorf("BITPIX %d not handled", bp)
	}
}
