// Public domain.

package fitshdr

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// Config collects the edits a Normalizer applies.  All fields are optional;
// the zero value applies nothing.  NewNormalizer validates the set as a
// whole so a batch run fails before any file is touched.
type Config struct {
	// AdjustTime enables observation time processing: DATE-OBS and
	// UT-START are folded into a single full ISO 8601 DATE-OBS, MIDPOINT
	// and JD are written for the exposure midpoint, and UT-START is
	// removed.
	AdjustTime bool

	// TZOffset is added to the recorded time, in hours.  Times recorded
	// on a local clock convert to UTC with the negation of the site's UTC
	// offset; a camera clock at UTC-5 needs TZOffset 5.
	TZOffset float64

	// ExpTime is the exposure duration in seconds.  When set it is
	// written to EXPTIME and used for the midpoint; otherwise the
	// header's EXPTIME is used, and with neither present the midpoint
	// equals the start.
	ExpTime *float64

	// UseMidpoint writes the exposure midpoint rather than its start to
	// DATE-OBS.
	UseMidpoint bool

	// DateObs replaces DATE-OBS with a full ISO 8601 datetime before time
	// processing runs.
	DateObs string

	// IrisDate replaces DATE-OBS with the IRIS DD/MM/YYYY form of the
	// given YYYY-MM-DD date before time processing runs.
	IrisDate string

	// Midpoint and JD override their keywords directly.
	Midpoint string
	JD       *float64

	// RA and Dec override the target coordinates, sexagesimal or decimal
	// degrees.  Both are stored in the header as decimal degrees.
	RA  string
	Dec string

	// Object, Filter and CalStat override their keywords.  Filter must be
	// one of Filters, CalStat one of CalStats.
	Object  string
	Filter  string
	CalStat string

	// Airmass overrides AIRMASS with a fixed value.
	Airmass *float64

	// ComputeAirmass derives AIRMASS from the site coordinates, the
	// mid-exposure time, and the target coordinates in effect.  Mutually
	// exclusive with Airmass.
	ComputeAirmass bool

	// SiteLat and SiteLong locate the observer in degrees, north and east
	// positive.  Required by ComputeAirmass.
	SiteLat  *float64
	SiteLong *float64
}

// A Normalizer holds a validated Config and applies it to header blocks.
type Normalizer struct {
	cfg Config
	tz  time.Duration

	ra       unit.RA
	dec      unit.Angle
	haveRA   bool
	haveDec  bool
	dateObs  obsTime
	haveDate bool
	midpoint obsTime
	haveMid  bool
	iris     string
}

// NewNormalizer validates cfg and returns a Normalizer for it.
func NewNormalizer(cfg Config) (*Normalizer, error) {
	n := &Normalizer{cfg: cfg}
	n.tz = time.Duration(math.Round(cfg.TZOffset * float64(time.Hour)))
	if cfg.RA != "" {
		ra, err := ParseRA(cfg.RA)
		if err != nil {
			return nil, err
		}
		n.ra, n.haveRA = ra, true
	}
	if cfg.Dec != "" {
		dec, err := ParseDec(cfg.Dec)
		if err != nil {
			return nil, err
		}
		n.dec, n.haveDec = dec, true
	}
	if cfg.CalStat != "" {
		cs := strings.ToUpper(cfg.CalStat)
		if !ValidCalStat(cs) {
			return nil, UnsupportedValueError{KeyCalStat, cfg.CalStat,
				strings.Join(CalStats, " ")}
		}
		n.cfg.CalStat = cs
	}
	if cfg.Filter != "" {
		fc := strings.ToUpper(cfg.Filter)
		if !ValidFilter(fc) {
			return nil, UnsupportedValueError{KeyFilter, cfg.Filter, FilterCodes()}
		}
		n.cfg.Filter = fc
	}
	if cfg.DateObs != "" {
		ot, full, ok := parseDateObs(cfg.DateObs)
		if !ok || !full {
			return nil, FormatError{KeyDateObs, cfg.DateObs, "an ISO 8601 datetime"}
		}
		n.dateObs, n.haveDate = ot, true
	}
	if cfg.IrisDate != "" {
		y, m, d, ok := parseDate(cfg.IrisDate)
		if !ok || strings.ContainsRune(cfg.IrisDate, '/') {
			return nil, FormatError{"iris date", cfg.IrisDate, "YYYY-MM-DD"}
		}
		n.iris = fmt.Sprintf("%02d/%02d/%04d", d, m, y)
	}
	if cfg.Midpoint != "" {
		ot, full, ok := parseDateObs(cfg.Midpoint)
		if !ok || !full {
			return nil, FormatError{KeyMidpoint, cfg.Midpoint, "an ISO 8601 datetime"}
		}
		n.midpoint, n.haveMid = ot, true
	}
	if cfg.ExpTime != nil && *cfg.ExpTime < 0 {
		return nil, FormatError{KeyExpTime, fmt.Sprint(*cfg.ExpTime),
			"a non-negative number of seconds"}
	}
	if cfg.Airmass != nil && *cfg.Airmass < 1 {
		return nil, FormatError{KeyAirmass, fmt.Sprint(*cfg.Airmass),
			"a number of at least 1"}
	}
	if cfg.ComputeAirmass {
		if cfg.Airmass != nil {
			return nil, fmt.Errorf("Airmass and ComputeAirmass both specified")
		}
		if cfg.SiteLat == nil || cfg.SiteLong == nil {
			return nil, fmt.Errorf("ComputeAirmass requires SiteLat and SiteLong")
		}
		if l := *cfg.SiteLat; l < -90 || l > 90 {
			return nil, FormatError{"latitude", fmt.Sprint(l), "degrees in [-90,90]"}
		}
		if l := *cfg.SiteLong; l < -360 || l > 360 {
			return nil, FormatError{"longitude", fmt.Sprint(l), "degrees in [-360,360]"}
		}
	}
	return n, nil
}

// Apply returns an edited copy of b.  b itself is not modified.  Edits
// apply in a fixed order: explicit DATE-OBS replacements, time processing,
// direct keyword overrides, then the computed airmass.  Later steps win
// where they target the same keyword.
func (n *Normalizer) Apply(b *Block) (*Block, error) {
	out := b.Clone()
	cfg := &n.cfg

	if n.iris != "" {
		out.SetValue(KeyDateObs, n.iris)
	}
	if n.haveDate {
		out.SetValue(KeyDateObs, formatISO(n.dateObs.t, n.dateObs.prec))
	}

	if cfg.AdjustTime {
		if err := n.adjustTimes(out); err != nil {
			return nil, err
		}
	}

	// direct overrides replace the whole card, old comment included
	if n.haveMid {
		out.Set(KeyMidpoint, formatISO(n.midpoint.t, n.midpoint.prec), "")
	}
	if cfg.JD != nil {
		out.Set(KeyJD, *cfg.JD, "")
	}
	if n.haveRA {
		out.Set(KeyRA, n.ra.Deg(), "")
	}
	if n.haveDec {
		out.Set(KeyDec, n.dec.Deg(), "")
	}
	if cfg.CalStat != "" {
		out.Set(KeyCalStat, cfg.CalStat, "")
	}
	if cfg.Filter != "" {
		out.Set(KeyFilter, cfg.Filter, "")
	}
	if cfg.Object != "" {
		out.Set(KeyObject, cfg.Object, "")
	}
	if cfg.ExpTime != nil {
		out.Set(KeyExpTime, *cfg.ExpTime, "")
	}
	if cfg.Airmass != nil {
		out.Set(KeyAirmass, *cfg.Airmass, "")
	}
	if cfg.ComputeAirmass {
		if err := n.computeAirmass(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// adjustTimes applies observation time processing to out.
func (n *Normalizer) adjustTimes(out *Block) error {
	start, prec, err := n.startTime(out)
	if err != nil {
		return err
	}
	mid, err := n.midTime(out, start)
	if err != nil {
		return err
	}
	if n.cfg.UseMidpoint {
		out.SetValue(KeyDateObs, formatISO(mid, prec))
	} else {
		out.SetValue(KeyDateObs, formatISO(start, prec))
	}
	out.SetValue(KeyMidpoint, formatISO(mid, prec))
	out.SetValue(KeyJD, jdOf(mid))
	out.Delete(KeyUTStart)
	return nil
}

// startTime determines the exposure start from DATE-OBS, folding in
// UT-START when DATE-OBS carries no time of day, and applies TZOffset.
func (n *Normalizer) startTime(out *Block) (time.Time, int, error) {
	v, ok := out.StrVal(KeyDateObs)
	if !ok || strings.TrimSpace(v) == "" {
		return time.Time{}, 0, MissingFieldError{KeyDateObs}
	}
	ot, full, ok := parseDateObs(v)
	if !ok {
		return time.Time{}, 0, FormatError{KeyDateObs, v, dateObsWant}
	}
	if !full {
		us, ok := out.StrVal(KeyUTStart)
		if !ok {
			return time.Time{}, 0, MissingFieldError{KeyUTStart}
		}
		clock, prec, ok := parseClock(us)
		if !ok {
			return time.Time{}, 0, FormatError{KeyUTStart, us, clockWant}
		}
		ot.t = ot.t.Add(clock)
		ot.prec = prec
	}
	return ot.t.Add(n.tz).Round(time.Microsecond), ot.prec, nil
}

// midTime returns the exposure midpoint for the given start.
func (n *Normalizer) midTime(out *Block, start time.Time) (time.Time, error) {
	exp, err := n.expSeconds(out)
	if err != nil {
		return time.Time{}, err
	}
	half := time.Duration(math.Round(exp * .5 * float64(time.Second)))
	return start.Add(half).Round(time.Microsecond), nil
}

// expSeconds returns the exposure duration in seconds, preferring the
// configured value over the header's EXPTIME.  Zero when neither exists.
func (n *Normalizer) expSeconds(out *Block) (float64, error) {
	if n.cfg.ExpTime != nil {
		return *n.cfg.ExpTime, nil
	}
	exp, err := out.Float(KeyExpTime)
	if err != nil {
		if _, ok := err.(MissingFieldError); ok {
			return 0, nil
		}
		return 0, err
	}
	if exp < 0 {
		return 0, FormatError{KeyExpTime, fmt.Sprint(exp),
			"a non-negative number of seconds"}
	}
	return exp, nil
}

// computeAirmass writes AIRMASS for the exposure midpoint, taking JD from
// the block when present and deriving it otherwise.
func (n *Normalizer) computeAirmass(out *Block) error {
	jd, err := out.Float(KeyJD)
	if err != nil {
		if _, ok := err.(MissingFieldError); !ok {
			return err
		}
		start, _, err := n.startTime(out)
		if err != nil {
			return err
		}
		mid, err := n.midTime(out, start)
		if err != nil {
			return err
		}
		jd = jdOf(mid)
	}
	eq, err := n.targetEqua(out)
	if err != nil {
		return err
	}
	x, err := Airmass(jd, unit.AngleFromDeg(*n.cfg.SiteLat),
		unit.AngleFromDeg(*n.cfg.SiteLong), eq)
	if err != nil {
		return err
	}
	out.SetValue(KeyAirmass, math.Round(x*1000)/1000)
	return nil
}

// targetEqua returns the coordinates in effect: configured overrides first,
// then the block's RA and DEC in either stored format.
func (n *Normalizer) targetEqua(out *Block) (coord.Equa, error) {
	eq := coord.Equa{RA: n.ra, Dec: n.dec}
	if !n.haveRA {
		v, ok := out.StrVal(KeyRA)
		if !ok {
			return eq, MissingFieldError{KeyRA}
		}
		ra, err := ParseRA(v)
		if err != nil {
			return eq, err
		}
		eq.RA = ra
	}
	if !n.haveDec {
		v, ok := out.StrVal(KeyDec)
		if !ok {
			return eq, MissingFieldError{KeyDec}
		}
		dec, err := ParseDec(v)
		if err != nil {
			return eq, err
		}
		eq.Dec = dec
	}
	return eq, nil
}
