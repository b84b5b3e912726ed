// Public domain.

package fitshdr

import (
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// Airmass returns the relative optical path length through the atmosphere
// toward eq at Julian date jd, as seen from latitude lat and east longitude
// lon.  Altitude comes from mean sidereal time and the spherical triangle;
// the path length is the Hardie (1962) polynomial in sec z.  A target at or
// below the horizon is an UnsupportedValueError.
func Airmass(jd float64, lat, lon unit.Angle, eq coord.Equa) (float64, error) {
	lst := sidereal.Mean(jd).Hour() + lon.Deg()/15 // local sidereal time, hours
	ha := (lst - eq.RA.Hour()) * 15 * math.Pi / 180
	sLat, cLat := math.Sincos(lat.Rad())
	sDec, cDec := math.Sincos(eq.Dec.Rad())
	sAlt := sLat*sDec + cLat*cDec*math.Cos(ha)
	if sAlt <= 0 {
		alt := math.Asin(sAlt) * 180 / math.Pi
		return 0, UnsupportedValueError{KeyAirmass,
			fmt.Sprintf("altitude %.1f deg", alt), "a target above the horizon"}
	}
	x := 1/sAlt - 1
	return 1/sAlt - x*(.0018167+x*(.002875+x*.0008083)), nil
}
