package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// HorizontalCoordinates holds the Sun's local altitude and bearing, in
// degrees. Elevation is positive above the horizon; azimuth is measured
// clockwise from North (0° = North, 90° = East).
type HorizontalCoordinates struct {
	Elevation float64
	Azimuth   float64
}

// apparentSiderealTime returns the apparent sidereal time at Greenwich for
// the given Julian Day (UT), in degrees, reduced to [0, 360).
func apparentSiderealTime(jd float64) float64 {
	T := JulianCenturies(jd)
	return unit.PMod(280.46061837+360.98564736629*(jd-J2000)+
		(0.000387933-T/38710000)*T*T, 360)
}

// Position returns the Sun's horizontal coordinates at the civil (UTC)
// instant t for an observer at the given longitude (degrees, +East) and
// latitude (degrees, +North). The function is defined for all real inputs;
// polar latitudes produce mathematically valid but physically degenerate
// results rather than an error.
func Position(t time.Time, longitude, latitude float64) HorizontalCoordinates {
	eq := Equatorial(t)
	theta := apparentSiderealTime(JulianDay(t))

	// local hour angle, degrees west of the meridian
	h := unit.PMod(theta+longitude-eq.RightAscension.Deg(), 360)
	hRad := degToRad(h)
	latRad := degToRad(latitude)

	sinDecl, cosDecl := eq.Declination.Sincos()
	sinLat, cosLat := math.Sincos(latRad)
	sinH, cosH := math.Sincos(hRad)

	elevation := math.Asin(sinLat*sinDecl + cosLat*cosDecl*cosH)
	azimuth := unit.PMod(180+radToDeg(math.Atan2(sinH, cosH*sinLat-(sinDecl/cosDecl)*cosLat)), 360)

	return HorizontalCoordinates{
		Elevation: radToDeg(elevation),
		Azimuth:   azimuth,
	}
}
