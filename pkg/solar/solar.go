// Package solar computes the Sun's apparent position, the timing of solar
// passages (rise, transit, set) and derived quantities such as day/night
// classification and clear-sky irradiance, for an arbitrary point on Earth
// and instant in time.
//
// The position model is the low-accuracy solar theory from Meeus,
// Astronomical Algorithms, chapter 25, good to roughly 0.01 degrees.
// Passage times are found by quadratic interpolation of a three-day
// ephemeris followed by iterative refinement (Meeus, chapter 15), and
// agree with higher-precision references to well within a minute for
// non-polar latitudes.
//
// All functions are pure: they read no mutable state and are safe for
// concurrent use.
package solar

import (
	"errors"
	"math"
)

// ErrInvalidInput reports programmer misuse, such as passing a non-UTC
// instant where a UTC instant is required, or naming an unknown reference
// altitude in an option.
var ErrInvalidInput = errors.New("solar: invalid input")

// degToRad converts an angle from degrees to radians
func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}

// radToDeg converts an angle from radians to degrees
func radToDeg(rad float64) float64 {
	return rad * (180.0 / math.Pi)
}
