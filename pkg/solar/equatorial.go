package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// EquatorialCoordinates holds the Sun's apparent declination and right
// ascension, valid for one instant.
type EquatorialCoordinates struct {
	Declination    unit.Angle
	RightAscension unit.RA
}

// Equatorial returns the Sun's apparent equatorial coordinates at the civil
// (UTC) instant t, using the low-accuracy solar theory of Meeus chapter 25.
// The conversion to dynamical time happens internally.
func Equatorial(t time.Time) EquatorialCoordinates {
	T := JulianCenturies(JulianDay(DynamicalTime(t.UTC())))

	// geometric mean longitude and mean anomaly, degrees
	L := 280.46645 + (36000.76983+0.0003032*T)*T
	M := 357.52910 + (35999.05030-(0.0001559+0.00000048*T)*T)*T
	mRad := degToRad(M)

	// equation of center and true longitude
	C := (1.914600-(0.004817+0.000014*T)*T)*math.Sin(mRad) +
		(0.019993-0.000101*T)*math.Sin(2*mRad) +
		0.000290*math.Sin(3*mRad)
	trueLong := unit.PMod(L+C, 360)

	// apparent longitude, corrected for nutation and aberration via the
	// longitude of the ascending node of the Moon's mean orbit
	omegaRad := degToRad(125.04 - 1934.136*T)
	lambda := unit.PMod(trueLong-0.00569-0.00478*math.Sin(omegaRad), 360)

	// obliquity of the ecliptic, corrected for nutation
	eps := 23.4392966666667 -
		(0.012777777777777778+(0.0000098333-0.0000098333*T)*T)*T +
		0.00256*math.Cos(omegaRad)

	epsRad := degToRad(eps)
	lambdaRad := degToRad(lambda)
	sinLambda := math.Sin(lambdaRad)

	decl := math.Asin(math.Sin(epsRad) * sinLambda)
	// two-argument arctangent keeps the right ascension quadrant-correct
	ra := math.Atan2(math.Cos(epsRad)*sinLambda, math.Cos(lambdaRad))

	return EquatorialCoordinates{
		Declination:    unit.Angle(decl),
		RightAscension: unit.RAFromRad(ra),
	}
}
