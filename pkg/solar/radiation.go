package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// SolarConstant is the average solar energy flux at the top of Earth's
// atmosphere, in W/m².
const SolarConstant = 1361.0

// ExtraterrestrialIrradiance returns the solar flux on a normal surface at
// the top of the atmosphere at the instant t, in W/m², adjusted for the
// Earth-Sun distance variation over the year.
func ExtraterrestrialIrradiance(t time.Time) float64 {
	n := float64(t.UTC().YearDay())
	return SolarConstant * (1 + 0.033*math.Cos(degToRad(360*(n-3)/365)))
}

// GlobalIrradiance returns the clear-sky global horizontal irradiance in
// W/m² at the instant t for a site at the given coordinates and altitude in
// meters, using the Ineichen-Perez model. Zero when the Sun is below the
// horizon.
func GlobalIrradiance(t time.Time, longitude, latitude, siteAltitudeM float64) float64 {
	pos := Position(t, longitude, latitude)
	if pos.Elevation <= 0 {
		return 0
	}
	zenith := 90 - pos.Elevation
	g0 := ExtraterrestrialIrradiance(t)

	// Linke turbidity factor, typical clear-sky value (range 2-6)
	const turbidity = 2.0

	// Kasten-Young air mass
	am := 1 / (math.Cos(degToRad(zenith)) + 0.50572*math.Pow(96.07995-zenith, -1.6364))
	dni := g0 * 0.7 * math.Exp(-0.027*am*turbidity*math.Exp(-siteAltitudeM/8000))

	// diffuse fraction with a seasonal adjustment
	n := float64(t.UTC().YearDay())
	fh := 0.1 + 0.05*math.Sin(math.Pi*(n-100)/365)
	dhi := fh * g0 * math.Sin(degToRad(zenith))

	return dni*math.Cos(degToRad(zenith)) + dhi
}

// BrasIrradiance returns the clear-sky global horizontal irradiance in W/m²
// at the instant t using the Bras atmospheric attenuation model. nfac is
// the atmospheric turbidity factor (2 for clear, 4-5 for smoggy air). Zero
// when the Sun is below the horizon.
func BrasIrradiance(t time.Time, longitude, latitude, nfac float64) float64 {
	pos := Position(t, longitude, latitude)
	if pos.Elevation <= 0 {
		return 0
	}
	cosZen := math.Sin(degToRad(pos.Elevation))

	r := sunEarthDistanceAU(t)
	io := cosZen * SolarConstant / (r * r)

	// optical air mass per Kasten
	m := 1 / (cosZen + 0.15*math.Pow(pos.Elevation+3.885, -1.253))
	a1 := 0.128 - 0.054*math.Log10(m)

	sr := io * math.Exp(-nfac*a1*m)
	if sr < 0 {
		sr = 0
	}
	return sr
}

// TiltFactor returns the ratio of direct irradiance received by a plane
// tilted slope degrees from horizontal and facing aspect degrees (clockwise
// from North) to that received by a horizontal plane at the same site.
// Zero when the Sun is below the horizon or behind the plane.
func TiltFactor(t time.Time, longitude, latitude, slope, aspect float64) float64 {
	pos := Position(t, longitude, latitude)
	if pos.Elevation <= 0 {
		return 0
	}
	zenithRad := degToRad(90 - pos.Elevation)
	slopeRad := degToRad(slope)

	cosIncidence := math.Cos(zenithRad)*math.Cos(slopeRad) +
		math.Sin(zenithRad)*math.Sin(slopeRad)*math.Cos(degToRad(pos.Azimuth-aspect))
	if cosIncidence <= 0 {
		return 0
	}
	return cosIncidence / math.Cos(zenithRad)
}

// sunEarthDistanceAU returns the Earth-Sun distance in astronomical units
// from the Keplerian orbit solution.
func sunEarthDistanceAU(t time.Time) float64 {
	T := JulianCenturies(JulianDay(t))
	M := degToRad(unit.PMod(357.52911+T*(35999.05029-T*0.0001537), 360))
	e := 0.016708617 - T*(0.000042037+T*0.0000001236)

	// eccentric and true anomaly
	ecc := M + e*math.Sin(M)*(1+e*math.Cos(M))
	v := 2 * math.Atan(math.Sqrt((1+e)/(1-e))*math.Tan(ecc/2))

	return (1 - e*e) / (1 + e*math.Cos(v))
}
