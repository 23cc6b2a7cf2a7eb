package solar

import (
	"math"
	"time"

	"github.com/soniakeys/unit"
)

// PassageResult holds the instants of sunrise, solar transit and sunset for
// one calendar date, location and reference altitude.
//
// Degenerate encodings for circumpolar conditions: if the Sun never rises,
// all three instants equal the date's start; if it never sets, Rise is the
// date's start, Transit is start + 12h and Set is start + 24h.
type PassageResult struct {
	Rise    time.Time
	Transit time.Time
	Set     time.Time
}

// NeverRises reports the polar-night degenerate encoding.
func (p PassageResult) NeverRises() bool {
	return p.Rise.Equal(p.Set)
}

// NeverSets reports the midnight-sun degenerate encoding.
func (p PassageResult) NeverSets() bool {
	return p.Set.Sub(p.Rise) == 24*time.Hour
}

const (
	// passage refinement stops once every correction is below this
	// fraction of a day (~0.9 s)
	passageTolerance = 1e-5
	// safety net near the circumpolar boundary; ordinary inputs converge
	// in a handful of passes and never get close to this
	maxPassageIterations = 50
)

// Passages returns the instants of sunrise, solar transit and sunset on the
// given date for an observer at longitude (degrees, +East) and latitude
// (degrees, +North). The reference altitude defaults to Official and can be
// overridden with WithAltitude or WithZenith.
func Passages(date Date, longitude, latitude float64, opts ...Option) (PassageResult, error) {
	h0, err := buildOptions(opts).referenceAltitude()
	if err != nil {
		return PassageResult{}, err
	}

	start := date.Start()
	jd := date.JulianDay()
	theta0 := apparentSiderealTime(jd)

	// sample the solar ephemeris on the previous, current and next day to
	// build a quadratic interpolant over right ascension and declination
	var ra, decl [3]float64
	for i := -1; i <= 1; i++ {
		eq := Equatorial(start.AddDate(0, 0, i))
		ra[i+1] = eq.RightAscension.Deg()
		decl[i+1] = eq.Declination.Deg()
	}
	// unwrap right ascension across the 0°/360° boundary; interpolating
	// across the wrap would otherwise introduce a ~360° error
	if ra[0] > ra[1] {
		ra[0] -= 360
	}
	if ra[2] < ra[1] {
		ra[2] += 360
	}

	sinH0 := math.Sin(degToRad(h0))
	sinLat, cosLat := math.Sincos(degToRad(latitude))
	sinDecl1, cosDecl1 := math.Sincos(degToRad(decl[1]))

	// approximate hour angle of rise/set from the middle day's declination
	cosH := (sinH0 - sinLat*sinDecl1) / (cosLat * cosDecl1)
	switch {
	case cosH > 1: // the Sun never climbs to h0
		return PassageResult{Rise: start, Transit: start, Set: start}, nil
	case cosH < -1: // the Sun never drops below h0
		return PassageResult{
			Rise:    start,
			Transit: start.Add(12 * time.Hour),
			Set:     start.Add(24 * time.Hour),
		}, nil
	}
	bigH0 := radToDeg(math.Acos(cosH))

	// initial fractional-day estimates: transit pinned inside the date,
	// rise and set placed relative to it with their whole-day offsets kept
	// for the final instants
	var m [3]float64
	var off [3]float64
	m[0] = unit.PMod((ra[1]-longitude-theta0)/360, 1)
	m[1] = m[0] - bigH0/360
	m[2] = m[0] + bigH0/360
	if m[1] < 0 {
		m[1]++
		off[1] = -1
	}
	if m[2] >= 1 {
		m[2]--
		off[2] = 1
	}

	dt := DeltaT(start)
	for iter := 0; iter < maxPassageIterations; iter++ {
		converged := true
		for i := range m {
			theta := theta0 + 360.985647*m[i]
			n := m[i] + dt/secondsPerDay
			raN := interpolate(ra, n)

			// local hour angle reduced to (-180, 180]
			h := unit.PMod(theta+longitude-raN+180, 360) - 180

			var dm float64
			if i == 0 {
				dm = -h / 360
			} else {
				declRad := degToRad(interpolate(decl, n))
				sinD, cosD := math.Sincos(declRad)
				hRad := degToRad(h)
				alt := radToDeg(math.Asin(sinLat*sinD + cosLat*cosD*math.Cos(hRad)))
				dm = (alt - h0) / (360 * cosD * cosLat * math.Sin(hRad))
			}
			m[i] += dm
			if math.Abs(dm) >= passageTolerance {
				converged = false
			}
		}
		if converged {
			break
		}
	}
	// on cap overrun the best available estimates are returned; the loop
	// only fails to converge for inputs at the circumpolar boundary

	return PassageResult{
		Rise:    addDayFraction(start, m[1]+off[1]),
		Transit: addDayFraction(start, m[0]),
		Set:     addDayFraction(start, m[2]+off[2]),
	}, nil
}

// Rise returns the instant of sunrise on the given date, or ok=false when
// the Sun never crosses the reference altitude that day.
func Rise(date Date, longitude, latitude float64, opts ...Option) (t time.Time, ok bool, err error) {
	p, err := Passages(date, longitude, latitude, opts...)
	if err != nil || p.NeverRises() || p.NeverSets() {
		return time.Time{}, false, err
	}
	return p.Rise, true, nil
}

// Set returns the instant of sunset on the given date, or ok=false when the
// Sun never crosses the reference altitude that day.
func Set(date Date, longitude, latitude float64, opts ...Option) (t time.Time, ok bool, err error) {
	p, err := Passages(date, longitude, latitude, opts...)
	if err != nil || p.NeverRises() || p.NeverSets() {
		return time.Time{}, false, err
	}
	return p.Set, true, nil
}

// RiseAndSet returns both sunrise and sunset on the given date, or ok=false
// when the Sun never crosses the reference altitude that day.
func RiseAndSet(date Date, longitude, latitude float64, opts ...Option) (rise, set time.Time, ok bool, err error) {
	p, err := Passages(date, longitude, latitude, opts...)
	if err != nil || p.NeverRises() || p.NeverSets() {
		return time.Time{}, time.Time{}, false, err
	}
	return p.Rise, p.Set, true, nil
}

// interpolate evaluates the quadratic through three equally spaced samples
// (Meeus eq. 3.3) at interpolation factor n, measured in table intervals
// from the middle sample.
func interpolate(y [3]float64, n float64) float64 {
	a := y[1] - y[0]
	b := y[2] - y[1]
	c := b - a
	return y[1] + n/2*(a+b+n*c)
}

// addDayFraction adds d days to t using integer-nanosecond arithmetic, so
// half and whole days stay exact.
func addDayFraction(t time.Time, d float64) time.Time {
	return t.Add(time.Duration(math.Round(d * float64(24*time.Hour))))
}
