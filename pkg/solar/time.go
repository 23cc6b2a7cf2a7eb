package solar

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

const (
	// J2000 is the Julian Day of the standard epoch J2000.0
	// (2000 January 1.5 TT).
	J2000 = 2451545.0

	julianCentury = 36525.0
	secondsPerDay = 86400.0
)

// Date is a civil calendar date. It anchors the 24-hour UTC search window
// used when finding solar passages.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the UTC calendar date containing t.
func DateOf(t time.Time) Date {
	y, m, d := t.UTC().Date()
	return Date{Year: y, Month: m, Day: d}
}

// Start returns the instant at which the date begins (00:00 UTC).
func (d Date) Start() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// JulianDay returns the start of the date as a Julian Day (UT).
func (d Date) JulianDay() float64 {
	return julian.CalendarGregorianToJD(d.Year, int(d.Month), float64(d.Day))
}

// JulianDay returns the Julian Day for the instant t, in Universal Time,
// with fractional part for the time of day.
func JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// JulianCenturies returns the number of Julian centuries elapsed between
// the epoch J2000.0 and the given Julian Day.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / julianCentury
}

// DeltaT returns an estimate of ΔT = TT − UT in seconds at the instant t,
// using the Espenak/Meeus polynomial fit published by NASA. The fit is
// piecewise in the decimal year; adjacent branches meet closely but not
// exactly at the boundaries.
func DeltaT(t time.Time) float64 {
	t = t.UTC()
	y := float64(t.Year()) + (float64(t.Month())-0.5)/12

	switch {
	case y < -500:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	case y < 500:
		u := y / 100
		return 10583.6 + u*(-1014.41+u*(33.78311+u*(-5.952053+
			u*(-0.1798452+u*(0.022174192+u*0.0090316521)))))
	case y < 1600:
		u := (y - 1000) / 100
		return 1574.2 + u*(-556.01+u*(71.23472+u*(0.319781+
			u*(-0.8503463+u*(-0.005050998+u*0.0083572073)))))
	case y < 1700:
		u := y - 1600
		return 120 + u*(-0.9808+u*(-0.01532+u/7129))
	case y < 1800:
		u := y - 1700
		return 8.83 + u*(0.1603+u*(-0.0059285+u*(0.00013336-u/1174000)))
	case y < 1860:
		u := y - 1800
		return 13.72 + u*(-0.332447+u*(0.0068612+u*(0.0041116+
			u*(-0.00037436+u*(0.0000121272+u*(-0.0000001699+u*0.000000000875))))))
	case y < 1900:
		u := y - 1860
		return 7.62 + u*(0.5737+u*(-0.251754+u*(0.01680668+
			u*(-0.0004473624+u/233174))))
	case y < 1920:
		u := y - 1900
		return -2.79 + u*(1.494119+u*(-0.0598939+u*(0.0061966-u*0.000197)))
	case y < 1941:
		u := y - 1920
		return 21.20 + u*(0.84493+u*(-0.076100+u*0.0020936))
	case y < 1961:
		u := y - 1950
		return 29.07 + u*(0.407+u*(-1.0/233+u/2547))
	case y < 1986:
		u := y - 1975
		return 45.45 + u*(1.067+u*(-1.0/260-u/718))
	case y < 2005:
		u := y - 2000
		return 63.86 + u*(0.3345+u*(-0.060374+u*(0.0017275+
			u*(0.000651814+u*0.00002373599))))
	case y < 2050:
		u := y - 2000
		return 62.92 + u*(0.32217+u*0.005589)
	case y < 2150:
		u := (y - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-y)
	default:
		u := (y - 1820) / 100
		return -20 + 32*u*u
	}
}

// DynamicalTime converts a civil (UTC) instant to dynamical (ephemeris)
// time by adding ΔT.
func DynamicalTime(t time.Time) time.Time {
	return t.Add(time.Duration(DeltaT(t) * float64(time.Second)))
}

// CivilTime converts a dynamical-time instant back to civil time by
// subtracting ΔT. The instant must be expressed in UTC; any other location
// is rejected, since the caller has to disambiguate time scales before the
// inversion is meaningful.
func CivilTime(t time.Time) (time.Time, error) {
	if t.Location() != time.UTC {
		return time.Time{}, fmt.Errorf("%w: dynamical-to-civil conversion requires a UTC instant, got location %v",
			ErrInvalidInput, t.Location())
	}
	return t.Add(-time.Duration(DeltaT(t) * float64(time.Second))), nil
}
