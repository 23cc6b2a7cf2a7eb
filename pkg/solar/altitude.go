package solar

import "fmt"

// AltitudeName identifies one of the standard effective horizon offsets
// used for passage finding and twilight classification.
type AltitudeName string

const (
	// Official is the conventional sunrise/sunset altitude: the Sun's
	// center 50 arc minutes below the geometric horizon, accounting for
	// refraction and the solar radius.
	Official AltitudeName = "official"
	// Civil marks the civil twilight boundary, -6°.
	Civil AltitudeName = "civil"
	// Nautical marks the nautical twilight boundary, -12°.
	Nautical AltitudeName = "nautical"
	// Astronomical marks the astronomical twilight boundary, -18°.
	Astronomical AltitudeName = "astronomical"
)

// Altitudes maps the named reference altitudes to their values in degrees.
// The map is never mutated.
var Altitudes = map[AltitudeName]float64{
	Official:     -50.0 / 60.0,
	Civil:        -6.0,
	Nautical:     -12.0,
	Astronomical: -18.0,
}

// Altitude is a reference altitude given either by name or as a raw degree
// value. The zero value resolves to 0°.
type Altitude struct {
	name    AltitudeName
	degrees float64
	named   bool
}

// Named returns an Altitude referring to one of the standard names.
func Named(name AltitudeName) Altitude {
	return Altitude{name: name, named: true}
}

// Degrees returns an Altitude with an explicit degree value.
func Degrees(deg float64) Altitude {
	return Altitude{degrees: deg}
}

// resolve reduces an Altitude to a plain degree value, failing fast on an
// unknown name.
func (a Altitude) resolve() (float64, error) {
	if !a.named {
		return a.degrees, nil
	}
	v, ok := Altitudes[a.name]
	if !ok {
		return 0, fmt.Errorf("%w: unknown reference altitude %q", ErrInvalidInput, a.name)
	}
	return v, nil
}

// resolveZenith reduces an Altitude interpreted as a zenith distance. A
// named zenith refers to the same constant table; a numeric zenith z maps
// to the altitude 90 − z.
func (a Altitude) resolveZenith() (float64, error) {
	if a.named {
		return a.resolve()
	}
	return 90 - a.degrees, nil
}

// Option adjusts how passages are searched and how day/night is classified.
type Option func(*options)

type options struct {
	zenith         *Altitude
	altitude       *Altitude
	dayZenith      *Altitude
	twilightZenith *Altitude
	simple         bool
	detailed       bool
}

// WithZenith sets a single reference zenith: it becomes h₀ for passage
// finding, or both thresholds of the two-state day/night classification.
func WithZenith(a Altitude) Option {
	return func(o *options) { o.zenith = &a }
}

// WithAltitude is the direct-altitude alternative to WithZenith
// (altitude = 90 − zenith for numeric values).
func WithAltitude(a Altitude) Option {
	return func(o *options) { o.altitude = &a }
}

// WithDayZenith sets the day boundary for two-state classification
// (default: Official).
func WithDayZenith(a Altitude) Option {
	return func(o *options) { o.dayZenith = &a }
}

// WithTwilightZenith sets the twilight boundary for two-state
// classification (default: Civil).
func WithTwilightZenith(a Altitude) Option {
	return func(o *options) { o.twilightZenith = &a }
}

// Simple forces two-state day/night classification using the Official
// threshold only.
func Simple() Option {
	return func(o *options) { o.simple = true }
}

// Detailed forces five-state classification against the four fixed named
// altitudes, ignoring any threshold overrides.
func Detailed() Option {
	return func(o *options) { o.detailed = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// referenceAltitude resolves the altitude h₀ used by the passage solver:
// an explicit altitude wins, then a zenith, then the official horizon.
func (o options) referenceAltitude() (float64, error) {
	switch {
	case o.altitude != nil:
		return o.altitude.resolve()
	case o.zenith != nil:
		return o.zenith.resolveZenith()
	default:
		return Altitudes[Official], nil
	}
}

// classifierThresholds resolves the (day, twilight) threshold pair for
// two-state classification.
func (o options) classifierThresholds() (day, twilight float64, err error) {
	if o.simple {
		day = Altitudes[Official]
		return day, day, nil
	}
	if o.altitude != nil || o.zenith != nil {
		v, err := o.referenceAltitude()
		if err != nil {
			return 0, 0, err
		}
		return v, v, nil
	}
	day = Altitudes[Official]
	twilight = Altitudes[Civil]
	if o.dayZenith != nil {
		if day, err = o.dayZenith.resolveZenith(); err != nil {
			return 0, 0, err
		}
	}
	if o.twilightZenith != nil {
		if twilight, err = o.twilightZenith.resolveZenith(); err != nil {
			return 0, 0, err
		}
	}
	return day, twilight, nil
}
