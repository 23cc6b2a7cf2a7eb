package solar

import "time"

// Situation classifies an instant at a location relative to the horizon.
type Situation string

const (
	Day      Situation = "day"
	Twilight Situation = "twilight"
	Night    Situation = "night"

	// detailed (five-state) classifications
	CivilTwilight        Situation = "civil_twilight"
	NauticalTwilight     Situation = "nautical_twilight"
	AstronomicalTwilight Situation = "astronomical_twilight"
)

// DayOrNight classifies the instant t at the given longitude and latitude.
//
// By default the Sun's elevation is compared against the Official threshold
// for day and the Civil threshold for night, with Twilight in between; the
// pair can be moved with WithDayZenith/WithTwilightZenith or collapsed to a
// single boundary with WithZenith, WithAltitude or Simple. With Detailed
// the four fixed named altitudes partition twilight into its civil,
// nautical and astronomical bands regardless of other options.
func DayOrNight(t time.Time, longitude, latitude float64, opts ...Option) (Situation, error) {
	o := buildOptions(opts)
	elevation := Position(t, longitude, latitude).Elevation

	if o.detailed {
		switch {
		case elevation < Altitudes[Astronomical]:
			return Night, nil
		case elevation < Altitudes[Nautical]:
			return AstronomicalTwilight, nil
		case elevation < Altitudes[Civil]:
			return NauticalTwilight, nil
		case elevation < Altitudes[Official]:
			return CivilTwilight, nil
		default:
			return Day, nil
		}
	}

	day, twilight, err := o.classifierThresholds()
	if err != nil {
		return "", err
	}
	switch {
	case elevation > day:
		return Day, nil
	case elevation <= twilight:
		return Night, nil
	default:
		return Twilight, nil
	}
}
