package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jgoizueta/solar/pkg/solar"
	sexa "github.com/soniakeys/sexagesimal"
)

func main() {
	var (
		timeStr  string
		lat      float64
		lon      float64
		altStr   string
		siteAlt  float64
		detailed bool
	)
	flag.StringVar(&timeStr, "time", "", "UTC time to evaluate (RFC3339 format, e.g., 2024-03-15T09:00:00Z); defaults to now")
	flag.Float64Var(&lat, "lat", 0, "latitude in degrees, +North")
	flag.Float64Var(&lon, "lon", 0, "longitude in degrees, +East")
	flag.StringVar(&altStr, "altitude", "official", "reference altitude: official, civil, nautical, astronomical, or degrees")
	flag.Float64Var(&siteAlt, "site-altitude", 0, "site altitude above sea level in meters, for irradiance")
	flag.BoolVar(&detailed, "detailed", false, "five-state day/night classification")
	flag.Parse()

	t := time.Now().UTC()
	if timeStr != "" {
		var err error
		t, err = time.Parse(time.RFC3339, timeStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing time: %v\n", err)
			os.Exit(1)
		}
		t = t.UTC()
	}

	altitude, err := parseAltitude(altStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	eq := solar.Equatorial(t)
	pos := solar.Position(t, lon, lat)

	classOpts := []solar.Option{solar.WithAltitude(altitude)}
	if detailed {
		classOpts = []solar.Option{solar.Detailed()}
	}
	situation, err := solar.DayOrNight(t, lon, lat, classOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sun at %s for lat %.4f, lon %.4f\n", t.Format(time.RFC3339), lat, lon)
	fmt.Printf("  Declination:     %s\n", sexa.FmtAngle(eq.Declination))
	fmt.Printf("  Right ascension: %s\n", sexa.FmtRA(eq.RightAscension))
	fmt.Printf("  Elevation:       %.4f°\n", pos.Elevation)
	fmt.Printf("  Azimuth:         %.4f°\n", pos.Azimuth)
	fmt.Printf("  Situation:       %s\n", situation)
	fmt.Printf("  Clear-sky GHI:   %.1f W/m²\n", solar.GlobalIrradiance(t, lon, lat, siteAlt))

	p, err := solar.Passages(solar.DateOf(t), lon, lat, solar.WithAltitude(altitude))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	switch {
	case p.NeverRises():
		fmt.Printf("  Sun never rises above the reference altitude on this date\n")
	case p.NeverSets():
		fmt.Printf("  Sun never sets below the reference altitude on this date\n")
		fmt.Printf("  Transit: %s\n", p.Transit.Format(time.RFC3339))
	default:
		fmt.Printf("  Rise:    %s\n", p.Rise.Format(time.RFC3339))
		fmt.Printf("  Transit: %s\n", p.Transit.Format(time.RFC3339))
		fmt.Printf("  Set:     %s\n", p.Set.Format(time.RFC3339))
	}
}

// parseAltitude accepts one of the standard altitude names or a raw degree
// value.
func parseAltitude(s string) (solar.Altitude, error) {
	name := solar.AltitudeName(s)
	if _, ok := solar.Altitudes[name]; ok {
		return solar.Named(name), nil
	}
	deg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return solar.Altitude{}, fmt.Errorf("invalid altitude %q: expected a name or degrees", s)
	}
	return solar.Degrees(deg), nil
}
