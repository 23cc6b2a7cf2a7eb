package solar

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		jd   float64
	}{
		{
			name: "J2000 epoch",
			time: time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC),
			jd:   2451545.0,
		},
		{
			name: "Unix epoch",
			time: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
			jd:   2440587.5,
		},
		{
			name: "half day past midnight",
			time: time.Date(2012, 10, 7, 12, 0, 0, 0, time.UTC),
			jd:   2456208.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDay(tt.time)
			if math.Abs(got-tt.jd) > 1e-8 {
				t.Errorf("JulianDay = %.9f, expected %.9f", got, tt.jd)
			}
		})
	}
}

func TestJulianCenturies(t *testing.T) {
	if got := JulianCenturies(J2000); got != 0 {
		t.Errorf("JulianCenturies(J2000) = %v, expected 0", got)
	}
	if got := JulianCenturies(J2000 + 36525); got != 1 {
		t.Errorf("JulianCenturies(J2000+36525) = %v, expected 1", got)
	}
}

func TestDeltaT(t *testing.T) {
	// expected values evaluated directly from the published polynomials
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected float64
	}{
		{"modern branch", 2012, time.October, 67.9556},
		{"1986-2005 branch", 1990, time.January, 56.9214},
		{"1961-1986 branch", 1970, time.July, 40.7399},
		{"1900-1920 branch", 1902, time.June, 0.6059},
		{"1941-1961 branch", 1950, time.June, 29.2557},
		{"1920-1941 branch", 1930, time.January, 24.1308},
		{"17th century", 1650, time.January, 50.1332},
		{"medieval", 988, time.March, 1640.7526},
		{"far future parabola", 2100, time.January, 202.8381},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeltaT(time.Date(tt.year, tt.month, 15, 0, 0, 0, 0, time.UTC))
			if math.Abs(got-tt.expected) > 0.01 {
				t.Errorf("DeltaT(%d-%02d) = %.4f, expected %.4f", tt.year, tt.month, got, tt.expected)
			}
		})
	}
}

func TestDynamicalTimeRoundTrip(t *testing.T) {
	civil := time.Date(2012, 10, 7, 9, 0, 0, 0, time.UTC)
	td := DynamicalTime(civil)

	if diff := td.Sub(civil).Seconds(); math.Abs(diff-67.96) > 0.1 {
		t.Errorf("dynamical offset = %.2fs, expected ~67.96s", diff)
	}

	back, err := CivilTime(td)
	if err != nil {
		t.Fatalf("CivilTime returned error: %v", err)
	}
	if diff := back.Sub(civil); diff > time.Second || diff < -time.Second {
		t.Errorf("round trip drifted by %v", diff)
	}
}

func TestCivilTimeRejectsNonUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	_, err := CivilTime(time.Date(2012, 10, 7, 9, 0, 0, 0, loc))
	if err == nil {
		t.Fatal("expected error for non-UTC instant")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, expected ErrInvalidInput", err)
	}
}

func TestDateStart(t *testing.T) {
	d := NewDate(2012, time.October, 7)
	want := time.Date(2012, time.October, 7, 0, 0, 0, 0, time.UTC)
	if !d.Start().Equal(want) {
		t.Errorf("Start = %v, expected %v", d.Start(), want)
	}
	if jd := d.JulianDay(); jd != 2456207.5 {
		t.Errorf("JulianDay = %v, expected 2456207.5", jd)
	}
	if got := DateOf(want.Add(36 * time.Hour)); got != NewDate(2012, time.October, 8) {
		t.Errorf("DateOf = %v, expected 2012-10-08", got)
	}
}
