package solar

import (
	"testing"
	"time"
)

func TestPassages(t *testing.T) {
	tests := []struct {
		name      string
		date      Date
		longitude float64
		latitude  float64
		rise      time.Time
		transit   time.Time
		set       time.Time
	}{
		{
			name:      "London March 2024",
			date:      NewDate(2024, time.March, 15),
			longitude: -0.1278, latitude: 51.5074,
			rise:    time.Date(2024, 3, 15, 6, 13, 40, 0, time.UTC),
			transit: time.Date(2024, 3, 15, 12, 9, 17, 0, time.UTC),
			set:     time.Date(2024, 3, 15, 18, 5, 52, 0, time.UTC),
		},
		{
			name:      "Greenwich meridian October 2012",
			date:      NewDate(2012, time.October, 7),
			longitude: 0, latitude: 42,
			rise:    time.Date(2012, 10, 7, 6, 3, 48, 0, time.UTC),
			transit: time.Date(2012, 10, 7, 11, 47, 44, 0, time.UTC),
			set:     time.Date(2012, 10, 7, 17, 31, 0, 0, time.UTC),
		},
	}

	const tolerance = time.Minute

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Passages(tt.date, tt.longitude, tt.latitude)
			if err != nil {
				t.Fatalf("Passages returned error: %v", err)
			}
			for _, c := range []struct {
				label string
				got   time.Time
				want  time.Time
			}{
				{"rise", p.Rise, tt.rise},
				{"transit", p.Transit, tt.transit},
				{"set", p.Set, tt.set},
			} {
				diff := c.got.Sub(c.want)
				if diff < -tolerance || diff > tolerance {
					t.Errorf("%s = %v, expected %v ± %v", c.label, c.got, c.want, tolerance)
				}
			}
		})
	}
}

// The transit must land on the requested calendar date for any longitude,
// including values far outside ±180, and rise/transit/set must be ordered
// within a day of each other.
func TestPassagesTransitDateInvariant(t *testing.T) {
	date := NewDate(2024, time.March, 15)
	for lon := -360.0; lon <= 360; lon += 30 {
		for lat := -50.0; lat <= 50; lat += 10 {
			p, err := Passages(date, lon, lat)
			if err != nil {
				t.Fatalf("Passages(%v, %v) returned error: %v", lon, lat, err)
			}
			if got := DateOf(p.Transit); got != date {
				t.Errorf("lon %v lat %v: transit %v not on %v", lon, lat, p.Transit, date)
			}
			if !(p.Rise.Before(p.Transit) && p.Transit.Before(p.Set)) {
				t.Errorf("lon %v lat %v: rise/transit/set out of order: %v %v %v",
					lon, lat, p.Rise, p.Transit, p.Set)
			}
			if p.Set.Sub(p.Rise) >= 24*time.Hour {
				t.Errorf("lon %v lat %v: day length %v exceeds 24h", lon, lat, p.Set.Sub(p.Rise))
			}
		}
	}
}

func TestPassagesCircumpolar(t *testing.T) {
	t.Run("midnight sun", func(t *testing.T) {
		date := NewDate(2024, time.June, 20)
		p, err := Passages(date, 0, 89)
		if err != nil {
			t.Fatalf("Passages returned error: %v", err)
		}
		start := date.Start()
		if !p.Rise.Equal(start) {
			t.Errorf("rise = %v, expected %v", p.Rise, start)
		}
		if !p.Transit.Equal(start.Add(12 * time.Hour)) {
			t.Errorf("transit = %v, expected %v", p.Transit, start.Add(12*time.Hour))
		}
		if !p.Set.Equal(start.Add(24 * time.Hour)) {
			t.Errorf("set = %v, expected %v", p.Set, start.Add(24*time.Hour))
		}
		if !p.NeverSets() || p.NeverRises() {
			t.Errorf("NeverSets = %v, NeverRises = %v", p.NeverSets(), p.NeverRises())
		}
	})

	t.Run("polar night", func(t *testing.T) {
		date := NewDate(2024, time.December, 21)
		p, err := Passages(date, 0, 89)
		if err != nil {
			t.Fatalf("Passages returned error: %v", err)
		}
		start := date.Start()
		if !p.Rise.Equal(start) || !p.Transit.Equal(start) || !p.Set.Equal(start) {
			t.Errorf("expected all instants at %v, got %v %v %v", start, p.Rise, p.Transit, p.Set)
		}
		if !p.NeverRises() || p.NeverSets() {
			t.Errorf("NeverRises = %v, NeverSets = %v", p.NeverRises(), p.NeverSets())
		}
	})
}

func TestRiseAndSet(t *testing.T) {
	date := NewDate(2012, time.October, 7)

	rise, ok, err := Rise(date, 0, 42)
	if err != nil || !ok {
		t.Fatalf("Rise: ok=%v err=%v", ok, err)
	}
	set, ok, err := Set(date, 0, 42)
	if err != nil || !ok {
		t.Fatalf("Set: ok=%v err=%v", ok, err)
	}
	if !rise.Before(set) {
		t.Errorf("rise %v not before set %v", rise, set)
	}

	r2, s2, ok, err := RiseAndSet(date, 0, 42)
	if err != nil || !ok {
		t.Fatalf("RiseAndSet: ok=%v err=%v", ok, err)
	}
	if !r2.Equal(rise) || !s2.Equal(set) {
		t.Errorf("RiseAndSet = (%v, %v), expected (%v, %v)", r2, s2, rise, set)
	}
}

func TestRiseAndSetPolar(t *testing.T) {
	tests := []struct {
		name string
		date Date
	}{
		{"never sets", NewDate(2024, time.June, 20)},
		{"never rises", NewDate(2024, time.December, 21)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok, err := Rise(tt.date, 0, 89); ok || err != nil {
				t.Errorf("Rise: ok=%v err=%v, expected no event", ok, err)
			}
			if _, ok, err := Set(tt.date, 0, 89); ok || err != nil {
				t.Errorf("Set: ok=%v err=%v, expected no event", ok, err)
			}
			if _, _, ok, err := RiseAndSet(tt.date, 0, 89); ok || err != nil {
				t.Errorf("RiseAndSet: ok=%v err=%v, expected no event", ok, err)
			}
		})
	}
}

func TestPassagesCustomAltitude(t *testing.T) {
	date := NewDate(2024, time.March, 15)

	// civil dawn precedes official sunrise, civil dusk follows sunset
	official, err := Passages(date, 0, 42)
	if err != nil {
		t.Fatal(err)
	}
	civil, err := Passages(date, 0, 42, WithAltitude(Named(Civil)))
	if err != nil {
		t.Fatal(err)
	}
	if !civil.Rise.Before(official.Rise) {
		t.Errorf("civil dawn %v not before sunrise %v", civil.Rise, official.Rise)
	}
	if !civil.Set.After(official.Set) {
		t.Errorf("civil dusk %v not after sunset %v", civil.Set, official.Set)
	}

	// a numeric zenith of 96° is the civil altitude of -6°
	zenith, err := Passages(date, 0, 42, WithZenith(Degrees(96)))
	if err != nil {
		t.Fatal(err)
	}
	if d := zenith.Rise.Sub(civil.Rise); d < -time.Second || d > time.Second {
		t.Errorf("zenith 96° rise differs from civil rise by %v", d)
	}
}

func TestPassagesUnknownAltitudeName(t *testing.T) {
	_, err := Passages(NewDate(2024, time.March, 15), 0, 42, WithAltitude(Named("solar")))
	if err == nil {
		t.Fatal("expected error for unknown altitude name")
	}
}
