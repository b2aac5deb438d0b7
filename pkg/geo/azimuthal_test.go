package geo

import (
	"math"
	"testing"

	fmath "github.com/Faultbox/flat-earth/pkg/math"
)

const degTolerance = 1e-3

func TestRoundTrip(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lon := -179.0; lon <= 180; lon += 11 {
			p := LatLon{lat, lon}
			got, ok := FromAzimuthal(ToAzimuthal(p))
			if !ok {
				t.Fatalf("FromAzimuthal(ToAzimuthal(%v)) reported off-map", p)
			}
			if math.Abs(got.Lat-p.Lat) > degTolerance {
				t.Errorf("round trip lat %v -> %v", p, got)
			}
			// Longitude is undefined at the north pole.
			if lat == 90 {
				continue
			}
			if math.Abs(got.Lon-p.Lon) > degTolerance {
				t.Errorf("round trip lon %v -> %v", p, got)
			}
		}
	}
}

func TestRoundTripDateLine(t *testing.T) {
	p := LatLon{12.5, 180}
	got, ok := FromAzimuthal(ToAzimuthal(p))
	if !ok {
		t.Fatal("date line point reported off-map")
	}
	if math.Abs(got.Lat-12.5) > degTolerance || math.Abs(math.Abs(got.Lon)-180) > degTolerance {
		t.Errorf("round trip = %v, want %v", got, p)
	}
}

func TestNorthPoleAtOrigin(t *testing.T) {
	v := ToAzimuthal(LatLon{90, 0})
	if v != (fmath.Vec2{}) {
		t.Errorf("ToAzimuthal(north pole) = %v, want (0, 0)", v)
	}
}

func TestSouthPoleOnRim(t *testing.T) {
	for lon := -179.0; lon <= 180; lon += 17 {
		r := ToAzimuthal(LatLon{-90, lon}).Length()
		if math.Abs(r-1) > 1e-12 {
			t.Errorf("|ToAzimuthal(-90, %v)| = %v, want 1", lon, r)
		}
	}
}

func TestEquatorAtHalfRadius(t *testing.T) {
	tests := []struct {
		lon  float64
		want fmath.Vec2
	}{
		{0, fmath.Vec2{X: 0, Y: 0.5}},
		{90, fmath.Vec2{X: -0.5, Y: 0}},
		{-90, fmath.Vec2{X: 0.5, Y: 0}},
		{180, fmath.Vec2{X: 0, Y: -0.5}},
	}
	for _, tt := range tests {
		got := ToAzimuthal(LatLon{0, tt.lon})
		if got.Distance(tt.want) > 1e-12 {
			t.Errorf("ToAzimuthal(0, %v) = %v, want %v", tt.lon, got, tt.want)
		}
	}
}

func TestFromAzimuthalOutsideDisk(t *testing.T) {
	points := []fmath.Vec2{
		{X: 1.01, Y: 0},
		{X: 0, Y: -1.5},
		{X: 0.8, Y: 0.8},
		{X: -1, Y: -1},
	}
	for _, v := range points {
		p, ok := FromAzimuthal(v)
		if ok {
			t.Errorf("FromAzimuthal(%v) ok = true, want false", v)
		}
		if p.Lat >= -90 {
			t.Errorf("FromAzimuthal(%v).Lat = %v, want < -90", v, p.Lat)
		}
		if p.OnMap() {
			t.Errorf("FromAzimuthal(%v) = %v reports OnMap", v, p)
		}
	}
}

func TestFromAzimuthalRimTolerance(t *testing.T) {
	tests := []struct {
		name   string
		v      fmath.Vec2
		wantOK bool
	}{
		{"exactly on rim", fmath.Vec2{X: 1, Y: 0}, true},
		{"rounding above rim", fmath.Vec2{X: 1 + 5e-10, Y: 0}, true},
		{"at tolerance", fmath.Vec2{X: 0, Y: -(1 + 1e-9)}, true},
		{"just past tolerance", fmath.Vec2{X: 1 + 1e-8, Y: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := FromAzimuthal(tt.v)
			if ok != tt.wantOK {
				t.Fatalf("FromAzimuthal(%v) ok = %v, want %v", tt.v, ok, tt.wantOK)
			}
			if ok && p.Lat != -90 {
				t.Errorf("FromAzimuthal(%v).Lat = %v, want exactly -90 on the rim", tt.v, p.Lat)
			}
			if !ok && p.Lat >= -90 {
				t.Errorf("FromAzimuthal(%v).Lat = %v, want < -90", tt.v, p.Lat)
			}
		})
	}
}

func TestFromAzimuthalSouthPoleRoundTrip(t *testing.T) {
	for lon := -179.0; lon <= 180; lon += 17 {
		p, ok := FromAzimuthal(ToAzimuthal(LatLon{-90, lon}))
		if !ok || p.Lat != -90 {
			t.Errorf("south pole at lon %v: got %v ok=%v", lon, p, ok)
		}
	}
}

func TestFromAzimuthalInsideDisk(t *testing.T) {
	tests := []struct {
		v    fmath.Vec2
		want LatLon
	}{
		{fmath.Vec2{X: 0, Y: 0.5}, LatLon{0, 0}},
		{fmath.Vec2{X: -0.25, Y: 0}, LatLon{45, 90}},
		{fmath.Vec2{X: -1, Y: 0}, LatLon{-90, 90}},
	}
	for _, tt := range tests {
		got, ok := FromAzimuthal(tt.v)
		if !ok {
			t.Errorf("FromAzimuthal(%v) reported off-map", tt.v)
			continue
		}
		if math.Abs(got.Lat-tt.want.Lat) > 1e-9 || math.Abs(got.Lon-tt.want.Lon) > 1e-9 {
			t.Errorf("FromAzimuthal(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
