package illumination

import (
	"math"
	"testing"

	"github.com/Faultbox/flat-earth/pkg/geo"
	fmath "github.com/Faultbox/flat-earth/pkg/math"
)

var washington = geo.LatLon{Lat: 47.7511, Lon: 120.7401}

func TestClassifyWashington(t *testing.T) {
	tests := []struct {
		name string
		g    geo.LatLon
		want Illumination
	}{
		{"sun location", washington, Lit},
		{"antipode", geo.LatLon{Lat: -47.7511, Lon: -59.2599}, Shaded},
		{"off map", geo.LatLon{Lat: -95, Lon: 0}, OffMap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(washington, tt.g); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.g, got, tt.want)
			}
		})
	}
}

func TestClassifyTerminator(t *testing.T) {
	sun := geo.LatLon{Lat: 0, Lon: 0}

	// 89 degrees of arc away is day, 91 is night.
	if got := Classify(sun, geo.LatLon{Lat: 0, Lon: 89}); got != Lit {
		t.Errorf("89 degrees from sun = %v, want lit", got)
	}
	if got := Classify(sun, geo.LatLon{Lat: 0, Lon: 91}); got != Shaded {
		t.Errorf("91 degrees from sun = %v, want shaded", got)
	}
	if got := Classify(sun, geo.LatLon{Lat: -90, Lon: 0}); got != Lit {
		t.Errorf("south pole with equinox sun = %v, want lit", got)
	}
}

func TestCanvasPixelToPlanar(t *testing.T) {
	c := Canvas{Width: 800, Height: 800}

	tests := []struct {
		x, y float64
		want fmath.Vec2
	}{
		{400, 400, fmath.Vec2{X: 0, Y: 0}},
		{800, 400, fmath.Vec2{X: 1, Y: 0}},
		{400, 0, fmath.Vec2{X: 0, Y: -1}},
		{200, 600, fmath.Vec2{X: -0.5, Y: 0.5}},
	}
	for _, tt := range tests {
		got := c.PixelToPlanar(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("PixelToPlanar(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
		back := c.PlanarToPixel(got)
		if back != (fmath.Vec2{X: tt.x, Y: tt.y}) {
			t.Errorf("PlanarToPixel(%v) = %v, want (%v, %v)", got, back, tt.x, tt.y)
		}
	}
}

func TestCanvasNonSquare(t *testing.T) {
	// Half the width is one projection unit, even on a wide canvas.
	c := Canvas{Width: 1000, Height: 600}
	got := c.PixelToPlanar(1000, 300)
	if got != (fmath.Vec2{X: 1, Y: 0}) {
		t.Errorf("PixelToPlanar(right edge) = %v, want (1, 0)", got)
	}
}

func TestCanvasLatLonAt(t *testing.T) {
	c := Canvas{Width: 800, Height: 800}

	p, ok := c.LatLonAt(400, 400)
	if !ok || p.Lat != 90 {
		t.Errorf("LatLonAt(center) = %v, %v, want north pole", p, ok)
	}

	if _, ok := c.LatLonAt(0, 0); ok {
		t.Error("LatLonAt(corner) reported on-map")
	}
	if got := c.ClassifyPixel(washington, 0, 0); got != OffMap {
		t.Errorf("ClassifyPixel(corner) = %v, want off-map", got)
	}
}

func TestCanvasMarker(t *testing.T) {
	c := Canvas{Width: 800, Height: 800}

	if got := c.Marker(geo.LatLon{Lat: 90, Lon: 0}); got != (fmath.Vec2{X: 400, Y: 400}) {
		t.Errorf("Marker(north pole) = %v, want (400, 400)", got)
	}

	// Equator at lon 0 is half a radius below the pole in pixel space.
	got := c.Marker(geo.LatLon{Lat: 0, Lon: 0})
	if math.Abs(got.X-400) > 1e-9 || math.Abs(got.Y-600) > 1e-9 {
		t.Errorf("Marker(0, 0) = %v, want (400, 600)", got)
	}

	// Marker and pixel lookup agree.
	m := c.Marker(washington)
	p, ok := geo.FromAzimuthal(c.PixelToPlanar(m.X, m.Y))
	if !ok || math.Abs(p.Lat-washington.Lat) > 1e-6 || math.Abs(p.Lon-washington.Lon) > 1e-6 {
		t.Errorf("pixel under marker = %v, want %v", p, washington)
	}
}

func TestIlluminationString(t *testing.T) {
	if Lit.String() != "lit" || Shaded.String() != "shaded" || OffMap.String() != "off-map" {
		t.Error("unexpected Illumination names")
	}
}
