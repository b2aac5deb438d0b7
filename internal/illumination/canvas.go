// Package illumination classifies every pixel of the map canvas as day,
// night or off-map for a given sub-solar point.
package illumination

import (
	"github.com/Faultbox/flat-earth/pkg/geo"
	"github.com/Faultbox/flat-earth/pkg/math"
)

// Illumination is the classification of a single pixel.
type Illumination uint8

const (
	// OffMap pixels lie outside the projection disk.
	OffMap Illumination = iota
	// Lit pixels are inside the hemisphere facing the sun.
	Lit
	// Shaded pixels are on the night side.
	Shaded
)

func (i Illumination) String() string {
	switch i {
	case Lit:
		return "lit"
	case Shaded:
		return "shaded"
	default:
		return "off-map"
	}
}

// Classify decides whether g is lit by a sun standing directly over sun.
func Classify(sun, g geo.LatLon) Illumination {
	if !g.OnMap() {
		return OffMap
	}
	if geo.Distance(sun, g) < geo.TerminatorDistanceKm {
		return Lit
	}
	return Shaded
}

// Canvas maps pixel coordinates onto the projection plane. The disk is
// centred on the canvas and its radius is half the canvas width.
type Canvas struct {
	Width  int
	Height int
}

// Center returns the pixel position of the north pole.
func (c Canvas) Center() math.Vec2 {
	return math.Vec2{X: float64(c.Width) / 2, Y: float64(c.Height) / 2}
}

// HalfWidth returns the number of pixels per projection unit.
func (c Canvas) HalfWidth() float64 {
	return float64(c.Width) / 2
}

// PixelToPlanar converts a pixel position to projection coordinates.
// Pixel y grows downwards and so does planar y.
func (c Canvas) PixelToPlanar(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}.Sub(c.Center()).Div(c.HalfWidth())
}

// PlanarToPixel is the inverse of PixelToPlanar.
func (c Canvas) PlanarToPixel(v math.Vec2) math.Vec2 {
	return c.Center().Add(v.Scale(c.HalfWidth()))
}

// LatLonAt returns the geographic point under pixel (x, y). ok is false
// when the pixel lies outside the projection disk.
func (c Canvas) LatLonAt(x, y int) (geo.LatLon, bool) {
	return geo.FromAzimuthal(c.PixelToPlanar(float64(x), float64(y)))
}

// ClassifyPixel classifies pixel (x, y) for the given sun position.
func (c Canvas) ClassifyPixel(sun geo.LatLon, x, y int) Illumination {
	g, ok := c.LatLonAt(x, y)
	if !ok {
		return OffMap
	}
	return Classify(sun, g)
}

// Marker returns the pixel position of the sun marker.
func (c Canvas) Marker(sun geo.LatLon) math.Vec2 {
	return c.PlanarToPixel(geo.ToAzimuthal(sun))
}
