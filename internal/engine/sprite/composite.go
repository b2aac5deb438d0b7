package sprite

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/Faultbox/flat-earth/internal/illumination"
)

// Layers holds everything drawn for one frame, bottom to top.
type Layers struct {
	Map    *image.RGBA        // world map, already fitted to the canvas
	Frame  illumination.Frame // night mask and sun position
	Shade  uint8              // night overlay opacity
	Marker *image.RGBA        // sun marker sprite
}

// Composite draws the layers onto a new canvas-sized image: black
// background, world map, night overlay, then the marker centred on the
// sub-solar point.
func Composite(l Layers) *image.RGBA {
	mask := l.Frame.Mask
	bounds := image.Rect(0, 0, mask.Width, mask.Height)
	out := image.NewRGBA(bounds)

	draw.Draw(out, bounds, image.NewUniform(color.Black), image.Point{}, draw.Src)
	if l.Map != nil {
		draw.Draw(out, bounds, l.Map, l.Map.Bounds().Min, draw.Over)
	}

	if l.Shade > 0 {
		night := image.NewAlpha(bounds)
		for _, p := range mask.Points() {
			night.SetAlpha(p.X, p.Y, color.Alpha{A: l.Shade})
		}
		draw.DrawMask(out, bounds, image.NewUniform(color.Black), image.Point{}, night, image.Point{}, draw.Over)
	}

	if l.Marker != nil {
		size := l.Marker.Bounds().Size()
		at := image.Pt(
			int(l.Frame.Marker.X)-size.X/2,
			int(l.Frame.Marker.Y)-size.Y/2,
		)
		draw.Draw(out, image.Rectangle{Min: at, Max: at.Add(size)}, l.Marker, l.Marker.Bounds().Min, draw.Over)
	}

	return out
}
