// Package sprite builds the 2D images layered over the world map.
package sprite

import (
	"image"
	"image/color"
	"math"
)

// Marker returns a filled disc of the given radius, centred in a square
// image of side 2*radius. Edge pixels are partially transparent so the
// disc stays round at small sizes.
func Marker(radius float64, c color.RGBA) *image.RGBA {
	side := int(math.Ceil(2 * radius))
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	center := float64(side) / 2

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			// Distance from the pixel centre to the disc centre
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center
			cover := radius + 0.5 - math.Hypot(dx, dy)
			if cover <= 0 {
				continue
			}
			a := math.Min(cover, 1) * float64(c.A)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(c.R) * a / 255),
				G: uint8(float64(c.G) * a / 255),
				B: uint8(float64(c.B) * a / 255),
				A: uint8(a),
			})
		}
	}
	return img
}
