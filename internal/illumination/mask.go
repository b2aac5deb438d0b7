package illumination

import "image"

// Mask records which canvas pixels are on the night side.
type Mask struct {
	Width  int
	Height int
	// Pix holds one byte per pixel, row-major from the top-left:
	// 1 for shaded, 0 otherwise.
	Pix []uint8
}

// NewMask allocates an empty mask.
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Shaded reports whether pixel (x, y) is on the night side. Pixels outside
// the mask are never shaded.
func (m *Mask) Shaded(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

// Count returns the number of shaded pixels.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Points returns the coordinates of every shaded pixel in row-major order.
func (m *Mask) Points() []image.Point {
	pts := make([]image.Point, 0, m.Count())
	for y := 0; y < m.Height; y++ {
		row := m.Pix[y*m.Width : (y+1)*m.Width]
		for x, v := range row {
			if v != 0 {
				pts = append(pts, image.Pt(x, y))
			}
		}
	}
	return pts
}

// Alpha expands the mask into a single-channel buffer where shaded pixels
// carry the given opacity. The result is laid out for an R8 texture upload.
func (m *Mask) Alpha(shade uint8) []uint8 {
	out := make([]uint8, len(m.Pix))
	for i, v := range m.Pix {
		if v != 0 {
			out[i] = shade
		}
	}
	return out
}
