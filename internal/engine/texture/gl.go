package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D OpenGL texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int
	format uint32
}

// FromRGBA uploads img as an RGBA8 texture. Row 0 of the image becomes
// texture row 0 (v = 0).
func FromRGBA(img *image.RGBA, smooth bool) *Texture {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	t := newTexture(w, h, gl.RGBA, smooth)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t
}

// NewR8 allocates an empty single-channel texture, for the night mask.
func NewR8(width, height int) *Texture {
	t := newTexture(width, height, gl.RED, false)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(width), int32(height), 0,
		gl.RED, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return t
}

// Update replaces the whole texture contents. pix must match the texture's
// size and channel count.
func (t *Texture) Update(pix []uint8) {
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(t.Width), int32(t.Height),
		t.format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Bind binds the texture to the given texture unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the GPU texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

func newTexture(width, height int, format uint32, smooth bool) *Texture {
	t := &Texture{Width: width, Height: height, format: format}

	filter := int32(gl.NEAREST)
	if smooth {
		filter = gl.LINEAR
	}

	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return t
}
