// Package texture loads images from disk and prepares them for upload.
package texture

import (
	"fmt"
	"image"
	"os"

	// Decoders registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"golang.org/x/image/draw"
)

// Load decodes the image file at path. The format is detected from the
// file header.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, format, nil
}

// Fit scales img to exactly width x height and returns it as RGBA. smooth
// selects bilinear filtering; otherwise nearest-neighbour is used.
func Fit(img image.Image, width, height int, smooth bool) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	var scaler draw.Scaler = draw.NearestNeighbor
	if smooth {
		scaler = draw.BiLinear
	}
	scaler.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)

	return dst
}

// LoadFitted loads the image at path and scales it to width x height.
func LoadFitted(path string, width, height int, smooth bool) (*image.RGBA, error) {
	img, _, err := Load(path)
	if err != nil {
		return nil, err
	}
	return Fit(img, width, height, smooth), nil
}
