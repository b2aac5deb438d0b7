package illumination

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/flat-earth/pkg/geo"
	"github.com/Faultbox/flat-earth/pkg/math"
)

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	Sun    geo.LatLon
	Mask   *Mask
	Marker math.Vec2 // pixel position of the sub-solar point
}

// Sampler evaluates the terminator for every pixel of a canvas. Rows are
// spread over a bounded set of goroutines; each goroutine writes its own
// rows of the mask, so the result matches a sequential pass exactly.
type Sampler struct {
	canvas  Canvas
	workers int
	log     *zap.Logger

	// Geographic coordinates of each pixel never change for a given
	// canvas, so they are computed once.
	coords []geo.LatLon
	onMap  []bool
}

// NewSampler creates a sampler for the canvas. workers <= 0 uses GOMAXPROCS.
func NewSampler(canvas Canvas, workers int, log *zap.Logger) (*Sampler, error) {
	if canvas.Width <= 0 || canvas.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", canvas.Width, canvas.Height)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop()
	}

	s := &Sampler{
		canvas:  canvas,
		workers: workers,
		log:     log,
		coords:  make([]geo.LatLon, canvas.Width*canvas.Height),
		onMap:   make([]bool, canvas.Width*canvas.Height),
	}
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			i := y*canvas.Width + x
			s.coords[i], s.onMap[i] = canvas.LatLonAt(x, y)
		}
	}

	log.Debug("sampler created",
		zap.Int("width", canvas.Width),
		zap.Int("height", canvas.Height),
		zap.Int("workers", workers),
	)
	return s, nil
}

// Sample builds the night-side mask for the given sun position.
func (s *Sampler) Sample(ctx context.Context, sun geo.LatLon) (*Mask, error) {
	mask := NewMask(s.canvas.Width, s.canvas.Height)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	rowsPerTask := (s.canvas.Height + s.workers - 1) / s.workers
	for y0 := 0; y0 < s.canvas.Height; y0 += rowsPerTask {
		y1 := min(y0+rowsPerTask, s.canvas.Height)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.sampleRows(mask, sun, y0, y1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sampling illumination: %w", err)
	}
	return mask, nil
}

// sampleRows fills rows [y0, y1) of mask.
func (s *Sampler) sampleRows(mask *Mask, sun geo.LatLon, y0, y1 int) {
	for i := y0 * s.canvas.Width; i < y1*s.canvas.Width; i++ {
		if !s.onMap[i] {
			continue
		}
		if Classify(sun, s.coords[i]) == Shaded {
			mask.Pix[i] = 1
		}
	}
}

// Frame samples the mask and places the sun marker.
func (s *Sampler) Frame(ctx context.Context, sun geo.LatLon) (Frame, error) {
	mask, err := s.Sample(ctx, sun)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Sun:    sun,
		Mask:   mask,
		Marker: s.canvas.Marker(sun),
	}, nil
}
