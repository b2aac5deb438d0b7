// Package scene holds the GPU-independent state of the view: the fitted
// world map, the marker sprite and the illumination sampler.
package scene

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/flat-earth/internal/assets"
	"github.com/Faultbox/flat-earth/internal/config"
	"github.com/Faultbox/flat-earth/internal/engine/debug"
	"github.com/Faultbox/flat-earth/internal/engine/sprite"
	"github.com/Faultbox/flat-earth/internal/engine/texture"
	"github.com/Faultbox/flat-earth/internal/illumination"
	"github.com/Faultbox/flat-earth/internal/logger"
	"github.com/Faultbox/flat-earth/pkg/geo"
	"github.com/Faultbox/flat-earth/pkg/math"
)

// Scene is shared by the interactive window and the headless snapshot.
type Scene struct {
	Canvas   illumination.Canvas
	WorldMap *image.RGBA
	Marker   *image.RGBA

	sampler *illumination.Sampler
	shade   uint8
}

// New loads and fits the world map and prepares the sampler. A map that
// cannot be loaded is an error.
func New(cfg *config.Config) (*Scene, error) {
	canvas := illumination.Canvas{Width: cfg.Window.Width, Height: cfg.Window.Height}

	mapPath, err := assets.DefaultLocator(config.ConfigDir()).Find(cfg.Map.Path)
	if assets.IsNotFound(err) {
		return nil, fmt.Errorf("world map %s not found: %w", cfg.Map.Path, err)
	}
	if err != nil {
		return nil, fmt.Errorf("locating world map: %w", err)
	}
	worldMap, err := texture.LoadFitted(mapPath, canvas.Width, canvas.Height, cfg.Map.Smooth)
	if err != nil {
		return nil, fmt.Errorf("loading world map: %w", err)
	}

	sampler, err := illumination.NewSampler(canvas, cfg.Shade.Workers, logger.Named("sampler"))
	if err != nil {
		return nil, err
	}

	return &Scene{
		Canvas:   canvas,
		WorldMap: worldMap,
		Marker:   sprite.Marker(cfg.Marker.Radius, markerColor(cfg.Marker.Color)),
		sampler:  sampler,
		shade:    uint8(cfg.Shade.Alpha),
	}, nil
}

// Frame samples the night side and places the marker for sun.
func (s *Scene) Frame(ctx context.Context, sun geo.LatLon) (illumination.Frame, error) {
	return s.sampler.Frame(ctx, sun)
}

// Composite renders a frame on the CPU.
func (s *Scene) Composite(f illumination.Frame) *image.RGBA {
	return sprite.Composite(sprite.Layers{
		Map:    s.WorldMap,
		Frame:  f,
		Shade:  s.shade,
		Marker: s.Marker,
	})
}

// PolarNight reports whether the north pole is on the night side of f.
func (s *Scene) PolarNight(f illumination.Frame) bool {
	c := s.Canvas.Center()
	return f.Mask.Shaded(int(c.X), int(c.Y))
}

// Snapshot renders a single frame for the configured start position and
// writes it to path as PNG. It needs no window or GPU.
func Snapshot(ctx context.Context, cfg *config.Config, path string) error {
	s, err := New(cfg)
	if err != nil {
		return err
	}

	f, err := s.Frame(ctx, cfg.Sun.Start)
	if err != nil {
		return fmt.Errorf("frame: %w", err)
	}

	if err := debug.WritePNG(path, s.Composite(f)); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	logger.Named("app").Info("snapshot written",
		zap.String("file", path),
		zap.Stringer("sun", cfg.Sun.Start),
		zap.Int("shaded_pixels", f.Mask.Count()),
		zap.Bool("polar_night", s.PolarNight(f)),
	)
	return nil
}

// PointerToCanvas maps a pointer position in window coordinates to canvas
// pixels. The canvas is stretched over the whole window.
func PointerToCanvas(mx, my, winW, winH int, c illumination.Canvas) (float64, float64) {
	x := float64(mx)
	y := float64(my)
	if winW > 0 && winH > 0 {
		x = x * float64(c.Width) / float64(winW)
		y = y * float64(c.Height) / float64(winH)
	}
	return x, y
}

// PointerToPlanar maps a pointer position in window coordinates to the
// projection plane.
func PointerToPlanar(mx, my, winW, winH int, c illumination.Canvas) math.Vec2 {
	return c.PixelToPlanar(PointerToCanvas(mx, my, winW, winH, c))
}

// PixelInfo describes one canvas pixel for a given sun position.
type PixelInfo struct {
	At    geo.LatLon
	OnMap bool
	State illumination.Illumination
	// SunKm is the great-circle distance to the sub-solar point.
	SunKm float64
}

func (i PixelInfo) String() string {
	if !i.OnMap {
		return "off map"
	}
	return fmt.Sprintf("%s %s, %.0f km from sun", i.At, i.State, i.SunKm)
}

// Inspect describes the canvas pixel (x, y).
func (s *Scene) Inspect(sun geo.LatLon, x, y int) PixelInfo {
	g, ok := s.Canvas.LatLonAt(x, y)
	info := PixelInfo{
		At:    g,
		OnMap: ok,
		State: s.Canvas.ClassifyPixel(sun, x, y),
	}
	if ok {
		info.SunKm = sun.DistanceTo(g)
	}
	return info
}

// markerColor converts the configured marker colour to opaque RGBA.
func markerColor(c [3]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: 255}
}
