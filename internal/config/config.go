// Package config handles application configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/flat-earth/pkg/geo"
)

// Config holds all application settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Map        MapConfig        `yaml:"map"`
	Sun        SunConfig        `yaml:"sun"`
	Shade      ShadeConfig      `yaml:"shade"`
	Marker     MarkerConfig     `yaml:"marker"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds display settings. Width and Height are also the size
// of the map canvas.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// MapConfig holds the world map image settings.
type MapConfig struct {
	Path   string `yaml:"path"`
	Smooth bool   `yaml:"smooth"` // bilinear instead of nearest-neighbour scaling
}

// SunConfig holds the initial sub-solar point and the key that drags it.
type SunConfig struct {
	Start     geo.LatLon `yaml:"start"`
	SelectKey string     `yaml:"select_key"` // SDL key name, e.g. "Space"
}

// ShadeConfig holds night-side rendering settings.
type ShadeConfig struct {
	Alpha   int `yaml:"alpha"`   // 0-255 opacity of the night overlay
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
}

// MarkerConfig holds the sun marker appearance.
type MarkerConfig struct {
	Radius float64  `yaml:"radius"`
	Color  [3]uint8 `yaml:"color,flow"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "Flat Earth",
			Width:      800,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
		},
		Map: MapConfig{
			Path:   "map.jpg",
			Smooth: true,
		},
		Sun: SunConfig{
			// Washington State
			Start:     geo.LatLon{Lat: 47.7511, Lon: 120.7401},
			SelectKey: "Space",
		},
		Shade: ShadeConfig{
			Alpha:   220,
			Workers: 0,
		},
		Marker: MarkerConfig{
			Radius: 10,
			Color:  [3]uint8{220, 220, 30},
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "flat-earth",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Map.Path == "" {
		return fmt.Errorf("map path is empty")
	}
	if !c.Sun.Start.Valid() {
		return fmt.Errorf("sun start %v is out of range", c.Sun.Start)
	}
	if c.Shade.Alpha < 0 || c.Shade.Alpha > 255 {
		return fmt.Errorf("shade alpha %d must be within 0-255", c.Shade.Alpha)
	}
	if c.Shade.Workers < 0 {
		return fmt.Errorf("shade workers %d must not be negative", c.Shade.Workers)
	}
	if c.Marker.Radius <= 0 {
		return fmt.Errorf("marker radius %v must be positive", c.Marker.Radius)
	}
	return nil
}
