// Package app runs the interactive flat-earth view: it owns the window,
// feeds pointer input into the sun position, and draws each frame.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/flat-earth/internal/config"
	"github.com/Faultbox/flat-earth/internal/engine/debug"
	"github.com/Faultbox/flat-earth/internal/engine/input"
	"github.com/Faultbox/flat-earth/internal/engine/renderer"
	"github.com/Faultbox/flat-earth/internal/engine/scene"
	"github.com/Faultbox/flat-earth/internal/engine/window"
	"github.com/Faultbox/flat-earth/internal/illumination"
	"github.com/Faultbox/flat-earth/internal/logger"
	"github.com/Faultbox/flat-earth/internal/sun"
)

// App is the main application instance.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	shots    *debug.ScreenshotCapture

	scene     *scene.Scene
	sun       *sun.Tracker
	selectKey sdl.Scancode
}

// New loads the world map and opens the window. A map that cannot be
// loaded is reported before any window appears.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	a.log.Info("initializing",
		zap.String("map", cfg.Map.Path),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	var err error
	a.scene, err = scene.New(cfg)
	if err != nil {
		return nil, err
	}

	a.selectKey, err = input.ScancodeFromName(cfg.Sun.SelectKey)
	if err != nil {
		return nil, fmt.Errorf("sun select key: %w", err)
	}

	// Create window (this also creates OpenGL context)
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	a.renderer, err = renderer.New(renderer.Config{
		CanvasWidth:  cfg.Window.Width,
		CanvasHeight: cfg.Window.Height,
		Shade:        uint8(cfg.Shade.Alpha),
		SmoothMap:    cfg.Map.Smooth,
	}, a.scene.WorldMap, a.scene.Marker)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	a.renderer.Resize(a.window.DrawableSize())

	a.input = input.New()
	a.shots = debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix)
	a.sun = sun.NewTracker(cfg.Sun.Start, logger.Named("sun"))

	a.log.Info("initialized successfully")
	return a, nil
}

// Run starts the main loop. It returns when the window is closed, Escape
// is pressed, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	var frame illumination.Frame
	dirty := true

	a.log.Info("starting main loop")

	for a.running {
		if ctx.Err() != nil {
			break
		}

		// 1. Process input
		if a.input.Update() {
			break
		}
		a.handleEvents()

		// 2. Move the sun
		if a.sun.Update(a.pointerSample()) {
			dirty = true
		}

		// 3. Resample only when the sun moved; the mask depends on nothing else.
		if dirty {
			var err error
			frame, err = a.scene.Frame(ctx, a.sun.Position())
			if errors.Is(err, context.Canceled) {
				break
			}
			if err != nil {
				return fmt.Errorf("frame: %w", err)
			}
			dirty = false
		}

		// 4. Render and present
		a.renderer.Draw(frame)
		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.captureScreenshot()
		}
		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= time.Second {
			fps := float64(frameCount) / elapsed.Seconds()
			a.window.SetTitle(fmt.Sprintf("%s | sun %s | pointer %s | %.0f fps",
				a.cfg.Window.Title, a.sun.Position(), a.pointerInfo(), fps))
			a.log.Debug("fps", zap.Float64("fps", fps))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	a.log.Info("main loop finished")
	return nil
}

// Close cleans up resources.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			a.renderer.Resize(a.window.DrawableSize())
		case input.EventKeyDown:
			if event.Key == sdl.SCANCODE_ESCAPE {
				a.running = false
			}
		}
	}
}

// pointerSample reads the pointer in projection coordinates.
func (a *App) pointerSample() sun.PointerSample {
	mx, my := a.input.Mouse()
	ww, wh := a.window.GetSize()
	return sun.PointerSample{
		Position: scene.PointerToPlanar(mx, my, ww, wh, a.scene.Canvas),
		Select:   a.input.IsKeyHeld(a.selectKey),
	}
}

// pointerInfo describes the map under the pointer.
func (a *App) pointerInfo() scene.PixelInfo {
	mx, my := a.input.Mouse()
	ww, wh := a.window.GetSize()
	x, y := scene.PointerToCanvas(mx, my, ww, wh, a.scene.Canvas)
	return a.scene.Inspect(a.sun.Position(), int(x), int(y))
}

func (a *App) captureScreenshot() {
	pixels, w, h := a.renderer.ReadPixels()
	name, err := a.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("file", name))
}
