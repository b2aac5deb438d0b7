// Package renderer draws the world map, night overlay and sun marker with
// OpenGL.
package renderer

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/flat-earth/internal/engine/renderer/shaders"
	"github.com/Faultbox/flat-earth/internal/engine/shader"
	"github.com/Faultbox/flat-earth/internal/engine/texture"
	"github.com/Faultbox/flat-earth/internal/illumination"
	"github.com/Faultbox/flat-earth/internal/logger"
	"github.com/Faultbox/flat-earth/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	CanvasWidth  int
	CanvasHeight int
	Shade        uint8 // night overlay opacity
	SmoothMap    bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program *shader.Program

	// Unit quad
	quadVAO uint32
	quadVBO uint32

	mapTex    *texture.Texture
	maskTex   *texture.Texture
	markerTex *texture.Texture
	uploaded  maskCache

	// Canvas pixel space to clip space
	proj math.Mat4

	viewportW int
	viewportH int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, worldMap, marker *image.RGBA) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		log:       logger.Named("renderer"),
		viewportW: cfg.CanvasWidth,
		viewportH: cfg.CanvasHeight,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	// Sprites are premultiplied (image.RGBA convention)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)

	var err error
	r.program, err = shader.New(shaders.QuadVertexShader, shaders.QuadFragmentShader,
		"uTransform", "uTexture", "uMask", "uTint")
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.createQuad()

	r.mapTex = texture.FromRGBA(worldMap, cfg.SmoothMap)
	r.maskTex = texture.NewR8(cfg.CanvasWidth, cfg.CanvasHeight)
	r.markerTex = texture.FromRGBA(marker, true)

	r.proj = math.Ortho(0, float32(cfg.CanvasWidth), float32(cfg.CanvasHeight), 0, -1, 1)

	r.log.Debug("renderer ready",
		zap.Int("canvas_width", cfg.CanvasWidth),
		zap.Int("canvas_height", cfg.CanvasHeight),
		zap.Uint32("program", r.program.ID),
	)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, t := range []*texture.Texture{r.mapTex, r.maskTex, r.markerTex} {
		if t != nil {
			t.Delete()
		}
	}
	if r.quadVAO != 0 {
		gl.DeleteVertexArrays(1, &r.quadVAO)
	}
	if r.quadVBO != 0 {
		gl.DeleteBuffers(1, &r.quadVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize. The canvas is stretched over the whole
// drawable area.
func (r *Renderer) Resize(width, height int) {
	r.viewportW = width
	r.viewportH = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame: map, night overlay, then the sun marker.
func (r *Renderer) Draw(f illumination.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.program.Use()
	gl.Uniform1i(r.program.Uniform("uTexture"), 0)
	gl.BindVertexArray(r.quadVAO)

	w := float32(r.config.CanvasWidth)
	h := float32(r.config.CanvasHeight)

	// World map
	r.drawQuad(r.mapTex, math.Rect(r.proj, 0, 0, w, h), false, [4]float32{1, 1, 1, 1})

	// Night side
	if r.uploaded.changed(f.Mask) {
		r.maskTex.Update(f.Mask.Alpha(r.config.Shade))
	}
	r.drawQuad(r.maskTex, math.Rect(r.proj, 0, 0, w, h), true, [4]float32{0, 0, 0, 1})

	// Sun marker, centred on the sub-solar point
	mw := float32(r.markerTex.Width)
	mh := float32(r.markerTex.Height)
	x := float32(f.Marker.X) - mw/2
	y := float32(f.Marker.Y) - mh/2
	r.drawQuad(r.markerTex, math.Rect(r.proj, x, y, mw, mh), false, [4]float32{1, 1, 1, 1})

	gl.BindVertexArray(0)
}

// ReadPixels reads back the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.viewportW, r.viewportH
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

func (r *Renderer) drawQuad(t *texture.Texture, transform math.Mat4, mask bool, tint [4]float32) {
	isMask := int32(0)
	if mask {
		isMask = 1
	}
	t.Bind(0)
	gl.UniformMatrix4fv(r.program.Uniform("uTransform"), 1, false, transform.Ptr())
	gl.Uniform1i(r.program.Uniform("uMask"), isMask)
	gl.Uniform4f(r.program.Uniform("uTint"), tint[0], tint[1], tint[2], tint[3])
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// maskCache remembers which mask is in the mask texture.
type maskCache struct {
	last *illumination.Mask
}

// changed reports whether m differs from the last uploaded mask and
// records it as uploaded.
func (c *maskCache) changed(m *illumination.Mask) bool {
	if m == nil || m == c.last {
		return false
	}
	c.last = m
	return true
}

// createQuad creates the unit quad geometry.
func (r *Renderer) createQuad() {
	vertices := []float32{
		0, 0, // top-left
		1, 0, // top-right
		0, 1, // bottom-left
		1, 1, // bottom-right
	}

	gl.GenVertexArrays(1, &r.quadVAO)
	gl.BindVertexArray(r.quadVAO)

	gl.GenBuffers(1, &r.quadVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
