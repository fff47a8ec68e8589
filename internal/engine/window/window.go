// Package window creates the SDL2 window, its OpenGL context and the 2D
// canvas drawn into it.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/tfriedel6/canvas/sdlcanvas"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/internal/logger"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps the sdlcanvas window and its drawing surface.
type Window struct {
	config  Config
	wnd     *sdlcanvas.Window
	surface *surface.Canvas
	log     *zap.Logger

	arrow  *sdl.Cursor
	hand   *sdl.Cursor
	onHand bool
}

// New creates a new window with an OpenGL backed canvas.
func New(cfg Config) (*Window, error) {
	log := logger.Named("window")

	wnd, cv, err := sdlcanvas.CreateWindow(cfg.Width, cfg.Height, cfg.Title)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	w := &Window{config: cfg, wnd: wnd, log: log}

	w.surface, err = surface.NewCanvas(cv)
	if err != nil {
		wnd.Destroy()
		return nil, fmt.Errorf("create surface: %w", err)
	}

	if err := gl.Init(); err != nil {
		log.Warn("OpenGL info unavailable", zap.Error(err))
	} else {
		log.Info("OpenGL initialized",
			zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
			zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		)
	}

	w.arrow = sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_ARROW)
	w.hand = sdl.CreateSystemCursor(sdl.SYSTEM_CURSOR_HAND)

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	if cfg.Fullscreen {
		if err := wnd.Window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			log.Warn("failed to enter fullscreen", zap.Error(err))
		}
	}

	width, height := w.Size()
	log.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float64("pixelRatio", w.PixelRatio()),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	w.log.Info("closing window")
	for _, c := range []*sdl.Cursor{w.arrow, w.hand} {
		if c != nil {
			sdl.FreeCursor(c)
		}
	}
	w.wnd.Destroy()
}

// Surface returns the drawing surface.
func (w *Window) Surface() *surface.Canvas {
	return w.surface
}

// BeginFrame makes the context current and prepares the surface for a
// frame at the current logical window size. Call it after input has been
// drained for the frame.
func (w *Window) BeginFrame() error {
	if err := w.wnd.StartFrame(); err != nil {
		return fmt.Errorf("start frame: %w", err)
	}
	w.syncBounds()
	width, height := w.Size()
	w.surface.BeginFrame(width, height)
	return nil
}

// syncBounds resizes the GL viewport to the drawable. Input drains the SDL
// queue before StartFrame runs, so sdlcanvas never sees size changes itself.
func (w *Window) syncBounds() {
	cw, ch := w.surface.BackingSize()
	fbw, fbh := w.wnd.FramebufferSize()
	width, height, changed := boundsChange(cw, ch, fbw, fbh)
	if !changed {
		return
	}
	w.wnd.Backend.SetBounds(0, 0, width, height)
	w.log.Debug("viewport resized",
		zap.Int("fromWidth", cw), zap.Int("fromHeight", ch),
		zap.Int("width", width), zap.Int("height", height),
	)
}

// boundsChange reports the new backing size when the drawable differs from
// the canvas. A minimized window reports an empty drawable, which is ignored.
func boundsChange(canvasW, canvasH, drawableW, drawableH int) (int, int, bool) {
	if drawableW <= 0 || drawableH <= 0 {
		return canvasW, canvasH, false
	}
	if drawableW == canvasW && drawableH == canvasH {
		return canvasW, canvasH, false
	}
	return drawableW, drawableH, true
}

// EndFrame presents the frame.
func (w *Window) EndFrame() {
	w.wnd.FinishFrame()
}

// Size returns the logical window size, the space pointer events use.
func (w *Window) Size() (int, int) {
	width, height := w.wnd.Window.GetSize()
	return int(width), int(height)
}

// PixelRatio returns drawable pixels per logical pixel.
func (w *Window) PixelRatio() float64 {
	lw, _ := w.wnd.Window.GetSize()
	dw, _ := w.wnd.Window.GLGetDrawableSize()
	if lw <= 0 {
		return 1
	}
	return float64(dw) / float64(lw)
}

// FPS returns the averaged frame rate.
func (w *Window) FPS() float32 {
	return w.wnd.FPS()
}

// SetHandCursor shows the hand cursor over clickable controls and the
// arrow elsewhere.
func (w *Window) SetHandCursor(on bool) {
	if on == w.onHand {
		return
	}
	c := w.arrow
	if on {
		c = w.hand
	}
	if c == nil {
		return
	}
	sdl.SetCursor(c)
	w.onHand = on
}

// ToggleFullscreen switches between windowed and desktop fullscreen.
func (w *Window) ToggleFullscreen() {
	w.config.Fullscreen = !w.config.Fullscreen
	var flags uint32
	if w.config.Fullscreen {
		flags = sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if err := w.wnd.Window.SetFullscreen(flags); err != nil {
		w.log.Warn("failed to toggle fullscreen", zap.Error(err))
	}
}
