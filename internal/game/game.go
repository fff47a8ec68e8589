// Package game implements the main loop: window, input, audio and the
// scene session.
package game

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/config"
	"github.com/Faultbox/heartfield/internal/engine/audio"
	"github.com/Faultbox/heartfield/internal/engine/debug"
	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/window"
	"github.com/Faultbox/heartfield/internal/game/scene"
	"github.com/Faultbox/heartfield/internal/game/states"
	"github.com/Faultbox/heartfield/internal/game/ui"
	"github.com/Faultbox/heartfield/internal/logger"
)

// Title is the window title.
const Title = "Heartfield"

// Game is the main application instance.
type Game struct {
	cfg     *config.Config
	running bool

	window  *window.Window
	input   *input.Input
	audio   *audio.Manager
	session *states.Session
	overlay *ui.DebugOverlay
	shots   *debug.Screenshotter

	screenshotPending bool
	log               *zap.Logger
}

// New creates the window and every subsystem from cfg.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
		zap.Bool("sound", cfg.Audio.Enabled),
		zap.Uint64("seed", cfg.Scene.Seed),
	)

	g := &Game{
		cfg:     cfg,
		input:   input.New(),
		overlay: ui.NewDebugOverlay(),
		shots:   debug.NewScreenshotter(cfg.Debug.ScreenshotDir, "heartfield"),
		log:     log,
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The device opens lazily on the first pointer press.
	g.audio = audio.New(cfg.Audio.Enabled, cfg.Audio.SFXVolume)

	sc := scene.New(scene.Config{
		StarCount: cfg.Scene.StarCount,
		Seed:      cfg.Scene.Seed,
		Sound:     g.audio,
	})
	g.session = states.NewSession(sc, g.audio, nil)

	log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main loop and returns when the window closes.
func (g *Game) Run() error {
	g.running = true

	width, height := g.window.Size()
	if err := g.session.Start(float64(width), float64(height)); err != nil {
		return fmt.Errorf("start session: %w", err)
	}

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	g.log.Info("starting game loop")

	for g.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		for _, ev := range g.input.Events() {
			if err := g.handleEvent(ev); err != nil {
				return fmt.Errorf("input error: %w", err)
			}
		}
		if !g.running {
			break
		}

		// A resize event may be missed while the window is dragged, so
		// the size is checked every frame.
		width, height = g.window.Size()
		g.session.Resize(float64(width), float64(height))

		// 2. Update and render
		if err := g.window.BeginFrame(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		surf := g.window.Surface()
		if err := g.session.Frame(surf, dt); err != nil {
			return fmt.Errorf("frame error: %w", err)
		}
		g.window.SetHandCursor(g.session.OverControl())
		g.overlay.Update(dt*1000, g.session.Scene().Stats(), ui.AudioStatus{
			Open:    g.audio.IsInitialized(),
			Enabled: g.audio.Enabled(),
			Volume:  g.audio.GetSFXVolume(),
		})
		g.overlay.Render(surf)

		if g.screenshotPending {
			g.screenshotPending = false
			g.saveScreenshot()
		}

		// 3. Present
		g.window.EndFrame()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("avg", g.window.FPS()),
				zap.String("state", g.session.Current().Name()),
				zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	g.log.Info("game loop stopped")
	return nil
}

func (g *Game) handleEvent(ev input.Event) error {
	switch ev.Type {
	case input.EventQuit:
		g.running = false
	case input.EventWindowResize:
		g.session.Resize(float64(ev.Width), float64(ev.Height))
	case input.EventKeyDown:
		g.handleAction(input.KeyAction(ev.Key))
	case input.EventPointerDown, input.EventPointerMove, input.EventPointerUp, input.EventPointerLeave:
		return g.session.HandleInput(ev)
	}
	return nil
}

func (g *Game) handleAction(act input.Action) {
	if act == input.ActionNone {
		return
	}
	g.log.Debug("key command", zap.Stringer("action", act))

	if g.session.Apply(act) {
		return
	}
	switch act {
	case input.ActionScreenshot:
		g.screenshotPending = true
	case input.ActionFullscreen:
		g.window.ToggleFullscreen()
	case input.ActionDebug:
		g.overlay.Toggle()
	case input.ActionQuit:
		g.running = false
	}
}

// saveScreenshot captures the frame drawn so far. Failures are logged and
// the game continues.
func (g *Game) saveScreenshot() {
	path, err := g.shots.Save(g.window.Surface().Snapshot())
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases the audio device and the window.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.audio != nil {
		g.audio.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
