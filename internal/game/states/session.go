package states

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/internal/engine/ui2d"
	"github.com/Faultbox/heartfield/internal/game/scene"
	"github.com/Faultbox/heartfield/internal/game/ui"
	"github.com/Faultbox/heartfield/internal/logger"
)

// Audio is the sound switch the HUD controls.
type Audio interface {
	EnsureInit() error
	Enabled() bool
	Toggle() bool
}

// Session ties the scene, the UI and the state manager together. All
// methods run on the frame thread.
type Session struct {
	scene      *scene.Scene
	audio      Audio
	ui         *ui2d.Context
	hud        *ui.HUD
	completion *ui.Completion

	manager  *Manager
	playing  *PlayingState
	complete *CompleteState

	now func() time.Time
	log *zap.Logger
}

// NewSession creates a session around sc. clock may be nil.
func NewSession(sc *scene.Scene, a Audio, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}
	s := &Session{
		scene:      sc,
		audio:      a,
		ui:         ui2d.NewContext(),
		hud:        ui.NewHUD(),
		completion: ui.NewCompletion(),
		manager:    NewManager(),
		now:        clock,
		log:        logger.Named("session"),
	}
	s.playing = NewPlayingState(s)
	s.complete = NewCompleteState(s)
	return s
}

// Start generates the first scene for a viewport and enters the playing
// state.
func (s *Session) Start(width, height float64) error {
	s.scene.Initialize(width, height)
	s.manager.Change(s.playing)
	return s.manager.Update(0)
}

// Frame runs pending transitions, updates and draws the current state.
func (s *Session) Frame(surf surface.Surface, dt float64) error {
	if err := s.manager.Update(dt); err != nil {
		return err
	}
	return s.manager.Render(surf)
}

// HandleInput forwards a pointer event to the current state.
func (s *Session) HandleInput(ev input.Event) error {
	return s.manager.HandleInput(ev)
}

// Apply runs a command from a key or a HUD button. It reports whether the
// session handled it.
func (s *Session) Apply(act input.Action) bool {
	switch act {
	case input.ActionFocusNext:
		if _, ok := s.manager.Current().(*PlayingState); !ok {
			return true
		}
		if !s.scene.FocusNextHeart() {
			s.log.Debug("focus requested with no heart left")
		}
	case input.ActionToggleSound:
		s.ToggleSound()
	case input.ActionRestart:
		s.Restart()
	default:
		return false
	}
	return true
}

// ToggleSound flips the sound switch. Turning it on counts as a user
// gesture and opens the device.
func (s *Session) ToggleSound() bool {
	on := s.audio.Toggle()
	if on {
		if err := s.audio.EnsureInit(); err != nil {
			s.log.Warn("audio unavailable", zap.Error(err))
		}
	}
	s.log.Info("sound toggled", zap.Bool("enabled", on))
	return on
}

// Restart regenerates the scene at the current size and returns to
// playing.
func (s *Session) Restart() {
	snap := s.scene.Snapshot()
	s.scene.Initialize(snap.Width, snap.Height)
	s.manager.Change(s.playing)
}

// Resize regenerates the scene when the viewport size changed.
func (s *Session) Resize(width, height float64) {
	if s.scene.Resize(width, height) {
		s.manager.Change(s.playing)
	}
}

// OverControl reports whether the pointer rested on a clickable control
// in the last drawn frame.
func (s *Session) OverControl() bool {
	return s.ui.Hot() != ""
}

// Current returns the active state.
func (s *Session) Current() State {
	return s.manager.Current()
}

// Scene returns the scene.
func (s *Session) Scene() *scene.Scene {
	return s.scene
}
