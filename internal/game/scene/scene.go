// Package scene runs the heart field: particle store, camera, pointer
// interaction, message overlay and the per-frame update and draw.
package scene

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/engine/camera"
	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/renderer"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/internal/game/entity"
	"github.com/Faultbox/heartfield/internal/logger"
	"github.com/Faultbox/heartfield/pkg/math"
)

// Sound is the pop feedback capability.
type Sound interface {
	// EnsureInit activates the device on the first user gesture.
	EnsureInit() error
	PlayPop()
}

type silent struct{}

func (silent) EnsureInit() error { return nil }
func (silent) PlayPop()          {}

// Config configures a scene.
type Config struct {
	StarCount int
	Seed      uint64
	Sound     Sound            // nil plays nothing
	Clock     func() time.Time // nil uses time.Now
}

// Snapshot is the UI-facing state, recomputed every frame.
type Snapshot struct {
	Width, Height float64
	Remaining     int
	AllPopped     bool
	Overlay       *OverlayView
	Generation    int
	SinceReset    time.Duration
}

// Stats summarizes the scene for the debug overlay.
type Stats struct {
	Generation int
	Hearts     int
	Stars      int
	Bursts     int
	Pending    int // Scheduled callbacks not yet run
	Fallbacks  int // Hearts spawned without full separation
	Camera     camera.State
	Dragging   bool
}

// Scene owns every piece of simulation state. All methods must be called
// from the frame thread.
type Scene struct {
	store  *entity.Store
	cam    *camera.FocusCamera
	render *renderer.Renderer
	sched  Scheduler
	drag   input.Drag
	sound  Sound
	now    func() time.Time
	log    *zap.Logger

	width, height float64
	counters      entity.Counters
	overlay       *Overlay
	overlayID     uint64
	resetAt       time.Time
	soundErr      bool
}

// New creates a scene. Call Initialize before the first frame.
func New(cfg Config) *Scene {
	s := &Scene{
		store:  entity.NewStore(entity.StoreConfig{StarCount: cfg.StarCount, Seed: cfg.Seed}),
		cam:    camera.New(),
		render: renderer.New(),
		sound:  cfg.Sound,
		now:    cfg.Clock,
		log:    logger.Named("scene"),
	}
	if s.sound == nil {
		s.sound = silent{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Initialize regenerates the scene for a viewport and clears all transient
// state: overlay, pending expiries, focus target, drag and counters. The
// camera keeps its current rotation.
func (s *Scene) Initialize(width, height float64) {
	s.width, s.height = width, height
	s.store.Initialize()
	s.cam.CancelFocus()
	s.drag.End()
	s.sched.Clear()
	s.overlay = nil
	s.counters = s.store.Counters()
	s.resetAt = s.now()

	s.log.Info("scene initialized",
		zap.Int("generation", s.store.Generation()),
		zap.Float64("width", width),
		zap.Float64("height", height),
	)
}

// Resize reinitializes the scene when the viewport size changed. It
// reports whether a reset happened.
func (s *Scene) Resize(width, height float64) bool {
	if width == s.width && height == s.height {
		return false
	}
	s.Initialize(width, height)
	return true
}

func (s *Scene) center() math.Vec2 {
	return math.Vec2{X: s.width / 2, Y: s.height / 2}
}

// View returns the projector for the current camera and viewport.
func (s *Scene) View() camera.View {
	return s.cam.View(s.center())
}

// PointerDown starts a drag and pops the closest heart inside the hitbox.
func (s *Scene) PointerDown(p math.Vec2) {
	s.activateSound()
	s.drag.Begin(p)

	res, ok := s.store.Interact(p, s.View(), true)
	if !ok {
		return
	}

	s.sound.PlayPop()
	s.showOverlay(res)
	s.counters = s.store.Counters()
	if s.counters.AllPopped {
		s.log.Info("all hearts found",
			zap.Int("generation", s.store.Generation()),
			zap.Int("hearts", len(s.store.Hearts())),
		)
	}
}

// PointerMove rotates the camera while dragging and nudges nearby hearts.
func (s *Scene) PointerMove(p math.Vec2) {
	if delta, ok := s.drag.Move(p); ok {
		s.cam.HandleDrag(delta.X, delta.Y)
	}
	s.store.Interact(p, s.View(), false)
}

// PointerUp ends the drag.
func (s *Scene) PointerUp() {
	s.drag.End()
}

// PointerLeave ends the drag when the pointer leaves the window.
func (s *Scene) PointerLeave() {
	s.drag.End()
}

// FocusNextHeart eases the camera toward the lowest-index unpopped heart.
// It reports false when every heart is popped.
func (s *Scene) FocusNextHeart() bool {
	h, ok := s.store.NextUnpopped()
	if !ok {
		return false
	}
	s.cam.FocusOn(h.Pos)
	s.log.Debug("focus requested", zap.Int("index", h.Index))
	return true
}

func (s *Scene) activateSound() {
	if s.soundErr {
		return
	}
	if err := s.sound.EnsureInit(); err != nil {
		s.soundErr = true
		s.log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
}

func (s *Scene) showOverlay(res entity.PopResult) {
	s.overlayID++
	id := s.overlayID
	now := s.now()
	s.overlay = &Overlay{
		ID:     id,
		Text:   res.Message,
		Anchor: res.Pos,
		Screen: res.Screen,
		Shown:  now,
	}
	s.sched.After(now, OverlayDuration, func() { s.expireOverlay(id) })
}

// expireOverlay clears the overlay only if it is still the one identified
// by id.
func (s *Scene) expireOverlay(id uint64) {
	if s.overlay != nil && s.overlay.ID == id {
		s.overlay = nil
	}
}

// Frame advances the simulation one tick and draws it.
func (s *Scene) Frame(surf surface.Surface) {
	s.sched.Run(s.now())
	if s.cam.Update() {
		s.log.Debug("focus reached")
	}

	view := s.View()
	s.render.Clear(surf)

	for _, st := range s.store.Stars() {
		s.render.DrawDot(surf, view, renderer.Dot{
			Pos:     st.Pos,
			Radius:  st.Size,
			Color:   surface.White,
			Opacity: st.Opacity,
		})
	}

	for _, b := range s.store.StepBursts() {
		s.render.DrawDot(surf, view, renderer.Dot{
			Pos:     b.Pos,
			Radius:  b.Size,
			Color:   surface.Opaque(b.Color),
			Opacity: b.Life,
		})
	}

	for _, ph := range s.store.DepthSorted(view) {
		if !ph.Visible() {
			continue
		}
		h := ph.Heart
		s.render.DrawHeart(surf, ph.Screen, h.Size*ph.Scale, surface.Opaque(h.Color), h.Opacity*ph.Scale)
	}
	s.store.StepHearts()

	s.syncOverlay(view)
	s.counters = s.store.Counters()
	surf.SetAlpha(1)
}

func (s *Scene) syncOverlay(view camera.View) {
	if s.overlay == nil {
		return
	}
	s.overlay.Screen = view.Project(s.overlay.Anchor).Screen
}

// Snapshot returns the UI-facing state.
func (s *Scene) Snapshot() Snapshot {
	now := s.now()
	snap := Snapshot{
		Width:      s.width,
		Height:     s.height,
		Remaining:  s.counters.Remaining,
		AllPopped:  s.counters.AllPopped,
		Generation: s.store.Generation(),
		SinceReset: now.Sub(s.resetAt),
	}
	if s.overlay != nil {
		snap.Overlay = &OverlayView{
			ID:     s.overlay.ID,
			Text:   s.overlay.Text,
			Screen: s.overlay.Screen,
			Age:    now.Sub(s.overlay.Shown),
		}
	}
	return snap
}

// Stats returns counts for the debug overlay.
func (s *Scene) Stats() Stats {
	return Stats{
		Generation: s.store.Generation(),
		Hearts:     s.counters.Remaining,
		Stars:      len(s.store.Stars()),
		Bursts:     len(s.store.Bursts()),
		Pending:    s.sched.Len(),
		Fallbacks:  len(s.store.SpawnFallbacks()),
		Camera:     s.cam.State(),
		Dragging:   s.drag.Active(),
	}
}

// Store exposes the particle store.
func (s *Scene) Store() *entity.Store {
	return s.store
}
