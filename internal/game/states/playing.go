package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/pkg/math"
)

// PlayingState is the interactive scene with its HUD.
type PlayingState struct {
	session *Session
}

// NewPlayingState creates the playing state.
func NewPlayingState(s *Session) *PlayingState {
	return &PlayingState{session: s}
}

// Name implements State.
func (p *PlayingState) Name() string { return "playing" }

// Enter implements State.
func (p *PlayingState) Enter() error {
	snap := p.session.scene.Snapshot()
	p.session.log.Debug("entering playing state",
		zap.Int("generation", snap.Generation),
		zap.Int("remaining", snap.Remaining))
	return nil
}

// Exit implements State.
func (p *PlayingState) Exit() error {
	return nil
}

// Update moves to the completion screen once every heart is popped.
func (p *PlayingState) Update(dt float64) error {
	if p.session.scene.Snapshot().AllPopped {
		p.session.manager.Change(p.session.complete)
	}
	return nil
}

// Render draws the scene and the HUD, and applies a clicked HUD button.
func (p *PlayingState) Render(s surface.Surface) error {
	sess := p.session
	sess.ui.Begin(s)
	sess.scene.Frame(s)
	act := sess.hud.Draw(sess.ui, sess.scene.Snapshot(), sess.audio.Enabled())
	sess.ui.End()

	sess.Apply(act)
	return nil
}

// HandleInput routes pointer events to the HUD first; a press on a HUD
// widget does not reach the scene.
func (p *PlayingState) HandleInput(ev input.Event) error {
	sess := p.session
	sess.ui.Input().Feed(ev)

	pos := math.Vec2{X: ev.X, Y: ev.Y}
	switch ev.Type {
	case input.EventPointerDown:
		if id, ok := sess.ui.HitTest(pos); ok {
			sess.log.Debug("pointer captured by HUD", zap.String("widget", id))
			return nil
		}
		sess.scene.PointerDown(pos)
	case input.EventPointerMove:
		sess.scene.PointerMove(pos)
	case input.EventPointerUp:
		sess.scene.PointerUp()
	case input.EventPointerLeave:
		sess.scene.PointerLeave()
	}
	return nil
}
