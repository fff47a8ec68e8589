package states

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/pkg/math"
)

// CompleteState shows the completion screen over the still running scene.
type CompleteState struct {
	session *Session
	entered time.Time
}

// NewCompleteState creates the completion state.
func NewCompleteState(s *Session) *CompleteState {
	return &CompleteState{session: s}
}

// Name implements State.
func (c *CompleteState) Name() string { return "complete" }

// Enter implements State.
func (c *CompleteState) Enter() error {
	c.entered = c.session.now()
	snap := c.session.scene.Snapshot()
	c.session.log.Info("journey complete",
		zap.Int("generation", snap.Generation),
		zap.Duration("elapsed", snap.SinceReset))
	return nil
}

// Exit implements State.
func (c *CompleteState) Exit() error {
	return nil
}

// Update implements State.
func (c *CompleteState) Update(dt float64) error {
	return nil
}

// Render draws the scene, the remaining HUD and the completion screen.
func (c *CompleteState) Render(s surface.Surface) error {
	sess := c.session
	sess.ui.Begin(s)
	sess.scene.Frame(s)
	act := sess.hud.Draw(sess.ui, sess.scene.Snapshot(), sess.audio.Enabled())
	if sess.completion.Draw(sess.ui, sess.now().Sub(c.entered)) {
		act = input.ActionRestart
	}
	sess.ui.End()

	sess.Apply(act)
	return nil
}

// HandleInput keeps the backdrop modal: the scene only sees moves and
// releases, never presses.
func (c *CompleteState) HandleInput(ev input.Event) error {
	sess := c.session
	sess.ui.Input().Feed(ev)

	switch ev.Type {
	case input.EventPointerMove:
		sess.scene.PointerMove(math.Vec2{X: ev.X, Y: ev.Y})
	case input.EventPointerUp:
		sess.scene.PointerUp()
	case input.EventPointerLeave:
		sess.scene.PointerLeave()
	}
	return nil
}
