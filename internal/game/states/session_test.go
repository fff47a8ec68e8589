package states

import (
	"errors"
	"testing"
	"time"

	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/internal/game/entity"
	"github.com/Faultbox/heartfield/internal/game/scene"
	"github.com/Faultbox/heartfield/internal/game/ui"
)

type fakeAudio struct {
	on      bool
	inits   int
	initErr error
}

func (f *fakeAudio) EnsureInit() error {
	f.inits++
	return f.initErr
}

func (f *fakeAudio) Enabled() bool { return f.on }

func (f *fakeAudio) Toggle() bool {
	f.on = !f.on
	return f.on
}

type fixture struct {
	sess  *Session
	audio *fakeAudio
	surf  *surface.Recorder
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		audio: &fakeAudio{},
		surf:  surface.NewRecorder(1280, 720),
		now:   time.Unix(1_700_000_000, 0),
	}
	clock := func() time.Time { return f.now }
	sc := scene.New(scene.Config{Seed: 21, Clock: clock})
	f.sess = NewSession(sc, f.audio, clock)
	if err := f.sess.Start(1280, 720); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return f
}

func (f *fixture) frame(t *testing.T) {
	t.Helper()
	f.now = f.now.Add(16 * time.Millisecond)
	f.surf.Reset()
	if err := f.sess.Frame(f.surf, 1.0/60); err != nil {
		t.Fatalf("Frame: %v", err)
	}
}

func (f *fixture) press(x, y float64) {
	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerDown, X: x, Y: y})
	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerUp, X: x, Y: y})
}

func (f *fixture) popAll(t *testing.T) {
	t.Helper()
	sc := f.sess.Scene()
	for n := 0; n < entity.HeartCount; n++ {
		for _, h := range sc.Store().Hearts() {
			if h.Popped {
				continue
			}
			sc.PointerDown(sc.View().Project(h.Pos).Screen)
			sc.PointerUp()
			break
		}
	}
	if !sc.Snapshot().AllPopped {
		t.Fatalf("not all popped: %+v", sc.Snapshot())
	}
}

func TestSessionStartsPlaying(t *testing.T) {
	f := newFixture(t)
	if f.sess.Current() == nil || f.sess.Current().Name() != "playing" {
		t.Fatalf("current = %v, want playing", f.sess.Current())
	}
	f.frame(t)
	if got := f.surf.Ops[0].Kind; got != surface.KindClear {
		t.Errorf("first op = %v, want the scene clear", got)
	}
}

func TestSessionCompletionAndRestart(t *testing.T) {
	f := newFixture(t)
	f.frame(t)
	f.popAll(t)

	f.frame(t) // playing notices completion
	f.frame(t) // transition applied
	if name := f.sess.Current().Name(); name != "complete" {
		t.Fatalf("current = %s, want complete", name)
	}
	f.now = f.now.Add(time.Second)
	f.frame(t)
	found := false
	for _, s := range f.surf.Texts() {
		if s == ui.CompletionTitle {
			found = true
		}
	}
	if !found {
		t.Fatalf("completion title not drawn: %v", f.surf.Texts())
	}

	// Presses on the backdrop never reach the scene.
	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerDown, X: 10, Y: 10})
	if f.sess.Scene().Stats().Dragging {
		t.Error("backdrop press started a drag")
	}
	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerUp, X: 10, Y: 10})

	// Restart Journey: 184px wide, 48px tall, 80px below the centre.
	f.press(640, 464)
	f.frame(t) // button click applied
	f.frame(t) // transition applied
	if name := f.sess.Current().Name(); name != "playing" {
		t.Fatalf("current = %s after restart, want playing", name)
	}
	snap := f.sess.Scene().Snapshot()
	if snap.AllPopped || snap.Remaining != entity.HeartCount || snap.Generation != 2 {
		t.Errorf("after restart: %+v", snap)
	}
}

func TestHUDPressDoesNotReachScene(t *testing.T) {
	f := newFixture(t)
	f.frame(t)

	// "CLICK ME" sits below the sound toggle at the top-right.
	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerDown, X: 1220, Y: 109})
	if f.sess.Scene().Stats().Dragging {
		t.Error("HUD press started a drag")
	}
	f.frame(t)
	if f.sess.Scene().Stats().Camera.Target == nil {
		t.Error("focus button did not request a focus")
	}
	if f.audio.inits != 0 {
		t.Error("HUD press opened the audio device")
	}
}

func TestSceneReceivesPointer(t *testing.T) {
	f := newFixture(t)
	f.frame(t)

	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerDown, X: 300, Y: 400})
	if !f.sess.Scene().Stats().Dragging {
		t.Fatal("press on the scene did not start a drag")
	}
	yaw := f.sess.Scene().Stats().Camera.Rotation.Yaw
	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerMove, X: 400, Y: 400})
	if got := f.sess.Scene().Stats().Camera.Rotation.Yaw - yaw; got < 0.4999 || got > 0.5001 {
		t.Errorf("yaw delta = %v, want 0.5", got)
	}
	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerLeave})
	if f.sess.Scene().Stats().Dragging {
		t.Error("leave did not end the drag")
	}
}

func TestApplyActions(t *testing.T) {
	f := newFixture(t)

	if !f.sess.Apply(input.ActionToggleSound) || !f.audio.on || f.audio.inits != 1 {
		t.Errorf("sound on: on=%v inits=%d", f.audio.on, f.audio.inits)
	}
	f.sess.Apply(input.ActionToggleSound)
	if f.audio.on || f.audio.inits != 1 {
		t.Errorf("sound off: on=%v inits=%d", f.audio.on, f.audio.inits)
	}

	if !f.sess.Apply(input.ActionFocusNext) || f.sess.Scene().Stats().Camera.Target == nil {
		t.Error("focus action ignored")
	}
	if f.sess.Apply(input.ActionScreenshot) {
		t.Error("screenshot is not a session command")
	}
}

func TestToggleSoundSurvivesInitError(t *testing.T) {
	f := newFixture(t)
	f.audio.initErr = errors.New("no device")
	if !f.sess.ToggleSound() {
		t.Error("switch did not turn on")
	}
}

func TestResize(t *testing.T) {
	f := newFixture(t)
	f.frame(t)
	f.sess.Resize(1280, 720)
	if f.sess.Scene().Snapshot().Generation != 1 {
		t.Error("same size regenerated the scene")
	}
	f.sess.Resize(1024, 768)
	snap := f.sess.Scene().Snapshot()
	if snap.Generation != 2 || snap.Width != 1024 {
		t.Errorf("after resize: %+v", snap)
	}
}

func TestOverControl(t *testing.T) {
	f := newFixture(t)
	f.frame(t)
	if f.sess.OverControl() {
		t.Error("over a control before the pointer moved")
	}

	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerMove, X: 1200, Y: 47})
	f.frame(t)
	if !f.sess.OverControl() {
		t.Error("sound button not reported under the pointer")
	}

	_ = f.sess.HandleInput(input.Event{Type: input.EventPointerMove, X: 100, Y: 400})
	f.frame(t)
	if f.sess.OverControl() {
		t.Error("empty sky reported as a control")
	}
}
