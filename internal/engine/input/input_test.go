package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heartfield/pkg/math"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
		ok    bool
	}{
		{
			name:  "quit",
			event: &sdl.QuitEvent{Type: sdl.QUIT},
			want:  Event{Type: EventQuit},
			ok:    true,
		},
		{
			name:  "resize",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 1024, Data2: 768},
			want:  Event{Type: EventWindowResize, Width: 1024, Height: 768},
			ok:    true,
		},
		{
			name:  "leave",
			event: &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_LEAVE},
			want:  Event{Type: EventPointerLeave},
			ok:    true,
		},
		{
			name:  "move",
			event: &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 12, Y: 34},
			want:  Event{Type: EventPointerMove, X: 12, Y: 34},
			ok:    true,
		},
		{
			name:  "left down",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_LEFT, X: 5, Y: 6},
			want:  Event{Type: EventPointerDown, X: 5, Y: 6, Button: sdl.BUTTON_LEFT},
			ok:    true,
		},
		{
			name:  "left up",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONUP, Button: sdl.BUTTON_LEFT, X: 7, Y: 8},
			want:  Event{Type: EventPointerUp, X: 7, Y: 8, Button: sdl.BUTTON_LEFT},
			ok:    true,
		},
		{
			name:  "right button ignored",
			event: &sdl.MouseButtonEvent{Type: sdl.MOUSEBUTTONDOWN, Button: sdl.BUTTON_RIGHT},
			ok:    false,
		},
		{
			name:  "key down",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F}},
			want:  Event{Type: EventKeyDown, Key: sdl.SCANCODE_F},
			ok:    true,
		},
		{
			name:  "key repeat ignored",
			event: &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_F}},
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.event)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("event = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	queue := []sdl.Event{
		&sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION, X: 1, Y: 2},
		&sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Scancode: sdl.SCANCODE_M}},
		&sdl.QuitEvent{Type: sdl.QUIT},
	}
	in := New()
	in.poll = func() sdl.Event {
		if len(queue) == 0 {
			return nil
		}
		e := queue[0]
		queue = queue[1:]
		return e
	}

	if !in.Update() {
		t.Error("Update did not report quit")
	}
	if len(in.Events()) != 3 {
		t.Fatalf("events = %d, want 3", len(in.Events()))
	}
	var keys []sdl.Scancode
	for _, e := range in.Events() {
		if e.Type == EventKeyDown {
			keys = append(keys, e.Key)
		}
	}
	if len(keys) != 1 || keys[0] != sdl.SCANCODE_M {
		t.Errorf("key presses = %v, want only M", keys)
	}

	if in.Update() {
		t.Error("empty queue reported quit")
	}
	if len(in.Events()) != 0 {
		t.Error("events not cleared between frames")
	}
}

func TestDrag(t *testing.T) {
	var d Drag
	if _, ok := d.Move(math.Vec2{X: 10}); ok {
		t.Error("move without a drag reported a delta")
	}

	d.Begin(math.Vec2{X: 100, Y: 100})
	delta, ok := d.Move(math.Vec2{X: 200, Y: 90})
	if !ok || delta != (math.Vec2{X: 100, Y: -10}) {
		t.Errorf("delta = %v, %v", delta, ok)
	}
	delta, _ = d.Move(math.Vec2{X: 205, Y: 90})
	if delta != (math.Vec2{X: 5}) {
		t.Errorf("second delta = %v, want relative to the last sample", delta)
	}

	d.End()
	d.End()
	if d.Active() {
		t.Error("drag still active")
	}
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		sc   sdl.Scancode
		want Action
	}{
		{sdl.SCANCODE_F, ActionFocusNext},
		{sdl.SCANCODE_M, ActionToggleSound},
		{sdl.SCANCODE_R, ActionRestart},
		{sdl.SCANCODE_F12, ActionScreenshot},
		{sdl.SCANCODE_F11, ActionFullscreen},
		{sdl.SCANCODE_F3, ActionDebug},
		{sdl.SCANCODE_ESCAPE, ActionQuit},
		{sdl.SCANCODE_Q, ActionNone},
	}
	for _, tt := range tests {
		if got := KeyAction(tt.sc); got != tt.want {
			t.Errorf("KeyAction(%d) = %v, want %v", tt.sc, got, tt.want)
		}
	}
}
