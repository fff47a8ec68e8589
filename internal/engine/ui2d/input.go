package ui2d

import (
	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/pkg/math"
)

// InputState holds the pointer state the UI sees for one frame.
type InputState struct {
	MouseX      float64
	MouseY      float64
	MouseDeltaX float64
	MouseDeltaY float64

	// Outside is set after the pointer left the window.
	Outside bool

	MouseLeftDown     bool
	MouseLeftPressed  bool
	MouseLeftReleased bool

	// MouseLeftClicked latches a press delivered by an event, so a press and
	// release inside one frame is not lost. Consumed by the first widget.
	MouseLeftClicked bool

	prevMouseLeft bool
	prevMouseX    float64
	prevMouseY    float64
}

// Feed applies one window event to the raw state.
func (i *InputState) Feed(ev input.Event) {
	switch ev.Type {
	case input.EventPointerDown:
		i.MouseX, i.MouseY = ev.X, ev.Y
		i.MouseLeftDown = true
		i.MouseLeftClicked = true
		i.Outside = false
	case input.EventPointerMove:
		i.MouseX, i.MouseY = ev.X, ev.Y
		i.Outside = false
	case input.EventPointerUp:
		i.MouseX, i.MouseY = ev.X, ev.Y
		i.MouseLeftDown = false
	case input.EventPointerLeave:
		i.MouseLeftDown = false
		i.Outside = true
	}
}

// Update prepares input state for a new frame.
// Call this at the start of each frame after feeding raw events.
func (i *InputState) Update() {
	i.MouseDeltaX = i.MouseX - i.prevMouseX
	i.MouseDeltaY = i.MouseY - i.prevMouseY

	i.MouseLeftPressed = i.MouseLeftDown && !i.prevMouseLeft
	i.MouseLeftReleased = !i.MouseLeftDown && i.prevMouseLeft

	i.prevMouseLeft = i.MouseLeftDown
	i.prevMouseX = i.MouseX
	i.prevMouseY = i.MouseY
}

// EndFrame clears per-frame input state.
func (i *InputState) EndFrame() {
	i.MouseLeftClicked = false
}

// Pointer returns the pointer position and whether it is inside the window.
func (i *InputState) Pointer() (math.Vec2, bool) {
	return math.Vec2{X: i.MouseX, Y: i.MouseY}, !i.Outside
}
