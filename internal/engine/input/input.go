// Package input turns SDL2 events into pointer, key and window events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventPointerDown
	EventPointerMove
	EventPointerUp
	EventPointerLeave
)

// Event represents a processed input event. Pointer coordinates are in
// logical window pixels.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	X      float64
	Y      float64
	Button uint8
}

// Input collects the events of one frame.
type Input struct {
	events []Event
	poll   func() sdl.Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		poll:   sdl.PollEvent,
	}
}

// Update drains the SDL queue and converts events for the frame.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := i.poll(); event != nil; event = i.poll() {
		e, ok := Translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Translate converts one SDL event. Only the left button counts as a
// pointer; touch input arrives as synthesized mouse events.
func Translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_LEAVE:
			return Event{Type: EventPointerLeave}, true
		case sdl.WINDOWEVENT_CLOSE:
			return Event{Type: EventQuit}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{Type: EventPointerMove, X: float64(e.X), Y: float64(e.Y)}, true

	case *sdl.MouseButtonEvent:
		if e.Button != sdl.BUTTON_LEFT {
			return Event{}, false
		}
		ev := Event{X: float64(e.X), Y: float64(e.Y), Button: e.Button}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = EventPointerDown
		} else {
			ev.Type = EventPointerUp
		}
		return ev, true
	}
	return Event{}, false
}
