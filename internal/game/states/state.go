// Package states implements the scene's screen flow: playing until every
// heart is found, then the completion screen until restart.
package states

import (
	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/surface"
)

// State represents a screen of the application (playing, complete).
type State interface {
	// Name identifies the state in logs.
	Name() string

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render(s surface.Surface) error

	// HandleInput processes pointer events.
	HandleInput(ev input.Event) error
}

// Manager manages state transitions.
type Manager struct {
	current State
	next    State
}

// NewManager creates a new state manager.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a state change for the next Update.
func (m *Manager) Change(next State) {
	m.next = next
}

// Update processes state changes and updates current state.
func (m *Manager) Update(dt float64) error {
	// Handle state transition
	if m.next != nil {
		if m.current != nil {
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = m.next
		m.next = nil
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	// Update current state
	if m.current != nil {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render(s surface.Surface) error {
	if m.current != nil {
		return m.current.Render(s)
	}
	return nil
}

// HandleInput forwards an event to the current state.
func (m *Manager) HandleInput(ev input.Event) error {
	if m.current != nil {
		return m.current.HandleInput(ev)
	}
	return nil
}
