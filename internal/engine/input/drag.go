package input

import "github.com/Faultbox/heartfield/pkg/math"

// Drag tracks a single held pointer and reports movement deltas.
type Drag struct {
	active bool
	last   math.Vec2
}

// Begin starts a drag at p.
func (d *Drag) Begin(p math.Vec2) {
	d.active = true
	d.last = p
}

// Move returns the delta since the previous sample while a drag is active.
func (d *Drag) Move(p math.Vec2) (math.Vec2, bool) {
	if !d.active {
		return math.Vec2{}, false
	}
	delta := p.Sub(d.last)
	d.last = p
	return delta, true
}

// End stops the drag. Safe to call when no drag is active.
func (d *Drag) End() {
	d.active = false
}

// Active reports whether the pointer is held.
func (d *Drag) Active() bool {
	return d.active
}
