// Package physics advances particle bodies by one animation frame.
//
// Steps are per frame, not per second: the scene is tuned for a display
// refresh driven loop and has no notion of elapsed time.
package physics

import "github.com/Faultbox/heartfield/pkg/math"

const (
	// HeartDamping is the velocity multiplier applied to hearts every frame.
	HeartDamping = 0.95

	// BurstLifeDecrement is the life a burst spark loses every frame.
	BurstLifeDecrement = 0.025
)

// Body is a point mass without mass: position and per-frame velocity.
type Body struct {
	Pos math.Vec3
	Vel math.Vec3
}

// Integrate moves the body by its velocity.
func (b *Body) Integrate() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Damp scales the velocity by factor.
func (b *Body) Damp(factor float64) {
	b.Vel = b.Vel.Scale(factor)
}

// Push adds an impulse to the velocity.
func (b *Body) Push(impulse math.Vec3) {
	b.Vel = b.Vel.Add(impulse)
}

// StepDamped integrates then damps every body.
func StepDamped(bodies []*Body, damping float64) {
	for _, b := range bodies {
		b.Integrate()
		b.Damp(damping)
	}
}

// Decay lowers life by the burst decrement and reports whether the particle
// is still alive.
func Decay(life *float64) bool {
	*life -= BurstLifeDecrement
	return *life > 0
}

// Sweep removes the items keep rejects, reusing the slice's backing array.
// Order of the survivors is preserved.
func Sweep[T any](items []T, keep func(T) bool) []T {
	n := 0
	for _, it := range items {
		if keep(it) {
			items[n] = it
			n++
		}
	}
	var zero T
	for i := n; i < len(items); i++ {
		items[i] = zero
	}
	return items[:n]
}
