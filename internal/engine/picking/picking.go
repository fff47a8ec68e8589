// Package picking resolves a pointer position against projected targets.
//
// Two zones are used: a wide repulsion radius that nudges every target the
// pointer comes near, and a tight hitbox that selects the single nearest
// target for a click.
package picking

import "github.com/Faultbox/heartfield/pkg/math"

const (
	// RepulsionRadius is the screen distance (px) inside which targets are
	// pushed away from the pointer.
	RepulsionRadius = 200.0

	// RepulsionStrength is the per-axis impulse at zero distance.
	RepulsionStrength = 2.0

	// HitboxRadius is the screen distance (px) inside which a target can be
	// selected.
	HitboxRadius = 80.0
)

// Target is a projected, pickable object.
type Target struct {
	ID     int
	Screen math.Vec2
}

// Impulse is a velocity change for one target.
type Impulse struct {
	ID    int
	Delta math.Vec3
}

// Result is the outcome of resolving one pointer position.
type Result struct {
	Impulses []Impulse

	Hit      Target
	HitDist  float64
	HitFound bool
}

// Repel returns the velocity impulse for a target at screen position s. The
// push points away from the pointer in screen X/Y and always away from the
// viewer in Z, scaling linearly from RepulsionStrength at the pointer to zero
// at RepulsionRadius. A target exactly under the pointer has no direction and
// gets no push.
func Repel(pointer, s math.Vec2) (math.Vec3, bool) {
	d := pointer.Sub(s)
	dist := d.Length()
	if dist >= RepulsionRadius || dist == 0 {
		return math.Vec3{}, false
	}
	force := (RepulsionRadius - dist) / RepulsionRadius
	return math.Vec3{
		X: d.X / dist * force * -RepulsionStrength,
		Y: d.Y / dist * force * -RepulsionStrength,
		Z: force * -RepulsionStrength,
	}, true
}

// Resolve computes the repulsion impulses for all targets and the nearest
// target inside the hitbox. Ties keep the first target seen.
func Resolve(pointer math.Vec2, targets []Target) Result {
	var res Result
	for _, t := range targets {
		if imp, ok := Repel(pointer, t.Screen); ok {
			res.Impulses = append(res.Impulses, Impulse{ID: t.ID, Delta: imp})
		}

		dist := pointer.Distance(t.Screen)
		if dist < HitboxRadius && (!res.HitFound || dist < res.HitDist) {
			res.Hit = t
			res.HitDist = dist
			res.HitFound = true
		}
	}
	return res
}
