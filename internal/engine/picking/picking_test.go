package picking

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/heartfield/pkg/math"
)

func TestRepel(t *testing.T) {
	pointer := math.Vec2{X: 100, Y: 100}

	tests := []struct {
		name   string
		target math.Vec2
		want   math.Vec3
		ok     bool
	}{
		// Target 100px right of the pointer: force 0.5, pushed further right.
		{"right", math.Vec2{X: 200, Y: 100}, math.Vec3{X: 1, Y: 0, Z: -1}, true},
		// 50px above: force 0.75, pushed up.
		{"above", math.Vec2{X: 100, Y: 50}, math.Vec3{X: 0, Y: -1.5, Z: -1.5}, true},
		{"on radius", math.Vec2{X: 300, Y: 100}, math.Vec3{}, false},
		{"outside", math.Vec2{X: 500, Y: 500}, math.Vec3{}, false},
		{"under pointer", pointer, math.Vec3{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Repel(pointer, tt.target)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if gomath.Abs(got.X-tt.want.X) > 1e-12 || gomath.Abs(got.Y-tt.want.Y) > 1e-12 || gomath.Abs(got.Z-tt.want.Z) > 1e-12 {
				t.Errorf("impulse = %v, want %v", got, tt.want)
			}
			if gomath.IsNaN(got.X) || gomath.IsNaN(got.Y) || gomath.IsNaN(got.Z) {
				t.Errorf("impulse has NaN: %v", got)
			}
		})
	}
}

func TestResolvePicksNearestInHitbox(t *testing.T) {
	pointer := math.Vec2{X: 0, Y: 0}
	targets := []Target{
		{ID: 0, Screen: math.Vec2{X: 70, Y: 0}},
		{ID: 1, Screen: math.Vec2{X: 0, Y: 30}},
		{ID: 2, Screen: math.Vec2{X: 150, Y: 0}},
		{ID: 3, Screen: math.Vec2{X: 500, Y: 0}},
	}

	res := Resolve(pointer, targets)

	if !res.HitFound || res.Hit.ID != 1 {
		t.Fatalf("hit = %+v (found %v), want ID 1", res.Hit, res.HitFound)
	}
	if res.HitDist != 30 {
		t.Errorf("hit distance = %v, want 30", res.HitDist)
	}

	ids := map[int]bool{}
	for _, imp := range res.Impulses {
		ids[imp.ID] = true
	}
	for _, id := range []int{0, 1, 2} {
		if !ids[id] {
			t.Errorf("target %d inside repulsion radius got no impulse", id)
		}
	}
	if ids[3] {
		t.Error("target 3 outside repulsion radius got an impulse")
	}
}

func TestResolveNoHit(t *testing.T) {
	res := Resolve(math.Vec2{}, []Target{{ID: 7, Screen: math.Vec2{X: 80, Y: 0}}})
	if res.HitFound {
		t.Errorf("target on the hitbox edge was hit: %+v", res.Hit)
	}
	if len(res.Impulses) != 1 {
		t.Errorf("impulses = %d, want 1", len(res.Impulses))
	}
}

func TestResolveTieKeepsFirst(t *testing.T) {
	targets := []Target{
		{ID: 4, Screen: math.Vec2{X: 10, Y: 0}},
		{ID: 5, Screen: math.Vec2{X: -10, Y: 0}},
	}
	res := Resolve(math.Vec2{}, targets)
	if res.Hit.ID != 4 {
		t.Errorf("tie resolved to %d, want 4", res.Hit.ID)
	}
}
