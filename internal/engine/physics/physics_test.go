package physics

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/heartfield/pkg/math"
)

func TestStepDamped(t *testing.T) {
	a := &Body{Pos: math.Vec3{X: 1, Y: 2, Z: 3}, Vel: math.Vec3{X: 10, Y: -20, Z: 0}}
	b := &Body{}

	StepDamped([]*Body{a, b}, HeartDamping)

	if want := (math.Vec3{X: 11, Y: -18, Z: 3}); a.Pos != want {
		t.Errorf("pos = %v, want %v", a.Pos, want)
	}
	if want := (math.Vec3{X: 9.5, Y: -19, Z: 0}); a.Vel != want {
		t.Errorf("vel = %v, want %v", a.Vel, want)
	}
	if b.Pos != (math.Vec3{}) || b.Vel != (math.Vec3{}) {
		t.Errorf("resting body moved: %+v", b)
	}
}

func TestDampingSettles(t *testing.T) {
	b := &Body{Vel: math.Vec3{X: 4}}
	for i := 0; i < 400; i++ {
		StepDamped([]*Body{b}, HeartDamping)
	}
	// Geometric series: total travel converges to v/(1-0.95) = 80.
	if gomath.Abs(b.Pos.X-80) > 1e-3 {
		t.Errorf("travel = %v, want ~80", b.Pos.X)
	}
	if b.Vel.X > 1e-3 {
		t.Errorf("velocity = %v, want ~0", b.Vel.X)
	}
}

func TestDecay(t *testing.T) {
	life := 1.0
	frames := 0
	for Decay(&life) {
		frames++
		if frames > 100 {
			t.Fatal("burst never died")
		}
	}
	// 1.0 / 0.025 = 40 frames, allowing for float drift on the last one.
	if frames < 39 || frames > 40 {
		t.Errorf("burst lived %d frames, want 39-40", frames)
	}
	if life > 0 {
		t.Errorf("life = %v after death", life)
	}
}

func TestPush(t *testing.T) {
	b := &Body{Vel: math.Vec3{X: 1}}
	b.Push(math.Vec3{X: -2, Y: 3, Z: 0.5})
	if want := (math.Vec3{X: -1, Y: 3, Z: 0.5}); b.Vel != want {
		t.Errorf("vel = %v, want %v", b.Vel, want)
	}
}

func TestSweep(t *testing.T) {
	items := []int{5, -1, 3, 0, 8, -7}
	got := Sweep(items, func(v int) bool { return v > 0 })
	want := []int{5, 3, 8}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if items[5] != 0 {
		t.Errorf("tail not cleared: %v", items)
	}
}
