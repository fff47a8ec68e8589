// Package camera provides the scene camera and the perspective projector.
package camera

import (
	gomath "math"

	"github.com/Faultbox/heartfield/pkg/math"
)

const (
	// DefaultFocal is the fixed zoom used by the scene.
	DefaultFocal = 800.0

	// DragSensitivity converts pointer pixels to radians.
	DragSensitivity = 0.005

	// FocusEasing is the fraction of the remaining angle covered per frame
	// while auto-focusing.
	FocusEasing = 0.1

	// FocusEpsilon is the per-axis distance (radians) at which auto-focus
	// snaps off.
	FocusEpsilon = 0.001
)

// Rotation is a camera orientation in radians.
type Rotation struct {
	Pitch float64 // About the horizontal axis
	Yaw   float64 // About the vertical axis
}

// State is a copy of the camera's state for readers outside the controller.
type State struct {
	Rotation Rotation
	Target   *Rotation // nil when no auto-focus is pending
	Focal    float64
}

// FocusCamera rotates the scene around the origin. Rotation changes either
// directly through drags or by easing towards a focus target.
type FocusCamera struct {
	rotation Rotation
	target   *Rotation
	focal    float64

	DragSensitivity float64
}

// New creates an unrotated camera with the default focal length.
func New() *FocusCamera {
	return &FocusCamera{
		focal:           DefaultFocal,
		DragSensitivity: DragSensitivity,
	}
}

// Rotation returns the current orientation.
func (c *FocusCamera) Rotation() Rotation {
	return c.rotation
}

// Focal returns the focal length.
func (c *FocusCamera) Focal() float64 {
	return c.focal
}

// State returns a snapshot of the camera state.
func (c *FocusCamera) State() State {
	s := State{Rotation: c.rotation, Focal: c.focal}
	if c.target != nil {
		t := *c.target
		s.Target = &t
	}
	return s
}

// View builds this frame's projector for the given screen center.
func (c *FocusCamera) View(center math.Vec2) View {
	return NewView(c.rotation, c.focal, center)
}

// HandleDrag applies a pointer drag delta. A drag always wins over a pending
// auto-focus.
func (c *FocusCamera) HandleDrag(deltaX, deltaY float64) {
	k := c.DragSensitivity
	c.rotation.Yaw += deltaX * k
	c.rotation.Pitch += deltaY * k
	c.target = nil
}

// CancelFocus drops any pending auto-focus target.
func (c *FocusCamera) CancelFocus() {
	c.target = nil
}

// FocusOn sets the auto-focus target to the rotation that puts p at the
// screen center.
func (c *FocusCamera) FocusOn(p math.Vec3) {
	t := FocusRotation(p)
	c.target = &t
}

// Update eases the rotation one step towards the focus target. It returns
// true on the frame the target is reached.
func (c *FocusCamera) Update() bool {
	if c.target == nil {
		return false
	}

	c.rotation.Pitch += (c.target.Pitch - c.rotation.Pitch) * FocusEasing
	c.rotation.Yaw += (c.target.Yaw - c.rotation.Yaw) * FocusEasing

	if gomath.Abs(c.target.Pitch-c.rotation.Pitch) < FocusEpsilon &&
		gomath.Abs(c.target.Yaw-c.rotation.Yaw) < FocusEpsilon {
		c.target = nil
		return true
	}
	return false
}

// FocusRotation returns the rotation that projects p onto the screen center.
func FocusRotation(p math.Vec3) Rotation {
	// tx = x*cos(yaw) + z*sin(yaw) = 0
	yaw := gomath.Atan2(-p.X, p.Z)
	tz := -p.X*gomath.Sin(yaw) + p.Z*gomath.Cos(yaw)
	// ty = y*cos(pitch) - tz*sin(pitch) = 0
	pitch := gomath.Atan2(p.Y, tz)
	return Rotation{Pitch: pitch, Yaw: yaw}
}
