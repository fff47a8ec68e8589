package camera

import (
	gomath "math"

	"github.com/Faultbox/heartfield/pkg/math"
)

// DepthOffset pushes the whole scene away from the eye so points near the
// origin never hit the projection singularity.
const DepthOffset = 1000.0

// Projection is a world point mapped onto the screen.
type Projection struct {
	Screen math.Vec2 // Pixel position
	Scale  float64   // Perspective scale; <= 0 means behind the eye
	Depth  float64   // Camera-space Z, larger is farther away
}

// Visible reports whether the projected point is in front of the eye.
func (p Projection) Visible() bool {
	return p.Scale > 0
}

// View caches the camera trigonometry for one frame.
type View struct {
	Center math.Vec2
	Focal  float64

	cosYaw, sinYaw     float64
	cosPitch, sinPitch float64
}

// NewView builds a view for the given rotation, focal length and screen
// center.
func NewView(rot Rotation, focal float64, center math.Vec2) View {
	return View{
		Center:   center,
		Focal:    focal,
		cosYaw:   gomath.Cos(rot.Yaw),
		sinYaw:   gomath.Sin(rot.Yaw),
		cosPitch: gomath.Cos(rot.Pitch),
		sinPitch: gomath.Sin(rot.Pitch),
	}
}

// Transform returns p in camera space: yaw first, then pitch.
func (v View) Transform(p math.Vec3) math.Vec3 {
	return p.RotateYaw(v.cosYaw, v.sinYaw).RotatePitch(v.cosPitch, v.sinPitch)
}

// Project maps a world point onto the screen.
func (v View) Project(p math.Vec3) Projection {
	t := v.Transform(p)
	scale := v.Focal / (v.Focal + t.Z + DepthOffset)
	return Projection{
		Screen: math.Vec2{X: v.Center.X + t.X*scale, Y: v.Center.Y + t.Y*scale},
		Scale:  scale,
		Depth:  t.Z,
	}
}

// Project is a one-shot helper for callers that do not keep a View around.
func Project(p math.Vec3, rot Rotation, focal float64, center math.Vec2) Projection {
	return NewView(rot, focal, center).Project(p)
}
