// Package renderer draws scene primitives onto a surface.
package renderer

import (
	"image/color"
	stdmath "math"

	"github.com/Faultbox/heartfield/internal/engine/camera"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/pkg/math"
)

// Background is the scene clear color.
var Background = surface.Black

// Dot is a round particle in world space.
type Dot struct {
	Pos     math.Vec3
	Radius  float64
	Color   color.NRGBA
	Opacity float64
}

// Renderer draws projected particles. It holds no scene state.
type Renderer struct {
	heart *surface.Path
}

// New creates a renderer with the heart glyph prebuilt.
func New() *Renderer {
	return &Renderer{heart: HeartPath()}
}

// Clear fills the whole surface with the background.
func (r *Renderer) Clear(s surface.Surface) {
	s.SetAlpha(1)
	s.Clear(Background)
}

// DrawDot projects d and draws it as a filled circle whose radius and
// alpha shrink with distance. Points behind the eye and fully faded dots
// are skipped.
func (r *Renderer) DrawDot(s surface.Surface, view camera.View, d Dot) bool {
	p := view.Project(d.Pos)
	alpha := d.Opacity * p.Scale
	if !p.Visible() || alpha <= 0 {
		return false
	}
	s.SetAlpha(alpha)
	s.FillCircle(p.Screen, d.Radius*p.Scale, surface.Solid{Color: d.Color})
	return true
}

// DrawHeart draws one heart glyph centred near pos. size is the on-screen
// size in pixels; the glyph is authored at size 10.
func (r *Renderer) DrawHeart(s surface.Surface, pos math.Vec2, size float64, c color.NRGBA, alpha float64) {
	s.Save()
	defer s.Restore()

	s.Translate(pos.X, pos.Y)
	s.Scale(size / 10)
	s.SetAlpha(alpha)

	s.FillPath(r.heart, surface.Solid{Color: c})
	s.FillPath(r.heart, heartGlow)
	s.FillEllipse(math.Vec2{X: -4, Y: 2}, 4, 2.5, stdmath.Pi/4, heartSpecular)
}

var (
	heartGlow = surface.RadialGradient{
		C0: math.Vec2{X: -3, Y: -3}, R0: 0,
		C1: math.Vec2{}, R1: 15,
		Stops: []surface.Stop{
			{Pos: 0, Color: surface.RGBA(255, 255, 255, 0.3)},
			{Pos: 1, Color: surface.Transparent},
		},
	}
	heartSpecular = surface.LinearGradient{
		From: math.Vec2{X: -8, Y: 0},
		To:   math.Vec2{X: 0, Y: 5},
		Stops: []surface.Stop{
			{Pos: 0, Color: surface.RGBA(255, 255, 255, 0.8)},
			{Pos: 1, Color: surface.RGBA(255, 255, 255, 0)},
		},
	}
)

// HeartPath returns the heart outline in its 22x22 local space. The top
// cleft sits at (0, 6) and the point at (0, 22).
func HeartPath() *surface.Path {
	p := &surface.Path{}
	p.MoveTo(0, 6).
		BezierTo(0, 5.7, -1, 0, -6, 0).
		BezierTo(-11, 0, -11, 7, -11, 7).
		BezierTo(-11, 11, -6, 16, 0, 22).
		BezierTo(6, 16, 11, 11, 11, 7).
		BezierTo(11, 7, 11, 0, 6, 0).
		BezierTo(1, 0, 0, 5.7, 0, 6).
		Close()
	return p
}
