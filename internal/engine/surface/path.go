package surface

import "github.com/Faultbox/heartfield/pkg/math"

// Op is a path segment kind.
type Op int

const (
	OpMove Op = iota
	OpLine
	OpBezier
	OpClose
)

// Segment is one path command. Move and Line use Pts[0]; Bezier uses all
// three as control1, control2, end.
type Segment struct {
	Op  Op
	Pts [3]math.Vec2
}

// Path is a reusable sequence of segments. Build it once, fill it many
// times.
type Path struct {
	Segments []Segment
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpMove, Pts: [3]math.Vec2{{X: x, Y: y}}})
	return p
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpLine, Pts: [3]math.Vec2{{X: x, Y: y}}})
	return p
}

// BezierTo adds a cubic Bezier segment.
func (p *Path) BezierTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.Segments = append(p.Segments, Segment{Op: OpBezier, Pts: [3]math.Vec2{
		{X: c1x, Y: c1y}, {X: c2x, Y: c2y}, {X: x, Y: y},
	}})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.Segments = append(p.Segments, Segment{Op: OpClose})
	return p
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// RoundRect returns a closed rectangle path with circular corners of
// radius r, clamped to half the shorter side.
func RoundRect(rc Rect, r float64) *Path {
	if m := min(rc.W, rc.H) / 2; r > m {
		r = m
	}
	k := r * kappa
	x0, y0, x1, y1 := rc.X, rc.Y, rc.X+rc.W, rc.Y+rc.H

	p := &Path{}
	p.MoveTo(x0+r, y0).
		LineTo(x1-r, y0).
		BezierTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r).
		LineTo(x1, y1-r).
		BezierTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1).
		LineTo(x0+r, y1).
		BezierTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r).
		LineTo(x0, y0+r).
		BezierTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0).
		Close()
	return p
}
