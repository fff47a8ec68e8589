package ui2d

import (
	"image/color"

	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/pkg/math"
)

// Renderer draws UI primitives onto a surface. It holds no GPU state; the
// surface is swapped in at the start of every frame.
type Renderer struct {
	surf surface.Surface
}

// NewRenderer creates a UI renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Begin binds the surface for this frame.
func (r *Renderer) Begin(s surface.Surface) {
	r.surf = s
}

// End releases the surface.
func (r *Renderer) End() {
	r.surf = nil
}

// Surface returns the bound surface, nil outside Begin/End.
func (r *Renderer) Surface() surface.Surface {
	return r.surf
}

// DrawRect fills a rectangle, rounded when radius > 0.
func (r *Renderer) DrawRect(rc surface.Rect, c color.NRGBA, radius float64) {
	if c.A == 0 {
		return
	}
	if radius <= 0 {
		r.surf.FillRect(rc, surface.Solid{Color: c})
		return
	}
	r.surf.FillPath(surface.RoundRect(rc, radius), surface.Solid{Color: c})
}

// DrawPanel draws a filled rectangle with a 1px border.
func (r *Renderer) DrawPanel(rc surface.Rect, bg, border color.NRGBA, radius float64) {
	r.DrawRect(rc, border, radius)
	inner := surface.Rect{X: rc.X + 1, Y: rc.Y + 1, W: rc.W - 2, H: rc.H - 2}
	innerRadius := radius - 1
	if innerRadius < 0 {
		innerRadius = 0
	}
	r.DrawRect(inner, bg, innerRadius)
}

// DrawText draws text vertically centred on pos.
func (r *Renderer) DrawText(text string, pos math.Vec2, style surface.TextStyle) {
	if text == "" || style.Color.A == 0 {
		return
	}
	r.surf.FillText(text, pos, style)
}

// MeasureText returns the advance width of text.
func (r *Renderer) MeasureText(text string, style surface.TextStyle) float64 {
	return r.surf.MeasureText(text, style)
}
