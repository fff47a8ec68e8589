package surface

import (
	"image/color"

	"github.com/Faultbox/heartfield/pkg/math"
)

// Kind identifies a recorded draw call.
type Kind int

const (
	KindClear Kind = iota
	KindPath
	KindCircle
	KindEllipse
	KindRect
	KindText
)

// Transform is a translate plus uniform scale: p' = p*Scale + Offset.
type Transform struct {
	Scale  float64
	Offset math.Vec2
}

// Apply maps a local point to surface coordinates.
func (t Transform) Apply(p math.Vec2) math.Vec2 {
	return p.Scale(t.Scale).Add(t.Offset)
}

// DrawOp is one recorded draw call with the state it was issued under.
type DrawOp struct {
	Kind      Kind
	Alpha     float64
	Transform Transform
	Fill      Fill

	Path     *Path
	Center   math.Vec2
	Radius   float64 // circle radius, or ellipse X radius
	RadiusY  float64
	Rotation float64
	Rect     Rect
	Text     string
	Style    TextStyle
	Color    color.NRGBA // clear color
}

type recorderState struct {
	alpha float64
	xf    Transform
}

// Recorder is an in-memory Surface that records every draw call. Text is
// measured at a fixed advance of 0.5em per rune.
type Recorder struct {
	W, H float64
	Ops  []DrawOp

	cur   recorderState
	stack []recorderState
}

// NewRecorder returns a Recorder of the given logical size.
func NewRecorder(w, h float64) *Recorder {
	r := &Recorder{W: w, H: h}
	r.Reset()
	return r
}

// Reset drops recorded ops and restores the initial state.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.stack = r.stack[:0]
	r.cur = recorderState{alpha: 1, xf: Transform{Scale: 1}}
}

// Filter returns the recorded ops of one kind, in order.
func (r *Recorder) Filter(k Kind) []DrawOp {
	var out []DrawOp
	for _, op := range r.Ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(KindText) {
		out = append(out, op.Text)
	}
	return out
}

// Depth reports the current Save nesting.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

func (r *Recorder) record(op DrawOp) {
	op.Alpha = r.cur.alpha
	op.Transform = r.cur.xf
	r.Ops = append(r.Ops, op)
}

// Size returns the recorder dimensions.
func (r *Recorder) Size() (float64, float64) {
	return r.W, r.H
}

// Clear records a full-frame clear.
func (r *Recorder) Clear(c color.NRGBA) {
	r.record(DrawOp{Kind: KindClear, Color: c, Rect: Rect{W: r.W, H: r.H}})
}

// Save pushes the transform and alpha.
func (r *Recorder) Save() {
	r.stack = append(r.stack, r.cur)
}

// Restore pops the last Save. An unbalanced Restore is ignored.
func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.cur = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Translate moves the origin in the current scale.
func (r *Recorder) Translate(x, y float64) {
	r.cur.xf.Offset = r.cur.xf.Offset.Add(math.Vec2{X: x, Y: y}.Scale(r.cur.xf.Scale))
}

// Scale multiplies the current scale.
func (r *Recorder) Scale(s float64) {
	r.cur.xf.Scale *= s
}

// SetAlpha sets the alpha stamped on following ops.
func (r *Recorder) SetAlpha(a float64) {
	r.cur.alpha = a
}

// FillPath records a path fill.
func (r *Recorder) FillPath(p *Path, f Fill) {
	r.record(DrawOp{Kind: KindPath, Path: p, Fill: f})
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(center math.Vec2, radius float64, f Fill) {
	r.record(DrawOp{Kind: KindCircle, Center: center, Radius: radius, Fill: f})
}

// FillEllipse records an ellipse; Radius holds rx.
func (r *Recorder) FillEllipse(center math.Vec2, rx, ry, rotation float64, f Fill) {
	r.record(DrawOp{Kind: KindEllipse, Center: center, Radius: rx, RadiusY: ry, Rotation: rotation, Fill: f})
}

// FillRect records a rectangle.
func (r *Recorder) FillRect(rc Rect, f Fill) {
	r.record(DrawOp{Kind: KindRect, Rect: rc, Fill: f})
}

// FillText records text at pos.
func (r *Recorder) FillText(text string, pos math.Vec2, style TextStyle) {
	r.record(DrawOp{Kind: KindText, Text: text, Center: pos, Style: style, Fill: Solid{Color: style.Color}})
}

// MeasureText approximates every glyph as half the font size wide.
func (r *Recorder) MeasureText(text string, style TextStyle) float64 {
	return float64(len([]rune(text))) * style.Size * 0.5
}

var _ Surface = (*Recorder)(nil)
