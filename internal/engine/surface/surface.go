// Package surface defines the 2D drawing surface the scene renders onto.
//
// Coordinates are logical pixels. Implementations apply the device pixel
// ratio once per frame, so callers never see physical pixels.
package surface

import (
	"image/color"

	"github.com/Faultbox/heartfield/pkg/math"
)

// Surface is a resizable 2D canvas with paths, gradients and text.
type Surface interface {
	// Size returns the logical size of the drawable area.
	Size() (w, h float64)

	Clear(c color.NRGBA)
	Save()
	Restore()
	Translate(x, y float64)
	// Scale applies a uniform scale to subsequent drawing.
	Scale(s float64)
	// SetAlpha sets the global alpha multiplied into every fill.
	SetAlpha(a float64)

	FillPath(p *Path, f Fill)
	FillCircle(center math.Vec2, r float64, f Fill)
	FillEllipse(center math.Vec2, rx, ry, rotation float64, f Fill)
	FillRect(r Rect, f Fill)
	FillText(text string, pos math.Vec2, style TextStyle)
	MeasureText(text string, style TextStyle) float64
}

// Rect is an axis aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p math.Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() math.Vec2 {
	return math.Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Face selects one of the bundled font faces.
type Face int

const (
	FaceRegular Face = iota
	FaceItalic
	FaceBold
)

// Align is the horizontal anchor of drawn text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a string is drawn. Text is vertically centred on
// the given position.
type TextStyle struct {
	Face  Face
	Size  float64
	Align Align
	Color color.NRGBA
}
