package surface

import (
	"fmt"
	"image/color"

	"github.com/Faultbox/heartfield/pkg/math"
)

// Fill is a paint source: Solid, LinearGradient or RadialGradient.
type Fill interface {
	fill()
}

// Stop is one gradient color stop, Pos in [0, 1].
type Stop struct {
	Pos   float64
	Color color.NRGBA
}

// Solid paints a single color.
type Solid struct {
	Color color.NRGBA
}

// LinearGradient interpolates along the segment From -> To.
type LinearGradient struct {
	From, To math.Vec2
	Stops    []Stop
}

// RadialGradient interpolates between two circles.
type RadialGradient struct {
	C0    math.Vec2
	R0    float64
	C1    math.Vec2
	R1    float64
	Stops []Stop
}

func (Solid) fill()          {}
func (LinearGradient) fill() {}
func (RadialGradient) fill() {}

// RGBA builds a straight-alpha color from 8-bit channels and a float alpha.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(a)}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = alphaByte(a)
	return c
}

// Opaque converts a palette color into a fully opaque straight-alpha color.
func Opaque(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

func alphaByte(a float64) uint8 {
	switch {
	case a <= 0:
		return 0
	case a >= 1:
		return 0xFF
	}
	return uint8(a*255 + 0.5)
}

// CSS formats c as a CSS rgba() string.
func CSS(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

// Common colors.
var (
	Black       = color.NRGBA{A: 0xFF}
	White       = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Transparent = color.NRGBA{}
)
