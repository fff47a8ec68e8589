package surface

import (
	"fmt"
	"image"
	"image/color"
	stdmath "math"

	"github.com/tfriedel6/canvas"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/Faultbox/heartfield/pkg/math"
)

// Canvas implements Surface on a tfriedel6/canvas context.
type Canvas struct {
	cv    *canvas.Canvas
	fonts map[Face]*canvas.Font

	w, h float64
}

// NewCanvas wraps cv and loads the bundled Go fonts.
func NewCanvas(cv *canvas.Canvas) (*Canvas, error) {
	c := &Canvas{
		cv:    cv,
		fonts: make(map[Face]*canvas.Font, 3),
		w:     float64(cv.Width()),
		h:     float64(cv.Height()),
	}

	faces := map[Face][]byte{
		FaceRegular: goregular.TTF,
		FaceItalic:  goitalic.TTF,
		FaceBold:    gobold.TTF,
	}
	for face, ttf := range faces {
		f, err := cv.LoadFont(ttf)
		if err != nil {
			return nil, fmt.Errorf("load font %d: %w", face, err)
		}
		c.fonts[face] = f
	}
	return c, nil
}

// BeginFrame resets the transform for a frame drawn at the given logical
// window size. The device pixel ratio is the backing canvas width over the
// logical width.
func (c *Canvas) BeginFrame(logicalW, logicalH int) {
	c.w, c.h = float64(logicalW), float64(logicalH)
	dpr := 1.0
	if logicalW > 0 {
		dpr = float64(c.cv.Width()) / c.w
	}
	c.cv.SetTransform(dpr, 0, 0, dpr, 0, 0)
	c.cv.SetGlobalAlpha(1)
}

// BackingSize returns the canvas size in physical pixels.
func (c *Canvas) BackingSize() (int, int) {
	return c.cv.Width(), c.cv.Height()
}

// Snapshot reads back the full backing canvas in physical pixels.
func (c *Canvas) Snapshot() *image.RGBA {
	return c.cv.GetImageData(0, 0, c.cv.Width(), c.cv.Height())
}

// Size returns the logical size of the current frame.
func (c *Canvas) Size() (float64, float64) {
	return c.w, c.h
}

// Clear fills the whole frame with col, ignoring the global alpha.
func (c *Canvas) Clear(col color.NRGBA) {
	c.cv.Save()
	c.cv.SetGlobalAlpha(1)
	c.cv.SetFillStyle(CSS(col))
	c.cv.FillRect(0, 0, c.w, c.h)
	c.cv.Restore()
}

// Save pushes the transform and alpha.
func (c *Canvas) Save() { c.cv.Save() }

// Restore pops the state pushed by Save.
func (c *Canvas) Restore() { c.cv.Restore() }

// Translate moves the origin.
func (c *Canvas) Translate(x, y float64) { c.cv.Translate(x, y) }

// Scale scales both axes uniformly.
func (c *Canvas) Scale(s float64) { c.cv.Scale(s, s) }

// SetAlpha sets the global alpha for following draws.
func (c *Canvas) SetAlpha(a float64) { c.cv.SetGlobalAlpha(a) }

// FillPath fills p in the current transform.
func (c *Canvas) FillPath(p *Path, f Fill) {
	c.cv.BeginPath()
	for _, s := range p.Segments {
		switch s.Op {
		case OpMove:
			c.cv.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		case OpLine:
			c.cv.LineTo(s.Pts[0].X, s.Pts[0].Y)
		case OpBezier:
			c.cv.BezierCurveTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y, s.Pts[2].X, s.Pts[2].Y)
		case OpClose:
			c.cv.ClosePath()
		}
	}
	c.fill(f)
}

// FillCircle fills a circle of radius r.
func (c *Canvas) FillCircle(center math.Vec2, r float64, f Fill) {
	c.cv.BeginPath()
	c.cv.Arc(center.X, center.Y, r, 0, 2*stdmath.Pi, false)
	c.fill(f)
}

// FillEllipse fills an ellipse rotated by rotation radians.
func (c *Canvas) FillEllipse(center math.Vec2, rx, ry, rotation float64, f Fill) {
	c.cv.BeginPath()
	c.cv.Ellipse(center.X, center.Y, rx, ry, rotation, 0, 2*stdmath.Pi, false)
	c.fill(f)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(r Rect, f Fill) {
	c.setFill(f)
	c.cv.FillRect(r.X, r.Y, r.W, r.H)
}

// FillText draws text vertically centred on pos.
func (c *Canvas) FillText(text string, pos math.Vec2, style TextStyle) {
	c.setFont(style)
	c.cv.SetFillStyle(CSS(style.Color))
	c.cv.FillText(text, pos.X, pos.Y)
}

// MeasureText returns the advance width of text.
func (c *Canvas) MeasureText(text string, style TextStyle) float64 {
	c.setFont(style)
	return c.cv.MeasureText(text).Width
}

func (c *Canvas) setFont(style TextStyle) {
	c.cv.SetFont(c.fonts[style.Face], style.Size)
	c.cv.SetTextBaseline(canvas.Middle)
	switch style.Align {
	case AlignCenter:
		c.cv.SetTextAlign(canvas.Center)
	case AlignRight:
		c.cv.SetTextAlign(canvas.Right)
	default:
		c.cv.SetTextAlign(canvas.Left)
	}
}

func (c *Canvas) fill(f Fill) {
	c.setFill(f)
	c.cv.Fill()
}

func (c *Canvas) setFill(f Fill) {
	switch f := f.(type) {
	case Solid:
		c.cv.SetFillStyle(CSS(f.Color))
	case LinearGradient:
		g := c.cv.CreateLinearGradient(f.From.X, f.From.Y, f.To.X, f.To.Y)
		for _, s := range f.Stops {
			g.AddColorStop(s.Pos, CSS(s.Color))
		}
		c.cv.SetFillStyle(g)
	case RadialGradient:
		g := c.cv.CreateRadialGradient(f.C0.X, f.C0.Y, f.R0, f.C1.X, f.C1.Y, f.R1)
		for _, s := range f.Stops {
			g.AddColorStop(s.Pos, CSS(s.Color))
		}
		c.cv.SetFillStyle(g)
	}
}

var _ Surface = (*Canvas)(nil)
