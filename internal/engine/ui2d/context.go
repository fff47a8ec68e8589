// Package ui2d is a small immediate-mode UI drawn onto a surface: buttons,
// panels and labels with hover and click handling.
package ui2d

import (
	"image/color"

	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/pkg/math"
)

// ButtonStyle describes how a button is painted.
type ButtonStyle struct {
	Bg      color.NRGBA
	HoverBg color.NRGBA
	Border  color.NRGBA
	Text    surface.TextStyle
	Radius  float64 // negative means fully rounded
	PadX    float64
}

// GhostButton is the translucent pill used by the HUD.
func GhostButton() ButtonStyle {
	return ButtonStyle{
		Bg:      ColorPanelBg,
		HoverBg: ColorButtonHover,
		Border:  ColorPanelBorder,
		Text: surface.TextStyle{
			Face:  surface.FaceRegular,
			Size:  14,
			Align: surface.AlignCenter,
			Color: ColorText,
		},
		Radius: -1,
		PadX:   16,
	}
}

// SolidButton is the opaque white call-to-action button.
func SolidButton() ButtonStyle {
	return ButtonStyle{
		Bg:      ColorWhite,
		HoverBg: surface.RGBA(255, 255, 255, 0.9),
		Text: surface.TextStyle{
			Face:  surface.FaceBold,
			Size:  16,
			Align: surface.AlignCenter,
			Color: ColorBlack,
		},
		Radius: -1,
		PadX:   32,
	}
}

type widget struct {
	id   string
	rect surface.Rect
}

// Context is the main UI context that manages rendering and input.
type Context struct {
	renderer *Renderer
	input    *InputState

	// Button under the pointer in the frame being drawn
	hotWidget string

	// Interactive widgets of the frame being drawn and of the last
	// finished frame. Hit tests run against the finished frame.
	widgets []widget
	last    []widget
}

// NewContext creates a new UI context.
func NewContext() *Context {
	return &Context{
		renderer: NewRenderer(),
		input:    &InputState{},
	}
}

// Renderer returns the underlying renderer.
func (c *Context) Renderer() *Renderer {
	return c.renderer
}

// Input returns the input state for modification.
func (c *Context) Input() *InputState {
	return c.input
}

// Begin starts a new UI frame on s.
func (c *Context) Begin(s surface.Surface) {
	c.input.Update()
	c.renderer.Begin(s)
	c.hotWidget = ""
	c.widgets = c.widgets[:0]
}

// End finishes the UI frame.
func (c *Context) End() {
	c.renderer.End()
	c.input.EndFrame()
	c.last = append(c.last[:0], c.widgets...)
}

// HitTest returns the topmost widget of the last frame under p.
func (c *Context) HitTest(p math.Vec2) (string, bool) {
	for i := len(c.last) - 1; i >= 0; i-- {
		if c.last[i].rect.Contains(p) {
			return c.last[i].id, true
		}
	}
	return "", false
}

// Hot returns the button under the pointer in the current frame. Regions
// never become hot.
func (c *Context) Hot() string {
	return c.hotWidget
}

func (c *Context) hovered(rc surface.Rect) bool {
	p, inside := c.input.Pointer()
	return inside && rc.Contains(p)
}

// ButtonSize returns the size a button with label would take.
func (c *Context) ButtonSize(label string, style ButtonStyle, height float64) (float64, float64) {
	w := c.renderer.MeasureText(label, style.Text) + 2*style.PadX
	return w, height
}

// Button draws a button and returns true if it was clicked this frame.
// A click fires on press.
func (c *Context) Button(id string, rc surface.Rect, label string, style ButtonStyle) bool {
	c.widgets = append(c.widgets, widget{id: id, rect: rc})

	hovered := c.hovered(rc)
	if p, _ := c.input.Pointer(); hovered {
		// A widget drawn above this one last frame takes the pointer.
		if top, ok := c.HitTest(p); ok && top != id {
			hovered = false
		}
	}
	clicked := false

	if hovered {
		c.hotWidget = id
		if c.input.MouseLeftPressed || c.input.MouseLeftClicked {
			clicked = true
			// Only one button gets the click.
			c.input.MouseLeftClicked = false
			c.input.MouseLeftPressed = false
		}
	}

	bg := style.Bg
	if hovered {
		bg = style.HoverBg
	}
	radius := style.Radius
	if radius < 0 {
		radius = rc.H / 2
	}
	if style.Border.A > 0 {
		c.renderer.DrawPanel(rc, bg, style.Border, radius)
	} else {
		c.renderer.DrawRect(rc, bg, radius)
	}

	pos := rc.Center()
	switch style.Text.Align {
	case surface.AlignLeft:
		pos.X = rc.X + style.PadX
	case surface.AlignRight:
		pos.X = rc.X + rc.W - style.PadX
	}
	c.renderer.DrawText(label, pos, style.Text)

	return clicked
}

// Region registers a non-drawing widget that takes part in hit tests, so
// clicks inside it do not fall through to whatever lies below.
func (c *Context) Region(id string, rc surface.Rect) {
	c.widgets = append(c.widgets, widget{id: id, rect: rc})
}

// Panel draws a bordered rectangle.
func (c *Context) Panel(rc surface.Rect, bg, border color.NRGBA, radius float64) {
	if radius < 0 {
		radius = rc.H / 2
	}
	c.renderer.DrawPanel(rc, bg, border, radius)
}

// Label draws a text label.
func (c *Context) Label(text string, pos math.Vec2, style surface.TextStyle) {
	c.renderer.DrawText(text, pos, style)
}
