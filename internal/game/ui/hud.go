// Package ui draws the heads-up display, the completion screen and the
// debug overlay on top of the scene.
package ui

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/renderer"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/internal/engine/ui2d"
	"github.com/Faultbox/heartfield/internal/game/scene"
	"github.com/Faultbox/heartfield/pkg/math"
)

// Widget IDs, also returned by ui2d.Context.HitTest.
const (
	IDSound   = "sound"
	IDFocus   = "focus"
	IDRestart = "restart"
	IDCounter = "counter"
)

// HUD layout in logical pixels.
const (
	hudMargin      = 24.0
	hudButtonH     = 46.0
	hudButtonGap   = 16.0
	counterBottom  = 32.0
	counterH       = 46.0
	counterIcon    = 16.0
	hintBottom     = 96.0
	hintLineH      = 48.0
	overlaySize    = 32.0
	overlayLift    = 40.0
	overlayGlowPad = 40.0
)

// Hint fade timing.
const (
	hintDelay = time.Second
	hintFade  = 2 * time.Second
	hintAlpha = 0.5
)

// OverlayFadeIn is the overlay's entrance animation length.
const OverlayFadeIn = 500 * time.Millisecond

var (
	overlayGlow  = surface.RGBA(255, 45, 85, 0.8)
	overlayHalo  = surface.RGBA(255, 255, 255, 0.9)
	counterStyle = surface.TextStyle{
		Face:  surface.FaceRegular,
		Size:  14,
		Align: surface.AlignLeft,
		Color: surface.RGBA(255, 255, 255, 0.8),
	}
	hintStyle = surface.TextStyle{
		Face:  surface.FaceRegular,
		Size:  11,
		Align: surface.AlignCenter,
		Color: ui2d.ColorTextDim,
	}
	overlayStyle = surface.TextStyle{
		Face:  surface.FaceItalic,
		Size:  overlaySize,
		Align: surface.AlignCenter,
		Color: ui2d.ColorWhite,
	}
)

// HUD draws the in-scene controls: sound toggle, focus button, hearts-left
// counter, hint and the revealed message.
type HUD struct {
	heart *surface.Path
}

// NewHUD creates a HUD.
func NewHUD() *HUD {
	return &HUD{heart: renderer.HeartPath()}
}

// Draw renders the HUD for snap and returns the command of a button clicked
// this frame. It must run between ctx.Begin and ctx.End.
func (h *HUD) Draw(ctx *ui2d.Context, snap scene.Snapshot, soundOn bool) input.Action {
	act := input.ActionNone
	s := ctx.Renderer().Surface()
	w, _ := s.Size()

	style := ui2d.GhostButton()
	label := "Sound Off"
	if soundOn {
		label = "Sound On"
	}
	bw, _ := ctx.ButtonSize(label, style, hudButtonH)
	y := hudMargin
	if ctx.Button(IDSound, surface.Rect{X: w - hudMargin - bw, Y: y, W: bw, H: hudButtonH}, label, style) {
		act = input.ActionToggleSound
	}

	if !snap.AllPopped {
		y += hudButtonH + hudButtonGap
		focus := style
		focus.Text.Size = 10
		focus.Text.Face = surface.FaceBold
		bw, _ = ctx.ButtonSize("CLICK ME", focus, hudButtonH)
		if ctx.Button(IDFocus, surface.Rect{X: w - hudMargin - bw, Y: y, W: bw, H: hudButtonH}, "CLICK ME", focus) {
			act = input.ActionFocusNext
		}

		h.drawCounter(ctx, snap)
		h.drawHint(ctx, snap)
	}

	if snap.Overlay != nil {
		h.drawOverlay(s, *snap.Overlay)
	}
	return act
}

// CounterText is the hearts-left label.
func CounterText(remaining int) string {
	return fmt.Sprintf("%d Hearts Left", remaining)
}

func (h *HUD) drawCounter(ctx *ui2d.Context, snap scene.Snapshot) {
	s := ctx.Renderer().Surface()
	w, ht := s.Size()

	text := CounterText(snap.Remaining)
	tw := s.MeasureText(text, counterStyle)
	inner := counterIcon + 8 + tw
	pill := surface.Rect{
		X: (w - inner - 48) / 2,
		Y: ht - counterBottom - counterH,
		W: inner + 48,
		H: counterH,
	}
	ctx.Panel(pill, ui2d.ColorPanelBg, ui2d.ColorPanelBorder, -1)

	cy := pill.Y + pill.H/2
	x := pill.X + 24
	drawHeartIcon(s, h.heart, math.Vec2{X: x + counterIcon/2, Y: cy}, counterIcon, ui2d.ColorAccent)
	ctx.Label(text, math.Vec2{X: x + counterIcon + 8, Y: cy}, counterStyle)
}

func (h *HUD) drawHint(ctx *ui2d.Context, snap scene.Snapshot) {
	t := progress(snap.SinceReset, hintDelay, hintFade)
	if t <= 0 {
		return
	}
	s := ctx.Renderer().Surface()
	w, ht := s.Size()

	s.Save()
	defer s.Restore()
	s.SetAlpha(hintAlpha * t)
	s.Translate(0, lerp(10, 0, easeOut(t)))

	textY := ht - hintBottom
	lineTop := textY - 8 - hintLineH
	s.FillRect(surface.Rect{X: w / 2, Y: lineTop, W: 1, H: hintLineH}, surface.LinearGradient{
		From: math.Vec2{X: w / 2, Y: lineTop},
		To:   math.Vec2{X: w / 2, Y: lineTop + hintLineH},
		Stops: []surface.Stop{
			{Pos: 0, Color: surface.Transparent},
			{Pos: 1, Color: surface.RGBA(255, 255, 255, 0.3)},
		},
	})
	ctx.Label(spaced("FIND THE LOVE"), math.Vec2{X: w / 2, Y: textY}, hintStyle)
}

// drawOverlay draws the revealed message above its heart with a glow,
// scaling in from 0.5 over OverlayFadeIn.
func (h *HUD) drawOverlay(s surface.Surface, ov scene.OverlayView) {
	t := progress(ov.Age, 0, OverlayFadeIn)
	alpha := easeOut(t)
	if alpha <= 0 {
		return
	}
	scale := lerp(0.5, 1, easeBackOut(t))

	s.Save()
	defer s.Restore()
	s.Translate(ov.Screen.X, ov.Screen.Y-overlayLift)
	s.Scale(scale)
	s.SetAlpha(alpha)

	tw := s.MeasureText(ov.Text, overlayStyle)
	rx := tw/2 + overlayGlowPad
	s.FillEllipse(math.Vec2{}, rx, overlaySize, 0, glow(overlayGlow, rx))
	s.FillEllipse(math.Vec2{}, tw/2+overlayGlowPad/2, overlaySize/2, 0, glow(surface.WithAlpha(overlayHalo, 0.35), tw/2))
	s.FillText(ov.Text, math.Vec2{}, overlayStyle)
}

func glow(c color.NRGBA, r float64) surface.RadialGradient {
	return surface.RadialGradient{
		R1: r,
		Stops: []surface.Stop{
			{Pos: 0, Color: c},
			{Pos: 1, Color: surface.WithAlpha(c, 0)},
		},
	}
}

// drawHeartIcon fills a flat heart glyph of the given size centred on c.
func drawHeartIcon(s surface.Surface, heart *surface.Path, c math.Vec2, size float64, col color.NRGBA) {
	s.Save()
	defer s.Restore()
	s.Translate(c.X, c.Y)
	s.Scale(size / 22)
	s.Translate(0, -11)
	s.FillPath(heart, surface.Solid{Color: col})
}

// spaced widens letter tracking by interleaving spaces.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}
