package ui

import (
	"time"

	"github.com/Faultbox/heartfield/internal/engine/renderer"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/internal/engine/ui2d"
	"github.com/Faultbox/heartfield/pkg/math"
)

// Completion screen text.
const (
	CompletionTitle    = "You Are My Favourite"
	CompletionSubtitle = "FOREVER & ALWAYS"
	RestartLabel       = "Restart Journey"
)

const (
	completionFade  = 400 * time.Millisecond
	completionPulse = 2 * time.Second
	completionIcon  = 64.0
	restartH        = 48.0
	// IDBackdrop covers the whole screen while the completion screen is up.
	IDBackdrop = "backdrop"
)

var (
	titleStyle = surface.TextStyle{
		Face:  surface.FaceItalic,
		Size:  56,
		Align: surface.AlignCenter,
		Color: ui2d.ColorWhite,
	}
	subtitleStyle = surface.TextStyle{
		Face:  surface.FaceRegular,
		Size:  15,
		Align: surface.AlignCenter,
		Color: ui2d.ColorText,
	}
)

// Completion is the end screen shown once every heart is popped.
type Completion struct {
	heart *surface.Path
}

// NewCompletion creates the completion screen.
func NewCompletion() *Completion {
	return &Completion{heart: renderer.HeartPath()}
}

// Draw renders the screen elapsed time after it appeared. It reports
// whether the restart button was clicked.
func (c *Completion) Draw(ctx *ui2d.Context, elapsed time.Duration) bool {
	s := ctx.Renderer().Surface()
	w, h := s.Size()
	full := surface.Rect{W: w, H: h}

	t := progress(elapsed, 0, completionFade)
	k := easeOut(t)

	s.Save()
	s.SetAlpha(k)
	s.FillRect(full, surface.Solid{Color: ui2d.ColorDim})
	s.Restore()
	ctx.Region(IDBackdrop, full)

	// The content block rises 20px and grows from 0.8 while fading in.
	cx, cy := w/2, h/2
	s.Save()
	s.SetAlpha(k)
	s.Translate(cx, cy+lerp(20, 0, k))
	s.Scale(lerp(0.8, 1, k))

	iconScale := pulse(elapsed, completionPulse, 1.1)
	drawHeartIcon(s, c.heart, math.Vec2{Y: -150}, completionIcon*iconScale, ui2d.ColorAccent)
	s.FillText(CompletionTitle, math.Vec2{Y: -50}, titleStyle)
	s.FillText(spaced(CompletionSubtitle), math.Vec2{Y: 20}, subtitleStyle)
	s.Restore()

	style := ui2d.SolidButton()
	bw, _ := ctx.ButtonSize(RestartLabel, style, restartH)
	// Drawn at its settled position; only the alpha animates.
	rc := surface.Rect{X: cx - bw/2, Y: cy + 80, W: bw, H: restartH}
	s.Save()
	s.SetAlpha(k)
	clicked := ctx.Button(IDRestart, rc, RestartLabel, style)
	s.Restore()
	return clicked
}
