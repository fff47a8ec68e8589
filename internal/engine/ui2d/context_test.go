package ui2d

import (
	"testing"

	"github.com/Faultbox/heartfield/internal/engine/input"
	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/pkg/math"
)

var buttonRect = surface.Rect{X: 100, Y: 100, W: 120, H: 40}

func frame(ctx *Context, rec *surface.Recorder, draw func()) {
	rec.Reset()
	ctx.Begin(rec)
	draw()
	ctx.End()
}

func TestButtonClickOnPress(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)

	ctx.Input().Feed(input.Event{Type: input.EventPointerMove, X: 150, Y: 120})
	var clicked bool
	frame(ctx, rec, func() { clicked = ctx.Button("ok", buttonRect, "OK", GhostButton()) })
	if clicked {
		t.Fatal("hover alone clicked")
	}
	if ctx.Hot() != "ok" {
		t.Errorf("hot = %q, want ok", ctx.Hot())
	}

	ctx.Input().Feed(input.Event{Type: input.EventPointerDown, X: 150, Y: 120})
	frame(ctx, rec, func() { clicked = ctx.Button("ok", buttonRect, "OK", GhostButton()) })
	if !clicked {
		t.Fatal("press on button did not click")
	}

	// Held, not a new press.
	frame(ctx, rec, func() { clicked = ctx.Button("ok", buttonRect, "OK", GhostButton()) })
	if clicked {
		t.Error("held button clicked twice")
	}
}

func TestPressAndReleaseInOneFrame(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)

	ctx.Input().Feed(input.Event{Type: input.EventPointerDown, X: 110, Y: 110})
	ctx.Input().Feed(input.Event{Type: input.EventPointerUp, X: 110, Y: 110})

	var clicked bool
	frame(ctx, rec, func() { clicked = ctx.Button("ok", buttonRect, "OK", GhostButton()) })
	if !clicked {
		t.Error("quick click lost")
	}
}

func TestOnlyOneButtonGetsTheClick(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)
	ctx.Input().Feed(input.Event{Type: input.EventPointerDown, X: 150, Y: 120})

	var a, b bool
	frame(ctx, rec, func() {
		a = ctx.Button("a", buttonRect, "A", GhostButton())
		b = ctx.Button("b", buttonRect, "B", GhostButton())
	})
	if !a || b {
		t.Errorf("clicks a=%v b=%v, want only a", a, b)
	}
}

func TestHitTestUsesLastFrame(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)
	p := math.Vec2{X: 150, Y: 120}

	if _, ok := ctx.HitTest(p); ok {
		t.Fatal("hit before any frame")
	}
	frame(ctx, rec, func() {
		ctx.Button("under", buttonRect, "", GhostButton())
		ctx.Button("over", buttonRect, "", GhostButton())
	})
	if id, ok := ctx.HitTest(p); !ok || id != "over" {
		t.Errorf("hit = %q %v, want topmost", id, ok)
	}
	if _, ok := ctx.HitTest(math.Vec2{X: 10, Y: 10}); ok {
		t.Error("hit outside every widget")
	}

	frame(ctx, rec, func() {})
	if _, ok := ctx.HitTest(p); ok {
		t.Error("widget not drawn this frame still hit")
	}
}

func TestButtonHoverColor(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)
	style := SolidButton()

	frame(ctx, rec, func() { ctx.Button("go", buttonRect, "Go", style) })
	fill := rec.Filter(surface.KindPath)[0].Fill.(surface.Solid)
	if fill.Color != style.Bg {
		t.Errorf("idle fill = %v, want %v", fill.Color, style.Bg)
	}

	ctx.Input().Feed(input.Event{Type: input.EventPointerMove, X: 150, Y: 120})
	frame(ctx, rec, func() { ctx.Button("go", buttonRect, "Go", style) })
	fill = rec.Filter(surface.KindPath)[0].Fill.(surface.Solid)
	if fill.Color != style.HoverBg {
		t.Errorf("hover fill = %v, want %v", fill.Color, style.HoverBg)
	}

	ctx.Input().Feed(input.Event{Type: input.EventPointerLeave})
	frame(ctx, rec, func() { ctx.Button("go", buttonRect, "Go", style) })
	if ctx.Hot() != "" {
		t.Error("button hot after the pointer left")
	}
}

func TestRegionCapturesButIsNeverHot(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)
	full := surface.Rect{W: 800, H: 600}

	ctx.Input().Feed(input.Event{Type: input.EventPointerMove, X: 10, Y: 10})
	frame(ctx, rec, func() {
		ctx.Region("backdrop", full)
		ctx.Button("go", buttonRect, "Go", SolidButton())
	})
	if ctx.Hot() != "" {
		t.Errorf("hot = %q over a region, want none", ctx.Hot())
	}
	if id, ok := ctx.HitTest(math.Vec2{X: 10, Y: 10}); !ok || id != "backdrop" {
		t.Errorf("hit = %q, %v; want backdrop", id, ok)
	}
	if len(rec.Filter(surface.KindRect)) != 0 {
		t.Error("region drew something")
	}

	ctx.Input().Feed(input.Event{Type: input.EventPointerMove, X: 150, Y: 120})
	frame(ctx, rec, func() {
		ctx.Region("backdrop", full)
		ctx.Button("go", buttonRect, "Go", SolidButton())
	})
	if ctx.Hot() != "go" {
		t.Errorf("hot = %q over the button, want go", ctx.Hot())
	}
}

func TestButtonLabelCentered(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)
	frame(ctx, rec, func() { ctx.Button("go", buttonRect, "Go", GhostButton()) })

	texts := rec.Filter(surface.KindText)
	if len(texts) != 1 || texts[0].Text != "Go" {
		t.Fatalf("texts = %v", rec.Texts())
	}
	if texts[0].Center != buttonRect.Center() {
		t.Errorf("label at %v, want %v", texts[0].Center, buttonRect.Center())
	}
}

func TestPanelDrawsBorderThenBody(t *testing.T) {
	ctx := NewContext()
	rec := surface.NewRecorder(800, 600)
	frame(ctx, rec, func() {
		ctx.Panel(surface.Rect{X: 0, Y: 0, W: 100, H: 30}, ColorPanelBg, ColorPanelBorder, -1)
	})
	paths := rec.Filter(surface.KindPath)
	if len(paths) != 2 {
		t.Fatalf("paths = %d, want 2", len(paths))
	}
	if paths[0].Fill.(surface.Solid).Color != ColorPanelBorder {
		t.Error("border not drawn first")
	}
}
