package surface

import (
	"image/color"
	"testing"

	"github.com/Faultbox/heartfield/pkg/math"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}
	tests := []struct {
		p    math.Vec2
		want bool
	}{
		{math.Vec2{X: 10, Y: 20}, true},
		{math.Vec2{X: 109.9, Y: 69.9}, true},
		{math.Vec2{X: 110, Y: 40}, false},
		{math.Vec2{X: 50, Y: 70}, false},
		{math.Vec2{X: 9, Y: 40}, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
	if c := r.Center(); c != (math.Vec2{X: 60, Y: 45}) {
		t.Errorf("Center = %v", c)
	}
}

func TestAlphaConversion(t *testing.T) {
	tests := []struct {
		a    float64
		want uint8
	}{
		{-1, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{7, 255},
	}
	for _, tt := range tests {
		if got := RGBA(1, 2, 3, tt.a).A; got != tt.want {
			t.Errorf("alpha %v -> %d, want %d", tt.a, got, tt.want)
		}
	}
	if got := Opaque(color.RGBA{R: 0xDC, G: 0x14, B: 0x3C, A: 0xFF}); got != (color.NRGBA{R: 0xDC, G: 0x14, B: 0x3C, A: 0xFF}) {
		t.Errorf("Opaque = %v", got)
	}
}

func TestCSS(t *testing.T) {
	if got := CSS(RGBA(255, 0, 64, 1)); got != "rgba(255,0,64,1.000)" {
		t.Errorf("CSS = %q", got)
	}
	if got := CSS(Transparent); got != "rgba(0,0,0,0.000)" {
		t.Errorf("CSS = %q", got)
	}
}

func TestRoundRect(t *testing.T) {
	p := RoundRect(Rect{X: 0, Y: 0, W: 100, H: 20}, 50)
	if p.Segments[0].Op != OpMove {
		t.Fatal("path must start with a move")
	}
	// Radius clamps to half the height.
	if got := p.Segments[0].Pts[0]; got != (math.Vec2{X: 10, Y: 0}) {
		t.Errorf("start = %v, want (10, 0)", got)
	}
	if last := p.Segments[len(p.Segments)-1]; last.Op != OpClose {
		t.Error("path is not closed")
	}
	beziers := 0
	for _, s := range p.Segments {
		if s.Op == OpBezier {
			beziers++
		}
	}
	if beziers != 4 {
		t.Errorf("corners = %d, want 4", beziers)
	}
}

func TestRecorderTransformStack(t *testing.T) {
	r := NewRecorder(800, 600)

	r.Save()
	r.Translate(100, 50)
	r.Scale(2)
	r.Translate(10, 10)
	r.SetAlpha(0.25)
	r.FillCircle(math.Vec2{X: 1, Y: 1}, 3, Solid{Color: White})
	r.Restore()
	r.FillRect(Rect{W: 5, H: 5}, Solid{Color: Black})

	circles := r.Filter(KindCircle)
	if len(circles) != 1 {
		t.Fatalf("circles = %d", len(circles))
	}
	c := circles[0]
	if c.Alpha != 0.25 {
		t.Errorf("alpha = %v", c.Alpha)
	}
	if got := c.Transform.Apply(c.Center); got != (math.Vec2{X: 122, Y: 72}) {
		t.Errorf("mapped center = %v, want (122, 72)", got)
	}

	rect := r.Filter(KindRect)[0]
	if rect.Alpha != 1 || rect.Transform.Scale != 1 || rect.Transform.Offset != (math.Vec2{}) {
		t.Errorf("state leaked past Restore: %+v", rect)
	}
	if r.Depth() != 0 {
		t.Errorf("depth = %d", r.Depth())
	}

	// Unbalanced Restore is ignored.
	r.Restore()

	r.Reset()
	if len(r.Ops) != 0 {
		t.Error("Reset kept ops")
	}
}

func TestRecorderText(t *testing.T) {
	r := NewRecorder(100, 100)
	style := TextStyle{Size: 20, Color: White}
	r.FillText("hello", math.Vec2{X: 5, Y: 5}, style)

	if got := r.Texts(); len(got) != 1 || got[0] != "hello" {
		t.Errorf("texts = %v", got)
	}
	if w := r.MeasureText("hello", style); w != 50 {
		t.Errorf("width = %v, want 50", w)
	}
}
