package ui

import (
	"fmt"
	"image/color"
	"runtime"

	"github.com/Faultbox/heartfield/internal/engine/surface"
	"github.com/Faultbox/heartfield/internal/engine/ui2d"
	"github.com/Faultbox/heartfield/internal/game/scene"
	"github.com/Faultbox/heartfield/pkg/math"
)

const (
	debugX      = 10.0
	debugY      = 10.0
	debugW      = 250.0
	debugPad    = 8.0
	debugLineH  = 16.0
	debugFontSz = 12.0
)

var (
	fpsGood = color.NRGBA{R: 51, G: 255, B: 51, A: 255}
	fpsOK   = color.NRGBA{R: 255, G: 255, B: 51, A: 255}
	fpsBad  = color.NRGBA{R: 255, G: 51, B: 51, A: 255}
)

// AudioStatus is the audio manager state shown by the debug overlay.
type AudioStatus struct {
	Open    bool // Device initialized
	Enabled bool
	Volume  float64
}

// DebugOverlay renders frame timing, scene counters and memory use.
type DebugOverlay struct {
	// Frame timing
	frameCount    int
	fps           float64
	frameTime     float64 // ms
	fpsUpdateTime float64 // seconds since last FPS update
	frameAccum    int

	// Memory stats
	memStats      runtime.MemStats
	memUpdateTime float64

	stats scene.Stats
	audio AudioStatus

	// Display toggles
	ShowFPS    bool
	ShowScene  bool
	ShowCamera bool
	ShowMemory bool
	Enabled    bool
}

// NewDebugOverlay creates a new debug overlay, hidden until toggled.
func NewDebugOverlay() *DebugOverlay {
	return &DebugOverlay{
		ShowFPS:    true,
		ShowScene:  true,
		ShowCamera: true,
		ShowMemory: true,
	}
}

// Toggle flips visibility and returns the new state.
func (d *DebugOverlay) Toggle() bool {
	d.Enabled = !d.Enabled
	return d.Enabled
}

// Update updates the debug overlay state.
// deltaMs is the frame time in milliseconds.
func (d *DebugOverlay) Update(deltaMs float64, stats scene.Stats, audio AudioStatus) {
	d.frameCount++
	d.frameTime = deltaMs
	d.frameAccum++
	d.fpsUpdateTime += deltaMs / 1000.0
	d.stats = stats
	d.audio = audio

	// Update FPS every 0.5 seconds
	if d.fpsUpdateTime >= 0.5 {
		d.fps = float64(d.frameAccum) / d.fpsUpdateTime
		d.frameAccum = 0
		d.fpsUpdateTime = 0
	}

	if !d.Enabled {
		return
	}
	// ReadMemStats stops the world; every 2 seconds is plenty.
	d.memUpdateTime += deltaMs / 1000.0
	if d.memUpdateTime >= 2.0 || d.memStats.Sys == 0 {
		runtime.ReadMemStats(&d.memStats)
		d.memUpdateTime = 0
	}
}

// FPS returns the last measured frame rate.
func (d *DebugOverlay) FPS() float64 {
	return d.fps
}

type debugLine struct {
	text  string
	color color.NRGBA
}

func (d *DebugOverlay) lines() []debugLine {
	var out []debugLine
	add := func(format string, args ...any) {
		out = append(out, debugLine{text: fmt.Sprintf(format, args...), color: ui2d.ColorTextBright})
	}

	if d.ShowFPS {
		out = append(out, debugLine{
			text:  fmt.Sprintf("FPS: %.1f (%.2f ms)", d.fps, d.frameTime),
			color: fpsColor(d.fps),
		})
	}
	if d.ShowScene {
		st := d.stats
		add("Generation: %d  Fallbacks: %d", st.Generation, st.Fallbacks)
		add("Hearts left: %d", st.Hearts)
		add("Stars: %d  Bursts: %d", st.Stars, st.Bursts)
		add("Pending: %d", st.Pending)
		add("Audio: %s  Volume: %.0f%%", d.audioState(), d.audio.Volume*100)
	}
	if d.ShowCamera {
		cam := d.stats.Camera
		add("Pitch: %.3f  Yaw: %.3f", cam.Rotation.Pitch, cam.Rotation.Yaw)
		if cam.Target != nil {
			add("Target: %.3f  %.3f", cam.Target.Pitch, cam.Target.Yaw)
		}
		add("Focal: %.0f  Dragging: %v", cam.Focal, d.stats.Dragging)
	}
	if d.ShowMemory {
		add("Alloc: %s", formatBytes(int64(d.memStats.Alloc)))
		add("Sys: %s  GC: %d", formatBytes(int64(d.memStats.Sys)), d.memStats.NumGC)
	}
	return out
}

func (d *DebugOverlay) audioState() string {
	switch {
	case !d.audio.Open:
		return "closed"
	case d.audio.Enabled:
		return "on"
	default:
		return "muted"
	}
}

// fpsColor grades a frame rate green, yellow or red.
func fpsColor(fps float64) color.NRGBA {
	switch {
	case fps < 30:
		return fpsBad
	case fps < 60:
		return fpsOK
	}
	return fpsGood
}

// Render draws the overlay at the top-left corner.
func (d *DebugOverlay) Render(s surface.Surface) {
	if !d.Enabled {
		return
	}
	lines := d.lines()
	if len(lines) == 0 {
		return
	}

	h := float64(len(lines))*debugLineH + 2*debugPad
	s.FillPath(surface.RoundRect(surface.Rect{X: debugX, Y: debugY, W: debugW, H: h}, 4),
		surface.Solid{Color: surface.RGBA(0, 0, 0, 0.6)})

	y := debugY + debugPad + debugLineH/2
	for _, l := range lines {
		s.FillText(l.text, math.Vec2{X: debugX + debugPad, Y: y}, surface.TextStyle{
			Face:  surface.FaceRegular,
			Size:  debugFontSz,
			Align: surface.AlignLeft,
			Color: l.color,
		})
		y += debugLineH
	}
}

// formatBytes formats byte count to human readable string.
func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
	)

	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/GB)
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/MB)
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/KB)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
