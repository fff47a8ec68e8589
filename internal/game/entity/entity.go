// Package entity implements the scene's particles and the store that owns
// them: poppable hearts, background stars and short-lived burst sparks.
package entity

import (
	"image/color"

	"github.com/Faultbox/heartfield/internal/engine/physics"
	"github.com/Faultbox/heartfield/pkg/math"
)

// HeartCount is the number of hearts in every scene generation.
const HeartCount = 10

// BurstSize is the number of sparks spawned when a heart pops.
const BurstSize = 15

// DefaultStarCount is the number of background stars.
const DefaultStarCount = 300

// Messages holds the text revealed by each heart, by heart index.
var Messages = [HeartCount]string{
	"Forever mine",
	"Only you",
	"Love you more",
	"My world",
	"Stay close",
	"Heart's desire",
	"Infinite love",
	"You are magic",
	"Soulmate",
	"Always & Forever",
}

// Palette is assigned to hearts cyclically by index.
var Palette = []color.RGBA{
	{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF}, // red
	{R: 0xFF, G: 0x14, B: 0x93, A: 0xFF}, // deep pink
	{R: 0xFF, G: 0x45, B: 0x00, A: 0xFF}, // orange red
	{R: 0xDC, G: 0x14, B: 0x3C, A: 0xFF}, // crimson
}

// Heart is a poppable particle carrying one message.
type Heart struct {
	physics.Body

	Index   int
	Size    float64
	Color   color.RGBA
	Opacity float64
	Message string
	Popped  bool
}

// Star is a fixed background point.
type Star struct {
	Pos     math.Vec3
	Size    float64
	Opacity float64
}

// Burst is one spark of a pop.
type Burst struct {
	physics.Body

	Size  float64
	Color color.RGBA
	Life  float64 // 1 at spawn, removed once <= 0
}

// Counters is the UI-facing summary of heart state.
type Counters struct {
	Remaining int
	AllPopped bool
}
