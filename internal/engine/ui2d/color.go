package ui2d

import (
	"image/color"

	"github.com/Faultbox/heartfield/internal/engine/surface"
)

// Theme colors. The HUD is white-on-black glass with a red accent.
var (
	ColorWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	ColorBlack = color.NRGBA{A: 255}

	ColorAccent      = color.NRGBA{R: 0xff, G: 0x00, B: 0x40, A: 0xff}
	ColorPanelBg     = surface.RGBA(255, 255, 255, 0.05)
	ColorPanelBorder = surface.RGBA(255, 255, 255, 0.10)
	ColorButtonHover = surface.RGBA(255, 255, 255, 0.10)
	ColorText        = surface.RGBA(255, 255, 255, 0.60)
	ColorTextDim     = surface.RGBA(255, 255, 255, 0.40)
	ColorTextBright  = surface.RGBA(255, 255, 255, 0.90)
	ColorDim         = surface.RGBA(0, 0, 0, 0.60)
)
