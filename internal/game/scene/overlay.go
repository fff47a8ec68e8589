package scene

import (
	"time"

	"github.com/Faultbox/heartfield/pkg/math"
)

// OverlayDuration is how long a revealed message stays on screen.
const OverlayDuration = 3 * time.Second

// Overlay is the message of the most recently popped heart. The anchor is
// frozen at pop time; Screen follows the camera.
type Overlay struct {
	ID     uint64
	Text   string
	Anchor math.Vec3
	Screen math.Vec2
	Shown  time.Time
}

// OverlayView is the read-only overlay state handed to the UI.
type OverlayView struct {
	ID     uint64
	Text   string
	Screen math.Vec2
	Age    time.Duration
}
