package window

import "testing"

func TestBoundsChange(t *testing.T) {
	tests := []struct {
		name             string
		canvasW, canvasH int
		drawW, drawH     int
		wantW, wantH     int
		wantChanged      bool
	}{
		{"unchanged", 1280, 720, 1280, 720, 1280, 720, false},
		{"fullscreen", 1280, 720, 1920, 1080, 1920, 1080, true},
		{"shrunk", 1920, 1080, 800, 600, 800, 600, true},
		{"hidpi", 1280, 720, 2560, 1440, 2560, 1440, true},
		{"height only", 1280, 720, 1280, 800, 1280, 800, true},
		{"minimized", 1280, 720, 0, 0, 1280, 720, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, changed := boundsChange(tt.canvasW, tt.canvasH, tt.drawW, tt.drawH)
			if w != tt.wantW || h != tt.wantH || changed != tt.wantChanged {
				t.Errorf("boundsChange = (%d, %d, %v), want (%d, %d, %v)",
					w, h, changed, tt.wantW, tt.wantH, tt.wantChanged)
			}
		})
	}
}
