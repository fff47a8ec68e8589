package ui

import (
	stdmath "math"
	"time"
)

// progress maps elapsed time into [0, 1] over d after an initial delay.
func progress(elapsed, delay, d time.Duration) float64 {
	t := float64(elapsed-delay) / float64(d)
	return stdmath.Max(0, stdmath.Min(1, t))
}

// easeBackOut overshoots slightly before settling at 1.
func easeBackOut(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	u := t - 1
	return 1 + c3*u*u*u + c1*u*u
}

// easeOut decelerates toward 1.
func easeOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// lerp interpolates linearly between a and b.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// pulse oscillates 1 -> peak -> 1 once per period.
func pulse(elapsed, period time.Duration, peak float64) float64 {
	phase := float64(elapsed%period) / float64(period)
	return 1 + (peak-1)*(1-stdmath.Cos(2*stdmath.Pi*phase))/2
}
