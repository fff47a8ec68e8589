package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
)

// Twinkle: a sine sweeping up to TwinkleSweepTo, fading out.
const (
	TwinkleMinFreq  = 880.0
	TwinkleMaxFreq  = 1320.0
	TwinkleSweepTo  = 1760.0
	twinkleSweep    = 100 * time.Millisecond
	twinkleDuration = 200 * time.Millisecond
	twinkleGain     = 0.1
	twinkleGainEnd  = 0.01
)

// Chime: three staggered triangle notes of an A major triad.
const (
	chimeStagger  = 50 * time.Millisecond
	chimeDuration = 500 * time.Millisecond
	chimeGain     = 0.05
	chimeGainEnd  = 0.001
)

// ChimeNotes are the chime frequencies in play order.
var ChimeNotes = [3]float64{440, 554.37, 659.25}

// expRamp moves exponentially from a to b over d seconds and holds b after.
func expRamp(a, b, t, d float64) float64 {
	if t >= d {
		return b
	}
	if t <= 0 {
		return a
	}
	return a * math.Pow(b/a, t/d)
}

// Twinkle returns a mono sine tone starting at startFreq. Its frequency
// sweeps to TwinkleSweepTo and its gain decays from 0.1 to 0.01.
func Twinkle(sr beep.SampleRate, startFreq float64) beep.Streamer {
	total := sr.N(twinkleDuration)
	sweep := twinkleSweep.Seconds()
	dur := twinkleDuration.Seconds()
	phase := 0.0
	i := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && i < total {
			t := float64(i) / float64(sr)
			freq := expRamp(startFreq, TwinkleSweepTo, t, sweep)
			v := math.Sin(2*math.Pi*phase) * expRamp(twinkleGain, twinkleGainEnd, t, dur)
			samples[n] = [2]float64{v, v}
			phase += freq / float64(sr)
			phase -= math.Floor(phase)
			n++
			i++
		}
		return n, true
	})
}

// Chime returns the three triangle notes, each delayed by one stagger step.
func Chime(sr beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, len(ChimeNotes))
	for k, freq := range ChimeNotes {
		delay := sr.N(time.Duration(k) * chimeStagger)
		notes[k] = beep.Seq(beep.Silence(delay), triangle(sr, freq))
	}
	return beep.Take(chimeLength(sr), beep.Mix(notes...))
}

// Pop layers the twinkle over the chime.
func Pop(sr beep.SampleRate, twinkleFreq float64) beep.Streamer {
	n := max(chimeLength(sr), sr.N(twinkleDuration))
	return beep.Take(n, beep.Mix(Twinkle(sr, twinkleFreq), Chime(sr)))
}

func chimeLength(sr beep.SampleRate) int {
	last := time.Duration(len(ChimeNotes)-1) * chimeStagger
	return sr.N(last) + sr.N(chimeDuration)
}

func triangle(sr beep.SampleRate, freq float64) beep.Streamer {
	total := sr.N(chimeDuration)
	dur := chimeDuration.Seconds()
	i := 0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= total {
			return 0, false
		}
		n := 0
		for n < len(samples) && i < total {
			t := float64(i) / float64(sr)
			p := t*freq - math.Floor(t*freq)
			v := (4*math.Abs(p-0.5) - 1) * expRamp(chimeGain, chimeGainEnd, t, dur)
			samples[n] = [2]float64{v, v}
			n++
			i++
		}
		return n, true
	})
}
