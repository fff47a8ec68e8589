// Package audio synthesizes and plays the pop feedback sounds.
package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"go.uber.org/zap"

	"github.com/Faultbox/heartfield/internal/logger"
)

// DefaultSampleRate is the default sample rate for audio playback.
const DefaultSampleRate = beep.SampleRate(44100)

// Manager plays pop sounds. The speaker is opened lazily on the first
// user gesture, and sounds are only produced while enabled.
type Manager struct {
	mu sync.RWMutex

	initialized bool
	initFailed  bool
	sampleRate  beep.SampleRate
	enabled     bool
	sfxVolLevel float64

	// SFX mixer for concurrent sound effects
	sfxMixer *beep.Mixer

	openSpeaker func(beep.SampleRate, int) error
	playSpeaker func(...beep.Streamer)
}

// New creates a new audio manager.
func New(enabled bool, volume float64) *Manager {
	return &Manager{
		sampleRate:  DefaultSampleRate,
		enabled:     enabled,
		sfxVolLevel: clamp(volume, 0, 1),
		sfxMixer:    &beep.Mixer{},
		openSpeaker: speaker.Init,
		playSpeaker: speaker.Play,
	}
}

// EnsureInit opens the audio device once. A failed open is remembered and
// not retried, so a machine without audio keeps running silently.
func (m *Manager) EnsureInit() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || m.initFailed {
		return nil
	}

	if err := m.openSpeaker(m.sampleRate, m.sampleRate.N(time.Second/30)); err != nil {
		m.initFailed = true
		return fmt.Errorf("init speaker: %w", err)
	}
	m.playSpeaker(m.sfxMixer)
	m.initialized = true

	logger.Named("audio").Debug("speaker ready", zap.Int("sampleRate", int(m.sampleRate)))
	return nil
}

// Close stops all playback.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		speaker.Clear()
	}
	m.initialized = false
}

// IsInitialized returns whether the audio device is open.
func (m *Manager) IsInitialized() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.initialized
}

// Enabled reports whether pop sounds are on.
func (m *Manager) Enabled() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.enabled
}

// Toggle flips the enabled state and returns the new value.
func (m *Manager) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.enabled = !m.enabled
	return m.enabled
}

// GetSFXVolume returns the SFX volume.
func (m *Manager) GetSFXVolume() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sfxVolLevel
}

// PlayPop plays the twinkle and chime layered together. It is a no-op
// while disabled or before the device is open.
func (m *Manager) PlayPop() {
	m.mu.RLock()
	ready := m.initialized && m.enabled
	vol := m.sfxVolLevel
	sr := m.sampleRate
	m.mu.RUnlock()

	if !ready {
		return
	}

	start := TwinkleMinFreq + rand.Float64()*(TwinkleMaxFreq-TwinkleMinFreq)
	speaker.Lock()
	m.sfxMixer.Add(withVolume(Pop(sr, start), vol))
	speaker.Unlock()
}

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   volumeExponent(vol),
		Silent:   vol <= 0,
	}
}

// volumeExponent converts a 0-1 linear gain to the base-2 exponent used by
// effects.Volume: vol=1 -> 0, vol=0.5 -> -1, vol=0.25 -> -2.
func volumeExponent(vol float64) float64 {
	if vol <= 0 {
		return -100
	}
	return math.Log2(vol)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
