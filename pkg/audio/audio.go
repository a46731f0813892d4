// pkg/audio/audio.go
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the demo's synthesized cues. All cues are
// generated, no sample assets are shipped. Audio is strictly optional:
// when Initialize fails (no audio device on a headless kiosk) every
// Play call is a silent no-op.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager.
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system. Safe to call more than once.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds. beep has no speaker Close; clearing the
// mixer is enough to silence everything.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.mixer.Clear()
	sm.initialized = false
}

// PlayCollision plays a short descending boom when the ship hits an
// asteroid.
func (sm *SoundManager) PlayCollision() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*300), NewBoomGenerator(sampleRate))
	sm.mixer.Add(streamer)
}

// PlayReset plays a short rising chirp when the scene comes back after
// an explosion.
func (sm *SoundManager) PlayReset() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(time.Millisecond*120), NewChirpGenerator(sampleRate, 440, 880))
	sm.mixer.Add(streamer)
}

// BoomGenerator synthesizes a descending rumble with a decaying
// envelope.
type BoomGenerator struct {
	sr  beep.SampleRate
	pos int
}

// NewBoomGenerator creates a boom sound generator.
func NewBoomGenerator(sr beep.SampleRate) *BoomGenerator {
	return &BoomGenerator{sr: sr}
}

func (g *BoomGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Frequency falls from 180Hz toward 60Hz over the cue.
		freq := 180.0 - 400.0*t
		if freq < 60 {
			freq = 60
		}

		sample := 0.0
		sample += 0.4 * math.Sin(2*math.Pi*freq*t)
		sample += 0.2 * math.Sin(2*math.Pi*freq*0.5*t)

		envelope := math.Exp(-6 * t)
		sample *= envelope * 0.5

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BoomGenerator) Err() error {
	return nil
}

// ChirpGenerator sweeps a sine from one frequency to another.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
}

// NewChirpGenerator creates a frequency-sweep generator.
func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Linear sweep over roughly the cue length.
		progress := math.Min(t/0.12, 1.0)
		freq := g.from + (g.to-g.from)*progress

		sample := 0.3 * math.Sin(2*math.Pi*freq*t)

		// Short attack so the chirp doesn't click.
		envelope := math.Min(t/0.01, 1.0)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
