// Package audio plays the skyfall sound cues through a beep mixer.
// Every operation is a no-op until Initialize succeeds, so the games run
// silently on machines without an audio device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager manages all game audio
type SoundManager struct {
	mu          sync.Mutex
	rain        *beep.Ctrl
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Initialized reports whether the device is open.
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops all sounds and closes the audio device.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.rain != nil {
		speaker.Lock()
		sm.rain.Paused = true
		speaker.Unlock()
		sm.rain = nil
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayCatch plays the short blip of a caught drop.
func (sm *SoundManager) PlayCatch() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*90), NewBlipGenerator(sampleRate, 880, 1320)))
}

// PlayHit plays a low buzz when an icicle hits the player.
func (sm *SoundManager) PlayHit() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*220), NewBuzzGenerator(sampleRate, 110)))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartRain starts the looping rain bed. Calling it while the loop plays
// does nothing.
func (sm *SoundManager) StartRain() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.rain != nil && !sm.rain.Paused {
		return
	}

	ctrl := &beep.Ctrl{Streamer: NewRainGenerator(sampleRate, 1)}
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
	sm.rain = ctrl
}

// StopRain stops the rain bed.
func (sm *SoundManager) StopRain() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.rain == nil {
		return
	}
	speaker.Lock()
	sm.rain.Paused = true
	speaker.Unlock()
	sm.rain = nil
}

// SetRainPaused pauses or resumes the rain bed without dropping it.
func (sm *SoundManager) SetRainPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.rain == nil {
		return
	}
	speaker.Lock()
	sm.rain.Paused = paused
	speaker.Unlock()
}
