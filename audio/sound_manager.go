// Package audio plays the collision cue through the system speaker
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fixcast/parameter"
)

// SoundManager owns the speaker and a mixer that one-shot cues are added to
// All Play calls are safe before Initialize and after Cleanup; they do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	volume      float64
	initialized bool

	lastBump time.Time
	now      func() time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		rate:   beep.SampleRate(parameter.AudioSampleRate),
		volume: parameter.BumpSoundVolume,
		now:    time.Now,
	}
}

// Initialize sets up the speaker; a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// PlayBump queues the wall-bump cue
// Calls closer than MinSoundGap to the previous bump are dropped
// Returns whether the cue was queued
func (sm *SoundManager) PlayBump() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return false
	}

	now := sm.now()
	if !sm.lastBump.IsZero() && now.Sub(sm.lastBump) < parameter.MinSoundGap {
		return false
	}
	sm.lastBump = now

	speaker.Lock()
	sm.mixer.Add(CreateBumpSound(sm.rate, sm.volume))
	speaker.Unlock()
	return true
}
