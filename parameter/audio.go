package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Bump Sound
const (
	BumpSoundFrequency = 110.0
	BumpSoundDuration  = 60 * time.Millisecond
	BumpSoundAttack    = 5 * time.Millisecond
	BumpSoundRelease   = 40 * time.Millisecond
	BumpSoundVolume    = 0.4

	// MinSoundGap between consecutive bumps
	MinSoundGap = 150 * time.Millisecond
)
