package parameter

import "time"

// Audio cue synthesis
const (
	// AudioSampleRate is the synthesis and playback rate
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMasterVolume is the default master volume (0..1)
	AudioMasterVolume = 0.5

	FireCueDuration = 60 * time.Millisecond
	FireCueAttack   = 5 * time.Millisecond
	FireCueRelease  = 40 * time.Millisecond

	HitCueDuration = 120 * time.Millisecond
	HitCueAttack   = 2 * time.Millisecond
	HitCueRelease  = 90 * time.Millisecond

	BlockedCueDuration = 80 * time.Millisecond

	DestroyedCueNoteDuration = 90 * time.Millisecond
	DestroyedCueRelease      = 60 * time.Millisecond
)
