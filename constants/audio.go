package constants

import "time"

// Rotation Cue
const (
	// CueSampleRate is the speaker sample rate in Hz
	CueSampleRate = 44100

	// CueBufferDuration is the speaker buffer length
	CueBufferDuration = 100 * time.Millisecond

	// CueDuration is the length of the blip played on each rotation
	CueDuration = 50 * time.Millisecond

	// CueFrequency is the blip tone in Hz
	CueFrequency = 880

	// MinCueGap is the minimum gap between consecutive cues
	MinCueGap = 250 * time.Millisecond
)
