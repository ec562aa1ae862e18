package constant

import "time"

// Speaker configuration
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 44100

	// AudioBufferLen is the speaker buffer length; latency above one tick
	// would smear cues into the next frame
	AudioBufferLen = time.Second / 10
)

// Tone cues
const (
	// WallToneHz is played on a wall bounce
	WallToneHz = 440.0

	// PaddleToneHz is played on a paddle bounce
	PaddleToneHz = 880.0

	// GoalToneLowHz / GoalToneHighHz form the rising two-tone goal cue
	GoalToneLowHz  = 523.25
	GoalToneHighHz = 1046.5

	// BlipDuration is the length of a single bounce blip
	BlipDuration = 50 * time.Millisecond

	// GoalNoteDuration is the length of each goal cue note
	GoalNoteDuration = 120 * time.Millisecond
)
