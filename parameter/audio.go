package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMinCueGap drops repeats of the same cue closer than this
	AudioMinCueGap = 50 * time.Millisecond

	// AudioMaxVoices caps streamers queued in the mixer
	AudioMaxVoices = 16
)

// Cue Envelopes
const (
	RipenCueDuration = 60 * time.Millisecond
	RipenCueAttack   = 5 * time.Millisecond
	RipenCueRelease  = 40 * time.Millisecond

	EatCueNote1Duration = 50 * time.Millisecond
	EatCueNote2Duration = 120 * time.Millisecond
	EatCueAttack        = 3 * time.Millisecond
	EatCueRelease       = 60 * time.Millisecond

	MuckCueDuration = 160 * time.Millisecond
	MuckCueAttack   = 10 * time.Millisecond
	MuckCueRelease  = 120 * time.Millisecond

	JumpCueDuration = 90 * time.Millisecond
	JumpCueAttack   = 30 * time.Millisecond
	JumpCueRelease  = 50 * time.Millisecond

	BellCueDuration        = 600 * time.Millisecond
	BellCueAttack          = 5 * time.Millisecond
	BellCueFundamentalTail = 550 * time.Millisecond
	BellCueOvertoneTail    = 200 * time.Millisecond

	BurstCueDuration = 250 * time.Millisecond
	BurstCueAttack   = 2 * time.Millisecond
	BurstCueRelease  = 200 * time.Millisecond

	ChimeNoteDuration = 140 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 100 * time.Millisecond
)
