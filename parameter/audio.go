package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Jump Sound: short upward chirp
const (
	JumpSoundDuration = 90 * time.Millisecond
	JumpSoundAttack   = 5 * time.Millisecond
	JumpSoundRelease  = 40 * time.Millisecond
	JumpSoundFreqLow  = 440.0
	JumpSoundFreqHigh = 880.0
)

// Land Sound: soft thud
const (
	LandSoundDuration = 60 * time.Millisecond
	LandSoundAttack   = 2 * time.Millisecond
	LandSoundRelease  = 45 * time.Millisecond
	LandSoundFreq     = 110.0
)

// Crash Sound: noise burst
const (
	CrashSoundDuration = 400 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 300 * time.Millisecond
)

// Milestone Sound: two-note chime
const (
	MilestoneNote1Duration = 80 * time.Millisecond
	MilestoneNote2Duration = 160 * time.Millisecond
	MilestoneSoundAttack   = 4 * time.Millisecond
	MilestoneNote1Release  = 40 * time.Millisecond
	MilestoneNote2Release  = 120 * time.Millisecond
)
