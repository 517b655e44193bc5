package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundJump      SoundType = iota // Jump impulse
	SoundLand                       // Touchdown after a flight
	SoundCrash                      // Collision, end of run
	SoundMilestone                  // Every score milestone
	soundTypeCount
)

// soundNames are the keys used for per-effect volumes in config
var soundNames = [soundTypeCount]string{
	SoundJump:      "jump",
	SoundLand:      "land",
	SoundCrash:     "crash",
	SoundMilestone: "milestone",
}

func (st SoundType) String() string {
	if st >= 0 && st < soundTypeCount {
		return soundNames[st]
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound type")
)
