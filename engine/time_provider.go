package engine

import (
	"time"

	"github.com/lixenwraith/vi-runner/core"
)

// Timer is a cancellable pending callback
type Timer interface {
	// Stop cancels the callback, returns false if it already fired or was stopped
	Stop() bool
}

// Clock is the time source and one-shot callback scheduler used by the game core
// RealClock drives live sessions; ManualClock drives tests
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// RealClock provides wall-clock time with monotonic readings
type RealClock struct{}

// NewRealClock creates a clock backed by the runtime timer heap
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current time with monotonic clock reading
func (RealClock) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules fn on a runtime goroutine with crash recovery
func (RealClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, core.Guard(fn))
}
