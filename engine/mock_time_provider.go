package engine

import (
	"sync"
	"time"
)

// ManualClock provides a controllable time source for testing
// Callbacks fire synchronously from Advance, in deadline order, on the caller's goroutine
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	clock *ManualClock
	at    time.Time
	seq   uint64
	fn    func()
	done  bool
}

// NewManualClock creates a new manual clock with the given start time
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc registers fn to fire once the clock has advanced by d
func (m *ManualClock) AfterFunc(d time.Duration, fn func()) Timer {
	m.mu.Lock()
	defer m.mu.Unlock()

	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{clock: m, at: m.now.Add(d), seq: m.seq, fn: fn}
	m.pending = append(m.pending, t)
	return t
}

// Stop removes the timer if it has not fired yet
func (t *manualTimer) Stop() bool {
	m := t.clock
	m.mu.Lock()
	defer m.mu.Unlock()

	if t.done {
		return false
	}
	t.done = true
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			break
		}
	}
	return true
}

// Advance moves time forward by d, firing every callback whose deadline falls inside the window
// Callbacks scheduled by a firing callback are honored if they land inside the window too
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDueLocked(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

// AdvanceInSteps advances by total in increments of step, calling after each increment
// Mirrors a host loop that pumps frames between timer firings
func (m *ManualClock) AdvanceInSteps(total, step time.Duration, after func()) {
	for elapsed := time.Duration(0); elapsed < total; elapsed += step {
		d := step
		if total-elapsed < step {
			d = total - elapsed
		}
		m.Advance(d)
		if after != nil {
			after()
		}
	}
}

// Pending returns the number of timers waiting to fire
func (m *ManualClock) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// popDueLocked removes and returns the earliest timer due at or before target, ties by registration order
func (m *ManualClock) popDueLocked(target time.Time) *manualTimer {
	best := -1
	for i, t := range m.pending {
		if t.at.After(target) {
			continue
		}
		if best < 0 || t.at.Before(m.pending[best].at) ||
			(t.at.Equal(m.pending[best].at) && t.seq < m.pending[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	t := m.pending[best]
	m.pending = append(m.pending[:best], m.pending[best+1:]...)
	t.done = true
	return t
}
