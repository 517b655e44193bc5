package engine

import (
	"sync/atomic"
	"time"
)

// TimerCategory names a periodic activity of the game session
// Each category holds at most one live timer
type TimerCategory uint8

const (
	TimerPhysics TimerCategory = iota
	TimerScore
	TimerRespawn
	timerCategoryCount
)

var timerCategoryNames = [timerCategoryCount]string{
	TimerPhysics: "physics",
	TimerScore:   "score",
	TimerRespawn: "respawn",
}

func (c TimerCategory) String() string {
	if c < timerCategoryCount {
		return timerCategoryNames[c]
	}
	return "unknown"
}

// Categories lists every timer category in declaration order
func Categories() []TimerCategory {
	return []TimerCategory{TimerPhysics, TimerScore, TimerRespawn}
}

// periodic is one live repeating timer
type periodic struct {
	interval time.Duration
	timer    Timer
	fires    atomic.Uint64
}

// ClockScheduler manages categorized periodic timers on top of a Clock
// Starting a category cancels its previous timer first; cancelling an empty category is a no-op
//
// Every callback runs through exec, which the owner uses to serialize callbacks
// with its other entry points. Start/Cancel must be called from inside exec or
// from code already holding the owner's serialization
type ClockScheduler struct {
	clock Clock
	exec  func(func())
	live  [timerCategoryCount]*periodic
}

// NewClockScheduler creates a scheduler; nil exec runs callbacks directly
func NewClockScheduler(clock Clock, exec func(func())) *ClockScheduler {
	if exec == nil {
		exec = func(fn func()) { fn() }
	}
	return &ClockScheduler{
		clock: clock,
		exec:  exec,
	}
}

// Start arms a repeating timer for category, replacing any live one
// The next period is armed only after fn returns, so callbacks of one category never overlap
func (cs *ClockScheduler) Start(category TimerCategory, interval time.Duration, fn func()) {
	cs.Cancel(category)

	p := &periodic{interval: interval}
	cs.live[category] = p

	var arm func()
	arm = func() {
		p.timer = cs.clock.AfterFunc(interval, func() {
			cs.exec(func() {
				// Cancelled or replaced while this firing was in flight
				if cs.live[category] != p {
					return
				}
				p.fires.Add(1)
				fn()
				if cs.live[category] == p {
					arm()
				}
			})
		})
	}
	arm()
}

// Cancel stops the live timer of category, safe on an empty category
func (cs *ClockScheduler) Cancel(category TimerCategory) {
	p := cs.live[category]
	if p == nil {
		return
	}
	cs.live[category] = nil
	if p.timer != nil {
		p.timer.Stop()
	}
}

// CancelAll stops every live timer
func (cs *ClockScheduler) CancelAll() {
	for _, c := range Categories() {
		cs.Cancel(c)
	}
}

// Running reports whether category has a live timer
func (cs *ClockScheduler) Running(category TimerCategory) bool {
	return cs.live[category] != nil
}

// LiveCount returns the number of categories with a live timer
func (cs *ClockScheduler) LiveCount() int {
	n := 0
	for _, p := range cs.live {
		if p != nil {
			n++
		}
	}
	return n
}

// Fires returns how many times the live timer of category has fired, 0 if none is live
func (cs *ClockScheduler) Fires(category TimerCategory) uint64 {
	if p := cs.live[category]; p != nil {
		return p.fires.Load()
	}
	return 0
}
