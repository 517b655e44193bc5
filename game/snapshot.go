package game

import (
	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/engine"
)

// Snapshot is a consistent copy of session state for renderers and tests
type Snapshot struct {
	Phase    Phase
	Player   PlayerState
	Obstacle ObstacleState
	Counter  int
	Score    int
	RunID    string
	Runs     int
}

// Snapshot copies the session state under the lock
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Phase:    s.phase(),
		Player:   s.player,
		Obstacle: s.obstacle,
		Counter:  s.score.Counter(),
		Score:    s.score.Display(),
		RunID:    s.runID,
		Runs:     s.runs,
	}
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase()
}

// TimerRunning reports whether a timer category is live
func (s *Session) TimerRunning(c engine.TimerCategory) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers.Running(c)
}

// LiveTimers returns the number of live timer categories
func (s *Session) LiveTimers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timers.LiveCount()
}

// Config returns the session's configuration
func (s *Session) Config() config.Config {
	return s.cfg
}
