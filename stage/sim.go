// Package stage holds the layout model the game core measures and animates
// Frontends draw from Snapshot; the core drives it through game.Stage
package stage

import (
	"errors"
	"sync"
	"time"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/game"
	"github.com/lixenwraith/vi-runner/physics"
)

// ErrNotAttached is returned by measurement reads while no layout is available
var ErrNotAttached = errors.New("stage not attached")

// Sim is a headless stage: geometry in field units, obstacle motion derived from the clock
type Sim struct {
	mu sync.Mutex

	clock  engine.Clock
	field  config.FieldConfig
	ground float64

	attached  bool
	offset    float64
	animating bool

	obstacle  game.ObstacleState
	obstacleX float64
	motion    *motion

	scoreText  string
	gameOver   *game.GameOverEvent
	onComplete func(id uint64)
}

// motion is one linear traversal of the obstacle's left edge
type motion struct {
	id       uint64
	from, to float64
	start    time.Time
	duration time.Duration
	timer    engine.Timer
}

// position returns the left edge at now, clamped to the traversal endpoints
func (m *motion) position(now time.Time) float64 {
	if m.duration <= 0 {
		return m.to
	}
	frac := float64(now.Sub(m.start)) / float64(m.duration)
	frac = max(0, min(1, frac))
	return m.from + (m.to-m.from)*frac
}

// NewSim creates an attached stage with the player on the ground
func NewSim(clock engine.Clock, field config.FieldConfig, ground float64) *Sim {
	return &Sim{
		clock:     clock,
		field:     field,
		ground:    ground,
		attached:  true,
		offset:    ground,
		obstacleX: field.Width,
	}
}

// SetCompletionHandler registers the receiver of traversal completions, typically
// Session.OnObstacleTraversalComplete. The handler is invoked without the stage lock held
func (s *Sim) SetCompletionHandler(fn func(id uint64)) {
	s.mu.Lock()
	s.onComplete = fn
	s.mu.Unlock()
}

// SetAttached toggles layout availability; detached stages fail every measurement
func (s *Sim) SetAttached(attached bool) {
	s.mu.Lock()
	s.attached = attached
	s.mu.Unlock()
}

func (s *Sim) PlayerBox() (physics.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return physics.Rect{}, ErrNotAttached
	}
	return s.playerBoxLocked(), nil
}

func (s *Sim) ObstacleBox() (physics.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return physics.Rect{}, ErrNotAttached
	}
	return s.obstacleBoxLocked(s.clock.Now()), nil
}

func (s *Sim) PlayerOffset() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.attached {
		return 0, ErrNotAttached
	}
	return s.offset, nil
}

func (s *Sim) SetPlayerOffset(offset float64) {
	s.mu.Lock()
	s.offset = offset
	s.mu.Unlock()
}

func (s *Sim) SetPlayerAnimating(animating bool) {
	s.mu.Lock()
	s.animating = animating
	s.mu.Unlock()
}

// ResetObstacle places the obstacle at rest, dropping any motion in flight
func (s *Sim) ResetObstacle(ob game.ObstacleState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(false)
	s.obstacle = ob
	s.obstacleX = ob.X
	s.gameOver = nil
}

// StartObstacleMotion replaces any running traversal and reports id to the handler on arrival
func (s *Sim) StartObstacleMotion(id uint64, from, to float64, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(false)

	m := &motion{
		id:       id,
		from:     from,
		to:       to,
		start:    s.clock.Now(),
		duration: d,
	}
	s.motion = m
	s.obstacleX = from
	m.timer = s.clock.AfterFunc(d, func() { s.complete(m) })
}

// StopMotion freezes the obstacle where it currently is
func (s *Sim) StopMotion() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked(true)
}

func (s *Sim) SetScoreText(text string) {
	s.mu.Lock()
	s.scoreText = text
	s.mu.Unlock()
}

func (s *Sim) NotifyGameOver(ev game.GameOverEvent) {
	s.mu.Lock()
	s.gameOver = &ev
	s.mu.Unlock()
}

// complete finishes m if it is still the live traversal, then notifies outside the lock
func (s *Sim) complete(m *motion) {
	s.mu.Lock()
	if s.motion != m {
		s.mu.Unlock()
		return
	}
	s.motion = nil
	s.obstacleX = m.to
	handler := s.onComplete
	s.mu.Unlock()

	if handler != nil {
		handler(m.id)
	}
}

// stopLocked cancels the live traversal; freeze keeps the current position instead of the start
func (s *Sim) stopLocked(freeze bool) {
	m := s.motion
	if m == nil {
		return
	}
	if freeze {
		s.obstacleX = m.position(s.clock.Now())
	}
	s.motion = nil
	m.timer.Stop()
}

func (s *Sim) playerBoxLocked() physics.Rect {
	bottom := s.field.Height - s.offset
	return physics.RectFromBottom(s.field.PlayerLeft, bottom, s.field.PlayerWidth, s.field.PlayerHeight)
}

func (s *Sim) obstacleBoxLocked(now time.Time) physics.Rect {
	x := s.obstacleX
	if s.motion != nil {
		x = s.motion.position(now)
	}
	bottom := s.field.Height - s.ground
	return physics.RectFromBottom(x, bottom, s.obstacle.Width, s.obstacle.Height)
}
