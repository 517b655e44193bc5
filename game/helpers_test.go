package game

import (
	"sync"
	"testing"
	"time"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/physics"
	"github.com/lixenwraith/vi-runner/status"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Far apart by default so frames never collide unless a test moves them
var (
	apartPlayer   = physics.Rect{Left: 50, Top: 140, Right: 90, Bottom: 180}
	apartObstacle = physics.Rect{Left: 500, Top: 140, Right: 520, Bottom: 180}
)

// fakeStage records every call the session makes
type fakeStage struct {
	mu sync.Mutex

	player, obstacle physics.Rect
	offset           float64
	boxErr           error
	offsetErr        error

	animating bool
	resets    []ObstacleState
	motions   []uint64
	stops     int
	scoreText string
	gameOvers []GameOverEvent
}

func newFakeStage() *fakeStage {
	return &fakeStage{player: apartPlayer, obstacle: apartObstacle, offset: 20}
}

func (f *fakeStage) PlayerBox() (physics.Rect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.player, f.boxErr
}

func (f *fakeStage) ObstacleBox() (physics.Rect, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.obstacle, f.boxErr
}

func (f *fakeStage) PlayerOffset() (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.offset, f.offsetErr
}

func (f *fakeStage) SetPlayerOffset(offset float64) {
	f.mu.Lock()
	f.offset = offset
	f.mu.Unlock()
}

func (f *fakeStage) SetPlayerAnimating(animating bool) {
	f.mu.Lock()
	f.animating = animating
	f.mu.Unlock()
}

func (f *fakeStage) ResetObstacle(ob ObstacleState) {
	f.mu.Lock()
	f.resets = append(f.resets, ob)
	f.mu.Unlock()
}

func (f *fakeStage) StartObstacleMotion(id uint64, from, to float64, d time.Duration) {
	f.mu.Lock()
	f.motions = append(f.motions, id)
	f.mu.Unlock()
}

func (f *fakeStage) StopMotion() {
	f.mu.Lock()
	f.stops++
	f.mu.Unlock()
}

func (f *fakeStage) SetScoreText(text string) {
	f.mu.Lock()
	f.scoreText = text
	f.mu.Unlock()
}

func (f *fakeStage) NotifyGameOver(ev GameOverEvent) {
	f.mu.Lock()
	f.gameOvers = append(f.gameOvers, ev)
	f.mu.Unlock()
}

func (f *fakeStage) setBoxes(player, obstacle physics.Rect) {
	f.mu.Lock()
	f.player, f.obstacle = player, obstacle
	f.mu.Unlock()
}

func (f *fakeStage) motionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.motions)
}

// harness bundles a session with its controllable collaborators
type harness struct {
	s      *Session
	stage  *fakeStage
	clock  *engine.ManualClock
	frames *engine.FrameQueue
	events *event.EventQueue
	stats  *status.Registry
}

func newHarness(t *testing.T, mutate func(*config.Config)) *harness {
	t.Helper()
	cfg := config.Default()
	cfg.Seed = 1
	if mutate != nil {
		mutate(&cfg)
	}

	h := &harness{
		stage:  newFakeStage(),
		clock:  engine.NewManualClock(epoch),
		frames: engine.NewFrameQueue(),
		events: event.NewEventQueue(),
		stats:  status.NewRegistry(),
	}
	s, err := NewSession(cfg, Deps{
		Clock:  h.clock,
		Frames: h.frames,
		Stage:  h.stage,
		Events: h.events,
		Rand:   NewRand(cfg.Seed),
		Status: h.stats,
	})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	h.s = s
	return h
}

// eventsOf drains the queue and returns events of type t
func (h *harness) eventsOf(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range h.events.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}
