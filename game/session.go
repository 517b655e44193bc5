package game

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/engine/fsm"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/status"
)

// Deps are the collaborators a Session is built from
type Deps struct {
	Clock  engine.Clock
	Frames FrameRequester
	Stage  Stage
	Events *event.EventQueue
	Rand   Rand
	Status *status.Registry
}

// Session owns all run state: phase, player, obstacle, score and timers
//
// Concurrency: one mutex guards everything. Every entry point (input, timer
// callbacks, frame tick, traversal completion) holds it for its whole body,
// so no two mutations interleave. Stage calls happen under the lock
type Session struct {
	mu sync.Mutex

	cfg    config.Config
	clock  engine.Clock
	frames FrameRequester
	stage  Stage
	events *event.EventQueue

	timers     *engine.ClockScheduler
	machine    *fsm.Machine[*Session]
	jumps      JumpController
	integrator Integrator
	obstacles  *ObstacleScheduler
	score      *ScoreAccumulator

	player   PlayerState
	obstacle ObstacleState
	runID    string
	runs     int

	// frameGen invalidates frame callbacks queued by an earlier run
	frameGen uint64

	// Cached metric pointers
	statPhysicsTicks *atomic.Int64
	statFrames       *atomic.Int64
	statSkipped      *atomic.Int64
	statSpawns       *atomic.Int64
	statJumps        *atomic.Int64
	statRuns         *atomic.Int64
	statBestScore    *atomic.Int64
	statMaxHeight    *status.AtomicFloat
}

// NewSession validates cfg and builds an Idle session
func NewSession(cfg config.Config, deps Deps) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if deps.Clock == nil || deps.Frames == nil || deps.Stage == nil {
		return nil, fmt.Errorf("session requires clock, frames and stage")
	}
	if deps.Events == nil {
		deps.Events = event.NewEventQueue()
	}
	if deps.Rand == nil {
		deps.Rand = NewRand(cfg.Seed)
	}
	if deps.Status == nil {
		deps.Status = status.NewRegistry()
	}

	s := &Session{
		cfg:    cfg,
		clock:  deps.Clock,
		frames: deps.Frames,
		stage:  deps.Stage,
		events: deps.Events,
		jumps: JumpController{
			Velocity: cfg.Physics.JumpVelocity,
			MaxJumps: cfg.Physics.MaxJumps,
		},
		integrator: Integrator{
			Gravity: cfg.Physics.Gravity,
			Ground:  cfg.Physics.GroundLevel,
		},
		obstacles: NewObstacleScheduler(cfg.Obstacle, cfg.Field.Width, deps.Rand),
		score:     NewScoreAccumulator(cfg.Score.Divisor),
		player:    PlayerState{Position: cfg.Physics.GroundLevel},

		statPhysicsTicks: deps.Status.Ints.Get("physics.ticks"),
		statFrames:       deps.Status.Ints.Get("frame.count"),
		statSkipped:      deps.Status.Ints.Get("frame.skipped"),
		statSpawns:       deps.Status.Ints.Get("obstacle.spawns"),
		statJumps:        deps.Status.Ints.Get("player.jumps"),
		statRuns:         deps.Status.Ints.Get("session.runs"),
		statBestScore:    deps.Status.Ints.Get("session.best"),
		statMaxHeight:    deps.Status.Floats.Get("player.max_height"),
	}
	s.timers = engine.NewClockScheduler(deps.Clock, s.locked)

	if err := s.buildMachine(); err != nil {
		return nil, fmt.Errorf("build phase machine: %w", err)
	}
	return s, nil
}

// NewRand returns a PCG source; seed 0 picks a time-based seed
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// buildMachine wires Idle -> Running -> GameOver -> Running
func (s *Session) buildMachine() error {
	m := fsm.NewMachine[*Session]()
	m.RegisterAction("enterRunning", func(s *Session, _ any) { s.enterRunning() })
	m.RegisterAction("enterGameOver", func(s *Session, _ any) { s.enterGameOver() })

	m.AddState(PhaseIdle, PhaseName(PhaseIdle))
	m.AddState(PhaseRunning, PhaseName(PhaseRunning))
	m.AddState(PhaseGameOver, PhaseName(PhaseGameOver))

	m.AddTransition(PhaseIdle, fsm.Transition[*Session]{TargetID: PhaseRunning, Event: event.EventStartRequest})
	m.AddTransition(PhaseGameOver, fsm.Transition[*Session]{TargetID: PhaseRunning, Event: event.EventStartRequest})
	m.AddTransition(PhaseRunning, fsm.Transition[*Session]{TargetID: PhaseGameOver, Event: event.EventCollision})

	if err := m.BindEnter(PhaseRunning, "enterRunning", nil); err != nil {
		return err
	}
	if err := m.BindEnter(PhaseGameOver, "enterGameOver", nil); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return err
	}

	s.machine = m
	return m.Init(s, PhaseIdle)
}

// locked serializes fn with every other entry point
func (s *Session) locked(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn()
}

func (s *Session) phase() Phase {
	return s.machine.Current()
}

func (s *Session) push(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Timestamp: s.clock.Now()})
}

// Start begins a run from Idle or GameOver; returns false while already Running
func (s *Session) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.HandleEvent(s, event.EventStartRequest)
}

// Collision runs the terminal transition; no-op unless Running
func (s *Session) Collision() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.collide()
}

// Close cancels every timer and orphans queued frames without changing phase
// Used by hosts on shutdown
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers.CancelAll()
	s.frameGen++
	s.stage.StopMotion()
}

func (s *Session) collide() bool {
	return s.machine.HandleEvent(s, event.EventCollision)
}

// enterRunning resets run state and arms every loop, called by the phase machine with s.mu held
func (s *Session) enterRunning() {
	ground := s.cfg.Physics.GroundLevel

	s.runs++
	s.runID = uuid.NewString()
	s.frameGen++
	s.score.Reset()

	s.player = PlayerState{Position: ground}
	s.stage.SetPlayerOffset(ground)
	s.stage.SetPlayerAnimating(false)

	s.obstacle = s.obstacles.Initial()
	s.stage.ResetObstacle(s.obstacle)
	s.stage.SetScoreText(FormatScore(0))

	s.spawnObstacle()

	s.timers.Start(engine.TimerScore, s.cfg.Score.Tick, s.scoreTick)
	if s.cfg.Obstacle.Policy == config.PolicyInterval {
		s.timers.Start(engine.TimerRespawn, s.cfg.Obstacle.RespawnInterval, s.respawnTick)
	}
	if s.cfg.Physics.PinOnStart {
		s.timers.Start(engine.TimerPhysics, s.cfg.Physics.Tick, s.physicsTick)
	}
	s.scheduleFrame()

	s.statRuns.Add(1)
	s.push(event.EventGameStart, &event.GameStartPayload{RunID: s.runID})
	log.Printf("run %s started (run #%d, variant %s, policy %s)", s.runID, s.runs, s.cfg.Variant, s.cfg.Obstacle.Policy)
}

// enterGameOver halts every loop and surfaces the final score, called with s.mu held
func (s *Session) enterGameOver() {
	s.timers.CancelAll()
	s.stage.StopMotion()
	s.stage.SetPlayerAnimating(false)
	s.obstacle.Active = false

	ev := GameOverEvent{
		RunID:      s.runID,
		FinalScore: s.score.Display(),
		Ticks:      s.score.Counter(),
	}
	if int64(ev.FinalScore) > s.statBestScore.Load() {
		s.statBestScore.Store(int64(ev.FinalScore))
	}

	s.stage.NotifyGameOver(ev)
	s.push(event.EventGameOver, &event.GameOverPayload{
		RunID:      ev.RunID,
		FinalScore: ev.FinalScore,
		Ticks:      ev.Ticks,
	})
	log.Printf("run %s over: score %d after %d ticks", ev.RunID, ev.FinalScore, ev.Ticks)
}
