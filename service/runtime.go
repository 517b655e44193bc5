package service

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-runner/audio"
	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/game"
	"github.com/lixenwraith/vi-runner/stage"
	"github.com/lixenwraith/vi-runner/status"
)

// Runtime is one fully wired game: session, stage, loops and services
// Frontends read its fields and drive Frames and Router
type Runtime struct {
	Config  config.Config
	Clock   engine.Clock
	Session *game.Session
	Sim     *stage.Sim
	Frames  *engine.FrameQueue
	Events  *event.EventQueue
	Router  *event.Router
	Status  *status.Registry
	Sound   *audio.SoundManager

	hub *Hub
}

// Options overrides runtime collaborators, zero values pick the production ones
type Options struct {
	Clock       engine.Clock
	AudioOutput audio.Output
}

// NewRuntime validates cfg and wires every component; nothing runs until Start
func NewRuntime(cfg config.Config, opts Options) (*Runtime, error) {
	if opts.Clock == nil {
		opts.Clock = engine.NewRealClock()
	}

	rt := &Runtime{
		Config: cfg,
		Clock:  opts.Clock,
		Frames: engine.NewFrameQueue(),
		Events: event.NewEventQueue(),
		Status: status.NewRegistry(),
		hub:    NewHub(),
	}
	rt.Router = event.NewRouter(rt.Events)
	rt.Sim = stage.NewSim(rt.Clock, cfg.Field, cfg.Physics.GroundLevel)

	session, err := game.NewSession(cfg, game.Deps{
		Clock:  rt.Clock,
		Frames: rt.Frames,
		Stage:  rt.Sim,
		Events: rt.Events,
		Status: rt.Status,
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	rt.Session = session
	rt.Sim.SetCompletionHandler(session.OnObstacleTraversalComplete)

	if opts.AudioOutput != nil {
		rt.Sound = audio.NewSoundManagerWithOutput(cfg.Audio, opts.AudioOutput)
	} else {
		rt.Sound = audio.NewSoundManager(cfg.Audio)
	}

	for _, svc := range []Service{
		&audioService{sound: rt.Sound, router: rt.Router, status: rt.Status},
		&sessionService{session: rt.Session},
	} {
		if err := rt.hub.Register(svc); err != nil {
			return nil, err
		}
	}
	return rt, nil
}

// Start initializes and starts every service
func (rt *Runtime) Start() error {
	if err := rt.hub.InitAll(); err != nil {
		return err
	}
	return rt.hub.StartAll()
}

// Stop halts the session first, then audio
func (rt *Runtime) Stop() {
	rt.hub.StopAll()
}

// audioService owns the sound manager; a missing device degrades to silence
type audioService struct {
	sound  *audio.SoundManager
	router *event.Router
	status *status.Registry
}

func (s *audioService) Name() string           { return "audio" }
func (s *audioService) Dependencies() []string { return nil }

func (s *audioService) Init() error {
	ready := s.status.Bools.Get("audio.ready")
	if err := s.sound.Initialize(); err != nil {
		log.Printf("audio unavailable, continuing silent: %v", err)
		ready.Store(false)
		return nil
	}
	ready.Store(true)
	return nil
}

func (s *audioService) Start() error {
	s.router.Register(s.sound)
	return nil
}

func (s *audioService) Stop() error {
	s.sound.Cleanup()
	return nil
}

// sessionService ties session shutdown into the hub order
type sessionService struct {
	session *game.Session
}

func (s *sessionService) Name() string           { return "session" }
func (s *sessionService) Dependencies() []string { return []string{"audio"} }
func (s *sessionService) Init() error            { return nil }
func (s *sessionService) Start() error           { return nil }

func (s *sessionService) Stop() error {
	s.session.Close()
	return nil
}
