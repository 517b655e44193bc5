package game

import (
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
)

// RequestJump is the single input entry point for both jump and restart
// Idle/GameOver: starts a run. Running: jumps if the per-flight budget allows
func (s *Session) RequestJump() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase() != PhaseRunning {
		s.machine.HandleEvent(s, event.EventStartRequest)
		return
	}

	if !s.jumps.Apply(&s.player) {
		return
	}
	s.stage.SetPlayerAnimating(true)

	// Idempotent start: a second jump mid-flight reuses the live integrator
	if !s.timers.Running(engine.TimerPhysics) {
		s.timers.Start(engine.TimerPhysics, s.cfg.Physics.Tick, s.physicsTick)
	}

	s.statJumps.Add(1)
	s.push(event.EventJump, &event.JumpPayload{Count: s.player.JumpCount})
}

// physicsTick integrates one step and stops the integrator on landing, called with s.mu held
func (s *Session) physicsTick() {
	if s.phase() != PhaseRunning {
		s.timers.Cancel(engine.TimerPhysics)
		return
	}
	s.statPhysicsTicks.Add(1)

	wasAirborne := s.player.Airborne
	landed := s.integrator.Step(&s.player)
	s.stage.SetPlayerOffset(s.player.Position)
	s.statMaxHeight.Max(s.player.Position - s.cfg.Physics.GroundLevel)

	if !landed {
		return
	}
	s.timers.Cancel(engine.TimerPhysics)
	s.stage.SetPlayerAnimating(false)
	if wasAirborne {
		s.push(event.EventLand, nil)
	}
}
