package game

import (
	"log"

	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/physics"
)

// scheduleFrame queues the next frame tick for the current run, called with s.mu held
func (s *Session) scheduleFrame() {
	gen := s.frameGen
	s.frames.RequestFrame(func() { s.frameTick(gen) })
}

// frameTick runs the per-frame checks and re-queues itself only while Running
// Game over stops the loop by not re-queueing
func (s *Session) frameTick(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.frameGen || s.phase() != PhaseRunning {
		return
	}
	s.statFrames.Add(1)

	if s.pinToGround() {
		s.checkCollision()
	}

	if s.phase() == PhaseRunning {
		s.scheduleFrame()
	}
}

// pinToGround writes ground level back if the measured offset sank below it
// Returns false when the measurement is unavailable and the frame must be skipped
func (s *Session) pinToGround() bool {
	offset, err := s.stage.PlayerOffset()
	if err != nil {
		s.skipFrame("player offset", err)
		return false
	}

	ground := s.cfg.Physics.GroundLevel
	if offset < ground {
		s.stage.SetPlayerOffset(ground)
		if s.player.Position < ground {
			s.player.Position = ground
		}
	}
	return true
}

// checkCollision measures both boxes and fires the terminal transition on strict overlap
func (s *Session) checkCollision() {
	pb, err := s.stage.PlayerBox()
	if err != nil {
		s.skipFrame("player box", err)
		return
	}
	ob, err := s.stage.ObstacleBox()
	if err != nil {
		s.skipFrame("obstacle box", err)
		return
	}

	if !Collides(pb, ob) {
		return
	}
	s.push(event.EventCollision, &event.CollisionPayload{ObstacleID: s.obstacle.ID})
	s.collide()
}

func (s *Session) skipFrame(what string, err error) {
	s.statSkipped.Add(1)
	log.Printf("frame skipped: %s unavailable: %v", what, err)
}

// Collides is the collision detector: strict overlap on both axes, touching edges excluded
func Collides(player, obstacle physics.Rect) bool {
	return physics.Overlaps(player, obstacle)
}
