package game

import (
	"log"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/event"
)

// spawnObstacle replaces the current obstacle and starts its traversal, called with s.mu held
func (s *Session) spawnObstacle() {
	ob := s.obstacles.Next()
	s.obstacle = ob

	s.stage.ResetObstacle(ob)
	s.stage.StartObstacleMotion(ob.ID, s.obstacles.StartX(), s.obstacles.EndX(), ob.Duration)

	s.statSpawns.Add(1)
	s.push(event.EventObstacleSpawn, &event.ObstaclePayload{
		ID:       ob.ID,
		Height:   ob.Height,
		Width:    ob.Width,
		Duration: ob.Duration,
	})
}

// OnObstacleTraversalComplete is the stage's completion notification
// Notifications for a traversal other than the active one are stale and ignored,
// so a duplicated notice can never spawn two obstacles
func (s *Session) OnObstacleTraversalComplete(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase() != PhaseRunning || !s.obstacle.Active || id != s.obstacle.ID {
		log.Printf("ignoring stale traversal completion %d (active %d)", id, s.obstacle.ID)
		return
	}

	s.obstacle.Active = false
	s.push(event.EventObstacleCleared, &event.ObstaclePayload{
		ID:       id,
		Height:   s.obstacle.Height,
		Width:    s.obstacle.Width,
		Duration: s.obstacle.Duration,
	})

	if s.cfg.Obstacle.Policy == config.PolicyCompletion {
		s.spawnObstacle()
	}
}

// respawnTick is the interval-policy respawn, fired regardless of traversal state
func (s *Session) respawnTick() {
	if s.phase() != PhaseRunning {
		return
	}
	s.spawnObstacle()
}
