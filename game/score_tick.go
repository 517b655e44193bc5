package game

import (
	"github.com/lixenwraith/vi-runner/event"
)

// scoreTick advances the counter and refreshes the display, called with s.mu held
func (s *Session) scoreTick() {
	if s.phase() != PhaseRunning {
		return
	}

	before := s.score.Display()
	after := s.score.Tick()
	s.stage.SetScoreText(FormatScore(after))

	if m := s.cfg.Score.Milestone; m > 0 && after != before && after%m == 0 {
		s.push(event.EventScoreMilestone, &event.ScorePayload{Score: after})
	}
}
