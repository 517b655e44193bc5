package game

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/physics"
)

// Stage is the rendering collaborator the core drives
// Methods are called with the session lock held and must not call back into the session;
// traversal completion is reported later through Session.OnObstacleTraversalComplete
type Stage interface {
	// PlayerBox and ObstacleBox measure layout in shared screen space
	// An error means layout is unavailable and the caller skips the frame
	PlayerBox() (physics.Rect, error)
	ObstacleBox() (physics.Rect, error)

	// PlayerOffset reads the player's current vertical offset above the playfield bottom
	PlayerOffset() (float64, error)
	SetPlayerOffset(offset float64)
	SetPlayerAnimating(animating bool)

	// ResetObstacle places the obstacle without motion
	ResetObstacle(ob ObstacleState)
	// StartObstacleMotion moves the obstacle's left edge from -> to over d, then reports id as complete
	StartObstacleMotion(id uint64, from, to float64, d time.Duration)
	// StopMotion freezes every continuous motion in place and drops pending completions
	StopMotion()

	SetScoreText(text string)
	NotifyGameOver(ev GameOverEvent)
}

// FrameRequester schedules a callback on the next redraw
type FrameRequester interface {
	RequestFrame(fn func())
}

// Rand is the random source for obstacle variance, satisfied by *math/rand/v2.Rand
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// GameOverEvent is the terminal notification of a run
type GameOverEvent struct {
	RunID      string
	FinalScore int
	Ticks      int
}

// Message renders the notification text shown to the player
func (ev GameOverEvent) Message() string {
	return fmt.Sprintf("Game over! Final score: %d\n\n%s", ev.FinalScore, parameter.RestartHint)
}

// FormatScore renders the score display text
func FormatScore(score int) string {
	return fmt.Sprintf("%s: %d", parameter.ScoreLabel, score)
}
