package event

import "time"

// GameStartPayload identifies a new run
type GameStartPayload struct {
	RunID string
}

// GameOverPayload carries the terminal notification contents
type GameOverPayload struct {
	RunID      string
	FinalScore int
	Ticks      int
}

// CollisionPayload records the overlap that ended a run
type CollisionPayload struct {
	ObstacleID uint64
}

// JumpPayload carries the jump index within the current flight (1-based)
type JumpPayload struct {
	Count int
}

// ObstaclePayload describes one traversal
type ObstaclePayload struct {
	ID       uint64
	Height   float64
	Width    float64
	Duration time.Duration
}

// ScorePayload carries the displayed score
type ScorePayload struct {
	Score int
}
