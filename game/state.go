package game

import (
	"time"

	"github.com/lixenwraith/vi-runner/engine/fsm"
)

// Phase is the session state, backed by the phase machine's state IDs
type Phase = fsm.StateID

const (
	PhaseIdle Phase = iota + 1
	PhaseRunning
	PhaseGameOver
)

// PhaseName returns the display name of a phase
func PhaseName(p Phase) string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseRunning:
		return "Running"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// PlayerState is the vertical state of the player
// Position never drops below ground; JumpCount returns to 0 exactly on landing
type PlayerState struct {
	Position  float64
	Velocity  float64
	JumpCount int
	Airborne  bool
}

// ObstacleState describes the current obstacle traversal
// X is the left edge at spawn; live position belongs to the stage's motion primitive
type ObstacleState struct {
	ID       uint64
	X        float64
	Height   float64
	Width    float64
	Speed    float64 // units per second
	Duration time.Duration
	Active   bool
}
