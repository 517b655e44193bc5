package event

import "time"

// EventType represents the type of game event
type EventType int

const (
	// === Lifecycle Triggers ===
	// Consumed by the phase machine; also published for observers

	// EventStartRequest asks the phase machine to begin a run
	// Trigger: RequestJump in Idle/GameOver, explicit Start | Payload: nil
	EventStartRequest EventType = iota + 1

	// EventCollision signals a player/obstacle overlap
	// Trigger: frame tick collision check | Payload: *CollisionPayload
	EventCollision

	// === Run Events ===

	// EventGameStart marks entry into Running
	// Consumer: AudioHandler, UI | Payload: *GameStartPayload
	EventGameStart

	// EventGameOver carries the final score of a run
	// Consumer: AudioHandler, UI | Payload: *GameOverPayload
	EventGameOver

	// === Player Events ===

	// EventJump is emitted for every accepted jump
	// Consumer: AudioHandler | Payload: *JumpPayload
	EventJump

	// EventLand is emitted when the integrator clamps the player to ground
	// Consumer: AudioHandler | Payload: nil
	EventLand

	// === Obstacle Events ===

	// EventObstacleSpawn is emitted when a traversal starts
	// Consumer: UI | Payload: *ObstaclePayload
	EventObstacleSpawn

	// EventObstacleCleared is emitted when a traversal completes while running
	// Consumer: UI | Payload: *ObstaclePayload
	EventObstacleCleared

	// === Score Events ===

	// EventScoreMilestone is emitted when the displayed score crosses a milestone
	// Consumer: AudioHandler | Payload: *ScorePayload
	EventScoreMilestone
)

var eventNames = map[EventType]string{
	EventStartRequest:    "StartRequest",
	EventCollision:       "Collision",
	EventGameStart:       "GameStart",
	EventGameOver:        "GameOver",
	EventJump:            "Jump",
	EventLand:            "Land",
	EventObstacleSpawn:   "ObstacleSpawn",
	EventObstacleCleared: "ObstacleCleared",
	EventScoreMilestone:  "ScoreMilestone",
}

// String returns the event name for logs
func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "Unknown"
}

// GameEvent is a single queued event
type GameEvent struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}
