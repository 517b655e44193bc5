package parameter

import "time"

// Playfield Geometry (screen units, y grows downward)
const (
	FieldWidth  = 600.0
	FieldHeight = 200.0

	// PlayerLeft is the fixed horizontal offset of the player's left edge
	PlayerLeft   = 50.0
	PlayerWidth  = 40.0
	PlayerHeight = 40.0
)

// Obstacle Spawn
const (
	// ObstacleInitialHeight is the height the obstacle is reset to on start
	ObstacleInitialHeight = 40.0

	// ObstacleWidth is the fixed obstacle width
	ObstacleWidth = 20.0

	// ObstacleHeightMin and ObstacleHeightMax bound the continuous height pick
	ObstacleHeightMin = 50.0
	ObstacleHeightMax = 100.0

	ObstacleDurationMin = 1500 * time.Millisecond
	ObstacleDurationMax = 4000 * time.Millisecond

	// ObstacleRespawnInterval is the fixed period of the interval respawn policy
	ObstacleRespawnInterval = 3000 * time.Millisecond
)

// ObstacleHeights is the discrete height set of the classic preset
var ObstacleHeights = []float64{40, 60}

// Scoring
const (
	// ScoreTickInterval is the score counter period
	ScoreTickInterval = 100 * time.Millisecond

	// ScoreDivisor converts counter ticks to displayed points
	ScoreDivisor = 10

	// ScoreMilestone is the displayed-score step that triggers a milestone event
	ScoreMilestone = 100
)
