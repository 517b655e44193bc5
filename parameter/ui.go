package parameter

// Terminal UI
const (
	// StartPrompt is shown before the first run
	StartPrompt = "Press Space or Up to start"

	// RestartHint follows the final score in the game-over notification
	RestartHint = "Press Space or Up to restart"

	// ScoreLabel prefixes the score display
	ScoreLabel = "Score"

	// GroundRune draws the ground line in the terminal frontend
	GroundRune = '▔'

	// PlayerRune and ObstacleRune fill the player and obstacle cells
	PlayerRune   = '█'
	ObstacleRune = '▓'
)

// Window UI
const (
	WindowTitle  = "vi-runner"
	WindowScale  = 2
	DebugLineGap = 16
)
