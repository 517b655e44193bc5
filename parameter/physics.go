package parameter

import "time"

// Jump Physics
const (
	// Gravity is subtracted from vertical velocity on every physics tick
	Gravity = 1.0

	// JumpVelocity is the upward impulse applied by each jump, replacing current velocity
	JumpVelocity = 15.0

	// MaxJumps is the per-flight jump budget (2 = double jump)
	MaxJumps = 2

	// PhysicsTickInterval is the integrator period while airborne
	PhysicsTickInterval = 20 * time.Millisecond

	// GroundLevel is the player's resting offset above the playfield bottom
	GroundLevel = 20.0
)
