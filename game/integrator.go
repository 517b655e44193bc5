package game

import "github.com/lixenwraith/vi-runner/physics"

// Integrator advances the player under gravity, one fixed tick at a time
type Integrator struct {
	Gravity float64
	Ground  float64
}

// Step applies one tick; on landing the player is grounded with its jump budget restored
func (in Integrator) Step(p *PlayerState) (landed bool) {
	body := physics.Vertical{Position: p.Position, Velocity: p.Velocity}
	landed = physics.Integrate(&body, in.Gravity, in.Ground)
	p.Position, p.Velocity = body.Position, body.Velocity

	if landed {
		p.Airborne = false
		p.JumpCount = 0
	}
	return landed
}
