package game

// JumpController gates jump requests against the per-flight budget
type JumpController struct {
	Velocity float64
	MaxJumps int
}

// Apply performs a jump on p if budget remains
// Velocity is replaced, not added, so a mid-fall jump cancels downward momentum
func (jc JumpController) Apply(p *PlayerState) bool {
	if p.JumpCount >= jc.MaxJumps {
		return false
	}
	p.JumpCount++
	p.Velocity = jc.Velocity
	p.Airborne = true
	return true
}
