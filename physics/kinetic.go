package physics

// Vertical is the one-dimensional kinetic state of a jumping body
// Position is the distance above the playfield bottom, Velocity is positive upward
type Vertical struct {
	Position float64
	Velocity float64
}

// Integrate applies one gravity step: velocity first, then position
// Returns true when the body reached or passed ground, in which case it is clamped
// to ground with zero velocity. Velocity magnitude is not bounded
func Integrate(v *Vertical, gravity, ground float64) (landed bool) {
	v.Velocity -= gravity
	v.Position += v.Velocity

	if v.Position <= ground {
		v.Position = ground
		v.Velocity = 0
		return true
	}
	return false
}

// ApexTicks returns the number of ticks until velocity stops being positive for an impulse
// Used to size the playfield and by tests; gravity must be positive
func ApexTicks(impulse, gravity float64) int {
	if gravity <= 0 || impulse <= 0 {
		return 0
	}
	n := 0
	for v := impulse; v > 0; v -= gravity {
		n++
	}
	return n
}

// ApexHeight returns the peak height above launch for an impulse under discrete integration
func ApexHeight(impulse, gravity float64) float64 {
	b := Vertical{Velocity: impulse}
	peak := 0.0
	for i := 0; i < ApexTicks(impulse, gravity); i++ {
		b.Velocity -= gravity
		b.Position += b.Velocity
		if b.Position > peak {
			peak = b.Position
		}
	}
	return peak
}
