package physics

import "testing"

func TestIntegrateLandsExactlyOnGround(t *testing.T) {
	const ground = 20.0

	for _, tt := range []struct {
		name             string
		impulse, gravity float64
	}{
		{"default", 15, 1},
		{"fractional gravity", 15, 0.7},
		{"weak impulse", 1, 1},
		{"odd pair", 12.5, 0.9},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b := Vertical{Position: ground, Velocity: tt.impulse}
			landed := false
			for i := 0; i < 10000 && !landed; i++ {
				landed = Integrate(&b, tt.gravity, ground)
				if b.Position < ground {
					t.Fatalf("tick %d: position %v below ground", i, b.Position)
				}
			}
			if !landed {
				t.Fatal("body never landed")
			}
			if b.Position != ground || b.Velocity != 0 {
				t.Errorf("after landing = %+v, want {%v 0}", b, ground)
			}
		})
	}
}

func TestIntegrateDeterministicTrajectory(t *testing.T) {
	b := Vertical{Position: 20, Velocity: 15}

	Integrate(&b, 1, 20)
	if b.Velocity != 14 || b.Position != 34 {
		t.Fatalf("tick 1 = %+v, want {34 14}", b)
	}
	Integrate(&b, 1, 20)
	if b.Velocity != 13 || b.Position != 47 {
		t.Fatalf("tick 2 = %+v, want {47 13}", b)
	}

	ticks := 2
	for !Integrate(&b, 1, 20) {
		ticks++
	}
	ticks++
	// Velocity 15 with gravity 1 returns to launch height on tick 29 (sum 14..-14 = 0)
	if ticks != 29 {
		t.Errorf("landed after %d ticks, want 29", ticks)
	}
}

func TestIntegrateUnboundedFallSpeed(t *testing.T) {
	b := Vertical{Position: 100000, Velocity: 0}
	for i := 0; i < 200; i++ {
		if Integrate(&b, 1, 20) {
			t.Fatal("landed too early")
		}
	}
	if b.Velocity != -200 {
		t.Errorf("velocity after 200 ticks = %v, want -200 (no terminal velocity)", b.Velocity)
	}
}

func TestIntegrateGroundedZeroVelocityLandsImmediately(t *testing.T) {
	b := Vertical{Position: 20}
	if !Integrate(&b, 1, 20) {
		t.Error("grounded body with zero velocity should land on the first tick")
	}
	if b.Position != 20 || b.Velocity != 0 {
		t.Errorf("state = %+v, want {20 0}", b)
	}
}

func TestApex(t *testing.T) {
	if got := ApexTicks(15, 1); got != 15 {
		t.Errorf("ApexTicks(15, 1) = %d, want 15", got)
	}
	// 14+13+...+1+0 = 105
	if got := ApexHeight(15, 1); got != 105 {
		t.Errorf("ApexHeight(15, 1) = %v, want 105", got)
	}
	if ApexTicks(15, 0) != 0 {
		t.Error("ApexTicks with zero gravity should be 0")
	}
}
