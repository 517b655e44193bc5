package physics

import "testing"

func TestOverlaps(t *testing.T) {
	player := Rect{Left: 50, Top: 140, Right: 90, Bottom: 180}

	tests := []struct {
		name     string
		obstacle Rect
		want     bool
	}{
		{"inside", Rect{Left: 60, Top: 150, Right: 80, Bottom: 180}, true},
		{"partial overlap right", Rect{Left: 85, Top: 140, Right: 105, Bottom: 180}, true},
		{"partial overlap top", Rect{Left: 60, Top: 100, Right: 80, Bottom: 141}, true},
		{"touch right edge", Rect{Left: 90, Top: 140, Right: 110, Bottom: 180}, false},
		{"touch left edge", Rect{Left: 30, Top: 140, Right: 50, Bottom: 180}, false},
		{"touch top edge", Rect{Left: 60, Top: 100, Right: 80, Bottom: 140}, false},
		{"touch bottom edge", Rect{Left: 60, Top: 180, Right: 80, Bottom: 200}, false},
		{"touch corner", Rect{Left: 90, Top: 100, Right: 110, Bottom: 140}, false},
		{"horizontal only", Rect{Left: 60, Top: 20, Right: 80, Bottom: 60}, false},
		{"vertical only", Rect{Left: 300, Top: 140, Right: 320, Bottom: 180}, false},
		{"far away", Rect{Left: 500, Top: 0, Right: 520, Bottom: 20}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(player, tt.obstacle); got != tt.want {
				t.Errorf("Overlaps(player, %+v) = %v, want %v", tt.obstacle, got, tt.want)
			}
			if got := Overlaps(tt.obstacle, player); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %+v", tt.obstacle)
			}
		})
	}
}

func TestRectFromBottom(t *testing.T) {
	r := RectFromBottom(50, 180, 40, 30)
	want := Rect{Left: 50, Top: 150, Right: 90, Bottom: 180}
	if r != want {
		t.Errorf("RectFromBottom = %+v, want %+v", r, want)
	}
	if r.Width() != 40 || r.Height() != 30 {
		t.Errorf("size = %vx%v, want 40x30", r.Width(), r.Height())
	}
}
