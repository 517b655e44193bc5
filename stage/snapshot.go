package stage

import (
	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/game"
	"github.com/lixenwraith/vi-runner/physics"
)

// View is a frame's worth of stage state for a renderer
type View struct {
	Field      config.FieldConfig
	Ground     float64
	Player     physics.Rect
	Obstacle   physics.Rect
	Moving     bool
	Animating  bool
	ScoreText  string
	GameOver   *game.GameOverEvent
	ObstacleID uint64
}

// Snapshot returns the current layout regardless of attachment
func (s *Sim) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Field:      s.field,
		Ground:     s.ground,
		Player:     s.playerBoxLocked(),
		Obstacle:   s.obstacleBoxLocked(s.clock.Now()),
		Moving:     s.motion != nil,
		Animating:  s.animating,
		ScoreText:  s.scoreText,
		ObstacleID: s.obstacle.ID,
	}
	if s.gameOver != nil {
		ev := *s.gameOver
		v.GameOver = &ev
	}
	return v
}

// Scale maps a field rectangle onto a cell grid of cols x rows
// Returns integer cell bounds [x0, x1) x [y0, y1), clipped to the grid
func (v View) Scale(r physics.Rect, cols, rows int) (x0, y0, x1, y1 int) {
	if v.Field.Width <= 0 || v.Field.Height <= 0 {
		return 0, 0, 0, 0
	}
	sx := float64(cols) / v.Field.Width
	sy := float64(rows) / v.Field.Height

	x0 = clamp(int(r.Left*sx), 0, cols)
	x1 = clamp(int(r.Right*sx+0.5), 0, cols)
	y0 = clamp(int(r.Top*sy), 0, rows)
	y1 = clamp(int(r.Bottom*sy+0.5), 0, rows)
	if x1 <= x0 && r.Right > r.Left && x0 < cols {
		x1 = x0 + 1
	}
	return x0, y0, x1, y1
}

// GroundRow is the cell row of the ground line for a grid of rows
func (v View) GroundRow(rows int) int {
	if v.Field.Height <= 0 {
		return rows - 1
	}
	return clamp(int((v.Field.Height-v.Ground)*float64(rows)/v.Field.Height), 0, rows-1)
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
