package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/vi-runner/game"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/physics"
	"github.com/lixenwraith/vi-runner/stage"
	"github.com/lixenwraith/vi-runner/status"
)

// Smallest inner area the field can be scaled into
const (
	minCols = 20
	minRows = 8
)

var (
	groundStyle   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	playerStyle   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	jumpingStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	debugStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// PhaseSource reports the session phase
type PhaseSource interface {
	Phase() game.Phase
}

// Playfield draws the stage snapshot scaled to its inner rectangle
// The stage is detached while the terminal is too small to show the field
type Playfield struct {
	*tview.Box

	sim    *stage.Sim
	phases PhaseSource
	stats  *status.Registry
	debug  func() bool
}

// NewPlayfield creates the field primitive; stats may be nil
func NewPlayfield(sim *stage.Sim, phases PhaseSource, stats *status.Registry, debug func() bool) *Playfield {
	pf := &Playfield{
		Box:    tview.NewBox(),
		sim:    sim,
		phases: phases,
		stats:  stats,
		debug:  debug,
	}
	pf.SetBorder(true).SetTitle(" " + parameter.WindowTitle + " ")
	return pf
}

// Draw renders the field
func (pf *Playfield) Draw(screen tcell.Screen) {
	pf.DrawForSubclass(screen, pf)
	x, y, cols, rows := pf.GetInnerRect()

	if cols < minCols || rows < minRows {
		pf.sim.SetAttached(false)
		tview.Print(screen, "terminal too small", x, y+rows/2, cols, tview.AlignCenter, tcell.ColorYellow)
		return
	}
	pf.sim.SetAttached(true)

	v := pf.sim.Snapshot()

	ground := v.GroundRow(rows)
	for col := 0; col < cols; col++ {
		screen.SetContent(x+col, y+ground, parameter.GroundRune, nil, groundStyle)
	}

	pf.fill(screen, v, v.Obstacle, parameter.ObstacleRune, obstacleStyle)
	style := playerStyle
	if v.Animating {
		style = jumpingStyle
	}
	pf.fill(screen, v, v.Player, parameter.PlayerRune, style)

	if v.ScoreText != "" {
		tview.Print(screen, v.ScoreText, x, y, cols-1, tview.AlignRight, tcell.ColorWhite)
	}

	if pf.phases != nil && pf.phases.Phase() == game.PhaseIdle {
		printCentered(screen, parameter.StartPrompt, x, y+rows/3, cols)
	}

	if pf.debug != nil && pf.debug() && pf.stats != nil {
		pf.drawDebug(screen, x, y, cols, rows)
	}
}

// fill paints the cells covered by r
func (pf *Playfield) fill(screen tcell.Screen, v stage.View, r physics.Rect, ch rune, style tcell.Style) {
	x, y, cols, rows := pf.GetInnerRect()
	x0, y0, x1, y1 := v.Scale(r, cols, rows)
	for row := y0; row < y1; row++ {
		for col := x0; col < x1; col++ {
			screen.SetContent(x+col, y+row, ch, nil, style)
		}
	}
}

// drawDebug lists metrics bottom-up from the last inner row
func (pf *Playfield) drawDebug(screen tcell.Screen, x, y, cols, rows int) {
	lines := pf.stats.Lines()
	for i, line := range lines {
		row := y + rows - len(lines) + i
		if row < y {
			continue
		}
		printStyled(screen, line, x, row, cols, debugStyle)
	}
}

func printCentered(screen tcell.Screen, text string, x, y, width int) {
	tview.Print(screen, text, x, y, width, tview.AlignCenter, tcell.ColorWhite)
}

func printStyled(screen tcell.Screen, text string, x, y, width int, style tcell.Style) {
	for i, r := range []rune(text) {
		if i >= width {
			return
		}
		screen.SetContent(x+i, y, r, nil, style)
	}
}
