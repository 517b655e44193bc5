// Package gui is the windowed frontend on ebiten
// Ebiten's Update loop replaces the frame ticker: every Update pumps the frame queue once
package gui

import (
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/game"
	"github.com/lixenwraith/vi-runner/input"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/physics"
	"github.com/lixenwraith/vi-runner/stage"
	"github.com/lixenwraith/vi-runner/status"
)

var (
	skyColor      = color.RGBA{0x10, 0x14, 0x1c, 0xff}
	groundColor   = color.RGBA{0x80, 0x80, 0x30, 0xff}
	playerColor   = color.RGBA{0x30, 0xd0, 0xe0, 0xff}
	jumpingColor  = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	obstacleColor = color.RGBA{0xe0, 0x40, 0x40, 0xff}
)

// keyBindings maps window keys to intents
var keyBindings = map[ebiten.Key]input.Intent{
	ebiten.KeySpace:   input.IntentJump,
	ebiten.KeyArrowUp: input.IntentJump,
	ebiten.KeyEscape:  input.IntentQuit,
	ebiten.KeyQ:       input.IntentQuit,
	ebiten.KeyM:       input.IntentToggleMute,
	ebiten.KeyF12:     input.IntentToggleDebug,
}

// Session is the part of game.Session the window drives
type Session interface {
	Phase() game.Phase
	RequestJump()
}

// Muter toggles sound effects
type Muter interface {
	ToggleMute() bool
}

// Options wires the window to a session
type Options struct {
	Session Session
	Sim     *stage.Sim
	Frames  *engine.FrameQueue
	Router  *event.Router
	Sound   Muter
	Status  *status.Registry
	Debug   bool
}

// Game implements ebiten.Game
type Game struct {
	opts  Options
	debug bool
	quit  bool
}

// New creates the window game
func New(opts Options) *Game {
	return &Game{opts: opts, debug: opts.Debug}
}

// Run opens the window and blocks until it closes
func (g *Game) Run() error {
	field := g.opts.Sim.Snapshot().Field
	ebiten.SetWindowSize(int(field.Width)*parameter.WindowScale, int(field.Height)*parameter.WindowScale)
	ebiten.SetWindowTitle(parameter.WindowTitle)
	return ebiten.RunGame(g)
}

func (g *Game) actions() input.Actions {
	acts := input.Actions{
		Jump:        g.opts.Session.RequestJump,
		Quit:        func() { g.quit = true },
		ToggleDebug: func() { g.debug = !g.debug },
	}
	if g.opts.Sound != nil {
		acts.ToggleMute = func() {
			log.Printf("sound effects enabled: %v", g.opts.Sound.ToggleMute())
		}
	}
	return acts
}

// Update handles input, then runs one frame: queued frame callbacks and event dispatch
func (g *Game) Update() error {
	acts := g.actions()
	for key, intent := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			acts.Dispatch(intent)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		acts.Dispatch(input.IntentJump)
	}

	if g.quit {
		return ebiten.Termination
	}

	g.opts.Frames.Pump()
	g.opts.Router.DispatchAll()
	return nil
}

// Draw paints the snapshot in field units; Layout makes one unit one pixel
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	v := g.opts.Sim.Snapshot()

	groundY := float32(v.Field.Height - v.Ground)
	vector.FillRect(screen, 0, groundY, float32(v.Field.Width), 2, groundColor, false)

	fillRect(screen, v.Obstacle, obstacleColor)
	if v.Animating {
		fillRect(screen, v.Player, jumpingColor)
	} else {
		fillRect(screen, v.Player, playerColor)
	}

	if v.ScoreText != "" {
		ebitenutil.DebugPrintAt(screen, v.ScoreText, int(v.Field.Width)-len(v.ScoreText)*6-8, 4)
	}

	switch {
	case g.opts.Session.Phase() == game.PhaseIdle:
		printCentered(screen, parameter.StartPrompt, v.Field.Width, v.Field.Height/3)
	case v.GameOver != nil:
		for i, line := range strings.Split(v.GameOver.Message(), "\n") {
			printCentered(screen, line, v.Field.Width, v.Field.Height/4+float64(i*parameter.DebugLineGap))
		}
	}

	if g.debug && g.opts.Status != nil {
		for i, line := range g.opts.Status.Lines() {
			ebitenutil.DebugPrintAt(screen, line, 4, 4+i*parameter.DebugLineGap)
		}
	}
}

// Layout fixes the logical screen to the field size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	field := g.opts.Sim.Snapshot().Field
	return int(field.Width), int(field.Height)
}

func fillRect(screen *ebiten.Image, r physics.Rect, clr color.Color) {
	vector.FillRect(screen, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), clr, false)
}

// printCentered approximates centering with the debug font's 6px glyph width
func printCentered(screen *ebiten.Image, text string, width, y float64) {
	x := int(width)/2 - len(text)*3
	ebitenutil.DebugPrintAt(screen, text, x, int(y))
}
