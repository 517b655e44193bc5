// Package tui is the terminal frontend: a tview application hosting the playfield
// and the game-over modal, driven by the frame queue
package tui

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/vi-runner/core"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/game"
	"github.com/lixenwraith/vi-runner/input"
	"github.com/lixenwraith/vi-runner/stage"
	"github.com/lixenwraith/vi-runner/status"
)

const (
	pageField    = "field"
	pageGameOver = "gameover"

	buttonRestart = "Restart"
	buttonQuit    = "Quit"
)

// Session is the part of game.Session the frontend drives
type Session interface {
	PhaseSource
	RequestJump()
	Start() bool
	Close()
}

// Muter toggles sound effects
type Muter interface {
	ToggleMute() bool
}

// Options wires the frontend to a session
type Options struct {
	Session       Session
	Sim           *stage.Sim
	Frames        *engine.FrameQueue
	Router        *event.Router
	Keys          *input.KeyTable
	Sound         Muter // nil when audio is unavailable
	Status        *status.Registry
	FrameInterval time.Duration
	Debug         bool

	// Screen overrides the terminal, used by tests with a simulation screen
	Screen tcell.Screen
}

// App is the terminal host loop
type App struct {
	opts   Options
	app    *tview.Application
	screen tcell.Screen
	pages  *tview.Pages
	field  *Playfield

	debug        atomic.Bool
	modalVisible bool // tview goroutine only
	lastButtons  tcell.ButtonMask
	cancel       context.CancelFunc
}

// New builds the application and registers its event handlers on the router
func New(opts Options) (*App, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
	}
	if opts.Keys == nil {
		opts.Keys = input.DefaultKeyTable()
	}

	a := &App{
		opts:   opts,
		app:    tview.NewApplication(),
		screen: screen,
	}
	a.debug.Store(opts.Debug)

	a.field = NewPlayfield(opts.Sim, opts.Session, opts.Status, a.debug.Load)
	a.pages = tview.NewPages().AddPage(pageField, a.field, true, true)

	a.app.SetScreen(screen)
	a.app.SetRoot(a.pages, true).EnableMouse(true)
	a.app.SetInputCapture(a.handleKey)
	a.app.SetMouseCapture(a.handleMouse)

	opts.Router.Register(event.HandlerFunc{
		Types: []event.EventType{event.EventGameStart, event.EventGameOver},
		Fn:    a.handleGameEvent,
	})
	return a, nil
}

// Run blocks until the user quits or ctx is cancelled
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	defer cancel()

	core.SetResetHook(a.screen.Fini)
	defer core.SetResetHook(nil)

	core.Go(func() {
		a.opts.Frames.Drive(ctx, a.opts.FrameInterval, a.afterFrame)
	})
	core.Go(func() {
		<-ctx.Done()
		a.app.Stop()
	})

	err := a.app.Run()
	a.opts.Session.Close()
	if err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	return nil
}

// afterFrame runs on the frame goroutine after each pump
// Dispatch happens on the tview goroutine so handlers may touch primitives
func (a *App) afterFrame() {
	a.app.QueueUpdateDraw(func() {
		a.opts.Router.DispatchAll()
	})
}

// quit ends Run
func (a *App) quit() {
	if a.cancel != nil {
		a.cancel()
		return
	}
	a.app.Stop()
}

// handleKey routes keys by intent; everything is consumed except modal navigation
func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if a.actions().Dispatch(a.opts.Keys.Resolve(ev)) {
		return nil
	}
	if a.modalVisible {
		return ev
	}
	return nil
}

func (a *App) actions() input.Actions {
	acts := input.Actions{
		Jump: a.opts.Session.RequestJump,
		Quit: a.quit,
		ToggleDebug: func() {
			a.debug.Store(!a.debug.Load())
		},
	}
	if a.opts.Sound != nil {
		acts.ToggleMute = func() {
			log.Printf("sound effects enabled: %v", a.opts.Sound.ToggleMute())
		}
	}
	return acts
}

// handleMouse turns primary clicks on the field into jumps; the modal keeps its clicks
func (a *App) handleMouse(ev *tcell.EventMouse, action tview.MouseAction) (*tcell.EventMouse, tview.MouseAction) {
	buttons := ev.Buttons()
	intent := input.ResolveMouse(buttons, a.lastButtons)
	a.lastButtons = buttons

	if a.modalVisible || intent != input.IntentJump {
		return ev, action
	}
	a.opts.Session.RequestJump()
	return nil, action
}

// handleGameEvent shows the game-over modal and hides it when a new run starts
func (a *App) handleGameEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameOver:
		p, ok := ev.Payload.(*event.GameOverPayload)
		if !ok {
			return
		}
		a.showGameOver(game.GameOverEvent{RunID: p.RunID, FinalScore: p.FinalScore, Ticks: p.Ticks})
	case event.EventGameStart:
		a.hideGameOver()
	}
}

func (a *App) showGameOver(ev game.GameOverEvent) {
	modal := tview.NewModal().
		SetText(ev.Message()).
		AddButtons([]string{buttonRestart, buttonQuit}).
		SetDoneFunc(func(_ int, label string) {
			switch label {
			case buttonRestart:
				a.opts.Session.Start()
			case buttonQuit:
				a.quit()
			}
		})

	a.modalVisible = true
	a.pages.AddAndSwitchToPage(pageGameOver, modal, false)
	a.pages.ShowPage(pageField)
	a.app.SetFocus(modal)
}

func (a *App) hideGameOver() {
	if !a.modalVisible {
		return
	}
	a.modalVisible = false
	a.pages.RemovePage(pageGameOver)
	a.app.SetFocus(a.field)
}

// ModalVisible reports whether the game-over modal is up, tview goroutine only
func (a *App) ModalVisible() bool {
	return a.modalVisible
}
