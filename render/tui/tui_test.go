package tui

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/vi-runner/config"
	"github.com/lixenwraith/vi-runner/engine"
	"github.com/lixenwraith/vi-runner/event"
	"github.com/lixenwraith/vi-runner/game"
	"github.com/lixenwraith/vi-runner/parameter"
	"github.com/lixenwraith/vi-runner/stage"
	"github.com/lixenwraith/vi-runner/status"
)

type fakeSession struct {
	phase  game.Phase
	jumps  int
	starts int
	closed bool
}

func (f *fakeSession) Phase() game.Phase { return f.phase }
func (f *fakeSession) RequestJump()      { f.jumps++ }
func (f *fakeSession) Start() bool       { f.starts++; return true }
func (f *fakeSession) Close()            { f.closed = true }

type fakeMuter struct{ toggles int }

func (f *fakeMuter) ToggleMute() bool { f.toggles++; return f.toggles%2 == 0 }

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func newTestSim() *stage.Sim {
	cfg := config.Default()
	clock := engine.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	return stage.NewSim(clock, cfg.Field, cfg.Physics.GroundLevel)
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestPlayfieldDrawsScaledField(t *testing.T) {
	screen := newSimScreen(t, 62, 22)
	sim := newTestSim()
	pf := NewPlayfield(sim, &fakeSession{phase: game.PhaseRunning}, nil, nil)
	pf.SetRect(0, 0, 62, 22)

	pf.Draw(screen)

	// Inner 60x20 starts at (1,1); player covers cells [5,9)x[14,18)
	for _, c := range [][2]int{{6, 15}, {9, 18}} {
		if r := runeAt(screen, c[0], c[1]); r != parameter.PlayerRune {
			t.Errorf("cell %v = %q, want player", c, r)
		}
	}
	if r := runeAt(screen, 30, 19); r != parameter.GroundRune {
		t.Errorf("ground cell = %q", r)
	}
	if r := runeAt(screen, 30, 10); r == parameter.PlayerRune || r == parameter.ObstacleRune {
		t.Errorf("sky cell = %q", r)
	}
}

func TestPlayfieldDetachesWhenTooSmall(t *testing.T) {
	screen := newSimScreen(t, 12, 6)
	sim := newTestSim()
	pf := NewPlayfield(sim, &fakeSession{}, nil, nil)
	pf.SetRect(0, 0, 12, 6)

	pf.Draw(screen)
	if _, err := sim.PlayerBox(); !errors.Is(err, stage.ErrNotAttached) {
		t.Errorf("PlayerBox err = %v, want ErrNotAttached", err)
	}

	pf.SetRect(0, 0, 62, 22)
	screen.SetSize(62, 22)
	pf.Draw(screen)
	if _, err := sim.PlayerBox(); err != nil {
		t.Errorf("PlayerBox after resize: %v", err)
	}
}

func TestPlayfieldDebugFooter(t *testing.T) {
	screen := newSimScreen(t, 62, 22)
	stats := status.NewRegistry()
	stats.Ints.Get("frame.count").Store(3)
	pf := NewPlayfield(newTestSim(), &fakeSession{}, stats, func() bool { return true })
	pf.SetRect(0, 0, 62, 22)

	pf.Draw(screen)

	// Last inner row holds the last metric line
	lines := stats.Lines()
	last := []rune(lines[len(lines)-1])
	if r := runeAt(screen, 1, 20); r != last[0] {
		t.Errorf("footer starts with %q, want %q", r, last[0])
	}
}

func newTestApp(t *testing.T) (*App, *fakeSession, *event.EventQueue) {
	t.Helper()
	events := event.NewEventQueue()
	sess := &fakeSession{phase: game.PhaseRunning}
	a, err := New(Options{
		Session:       sess,
		Sim:           newTestSim(),
		Frames:        engine.NewFrameQueue(),
		Router:        event.NewRouter(events),
		Sound:         &fakeMuter{},
		Status:        status.NewRegistry(),
		FrameInterval: parameter.FrameUpdateInterval,
		Screen:        newSimScreen(t, 62, 22),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a, sess, events
}

func TestKeysRouteToSession(t *testing.T) {
	a, sess, _ := newTestApp(t)

	if a.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone)) != nil {
		t.Error("space not consumed")
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if sess.jumps != 2 {
		t.Errorf("jumps = %d, want 2", sess.jumps)
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModNone))
	if !a.debug.Load() {
		t.Error("debug not toggled")
	}
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone))
	if a.opts.Sound.(*fakeMuter).toggles != 1 {
		t.Error("mute not toggled")
	}
}

func TestMouseClickJumps(t *testing.T) {
	a, sess, _ := newTestApp(t)

	press := tcell.NewEventMouse(10, 10, tcell.Button1, tcell.ModNone)
	release := tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone)

	a.handleMouse(press, tview.MouseLeftDown)
	a.handleMouse(press, tview.MouseMove)
	a.handleMouse(release, tview.MouseLeftUp)
	a.handleMouse(press, tview.MouseLeftDown)

	if sess.jumps != 2 {
		t.Errorf("jumps = %d, want 2", sess.jumps)
	}
}

func TestGameOverModalLifecycle(t *testing.T) {
	a, sess, events := newTestApp(t)

	events.Push(event.GameEvent{
		Type:    event.EventGameOver,
		Payload: &event.GameOverPayload{RunID: "r", FinalScore: 7, Ticks: 70},
	})
	a.opts.Router.DispatchAll()

	if !a.ModalVisible() || !a.pages.HasPage(pageGameOver) {
		t.Fatal("modal not shown on game over")
	}

	// Clicks belong to the modal while it is up
	a.handleMouse(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone), tview.MouseLeftDown)
	if sess.jumps != 0 {
		t.Error("click leaked through the modal")
	}

	// Unbound keys reach the modal buttons
	if a.handleKey(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)) == nil {
		t.Error("modal navigation key swallowed")
	}

	// Space restarts from the modal, the new run hides it
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if sess.jumps != 1 {
		t.Errorf("jumps = %d, want 1", sess.jumps)
	}
	events.Push(event.GameEvent{Type: event.EventGameStart, Payload: &event.GameStartPayload{RunID: "s"}})
	a.opts.Router.DispatchAll()

	if a.ModalVisible() || a.pages.HasPage(pageGameOver) {
		t.Error("modal still shown after restart")
	}
}
