package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-runner/event"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running its OnEnter actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}
	m.InitialStateID = initial
	m.activeStateID = initial
	m.timeInState = 0

	for _, action := range node.OnEnter {
		action.Func(ctx, action.Args)
	}
	return nil
}

// Reset returns to the initial state without running OnExit of the current state
func (m *Machine[T]) Reset(ctx T) error {
	if m.InitialStateID == StateNone {
		return fmt.Errorf("FSM reset before init")
	}
	return m.Init(ctx, m.InitialStateID)
}

// Current returns the active state ID
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// CurrentName returns the active state name, empty before Init
func (m *Machine[T]) CurrentName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns the time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// HandleEvent fires the first matching transition of the active state
// Returns false when no transition accepts the event, which leaves state untouched
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return false
	}

	for _, trans := range node.Transitions {
		if trans.Event != eventType {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return true
		}
	}
	return false
}

// Update advances time in state and evaluates tick transitions (Event == 0)
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return
	}
	m.timeInState += dt

	for _, trans := range node.Transitions {
		if trans.Event != 0 {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			m.transition(ctx, trans.TargetID)
			return
		}
	}
}

// transition runs OnExit of the active state, then OnEnter of the target
// Self-transitions re-run both, matching a restart of the same state
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	if from, ok := m.nodes[m.activeStateID]; ok {
		for _, action := range from.OnExit {
			action.Func(ctx, action.Args)
		}
	}

	m.activeStateID = targetID
	m.timeInState = 0

	if to, ok := m.nodes[targetID]; ok {
		for _, action := range to.OnEnter {
			action.Func(ctx, action.Args)
		}
	}
}
