package fsm

import (
	"time"

	"github.com/lixenwraith/vi-runner/event"
)

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards (e.g., *game.Session)
// Machine is not synchronized; the owner serializes access
type Machine[T any] struct {
	// Graph data, immutable after build
	nodes map[StateID]*Node[T]

	// InitialStateID is stored during Init for Reset
	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration

	// Named registries for builder lookups
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter []Action[T]
	OnExit  []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // 0 = tick (auto-transition evaluated by Update)
	Guard    GuardFunc[T]    // nil = always true
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)
