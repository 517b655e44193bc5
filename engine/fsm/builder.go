package fsm

import "fmt"

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// AddGuardedTransition adds a transition whose guard is looked up in the registry by name
func (m *Machine[T]) AddGuardedTransition(sourceID StateID, t Transition[T], guardName string) error {
	guard, ok := m.guardReg[guardName]
	if !ok {
		return fmt.Errorf("unknown guard %q", guardName)
	}
	t.Guard = guard
	m.AddTransition(sourceID, t)
	return nil
}

// BindEnter attaches a registered action to the OnEnter list of a state
func (m *Machine[T]) BindEnter(id StateID, actionName string, args any) error {
	node, fn, err := m.lookup(id, actionName)
	if err != nil {
		return err
	}
	node.OnEnter = append(node.OnEnter, Action[T]{Func: fn, Args: args})
	return nil
}

// BindExit attaches a registered action to the OnExit list of a state
func (m *Machine[T]) BindExit(id StateID, actionName string, args any) error {
	node, fn, err := m.lookup(id, actionName)
	if err != nil {
		return err
	}
	node.OnExit = append(node.OnExit, Action[T]{Func: fn, Args: args})
	return nil
}

// Validate checks every transition targets a known state
func (m *Machine[T]) Validate() error {
	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return fmt.Errorf("state %d (%s) transitions to missing state %d", id, node.Name, t.TargetID)
			}
		}
	}
	return nil
}

func (m *Machine[T]) lookup(id StateID, actionName string) (*Node[T], ActionFunc[T], error) {
	node, ok := m.nodes[id]
	if !ok {
		return nil, nil, fmt.Errorf("unknown state %d", id)
	}
	fn, ok := m.actionReg[actionName]
	if !ok {
		return nil, nil, fmt.Errorf("unknown action %q", actionName)
	}
	return node, fn, nil
}
