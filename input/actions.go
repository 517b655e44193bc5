package input

// Actions are the host-side receivers of intents; nil receivers ignore their intent
type Actions struct {
	Jump        func()
	Quit        func()
	ToggleMute  func()
	ToggleDebug func()
}

// Dispatch runs the receiver bound to intent and reports whether one ran
func (a Actions) Dispatch(i Intent) bool {
	var fn func()
	switch i {
	case IntentJump:
		fn = a.Jump
	case IntentQuit:
		fn = a.Quit
	case IntentToggleMute:
		fn = a.ToggleMute
	case IntentToggleDebug:
		fn = a.ToggleDebug
	}
	if fn == nil {
		return false
	}
	fn()
	return true
}
