package input

// Intent is the host-level meaning of a key or pointer event
type Intent uint8

const (
	IntentNone        Intent = iota
	IntentJump               // Space, Up, click: jump, or start/restart when not running
	IntentQuit               // Host shutdown, never reaches the game core
	IntentToggleMute         // Sound effects on/off
	IntentToggleDebug        // Metrics footer on/off
)

// intentNames are the canonical action names used by key bindings in config
var intentNames = map[string]Intent{
	"none":         IntentNone,
	"jump":         IntentJump,
	"quit":         IntentQuit,
	"toggle_mute":  IntentToggleMute,
	"toggle_debug": IntentToggleDebug,
}

func (i Intent) String() string {
	for name, v := range intentNames {
		if v == i {
			return name
		}
	}
	return "unknown"
}

// ParseIntent resolves a canonical action name
func ParseIntent(name string) (Intent, bool) {
	i, ok := intentNames[name]
	return i, ok
}
