package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings, case-sensitive
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyUp:     IntentJump,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlS:  IntentToggleMute,
			tcell.KeyF12:    IntentToggleDebug,
		},
		Runes: map[rune]Intent{
			' ': IntentJump,
			'q': IntentQuit,
			'm': IntentToggleMute,
		},
	}
}

// Resolve returns the intent bound to ev
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

// ResolveMouse returns IntentJump on the press edge of the primary button
func ResolveMouse(buttons, previous tcell.ButtonMask) Intent {
	if buttons&tcell.Button1 != 0 && previous&tcell.Button1 == 0 {
		return IntentJump
	}
	return IntentNone
}

// specialKeyNames are the accepted names for non-rune keys in bindings
var specialKeyNames = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"enter":  tcell.KeyEnter,
	"esc":    tcell.KeyEscape,
	"tab":    tcell.KeyTab,
	"ctrl-c": tcell.KeyCtrlC,
	"ctrl-q": tcell.KeyCtrlQ,
	"ctrl-s": tcell.KeyCtrlS,
	"f12":    tcell.KeyF12,
}

// Bind attaches the named action to a key
// Keys are a single rune, "space", or a name from the special key list
func (kt *KeyTable) Bind(key, action string) error {
	intent, ok := ParseIntent(action)
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}

	name := strings.ToLower(strings.TrimSpace(key))
	if name == "space" {
		kt.Runes[' '] = intent
		return nil
	}
	if k, ok := specialKeyNames[name]; ok {
		kt.SpecialKeys[k] = intent
		return nil
	}
	if utf8.RuneCountInString(key) == 1 {
		r, _ := utf8.DecodeRuneInString(key)
		kt.Runes[r] = intent
		return nil
	}
	return fmt.Errorf("unknown key %q", key)
}

// ApplyBindings binds every entry, stopping at the first invalid one
func (kt *KeyTable) ApplyBindings(bindings map[string]string) error {
	for key, action := range bindings {
		if err := kt.Bind(key, action); err != nil {
			return fmt.Errorf("key binding %s=%s: %w", key, action, err)
		}
	}
	return nil
}
