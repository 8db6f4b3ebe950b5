package input

import (
	"fmt"
	"maps"
	"strings"
	"unicode"
)

// Key is a backend-neutral key identity
// Printable keys carry Rune; special keys carry a lowercase Name
type Key struct {
	Rune rune
	Name string
}

// RuneKey builds a printable key, folded to lower case
func RuneKey(r rune) Key { return Key{Rune: unicode.ToLower(r)} }

// NamedKey builds a special key
func NamedKey(name string) Key { return Key{Name: strings.ToLower(name)} }

// Rune aliases for keys that can't be written bare in config
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key names accepted by every backend
var specialKeys = map[string]bool{
	"up":     true,
	"down":   true,
	"left":   true,
	"right":  true,
	"esc":    true,
	"enter":  true,
	"tab":    true,
	"ctrl+c": true,
}

// Keymap binds keys to actions
type Keymap struct {
	bindings map[Key]Actions
}

// DefaultBindings is WASD plus arrows; Esc, q and Ctrl+C quit
var DefaultBindings = map[string][]string{
	"forward":  {"w", "up"},
	"backward": {"s", "down"},
	"left":     {"a", "left"},
	"right":    {"d", "right"},
	"quit":     {"q", "esc", "ctrl+c"},
}

// DefaultKeymap returns the stock bindings
func DefaultKeymap() *Keymap {
	km, err := NewKeymap(DefaultBindings)
	if err != nil {
		panic(err)
	}
	return km
}

// NewKeymap builds a keymap from action name → key names
// A key may be bound to several actions
func NewKeymap(bindings map[string][]string) (*Keymap, error) {
	km := &Keymap{bindings: make(map[Key]Actions)}
	for actionName, keys := range bindings {
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("unknown action: %q", actionName)
		}
		for _, keyName := range keys {
			k, err := resolveKey(keyName)
			if err != nil {
				return nil, fmt.Errorf("action %q: %w", actionName, err)
			}
			km.bindings[k] |= a
		}
	}
	return km, nil
}

// Merge returns a copy of base with override bindings replacing whole actions
func Merge(base map[string][]string, override map[string][]string) map[string][]string {
	result := maps.Clone(base)
	for k, v := range override {
		result[k] = v
	}
	return result
}

// Lookup returns the actions bound to k
func (km *Keymap) Lookup(k Key) Actions {
	return km.bindings[k]
}

// resolveKey converts a config key string to a Key
// Accepts single characters, rune aliases and special key names
func resolveKey(s string) (Key, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	if r, ok := runeAliases[name]; ok {
		return RuneKey(r), nil
	}
	if specialKeys[name] {
		return NamedKey(name), nil
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return RuneKey(runes[0]), nil
	}

	return Key{}, fmt.Errorf("invalid key: %q (expected single character, alias or key name)", s)
}
