package input

import (
	"sync"
	"time"
)

// KeyState latches key events from a backend goroutine for the frame loop
// Backends without release events use Press; the key then counts as held for
// the hold window. Backends with real key state use Set
type KeyState struct {
	mu     sync.Mutex
	keymap *Keymap
	hold   time.Duration

	lastPress [5]time.Time // indexed by action bit position
	held      Actions
	quit      bool
}

// NewKeyState creates a latch over keymap
func NewKeyState(keymap *Keymap, hold time.Duration) *KeyState {
	return &KeyState{keymap: keymap, hold: hold}
}

// Press records a key event at now
func (s *KeyState) Press(k Key, now time.Time) {
	a := s.keymap.Lookup(k)
	if a == None {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if a&Quit != 0 {
		s.quit = true
	}
	for i, bit := range actionOrder {
		if a&bit != 0 {
			s.lastPress[i] = now
		}
	}
}

// Set replaces the held set from a backend that reports key state directly
func (s *KeyState) Set(a Actions) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a&Quit != 0 {
		s.quit = true
	}
	s.held = a.Movement()
}

// RequestQuit latches Quit, used for window-close and signal paths
func (s *KeyState) RequestQuit() {
	s.mu.Lock()
	s.quit = true
	s.mu.Unlock()
}

// Poll returns actions that are held or were pressed within the hold window
// Presses stamped after now are not yet active
// Quit stays latched once seen
func (s *KeyState) Poll(now time.Time) Actions {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.held
	for i, bit := range actionOrder {
		t := s.lastPress[i]
		if bit == Quit || t.IsZero() {
			continue
		}
		if d := now.Sub(t); d >= 0 && d <= s.hold {
			a |= bit
		}
	}
	if s.quit {
		a |= Quit
	}
	return a
}
