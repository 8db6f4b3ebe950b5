// Package input maps backend key events to movement actions
package input

import (
	"strings"
	"time"
)

// Actions is a bitset of requested movements
type Actions uint8

const (
	Forward Actions = 1 << iota
	Backward
	Left
	Right
	Quit

	None Actions = 0
)

// Has reports whether every bit of a is set
func (s Actions) Has(a Actions) bool { return s&a == a && a != 0 }

// Movement strips non-movement bits
func (s Actions) Movement() Actions { return s & (Forward | Backward | Left | Right) }

func (s Actions) String() string {
	if s == None {
		return "none"
	}
	var parts []string
	for _, a := range actionOrder {
		if s&a != 0 {
			parts = append(parts, actionNames[a])
		}
	}
	return strings.Join(parts, "|")
}

// Source is polled by the frame loop once per movement tick
type Source interface {
	Poll(now time.Time) Actions
}

var actionOrder = []Actions{Forward, Backward, Left, Right, Quit}

var actionNames = map[Actions]string{
	Forward:  "forward",
	Backward: "backward",
	Left:     "left",
	Right:    "right",
	Quit:     "quit",
}

// ActionByName resolves a config action name
func ActionByName(name string) (Actions, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return a, true
		}
	}
	return None, false
}
