// Package tcellsurface draws ray columns into a terminal and feeds key events to input
package tcellsurface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/render"
)

// Surface paints one terminal cell per pixel using the cell background
// The bottom row is reserved for the status line when enabled
type Surface struct {
	screen tcell.Screen
	styles map[render.RGB]tcell.Style
	status bool
}

// New wraps an initialized screen
func New(screen tcell.Screen, status bool) *Surface {
	return &Surface{
		screen: screen,
		styles: make(map[render.RGB]tcell.Style),
		status: status,
	}
}

// RGBToTcell converts render.RGB to a true-color tcell.Color
func RGBToTcell(c render.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Surface) style(c render.RGB) tcell.Style {
	st, ok := s.styles[c]
	if !ok {
		st = tcell.StyleDefault.Background(RGBToTcell(c)).Foreground(RGBToTcell(c))
		s.styles[c] = st
	}
	return st
}

// DrawVerticalSegment fills rows [yStart, yStart+length) of column
// Rows outside the drawable area are dropped by the screen
func (s *Surface) DrawVerticalSegment(column, yStart, length int, color render.RGB) {
	st := s.style(color)
	for y := yStart; y < yStart+length; y++ {
		s.screen.SetContent(column, y, ' ', nil, st)
	}
}

// Size returns the drawable area, excluding the status row
func (s *Surface) Size() (int, int) {
	w, h := s.screen.Size()
	if s.status && h > 0 {
		h--
	}
	return w, h
}

// DrawStatus writes text on the bottom row, clipped to the width
func (s *Surface) DrawStatus(text string) {
	if !s.status {
		return
	}
	w, h := s.screen.Size()
	if h == 0 {
		return
	}
	y := h - 1
	st := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range text {
		if x >= w {
			break
		}
		s.screen.SetContent(x, y, r, nil, st)
		x++
	}
	for ; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, st)
	}
}

// Show flushes the frame to the terminal
func (s *Surface) Show() { s.screen.Show() }

// Sync forces a full redraw after a resize
func (s *Surface) Sync() { s.screen.Sync() }

// KeyFromEvent converts a tcell key event to an input key
func KeyFromEvent(ev *tcell.EventKey) (input.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.RuneKey(ev.Rune()), true
	case tcell.KeyUp:
		return input.NamedKey("up"), true
	case tcell.KeyDown:
		return input.NamedKey("down"), true
	case tcell.KeyLeft:
		return input.NamedKey("left"), true
	case tcell.KeyRight:
		return input.NamedKey("right"), true
	case tcell.KeyEscape:
		return input.NamedKey("esc"), true
	case tcell.KeyEnter:
		return input.NamedKey("enter"), true
	case tcell.KeyTab:
		return input.NamedKey("tab"), true
	case tcell.KeyCtrlC:
		return input.NamedKey("ctrl+c"), true
	}
	return input.Key{}, false
}

// HandleEvent routes a polled event: keys go to the key state
// Returns true when the event was a resize
func HandleEvent(ev tcell.Event, keys *input.KeyState) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if k, ok := KeyFromEvent(ev); ok {
			keys.Press(k, ev.When())
		}
	case *tcell.EventResize:
		return true
	}
	return false
}

// Pump forwards screen events to a channel until the screen is finalized
func Pump(screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		events <- ev
	}
}
