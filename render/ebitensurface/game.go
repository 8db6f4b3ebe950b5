// Package ebitensurface runs the frame loop inside an ebiten window
package ebitensurface

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/fixcast/engine"
	"github.com/lixenwraith/fixcast/input"
	"github.com/lixenwraith/fixcast/render"
)

// Game adapts engine.Loop to ebiten.Game
// Update renders one full frame into the pixel buffer, Draw uploads it
type Game struct {
	loop   *engine.Loop
	buffer *render.PixelBuffer
	keys   *input.KeyState
	keymap *input.Keymap

	// Status returns the debug overlay text; nil disables the overlay
	Status func() string

	pressed []ebiten.Key
}

// NewGame wires a loop that draws into buffer and polls keys
func NewGame(loop *engine.Loop, buffer *render.PixelBuffer, keys *input.KeyState, keymap *input.Keymap) *Game {
	return &Game{
		loop:   loop,
		buffer: buffer,
		keys:   keys,
		keymap: keymap,
	}
}

func (g *Game) Update() error {
	g.pressed = inpututil.AppendPressedKeys(g.pressed[:0])

	var a input.Actions
	for _, k := range g.pressed {
		if key, ok := KeyFromEbiten(k); ok {
			a |= g.keymap.Lookup(key)
		}
	}
	g.keys.Set(a)

	if ebiten.IsWindowBeingClosed() {
		g.keys.RequestQuit()
	}

	if !g.loop.RenderFrame() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.buffer.Pix())
	if g.Status != nil {
		ebitenutil.DebugPrint(screen, g.Status())
	}
}

func (g *Game) Layout(_, _ int) (int, int) { return g.buffer.Size() }

// Run opens a window scaled up from the render size and blocks until quit
func Run(g *Game, title string, scale int) error {
	w, h := g.buffer.Size()
	ebiten.SetWindowSize(w*max(scale, 1), h*max(scale, 1))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

// KeyFromEbiten converts an ebiten key to an input key
// Letters and digits become rune keys; a fixed set of named keys is recognised
func KeyFromEbiten(k ebiten.Key) (input.Key, bool) {
	switch k {
	case ebiten.KeyArrowUp:
		return input.NamedKey("up"), true
	case ebiten.KeyArrowDown:
		return input.NamedKey("down"), true
	case ebiten.KeyArrowLeft:
		return input.NamedKey("left"), true
	case ebiten.KeyArrowRight:
		return input.NamedKey("right"), true
	case ebiten.KeyEscape:
		return input.NamedKey("esc"), true
	case ebiten.KeyEnter:
		return input.NamedKey("enter"), true
	case ebiten.KeyTab:
		return input.NamedKey("tab"), true
	case ebiten.KeySpace:
		return input.RuneKey(' '), true
	case ebiten.KeyBackslash:
		return input.RuneKey('\\'), true
	}

	name := strings.TrimPrefix(k.String(), "Digit")
	if len(name) == 1 {
		return input.RuneKey(rune(name[0])), true
	}
	return input.Key{}, false
}
