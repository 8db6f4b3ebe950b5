package raycast

import (
	"github.com/lixenwraith/fixcast/vmath"
	"github.com/lixenwraith/fixcast/world"
)

// State is the phase of a single ray walk
type State uint8

const (
	StateStepping State = iota
	StateHit
	StateOutOfBounds
)

func (s State) String() string {
	switch s {
	case StateStepping:
		return "stepping"
	case StateHit:
		return "hit"
	case StateOutOfBounds:
		return "out_of_bounds"
	}
	return "unknown"
}

// Traverser is a zero-allocation DDA iterator over grid cells along a ray
// Coordinates are Q15.16; the starting cell itself is never tested
type Traverser struct {
	mapX, mapY   int
	stepX, stepY int

	sideDistX, sideDistY   vmath.Q16
	deltaDistX, deltaDistY vmath.Q16

	side  Side
	steps int
	state State
}

// NewTraverser prepares a walk from pos along rayDir
// rayDir need not be unit length; distances come out in units of |rayDir|
func NewTraverser(pos, rayDir vmath.Vec2) Traverser {
	t := Traverser{
		mapX:       pos.X.Int(),
		mapY:       pos.Y.Int(),
		deltaDistX: vmath.Q16One.DivAbs(rayDir.X),
		deltaDistY: vmath.Q16One.DivAbs(rayDir.Y),
	}

	fracX, fracY := pos.X.Frac(), pos.Y.Frac()

	// Zero components take the positive branch: sideDist stays non-negative
	// and the axis is effectively never chosen
	t.stepX = 1
	if rayDir.X < 0 {
		t.stepX = -1
		t.sideDistX = fracX.Mul(t.deltaDistX)
	} else {
		t.sideDistX = (vmath.Q16One - fracX).Mul(t.deltaDistX)
	}

	t.stepY = 1
	if rayDir.Y < 0 {
		t.stepY = -1
		t.sideDistY = fracY.Mul(t.deltaDistY)
	} else {
		t.sideDistY = (vmath.Q16One - fracY).Mul(t.deltaDistY)
	}

	return t
}

// Next advances one cell and classifies it against g
// Once the walk has left StateStepping further calls are no-ops
func (t *Traverser) Next(g *world.Grid) State {
	if t.state != StateStepping {
		return t.state
	}

	// Ties step Y
	if t.sideDistX < t.sideDistY {
		t.sideDistX = t.sideDistX.AddSat(t.deltaDistX)
		t.mapX += t.stepX
		t.side = SideX
	} else {
		t.sideDistY = t.sideDistY.AddSat(t.deltaDistY)
		t.mapY += t.stepY
		t.side = SideY
	}
	t.steps++

	v, ok := g.At(t.mapX, t.mapY)
	switch {
	case !ok:
		t.state = StateOutOfBounds
	case v != world.Empty:
		t.state = StateHit
	}
	return t.state
}

// Run steps until the walk terminates
// Every step moves one index by one and the grid is finite, so this returns
// after at most width+height+2 steps from any in-grid origin
func (t *Traverser) Run(g *world.Grid) State {
	for t.Next(g) == StateStepping {
	}
	return t.state
}

// Pos returns the current cell
func (t *Traverser) Pos() (int, int) { return t.mapX, t.mapY }

func (t *Traverser) Side() Side   { return t.side }
func (t *Traverser) Steps() int   { return t.steps }
func (t *Traverser) State() State { return t.state }

// PerpDistance is the wall distance measured along the camera direction
// Exactly zero maps to Q16One; an unterminated or escaped walk reports Q16Max
func (t *Traverser) PerpDistance() vmath.Q16 {
	if t.state != StateHit {
		return vmath.Q16Max
	}

	var d vmath.Q16
	if t.side == SideX {
		d = t.sideDistX - t.deltaDistX
	} else {
		d = t.sideDistY - t.deltaDistY
	}

	if d == 0 {
		return vmath.Q16One
	}
	return d
}
