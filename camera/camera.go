// Package camera holds the viewer pose and the movement model
package camera

import (
	"github.com/lixenwraith/fixcast/vmath"
	"github.com/lixenwraith/fixcast/world"
)

// Turn directions for Rotate
// Left swings the view toward the left screen edge (column 0)
const (
	TurnLeft  = -1
	TurnRight = 1
)

// Camera is the viewer: position, unit facing direction and the projection plane
// Plane is always Perpendicular(Dir) scaled by the field of view
type Camera struct {
	Pos   vmath.Vec2
	Dir   vmath.Vec2
	Plane vmath.Vec2

	fov vmath.Q16
}

// Move reports which axes of a movement step were rejected by collision
type Move struct {
	BlockedX bool
	BlockedY bool
}

// Blocked is true when either axis was rejected
func (m Move) Blocked() bool { return m.BlockedX || m.BlockedY }

// New places a camera at pos facing headingDeg (0 = +X, 90 = +Y)
func New(pos vmath.Vec2, headingDeg int, fov vmath.Q16) *Camera {
	c := &Camera{
		Pos: pos,
		Dir: vmath.V2(vmath.CosDeg(headingDeg), vmath.SinDeg(headingDeg)),
		fov: fov,
	}
	c.updatePlane()
	return c
}

// FOV returns the plane scale
func (c *Camera) FOV() vmath.Q16 { return c.fov }

// MoveForward steps along Dir with sliding collision
func (c *Camera) MoveForward(step vmath.Q16, g *world.Grid) Move {
	return c.move(c.Dir.Scale(step), g)
}

// MoveBackward steps against Dir with sliding collision
func (c *Camera) MoveBackward(step vmath.Q16, g *world.Grid) Move {
	return c.move(c.Dir.Scale(step.Neg()), g)
}

// move commits each axis independently so the camera slides along walls
// X is tested against the current row, Y against the possibly updated column
func (c *Camera) move(delta vmath.Vec2, g *world.Grid) Move {
	var m Move

	newX := c.Pos.X.AddSat(delta.X)
	if g.Blocked(newX.Int(), c.Pos.Y.Int()) {
		m.BlockedX = delta.X != 0
	} else {
		c.Pos.X = newX
	}

	newY := c.Pos.Y.AddSat(delta.Y)
	if g.Blocked(c.Pos.X.Int(), newY.Int()) {
		m.BlockedY = delta.Y != 0
	} else {
		c.Pos.Y = newY
	}

	return m
}

// Rotate turns the camera by stepDeg in the direction of sign
// Dir is renormalized after every turn to stop fixed-point drift
func (c *Camera) Rotate(stepDeg, sign int) {
	deg := stepDeg
	if sign < 0 {
		deg = -stepDeg
	}
	c.Dir = c.Dir.RotateDeg(deg).Normalize()
	c.updatePlane()
}

func (c *Camera) updatePlane() {
	c.Plane = c.Dir.Perpendicular().Scale(c.fov)
}
