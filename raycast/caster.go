// Package raycast casts one ray per screen column through a tile grid
package raycast

import (
	"github.com/lixenwraith/fixcast/camera"
	"github.com/lixenwraith/fixcast/vmath"
	"github.com/lixenwraith/fixcast/world"
)

// Side is the grid-line orientation a ray crossed last
type Side uint8

const (
	SideX Side = iota // crossed a vertical line (x = k)
	SideY             // crossed a horizontal line (y = k)
)

func (s Side) String() string {
	if s == SideX {
		return "x"
	}
	return "y"
}

// Hit is the result of one column's ray
// Distance is perpendicular to the camera plane; when InBounds is false the
// ray left the grid and Distance is vmath.Q16Max
type Hit struct {
	CellX, CellY int
	Side         Side
	Distance     vmath.Q16
	InBounds     bool
	Steps        int
}

// CastRay walks from pos along rayDir until a wall or the grid edge
func CastRay(g *world.Grid, pos, rayDir vmath.Vec2) Hit {
	t := NewTraverser(pos, rayDir)
	state := t.Run(g)
	x, y := t.Pos()
	return Hit{
		CellX:    x,
		CellY:    y,
		Side:     t.Side(),
		Distance: t.PerpDistance(),
		InBounds: state == StateHit,
		Steps:    t.Steps(),
	}
}

// ColumnTable returns cameraX for every column of a screen width wide:
// (2c - (width-1)) / (width-1), from -1 at column 0 to +1 at the last column
// A single column looks straight ahead
func ColumnTable(width int) []vmath.Q16 {
	if width < 1 {
		width = 1
	}
	table := make([]vmath.Q16, width)
	if width == 1 {
		return table
	}

	span := vmath.Q16FromInt(width - 1)
	for c := range table {
		table[c] = vmath.Q16FromInt(2*c - (width - 1)).Div(span)
	}
	return table
}

// Caster owns the grid and the per-width column table
type Caster struct {
	grid    *world.Grid
	columns []vmath.Q16
}

// NewCaster builds a caster for a screen of the given width
func NewCaster(g *world.Grid, width int) *Caster {
	return &Caster{
		grid:    g,
		columns: ColumnTable(width),
	}
}

// Grid returns the map being cast against
func (c *Caster) Grid() *world.Grid { return c.grid }

// Width returns the number of columns
func (c *Caster) Width() int { return len(c.columns) }

// Resize rebuilds the column table; a no-op when the width is unchanged
func (c *Caster) Resize(width int) {
	if width == len(c.columns) {
		return
	}
	c.columns = ColumnTable(width)
}

// CameraX returns the plane offset of a column, out-of-range columns clamp to the edges
func (c *Caster) CameraX(col int) vmath.Q16 {
	col = max(0, min(col, len(c.columns)-1))
	return c.columns[col]
}

// RayDir returns Dir + Plane*cameraX for a column
func (c *Caster) RayDir(cam *camera.Camera, col int) vmath.Vec2 {
	return cam.Dir.MulAdd(cam.Plane, c.CameraX(col))
}

// Column casts the ray for one screen column
func (c *Caster) Column(cam *camera.Camera, col int) Hit {
	return CastRay(c.grid, cam.Pos, c.RayDir(cam, col))
}
