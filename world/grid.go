package world

import (
	"fmt"
	"strings"
)

// MaxDimension bounds grid width and height so every cell coordinate,
// and one cell of overshoot, fits the Q15.16 integer part
const MaxDimension = 1024

// Cell values: 0 is passable, any positive value is a wall id
const Empty uint8 = 0

// Grid is an immutable row-major tile map
type Grid struct {
	width, height int
	cells         []uint8
}

// DefaultRows is the stock 10x10 room with a small interior wall block
var DefaultRows = []string{
	"1111111111",
	"1000000001",
	"1000000001",
	"1000000001",
	"1000000001",
	"1000010101",
	"1000011101",
	"1000010001",
	"1000000001",
	"1111111111",
}

// Default returns the stock map
func Default() *Grid {
	g, err := Parse(DefaultRows)
	if err != nil {
		panic(err)
	}
	return g
}

// New builds a grid from cells in row-major order
func New(width, height int, cells []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("grid %dx%d exceeds max dimension %d", width, height, MaxDimension)
	}
	if len(cells) != width*height {
		return nil, fmt.Errorf("grid %dx%d needs %d cells, got %d", width, height, width*height, len(cells))
	}
	c := make([]uint8, len(cells))
	copy(c, cells)
	return &Grid{width: width, height: height, cells: c}, nil
}

// Parse reads one string per row, top to bottom
// '0' '.' ' ' are empty; '1'-'9' are wall ids; '#' is wall id 1
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("map has no rows")
	}
	width := len(rows[0])
	cells := make([]uint8, 0, width*len(rows))
	for y, row := range rows {
		row = strings.TrimRight(row, "\r")
		if len(row) != width {
			return nil, fmt.Errorf("map row %d has width %d, want %d", y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			v, err := parseCell(row[x])
			if err != nil {
				return nil, fmt.Errorf("map cell (%d,%d): %w", x, y, err)
			}
			cells = append(cells, v)
		}
	}
	return New(width, len(rows), cells)
}

func parseCell(c byte) (uint8, error) {
	switch {
	case c == '0' || c == '.' || c == ' ':
		return Empty, nil
	case c >= '1' && c <= '9':
		return c - '0', nil
	case c == '#':
		return 1, nil
	}
	return 0, fmt.Errorf("invalid cell %q", c)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a cell
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the cell value and whether (x, y) is inside the grid
func (g *Grid) At(x, y int) (uint8, bool) {
	if !g.InBounds(x, y) {
		return 0, false
	}
	return g.cells[y*g.width+x], true
}

// Blocked reports whether a body may not occupy (x, y)
// Out-of-grid cells are blocked
func (g *Grid) Blocked(x, y int) bool {
	v, ok := g.At(x, y)
	return !ok || v != Empty
}

// String renders the grid with '#' for walls and '.' for floor
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Empty {
				b.WriteByte('.')
			} else {
				b.WriteByte('#')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
