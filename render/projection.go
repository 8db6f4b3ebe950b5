// Package render turns ray hits into vertical column spans
package render

import (
	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/vmath"
)

// Surface receives vertical segments, one column at a time
// Zero-length segments are still delivered
type Surface interface {
	DrawVerticalSegment(column, yStart, length int, color RGB)
}

// Palette holds the background and the two wall shades
type Palette struct {
	Ceiling RGB
	Floor   RGB
	WallX   RGB // walls hit on a vertical grid line
	WallY   RGB // walls hit on a horizontal grid line
}

// DefaultPalette matches the original panel colors
var DefaultPalette = Palette{
	Ceiling: RGBBlack,
	Floor:   RGBBlack,
	WallX:   RGBGreen,
	WallY:   RGBBlue,
}

// Wall returns the wall color for a side
func (p Palette) Wall(s raycast.Side) RGB {
	if s == raycast.SideX {
		return p.WallX
	}
	return p.WallY
}

// Span is a half-open vertical run [Start, Start+Length)
type Span struct {
	Start, Length int
}

// End returns the first row past the span
func (s Span) End() int { return s.Start + s.Length }

// Column is one projected screen column
type Column struct {
	Ceiling Span
	Wall    Span
	Floor   Span
	Color   RGB
}

// LineHeight projects a perpendicular distance onto a screen of height screenH
// Result is in [0, screenH] and non-increasing in dist
func LineHeight(dist vmath.Q16, screenH int) int {
	if screenH <= 0 {
		return 0
	}
	h := int((int64(screenH) * int64(vmath.Reciprocal(dist))) >> vmath.Q16Shift)
	return max(0, min(h, screenH))
}

// Project lays out ceiling, wall and floor for one hit
// The three spans are contiguous and cover [0, screenH)
func Project(hit raycast.Hit, screenH int, p Palette) Column {
	screenH = max(screenH, 0)
	h := LineHeight(hit.Distance, screenH)
	start := max(screenH/2-h/2, 0)
	end := min(start+h, screenH)

	return Column{
		Ceiling: Span{Start: 0, Length: start},
		Wall:    Span{Start: start, Length: end - start},
		Floor:   Span{Start: end, Length: screenH - end},
		Color:   p.Wall(hit.Side),
	}
}

// DrawColumn issues the three segments of a projected column
func DrawColumn(s Surface, col int, c Column, p Palette) {
	s.DrawVerticalSegment(col, c.Ceiling.Start, c.Ceiling.Length, p.Ceiling)
	s.DrawVerticalSegment(col, c.Wall.Start, c.Wall.Length, c.Color)
	s.DrawVerticalSegment(col, c.Floor.Start, c.Floor.Length, p.Floor)
}
