package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixcast/camera"
	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/vmath"
	"github.com/lixenwraith/fixcast/world"
)

type segment struct {
	col, start, length int
	color              RGB
}

type recordingSurface struct {
	segments []segment
}

func (r *recordingSurface) DrawVerticalSegment(column, yStart, length int, color RGB) {
	r.segments = append(r.segments, segment{column, yStart, length, color})
}

func TestLineHeight_Monotonic(t *testing.T) {
	for _, h := range []int{1, 64, 127, 128, 480} {
		prev := LineHeight(0, h)
		assert.Equal(t, h, prev)
		for raw := int32(0); raw < int32(vmath.RecipMaxDistance())+vmath.Q16One.Raw(); raw += 211 {
			cur := LineHeight(vmath.Q16FromRaw(raw), h)
			require.LessOrEqual(t, cur, prev, "h=%d raw=%d", h, raw)
			require.GreaterOrEqual(t, cur, 0)
			prev = cur
		}
		assert.Equal(t, 0, LineHeight(vmath.Q16Max, h))
	}
	assert.Equal(t, 0, LineHeight(vmath.Q16One, 0))
}

func TestLineHeight_KnownValues(t *testing.T) {
	assert.Equal(t, 128, LineHeight(vmath.Q16Half, 128))
	assert.Equal(t, 32, LineHeight(vmath.Q16FromInt(4), 128))
	assert.Equal(t, 28, LineHeight(vmath.Q16FromFloat(4.5), 128))
}

func TestProject_SpansCoverColumn(t *testing.T) {
	dists := []vmath.Q16{0, vmath.Q16Half, vmath.Q16One, vmath.Q16FromFloat(1.3), vmath.Q16FromInt(7), vmath.Q16Max}
	for _, screenH := range []int{1, 2, 5, 127, 128} {
		for _, d := range dists {
			c := Project(raycast.Hit{Distance: d, Side: raycast.SideY, InBounds: true}, screenH, DefaultPalette)

			assert.Equal(t, 0, c.Ceiling.Start)
			assert.Equal(t, c.Ceiling.End(), c.Wall.Start, "h=%d d=%v", screenH, d)
			assert.Equal(t, c.Wall.End(), c.Floor.Start, "h=%d d=%v", screenH, d)
			assert.Equal(t, screenH, c.Floor.End(), "h=%d d=%v", screenH, d)
			assert.GreaterOrEqual(t, c.Ceiling.Length, 0)
			assert.GreaterOrEqual(t, c.Wall.Length, 0)
			assert.GreaterOrEqual(t, c.Floor.Length, 0)
			assert.Equal(t, LineHeight(d, screenH), c.Wall.Length)
		}
	}
}

func TestProject_SideColor(t *testing.T) {
	x := Project(raycast.Hit{Distance: vmath.Q16One, Side: raycast.SideX}, 128, DefaultPalette)
	y := Project(raycast.Hit{Distance: vmath.Q16One, Side: raycast.SideY}, 128, DefaultPalette)
	assert.Equal(t, DefaultPalette.WallX, x.Color)
	assert.Equal(t, DefaultPalette.WallY, y.Color)
	assert.NotEqual(t, x.Color, y.Color)
}

func TestDrawColumn_ThreeSegments(t *testing.T) {
	s := &recordingSurface{}
	p := Palette{Ceiling: RGB{1, 1, 1}, Floor: RGB{2, 2, 2}, WallX: RGB{3, 3, 3}, WallY: RGB{4, 4, 4}}

	// Escaped ray still issues all three, with an empty wall
	c := Project(raycast.Hit{Distance: vmath.Q16Max}, 128, p)
	DrawColumn(s, 17, c, p)

	require.Len(t, s.segments, 3)
	assert.Equal(t, segment{17, 0, 64, p.Ceiling}, s.segments[0])
	assert.Equal(t, segment{17, 64, 0, p.WallX}, s.segments[1])
	assert.Equal(t, segment{17, 64, 64, p.Floor}, s.segments[2])
}

func TestDefaultRoomScenario(t *testing.T) {
	cam := camera.New(vmath.V2(vmath.Q16FromFloat(4.5), vmath.Q16FromFloat(4.5)), 0, vmath.Q16FromFloat(0.66))
	caster := raycast.NewCaster(world.Default(), 129)
	hit := caster.Column(cam, 64)

	h := LineHeight(hit.Distance, 128)
	assert.Positive(t, h)
	assert.LessOrEqual(t, h, LineHeight(vmath.Q16One, 128))
}

func TestOpenRoomScenario(t *testing.T) {
	g, err := world.Parse([]string{
		"1111111111",
		"1000000001",
		"1000000001",
		"1000000001",
		"1000000001",
		"1000000001",
		"1000000001",
		"1000000001",
		"1000000001",
		"1111111111",
	})
	require.NoError(t, err)

	cam := camera.New(vmath.V2(vmath.Q16FromFloat(4.5), vmath.Q16FromFloat(4.5)), 0, vmath.Q16FromFloat(0.66))
	caster := raycast.NewCaster(g, 129)
	hit := caster.Column(cam, 64)
	require.True(t, hit.InBounds)
	assert.Equal(t, 9, hit.CellX)

	c := Project(hit, 128, DefaultPalette)
	assert.Equal(t, 28, c.Wall.Length)
	assert.Equal(t, 64-14, c.Wall.Start)
	assert.Equal(t, DefaultPalette.WallX, c.Color)
	assert.Less(t, c.Wall.Length, LineHeight(vmath.Q16One, 128))
}

func TestParseRGB(t *testing.T) {
	c, err := ParseRGB("#1a2B3c")
	require.NoError(t, err)
	assert.Equal(t, RGB{0x1a, 0x2b, 0x3c}, c)
	assert.Equal(t, "#1a2b3c", c.Hex())

	_, err = ParseRGB("#12345")
	assert.Error(t, err)
	_, err = ParseRGB("#zz0000")
	assert.Error(t, err)
}
