package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/fixcast/raycast"
	"github.com/lixenwraith/fixcast/vmath"
)

func TestPixelBuffer_Segment(t *testing.T) {
	b := NewPixelBuffer(4, 8)
	require.Len(t, b.Pix(), 4*8*4)
	assert.Equal(t, byte(0xff), b.Pix()[3], "opaque")

	b.DrawVerticalSegment(2, 3, 2, RGBGreen)
	assert.Equal(t, RGBBlack, b.At(2, 2))
	assert.Equal(t, RGBGreen, b.At(2, 3))
	assert.Equal(t, RGBGreen, b.At(2, 4))
	assert.Equal(t, RGBBlack, b.At(2, 5))
	assert.Equal(t, RGBBlack, b.At(1, 3))
}

func TestPixelBuffer_Clips(t *testing.T) {
	b := NewPixelBuffer(4, 8)
	assert.NotPanics(t, func() {
		b.DrawVerticalSegment(-1, 0, 8, RGBBlue)
		b.DrawVerticalSegment(4, 0, 8, RGBBlue)
		b.DrawVerticalSegment(0, -4, 6, RGBBlue)
		b.DrawVerticalSegment(1, 6, 100, RGBBlue)
		b.DrawVerticalSegment(3, 0, 0, RGBBlue)
	})
	assert.Equal(t, RGBBlue, b.At(0, 0))
	assert.Equal(t, RGBBlue, b.At(0, 1))
	assert.Equal(t, RGBBlack, b.At(0, 2))
	assert.Equal(t, RGBBlue, b.At(1, 7))
	assert.Equal(t, RGBBlack, b.At(3, 0))
	assert.Equal(t, RGBBlack, b.At(9, 9))
}

func TestPixelBuffer_FullColumn(t *testing.T) {
	const h = 128
	b := NewPixelBuffer(1, h)
	hit := raycast.Hit{Side: raycast.SideX, Distance: vmath.Q16FromFloat(4.5), InBounds: true}
	c := Project(hit, h, DefaultPalette)
	DrawColumn(b, 0, c, DefaultPalette)

	walls := 0
	for y := 0; y < h; y++ {
		if b.At(0, y) == RGBGreen {
			walls++
		}
	}
	assert.Equal(t, c.Wall.Length, walls)

	b.Resize(2, 3)
	w, hh := b.Size()
	assert.Equal(t, 2, w)
	assert.Equal(t, 3, hh)
	assert.Equal(t, RGBBlack, b.At(0, 0))
}
