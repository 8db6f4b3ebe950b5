package render

// PixelBuffer is an RGBA8 framebuffer Surface, row-major, 4 bytes per pixel
type PixelBuffer struct {
	width, height int
	pix           []byte
}

// NewPixelBuffer allocates an opaque black buffer
func NewPixelBuffer(width, height int) *PixelBuffer {
	b := &PixelBuffer{}
	b.Resize(width, height)
	return b
}

// Resize reallocates and clears the buffer
func (b *PixelBuffer) Resize(width, height int) {
	b.width, b.height = max(width, 0), max(height, 0)
	b.pix = make([]byte, b.width*b.height*4)
	for i := 3; i < len(b.pix); i += 4 {
		b.pix[i] = 0xff
	}
}

func (b *PixelBuffer) Size() (int, int) { return b.width, b.height }

// Pix exposes the backing slice for upload; valid until the next Resize
func (b *PixelBuffer) Pix() []byte { return b.pix }

// At returns the color at (x, y); out-of-range reads are black
func (b *PixelBuffer) At(x, y int) RGB {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return RGBBlack
	}
	i := (y*b.width + x) * 4
	return RGB{R: b.pix[i], G: b.pix[i+1], B: b.pix[i+2]}
}

// DrawVerticalSegment clips the segment to the buffer
func (b *PixelBuffer) DrawVerticalSegment(column, yStart, length int, color RGB) {
	if column < 0 || column >= b.width || length <= 0 {
		return
	}
	y0 := max(yStart, 0)
	y1 := min(yStart+length, b.height)
	for y := y0; y < y1; y++ {
		i := (y*b.width + column) * 4
		b.pix[i] = color.R
		b.pix[i+1] = color.G
		b.pix[i+2] = color.B
		b.pix[i+3] = 0xff
	}
}
