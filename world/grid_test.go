package world

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Layout(t *testing.T) {
	g := Default()
	require.Equal(t, 10, g.Width())
	require.Equal(t, 10, g.Height())

	// Closed border
	for i := 0; i < 10; i++ {
		assert.True(t, g.Blocked(i, 0), "top %d", i)
		assert.True(t, g.Blocked(i, 9), "bottom %d", i)
		assert.True(t, g.Blocked(0, i), "left %d", i)
		assert.True(t, g.Blocked(9, i), "right %d", i)
	}

	// Interior block
	for _, p := range []Point{{5, 5}, {5, 6}, {5, 7}, {6, 6}, {7, 5}, {7, 6}} {
		v, ok := g.At(p.X, p.Y)
		require.True(t, ok)
		assert.Equal(t, uint8(1), v, "cell %v", p)
	}

	// Start pose cell is open
	assert.False(t, g.Blocked(2, 7))
	assert.False(t, g.Blocked(4, 4))
}

func TestGrid_OutOfRange(t *testing.T) {
	g := Default()
	for _, p := range []Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {-100, 1 << 20}} {
		v, ok := g.At(p.X, p.Y)
		assert.False(t, ok, "cell %v", p)
		assert.Equal(t, uint8(0), v)
		assert.True(t, g.Blocked(p.X, p.Y))
	}
}

func TestParse(t *testing.T) {
	g, err := Parse([]string{
		"###",
		"#.2",
		"1 #",
	})
	require.NoError(t, err)

	v, _ := g.At(2, 1)
	assert.Equal(t, uint8(2), v)
	v, _ = g.At(1, 2)
	assert.Equal(t, Empty, v)
	assert.Equal(t, "###\n#.#\n#.#\n", g.String())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want string
	}{
		{"empty", nil, "no rows"},
		{"ragged", []string{"111", "11"}, "row 1"},
		{"bad cell", []string{"1x1"}, "cell (1,0)"},
		{"too wide", []string{strings.Repeat("1", MaxDimension+1)}, "exceeds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.rows)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_CopiesCells(t *testing.T) {
	cells := []uint8{1, 0, 0, 1}
	g, err := New(2, 2, cells)
	require.NoError(t, err)
	cells[1] = 9
	v, _ := g.At(1, 0)
	assert.Equal(t, Empty, v)

	_, err = New(2, 2, cells[:3])
	assert.Error(t, err)
	_, err = New(0, 2, nil)
	assert.Error(t, err)
}
