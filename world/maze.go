package world

import (
	"math/rand"
	"time"
)

// Point is an integer cell coordinate
type Point struct {
	X, Y int
}

// MazeConfig controls GenerateMaze
type MazeConfig struct {
	Width, Height int

	// Braiding: 0.0 (perfect maze) to 1.0 (no dead ends)
	// Higher values add cycles; plaza and pillar constraints take precedence
	Braiding float64

	Seed int64 // 0 = time-based
}

// Maze is a generated map with a spawn cell
type Maze struct {
	Grid  *Grid
	Start Point
}

// GenerateMaze carves a recursive-backtracker maze and braids dead ends
// The outer ring is always wall so every ray terminates on a hit
func GenerateMaze(cfg MazeConfig) (*Maze, error) {
	rows := ensureOdd(min(cfg.Height, MaxDimension))
	cols := ensureOdd(min(cfg.Width, MaxDimension))

	walls := make([][]bool, rows)
	for i := range walls {
		walls[i] = make([]bool, cols)
		for j := range walls[i] {
			walls[i][j] = true
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	start := Point{1, 1}
	carve(walls, start, rng)

	if cfg.Braiding > 0 {
		braid(walls, cfg.Braiding, rng)
	}

	cells := make([]uint8, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if walls[y][x] {
				cells = append(cells, 1)
			} else {
				cells = append(cells, Empty)
			}
		}
	}

	g, err := New(cols, rows, cells)
	if err != nil {
		return nil, err
	}
	return &Maze{Grid: g, Start: start}, nil
}

// --- Carving ---

func carve(walls [][]bool, start Point, rng *rand.Rand) {
	rows, cols := len(walls), len(walls[0])

	stack := []Point{start}
	walls[start.Y][start.X] = false

	dirs := []Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]Point, 0, 4)

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Keep a one cell wall border
			if nx > 0 && nx < cols-1 && ny > 0 && ny < rows-1 && walls[ny][nx] {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		walls[curr.Y+d.Y/2][curr.X+d.X/2] = false
		next := Point{curr.X + d.X, curr.Y + d.Y}
		walls[next.Y][next.X] = false
		stack = append(stack, next)
	}
}

// braid opens a wall beside some dead ends, creating loops
func braid(walls [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(walls), len(walls[0])
	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	for y := 1; y < rows-1; y += 2 {
		for x := 1; x < cols-1; x += 2 {
			if walls[y][x] {
				continue
			}

			exits := 0
			for _, d := range ortho {
				if !walls[y+d.Y][x+d.X] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]Point, 0, 4)
			for _, d := range ortho {
				nx, ny := x+2*d.X, y+2*d.Y
				wx, wy := x+d.X, y+d.Y
				// Interior walls only; the border ring stays intact
				if wx <= 0 || wx >= cols-1 || wy <= 0 || wy >= rows-1 {
					continue
				}
				if !walls[ny][nx] && walls[wy][wx] && canOpen(walls, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Intn(len(candidates))]
				walls[c.Y][c.X] = false
			}
		}
	}
}

// canOpen rejects openings that would create a 2x2 plaza or an isolated pillar
func canOpen(walls [][]bool, x, y int) bool {
	rows, cols := len(walls), len(walls[0])

	open := func(tx, ty int) bool {
		if tx < 0 || tx >= cols || ty < 0 || ty >= rows {
			return false
		}
		return !walls[ty][tx]
	}

	// Plazas
	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return false
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return false
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return false
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return false
	}

	// Pillars
	ortho := []Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for _, d := range ortho {
		nx, ny := x+d.X, y+d.Y
		if nx < 0 || nx >= cols || ny < 0 || ny >= rows || !walls[ny][nx] {
			continue
		}
		links := 0
		for _, d2 := range ortho {
			mx, my := nx+d2.X, ny+d2.Y
			if mx == x && my == y {
				continue
			}
			if mx >= 0 && mx < cols && my >= 0 && my < rows && walls[my][mx] {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}

	return true
}

func ensureOdd(n int) int {
	if n < 3 {
		return 3
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
