package mazegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// interiorEdges counts open walls between adjacent cell pairs, verifying
// both sides of every shared wall agree.
func interiorEdges(t *testing.T, m *Maze) int {
	t.Helper()
	edges := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if x < m.Width-1 {
				right := m.At(x, y)&WallRight != 0
				left := m.At(x+1, y)&WallLeft != 0
				assert.Equal(t, right, left, "wall mismatch between (%d,%d) and (%d,%d)", x, y, x+1, y)
				if right {
					edges++
				}
			}
			if y < m.Height-1 {
				bottom := m.At(x, y)&WallBottom != 0
				top := m.At(x, y+1)&WallTop != 0
				assert.Equal(t, bottom, top, "wall mismatch between (%d,%d) and (%d,%d)", x, y, x, y+1)
				if bottom {
					edges++
				}
			}
		}
	}
	return edges
}

// outwardOpenings counts border walls opened toward outside the grid.
func outwardOpenings(m *Maze) int {
	openings := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			w := m.At(x, y)
			if x == 0 && w&WallLeft != 0 {
				openings++
			}
			if y == 0 && w&WallTop != 0 {
				openings++
			}
			if x == m.Width-1 && w&WallRight != 0 {
				openings++
			}
			if y == m.Height-1 && w&WallBottom != 0 {
				openings++
			}
		}
	}
	return openings
}

// reachableFromStart walks open interior walls breadth-first and returns the
// number of distinct cells reached.
func reachableFromStart(m *Maze) int {
	seen := make([]bool, m.Width*m.Height)
	start := m.Width*m.Start.Y + m.Start.X
	seen[start] = true
	queue := []int{start}
	reached := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		reached++
		x, y := current%m.Width, current/m.Width
		step := func(open bool, nx, ny int) {
			if !open || nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
				return
			}
			next := m.Width*ny + nx
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
		w := m.At(x, y)
		step(w&WallLeft != 0, x-1, y)
		step(w&WallRight != 0, x+1, y)
		step(w&WallTop != 0, x, y-1)
		step(w&WallBottom != 0, x, y+1)
	}
	return reached
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := Config{Width: 20, Height: 14, Seed: 1234}

	first, err := Generate(cfg)
	assert.NoError(t, err)
	second, err := Generate(cfg)
	assert.NoError(t, err)

	assert.Equal(t, first.Walls, second.Walls)
	assert.Equal(t, first.Distances, second.Distances)
	assert.Equal(t, first.Start, second.Start)
	assert.Equal(t, first.Exit, second.Exit)
}

func TestGenerateSpanningTree(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 99, 1234} {
		m, err := Generate(Config{Width: 16, Height: 11, Seed: seed})
		assert.NoError(t, err)

		cellCount := m.Width * m.Height
		for i, d := range m.Distances {
			assert.GreaterOrEqual(t, d, 0, "cell %d left unvisited with seed %d", i, seed)
		}
		assert.Equal(t, cellCount-1, interiorEdges(t, m), "seed %d", seed)
		assert.Equal(t, cellCount, reachableFromStart(m), "seed %d", seed)
	}
}

func TestGenerateDistanceField(t *testing.T) {
	m, err := Generate(Config{Width: 12, Height: 12, Seed: 77})
	assert.NoError(t, err)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			d := m.DistanceAt(x, y)
			if x == m.Start.X && y == m.Start.Y {
				assert.Equal(t, 0, d)
				continue
			}
			// Exactly one open wall must lead to the parent, one step
			// closer to the start.
			parents := 0
			w := m.At(x, y)
			check := func(open bool, nx, ny int) {
				if !open || nx < 0 || nx >= m.Width || ny < 0 || ny >= m.Height {
					return
				}
				nd := m.DistanceAt(nx, ny)
				assert.True(t, nd == d-1 || nd == d+1,
					"open neighbor of (%d,%d) has distance %d, cell has %d", x, y, nd, d)
				if nd == d-1 {
					parents++
				}
			}
			check(w&WallLeft != 0, x-1, y)
			check(w&WallRight != 0, x+1, y)
			check(w&WallTop != 0, x, y-1)
			check(w&WallBottom != 0, x, y+1)
			assert.Equal(t, 1, parents, "cell (%d,%d)", x, y)
		}
	}
}

func TestGenerateStartAndExit(t *testing.T) {
	m, err := Generate(Config{Width: 15, Height: 9, MinLength: 10, Seed: 5})
	if errors.Is(err, ErrNoQualifyingExit) {
		t.Skipf("seed produced no exit beyond distance 10")
	}
	assert.NoError(t, err)

	assert.Equal(t, 0, m.DistanceAt(m.Start.X, m.Start.Y))
	assert.Greater(t, m.DistanceAt(m.Exit.X, m.Exit.Y), 10)
	assert.NotEqual(t, m.Start, m.Exit)
	assert.Equal(t, 2, outwardOpenings(m))
}

func TestGenerateScenario5x5Seed42(t *testing.T) {
	m, err := Generate(Config{Width: 5, Height: 5, MinLength: -1, Seed: 42})
	if errors.Is(err, ErrNoQualifyingExit) {
		// Legal outcome: no border cell farther than min(5,5) from the start.
		return
	}
	assert.NoError(t, err)
	assert.Len(t, m.Walls, 25)
	assert.Equal(t, 24, interiorEdges(t, m))
	assert.Equal(t, 2, outwardOpenings(m))
	assert.Greater(t, m.DistanceAt(m.Exit.X, m.Exit.Y), 5)
}

func TestGenerateDegenerateStrips(t *testing.T) {
	for _, cfg := range []Config{
		{Width: 1, Height: 12, Seed: 3},
		{Width: 12, Height: 1, Seed: 3},
	} {
		m, err := Generate(cfg)
		assert.NoError(t, err, "%dx%d", cfg.Width, cfg.Height)
		cellCount := cfg.Width * cfg.Height
		assert.Equal(t, cellCount-1, interiorEdges(t, m))
		assert.Equal(t, cellCount, reachableFromStart(m))
	}
}

func TestGenerateRejectsBadConfig(t *testing.T) {
	_, err := Generate(Config{Width: 0, Height: 5, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Generate(Config{Width: 5, Height: -2, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidDimensions)

	_, err = Generate(Config{Width: 5, Height: 5, BranchWeights: [4]float64{0.5, -0.1, 0, 0}, Seed: 1})
	assert.ErrorIs(t, err, ErrInvalidWeights)
}

func TestGenerateUnsatisfiableExit(t *testing.T) {
	// A 2x2 grid has a maximum distance of 3, so a minimum of 10 can never
	// be met.
	_, err := Generate(Config{Width: 2, Height: 2, MinLength: 10, Seed: 9})
	assert.ErrorIs(t, err, ErrNoQualifyingExit)
}

func TestMazeString(t *testing.T) {
	m, err := Generate(Config{Width: 8, Height: 6, Seed: 21})
	assert.NoError(t, err)

	rendered := m.String()
	lines := 0
	for _, r := range rendered {
		if r == '\n' {
			lines++
		}
	}
	assert.Equal(t, m.Height, lines)
	for _, r := range rendered {
		if r == '\n' {
			continue
		}
		assert.Contains(t, string(wallGlyphs[:]), string(r))
	}
}
