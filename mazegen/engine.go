package mazegen

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultBranchWeights is the relative likelihood of a cell branching into
// 0, 1, 2 or 3 of its unvisited neighbors. The weights are relative only;
// they need not sum to one.
var DefaultBranchWeights = [4]float64{0.3, 0.45, 0.2, 0.05}

// Config holds the generation parameters. The same Config, seed included,
// always yields the same maze.
type Config struct {
	Width  int
	Height int
	// BranchWeights is the relative frequency of branching 0, 1, 2 or 3
	// ways. The zero value selects DefaultBranchWeights.
	BranchWeights [4]float64
	// MinLength is the minimum start-to-exit distance. Values of zero or
	// below mean min(Width, Height).
	MinLength int
	// Seed drives all randomness. Zero selects a time-based seed, making
	// the result nondeterministic.
	Seed int64
}

// engine owns the cell array for the duration of growth and orchestrates the
// frontier, the branch sampler and the restart selector into the
// visit-every-cell loop.
type engine struct {
	grid     grid
	cells    []cell
	rng      *rand.Rand
	sampler  *branchSampler
	frontier *frontierQueue
	restart  *restartSelector
	visited  int
	start    int
}

// Generate grows a perfect maze over the configured grid: a spanning tree of
// passages touching every cell, with one entrance and one exit opened on the
// border. It is fully sequential and bounded by one visit per cell.
func Generate(cfg Config) (*Maze, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}

	weights := cfg.BranchWeights
	if weights == ([4]float64{}) {
		weights = DefaultBranchWeights
	}
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight %v", ErrInvalidWeights, w)
		}
		total += w
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := newEngine(cfg.Width, cfg.Height, weights, seed)
	if err := e.grow(); err != nil {
		return nil, err
	}
	exit, err := e.openExit(cfg.MinLength)
	if err != nil {
		return nil, err
	}
	return e.result(exit, seed), nil
}

func newEngine(width, height int, weights [4]float64, seed int64) *engine {
	g := grid{width: width, height: height}
	cells := make([]cell, g.cellCount())
	for i := range cells {
		x, y := g.coords(i)
		cells[i].distance = unvisited
		cells[i].remainingSides = g.degree(x, y)
	}
	rng := rand.New(rand.NewSource(seed))
	return &engine{
		grid:     g,
		cells:    cells,
		rng:      rng,
		sampler:  newBranchSampler(weights, rng),
		frontier: newFrontierQueue(g.cellCount()),
		restart:  newRestartSelector(cells),
	}
}

// grow runs the main loop: pop a cell from the frontier (or pull a restart
// seed when it is empty), sample a branch count, and open walls into that
// many unvisited neighbors chosen uniformly without replacement.
func (e *engine) grow() error {
	e.start = e.pickStart()
	e.frontier.push(e.start)
	e.markVisited(e.start, 0)

	for e.visited < e.grid.cellCount() {
		// A restart iteration must produce at least one branch; a normal
		// iteration may legitimately branch zero times and die out.
		mustBranch := false
		if e.frontier.empty() {
			seed, ok := e.restart.fallback()
			if !ok {
				return fmt.Errorf("restart selector exhausted with %d of %d cells visited",
					e.visited, e.grid.cellCount())
			}
			e.frontier.push(seed)
			mustBranch = true
		}

		current := e.frontier.pop()
		x, y := e.grid.coords(current)
		distance := e.cells[current].distance

		var candidates [4]int
		n := 0
		for _, delta := range axisNeighbors {
			nx, ny := x+delta[0], y+delta[1]
			if !e.grid.inBounds(nx, ny) {
				continue
			}
			neighbor := e.grid.index(nx, ny)
			if e.cells[neighbor].distance == unvisited {
				candidates[n] = neighbor
				n++
			}
		}

		branches := e.sampler.sample(n)
		if mustBranch && branches == 0 {
			branches = 1
		}
		for _, next := range e.chooseBranches(candidates[:n], branches) {
			e.connect(current, next)
			e.frontier.push(next)
			e.markVisited(next, distance+1)
		}
	}
	return nil
}

// pickStart opens one outward-facing wall on a uniformly chosen border cell
// and returns its index.
func (e *engine) pickStart() int {
	var x, y int
	var wall uint8
	switch e.rng.Intn(4) {
	case 0:
		x, y, wall = 0, e.rng.Intn(e.grid.height), WallLeft
	case 1:
		x, y, wall = e.rng.Intn(e.grid.width), 0, WallTop
	case 2:
		x, y, wall = e.grid.width-1, e.rng.Intn(e.grid.height), WallRight
	default:
		x, y, wall = e.rng.Intn(e.grid.width), e.grid.height-1, WallBottom
	}
	start := e.grid.index(x, y)
	e.cells[start].walls |= wall
	return start
}

// markVisited records the cell's distance, registers it with the restart
// selector, and decrements remainingSides on every in-bounds neighbor,
// whether or not a wall was opened toward it.
func (e *engine) markVisited(index, distance int) {
	e.visited++
	e.cells[index].distance = distance
	e.restart.add(index, distance)

	x, y := e.grid.coords(index)
	for _, delta := range axisNeighbors {
		nx, ny := x+delta[0], y+delta[1]
		if e.grid.inBounds(nx, ny) {
			e.cells[e.grid.index(nx, ny)].remainingSides--
		}
	}
}

// chooseBranches selects k candidates uniformly without replacement by a
// partial shuffle. The candidate slice is reordered in place.
func (e *engine) chooseBranches(candidates []int, k int) []int {
	for i := 0; i < k; i++ {
		j := i + e.rng.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
	return candidates[:k]
}

// connect opens the shared wall between two adjacent cells from both sides.
func (e *engine) connect(a, b int) {
	ax, ay := e.grid.coords(a)
	bx, by := e.grid.coords(b)
	switch {
	case bx < ax:
		e.cells[a].walls |= WallLeft
		e.cells[b].walls |= WallRight
	case bx > ax:
		e.cells[a].walls |= WallRight
		e.cells[b].walls |= WallLeft
	case by < ay:
		e.cells[a].walls |= WallTop
		e.cells[b].walls |= WallBottom
	default:
		e.cells[a].walls |= WallBottom
		e.cells[b].walls |= WallTop
	}
}

// openExit opens an outward wall on a uniformly chosen border cell whose
// distance strictly exceeds the minimum exit distance. The outward side is
// resolved by edge membership in left, top, right, bottom priority order.
func (e *engine) openExit(minLength int) (int, error) {
	minDistance := minLength
	if minDistance <= 0 {
		minDistance = min(e.grid.width, e.grid.height)
	}

	eligible := make([]int, 0, 2*(e.grid.width+e.grid.height))
	for y := 0; y < e.grid.height; y++ {
		for x := 0; x < e.grid.width; x++ {
			if e.grid.isBorder(x, y) && e.cells[e.grid.index(x, y)].distance > minDistance {
				eligible = append(eligible, e.grid.index(x, y))
			}
		}
	}
	if len(eligible) == 0 {
		return 0, fmt.Errorf("%w: minimum distance %d", ErrNoQualifyingExit, minDistance)
	}

	exit := eligible[e.rng.Intn(len(eligible))]
	x, y := e.grid.coords(exit)
	switch {
	case x == 0:
		e.cells[exit].walls |= WallLeft
	case y == 0:
		e.cells[exit].walls |= WallTop
	case x == e.grid.width-1:
		e.cells[exit].walls |= WallRight
	default:
		e.cells[exit].walls |= WallBottom
	}
	return exit, nil
}

// result copies the finalized wall and distance arrays into an immutable
// Maze value.
func (e *engine) result(exit int, seed int64) *Maze {
	walls := make([]uint8, len(e.cells))
	distances := make([]int, len(e.cells))
	for i := range e.cells {
		walls[i] = e.cells[i].walls
		distances[i] = e.cells[i].distance
	}
	startX, startY := e.grid.coords(e.start)
	exitX, exitY := e.grid.coords(exit)
	return &Maze{
		Width:     e.grid.width,
		Height:    e.grid.height,
		Walls:     walls,
		Distances: distances,
		Start:     Position{X: startX, Y: startY},
		Exit:      Position{X: exitX, Y: exitY},
		Seed:      seed,
	}
}
