package mazegen

// grid does pure index arithmetic over a width-by-height rectangle. It owns
// no cell data; cells are addressed row-major by linear index.
type grid struct {
	width  int
	height int
}

func (g grid) cellCount() int {
	return g.width * g.height
}

// index transforms coordinates to a linear index.
func (g grid) index(x, y int) int {
	return g.width*y + x
}

// coords is the inverse of index.
func (g grid) coords(i int) (int, int) {
	return i % g.width, i / g.width
}

func (g grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g grid) isBorder(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// degree returns the number of in-bounds neighbors a cell has: 2 at corners,
// 3 along edges, 4 in the interior. Degenerate single-row or single-column
// grids yield lower degrees.
func (g grid) degree(x, y int) int {
	d := 4
	if x == 0 {
		d--
	}
	if x == g.width-1 {
		d--
	}
	if y == 0 {
		d--
	}
	if y == g.height-1 {
		d--
	}
	return d
}

// axisNeighbors lists the coordinate deltas in the fixed enumeration order
// left, right, top, bottom. Growth reproducibility for a given seed depends
// on this order never changing.
var axisNeighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
