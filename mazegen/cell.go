package mazegen

// Wall-opening bits for a single cell. A set bit means the wall on that side
// is open and a passage exists.
const (
	WallLeft   uint8 = 1 << 0
	WallTop    uint8 = 1 << 1
	WallRight  uint8 = 1 << 2
	WallBottom uint8 = 1 << 3
)

// unvisited is the sentinel distance for cells growth has not reached yet.
const unvisited = -1

// cell is the mutable per-position record used during growth. All cells are
// allocated once up front and mutated in place; none is ever reallocated.
type cell struct {
	// walls is the 4-bit opening mask. Bits are only ever set, never cleared.
	walls uint8
	// distance from the start cell, set exactly once when the cell is first
	// reached.
	distance int
	// remainingSides counts grid-adjacent neighbors that are still
	// unvisited. It starts at the cell's grid degree and reaches zero when
	// every neighbor has been visited, whether or not a wall was opened.
	remainingSides int
}
