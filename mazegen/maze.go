package mazegen

import "strings"

// Position identifies a cell by its grid coordinates.
type Position struct {
	X int
	Y int
}

// Maze is the finalized generation result: one 4-bit wall-opening mask per
// cell plus the distance field produced as a byproduct of growth. It is
// handed off read-only; nothing mutates it after Generate returns.
type Maze struct {
	Width  int
	Height int
	// Walls holds width*height masks row-major. See the Wall* bit constants.
	Walls []uint8
	// Distances holds the distance from the start for every cell.
	Distances []int
	Start     Position
	Exit      Position
	// Seed is the effective RNG seed; replaying it reproduces this maze
	// exactly.
	Seed int64
}

// At returns the wall mask of the cell at (x, y).
func (m *Maze) At(x, y int) uint8 {
	return m.Walls[m.Width*y+x]
}

// DistanceAt returns the start distance of the cell at (x, y).
func (m *Maze) DistanceAt(x, y int) int {
	return m.Distances[m.Width*y+x]
}

// wallGlyphs maps each wall mask to a box-drawing rune. Index 0 is a fully
// closed cell, 15 a cell open on all four sides.
var wallGlyphs = [16]rune{
	'●', '╸', '╹', '┛',
	'╺', '━', '┗', '┻',
	'╻', '┓', '┃', '┫',
	'┏', '┳', '┣', '╋',
}

// String renders the maze with one glyph per cell, for terminal and debug
// output. The PNG renderer is the authoritative visual form.
func (m *Maze) String() string {
	var b strings.Builder
	b.Grow((m.Width*3 + 1) * m.Height)
	i := 0
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			b.WriteRune(wallGlyphs[m.Walls[i]])
			i++
		}
		b.WriteByte('\n')
	}
	return b.String()
}
