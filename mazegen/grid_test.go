package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridIndexing(t *testing.T) {
	g := grid{width: 5, height: 3}

	assert.Equal(t, 15, g.cellCount())
	assert.Equal(t, 0, g.index(0, 0))
	assert.Equal(t, 7, g.index(2, 1))
	assert.Equal(t, 14, g.index(4, 2))

	for i := 0; i < g.cellCount(); i++ {
		x, y := g.coords(i)
		assert.Equal(t, i, g.index(x, y))
	}
}

func TestGridBounds(t *testing.T) {
	g := grid{width: 4, height: 4}

	assert.True(t, g.inBounds(0, 0))
	assert.True(t, g.inBounds(3, 3))
	assert.False(t, g.inBounds(-1, 0))
	assert.False(t, g.inBounds(0, 4))
	assert.False(t, g.inBounds(4, 0))
}

func TestGridBorderAndDegree(t *testing.T) {
	g := grid{width: 4, height: 3}

	assert.True(t, g.isBorder(0, 1))
	assert.True(t, g.isBorder(2, 0))
	assert.False(t, g.isBorder(1, 1))

	assert.Equal(t, 2, g.degree(0, 0))
	assert.Equal(t, 2, g.degree(3, 2))
	assert.Equal(t, 3, g.degree(1, 0))
	assert.Equal(t, 4, g.degree(1, 1))

	// Degenerate strip: every cell sits on two opposite borders at once.
	strip := grid{width: 6, height: 1}
	assert.Equal(t, 1, strip.degree(0, 0))
	assert.Equal(t, 2, strip.degree(3, 0))
}

func TestFrontierQueueFIFO(t *testing.T) {
	q := newFrontierQueue(4)
	assert.True(t, q.empty())

	q.push(3)
	q.push(1)
	q.push(2)
	assert.Equal(t, 3, q.pop())
	assert.Equal(t, 1, q.pop())
	q.push(9)
	assert.Equal(t, 2, q.pop())
	assert.Equal(t, 9, q.pop())
	assert.True(t, q.empty())
}
