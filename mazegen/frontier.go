package mazegen

// frontierQueue is the FIFO of visited cells awaiting expansion. The growth
// loop drains it head-first and appends newly reached cells at the tail.
type frontierQueue struct {
	cells []int
	head  int
}

func newFrontierQueue(capacity int) *frontierQueue {
	return &frontierQueue{cells: make([]int, 0, capacity)}
}

func (q *frontierQueue) push(index int) {
	q.cells = append(q.cells, index)
}

// pop removes and returns the head. Callers must check empty first.
func (q *frontierQueue) pop() int {
	index := q.cells[q.head]
	q.head++
	return index
}

func (q *frontierQueue) empty() bool {
	return q.head >= len(q.cells)
}
