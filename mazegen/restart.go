package mazegen

import "container/heap"

// restartSelector supplies a fallback seed cell when the frontier drains
// before every cell is visited. Entries are ordered by descending distance
// and may be stale by the time they are polled; fallback re-checks the live
// remainingSides count instead of removing entries eagerly.
type restartSelector struct {
	entries restartHeap
	cells   []cell
}

type restartEntry struct {
	index    int
	distance int
}

type restartHeap []restartEntry

func (h restartHeap) Len() int           { return len(h) }
func (h restartHeap) Less(i, j int) bool { return h[i].distance > h[j].distance }
func (h restartHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *restartHeap) Push(x any) {
	*h = append(*h, x.(restartEntry))
}

func (h *restartHeap) Pop() any {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

func newRestartSelector(cells []cell) *restartSelector {
	return &restartSelector{
		entries: make(restartHeap, 0, len(cells)),
		cells:   cells,
	}
}

// add registers a newly visited cell keyed by its distance from the start.
func (r *restartSelector) add(index, distance int) {
	heap.Push(&r.entries, restartEntry{index: index, distance: distance})
}

// fallback returns the farthest registered cell that still borders unvisited
// territory. A cell with more than one remaining side is kept for future
// fallbacks; a cell with exactly one remaining side is consumed by this use
// and removed; a fully surrounded cell is discarded and the next entry
// inspected. ok is false only once the structure is exhausted, which cannot
// happen while unvisited cells remain.
func (r *restartSelector) fallback() (index int, ok bool) {
	for len(r.entries) > 0 {
		top := r.entries[0]
		switch sides := r.cells[top.index].remainingSides; {
		case sides > 1:
			return top.index, true
		case sides == 1:
			heap.Pop(&r.entries)
			return top.index, true
		default:
			heap.Pop(&r.entries)
		}
	}
	return 0, false
}
