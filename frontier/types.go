package frontier

import "errors"

// ErrEmptyFrontier is the panic value of PopMin on an empty frontier.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// item is one heap entry: a node index, its priority and the push sequence
// number used for FIFO tie-breaking.
type item struct {
	id  int
	f   float64
	seq uint64
}

// itemHeap implements heap.Interface over items and keeps pos in sync, the
// way an IndexInQueue field would, so entries can be fixed or removed in place.
type itemHeap struct {
	items []item
	pos   []int // pos[id] = heap slot of id, or -1 when absent
}

// Len returns the number of items in the heap.
func (h *itemHeap) Len() int { return len(h.items) }

// Less orders by f ascending, then by push sequence ascending.
func (h *itemHeap) Less(i, j int) bool {
	a, b := h.items[i], h.items[j]
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// Swap swaps two elements and updates their positions.
func (h *itemHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].id] = i
	h.pos[h.items[j].id] = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type item.
func (h *itemHeap) Push(x interface{}) {
	it := x.(item)
	h.pos[it.id] = len(h.items)
	h.items = append(h.items, it)
}

// Pop removes and returns the last element.
// Called by heap.Pop after it moved the minimum to the end.
func (h *itemHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	h.pos[it.id] = -1

	return it
}
