package frontier

import "container/heap"

// Frontier is an indexed min-priority queue over node indices in [0, capacity).
// The zero value is not usable; call New.
type Frontier struct {
	h   itemHeap
	seq uint64
}

// New returns an empty frontier able to hold node indices 0..capacity-1.
func New(capacity int) *Frontier {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}

	return &Frontier{h: itemHeap{items: make([]item, 0, 64), pos: pos}}
}

// Push inserts node id with priority f. If id is already queued, the stale
// entry is removed first and id queues as if pushed fresh.
func (q *Frontier) Push(id int, f float64) {
	if q.h.pos[id] >= 0 {
		heap.Remove(&q.h, q.h.pos[id])
	}
	q.seq++
	heap.Push(&q.h, item{id: id, f: f, seq: q.seq})
}

// PopMin removes and returns the node with the smallest priority.
// It panics with ErrEmptyFrontier if the frontier is empty.
func (q *Frontier) PopMin() (id int, f float64) {
	if q.h.Len() == 0 {
		panic(ErrEmptyFrontier)
	}
	it := heap.Pop(&q.h).(item)

	return it.id, it.f
}

// Contains reports whether id is queued.
func (q *Frontier) Contains(id int) bool {
	return q.h.pos[id] >= 0
}

// Remove drops id from the frontier. It reports whether id was present.
func (q *Frontier) Remove(id int) bool {
	i := q.h.pos[id]
	if i < 0 {
		return false
	}
	heap.Remove(&q.h, i)

	return true
}

// Len returns the number of queued nodes.
func (q *Frontier) Len() int { return q.h.Len() }

// IsEmpty reports whether no node is queued.
func (q *Frontier) IsEmpty() bool { return q.h.Len() == 0 }

// Cap returns the node capacity the frontier was built for.
func (q *Frontier) Cap() int { return len(q.h.pos) }

// Reset empties the frontier in O(live entries), keeping its allocations.
func (q *Frontier) Reset() {
	for _, it := range q.h.items {
		q.h.pos[it.id] = -1
	}
	q.h.items = q.h.items[:0]
	q.seq = 0
}
