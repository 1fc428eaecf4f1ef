package thetastar

import (
	"math"

	"github.com/katalvlaran/thetanav/frontier"
)

const noParent = -1

// searchState holds every per-search value keyed by node index. A node's
// g, h and parent are meaningful only while stamp[i] == version, and it is
// closed only while closed[i] == version, so begin() resets the whole table
// in O(1).
type searchState struct {
	g       []float64
	h       []float64
	parent  []int32
	stamp   []uint32
	closed  []uint32
	version uint32
	open    *frontier.Frontier
	nbrs    []int // scratch buffer for AppendNeighbors
}

func newSearchState(n int) *searchState {
	return &searchState{
		g:      make([]float64, n),
		h:      make([]float64, n),
		parent: make([]int32, n),
		stamp:  make([]uint32, n),
		closed: make([]uint32, n),
		open:   frontier.New(n),
		nbrs:   make([]int, 0, 8),
	}
}

// begin starts a new search generation.
func (s *searchState) begin() {
	s.version++
	if s.version == 0 {
		// Wrapped: clear stale stamps so no node looks current.
		clear(s.stamp)
		clear(s.closed)
		s.version = 1
	}
	s.open.Reset()
}

// touch makes node i current in this generation, unset if it was stale.
func (s *searchState) touch(i int) {
	if s.stamp[i] != s.version {
		s.stamp[i] = s.version
		s.unset(i)
	}
}

// unset puts node i back to gCost=+Inf with no parent.
func (s *searchState) unset(i int) {
	s.g[i] = math.Inf(1)
	s.h[i] = 0
	s.parent[i] = noParent
}

func (s *searchState) set(i int, g, h float64, parent int) {
	s.g[i] = g
	s.h[i] = h
	s.parent[i] = int32(parent)
}

func (s *searchState) f(i int) float64 {
	return s.g[i] + s.h[i]
}

func (s *searchState) isClosed(i int) bool {
	return s.closed[i] == s.version
}

func (s *searchState) close(i int) {
	s.closed[i] = s.version
}
