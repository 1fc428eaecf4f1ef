package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/thetanav/gridgraph"
)

// randomGrid builds an n×n grid where roughly a quarter of the cells are blocked.
func randomGrid(b *testing.B, n int) *gridgraph.GridGraph {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	walkable := make([][]bool, n)
	for y := 0; y < n; y++ {
		row := make([]bool, n)
		for x := 0; x < n; x++ {
			row[x] = rng.Intn(4) != 0
		}
		walkable[y] = row
	}
	gg, err := gridgraph.NewGridGraph(walkable, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatalf("setup NewGridGraph failed: %v", err)
	}

	return gg
}

// BenchmarkComponentLabels measures labelling of a 1000×1000 grid.
// Complexity: O(W×H×d)
func BenchmarkComponentLabels(b *testing.B) {
	gg := randomGrid(b, 1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ComponentLabels()
	}
}

// BenchmarkAppendNeighbors measures neighbor enumeration over every node.
func BenchmarkAppendNeighbors(b *testing.B) {
	gg := randomGrid(b, 256)
	buf := make([]int, 0, 8)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for idx := 0; idx < gg.Len(); idx++ {
			buf = gg.AppendNeighbors(buf[:0], idx)
		}
	}
}
