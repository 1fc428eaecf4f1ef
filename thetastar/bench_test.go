package thetastar_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
	"github.com/katalvlaran/thetanav/thetastar"
	"github.com/katalvlaran/thetanav/visibility"
)

// clutter builds an n×n grid with roughly 20% blocked cells and open corners.
func clutter(b *testing.B, n int) *gridgraph.GridGraph {
	b.Helper()
	rng := rand.New(rand.NewSource(7))
	walk := make([][]bool, n)
	for y := range walk {
		walk[y] = make([]bool, n)
		for x := range walk[y] {
			walk[y][x] = rng.Float64() >= 0.2
		}
	}
	walk[0][0], walk[n-1][n-1] = true, true
	gg, err := gridgraph.NewGridGraph(walk, gridgraph.DefaultGridOptions())
	if err != nil {
		b.Fatal(err)
	}

	return gg
}

func benchFind(b *testing.B, n int, opts ...thetastar.Option) {
	gg := clutter(b, n)
	opts = append(opts, thetastar.WithLogger(nil))
	f, err := thetastar.New(gg, visibility.NewGridOracle(gg), opts...)
	if err != nil {
		b.Fatal(err)
	}
	start, end := r3.Vec{}, r3.Vec{X: float64(n - 1), Z: float64(n - 1)}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.FindPath(start, end)
	}
}

func BenchmarkFindPath_64(b *testing.B)  { benchFind(b, 64) }
func BenchmarkFindPath_256(b *testing.B) { benchFind(b, 256) }

func BenchmarkFindPath_256_NoSmoothing(b *testing.B) {
	benchFind(b, 256, thetastar.WithSmoothing(false))
}

func BenchmarkFindPath_256_Parallel(b *testing.B) {
	gg := clutter(b, 256)
	f, err := thetastar.New(gg, visibility.NewGridOracle(gg), thetastar.WithLogger(nil))
	if err != nil {
		b.Fatal(err)
	}
	end := r3.Vec{X: 255, Z: 255}

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, _ = f.FindPath(r3.Vec{}, end)
		}
	})
}
