// Package builder provides internal helper functions used by Rasterize.
package builder

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
)

// latticeEpsilon absorbs float error when a box face lies exactly on a node.
const latticeEpsilon = 1e-9

// footprint returns the inclusive grid rectangle of nodes covered by box b:
// its XZ bounds shrunk inward to the nearest lattice nodes of t.
// ok is false when no node lies inside the bounds.
func footprint(t gridgraph.Transform, b r3.Box) (lo, hi gridgraph.Coord, ok bool) {
	minX, maxX := math.Min(b.Min.X, b.Max.X), math.Max(b.Min.X, b.Max.X)
	minZ, maxZ := math.Min(b.Min.Z, b.Max.Z), math.Max(b.Min.Z, b.Max.Z)

	// Continuous lattice coordinates: node i sits at exactly i.
	ux := func(x float64) float64 { return (x - t.Origin.X + t.HalfExtentX) / t.NodeDistance }
	uz := func(z float64) float64 { return (z - t.Origin.Z + t.HalfExtentZ) / t.NodeDistance }

	lo = gridgraph.Coord{X: int(math.Ceil(ux(minX) - latticeEpsilon)), Y: int(math.Ceil(uz(minZ) - latticeEpsilon))}
	hi = gridgraph.Coord{X: int(math.Floor(ux(maxX) + latticeEpsilon)), Y: int(math.Floor(uz(maxZ) + latticeEpsilon))}
	if lo.X > hi.X || lo.Y > hi.Y {
		return lo, hi, false
	}

	return lo, hi, true
}

// block marks every in-bounds node of [lo,hi] unwalkable.
// Complexity: O(area of the clipped rectangle).
func block(walk [][]bool, lo, hi gridgraph.Coord) {
	h, w := len(walk), len(walk[0])
	x0, x1 := max(lo.X, 0), min(hi.X, w-1)
	y0, y1 := max(lo.Y, 0), min(hi.Y, h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			walk[y][x] = false
		}
	}
}
