package gridgraph

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform returns the grid's world transform.
func (gg *GridGraph) Transform() Transform {
	return gg.transform
}

// ToWorld returns the world position of grid node c. c need not be in bounds.
func (gg *GridGraph) ToWorld(c Coord) r3.Vec {
	return gg.transform.ToWorld(c)
}

// ToGrid returns the grid coordinate nearest to world point p. The result may
// lie outside the grid; check it with IsValid.
func (gg *GridGraph) ToGrid(p r3.Vec) Coord {
	return gg.transform.ToGrid(p)
}

// ToWorld returns the world position of grid coordinate c.
func (t Transform) ToWorld(c Coord) r3.Vec {
	return r3.Add(r3.Vec{
		X: float64(c.X)*t.NodeDistance - t.HalfExtentX,
		Y: t.Height,
		Z: float64(c.Y)*t.NodeDistance - t.HalfExtentZ,
	}, t.Origin)
}

// ToGrid returns the grid coordinate nearest to world point p. Halfway values
// round to even, so ToGrid(ToWorld(c)) == c on the lattice.
// The vertical component of p is ignored.
func (t Transform) ToGrid(p r3.Vec) Coord {
	return Coord{
		X: int(math.RoundToEven((p.X - t.Origin.X + t.HalfExtentX) / t.NodeDistance)),
		Y: int(math.RoundToEven((p.Z - t.Origin.Z + t.HalfExtentZ) / t.NodeDistance)),
	}
}

// Distance is the Euclidean distance between two coordinates in grid units.
// Search costs and heuristics are measured with it.
func Distance(a, b Coord) float64 {
	return r2.Norm(r2.Sub(
		r2.Vec{X: float64(a.X), Y: float64(a.Y)},
		r2.Vec{X: float64(b.X), Y: float64(b.Y)},
	))
}
