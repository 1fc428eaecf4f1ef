// Package builder provides validation helpers that enforce the parameter
// contract of Rasterize.
//
// Each function returns a wrapped sentinel via builderErrorf when its
// precondition is violated.
package builder

import "math"

// validateGround checks that g has a finite positive size and that the
// lattice it implies stays within MaxCells.
//
// Complexity: O(1) time and space.
func validateGround(method string, g Ground, d float64) error {
	for _, v := range []float64{g.SizeX, g.SizeZ, g.Position.X, g.Position.Y, g.Position.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return builderErrorf(method, ErrBadGround, "non-finite value %v", v)
		}
	}
	if g.SizeX <= 0 || g.SizeZ <= 0 {
		return builderErrorf(method, ErrBadGround, "size must be positive, got %vx%v", g.SizeX, g.SizeZ)
	}
	if nx, nz := g.SizeX/d+1, g.SizeZ/d+1; nx*nz > MaxCells {
		return builderErrorf(method, ErrGridTooLarge, "%.0fx%.0f nodes exceed %d", nx, nz, MaxCells)
	}

	return nil
}
