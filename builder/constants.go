// Package builder defines shared constants used by the rasterizer, ensuring
// consistent defaults and validation.
package builder

// MethodRasterize is the canonical method name used as error context.
const MethodRasterize = "Rasterize"

const (
	// DefaultNodeDistance is the lattice spacing in world units.
	DefaultNodeDistance = 1.0
	// DefaultHeight is the height of nodes above the ground plane.
	DefaultHeight = 0.5
	// MaxCells caps the number of lattice nodes one grid may hold.
	MaxCells = 1 << 24
)
