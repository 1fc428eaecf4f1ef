// SPDX-License-Identifier: MIT
// Package: thetanav/builder
//
// api.go: public entry-point of the builder package.
//
// Design contract:
//   - One orchestrator: Rasterize(ground, obstacles, opts...).
//   - Functional options resolve into an immutable rasterConfig.
//   - Determinism: same inputs and options ⇒ identical grids.
//   - Safety: never panic; return wrapped sentinels.

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
)

// Ground is the walkable plane: centred on Position, SizeX by SizeZ world units.
type Ground struct {
	Position r3.Vec
	SizeX    float64
	SizeZ    float64
}

// Obstacle is an axis-aligned box that blocks the nodes under it.
type Obstacle struct {
	Name   string
	Tag    string
	Bounds r3.Box
}

// Rasterize lays a lattice over ground and blocks the nodes covered by
// obstacles.
//
// Layout:
//   - Width  = int(SizeX/d) + 1, Height = int(SizeZ/d) + 1 nodes.
//   - The lattice is centred on the ground: node (0,0) sits (Width-1)·d/2
//     left of and (Height-1)·d/2 below the ground centre, at the configured
//     height.
//
// Errors:
//   - ErrBadGround    if the ground size is not finite and positive.
//   - ErrGridTooLarge if the lattice would exceed MaxCells nodes.
//
// Complexity:
//   - Time:  O(W·H + Σ obstacle footprint areas)
//   - Space: O(W·H)
func Rasterize(ground Ground, obstacles []Obstacle, opts ...RasterOption) (*gridgraph.GridGraph, error) {
	// 1) Resolve configuration.
	cfg := newRasterConfig(opts...)
	d := cfg.nodeDistance

	// 2) Validate ground.
	if err := validateGround(MethodRasterize, ground, d); err != nil {
		return nil, err
	}

	// 3) Lay out the lattice.
	w := int(ground.SizeX/d) + 1
	h := int(ground.SizeZ/d) + 1
	t := gridgraph.Transform{
		Origin:       ground.Position,
		NodeDistance: d,
		HalfExtentX:  float64(w-1) * d / 2,
		HalfExtentZ:  float64(h-1) * d / 2,
		Height:       cfg.height,
	}
	walk := make([][]bool, h)
	for y := range walk {
		walk[y] = make([]bool, w)
		for x := range walk[y] {
			walk[y][x] = true
		}
	}

	// 4) Block obstacle footprints.
	for _, o := range obstacles {
		if !cfg.accepts(o) {
			continue
		}
		if lo, hi, ok := footprint(t, o.Bounds); ok {
			block(walk, lo, hi)
		}
	}

	// 5) Freeze into a grid.
	return gridgraph.NewGridGraph(walk, gridgraph.GridOptions{Conn: cfg.conn, Transform: t})
}

// Boxes returns the bounds of the obstacles that pass the same tag filter
// Rasterize would apply, ready for visibility.NewBoxOracle.
func Boxes(obstacles []Obstacle, opts ...RasterOption) []r3.Box {
	cfg := newRasterConfig(opts...)
	out := make([]r3.Box, 0, len(obstacles))
	for _, o := range obstacles {
		if cfg.accepts(o) {
			out = append(out, o.Bounds)
		}
	}

	return out
}
