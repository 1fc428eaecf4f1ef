// SPDX-License-Identifier: MIT
// Package: thetanav/builder
//
// Package builder rasterizes world geometry into a gridgraph.GridGraph.
//
// A scene is one rectangular Ground plus any number of box Obstacles. The
// ground defines the lattice: one node every NodeDistance world units along X
// and Z, node (0,0) on the ground's minimum corner, all nodes Height units
// above the ground. Each obstacle blocks the nodes its XZ footprint covers.
//
// The package offers the following key components:
//
//   - Scene primitives:
//     – Ground:    centre position and XZ size of the walkable plane.
//     – Obstacle:  named, tagged axis-aligned box.
//   - Entry point:
//     – Rasterize: ground + obstacles + options → *gridgraph.GridGraph.
//   - Configuration primitives:
//     – RasterOption:  a function that mutates rasterConfig before use.
//     – WithNodeDistance, WithHeight, WithObstacleTags, WithConnectivity.
//   - Validation helpers:
//     – validateGround:    positive finite size, lattice within MaxCells.
//
// Footprint rule:
//
//	An obstacle's XZ bounds are shrunk INWARD to the lattice (min rounded up,
//	max rounded down to a multiple of NodeDistance) before mapping to grid
//	coordinates. A node is blocked only when it lies inside the box, so boxes
//	thinner than one node spacing may block nothing. Pair the grid with a
//	visibility.BoxOracle over the same boxes when such walls must still stop
//	line of sight.
//
// Guarantees:
//
//   - Deterministic: equal inputs produce equal grids.
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Runtime validation errors are sentinels wrapped with method context.
package builder
