// Package thetanav finds short, natural-looking paths across a walkable
// plane: straight lines wherever line of sight allows, bends only where an
// obstacle forces one.
//
// 🚀 What is thetanav?
//
//	An any-angle grid pathfinder built on Lazy Theta*:
//		• Grid model: rectangular walkability lattice with world ↔ grid transforms
//		• Frontier: indexed min-heap with FIFO tie-break
//		• Visibility: line-of-sight oracles over obstacle boxes (R-tree) or grid cells
//		• Search: backward Lazy Theta* with endpoint snapping and path trimming
//		• Builder: rasterize a ground plane and box obstacles into a grid
//		• Scene: YAML scenes with embedded defaults, wired into a ready Finder
//		• Metrics: Prometheus observer for searches, expansions and oracle calls
//
// ✨ Why any-angle?
//
//   - Grid A* paths zig-zag along 45° steps; Theta* lets a node inherit its
//     grandparent whenever the straight line is clear.
//   - The lazy variant tests exactly one line per relaxation, keeping the
//     oracle cost bounded.
//   - Searches never mutate the grid: one grid serves many goroutines.
//
// Under the hood, everything is organized into subpackages:
//
//	gridgraph/   - GridGraph, Coord, Transform, connected components
//	frontier/    - priority frontier keyed by fCost
//	visibility/  - Oracle interface, BoxOracle, GridOracle, Counting
//	thetastar/   - Finder: Search, FindPath, options and hooks
//	builder/     - Rasterize ground + obstacles into a GridGraph
//	scene/       - YAML scene loading and World wiring
//	metrics/     - Prometheus Collector implementing thetastar.Observer
//	cmd/thetapath - command-line batch runner (text or CSV output)
//
// Quick ASCII example:
//
//	S . . . . . .
//	. . . # # . .
//	. . . # # . E
//
// yields S → (4,0) → (5,1) → E: a straight run along the top row, then a
// diagonal past the block's corner, instead of a staircase of grid steps.
//
//	go get github.com/katalvlaran/thetanav
package thetanav
