// Package gridgraph treats a planar navigation area as a 2D grid of nodes,
// the graph that any-angle searches run over.
//
// What:
//
//   - GridGraph wraps a rectangular walkability grid (true = walkable).
//   - Nodes are addressed by Coord{X, Y} or by their row-major index, which is
//     stable for the lifetime of the grid (arena + index).
//   - Neighbors enumerates up to 8 adjacent walkable cells in a fixed order.
//   - ToWorld / ToGrid convert between grid coordinates and world points
//     (gonum r3.Vec) through an affine Transform.
//   - ComponentLabels labels 8-connected walkable regions.
//
// Why:
//
//   - Search engines need a cheap, read-only view of the map: the grid is built
//     once per map and shared by any number of searches. It holds no per-search
//     cost fields, so concurrent searches never race on it.
//
// Neighbor order:
//
//	Offsets are scanned dx = -1..1 (outer), dy = -1..1 (inner), centre
//	excluded. Searches that depend on this order are reproducible.
//
// Complexity:
//
//   - NewGridGraph:     O(W×H) time and memory.
//   - Neighbors:        O(d), d = 4 or 8.
//   - ComponentLabels:  O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadTransform: Transform.NodeDistance is not positive.
package gridgraph
