// Package visibility answers line-of-sight queries between two world points:
// is the straight segment from one to the other free of obstacles?
//
// Polarity:
//
//	Oracle.Unobstructed returns TRUE when the segment is CLEAR. Physics
//	engines usually expose the opposite predicate ("linecast hit" = blocked);
//	wrap those with FromLinecast, which negates once, here, instead of at
//	every call site.
//
// Implementations:
//
//   - BoxOracle: obstacles given as world-space axis-aligned boxes, indexed in
//     an R-tree (github.com/dhconnelly/rtreego). A query gathers the boxes that
//     overlap the segment's bounding box and runs an exact slab test on each.
//   - GridOracle: walks every grid cell the segment touches (supercover DDA)
//     and requires each to be walkable. Needs only a gridgraph.GridGraph.
//   - Func: adapts a plain function.
//   - Counting: wraps another Oracle and counts queries.
//
// Thread safety:
//
//   - BoxOracle and GridOracle are read-only after construction and safe for
//     concurrent queries. Counting uses an atomic counter.
package visibility
