// Package thetastar finds short any-angle paths between two world points over
// a gridgraph.GridGraph, using the lazy variant of Theta*.
//
// Overview:
//
//   - Both world points are snapped to grid nodes. A point whose own cell is
//     blocked or off-grid snaps to the first valid node on square rings of
//     radius 1, 2, ... up to Options.SnapRadius.
//   - The search runs BACKWARD, from the goal node to the start node, so the
//     parent chain read from the start already runs start → goal.
//   - Relaxing neighbor n of the expanded node c first tries the grandparent
//     route: if the oracle sees a clear line from parent(c) to n, n may take
//     parent(c) as its parent. Only if that line is blocked (or smoothing is
//     off, or it does not lower n's cost) does n fall back to c itself.
//     Visibility is checked against parent(c) only, never the whole ancestor
//     chain; this bounds oracle calls to one per relaxation and occasionally
//     accepts a slightly longer path.
//   - The extracted node chain is converted to world points, the exact end
//     point is appended, then up to two redundant waypoints are trimmed at
//     the ends using the oracle.
//
// Costs:
//
//   - gCost and hCost are Euclidean distances in grid units.
//   - fCost = gCost + hCost orders the frontier; ties pop first-in, first-out.
//
// Outcomes (never a hard failure; the path is always non-empty):
//
//   - GoalReached: Path runs from the exact start point to the exact end point.
//   - NoPathExists (ErrNoPath): the frontier emptied. Path = [start].
//   - EndpointUnresolved (ErrEndpointUnresolved): no valid node near start
//     or end. Path = [start]; a diagnostic is logged.
//
// Thread safety:
//
//   - Per-search costs, parents and closed flags live in side tables keyed by
//     node index and reset by version stamping; the grid is never written.
//     A Finder pools those tables, so concurrent FindPath calls are safe as
//     long as the oracle is.
//
// Complexity:
//
//   - Time:  O(N log N) frontier work plus one oracle query per relaxation,
//     N = number of grid nodes.
//   - Space: O(N) per concurrent search.
package thetastar
