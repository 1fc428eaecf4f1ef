// Package frontier provides the open list of a best-first grid search: a
// mutable min-priority collection of node indices keyed by estimated total
// cost (fCost).
//
// Overview:
//
//   - Frontier is an indexed binary min-heap. A position table keyed by node
//     index gives O(1) Contains and O(log n) Remove, so a node whose cost
//     improved can be re-keyed without leaving stale entries behind.
//   - Push on a node already present replaces its entry (remove-then-insert).
//   - PopMin on an empty frontier is a programming error and panics with
//     ErrEmptyFrontier; callers guard with IsEmpty.
//
// Ordering:
//
//   - Lowest fCost first.
//   - Equal fCost: first-in, first-out by the time of the most recent Push.
//     A re-pushed node therefore queues behind nodes of equal cost that were
//     already waiting. The order is a deterministic total order, so searches
//     that use it are reproducible run to run.
//
// Complexity:
//
//   - Push, PopMin, Remove: O(log n).
//   - Contains, Len, IsEmpty: O(1).
//   - Reset: O(k) for k live entries.
//   - Space: O(N) for the position table (N = node capacity) + O(n) heap.
package frontier
