package thetastar

import (
	"github.com/katalvlaran/thetanav/gridgraph"
	"github.com/katalvlaran/thetanav/visibility"
)

// runner holds the mutable state for a single search execution.
type runner struct {
	grid   *gridgraph.GridGraph // read-only
	oracle visibility.Oracle
	opts   *Options
	st     *searchState // pooled side table
	start  int          // node the search must close
	goal   int          // search origin
	startC gridgraph.Coord

	expanded int
	checks   int
}

// init seeds the frontier with the goal node: gCost 0, parent itself.
func (r *runner) init() {
	// 1) Mark start and goal current for this generation.
	r.st.touch(r.start)
	r.st.touch(r.goal)

	// 2) The goal is its own parent so the first relaxation's grandparent
	//    route degenerates to a direct goal→neighbor line.
	r.st.set(r.goal, 0, gridgraph.Distance(r.grid.CoordOf(r.goal), r.startC), r.goal)

	// 3) Push it.
	r.st.open.Push(r.goal, r.st.f(r.goal))
}

// process is the main loop. It reports whether the start node was closed.
//
// Loop termination conditions:
//
//   - The start node is popped (GoalReached).
//   - The frontier empties (NoPathExists).
func (r *runner) process() bool {
	for !r.st.open.IsEmpty() {
		// 1) Pop the lowest-fCost node and close it.
		cur, f := r.st.open.PopMin()
		r.st.close(cur)
		r.expanded++
		r.opts.OnExpand(r.grid.CoordOf(cur), r.grid.CoordOf(int(r.st.parent[cur])), f)

		// 2) Done once the start node is closed: its parent chain runs to the goal.
		if cur == r.start {
			return true
		}

		// 3) Relax every walkable, not yet closed neighbor.
		r.st.nbrs = r.grid.AppendNeighbors(r.st.nbrs[:0], cur)
		for _, n := range r.st.nbrs {
			if r.st.isClosed(n) {
				continue
			}
			r.relax(cur, n)
		}
	}

	return false
}

// relax offers neighbor n a new parent, trying parent(cur) before cur.
func (r *runner) relax(cur, n int) {
	st := r.st

	// 1) A node outside the frontier starts from +Inf with no parent.
	st.touch(n)
	if !st.open.Contains(n) {
		st.unset(n)
	}
	oldF := st.f(n)
	nc := r.grid.CoordOf(n)
	h := gridgraph.Distance(nc, r.startC)

	// 2) Grandparent route: only parent(cur) is tested for line of sight.
	//    For the goal, parent(cur) is cur and this is the local link.
	smoothed := false
	if r.opts.Smoothing {
		cp := int(st.parent[cur])
		cpc := r.grid.CoordOf(cp)
		r.checks++
		if r.oracle.Unobstructed(r.grid.ToWorld(cpc), r.grid.ToWorld(nc)) {
			if g := st.g[cp] + gridgraph.Distance(cpc, nc); g < st.g[n] {
				st.set(n, g, h, cp)
				smoothed = true
				r.opts.OnRelax(nc, cpc, cp != cur)
			}
		}
	}

	// 3) Local route through cur.
	if !smoothed {
		cc := r.grid.CoordOf(cur)
		if g := st.g[cur] + gridgraph.Distance(cc, nc); g < st.g[n] {
			st.set(n, g, h, cur)
			r.opts.OnRelax(nc, cc, false)
		}
	}

	// 4) Re-queue only when the estimate improved; Push drops the stale entry.
	if f := st.f(n); f < oldF {
		st.open.Push(n, f)
	}
}
