package thetastar

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
)

// chain walks parents from the start node to the goal node.
func (r *runner) chain() []gridgraph.Coord {
	nodes := make([]gridgraph.Coord, 0, 16)
	cur := r.start
	for steps := 0; cur != r.goal; steps++ {
		if steps > r.grid.Len() {
			panic(fmt.Sprintf("thetastar: parent chain from %v does not reach goal", r.startC))
		}
		nodes = append(nodes, r.grid.CoordOf(cur))
		cur = int(r.st.parent[cur])
	}

	return append(nodes, r.grid.CoordOf(r.goal))
}

// waypoints converts the node chain to world points, appends the exact end
// point, then drops up to two redundant waypoints:
//
//  1. the first node, when the exact start sees the second point;
//  2. the last node, when the exact end sees the point before it.
//
// Both trims run whether or not smoothing is enabled.
func (r *runner) waypoints(nodes []gridgraph.Coord, start, end r3.Vec) []r3.Vec {
	path := make([]r3.Vec, 0, len(nodes)+1)
	for _, c := range nodes {
		path = append(path, r.grid.ToWorld(c))
	}
	path = append(path, end)

	if len(path) > 1 {
		r.checks++
		if r.oracle.Unobstructed(start, path[1]) {
			path = path[1:]
		}
	}
	if len(path) > 1 {
		r.checks++
		if r.oracle.Unobstructed(end, path[len(path)-2]) {
			path = append(path[:len(path)-2], path[len(path)-1])
		}
	}

	return path
}

// withStart returns the exact start point followed by wps, without repeating
// start when wps already begins with it.
func withStart(start r3.Vec, wps []r3.Vec) []r3.Vec {
	if len(wps) > 0 && wps[0] == start {
		return append([]r3.Vec(nil), wps...)
	}
	out := make([]r3.Vec, 0, len(wps)+1)
	out = append(out, start)

	return append(out, wps...)
}

// Length returns the world-space length of the polyline.
func Length(path []r3.Vec) float64 {
	var l float64
	for i := 1; i < len(path); i++ {
		l += r3.Norm(r3.Sub(path[i], path[i-1]))
	}

	return l
}
