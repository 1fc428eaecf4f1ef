package thetastar

import (
	"fmt"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
	"github.com/katalvlaran/thetanav/visibility"
)

var unresolved = gridgraph.Coord{X: -1, Y: -1}

// Finder answers path queries over one grid. It never mutates the grid, and
// its methods are safe for concurrent use when the oracle is.
type Finder struct {
	grid   *gridgraph.GridGraph
	oracle visibility.Oracle
	opts   Options
	pool   sync.Pool

	labelsOnce sync.Once
	labels     []int
}

// New returns a Finder over grid using oracle for line-of-sight queries.
//
// Preconditions and validation (in order):
//  1. grid must be non-nil (ErrNilGrid).
//  2. oracle must be non-nil (ErrNilOracle).
//  3. every option must be valid (ErrOptionViolation).
func New(grid *gridgraph.GridGraph, oracle visibility.Oracle, opts ...Option) (*Finder, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if oracle == nil {
		return nil, ErrNilOracle
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	f := &Finder{grid: grid, oracle: oracle, opts: cfg}
	n := grid.Len()
	f.pool.New = func() interface{} { return newSearchState(n) }

	return f, nil
}

// FindPath returns a path from start to end. The slice is never empty: it is
// the start point alone when the search fails, and err then wraps
// ErrEndpointUnresolved or ErrNoPath.
func (f *Finder) FindPath(start, end r3.Vec) ([]r3.Vec, error) {
	res, err := f.Search(start, end)

	return res.Path, err
}

// Search runs one search and reports everything it learned.
//
// Steps:
//  1. Snap start, then end, to walkable nodes.
//  2. Optionally reject pairs in different components.
//  3. Expand from the goal until the start node is closed.
//  4. Extract and trim the path.
func (f *Finder) Search(start, end r3.Vec) (*Result, error) {
	began := time.Now()
	res := &Result{
		Path:      []r3.Vec{start},
		Waypoints: []r3.Vec{start},
		Start:     unresolved,
		Goal:      unresolved,
	}
	err := f.search(res, start, end)
	if f.opts.Observer != nil {
		f.opts.Observer.ObserveSearch(res, time.Since(began))
	}

	return res, err
}

func (f *Finder) search(res *Result, start, end r3.Vec) error {
	// 1) Resolve endpoints; start first.
	si, ok := f.snap(start)
	if !ok {
		res.Outcome = EndpointUnresolved
		f.opts.Logf("thetastar: no walkable node within %d cells of start point %v", f.opts.SnapRadius, start)
		return fmt.Errorf("%w: start point %v", ErrEndpointUnresolved, start)
	}
	res.Start = f.grid.CoordOf(si)
	gi, ok := f.snap(end)
	if !ok {
		res.Outcome = EndpointUnresolved
		f.opts.Logf("thetastar: no walkable node within %d cells of end point %v", f.opts.SnapRadius, end)
		return fmt.Errorf("%w: end point %v", ErrEndpointUnresolved, end)
	}
	res.Goal = f.grid.CoordOf(gi)

	// 2) Different components can never connect.
	if f.opts.Precheck {
		if labels := f.componentLabels(); labels[si] != labels[gi] {
			res.Outcome = NoPathExists
			return fmt.Errorf("%w: %v and %v are disconnected", ErrNoPath, res.Start, res.Goal)
		}
	}

	// 3) Search backward from the goal.
	st := f.pool.Get().(*searchState)
	defer f.pool.Put(st)
	st.begin()
	r := &runner{
		grid:   f.grid,
		oracle: f.oracle,
		opts:   &f.opts,
		st:     st,
		start:  si,
		goal:   gi,
		startC: res.Start,
	}
	r.init()
	found := r.process()
	res.Expanded = r.expanded
	if !found {
		res.Outcome = NoPathExists
		res.VisibilityChecks = r.checks
		return fmt.Errorf("%w: %v to %v", ErrNoPath, res.Start, res.Goal)
	}

	// 4) Extract.
	res.Outcome = GoalReached
	res.Cost = st.g[si]
	res.Nodes = r.chain()
	res.Waypoints = r.waypoints(res.Nodes, start, end)
	res.Path = withStart(start, res.Waypoints)
	res.VisibilityChecks = r.checks

	return nil
}

// snap returns the index of the walkable node for p: its own cell if valid,
// otherwise the first valid cell on rings of radius 1..SnapRadius, scanning
// dx outer and dy inner.
func (f *Finder) snap(p r3.Vec) (int, bool) {
	c := f.grid.ToGrid(p)
	if f.grid.IsValid(c) {
		return f.grid.Index(c), true
	}
	for r := 1; r <= f.opts.SnapRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if dx != -r && dx != r && dy != -r && dy != r {
					continue // interior cells were scanned by a smaller ring
				}
				n := gridgraph.Coord{X: c.X + dx, Y: c.Y + dy}
				if f.grid.IsValid(n) {
					return f.grid.Index(n), true
				}
			}
		}
	}

	return -1, false
}

func (f *Finder) componentLabels() []int {
	f.labelsOnce.Do(func() {
		f.labels = f.grid.ComponentLabels()
	})

	return f.labels
}
