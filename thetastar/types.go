// Package thetastar defines core types, sentinel errors and functional options
// for the Lazy Theta* engine.
package thetastar

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
)

// Sentinel errors returned by the engine.
var (
	// ErrNilGrid indicates that New received a nil *gridgraph.GridGraph.
	ErrNilGrid = errors.New("thetastar: grid is nil")

	// ErrNilOracle indicates that New received a nil visibility oracle.
	ErrNilOracle = errors.New("thetastar: visibility oracle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("thetastar: invalid option supplied")

	// ErrEndpointUnresolved indicates that no walkable node exists within the
	// snap radius of the start or end point. The path is the start point alone.
	ErrEndpointUnresolved = errors.New("thetastar: no walkable node near endpoint")

	// ErrNoPath indicates that the goal node cannot be reached from the start
	// node. The path is the start point alone.
	ErrNoPath = errors.New("thetastar: no path between endpoints")
)

// DefaultSnapRadius is the largest ring searched when an endpoint's own cell
// is blocked or off-grid.
const DefaultSnapRadius = 2

// Outcome classifies a finished search.
type Outcome int

const (
	// GoalReached means a path from start to end was found.
	GoalReached Outcome = iota
	// NoPathExists means the frontier emptied before the start node was closed.
	NoPathExists
	// EndpointUnresolved means start or end could not be snapped to the grid.
	EndpointUnresolved
)

// String returns a short lower-case label, used as a metrics label value.
func (o Outcome) String() string {
	switch o {
	case GoalReached:
		return "goal_reached"
	case NoPathExists:
		return "no_path"
	case EndpointUnresolved:
		return "endpoint_unresolved"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Observer receives one call per finished search. Implementations must be
// safe for concurrent use when the Finder is shared between goroutines.
type Observer interface {
	ObserveSearch(res *Result, elapsed time.Duration)
}

// Result is the full outcome of one search.
type Result struct {
	// Path starts at the exact start point and, when Outcome is GoalReached,
	// ends at the exact end point. It is never empty.
	Path []r3.Vec

	// Waypoints is the trimmed extractor output: node positions along the
	// parent chain plus the exact end point, with redundant endpoints removed.
	// On failure it equals Path.
	Waypoints []r3.Vec

	// Nodes is the untrimmed parent chain, start node first, goal node last.
	// Nil unless Outcome is GoalReached.
	Nodes []gridgraph.Coord

	// Cost is the gCost of the start node in grid units.
	Cost float64

	// Expanded counts nodes popped from the frontier.
	Expanded int

	// VisibilityChecks counts oracle queries, trims included.
	VisibilityChecks int

	// Outcome classifies the search.
	Outcome Outcome

	// Start and Goal are the resolved grid nodes. Unset values are {-1,-1}.
	Start, Goal gridgraph.Coord
}

// Options configures a Finder.
//
// Smoothing      – try the grandparent route on every relaxation (default true).
// SnapRadius     – largest snap ring for endpoints (default 2, must be ≥ 0).
// Precheck       – reject start/goal pairs in different components before searching.
// Logf           – diagnostic sink; defaults to the package Logf.
// Observer       – optional per-search callback.
// OnExpand       – called for every closed node with its parent and fCost.
// OnRelax        – called whenever a node receives a new parent.
type Options struct {
	Smoothing  bool
	SnapRadius int
	Precheck   bool
	Logf       func(format string, v ...interface{})
	Observer   Observer
	OnExpand   func(node, parent gridgraph.Coord, f float64)
	OnRelax    func(node, parent gridgraph.Coord, smoothed bool)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring a Finder.
type Option func(*Options)

// DefaultOptions returns an Options with default settings:
//   - smoothing on;
//   - snap radius DefaultSnapRadius;
//   - component precheck off;
//   - logging through the package Logf;
//   - no observer and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Smoothing:  true,
		SnapRadius: DefaultSnapRadius,
		Logf:       func(format string, v ...interface{}) { Logf(format, v...) },
		OnExpand:   func(gridgraph.Coord, gridgraph.Coord, float64) {},
		OnRelax:    func(gridgraph.Coord, gridgraph.Coord, bool) {},
	}
}

// WithSmoothing toggles the grandparent (any-angle) relaxation. With smoothing
// off the engine behaves as plain A* on the 8-connected grid, but the
// endpoint trims still run.
func WithSmoothing(on bool) Option {
	return func(o *Options) {
		o.Smoothing = on
	}
}

// WithSnapRadius sets the largest ring searched when snapping an endpoint.
// Zero disables snapping.
//
//	r < 0: invalid option → ErrOptionViolation
func WithSnapRadius(r int) Option {
	return func(o *Options) {
		if r < 0 {
			o.err = fmt.Errorf("%w: SnapRadius cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		o.SnapRadius = r
	}
}

// WithComponentPrecheck labels the grid's 8-connected components once and
// answers NoPathExists without searching when start and goal differ.
func WithComponentPrecheck() Option {
	return func(o *Options) {
		o.Precheck = true
	}
}

// WithLogger routes diagnostics to fn. Passing nil mutes them.
func WithLogger(fn func(format string, v ...interface{})) Option {
	return func(o *Options) {
		if fn == nil {
			fn = func(string, ...interface{}) {}
		}
		o.Logf = fn
	}
}

// WithObserver registers obs to receive every finished search.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithOnExpand registers a callback run for each node closed by the search.
func WithOnExpand(fn func(node, parent gridgraph.Coord, f float64)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnExpand callback is nil", ErrOptionViolation)
			return
		}
		o.OnExpand = fn
	}
}

// WithOnRelax registers a callback run whenever a node is re-parented.
// smoothed reports whether the new parent is a shortcut past the expanding
// node; links made from the goal itself are never shortcuts.
func WithOnRelax(fn func(node, parent gridgraph.Coord, smoothed bool)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: OnRelax callback is nil", ErrOptionViolation)
			return
		}
		o.OnRelax = fn
	}
}
