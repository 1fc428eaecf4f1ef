package scene

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/builder"
	"github.com/katalvlaran/thetanav/gridgraph"
	"github.com/katalvlaran/thetanav/thetastar"
	"github.com/katalvlaran/thetanav/visibility"
)

// World is a built scene: the rasterized grid, the oracle and a Finder.
type World struct {
	Config *Config
	Grid   *gridgraph.GridGraph
	Oracle visibility.Oracle
	Finder *thetastar.Finder
}

// QueryResult pairs a configured query with its outcome.
type QueryResult struct {
	Query  QueryConfig
	Result *thetastar.Result
	Err    error
}

// Build rasterizes the scene and constructs a Finder over it. extra options
// are applied after the ones derived from c.Search.
func (c *Config) Build(extra ...thetastar.Option) (*World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rasterOpts := []builder.RasterOption{
		builder.WithNodeDistance(c.Grid.NodeDistance),
		builder.WithHeight(c.Grid.Height),
		builder.WithObstacleTags(c.Grid.ObstacleTags...),
	}
	if c.Grid.Connectivity == 4 {
		rasterOpts = append(rasterOpts, builder.WithConnectivity(gridgraph.Conn4))
	}

	obstacles := c.obstacles()
	grid, err := builder.Rasterize(builder.Ground{
		Position: c.Ground.Position.Vec(),
		SizeX:    c.Ground.SizeX,
		SizeZ:    c.Ground.SizeZ,
	}, obstacles, rasterOpts...)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	var oracle visibility.Oracle
	switch c.Visibility.Mode {
	case ModeGrid:
		oracle = visibility.NewGridOracle(grid)
	default:
		oracle = visibility.NewBoxOracle(builder.Boxes(obstacles, rasterOpts...)...)
	}

	opts := []thetastar.Option{
		thetastar.WithSmoothing(c.Search.SmoothPath),
		thetastar.WithSnapRadius(c.Search.SnapRadius),
	}
	if c.Search.ComponentPrecheck {
		opts = append(opts, thetastar.WithComponentPrecheck())
	}
	finder, err := thetastar.New(grid, oracle, append(opts, extra...)...)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	return &World{Config: c, Grid: grid, Oracle: oracle, Finder: finder}, nil
}

// FindPath forwards to the world's Finder.
func (w *World) FindPath(from, to r3.Vec) ([]r3.Vec, error) {
	return w.Finder.FindPath(from, to)
}

// RunQueries answers every configured query in order.
func (w *World) RunQueries() []QueryResult {
	out := make([]QueryResult, 0, len(w.Config.Queries))
	for _, q := range w.Config.Queries {
		res, err := w.Finder.Search(q.From.Vec(), q.To.Vec())
		out = append(out, QueryResult{Query: q, Result: res, Err: err})
	}

	return out
}

func (c *Config) obstacles() []builder.Obstacle {
	out := make([]builder.Obstacle, len(c.Obstacles))
	for i, o := range c.Obstacles {
		out[i] = builder.Obstacle{
			Name:   o.Name,
			Tag:    o.Tag,
			Bounds: r3.Box{Min: o.Min.Vec(), Max: o.Max.Vec()},
		}
	}

	return out
}
