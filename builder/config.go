// SPDX-License-Identifier: MIT
// Package: thetanav/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • nodeDistance = DefaultNodeDistance (1.0)
//   • height       = DefaultHeight       (0.5)
//   • conn         = gridgraph.Conn8
//   • tags         = empty set            (every obstacle is rasterized)

package builder

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/thetanav/gridgraph"
)

// rasterConfig aggregates all knobs used by Rasterize.
type rasterConfig struct {
	nodeDistance float64
	height       float64
	conn         gridgraph.Connectivity
	// tags filters obstacles by Obstacle.Tag; empty means "all".
	tags mapset.Set[string]
}

// newRasterConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newRasterConfig(opts ...RasterOption) rasterConfig {
	cfg := rasterConfig{
		nodeDistance: DefaultNodeDistance,
		height:       DefaultHeight,
		conn:         gridgraph.Conn8,
		tags:         mapset.New[string](),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// accepts reports whether obstacle o passes the tag filter.
func (c rasterConfig) accepts(o Obstacle) bool {
	return c.tags.Size() == 0 || c.tags.Has(o.Tag)
}
