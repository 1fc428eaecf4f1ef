// SPDX-License-Identifier: MIT
// Package: thetanav/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type RasterOption func(*rasterConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Rasterize itself never panics.

package builder

import (
	"math"

	"github.com/katalvlaran/thetanav/gridgraph"
)

// RasterOption customizes Rasterize by mutating a rasterConfig before the
// lattice is laid out.
type RasterOption func(*rasterConfig)

// WithNodeDistance sets the lattice spacing in world units.
// Panics unless d is finite and positive.
func WithNodeDistance(d float64) RasterOption {
	if !(d > 0) || math.IsInf(d, 1) {
		panic("builder: WithNodeDistance requires a finite positive spacing")
	}
	return func(c *rasterConfig) {
		c.nodeDistance = d
	}
}

// WithHeight sets how far above the ground plane nodes sit.
// Panics on NaN or infinite values.
func WithHeight(h float64) RasterOption {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		panic("builder: WithHeight requires a finite height")
	}
	return func(c *rasterConfig) {
		c.height = h
	}
}

// WithObstacleTags restricts rasterization to obstacles whose Tag is one of
// tags. Repeated calls accumulate. Without it every obstacle counts.
func WithObstacleTags(tags ...string) RasterOption {
	return func(c *rasterConfig) {
		for _, t := range tags {
			c.tags.Put(t)
		}
	}
}

// WithConnectivity chooses the neighbor set of the produced grid.
// Panics on values other than gridgraph.Conn8 and gridgraph.Conn4.
func WithConnectivity(conn gridgraph.Connectivity) RasterOption {
	if conn != gridgraph.Conn8 && conn != gridgraph.Conn4 {
		panic("builder: WithConnectivity: unknown connectivity")
	}
	return func(c *rasterConfig) {
		c.conn = conn
	}
}
