// Package gridgraph defines core types and options
// for the gridgraph subpackage of github.com/katalvlaran/thetanav.
package gridgraph

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity. Any-angle searches expect it.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: W, S, N, E.
	Conn4
)

// Coord is an integer grid position. Y grows along the world Z axis.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Transform maps grid coordinates onto the world plane.
//
//	world.X = c.X*NodeDistance - HalfExtentX + Origin.X
//	world.Y = Height + Origin.Y
//	world.Z = c.Y*NodeDistance - HalfExtentZ + Origin.Z
//
// Origin is the centre of the ground; the half extents move grid (0,0) onto
// the ground's minimum corner.
type Transform struct {
	Origin       r3.Vec
	NodeDistance float64
	HalfExtentX  float64
	HalfExtentZ  float64
	Height       float64
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// Transform converts between grid and world space.
	Transform Transform
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn8 and a unit lattice whose node (0,0) sits on the world origin.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:      Conn8,
		Transform: Transform{NodeDistance: 1},
	}
}

// GridGraph is a rectangular walkability grid. It is immutable once built.
// walkable[y*Width+x] reports whether cell (x,y) can be entered.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	transform       Transform
	walkable        []bool
	neighborOffsets [][2]int
}
