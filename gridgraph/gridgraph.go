// Package gridgraph provides utilities to treat a 2D walkability grid as a
// graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - World <-> grid transforms
//   - Identification of connected walkable regions
package gridgraph

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as walkable[y][x]. It copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadTransform if opts.Transform.NodeDistance <= 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(walkable [][]bool, opts GridOptions) (*GridGraph, error) {
	if len(walkable) == 0 || len(walkable[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(walkable), len(walkable[0])
	for _, row := range walkable {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if !(opts.Transform.NodeDistance > 0) {
		return nil, ErrBadTransform
	}
	// Flatten row-major to keep node indices stable
	cells := make([]bool, w*h)
	for y := 0; y < h; y++ {
		copy(cells[y*w:(y+1)*w], walkable[y])
	}
	// Precompute neighbor offsets based on connectivity.
	// Scan order is dx outer, dy inner; the centre is never a neighbor.
	var offsets [][2]int
	if opts.Conn == Conn4 {
		offsets = [][2]int{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}
	} else {
		offsets = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		transform:       opts.Transform,
		walkable:        cells,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// FromASCII builds a grid from text rows: '#' marks a blocked cell, any other
// byte is walkable. rows[0] is y = 0.
func FromASCII(rows []string, opts GridOptions) (*GridGraph, error) {
	walkable := make([][]bool, len(rows))
	for y, row := range rows {
		walkable[y] = make([]bool, len(row))
		for x := 0; x < len(row); x++ {
			walkable[y][x] = row[x] != '#'
		}
	}

	return NewGridGraph(walkable, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether an in-bounds cell can be entered.
// Out-of-bounds coordinates are never walkable.
func (gg *GridGraph) Walkable(c Coord) bool {
	return gg.InBounds(c.X, c.Y) && gg.walkable[gg.index(c.X, c.Y)]
}

// IsValid reports whether c is in bounds and walkable: the only cells a
// search may visit.
func (gg *GridGraph) IsValid(c Coord) bool {
	return gg.Walkable(c)
}

// Neighbors returns the valid neighbors of c in deterministic order.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		n := Coord{X: c.X + d[0], Y: c.Y + d[1]}
		if gg.IsValid(n) {
			out = append(out, n)
		}
	}

	return out
}

// AppendNeighbors appends the node indices of the valid neighbors of node idx
// to dst and returns the extended slice. Same order as Neighbors.
func (gg *GridGraph) AppendNeighbors(dst []int, idx int) []int {
	x, y := gg.Coordinate(idx)
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.InBounds(nx, ny) {
			continue
		}
		ni := gg.index(nx, ny)
		if gg.walkable[ni] {
			dst = append(dst, ni)
		}
	}

	return dst
}

// Len returns the number of nodes (W×H).
func (gg *GridGraph) Len() int {
	return len(gg.walkable)
}

// Index maps c to its row-major node index. c must be in bounds.
func (gg *GridGraph) Index(c Coord) int {
	return gg.index(c.X, c.Y)
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// CoordOf is Coordinate returning a Coord.
func (gg *GridGraph) CoordOf(idx int) Coord {
	x, y := gg.Coordinate(idx)

	return Coord{X: x, Y: y}
}
