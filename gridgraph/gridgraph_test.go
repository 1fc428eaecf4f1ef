package gridgraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
)

//----------------------------------------------------------------------------//
// NewGridGraph and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	badTransform := gridgraph.DefaultGridOptions()
	badTransform.Transform.NodeDistance = 0

	cases := []struct {
		name string
		grid [][]bool
		opts gridgraph.GridOptions
		err  error
	}{
		{"EmptyRows", [][]bool{}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]bool{{}}, gridgraph.DefaultGridOptions(), gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]bool{{true, true}, {true}}, gridgraph.DefaultGridOptions(), gridgraph.ErrNonRectangular},
		{"ZeroNodeDistance", [][]bool{{true}}, badTransform, gridgraph.ErrBadTransform},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_CopiesInput ensures later edits to the caller's slice do not leak in.
func TestNewGridGraph_CopiesInput(t *testing.T) {
	grid := [][]bool{{true, true}, {true, true}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	grid[0][0] = false
	assert.True(t, gg.IsValid(gridgraph.Coord{X: 0, Y: 0}))
}

// TestInBounds checks InBounds on a 3×2 grid.
func TestInBounds(t *testing.T) {
	gg, err := gridgraph.FromASCII([]string{
		"#.#",
		".#.",
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatalf("FromASCII error: %v", err)
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if gg.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}
}

// TestIsValid combines bounds and walkability.
func TestIsValid(t *testing.T) {
	gg, err := gridgraph.FromASCII([]string{
		"#.",
		"..",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	assert.False(t, gg.IsValid(gridgraph.Coord{X: 0, Y: 0}), "blocked cell")
	assert.True(t, gg.IsValid(gridgraph.Coord{X: 1, Y: 0}))
	assert.False(t, gg.IsValid(gridgraph.Coord{X: 2, Y: 0}), "out of bounds")
	assert.False(t, gg.IsValid(gridgraph.Coord{X: 0, Y: -1}), "out of bounds")
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors_Order verifies the fixed dx-outer, dy-inner scan order.
func TestNeighbors_Order(t *testing.T) {
	gg, err := gridgraph.FromASCII([]string{
		"...",
		"...",
		"...",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Coord{X: 1, Y: 1})
	want := []gridgraph.Coord{
		{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2},
		{X: 1, Y: 0}, {X: 1, Y: 2},
		{X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}
	require.Equal(t, want, got)
}

// TestNeighbors_FiltersBlockedAndBounds drops walls and off-grid cells.
func TestNeighbors_FiltersBlockedAndBounds(t *testing.T) {
	gg, err := gridgraph.FromASCII([]string{
		".#",
		"..",
	}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Coord{X: 0, Y: 0})
	require.Equal(t, []gridgraph.Coord{{X: 0, Y: 1}, {X: 1, Y: 1}}, got)

	idx := gg.AppendNeighbors(nil, gg.Index(gridgraph.Coord{X: 0, Y: 0}))
	require.Len(t, idx, 2)
	assert.Equal(t, gridgraph.Coord{X: 0, Y: 1}, gg.CoordOf(idx[0]))
	assert.Equal(t, gridgraph.Coord{X: 1, Y: 1}, gg.CoordOf(idx[1]))
}

// TestNeighbors_Conn4 only yields orthogonal cells.
func TestNeighbors_Conn4(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn4
	gg, err := gridgraph.FromASCII([]string{
		"...",
		"...",
		"...",
	}, opts)
	require.NoError(t, err)

	got := gg.Neighbors(gridgraph.Coord{X: 1, Y: 1})
	want := []gridgraph.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 1}}
	require.Equal(t, want, got)
}

// TestIndexRoundTrip checks Index and Coordinate are inverses.
func TestIndexRoundTrip(t *testing.T) {
	gg, err := gridgraph.FromASCII([]string{"....", "....", "...."}, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	require.Equal(t, 12, gg.Len())

	for i := 0; i < gg.Len(); i++ {
		c := gg.CoordOf(i)
		assert.Equal(t, i, gg.Index(c))
	}
	assert.Equal(t, 6, gg.Index(gridgraph.Coord{X: 2, Y: 1}))
}

//----------------------------------------------------------------------------//
// Transform Tests
//----------------------------------------------------------------------------//

// TestTransform_RoundTrip verifies ToGrid(ToWorld(c)) == c on a scaled, offset lattice.
func TestTransform_RoundTrip(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Transform = gridgraph.Transform{
		Origin:       r3.Vec{X: 3, Y: 1, Z: -2},
		NodeDistance: 0.5,
		HalfExtentX:  2,
		HalfExtentZ:  1.5,
		Height:       0.5,
	}
	walkable := make([][]bool, 7)
	for y := range walkable {
		walkable[y] = make([]bool, 9)
	}
	gg, err := gridgraph.NewGridGraph(walkable, opts)
	require.NoError(t, err)

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := gridgraph.Coord{X: x, Y: y}
			p := gg.ToWorld(c)
			assert.InDelta(t, 1.5, p.Y, 1e-12, "height above origin")
			assert.Equal(t, c, gg.ToGrid(p))
		}
	}

	p := gg.ToWorld(gridgraph.Coord{X: 0, Y: 0})
	assert.InDelta(t, 1.0, p.X, 1e-12)
	assert.InDelta(t, -3.5, p.Z, 1e-12)
}

// TestTransform_RoundsHalfToEven pins the tie rule of ToGrid.
func TestTransform_RoundsHalfToEven(t *testing.T) {
	tf := gridgraph.Transform{NodeDistance: 1}
	assert.Equal(t, gridgraph.Coord{X: 2, Y: 0}, tf.ToGrid(r3.Vec{X: 2.5, Z: 0.5}))
	assert.Equal(t, gridgraph.Coord{X: 4, Y: 2}, tf.ToGrid(r3.Vec{X: 3.5, Z: 1.51}))
	assert.Equal(t, gridgraph.Coord{X: -1, Y: 0}, tf.ToGrid(r3.Vec{X: -0.7, Z: -0.2}))
}

// TestDistance measures grid-unit Euclidean distance.
func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, gridgraph.Distance(gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 3, Y: 4}), 1e-12)
	assert.InDelta(t, 1.4142135623730951, gridgraph.Distance(gridgraph.Coord{X: 1, Y: 1}, gridgraph.Coord{X: 2, Y: 2}), 1e-12)
}
