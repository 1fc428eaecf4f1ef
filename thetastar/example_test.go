package thetastar_test

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
	"github.com/katalvlaran/thetanav/thetastar"
	"github.com/katalvlaran/thetanav/visibility"
)

// ExampleFinder_FindPath routes around a wall. From (1,1) the path heads
// straight for the goal past the wall's end instead of following grid edges.
func ExampleFinder_FindPath() {
	gg, _ := gridgraph.FromASCII([]string{
		"......",
		"..#...",
		"..#...",
		"..#...",
		"......",
	}, gridgraph.DefaultGridOptions())
	f, _ := thetastar.New(gg, visibility.NewGridOracle(gg))

	path, err := f.FindPath(r3.Vec{X: 0, Z: 2}, r3.Vec{X: 5, Z: 2})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, p := range path {
		fmt.Printf("(%.0f, %.0f) ", p.X, p.Z)
	}
	fmt.Println()
	// Output: (0, 2) (1, 1) (2, 0) (5, 2)
}

// ExampleFinder_Search_noPath shows the degenerate result of an unreachable goal.
func ExampleFinder_Search_noPath() {
	gg, _ := gridgraph.FromASCII([]string{
		"..#..",
		"..#..",
		"..#..",
	}, gridgraph.DefaultGridOptions())
	f, _ := thetastar.New(gg, visibility.NewGridOracle(gg))

	res, err := f.Search(r3.Vec{X: 0, Z: 1}, r3.Vec{X: 4, Z: 1})
	fmt.Println(errors.Is(err, thetastar.ErrNoPath), res.Outcome, len(res.Path))
	// Output: true no_path 1
}
