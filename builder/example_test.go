package builder_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/builder"
	"github.com/katalvlaran/thetanav/gridgraph"
)

// ExampleRasterize blocks a 3-node wide wall in the middle of a 6×4 ground.
func ExampleRasterize() {
	gg, err := builder.Rasterize(
		builder.Ground{SizeX: 6, SizeZ: 4},
		[]builder.Obstacle{{
			Name:   "wall",
			Bounds: r3.Box{Min: r3.Vec{X: -1, Z: -0.5}, Max: r3.Vec{X: 1, Y: 3, Z: 0.5}},
		}},
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	for y := 0; y < gg.Height; y++ {
		row := make([]byte, gg.Width)
		for x := range row {
			row[x] = '.'
			if !gg.Walkable(gridgraph.Coord{X: x, Y: y}) {
				row[x] = '#'
			}
		}
		fmt.Println(string(row))
	}
	// Output:
	// .......
	// .......
	// ..###..
	// .......
	// .......
}
