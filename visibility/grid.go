package visibility

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/thetanav/gridgraph"
)

const cornerEpsilon = 1e-12

// GridOracle treats every blocked or off-grid cell as a solid square of one
// node spacing centred on its node. A segment is unobstructed when every cell
// it passes through is walkable. Passing exactly through a cell corner
// requires both side cells to be walkable.
//
// gridgraph's 8-neighborhood allows a diagonal step past a blocked corner;
// GridOracle reports that same step as obstructed.
type GridOracle struct {
	grid *gridgraph.GridGraph
}

// NewGridOracle returns an oracle backed by gg's walkability.
func NewGridOracle(gg *gridgraph.GridGraph) *GridOracle {
	return &GridOracle{grid: gg}
}

// Unobstructed walks the cells between from and to (Amanatides–Woo DDA).
func (o *GridOracle) Unobstructed(from, to r3.Vec) bool {
	x0, y0 := o.continuous(from)
	x1, y1 := o.continuous(to)

	cx, cy := int(math.Floor(x0)), int(math.Floor(y0))
	ex, ey := int(math.Floor(x1)), int(math.Floor(y1))
	if !o.open(cx, cy) {
		return false
	}

	stepX, tMaxX, tDeltaX := axisStep(x0, x1, cx)
	stepY, tMaxY, tDeltaY := axisStep(y0, y1, cy)

	// Each iteration moves at least one cell along x or y.
	budget := abs(ex-cx) + abs(ey-cy) + 1
	for (cx != ex || cy != ey) && budget > 0 {
		budget--
		switch {
		case math.Abs(tMaxX-tMaxY) < cornerEpsilon:
			if !o.open(cx+stepX, cy) || !o.open(cx, cy+stepY) {
				return false
			}
			cx += stepX
			cy += stepY
			tMaxX += tDeltaX
			tMaxY += tDeltaY
		case tMaxX < tMaxY:
			cx += stepX
			tMaxX += tDeltaX
		default:
			cy += stepY
			tMaxY += tDeltaY
		}
		if !o.open(cx, cy) {
			return false
		}
	}

	return true
}

// continuous converts p into cell space where cell (i,j) spans [i,i+1)×[j,j+1).
func (o *GridOracle) continuous(p r3.Vec) (float64, float64) {
	t := o.grid.Transform()
	gx := (p.X-t.Origin.X+t.HalfExtentX)/t.NodeDistance + 0.5
	gy := (p.Z-t.Origin.Z+t.HalfExtentZ)/t.NodeDistance + 0.5

	return gx, gy
}

// open reports whether cell (x,y) is walkable.
func (o *GridOracle) open(x, y int) bool {
	return o.grid.IsValid(gridgraph.Coord{X: x, Y: y})
}

// axisStep returns the DDA step direction, the parameter t at which the ray
// first leaves cell c along this axis, and the t span of one cell.
func axisStep(a, b float64, c int) (step int, tMax, tDelta float64) {
	d := b - a
	switch {
	case d > 0:
		return 1, (float64(c+1) - a) / d, 1 / d
	case d < 0:
		return -1, (a - float64(c)) / -d, 1 / -d
	default:
		return 0, math.Inf(1), math.Inf(1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
