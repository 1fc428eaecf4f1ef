package visibility

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"gonum.org/v1/gonum/spatial/r3"
)

// R-tree shape: 3 dimensions, node fan-out between 4 and 16.
const (
	treeDim      = 3
	treeMinFan   = 4
	treeMaxFan   = 16
	rectEpsilon  = 1e-9 // rtreego rejects zero-length sides
	queryPad     = 1e-7 // widen queries so boxes touching the segment are candidates
	parallelSlab = 1e-12
)

// obstacle is one indexed box.
type obstacle struct {
	box  r3.Box
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (o *obstacle) Bounds() rtreego.Rect {
	return o.rect
}

// BoxOracle tests segments against a static set of axis-aligned boxes.
// A segment that touches a box face counts as obstructed.
type BoxOracle struct {
	tree *rtreego.Rtree
	n    int
}

// NewBoxOracle indexes boxes. Boxes with Min > Max on an axis are normalised.
func NewBoxOracle(boxes ...r3.Box) *BoxOracle {
	objs := make([]rtreego.Spatial, 0, len(boxes))
	for _, b := range boxes {
		b = canon(b)
		objs = append(objs, &obstacle{box: b, rect: toRect(b.Min, b.Max)})
	}

	return &BoxOracle{
		tree: rtreego.NewTree(treeDim, treeMinFan, treeMaxFan, objs...),
		n:    len(objs),
	}
}

// Len returns the number of indexed boxes.
func (o *BoxOracle) Len() int {
	return o.n
}

// Unobstructed reports whether the segment from-to misses every box.
func (o *BoxOracle) Unobstructed(from, to r3.Vec) bool {
	if o.n == 0 {
		return true
	}
	pad := r3.Vec{X: queryPad, Y: queryPad, Z: queryPad}
	lo := r3.Sub(r3.Vec{X: math.Min(from.X, to.X), Y: math.Min(from.Y, to.Y), Z: math.Min(from.Z, to.Z)}, pad)
	hi := r3.Add(r3.Vec{X: math.Max(from.X, to.X), Y: math.Max(from.Y, to.Y), Z: math.Max(from.Z, to.Z)}, pad)
	for _, s := range o.tree.SearchIntersect(toRect(lo, hi)) {
		if segmentHitsBox(from, to, s.(*obstacle).box) {
			return false
		}
	}

	return true
}

// segmentHitsBox is the slab test: clip the parameter range [0,1] of
// from + t*(to-from) against each axis interval of b.
func segmentHitsBox(from, to r3.Vec, b r3.Box) bool {
	d := r3.Sub(to, from)
	tmin, tmax := 0.0, 1.0
	axes := [3][4]float64{
		{from.X, d.X, b.Min.X, b.Max.X},
		{from.Y, d.Y, b.Min.Y, b.Max.Y},
		{from.Z, d.Z, b.Min.Z, b.Max.Z},
	}
	for _, a := range axes {
		origin, dir, lo, hi := a[0], a[1], a[2], a[3]
		if math.Abs(dir) < parallelSlab {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}
		t1, t2 := (lo-origin)/dir, (hi-origin)/dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return false
		}
	}

	return true
}

// toRect converts a min/max corner pair into an rtreego rectangle, padding
// degenerate sides.
func toRect(lo, hi r3.Vec) rtreego.Rect {
	lengths := []float64{
		math.Max(hi.X-lo.X, rectEpsilon),
		math.Max(hi.Y-lo.Y, rectEpsilon),
		math.Max(hi.Z-lo.Z, rectEpsilon),
	}
	r, err := rtreego.NewRect(rtreego.Point{lo.X, lo.Y, lo.Z}, lengths)
	if err != nil {
		panic(err) // unreachable: lengths are clamped positive
	}

	return r
}

// canon orders the corners of b so Min <= Max on every axis.
func canon(b r3.Box) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: math.Min(b.Min.X, b.Max.X), Y: math.Min(b.Min.Y, b.Max.Y), Z: math.Min(b.Min.Z, b.Max.Z)},
		Max: r3.Vec{X: math.Max(b.Min.X, b.Max.X), Y: math.Max(b.Min.Y, b.Max.Y), Z: math.Max(b.Min.Z, b.Max.Z)},
	}
}
