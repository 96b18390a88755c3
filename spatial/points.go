package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/graphquest/geom"
)

// indexedPoint adapts a geom.Point to rtreego.Spatial.
type indexedPoint struct {
	p   geom.Point
	box rtreego.Rect
}

func (ip *indexedPoint) Bounds() rtreego.Rect { return ip.box }

// PointIndex is an R-tree over sampled points.
type PointIndex struct {
	tree *rtreego.Rtree
}

// NewPointIndex returns an empty index.
func NewPointIndex() *PointIndex {
	return &PointIndex{tree: rtreego.NewTree(2, minBranch, maxBranch)}
}

// Insert adds p to the index.
func (ix *PointIndex) Insert(p geom.Point) {
	ix.tree.Insert(&indexedPoint{p: p, box: rtreego.Point{float64(p.X), float64(p.Y)}.ToRect(pad)})
}

// Len returns the number of indexed points.
func (ix *PointIndex) Len() int { return ix.tree.Size() }

// AnyCloser reports whether some indexed point lies at Euclidean distance
// strictly less than r from p. r must be positive.
func (ix *PointIndex) AnyCloser(p geom.Point, r float64) bool {
	if ix.tree.Size() == 0 {
		return false
	}
	// pad keeps the box non-degenerate; the exact distance check below decides.
	box, _ := rtreego.NewRect(
		rtreego.Point{float64(p.X) - r - pad, float64(p.Y) - r - pad},
		[]float64{2 * (r + pad), 2 * (r + pad)},
	)

	hit := false
	ix.tree.SearchIntersect(box, func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		if geom.Dist(obj.(*indexedPoint).p, p) < r {
			hit = true
			return false, true
		}
		return true, false
	})

	return hit
}
