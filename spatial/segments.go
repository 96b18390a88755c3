package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/graphquest/geom"
)

// Edge is a segment keyed by the identifiers of its endpoints.
type Edge struct {
	U, V int
	Seg  geom.Segment
}

// sharesEndpoint reports whether e and f meet at an identified vertex.
func (e Edge) sharesEndpoint(f Edge) bool {
	return e.U == f.U || e.U == f.V || e.V == f.U || e.V == f.V
}

type indexedEdge struct {
	e   Edge
	box rtreego.Rect
}

func (ie *indexedEdge) Bounds() rtreego.Rect { return ie.box }

// segmentBox returns the padded bounding box of s.
func segmentBox(s geom.Segment) rtreego.Rect {
	lo, hi := s.Bounds()
	box, _ := rtreego.NewRect(
		rtreego.Point{float64(lo.X) - pad, float64(lo.Y) - pad},
		[]float64{float64(hi.X-lo.X) + 2*pad, float64(hi.Y-lo.Y) + 2*pad},
	)

	return box
}

// SegmentIndex is an R-tree over accepted edges.
type SegmentIndex struct {
	tree *rtreego.Rtree
}

// NewSegmentIndex returns an empty index.
func NewSegmentIndex() *SegmentIndex {
	return &SegmentIndex{tree: rtreego.NewTree(2, minBranch, maxBranch)}
}

// Insert adds e to the index.
func (ix *SegmentIndex) Insert(e Edge) {
	ix.tree.Insert(&indexedEdge{e: e, box: segmentBox(e.Seg)})
}

// Len returns the number of indexed edges.
func (ix *SegmentIndex) Len() int { return ix.tree.Size() }

// Crosses reports whether e intersects any indexed edge that shares no
// endpoint with it. Touching at an interior point counts as intersecting.
//
// Complexity: O(log E + k) for k box hits, each confirmed in O(1).
func (ix *SegmentIndex) Crosses(e Edge) bool {
	if ix.tree.Size() == 0 {
		return false
	}

	hit := false
	ix.tree.SearchIntersect(segmentBox(e.Seg), func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		f := obj.(*indexedEdge).e
		if e.sharesEndpoint(f) {
			return true, false
		}
		if geom.SegmentsIntersect(e.Seg, f.Seg) {
			hit = true
			return false, true
		}
		return true, false
	})

	return hit
}
