package builder

import (
	"sort"

	"github.com/katalvlaran/graphquest/geom"
)

// Candidate is an unordered pair of point indices {U < V} with the
// Euclidean distance between the two points.
type Candidate struct {
	U, V   int
	Length float64
	sq     int // exact squared length, the sort key
}

// Candidates enumerates every unordered pair of ps exactly once, ascending
// by length. Equal lengths are ordered by (U, V) lexically, so the result
// for a fixed PointSet never varies.
//
// Lengths are compared through their exact integer squares; two pairs whose
// float lengths round to the same value are never reordered by rounding.
//
// Complexity: O(n² log n) time, O(n²) space.
func Candidates(ps PointSet) []Candidate {
	n := ps.Len()
	if n < 2 {
		return []Candidate{}
	}

	out := make([]Candidate, 0, n*(n-1)/2)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			sq := geom.SqDist(ps.Points[u], ps.Points[v])
			out = append(out, Candidate{U: u, V: v, Length: geom.Dist(ps.Points[u], ps.Points[v]), sq: sq})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].sq != out[j].sq {
			return out[i].sq < out[j].sq
		}
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// segment returns the straight-line segment of c over ps.
func (c Candidate) segment(ps PointSet) geom.Segment {
	return geom.Seg(ps.Points[c.U], ps.Points[c.V])
}
