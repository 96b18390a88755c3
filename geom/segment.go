// SPDX-License-Identifier: MIT

package geom

import "gonum.org/v1/gonum/spatial/r2"

// Segment is the closed straight segment between A and B.
type Segment struct {
	A, B Point
}

// Seg is shorthand for Segment{A: a, B: b}.
func Seg(a, b Point) Segment { return Segment{A: a, B: b} }

// Bounds returns the lower-left and upper-right corners of the
// axis-aligned box enclosing s.
func (s Segment) Bounds() (lo, hi Point) {
	lo = Point{X: min(s.A.X, s.B.X), Y: min(s.A.Y, s.B.Y)}
	hi = Point{X: max(s.A.X, s.B.X), Y: max(s.A.Y, s.B.Y)}

	return lo, hi
}

// Length returns the Euclidean length of s.
func (s Segment) Length() float64 { return Dist(s.A, s.B) }

// Orientation reports on which side of the directed line a→b the point c lies:
// +1 counter-clockwise, -1 clockwise, 0 collinear.
func Orientation(a, b, c Point) int {
	cr := r2.Cross(r2.Sub(b.Vec(), a.Vec()), r2.Sub(c.Vec(), a.Vec()))
	switch {
	case cr > 0:
		return 1
	case cr < 0:
		return -1
	default:
		return 0
	}
}

// onSegment reports whether p, already known to be collinear with s,
// lies within the bounding box of s.
func onSegment(s Segment, p Point) bool {
	lo, hi := s.Bounds()

	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}

// SegmentsIntersect reports whether the closed segments s and t share at
// least one point. Proper crossings, an endpoint touching the other
// segment, and collinear overlaps all count as intersections.
//
// Callers that want edges meeting at a common vertex to pass must filter
// those pairs out before asking.
func SegmentsIntersect(s, t Segment) bool {
	o1 := Orientation(s.A, s.B, t.A)
	o2 := Orientation(s.A, s.B, t.B)
	o3 := Orientation(t.A, t.B, s.A)
	o4 := Orientation(t.A, t.B, s.B)

	// General position: endpoints of each segment straddle the other's line.
	if o1 != o2 && o3 != o4 {
		return true
	}

	// Collinear touching and overlap.
	if o1 == 0 && onSegment(s, t.A) {
		return true
	}
	if o2 == 0 && onSegment(s, t.B) {
		return true
	}
	if o3 == 0 && onSegment(t, s.A) {
		return true
	}
	if o4 == 0 && onSegment(t, s.B) {
		return true
	}

	return false
}
