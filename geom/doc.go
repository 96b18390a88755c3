// SPDX-License-Identifier: MIT

// Package geom holds the small, fixed set of planar predicates used by the
// planar graph generator: integer points, straight segments, the
// orientation-based segment intersection test and the angle between two
// segments meeting at a shared vertex.
//
// Coordinates are integers. Orientation tests therefore run on exact values
// (cross products of integers far below 2^53 are representable in float64),
// so intersection answers never depend on rounding.
//
// Vectors are gonum's r2.Vec; this package only adds what gonum does not
// provide (segment predicates and a clipped arccos).
//
// Complexity: every predicate is O(1).
package geom
