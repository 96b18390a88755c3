// SPDX-License-Identifier: MIT

package geom

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is an integer coordinate pair in the sampling region.
// Points are values and never change once sampled.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// Vec converts p into a gonum vector.
func (p Point) Vec() r2.Vec { return r2.Vec{X: float64(p.X), Y: float64(p.Y)} }

// String renders p as "(x,y)".
func (p Point) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// SqDist returns the exact squared Euclidean distance between p and q.
func SqDist(p, q Point) int {
	dx, dy := p.X-q.X, p.Y-q.Y

	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Sqrt(float64(SqDist(p, q)))
}

// Diagonal returns the length of the diagonal of a w×h region.
func Diagonal(w, h int) float64 {
	return math.Sqrt(float64(w*w + h*h))
}
