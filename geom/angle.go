// SPDX-License-Identifier: MIT

package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DefaultAngleTolerance is the smallest angle two edges sharing a vertex may
// form without being rejected: 15 degrees, in radians.
const DefaultAngleTolerance = (15.0 / 180.0) * math.Pi

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg / 180.0 * math.Pi }

// Direction returns the unit vector pointing from v to w.
// v and w must differ; the zero vector has no direction and yields NaNs.
func Direction(v, w Point) r2.Vec {
	return r2.Unit(r2.Sub(w.Vec(), v.Vec()))
}

// Angle returns the angle in [0, π] between the rays v→w and v→u.
// The dot product is clipped to [-1, 1] before arccos so rounding on
// (anti)parallel rays never produces NaN.
func Angle(v, w, u Point) float64 {
	d := r2.Dot(Direction(v, w), Direction(v, u))
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}

	return math.Acos(d)
}
