// SPDX-License-Identifier: MIT
package circle

import "math"

// TwoPi is the full turn, the circumference of the unit circle.
const TwoPi = 2 * math.Pi

// Point is a location on the unit circle. It keeps the azimuth it was
// created with (which may be negative or exceed 2π) alongside the
// normalized equivalent in [0, 2π). Points are immutable values.
type Point struct {
	az   float64
	norm float64
}

// PointOf returns the point at the given azimuth in radians.
func PointOf(azimuth float64) Point {
	return Point{az: azimuth, norm: Normalize(azimuth)}
}

// PointFromVector returns the point in the direction of the (non-zero)
// 2-vector (x, y), with azimuth normalized to [0, 2π).
func PointFromVector(x, y float64) Point {
	return PointOf(Normalize(math.Atan2(y, x)))
}

// Azimuth returns the azimuth the point was created with.
func (p Point) Azimuth() float64 { return p.az }

// NormalizedAzimuth returns the equivalent azimuth in [0, 2π).
func (p Point) NormalizedAzimuth() float64 { return p.norm }

// Antipodal returns the point diametrically opposite the receiver.
func (p Point) Antipodal() Point { return PointOf(p.az + math.Pi) }

// Vector returns the unit 2-vector pointing at the point's azimuth.
func (p Point) Vector() (x, y float64) {
	return math.Cos(p.az), math.Sin(p.az)
}

// Distance returns the shortest angular separation between two points,
// in [0, π].
func (p Point) Distance(other Point) float64 {
	return math.Abs(p.SignedDistance(other))
}

// SignedDistance returns the angular travel from p to other in (-π, π]:
// positive counterclockwise, negative clockwise.
func (p Point) SignedDistance(other Point) float64 {
	d := Normalize(other.norm - p.norm)
	if d > math.Pi {
		return d - TwoPi
	}

	return d
}

// Normalize maps an azimuth to its equivalent in [0, 2π).
func Normalize(azimuth float64) float64 {
	n := azimuth - TwoPi*math.Floor(azimuth/TwoPi)
	if n >= TwoPi { // guard against round-off at the seam
		return 0
	}

	return n
}
