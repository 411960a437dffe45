// SPDX-License-Identifier: MIT
package circle

import (
	"math"

	"github.com/geomir/bsptree/bsp"
	"github.com/geomir/bsptree/precision"
)

// Interval is a connected arc of the circle: the azimuths swept
// counterclockwise from its min boundary to its max boundary, possibly
// wrapping through zero. Intervals are immutable values.
//
// The raw azimuths given at construction are preserved: Min returns the
// original min azimuth and Max an equivalent azimuth in (Min, Min+2π].
type Interval struct {
	min  Point
	max  Point
	full bool
	prec precision.Context
}

// NewInterval returns the interval from min to max, counterclockwise.
// Endpoints equivalent within epsilon (mod 2π) produce the full-circle
// interval. Returns ErrInvalidInterval for NaN or infinite endpoints.
func NewInterval(min, max float64, prec precision.Context) (Interval, error) {
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return Interval{}, ErrInvalidInterval
	}

	lo, hi := PointOf(min), PointOf(max)
	if prec.EqZero(lo.Distance(hi)) {
		return FullInterval(prec), nil
	}
	span := Normalize(hi.NormalizedAzimuth() - lo.NormalizedAzimuth())

	return Interval{min: lo, max: PointOf(min + span), prec: prec}, nil
}

// FullInterval returns the interval covering the whole circle. Its
// boundary cuts are absent.
func FullInterval(prec precision.Context) Interval {
	return Interval{min: PointOf(0), max: PointOf(TwoPi), full: true, prec: prec}
}

// IsFull reports whether the interval covers the whole circle.
func (i Interval) IsFull() bool { return i.full }

// Min returns the interval's min boundary point.
func (i Interval) Min() Point { return i.min }

// Max returns the interval's max boundary point, at an azimuth in
// (Min().Azimuth(), Min().Azimuth()+2π].
func (i Interval) Max() Point { return i.max }

// Size returns the subtended angle, 2π for the full interval.
func (i Interval) Size() float64 {
	if i.full {
		return TwoPi
	}

	return i.max.Azimuth() - i.min.Azimuth()
}

// Midpoint returns the point halfway along the interval.
func (i Interval) Midpoint() Point {
	return PointOf(i.min.Azimuth() + i.Size()/2)
}

// WrapsZero reports whether the interval's material crosses the
// zero-azimuth seam.
func (i Interval) WrapsZero() bool {
	return !i.full && i.min.NormalizedAzimuth()+i.Size() > TwoPi
}

// MinBoundary returns the oriented cut bounding the interval at its min
// point (facing away from the material). ok is false for the full
// interval, which has no boundary.
func (i Interval) MinBoundary() (Cut, bool) {
	if i.full {
		return Cut{}, false
	}

	return Cut{point: i.min, positiveFacing: false, prec: i.prec}, true
}

// MaxBoundary returns the oriented cut bounding the interval at its max
// point. ok is false for the full interval.
func (i Interval) MaxBoundary() (Cut, bool) {
	if i.full {
		return Cut{}, false
	}

	return Cut{point: i.max, positiveFacing: true, prec: i.prec}, true
}

// Classify locates pt relative to the interval.
func (i Interval) Classify(pt Point) bsp.Location {
	if i.full {
		return bsp.Inside
	}

	d := Normalize(pt.NormalizedAzimuth() - i.min.NormalizedAzimuth())
	switch {
	case i.prec.EqZero(d), i.prec.Eq(d, TwoPi), i.prec.Eq(d, i.Size()):
		return bsp.Boundary
	case d < i.Size():
		return bsp.Inside
	default:
		return bsp.Outside
	}
}

// Contains reports whether pt lies inside or on the boundary of the
// interval.
func (i Interval) Contains(pt Point) bool {
	return i.Classify(pt) != bsp.Outside
}

// ToRegion returns a new BSP tree region covering exactly this interval.
func (i Interval) ToRegion() *Region {
	return FromInterval(i)
}
