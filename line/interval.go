// SPDX-License-Identifier: MIT
package line

import (
	"math"

	"github.com/geomir/bsptree/bsp"
	"github.com/geomir/bsptree/precision"
)

// Interval is a connected run of the real line. Either endpoint may be
// infinite; the interval with both endpoints infinite is the full line.
// Intervals are immutable values.
type Interval struct {
	min  float64
	max  float64
	prec precision.Context
}

// NewInterval returns the interval from min to max. Endpoints may be
// -Inf and +Inf respectively. Returns ErrInvalidInterval when an
// endpoint is NaN, when the endpoints are inverted or coincident within
// epsilon, or when both are infinite in the same direction.
func NewInterval(min, max float64, prec precision.Context) (Interval, error) {
	switch {
	case math.IsNaN(min) || math.IsNaN(max):
		return Interval{}, ErrInvalidInterval
	case math.IsInf(min, 1) || math.IsInf(max, -1):
		return Interval{}, ErrInvalidInterval
	case !math.IsInf(min, 0) && !math.IsInf(max, 0) && (min > max || prec.Eq(min, max)):
		return Interval{}, ErrInvalidInterval
	}

	return Interval{min: min, max: max, prec: prec}, nil
}

// FullInterval returns the interval covering the whole line.
func FullInterval(prec precision.Context) Interval {
	return Interval{min: math.Inf(-1), max: math.Inf(1), prec: prec}
}

// Min returns the lower endpoint, possibly -Inf.
func (i Interval) Min() float64 { return i.min }

// Max returns the upper endpoint, possibly +Inf.
func (i Interval) Max() float64 { return i.max }

// IsFull reports whether the interval covers the whole line.
func (i Interval) IsFull() bool {
	return math.IsInf(i.min, -1) && math.IsInf(i.max, 1)
}

// IsInfinite reports whether either endpoint is infinite.
func (i Interval) IsInfinite() bool {
	return math.IsInf(i.min, 0) || math.IsInf(i.max, 0)
}

// Size returns the interval's length, +Inf for unbounded intervals.
func (i Interval) Size() float64 { return i.max - i.min }

// Midpoint returns the center of a bounded interval; NaN when either
// endpoint is infinite.
func (i Interval) Midpoint() float64 {
	if i.IsInfinite() {
		return math.NaN()
	}

	return 0.5 * (i.min + i.max)
}

// MinBoundary returns the oriented cut bounding the interval from
// below, facing away from the material. ok is false when the interval
// is unbounded below.
func (i Interval) MinBoundary() (Cut, bool) {
	if math.IsInf(i.min, 0) {
		return Cut{}, false
	}

	return Cut{location: i.min, positiveFacing: false, prec: i.prec}, true
}

// MaxBoundary returns the oriented cut bounding the interval from
// above. ok is false when the interval is unbounded above.
func (i Interval) MaxBoundary() (Cut, bool) {
	if math.IsInf(i.max, 0) {
		return Cut{}, false
	}

	return Cut{location: i.max, positiveFacing: true, prec: i.prec}, true
}

// Classify locates pt relative to the interval. Infinite endpoints are
// never boundaries.
func (i Interval) Classify(pt float64) bsp.Location {
	onMin := !math.IsInf(i.min, 0) && i.prec.Eq(pt, i.min)
	onMax := !math.IsInf(i.max, 0) && i.prec.Eq(pt, i.max)
	switch {
	case onMin || onMax:
		return bsp.Boundary
	case pt > i.min && pt < i.max:
		return bsp.Inside
	default:
		return bsp.Outside
	}
}

// Contains reports whether pt lies inside or on the boundary of the
// interval.
func (i Interval) Contains(pt float64) bool {
	return i.Classify(pt) != bsp.Outside
}

// ToRegion returns a new BSP tree region covering exactly this interval.
func (i Interval) ToRegion() *Region {
	return FromInterval(i)
}
