// SPDX-License-Identifier: MIT
package circle

import "math"

// Transform is an azimuth-preserving-or-reversing rigid motion of the
// circle: an optional negation (az -> -az) followed by a rotation.
// Transforms are immutable values; composition methods return new ones.
type Transform struct {
	negate   bool
	rotation float64
}

// Identity returns the transform that maps every azimuth to itself.
func Identity() Transform { return Transform{} }

// NewRotation returns the counterclockwise rotation by angle radians.
// Returns ErrInvalidRotation for NaN or infinite angles.
func NewRotation(angle float64) (Transform, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return Transform{}, ErrInvalidRotation
	}

	return Transform{rotation: angle}, nil
}

// Negation returns the transform az -> -az, reflecting the circle across
// the zero-azimuth axis.
func Negation() Transform { return Transform{negate: true} }

// Rotate returns the receiver followed by a rotation by angle radians.
// Returns ErrInvalidRotation for NaN or infinite angles.
func (tr Transform) Rotate(angle float64) (Transform, error) {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return Transform{}, ErrInvalidRotation
	}

	return Transform{negate: tr.negate, rotation: tr.rotation + angle}, nil
}

// Negate returns the receiver followed by azimuth negation.
func (tr Transform) Negate() Transform {
	return Transform{negate: !tr.negate, rotation: -tr.rotation}
}

// PreservesOrientation reports whether the transform keeps the
// counterclockwise direction of travel. False exactly when an odd number
// of negations is composed in.
func (tr Transform) PreservesOrientation() bool { return !tr.negate }

// Apply maps a raw azimuth through the transform. The result is not
// normalized.
func (tr Transform) Apply(azimuth float64) float64 {
	if tr.negate {
		azimuth = -azimuth
	}

	return azimuth + tr.rotation
}

// ApplyPoint maps a circle point through the transform.
func (tr Transform) ApplyPoint(pt Point) Point {
	return PointOf(tr.Apply(pt.Azimuth()))
}

// ApplyCut maps an oriented cut through the transform, flipping its
// facing when orientation is reversed so the cut's plus side keeps
// tracking the image of the original plus side.
func (tr Transform) ApplyCut(c Cut) Cut {
	facing := c.positiveFacing
	if tr.negate {
		facing = !facing
	}

	return Cut{point: tr.ApplyPoint(c.point), positiveFacing: facing, prec: c.prec}
}
