// SPDX-License-Identifier: MIT
package line

import "math"

// AffineTransform maps x to scale*x + translate. Negative scales
// reverse the line's orientation; zero scales are rejected because they
// collapse regions to a point. Transforms are immutable values.
type AffineTransform struct {
	scale     float64
	translate float64
}

// NewAffineTransform returns the transform x -> scale*x + translate.
// Returns ErrInvalidTransform for non-finite coefficients or zero scale.
func NewAffineTransform(scale, translate float64) (AffineTransform, error) {
	if math.IsNaN(scale) || math.IsInf(scale, 0) ||
		math.IsNaN(translate) || math.IsInf(translate, 0) || scale == 0 {
		return AffineTransform{}, ErrInvalidTransform
	}

	return AffineTransform{scale: scale, translate: translate}, nil
}

// Translation returns the transform shifting the line by d.
// Returns ErrInvalidTransform for non-finite d.
func Translation(d float64) (AffineTransform, error) {
	return NewAffineTransform(1, d)
}

// Negation returns the transform x -> -x.
func Negation() AffineTransform {
	return AffineTransform{scale: -1}
}

// Scale returns the transform's scale coefficient.
func (tr AffineTransform) Scale() float64 { return tr.scale }

// Translate returns the transform's translation coefficient.
func (tr AffineTransform) Translate() float64 { return tr.translate }

// PreservesOrientation reports whether the transform keeps the line's
// direction, true exactly for positive scales.
func (tr AffineTransform) PreservesOrientation() bool { return tr.scale > 0 }

// Apply maps a coordinate through the transform.
func (tr AffineTransform) Apply(x float64) float64 {
	return tr.scale*x + tr.translate
}

// ApplyCut maps an oriented cut through the transform, flipping its
// facing under negative scales so the cut's plus side keeps tracking
// the image of the original plus side.
func (tr AffineTransform) ApplyCut(c Cut) Cut {
	facing := c.positiveFacing
	if tr.scale < 0 {
		facing = !facing
	}

	return Cut{location: tr.Apply(c.location), positiveFacing: facing, prec: c.prec}
}
