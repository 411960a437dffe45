// SPDX-License-Identifier: MIT
package line

import (
	"errors"
	"math"

	"github.com/geomir/bsptree/bsp"
	"github.com/geomir/bsptree/precision"
)

// Sentinel errors for line construction input.
var (
	// ErrInvalidLocation indicates a NaN or infinite cut location.
	ErrInvalidLocation = errors.New("line: cut location must be finite")

	// ErrInvalidInterval indicates interval endpoints that are NaN,
	// inverted, coincident within epsilon, or both infinite in the same
	// direction.
	ErrInvalidInterval = errors.New("line: invalid interval endpoints")

	// ErrInvalidTransform indicates an affine transform with non-finite
	// coefficients or zero scale.
	ErrInvalidTransform = errors.New("line: transform must have finite coefficients and non-zero scale")
)

// Cut is an oriented point on the line used as a BSP tree splitting
// surface. A positive-facing cut's plus side holds the coordinates above
// its location. Cuts are immutable values.
type Cut struct {
	location       float64
	positiveFacing bool
	prec           precision.Context
}

// NewCut returns the cut at the given coordinate with the given facing.
// Returns ErrInvalidLocation for NaN or infinite coordinates.
func NewCut(location float64, positiveFacing bool, prec precision.Context) (Cut, error) {
	if math.IsNaN(location) || math.IsInf(location, 0) {
		return Cut{}, ErrInvalidLocation
	}

	return Cut{location: location, positiveFacing: positiveFacing, prec: prec}, nil
}

// Location returns the cut's coordinate.
func (c Cut) Location() float64 { return c.location }

// IsPositiveFacing reports whether the cut's plus side holds the larger
// coordinates.
func (c Cut) IsPositiveFacing() bool { return c.positiveFacing }

// Precision returns the precision context the cut was created with.
func (c Cut) Precision() precision.Context { return c.prec }

// Offset returns the signed distance from the cut to pt: positive on
// the plus side, negative on the minus side.
func (c Cut) Offset(pt float64) float64 {
	if c.positiveFacing {
		return pt - c.location
	}

	return c.location - pt
}

// Side classifies pt against the cut, SideOn within epsilon.
func (c Cut) Side(pt float64) bsp.Side {
	switch c.prec.Sign(c.Offset(pt)) {
	case precision.Less:
		return bsp.SideMinus
	case precision.Greater:
		return bsp.SidePlus
	default:
		return bsp.SideOn
	}
}

// Split divides the cut by the splitter's hyperplane. A point cut is
// never divided: it lies wholly on one side, or coincides with the
// splitter (SplitNeither).
func (c Cut) Split(splitter Cut) bsp.CutSplit[Cut] {
	switch splitter.Side(c.location) {
	case bsp.SideMinus:
		return bsp.CutSplit[Cut]{Location: bsp.SplitMinus, Minus: c}
	case bsp.SidePlus:
		return bsp.CutSplit[Cut]{Location: bsp.SplitPlus, Plus: c}
	default:
		return bsp.CutSplit[Cut]{Location: bsp.SplitNeither}
	}
}

// SimilarOrientation reports whether both cuts face the same way.
func (c Cut) SimilarOrientation(other Cut) bool {
	return c.positiveFacing == other.positiveFacing
}
