// SPDX-License-Identifier: MIT
package circle

import (
	"errors"
	"math"

	"github.com/geomir/bsptree/bsp"
	"github.com/geomir/bsptree/precision"
)

// Sentinel errors for circular construction input.
var (
	// ErrInvalidAzimuth indicates a NaN or infinite azimuth.
	ErrInvalidAzimuth = errors.New("circle: azimuth must be finite")

	// ErrInvalidInterval indicates an interval built from non-finite
	// azimuths.
	ErrInvalidInterval = errors.New("circle: interval azimuths must be finite")

	// ErrInvalidRotation indicates a transform built from a non-finite
	// rotation angle.
	ErrInvalidRotation = errors.New("circle: rotation angle must be finite")
)

// Cut is an oriented point on the circle used as a BSP tree splitting
// surface. A positive-facing cut's plus side holds the azimuths above
// its own (after normalization to [0, 2π)); a negative-facing cut points
// the other way. Cuts are immutable values.
type Cut struct {
	point          Point
	positiveFacing bool
	prec           precision.Context
}

// NewCut returns the cut at the given azimuth with the given facing.
// Returns ErrInvalidAzimuth for NaN or infinite azimuths.
func NewCut(azimuth float64, positiveFacing bool, prec precision.Context) (Cut, error) {
	if math.IsNaN(azimuth) || math.IsInf(azimuth, 0) {
		return Cut{}, ErrInvalidAzimuth
	}

	return Cut{point: PointOf(azimuth), positiveFacing: positiveFacing, prec: prec}, nil
}

// Point returns the cut's location on the circle.
func (c Cut) Point() Point { return c.point }

// IsPositiveFacing reports whether the cut's plus side holds the larger
// normalized azimuths.
func (c Cut) IsPositiveFacing() bool { return c.positiveFacing }

// Precision returns the precision context the cut was created with.
func (c Cut) Precision() precision.Context { return c.prec }

// Offset returns the signed distance from the cut to pt: positive on the
// plus side, negative on the minus side. Distances compare normalized
// azimuths, so the circle behaves as if cut open at azimuth zero.
func (c Cut) Offset(pt Point) float64 {
	d := pt.NormalizedAzimuth() - c.point.NormalizedAzimuth()
	if c.positiveFacing {
		return d
	}

	return -d
}

// Side classifies pt against the cut, SideOn within epsilon of the cut.
func (c Cut) Side(pt Point) bsp.Side {
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
	switch splitter.Side(c.point) {
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

// IsAntipodal reports whether other sits within epsilon of exactly
// opposite the receiver around the circle, the relationship exploited by
// diameter splitting.
func (c Cut) IsAntipodal(other Cut) bool {
	return c.prec.EqZero(c.point.Antipodal().Distance(other.point))
}
