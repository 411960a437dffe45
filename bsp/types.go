// SPDX-License-Identifier: MIT
// Package bsp: shared enums and the Cut/Transform capability interfaces.
//
// This file declares Location, Side, SplitLocation, the Cut contract
// implemented once per geometric domain, and the Transform contract used
// by Tree.Transform.
package bsp

// Location classifies a point relative to a region.
type Location int

const (
	// Inside means the point lies strictly within the region.
	Inside Location = iota

	// Outside means the point lies strictly outside the region.
	Outside

	// Boundary means the point lies on the region's boundary, within the
	// precision context's epsilon.
	Boundary
)

// String returns a readable name for the location.
func (l Location) String() string {
	switch l {
	case Inside:
		return "Inside"
	case Outside:
		return "Outside"
	case Boundary:
		return "Boundary"
	default:
		return "Unknown"
	}
}

// Side identifies the half-spaces of a cut, or the cut surface itself.
type Side int

const (
	// SideMinus is the cut's negative half-space.
	SideMinus Side = iota

	// SideOn is the cut surface itself (within epsilon).
	SideOn

	// SidePlus is the cut's positive half-space.
	SidePlus
)

// SplitLocation describes how a value (a cut or a whole region) relates
// to a splitting cut.
type SplitLocation int

const (
	// SplitNeither means the split could not separate anything: for cuts,
	// the two cuts coincide within epsilon; for regions, the region is
	// empty.
	SplitNeither SplitLocation = iota

	// SplitMinus means the value lies entirely on the splitter's minus side.
	SplitMinus

	// SplitPlus means the value lies entirely on the splitter's plus side.
	SplitPlus

	// SplitBoth means the splitter genuinely divides the value.
	SplitBoth
)

// String returns a readable name for the split location.
func (s SplitLocation) String() string {
	switch s {
	case SplitNeither:
		return "Neither"
	case SplitMinus:
		return "Minus"
	case SplitPlus:
		return "Plus"
	case SplitBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// CutSplit is the result of dividing one cut by another's hyperplane.
//
// Location SplitNeither signals coincidence (the caller can then merge
// instead of branching — see Cut.SimilarOrientation); SplitMinus and
// SplitPlus carry the undivided cut in the corresponding field;
// SplitBoth carries one piece per side. Fields not selected by Location
// hold zero values and must not be used.
type CutSplit[C any] struct {
	Location SplitLocation
	Minus    C
	Plus     C
}

// Cut is the per-dimension specialization point: an immutable oriented
// boundary surface with a fixed positive and negative side.
//
// The type parameter C is the implementing type itself and P its domain's
// point type. Implementations carry their own precision context; the
// tree never compares coordinates directly.
type Cut[C, P any] interface {
	// Side classifies pt against the cut: SideOn iff the point's signed
	// distance to the cut is within epsilon of zero.
	Side(pt P) Side

	// Split divides the receiver by the splitter's hyperplane. Either
	// output piece may be absent when the receiver lies entirely on one
	// side, and both are absent (SplitNeither) when the two cuts coincide
	// within epsilon.
	Split(splitter C) CutSplit[C]

	// SimilarOrientation reports whether the receiver and other have the
	// same facing. Only meaningful for coincident or parallel cuts.
	SimilarOrientation(other C) bool
}

// Transform is an invertible geometric transform applied to a tree's cuts.
//
// ApplyCut must flip the cut's facing when the transform reverses
// orientation, so that the image cut's minus side covers the image of
// the old minus side. That flip is the only correction: the tree keeps
// every node's children in place.
type Transform[C any] interface {
	// ApplyCut returns the image of the cut under the transform, facing
	// adjusted for orientation reversal.
	ApplyCut(c C) C

	// PreservesOrientation reports whether the transform keeps the
	// orientation of the space. Region-level code uses it to reorder
	// derived geometry such as interval endpoints.
	PreservesOrientation() bool
}
