// SPDX-License-Identifier: MIT
package line

import (
	"iter"

	"github.com/geomir/bsptree/precision"
)

// BoundarySource yields the oriented cuts bounding a line region.
// Region implements it, as does CutList for hand-assembled boundaries.
type BoundarySource interface {
	Boundaries() iter.Seq[Cut]
}

// CutList adapts a slice of cuts to BoundarySource.
type CutList []Cut

// Boundaries yields the cuts in slice order.
func (l CutList) Boundaries() iter.Seq[Cut] {
	return func(yield func(Cut) bool) {
		for _, c := range l {
			if !yield(c) {
				return
			}
		}
	}
}

// Boundaries yields the region's finite boundary cuts, min boundary
// then max boundary per interval. Infinite interval ends contribute no
// cut; the full and empty regions yield nothing.
func (r *Region) Boundaries() iter.Seq[Cut] {
	return func(yield func(Cut) bool) {
		for _, iv := range r.ToIntervals() {
			if minB, ok := iv.MinBoundary(); ok && !yield(minB) {
				return
			}
			if maxB, ok := iv.MaxBoundary(); ok && !yield(maxB) {
				return
			}
		}
	}
}

// FromBoundaries builds the region bounded by the cuts of src, starting
// from the empty region and inserting every cut with its minus side
// inside. The cuts must form the consistent boundary of some region;
// FromBoundaries does not verify that.
func FromBoundaries(src BoundarySource, prec precision.Context) *Region {
	r := Empty(prec)
	for c := range src.Boundaries() {
		r.tree.Insert(c)
	}
	r.tree.Condense()

	return r
}
