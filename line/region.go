// SPDX-License-Identifier: MIT
package line

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/geomir/bsptree/bsp"
	"github.com/geomir/bsptree/precision"
)

// Region is a mutable subset of the real line backed by a BSP tree
// whose cuts are oriented points. Any finite union of intervals is
// representable, including unbounded ones, the empty set and the full
// line.
//
// A Region is not safe for concurrent mutation; Copy produces a fully
// independent region.
type Region struct {
	tree *bsp.Tree[Cut, float64]
	prec precision.Context
}

// Full returns the region covering the whole line.
func Full(prec precision.Context) *Region {
	return &Region{tree: bsp.New[Cut, float64](true), prec: prec}
}

// Empty returns the region covering nothing.
func Empty(prec precision.Context) *Region {
	return &Region{tree: bsp.New[Cut, float64](false), prec: prec}
}

// FromInterval returns the region covering exactly the given interval.
func FromInterval(iv Interval) *Region {
	r := Empty(iv.prec)
	r.Add(iv)

	return r
}

// FromIntervals returns the region covering the union of the given
// intervals.
func FromIntervals(prec precision.Context, ivs ...Interval) *Region {
	r := Empty(prec)
	for _, iv := range ivs {
		r.Add(iv)
	}

	return r
}

// Precision returns the precision context the region was created with.
func (r *Region) Precision() precision.Context { return r.prec }

// IsFull reports whether the region covers the whole line.
func (r *Region) IsFull() bool { return r.tree.IsFull() }

// IsEmpty reports whether the region covers nothing.
func (r *Region) IsEmpty() bool { return r.tree.IsEmpty() }

// SetFull resets the region to the whole line.
func (r *Region) SetFull() { r.tree.SetFull() }

// SetEmpty resets the region to nothing.
func (r *Region) SetEmpty() { r.tree.SetEmpty() }

// Copy returns a deep copy sharing no state with the receiver.
func (r *Region) Copy() *Region {
	return &Region{tree: r.tree.Copy(), prec: r.prec}
}

// Count returns the number of nodes in the backing tree.
func (r *Region) Count() int { return r.tree.Count() }

// Add grows the region to also cover iv.
func (r *Region) Add(iv Interval) {
	if iv.IsFull() {
		r.tree.SetFull()

		return
	}

	piece := bsp.New[Cut, float64](false)
	if minB, ok := iv.MinBoundary(); ok {
		piece.Insert(minB)
	}
	if maxB, ok := iv.MaxBoundary(); ok {
		piece.Insert(maxB)
	}
	r.tree.Union(piece)
}

// Complement inverts the region in place.
func (r *Region) Complement() { r.tree.Complement() }

// Union grows the region to the union of itself and other. The
// argument is not modified.
func (r *Region) Union(other *Region) { r.tree.Union(other.tree) }

// Intersect shrinks the region to the intersection of itself and
// other. The argument is not modified.
func (r *Region) Intersect(other *Region) { r.tree.Intersect(other.tree) }

// Difference removes other's material from the region. The argument is
// not modified.
func (r *Region) Difference(other *Region) { r.tree.Difference(other.tree) }

// Xor replaces the region with the symmetric difference of itself and
// other. The argument is not modified.
func (r *Region) Xor(other *Region) { r.tree.Xor(other.tree) }

// Classify locates pt relative to the region.
func (r *Region) Classify(pt float64) bsp.Location {
	return r.tree.Classify(pt)
}

// Contains reports whether pt lies inside or on the boundary of the
// region.
func (r *Region) Contains(pt float64) bool {
	return r.Classify(pt) != bsp.Outside
}

// cell is one inside leaf's extent during boundary extraction.
type cell struct {
	lo, hi float64
}

// ToIntervals returns the region's content as disjoint intervals sorted
// by lower endpoint. Unbounded material produces intervals with
// infinite endpoints. The empty region yields no intervals; the full
// line yields the single full interval.
func (r *Region) ToIntervals() []Interval {
	if r.tree.IsEmpty() {
		return nil
	}
	if r.tree.IsFull() {
		return []Interval{FullInterval(r.prec)}
	}

	var cells []cell
	r.collectCells(r.tree.Root(), cell{lo: math.Inf(-1), hi: math.Inf(1)}, &cells)

	// drop cells pinched to a point by coincident boundaries
	kept := cells[:0]
	for _, c := range cells {
		if math.IsInf(c.lo, 0) || math.IsInf(c.hi, 0) || !r.prec.Eq(c.lo, c.hi) {
			kept = append(kept, c)
		}
	}
	cells = kept

	sort.Slice(cells, func(i, j int) bool { return cells[i].lo < cells[j].lo })

	// join cells that abut within epsilon
	merged := cells[:0]
	for _, c := range cells {
		if n := len(merged); n > 0 && !math.IsInf(merged[n-1].hi, 0) &&
			r.prec.Eq(merged[n-1].hi, c.lo) {
			merged[n-1].hi = c.hi

			continue
		}
		merged = append(merged, c)
	}

	out := make([]Interval, 0, len(merged))
	for _, c := range merged {
		out = append(out, Interval{min: c.lo, max: c.hi, prec: r.prec})
	}

	return out
}

// collectCells walks the tree accumulating the extent of every inside
// leaf. Bounds only tighten on the way down; residual cuts outside the
// current cell (left over from merges) are ignored.
func (r *Region) collectCells(n int, c cell, out *[]cell) {
	if r.tree.IsLeaf(n) {
		if r.tree.IsInside(n) {
			*out = append(*out, c)
		}

		return
	}

	cut := r.tree.CutAt(n)
	loc := cut.Location()

	minusCell, plusCell := c, c
	if cut.IsPositiveFacing() {
		if loc < minusCell.hi {
			minusCell.hi = loc
		}
		if loc > plusCell.lo {
			plusCell.lo = loc
		}
	} else {
		if loc > minusCell.lo {
			minusCell.lo = loc
		}
		if loc < plusCell.hi {
			plusCell.hi = loc
		}
	}

	r.collectCells(r.tree.Minus(n), minusCell, out)
	r.collectCells(r.tree.Plus(n), plusCell, out)
}

// Size returns the total length of the region, +Inf for unbounded
// regions and 0 for the empty region.
func (r *Region) Size() float64 {
	ivs := r.ToIntervals()
	sizes := make([]float64, len(ivs))
	for i, iv := range ivs {
		sizes[i] = iv.Size()
	}

	return floats.Sum(sizes)
}

// BoundarySize returns the measure of the region's boundary. Boundaries
// on the line are finite point sets, so this is always zero.
func (r *Region) BoundarySize() float64 { return 0 }

// Barycenter returns the length-weighted centroid of the region, or nil
// for the empty region and for regions of infinite size, which have no
// finite centroid.
func (r *Region) Barycenter() *float64 {
	ivs := r.ToIntervals()
	if len(ivs) == 0 {
		return nil
	}

	var weighted, total float64
	for _, iv := range ivs {
		if iv.IsInfinite() {
			return nil
		}
		weighted += iv.Midpoint() * iv.Size()
		total += iv.Size()
	}

	c := weighted / total

	return &c
}

// Project returns the boundary point closest to pt, or nil when the
// region has no boundary (full or empty). Of two equidistant boundary
// points, the smaller coordinate wins.
func (r *Region) Project(pt float64) *float64 {
	var best *float64
	var bestDist float64

	consider := func(b float64) {
		if math.IsInf(b, 0) {
			return
		}
		d := math.Abs(pt - b)
		switch {
		case best == nil, r.prec.Lt(d, bestDist):
			best, bestDist = &b, d
		case r.prec.Eq(d, bestDist) && b < *best:
			best = &b
		}
	}

	for _, iv := range r.ToIntervals() {
		consider(iv.Min())
		consider(iv.Max())
	}

	return best
}

// RegionSplit is the result of splitting a region: the material on each
// side of the splitting cut. A nil side means no material there;
// Location summarizes which sides are populated (SplitNeither only for
// an empty input region).
type RegionSplit struct {
	Minus    *Region
	Plus     *Region
	Location bsp.SplitLocation
}

// Split divides the region by the given cut, returning independent
// regions for the material on each side. The receiver is not modified.
func (r *Region) Split(cut Cut) RegionSplit {
	ts := r.tree.Split(cut)
	out := RegionSplit{Location: ts.Location}
	if ts.Minus != nil {
		out.Minus = &Region{tree: ts.Minus, prec: r.prec}
	}
	if ts.Plus != nil {
		out.Plus = &Region{tree: ts.Plus, prec: r.prec}
	}

	return out
}

// Transform maps the region through tr in place. Negative scales
// reverse orientation; the transformed cuts flip their facing so the
// region's inside follows its image.
func (r *Region) Transform(tr AffineTransform) {
	r.tree.Transform(tr)
}
