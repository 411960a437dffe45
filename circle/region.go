// SPDX-License-Identifier: MIT
package circle

import (
	"iter"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/geomir/bsptree/bsp"
	"github.com/geomir/bsptree/precision"
)

// Region is a mutable subset of the circle backed by a BSP tree whose
// cuts are oriented points. Any finite union of angular intervals is
// representable, including the empty set and the full circle.
//
// A Region is not safe for concurrent mutation; Copy produces a fully
// independent region.
type Region struct {
	tree *bsp.Tree[Cut, Point]
	prec precision.Context
}

// Full returns the region covering the whole circle.
func Full(prec precision.Context) *Region {
	return &Region{tree: bsp.New[Cut, Point](true), prec: prec}
}

// Empty returns the region covering nothing.
func Empty(prec precision.Context) *Region {
	return &Region{tree: bsp.New[Cut, Point](false), prec: prec}
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

// IsFull reports whether the region covers the whole circle.
func (r *Region) IsFull() bool { return r.tree.IsFull() }

// IsEmpty reports whether the region covers nothing.
func (r *Region) IsEmpty() bool { return r.tree.IsEmpty() }

// SetFull resets the region to the whole circle.
func (r *Region) SetFull() { r.tree.SetFull() }

// SetEmpty resets the region to nothing.
func (r *Region) SetEmpty() { r.tree.SetEmpty() }

// Copy returns a deep copy sharing no state with the receiver.
func (r *Region) Copy() *Region {
	return &Region{tree: r.tree.Copy(), prec: r.prec}
}

// Count returns the number of nodes in the backing tree.
func (r *Region) Count() int { return r.tree.Count() }

// Add grows the region to also cover iv. The region's own precision
// context applies to the merged structure.
func (r *Region) Add(iv Interval) {
	if iv.IsFull() {
		r.tree.SetFull()

		return
	}

	piece := bsp.New[Cut, Point](false)
	minB, _ := iv.MinBoundary()
	maxB, _ := iv.MaxBoundary()
	piece.Insert(minB)
	piece.Insert(maxB)
	r.tree.Union(piece)
}

// Complement inverts the region in place.
func (r *Region) Complement() { r.tree.Complement() }

// Union grows the region to the union of itself and other. The argument
// is not modified.
func (r *Region) Union(other *Region) { r.tree.Union(other.tree) }

// Intersect shrinks the region to the intersection of itself and other.
// The argument is not modified.
func (r *Region) Intersect(other *Region) { r.tree.Intersect(other.tree) }

// Difference removes other's material from the region. The argument is
// not modified.
func (r *Region) Difference(other *Region) { r.tree.Difference(other.tree) }

// Xor replaces the region with the symmetric difference of itself and
// other. The argument is not modified.
func (r *Region) Xor(other *Region) { r.tree.Xor(other.tree) }

// Classify locates pt relative to the region.
func (r *Region) Classify(pt Point) bsp.Location {
	return r.tree.Classify(pt)
}

// Contains reports whether pt lies inside or on the boundary of the
// region.
func (r *Region) Contains(pt Point) bool {
	return r.Classify(pt) != bsp.Outside
}

// cell is one inside leaf's angular extent during boundary extraction.
// lo/hi are normalized bounds used for ordering and merging; loAz/hiAz
// carry the raw azimuths of the bounding cuts for output.
type cell struct {
	lo, hi     float64
	loAz, hiAz float64
}

// ToIntervals returns the region's content as disjoint angular
// intervals, sorted by normalized min azimuth; material straddling the
// zero-azimuth seam is re-joined into a single wrapping interval,
// reported last. The empty region yields no intervals; the full circle
// yields the single full interval.
func (r *Region) ToIntervals() []Interval {
	if r.tree.IsEmpty() {
		return nil
	}
	if r.tree.IsFull() {
		return []Interval{FullInterval(r.prec)}
	}

	var cells []cell
	r.collectCells(r.tree.Root(), cell{lo: 0, hi: TwoPi, loAz: 0, hiAz: TwoPi}, &cells)

	// drop cells pinched to a point by boundaries equivalent to the seam
	kept := cells[:0]
	for _, c := range cells {
		if !r.prec.Eq(c.lo, c.hi) {
			kept = append(kept, c)
		}
	}
	cells = kept

	sort.Slice(cells, func(i, j int) bool { return cells[i].lo < cells[j].lo })

	// join cells that abut within epsilon
	merged := cells[:0]
	for _, c := range cells {
		if n := len(merged); n > 0 && r.prec.Eq(merged[n-1].hi, c.lo) {
			merged[n-1].hi = c.hi
			merged[n-1].hiAz = c.hiAz

			continue
		}
		merged = append(merged, c)
	}

	// re-join material split by the seam into one wrapping interval; a
	// single (0, 2π) cell needs no rearranging, NewInterval below folds
	// its equivalent endpoints into the full interval
	if n := len(merged); n > 1 &&
		r.prec.EqZero(merged[0].lo) && r.prec.Eq(merged[n-1].hi, TwoPi) {
		wrap := cell{
			lo: merged[n-1].lo, loAz: merged[n-1].loAz,
			hi: merged[0].hi, hiAz: merged[0].hiAz,
		}
		merged = append(merged[1:n-1:n-1], wrap)
	}

	out := make([]Interval, 0, len(merged))
	for _, c := range merged {
		iv, err := NewInterval(c.loAz, c.hiAz, r.prec)
		if err != nil {
			continue // unreachable: cell bounds are finite
		}
		out = append(out, iv)
	}

	return out
}

// collectCells walks the tree accumulating the angular bounds of every
// inside leaf. Bounds only tighten on the way down; residual cuts lying
// outside the current cell (left over from merges) are ignored.
func (r *Region) collectCells(n int, c cell, out *[]cell) {
	if r.tree.IsLeaf(n) {
		if r.tree.IsInside(n) {
			*out = append(*out, c)
		}

		return
	}

	cut := r.tree.CutAt(n)
	p := cut.Point()

	minusCell, plusCell := c, c
	if cut.IsPositiveFacing() {
		if p.NormalizedAzimuth() < minusCell.hi {
			minusCell.hi, minusCell.hiAz = p.NormalizedAzimuth(), p.Azimuth()
		}
		if p.NormalizedAzimuth() > plusCell.lo {
			plusCell.lo, plusCell.loAz = p.NormalizedAzimuth(), p.Azimuth()
		}
	} else {
		if p.NormalizedAzimuth() > minusCell.lo {
			minusCell.lo, minusCell.loAz = p.NormalizedAzimuth(), p.Azimuth()
		}
		if p.NormalizedAzimuth() < plusCell.hi {
			plusCell.hi, plusCell.hiAz = p.NormalizedAzimuth(), p.Azimuth()
		}
	}

	r.collectCells(r.tree.Minus(n), minusCell, out)
	r.collectCells(r.tree.Plus(n), plusCell, out)
}

// Boundaries yields the oriented boundary cuts of the region, min
// boundary then max boundary per interval. The full and empty regions
// yield nothing.
func (r *Region) Boundaries() iter.Seq[Cut] {
	return func(yield func(Cut) bool) {
		for _, iv := range r.ToIntervals() {
			minB, ok := iv.MinBoundary()
			if !ok {
				return
			}
			maxB, _ := iv.MaxBoundary()
			if !yield(minB) || !yield(maxB) {
				return
			}
		}
	}
}

// Size returns the total subtended angle of the region, 2π for the full
// circle and 0 for the empty region.
func (r *Region) Size() float64 {
	ivs := r.ToIntervals()
	sizes := make([]float64, len(ivs))
	for i, iv := range ivs {
		sizes[i] = iv.Size()
	}

	return floats.Sum(sizes)
}

// BoundarySize returns the measure of the region's boundary. Boundaries
// on the circle are finite point sets, so this is always zero.
func (r *Region) BoundarySize() float64 { return 0 }

// Barycenter returns the angular centroid: the direction of the
// size-weighted sum of the interval midpoint vectors. It is nil for the
// empty region, for the full circle, and whenever the weighted sum
// cancels to (near) zero, as for two equal intervals on opposite sides
// of the circle.
func (r *Region) Barycenter() *Point {
	if r.tree.IsEmpty() || r.tree.IsFull() {
		return nil
	}

	var vx, vy float64
	for _, iv := range r.ToIntervals() {
		x, y := iv.Midpoint().Vector()
		vx += x * iv.Size()
		vy += y * iv.Size()
	}
	if r.prec.EqZero(math.Hypot(vx, vy)) {
		return nil
	}

	p := PointFromVector(vx, vy)

	return &p
}

// Project returns the boundary point closest to pt by angular distance,
// or nil when the region has no boundary (full or empty). Of two
// equidistant boundary points, the one with the smaller normalized
// azimuth wins.
func (r *Region) Project(pt Point) *Point {
	var best *Point
	var bestDist float64

	consider := func(b Point) {
		d := pt.Distance(b)
		switch {
		case best == nil, r.prec.Lt(d, bestDist):
			best, bestDist = &b, d
		case r.prec.Eq(d, bestDist) && b.NormalizedAzimuth() < best.NormalizedAzimuth():
			best = &b
		}
	}

	for _, iv := range r.ToIntervals() {
		if iv.IsFull() {
			return nil
		}
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
//
// A cut equivalent to azimuth zero cannot separate material, because the
// tree stores the circle cut open at zero: the whole region is reported
// on the cut's facing side unchanged.
func (r *Region) Split(cut Cut) RegionSplit {
	if r.tree.IsEmpty() {
		return RegionSplit{Location: bsp.SplitNeither}
	}

	az := cut.Point().NormalizedAzimuth()
	if r.prec.EqZero(az) || r.prec.Eq(az, TwoPi) {
		if cut.IsPositiveFacing() {
			return RegionSplit{Plus: r.Copy(), Location: bsp.SplitPlus}
		}

		return RegionSplit{Minus: r.Copy(), Location: bsp.SplitMinus}
	}

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

// SplitDiameter divides the region along the full diameter through the
// cut's point and its antipode. The cut's facing picks which half circle
// counts as the minus side: for a positive-facing cut the minus half
// runs from the antipode up to the cut point.
func (r *Region) SplitDiameter(cut Cut) RegionSplit {
	if r.tree.IsEmpty() {
		return RegionSplit{Location: bsp.SplitNeither}
	}

	az := cut.Point().Azimuth()
	below, _ := NewInterval(az-math.Pi, az, r.prec)
	above, _ := NewInterval(az, az+math.Pi, r.prec)

	minusHalf, plusHalf := below, above
	if !cut.IsPositiveFacing() {
		minusHalf, plusHalf = above, below
	}

	minus := r.Copy()
	minus.Intersect(FromInterval(minusHalf))
	plus := r.Copy()
	plus.Intersect(FromInterval(plusHalf))

	out := RegionSplit{}
	if !minus.IsEmpty() {
		out.Minus = minus
	}
	if !plus.IsEmpty() {
		out.Plus = plus
	}
	switch {
	case out.Minus != nil && out.Plus != nil:
		out.Location = bsp.SplitBoth
	case out.Minus != nil:
		out.Location = bsp.SplitMinus
	case out.Plus != nil:
		out.Location = bsp.SplitPlus
	default:
		out.Location = bsp.SplitNeither
	}

	return out
}

// Transform maps the region through tr in place.
//
// The region is rebuilt from its intervals rather than by mapping tree
// cuts: a rotation can carry a cut across the zero-azimuth seam, where
// normalized-azimuth comparison would flip the cut's effective side and
// corrupt the tree. Interval endpoints survive the seam unharmed.
func (r *Region) Transform(tr Transform) {
	if r.tree.IsEmpty() || r.tree.IsFull() {
		return
	}

	ivs := r.ToIntervals()
	r.tree.SetEmpty()
	for _, iv := range ivs {
		lo := tr.Apply(iv.Min().Azimuth())
		hi := tr.Apply(iv.Max().Azimuth())
		if !tr.PreservesOrientation() {
			lo, hi = hi, lo
		}
		mapped, err := NewInterval(lo, hi, r.prec)
		if err != nil {
			continue // unreachable: transforms of finite azimuths are finite
		}
		r.Add(mapped)
	}
}
