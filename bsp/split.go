// SPDX-License-Identifier: MIT
// Package bsp: splitting a region tree by an arbitrary cut.
//
// The split walks the tree once, routing each node's structure to the
// side(s) of the splitter it belongs to, then wraps each side with the
// splitter as the new root cut so the result trees are self-contained
// regions. Cut subsets are carried whole rather than trimmed: region
// membership is unaffected by cut surface outside a node's cell, and the
// domain packages derive boundaries from leaf cells, not cut extents.
package bsp

// TreeSplit is the result of Tree.Split: the receiver's region
// intersected with each side of the splitting cut.
//
// A nil side means the region has no material there, letting callers
// distinguish "nothing to do" from an empty result. Location is
// SplitNeither only for an empty receiver, SplitMinus/SplitPlus when the
// whole region lands on one side, and SplitBoth when the cut genuinely
// divides it.
type TreeSplit[C Cut[C, P], P any] struct {
	Minus    *Tree[C, P]
	Plus     *Tree[C, P]
	Location SplitLocation
}

// Split returns two new trees representing the receiver intersected with
// each side of cut. The receiver is not modified.
//
// Complexity: O(n·d) worst case, n nodes and d depth.
func (t *Tree[C, P]) Split(cut C) TreeSplit[C, P] {
	if t.IsEmpty() {
		return TreeSplit[C, P]{Location: SplitNeither}
	}

	work := t.Copy()
	mPart, pPart := work.splitNode(work.root, cut)

	minus := work.sideTree(cut, mPart, true)
	plus := work.sideTree(cut, pPart, false)

	loc := SplitNeither
	switch {
	case minus != nil && plus != nil:
		loc = SplitBoth
	case minus != nil:
		loc = SplitMinus
	case plus != nil:
		loc = SplitPlus
	}

	return TreeSplit[C, P]{Minus: minus, Plus: plus, Location: loc}
}

// splitNode routes the subtree at n to both sides of splitter s,
// returning (minusPart, plusPart) handles in the receiver's arena. The
// parts may share subtrees; sideTree copies them apart.
func (t *Tree[C, P]) splitNode(n int, s C) (int, int) {
	nd := t.nodes[n]
	if nd.isLeaf() {
		// a uniform cell contributes itself to both sides
		return n, n
	}

	rel := s.Split(nd.cut)
	switch rel.Location {
	case SplitNeither:
		// the splitter coincides with this node's cut: the children are
		// already the two sides, modulo orientation
		if s.SimilarOrientation(nd.cut) {
			return nd.minus, nd.plus
		}

		return nd.plus, nd.minus

	case SplitMinus:
		// splitter lies wholly inside this cut's minus half-space; only
		// the minus child straddles it
		subM, subP := t.splitNode(nd.minus, rel.Minus)
		if d := nd.cut.Split(s); d.Location == SplitPlus {
			// this cut, and with it the whole plus half-space, sits on the
			// splitter's plus side
			return subM, t.newInternal(nd.cut, subP, nd.plus)
		}

		return t.newInternal(nd.cut, subM, nd.plus), subP

	case SplitPlus:
		subM, subP := t.splitNode(nd.plus, rel.Plus)
		if d := nd.cut.Split(s); d.Location == SplitMinus {
			return t.newInternal(nd.cut, nd.minus, subM), subP
		}

		return subM, t.newInternal(nd.cut, nd.minus, subP)

	default: // SplitBoth
		mM, mP := t.splitNode(nd.minus, rel.Minus)
		pM, pP := t.splitNode(nd.plus, rel.Plus)

		return t.newInternal(nd.cut, mM, pM), t.newInternal(nd.cut, mP, pP)
	}
}

// sideTree wraps one split part with the splitter as its root cut,
// producing an independent condensed tree, or nil when the part holds no
// material.
func (t *Tree[C, P]) sideTree(cut C, part int, minusSide bool) *Tree[C, P] {
	dst := &Tree[C, P]{}
	inner := dst.importSubtree(t, part)
	blocked := dst.newLeaf(false)
	if minusSide {
		dst.root = dst.newInternal(cut, inner, blocked)
	} else {
		dst.root = dst.newInternal(cut, blocked, inner)
	}

	dst.Condense()
	if dst.IsEmpty() {
		return nil
	}

	return dst
}
