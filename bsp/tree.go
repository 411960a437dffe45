// SPDX-License-Identifier: MIT
// Package bsp: tree structure and structural algorithms.
//
// This file implements the arena-backed node store plus the traversals
// that do not create new trees: classification, boundary insertion,
// complement, transform, copy and condensing. Splitting lives in
// split.go, boolean merging in merge.go.
package bsp

// leafChild marks a node as a leaf in the child index slots.
const leafChild = -1

// node is one arena slot: either a leaf (minus == leafChild, inside
// meaningful) or an internal node (cut plus two child indexes). A node
// is exactly one of the two, never both.
type node[C any] struct {
	cut    C
	minus  int
	plus   int
	inside bool
}

func (n node[C]) isLeaf() bool { return n.minus == leafChild }

// Tree is a mutable BSP tree owning all of its nodes.
//
// The zero value is not usable; construct trees with New. A Tree is not
// safe for concurrent mutation; Copy produces a fully independent tree.
type Tree[C Cut[C, P], P any] struct {
	nodes []node[C]
	root  int
}

// New returns a one-leaf tree covering the full space (inside true) or
// the empty set (inside false).
//
// Complexity: O(1).
func New[C Cut[C, P], P any](inside bool) *Tree[C, P] {
	t := &Tree[C, P]{}
	t.root = t.newLeaf(inside)

	return t
}

// newLeaf appends a leaf node and returns its handle.
func (t *Tree[C, P]) newLeaf(inside bool) int {
	t.nodes = append(t.nodes, node[C]{minus: leafChild, plus: leafChild, inside: inside})

	return len(t.nodes) - 1
}

// newInternal appends an internal node and returns its handle.
func (t *Tree[C, P]) newInternal(cut C, minus, plus int) int {
	t.nodes = append(t.nodes, node[C]{cut: cut, minus: minus, plus: plus})

	return len(t.nodes) - 1
}

// Root returns the handle of the root node.
func (t *Tree[C, P]) Root() int { return t.root }

// IsLeaf reports whether node n is a leaf.
func (t *Tree[C, P]) IsLeaf(n int) bool { return t.nodes[n].isLeaf() }

// CutAt returns the cut owned by internal node n.
func (t *Tree[C, P]) CutAt(n int) C { return t.nodes[n].cut }

// Minus returns the handle of n's minus-side child.
func (t *Tree[C, P]) Minus(n int) int { return t.nodes[n].minus }

// Plus returns the handle of n's plus-side child.
func (t *Tree[C, P]) Plus(n int) int { return t.nodes[n].plus }

// IsInside reports the inside flag of leaf n.
func (t *Tree[C, P]) IsInside(n int) bool { return t.nodes[n].inside }

// IsFull reports whether the tree is the canonical full-space tree.
func (t *Tree[C, P]) IsFull() bool {
	r := t.nodes[t.root]

	return r.isLeaf() && r.inside
}

// IsEmpty reports whether the tree is the canonical empty tree.
func (t *Tree[C, P]) IsEmpty() bool {
	r := t.nodes[t.root]

	return r.isLeaf() && !r.inside
}

// SetFull resets the tree to the one-leaf full-space tree.
func (t *Tree[C, P]) SetFull() {
	t.nodes = t.nodes[:0]
	t.root = t.newLeaf(true)
}

// SetEmpty resets the tree to the one-leaf empty tree.
func (t *Tree[C, P]) SetEmpty() {
	t.nodes = t.nodes[:0]
	t.root = t.newLeaf(false)
}

// Copy returns a deep, compacted copy of the tree. Mutating either tree
// afterwards leaves the other untouched.
//
// Complexity: O(n) in the number of reachable nodes.
func (t *Tree[C, P]) Copy() *Tree[C, P] {
	dst := &Tree[C, P]{nodes: make([]node[C], 0, len(t.nodes))}
	dst.root = dst.importSubtree(t, t.root)

	return dst
}

// importSubtree copies the subtree of src rooted at n into t, returning
// the handle of the copy. Orphaned arena slots of src are not carried over.
func (t *Tree[C, P]) importSubtree(src *Tree[C, P], n int) int {
	sn := src.nodes[n]
	if sn.isLeaf() {
		return t.newLeaf(sn.inside)
	}
	m := t.importSubtree(src, sn.minus)
	p := t.importSubtree(src, sn.plus)

	return t.newInternal(sn.cut, m, p)
}

// Classify locates pt relative to the region: Inside, Outside or
// Boundary. A point lying on a node's cut classifies both children;
// agreement passes through, disagreement is Boundary, so interior points
// that happen to lie on residual cuts of merged trees stay Inside.
//
// Complexity: O(d) with d the tree depth (O(n) worst case for on-cut points).
func (t *Tree[C, P]) Classify(pt P) Location {
	return t.classifyAt(t.root, pt)
}

func (t *Tree[C, P]) classifyAt(n int, pt P) Location {
	nd := t.nodes[n]
	if nd.isLeaf() {
		if nd.inside {
			return Inside
		}

		return Outside
	}

	switch nd.cut.Side(pt) {
	case SideMinus:
		return t.classifyAt(nd.minus, pt)
	case SidePlus:
		return t.classifyAt(nd.plus, pt)
	default: // on the cut
		minusLoc := t.classifyAt(nd.minus, pt)
		plusLoc := t.classifyAt(nd.plus, pt)
		if minusLoc == plusLoc {
			return minusLoc
		}

		return Boundary
	}
}

// Insert adds one oriented boundary cut to the tree with the
// minus-inside rule: wherever the cut reaches a leaf cell, the cell is
// split with the cut's minus side inside and plus side outside. Pieces
// that degenerate to nothing under splitting contribute no node; a piece
// coincident with an existing cut is already represented and is dropped.
//
// Insert is the raw construction primitive used to build convex regions
// from their boundaries; use the boolean operations for set algebra.
func (t *Tree[C, P]) Insert(cut C) {
	t.insertAt(t.root, cut)
}

func (t *Tree[C, P]) insertAt(n int, cut C) {
	nd := t.nodes[n]
	if nd.isLeaf() {
		minus := t.newLeaf(true)
		plus := t.newLeaf(false)
		t.nodes[n] = node[C]{cut: cut, minus: minus, plus: plus}

		return
	}

	rel := cut.Split(nd.cut)
	switch rel.Location {
	case SplitMinus:
		t.insertAt(nd.minus, rel.Minus)
	case SplitPlus:
		t.insertAt(nd.plus, rel.Plus)
	case SplitBoth:
		t.insertAt(nd.minus, rel.Minus)
		t.insertAt(nd.plus, rel.Plus)
	case SplitNeither:
		// coincident with the node's own cut: nothing to add
	}
}

// Complement inverts the region in place by flipping every leaf's inside
// flag. Applying it twice restores the original classification for every
// point (involution). Full becomes empty and vice versa.
//
// Complexity: O(n).
func (t *Tree[C, P]) Complement() {
	for i := range t.nodes {
		if t.nodes[i].isLeaf() {
			t.nodes[i].inside = !t.nodes[i].inside
		}
	}
}

// Transform applies tr to every cut in the tree. Children stay in
// place: under an orientation-reversing transform ApplyCut flips each
// cut's facing, which by itself keeps every node's minus child on the
// image of its old minus half-space.
//
// Domains whose coordinates wrap (the circle) re-normalize at the region
// level instead of calling this directly; see circle.Region.Transform.
//
// Complexity: O(n).
func (t *Tree[C, P]) Transform(tr Transform[C]) {
	for i := range t.nodes {
		if t.nodes[i].isLeaf() {
			continue
		}
		t.nodes[i].cut = tr.ApplyCut(t.nodes[i].cut)
	}
}

// Condense collapses every internal node whose two children are leaves
// in the same inside state, restoring canonical structure after merges
// and splits. Safe to call at any time.
//
// Complexity: O(n).
func (t *Tree[C, P]) Condense() {
	t.condenseAt(t.root)
}

func (t *Tree[C, P]) condenseAt(n int) {
	nd := t.nodes[n]
	if nd.isLeaf() {
		return
	}
	t.condenseAt(nd.minus)
	t.condenseAt(nd.plus)

	minus, plus := t.nodes[nd.minus], t.nodes[nd.plus]
	if minus.isLeaf() && plus.isLeaf() && minus.inside == plus.inside {
		t.nodes[n] = node[C]{minus: leafChild, plus: leafChild, inside: minus.inside}
	}
}

// Count returns the number of nodes reachable from the root.
func (t *Tree[C, P]) Count() int {
	return t.countAt(t.root)
}

func (t *Tree[C, P]) countAt(n int) int {
	nd := t.nodes[n]
	if nd.isLeaf() {
		return 1
	}

	return 1 + t.countAt(nd.minus) + t.countAt(nd.plus)
}
