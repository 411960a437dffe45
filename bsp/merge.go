// SPDX-License-Identifier: MIT
// Package bsp: boolean set operations via recursive tree merging.
//
// Each operation merges another region tree into the receiver. The merge
// descends both trees simultaneously: when one side reaches a leaf, a
// per-operation rule resolves the result from the leaf's inside state
// and the other side's remaining subtree; otherwise the other subtree is
// split by the current node's cut and the halves merge into the node's
// children. Results are condensed and compacted before returning.
package bsp

// mergeRule resolves a merge in which one operand became a uniform leaf.
// It receives the leaf's inside state and the other operand's subtree
// handle, and returns the handle of the merged result.
type mergeRule[C Cut[C, P], P any] func(t *Tree[C, P], leafInside bool, other int) int

// Union replaces the receiver's region with the union of itself and
// other. The argument tree is not modified.
//
// Complexity: O(n·m) worst case over the two node counts.
func (t *Tree[C, P]) Union(other *Tree[C, P]) {
	t.merge(other, func(t *Tree[C, P], leafInside bool, o int) int {
		if leafInside {
			return t.newLeaf(true)
		}

		return o
	})
}

// Intersect replaces the receiver's region with the intersection of
// itself and other. The argument tree is not modified.
func (t *Tree[C, P]) Intersect(other *Tree[C, P]) {
	t.merge(other, func(t *Tree[C, P], leafInside bool, o int) int {
		if leafInside {
			return o
		}

		return t.newLeaf(false)
	})
}

// Difference replaces the receiver's region with the part of itself not
// covered by other. The argument tree is not modified.
func (t *Tree[C, P]) Difference(other *Tree[C, P]) {
	flipped := other.Copy()
	flipped.Complement()
	t.Intersect(flipped)
}

// Xor replaces the receiver's region with the symmetric difference of
// itself and other. The argument tree is not modified.
func (t *Tree[C, P]) Xor(other *Tree[C, P]) {
	t.merge(other, func(t *Tree[C, P], leafInside bool, o int) int {
		if leafInside {
			return t.flippedSubtree(o)
		}

		return o
	})
}

// merge runs the generic merge of other into the receiver under rule,
// then condenses and compacts the arena.
func (t *Tree[C, P]) merge(other *Tree[C, P], rule mergeRule[C, P]) {
	imported := t.importSubtree(other, other.root)
	t.root = t.mergeNodes(t.root, imported, rule)
	t.Condense()
	t.compact()
}

// mergeNodes merges the subtrees at a and b, returning the result handle.
// The rule must be symmetric in its operands; all the boolean operations
// above are.
func (t *Tree[C, P]) mergeNodes(a, b int, rule mergeRule[C, P]) int {
	if t.nodes[a].isLeaf() {
		return rule(t, t.nodes[a].inside, b)
	}
	if t.nodes[b].isLeaf() {
		return rule(t, t.nodes[b].inside, a)
	}

	cut := t.nodes[a].cut
	bMinus, bPlus := t.splitNode(b, cut)
	minus := t.mergeNodes(t.nodes[a].minus, bMinus, rule)
	plus := t.mergeNodes(t.nodes[a].plus, bPlus, rule)

	return t.newInternal(cut, minus, plus)
}

// flippedSubtree returns a copy of the subtree at n with every leaf's
// inside state inverted. The source subtree is left intact, so shared
// structure produced by splitNode stays valid.
func (t *Tree[C, P]) flippedSubtree(n int) int {
	nd := t.nodes[n]
	if nd.isLeaf() {
		return t.newLeaf(!nd.inside)
	}
	m := t.flippedSubtree(nd.minus)
	p := t.flippedSubtree(nd.plus)

	return t.newInternal(nd.cut, m, p)
}

// compact drops arena slots no longer reachable from the root.
func (t *Tree[C, P]) compact() {
	fresh := &Tree[C, P]{nodes: make([]node[C], 0, t.Count())}
	fresh.root = fresh.importSubtree(t, t.root)
	*t = *fresh
}
