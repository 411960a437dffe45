// Package bsp implements the dimension-generic BSP (binary space
// partitioning) tree core shared by every geometric domain.
//
// A Tree represents an arbitrary region of space as a binary tree over
// oriented cuts. Each internal node owns one Cut and two children: the
// "minus" child covers the half-space on the cut's negative side, the
// "plus" child the positive side. Each leaf is tagged inside or outside.
// The degenerate one-leaf tree is legal and represents the full space
// (inside leaf) or the empty set (outside leaf).
//
// The tree algorithms — point classification, boundary insertion,
// complement, boolean merging (union/intersection/difference/xor),
// splitting by an arbitrary cut, and geometric transforms — are written
// once against the Cut capability interface and reused unchanged by the
// circle and line packages. Concrete cut types decide what "minus side"
// means for their geometry; the tree never inspects their representation.
//
// Nodes are arena-allocated inside their owning tree and addressed by
// integer handles, so a deep copy is an index-preserving slice walk and
// no parent/child pointer bookkeeping exists. Trees are plain mutable
// values: a single tree must not be mutated concurrently, while separate
// trees (including copies) are fully independent.
//
// All traversals are total functions bounded by tree depth; invalid
// geometry is rejected by the domain packages at construction time and
// never reaches the tree (see the precision package for the comparison
// discipline).
package bsp
