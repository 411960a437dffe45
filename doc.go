// Package bsptree is an epsilon-robust engine for representing regions of
// space — subsets of the circle or of the real line — as binary space
// partitioning (BSP) trees, and for running boolean and geometric
// operations on them.
//
// 🧭 What is bsptree?
//
//	A small, pure-Go library that brings together:
//		• Precision contexts: epsilon-bounded comparison for every decision
//		• A dimension-generic BSP tree core: classify, split, merge, condense
//		• Region algebra: union, intersection, difference, xor, complement
//		• Region measures: size, boundary size, barycenter
//		• Boundary extraction with wraparound merging on circular domains
//		• Nearest-boundary projection with documented tie-breaking
//
// ✨ Why choose bsptree?
//
//   - Floating-point robust – every comparison goes through an explicit
//     precision.Context; boundary-adjacent points are never misclassified
//     by round-off
//   - Dimension generic – the tree algorithms are written once against a
//     small Cut interface and reused by every domain
//   - Pure Go – no cgo, no hidden deps
//
// Everything is organized under four subpackages:
//
//	precision/ — epsilon comparison contexts shared by cuts and regions
//	bsp/       — the generic tree: nodes, splitting, merging, transforms
//	circle/    — regions on the unit circle (angular intervals, diameters)
//	line/      — regions on the real line (intervals, affine transforms)
//
// Quick ASCII example:
//
//	      π/2
//	   ╱──────╲        the circular region [0, π/2]:
//	  │        ●0      one BSP tree with two cuts,
//	   ╲______╱        inside between them
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/geomir/bsptree
package bsptree
