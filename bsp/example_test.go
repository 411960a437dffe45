// SPDX-License-Identifier: MIT
package bsp_test

import (
	"fmt"

	"github.com/geomir/bsptree/bsp"
	"github.com/geomir/bsptree/line"
	"github.com/geomir/bsptree/precision"
)

// ExampleTree builds the segment (1, 3) on the real line from two
// boundary inserts and classifies points against it.
func ExampleTree() {
	prec, _ := precision.New(1e-10)

	tree := bsp.New[line.Cut, float64](false)
	lower, _ := line.NewCut(1, false, prec)
	upper, _ := line.NewCut(3, true, prec)
	tree.Insert(lower)
	tree.Insert(upper)

	fmt.Println(tree.Classify(2))
	fmt.Println(tree.Classify(5))
	fmt.Println(tree.Classify(1))

	// Output:
	// Inside
	// Outside
	// Boundary
}

// ExampleTree_Union merges two overlapping segments into one region.
func ExampleTree_Union() {
	prec, _ := precision.New(1e-10)

	segment := func(lo, hi float64) *bsp.Tree[line.Cut, float64] {
		t := bsp.New[line.Cut, float64](false)
		lower, _ := line.NewCut(lo, false, prec)
		upper, _ := line.NewCut(hi, true, prec)
		t.Insert(lower)
		t.Insert(upper)

		return t
	}

	merged := segment(0, 2)
	merged.Union(segment(1, 3))

	fmt.Println(merged.Classify(0.5))
	fmt.Println(merged.Classify(2.5))
	fmt.Println(merged.Classify(4))

	// Output:
	// Inside
	// Inside
	// Outside
}
