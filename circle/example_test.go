// SPDX-License-Identifier: MIT
package circle_test

import (
	"fmt"
	"math"

	"github.com/geomir/bsptree/circle"
	"github.com/geomir/bsptree/precision"
)

// ExampleRegion builds a region from two intervals, one wrapping the
// zero-azimuth seam, and queries its basic properties.
func ExampleRegion() {
	prec, _ := precision.New(1e-10)

	first, _ := circle.NewInterval(-math.Pi/4, math.Pi/4, prec)
	second, _ := circle.NewInterval(math.Pi, 1.5*math.Pi, prec)

	r := circle.Empty(prec)
	r.Add(first)
	r.Add(second)

	fmt.Printf("intervals: %d\n", len(r.ToIntervals()))
	fmt.Printf("size: %.4f\n", r.Size())
	fmt.Printf("origin: %v\n", r.Classify(circle.PointOf(0)))
	fmt.Printf("gap: %v\n", r.Classify(circle.PointOf(math.Pi/2)))

	// Output:
	// intervals: 2
	// size: 3.1416
	// origin: Inside
	// gap: Outside
}

// ExampleRegion_Split divides the upper half circle at azimuth π/2.
func ExampleRegion_Split() {
	prec, _ := precision.New(1e-10)

	iv, _ := circle.NewInterval(0, math.Pi, prec)
	r := circle.FromInterval(iv)

	cut, _ := circle.NewCut(math.Pi/2, true, prec)
	split := r.Split(cut)

	fmt.Printf("location: %v\n", split.Location)
	fmt.Printf("minus size: %.4f\n", split.Minus.Size())
	fmt.Printf("plus size: %.4f\n", split.Plus.Size())

	// Output:
	// location: Both
	// minus size: 1.5708
	// plus size: 1.5708
}
