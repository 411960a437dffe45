// Package circle implements regions on the unit circle (the 1-sphere)
// on top of the generic BSP tree core.
//
// Positions on the circle are azimuths in radians. A Point keeps the
// azimuth it was created with and exposes the equivalent normalized
// azimuth in [0, 2π); a Cut is an oriented point on the circle whose
// plus side holds the larger normalized azimuths; an Interval is the set
// of azimuths swept counterclockwise from its min boundary to its max
// boundary, possibly wrapping through zero.
//
// The circle is represented cut open at azimuth zero: cuts compare
// normalized azimuths directly, and a region whose material straddles
// zero is stored as two tree cells that boundary extraction re-joins
// into one interval. A consequence worth knowing: a splitting cut
// equivalent to azimuth zero cannot separate material and degenerates to
// an all-on-one-side split.
//
// Region is the mutable region type. Build one with Full, Empty,
// FromInterval, FromIntervals or FromBoundaries, then combine and query:
//
//	prec, _ := precision.New(1e-10)
//	iv, _ := circle.NewInterval(0, math.Pi/2, prec)
//	r := circle.FromInterval(iv)
//	r.Size()                    // π/2
//	r.Classify(circle.PointOf(math.Pi / 4))  // Inside
//
// Angular measures: a region's size is its total subtended angle
// (2π for the full circle); the boundary of any non-full, non-empty
// region is a finite set of points and therefore always has measure
// zero; the barycenter is the direction of the size-weighted sum of
// interval midpoint vectors, and is reported as nil when that sum
// cancels (for example two equal intervals on opposite sides of the
// circle) — a genuine property of the centroid, not an error.
//
// All operations consult the precision.Context the region was created
// with; construction of cuts, intervals, rotations and regions validates
// its inputs and returns sentinel errors, so traversals never fail.
package circle
