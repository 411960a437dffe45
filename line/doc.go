// Package line implements regions of the real line (the 1-dimensional
// Euclidean space) on top of the generic BSP tree core.
//
// Positions are plain float64 coordinates. A Cut is an oriented point: a
// positive-facing cut's plus side holds the larger coordinates. An
// Interval is a connected run of the line whose endpoints may be
// infinite; the full line is the interval (-inf, +inf).
//
// Unlike the circle, the line does not wrap, so intervals and regions
// may have infinite size and transforms act on tree cuts directly.
// Region is the mutable region type:
//
//	prec, _ := precision.New(1e-10)
//	iv, _ := line.NewInterval(1, 2, prec)
//	r := line.FromInterval(iv)
//	r.Size()                 // 1
//	r.Classify(1.5)          // Inside
//
// Construction of cuts, intervals and transforms validates its inputs
// and returns sentinel errors; queries and set operations never fail.
package line
