// Package precision provides epsilon-bounded floating-point comparison
// contexts.
//
// Every classification decision made by the BSP tree packages — which side
// of a cut a point lies on, whether two boundaries coincide, whether a
// region collapsed to nothing — goes through a Context rather than a raw
// `==` or `<`. This keeps boundary-adjacent points from being
// misclassified by floating round-off.
//
// A Context is an immutable value holding a single non-negative epsilon.
// Two numbers are considered equal when |a-b| ≤ epsilon. Construct one
// with New and share it freely: contexts are safe for concurrent read use
// across any number of trees and cuts.
//
// All comparison methods are total functions with no failure mode; the
// only error surface is New, which rejects a negative or non-finite
// epsilon with ErrInvalidEpsilon.
package precision
