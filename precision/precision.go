// SPDX-License-Identifier: MIT
package precision

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// ErrInvalidEpsilon indicates that a Context was requested with a
// negative or non-finite epsilon.
var ErrInvalidEpsilon = errors.New("precision: epsilon must be finite and non-negative")

// Comparison results returned by Compare and Sign.
const (
	// Less means a < b beyond the context's epsilon.
	Less = -1
	// Equal means |a-b| lies within the context's epsilon.
	Equal = 0
	// Greater means a > b beyond the context's epsilon.
	Greater = 1
)

// Context is an immutable epsilon-bounded comparison policy.
//
// The zero value is a valid exact-comparison context (epsilon 0); use New
// to obtain one with a custom tolerance.
type Context struct {
	eps float64
}

// New returns a Context comparing values with the given absolute epsilon.
// Returns ErrInvalidEpsilon if eps is negative, NaN or infinite.
//
// Complexity: O(1).
func New(eps float64) (Context, error) {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return Context{}, ErrInvalidEpsilon
	}

	return Context{eps: eps}, nil
}

// Epsilon returns the tolerance carried by the context.
func (c Context) Epsilon() float64 { return c.eps }

// Eq reports whether a and b are equal within epsilon.
func (c Context) Eq(a, b float64) bool {
	return scalar.EqualWithinAbs(a, b, c.eps)
}

// EqZero reports whether x is equal to zero within epsilon.
func (c Context) EqZero(x float64) bool {
	return scalar.EqualWithinAbs(x, 0, c.eps)
}

// Compare returns Less, Equal or Greater for a versus b, treating values
// within epsilon of each other as Equal.
func (c Context) Compare(a, b float64) int {
	if c.Eq(a, b) {
		return Equal
	}
	if a < b {
		return Less
	}

	return Greater
}

// Sign classifies x against zero: Less for negative, Equal for values
// within epsilon of zero, Greater for positive.
func (c Context) Sign(x float64) int {
	return c.Compare(x, 0)
}

// Lt reports a < b beyond epsilon.
func (c Context) Lt(a, b float64) bool { return c.Compare(a, b) == Less }

// Lte reports a < b or a ≈ b.
func (c Context) Lte(a, b float64) bool { return c.Compare(a, b) != Greater }

// Gt reports a > b beyond epsilon.
func (c Context) Gt(a, b float64) bool { return c.Compare(a, b) == Greater }

// Gte reports a > b or a ≈ b.
func (c Context) Gte(a, b float64) bool { return c.Compare(a, b) != Less }
