// SPDX-License-Identifier: MIT
package circle_test

import (
	"math"
	"testing"

	"github.com/geomir/bsptree/circle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRotation_InvalidAngle rejects NaN and infinite angles with
// ErrInvalidRotation, both at construction and composition.
func TestNewRotation_InvalidAngle(t *testing.T) {
	for _, angle := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := circle.NewRotation(angle)
		assert.ErrorIs(t, err, circle.ErrInvalidRotation, "angle=%v must be rejected", angle)

		_, err = circle.Identity().Rotate(angle)
		assert.ErrorIs(t, err, circle.ErrInvalidRotation, "angle=%v must be rejected", angle)
	}
}

// TestTransform_Apply maps azimuths through rotations and negations.
func TestTransform_Apply(t *testing.T) {
	rot, err := circle.NewRotation(math.Pi / 2)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, rot.Apply(math.Pi/2), testEps)
	assert.True(t, rot.PreservesOrientation())

	neg := circle.Negation()
	assert.InDelta(t, -math.Pi/2, neg.Apply(math.Pi/2), testEps)
	assert.False(t, neg.PreservesOrientation())

	assert.InDelta(t, 1, circle.Identity().Apply(1), testEps)
}

// TestTransform_Composition applies negation before the composed
// rotation: az -> π - az.
func TestTransform_Composition(t *testing.T) {
	tr, err := circle.Negation().Rotate(math.Pi)
	require.NoError(t, err)

	assert.InDelta(t, math.Pi, tr.Apply(0), testEps)
	assert.InDelta(t, math.Pi/2, tr.Apply(math.Pi/2), testEps)
	assert.False(t, tr.PreservesOrientation())

	// double negation restores orientation
	assert.True(t, tr.Negate().PreservesOrientation())
}

// TestTransform_ApplyPoint normalizes the transformed azimuth through
// the Point constructor.
func TestTransform_ApplyPoint(t *testing.T) {
	rot, err := circle.NewRotation(math.Pi)
	require.NoError(t, err)

	p := rot.ApplyPoint(circle.PointOf(1.5 * math.Pi))
	assert.InDelta(t, math.Pi/2, p.NormalizedAzimuth(), testEps)
}

// TestTransform_ApplyCut flips the cut facing exactly when orientation
// is reversed.
func TestTransform_ApplyCut(t *testing.T) {
	c := newCut(t, math.Pi/2, true)

	rot, err := circle.NewRotation(1)
	require.NoError(t, err)
	rotated := rot.ApplyCut(c)
	assert.True(t, rotated.IsPositiveFacing())
	assert.InDelta(t, math.Pi/2+1, rotated.Point().Azimuth(), testEps)

	negated := circle.Negation().ApplyCut(c)
	assert.False(t, negated.IsPositiveFacing())
	assert.InDelta(t, 1.5*math.Pi, negated.Point().NormalizedAzimuth(), testEps)
}
