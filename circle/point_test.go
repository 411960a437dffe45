// SPDX-License-Identifier: MIT
package circle_test

import (
	"math"
	"testing"

	"github.com/geomir/bsptree/circle"
	"github.com/stretchr/testify/assert"
)

const testEps = 1e-10

// TestNormalize maps azimuths into [0, 2π), including negatives, values
// beyond a full turn and the seam itself.
func TestNormalize(t *testing.T) {
	assert.InDelta(t, 0, circle.Normalize(0), testEps)
	assert.InDelta(t, math.Pi, circle.Normalize(math.Pi), testEps)
	assert.InDelta(t, 1.5*math.Pi, circle.Normalize(-math.Pi/2), testEps)
	assert.InDelta(t, math.Pi/2, circle.Normalize(2.5*math.Pi), testEps)
	assert.InDelta(t, 0, circle.Normalize(circle.TwoPi), testEps)
	assert.InDelta(t, 0, circle.Normalize(-circle.TwoPi), testEps)
}

// TestPointOf_PreservesRawAzimuth keeps the construction azimuth while
// exposing the normalized equivalent.
func TestPointOf_PreservesRawAzimuth(t *testing.T) {
	p := circle.PointOf(-math.Pi / 2)

	assert.Equal(t, -math.Pi/2, p.Azimuth())
	assert.InDelta(t, 1.5*math.Pi, p.NormalizedAzimuth(), testEps)
}

// TestPointFromVector recovers the azimuth of a direction vector,
// normalized to [0, 2π).
func TestPointFromVector(t *testing.T) {
	assert.InDelta(t, 0, circle.PointFromVector(1, 0).NormalizedAzimuth(), testEps)
	assert.InDelta(t, math.Pi/2, circle.PointFromVector(0, 2).NormalizedAzimuth(), testEps)
	assert.InDelta(t, 1.5*math.Pi, circle.PointFromVector(0, -1).NormalizedAzimuth(), testEps)
}

// TestAntipodal returns the diametrically opposite point.
func TestAntipodal(t *testing.T) {
	p := circle.PointOf(math.Pi / 4).Antipodal()

	assert.InDelta(t, 1.25*math.Pi, p.NormalizedAzimuth(), testEps)
}

// TestDistance measures the shortest angular separation, never more
// than π.
func TestDistance(t *testing.T) {
	a := circle.PointOf(0.1)
	b := circle.PointOf(circle.TwoPi - 0.1)

	assert.InDelta(t, 0.2, a.Distance(b), testEps, "separation across the seam is short")
	assert.InDelta(t, math.Pi, circle.PointOf(0).Distance(circle.PointOf(math.Pi)), testEps)
	assert.InDelta(t, 0, a.Distance(a), testEps)
}

// TestSignedDistance is positive counterclockwise and negative
// clockwise, in (-π, π].
func TestSignedDistance(t *testing.T) {
	a := circle.PointOf(0.1)
	b := circle.PointOf(0.5)

	assert.InDelta(t, 0.4, a.SignedDistance(b), testEps)
	assert.InDelta(t, -0.4, b.SignedDistance(a), testEps)
	assert.InDelta(t, math.Pi, circle.PointOf(0).SignedDistance(circle.PointOf(math.Pi)), testEps)
}
