// SPDX-License-Identifier: MIT

package concept_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conceptspace/concept"
	"github.com/katalvlaran/conceptspace/region"
	"github.com/katalvlaran/conceptspace/space"
)

// TestMembership_PointCore is the one-dimensional reference scenario:
// a point core at 0, mu = 1, c = 1.
func TestMembership_PointCore(t *testing.T) {
	sp := mustSpace(t, lineDomains)
	k := lineConcept(t, 0, 0, 1, 1)

	m, err := k.Membership(sp, []float64{0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, m)

	m, err = k.Membership(sp, []float64{5})
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-5), m, 1e-15)
	assert.InDelta(t, 0.006738, m, 1e-6)

	m, err = k.Membership(sp, []float64{-5})
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-5), m, 1e-15)
}

func TestMembership_ClosedForm1D(t *testing.T) {
	sp := mustSpace(t, lineDomains)
	k := lineConcept(t, -1, 2, 0.7, 0.3)

	for _, x := range []float64{-4, -1, 0, 2, 2.5, 9} {
		d := math.Max(0, math.Max(-1-x, x-2))
		m, err := k.Membership(sp, []float64{x})
		require.NoError(t, err)
		assert.InDelta(t, 0.7*math.Exp(-0.3*d), m, 1e-15, "x=%v", x)
	}
}

func TestMembership_TwoDomains(t *testing.T) {
	sp := mustSpace(t, pairDomains)
	k := pairConcept(t, 1, 2, box2(0, 1, 0, 1))

	// distance = 0.5·|Δx| + 0.5·|Δy| = 0.5·2 + 0.5·3 = 2.5
	m, err := k.Membership(sp, []float64{3, -3})
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-5), m, 1e-15)
}

func TestMembership_UsesNearestBox(t *testing.T) {
	sp := mustSpace(t, pairDomains)
	k := pairConcept(t, 1, 1, box2(0, 4, 0, 1), box2(0, 1, 0, 4))

	// Nearest to (4, 3) is the vertical box: Δx = 3 → 1.5, versus
	// the horizontal box: Δy = 2 → 1.0.
	m, err := k.Membership(sp, []float64{4, 3})
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(-1), m, 1e-15)
}

// TestMembership_Bounds checks 0 < m ≤ mu everywhere, with equality exactly
// on the crisp core.
func TestMembership_Bounds(t *testing.T) {
	sp := mustSpace(t, pairDomains)
	mu := 0.8
	k := pairConcept(t, mu, 0.5, box2(-1, 2, 0, 1), box2(0, 1, -2, 3))
	core := k.Region()

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		p := []float64{rng.Float64()*12 - 6, rng.Float64()*12 - 6}
		m, err := k.Membership(sp, p)
		require.NoError(t, err)
		assert.Greater(t, m, 0.0)
		assert.LessOrEqual(t, m, mu)
		assert.Equal(t, core.Contains(p), m == mu, "point %v membership %v", p, m)
	}

	m, err := k.Membership(sp, []float64{0.5, 2.5})
	require.NoError(t, err)
	assert.Equal(t, mu, m)
}

func TestMembership_NonIncreasingWithDistance(t *testing.T) {
	sp := mustSpace(t, planeDomains)
	k := mustConcept(t, mustRegion(t, planeDomains, box2(0, 1, 0, 1)), 1, 1.5, planeWeights(t))

	prev := math.Inf(1)
	for step := 0; step <= 40; step++ {
		x := 0.5 + float64(step)*0.25
		m, err := k.Membership(sp, []float64{x, x})
		require.NoError(t, err)
		assert.LessOrEqual(t, m, prev, "step %d", step)
		prev = m
	}
}

func TestMembership_Errors(t *testing.T) {
	sp := mustSpace(t, lineDomains)
	k := lineConcept(t, 0, 1, 1, 1)

	_, err := k.Membership(sp, []float64{0, 0})
	assert.ErrorIs(t, err, region.ErrPointLength)

	_, err = k.Membership(sp, []float64{math.NaN()})
	assert.ErrorIs(t, err, region.ErrInvalidValue)

	_, err = k.Membership(nil, []float64{3})
	assert.ErrorIs(t, err, space.ErrNilSpace)

	wide := mustSpace(t, pairDomains)
	_, err = k.Membership(wide, []float64{3})
	assert.ErrorIs(t, err, space.ErrPointLength)
}

func TestMinDistance_EmptyCandidates(t *testing.T) {
	sp := mustSpace(t, lineDomains)

	_, err := concept.ExportedMinDistance(sp, nil, []float64{1}, lineWeights(t))
	assert.ErrorIs(t, err, concept.ErrNoCandidates)

	d, err := concept.ExportedMinDistance(sp, [][]float64{{4}, {2}, {7}}, []float64{1}, lineWeights(t))
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)
}
