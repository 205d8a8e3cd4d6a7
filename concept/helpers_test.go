// SPDX-License-Identifier: MIT

package concept_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conceptspace/concept"
	"github.com/katalvlaran/conceptspace/region"
	"github.com/katalvlaran/conceptspace/space"
	"github.com/katalvlaran/conceptspace/weights"
)

const tol = 1e-9

// Fixtures:
//   - line:  one domain "d" with dimension 0.
//   - pair:  domains "a" = {0} and "b" = {1}, weighted 0.5 / 0.5.
//   - plane: one domain "p" = {0, 1}, dimension weights 0.5 / 0.5.

var (
	lineDomains  = map[string][]int{"d": {0}}
	pairDomains  = map[string][]int{"a": {0}, "b": {1}}
	planeDomains = map[string][]int{"p": {0, 1}}
)

func mustSpace(t testing.TB, domains map[string][]int) *space.Space {
	t.Helper()
	sp, err := space.New(domains)
	require.NoError(t, err)
	return sp
}

func mustRegion(t testing.TB, domains map[string][]int, boxes ...region.Box) *region.Region {
	t.Helper()
	r, err := region.New(boxes, domains)
	require.NoError(t, err)
	return r
}

func mustWeights(t testing.TB, doms map[string]float64, dims map[string]map[int]float64) *weights.Weights {
	t.Helper()
	w, err := weights.New(doms, dims)
	require.NoError(t, err)
	return w
}

func mustConcept(t testing.TB, r *region.Region, mu, c float64, w *weights.Weights) *concept.Concept {
	t.Helper()
	k, err := concept.New(r, mu, c, w)
	require.NoError(t, err)
	return k
}

func box1(lo, hi float64) region.Box {
	return region.NewBox([]float64{lo}, []float64{hi})
}

func box2(x0, x1, y0, y1 float64) region.Box {
	return region.NewBox([]float64{x0, y0}, []float64{x1, y1})
}

func lineWeights(t testing.TB) *weights.Weights {
	return mustWeights(t, map[string]float64{"d": 1}, map[string]map[int]float64{"d": {0: 1}})
}

func pairWeights(t testing.TB) *weights.Weights {
	return mustWeights(t,
		map[string]float64{"a": 0.5, "b": 0.5},
		map[string]map[int]float64{"a": {0: 1}, "b": {1: 1}},
	)
}

func planeWeights(t testing.TB) *weights.Weights {
	return mustWeights(t, map[string]float64{"p": 1}, map[string]map[int]float64{"p": {0: 0.5, 1: 0.5}})
}

// lineConcept is a 1-D concept with core [lo, hi].
func lineConcept(t testing.TB, lo, hi, mu, c float64) *concept.Concept {
	return mustConcept(t, mustRegion(t, lineDomains, box1(lo, hi)), mu, c, lineWeights(t))
}

// pairConcept is a 2-D concept over domains a and b with the given boxes.
func pairConcept(t testing.TB, mu, c float64, boxes ...region.Box) *concept.Concept {
	return mustConcept(t, mustRegion(t, pairDomains, boxes...), mu, c, pairWeights(t))
}
