// SPDX-License-Identifier: MIT

package weights_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/conceptspace/weights"
)

const tol = 1e-12

func mustNew(t *testing.T, doms map[string]float64, dims map[string]map[int]float64) *weights.Weights {
	t.Helper()
	w, err := weights.New(doms, dims)
	require.NoError(t, err)
	return w
}

// assertClose compares two Weights value by value within tol.
func assertClose(t *testing.T, want, got *weights.Weights) {
	t.Helper()
	require.Equal(t, want.Domains(), got.Domains())
	for dom := range want.Domains() {
		wv, _ := want.DomainWeight(dom)
		gv, _ := got.DomainWeight(dom)
		assert.InDelta(t, wv, gv, tol, "domain %s", dom)
		for _, dim := range want.Domains()[dom] {
			wd, _ := want.DimensionWeight(dom, dim)
			gd, _ := got.DimensionWeight(dom, dim)
			assert.InDelta(t, wd, gd, tol, "dimension %d of %s", dim, dom)
		}
	}
}

func TestNew_Normalizes(t *testing.T) {
	w := mustNew(t,
		map[string]float64{"color": 2, "taste": 2},
		map[string]map[int]float64{"color": {0: 1, 1: 3}, "taste": {2: 5}},
	)

	v, ok := w.DomainWeight("color")
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	v, _ = w.DimensionWeight("color", 1)
	assert.Equal(t, 0.75, v)
	v, _ = w.DimensionWeight("taste", 2)
	assert.Equal(t, 1.0, v)

	assert.NoError(t, w.Validate())
	assert.True(t, w.IsWellFormed())
	assert.Equal(t, map[string][]int{"color": {0, 1}, "taste": {2}}, w.Domains())
	assert.Equal(t, []string{"color", "taste"}, w.DomainNames())
}

func TestNew_CopiesInput(t *testing.T) {
	doms := map[string]float64{"a": 1}
	dims := map[string]map[int]float64{"a": {0: 1}}
	w := mustNew(t, doms, dims)

	doms["a"] = 7
	dims["a"][0] = 7
	dims["a"][1] = 3

	assert.Equal(t, map[string][]int{"a": {0}}, w.Domains())
	v, _ := w.DimensionWeight("a", 0)
	assert.Equal(t, 1.0, v)
}

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		doms map[string]float64
		dims map[string]map[int]float64
		want error
	}{
		{"no domains", nil, nil, weights.ErrEmpty},
		{"domain without dimensions", map[string]float64{"a": 1}, map[string]map[int]float64{"a": {}}, weights.ErrEmpty},
		{"key count mismatch", map[string]float64{"a": 1, "b": 1}, map[string]map[int]float64{"a": {0: 1}}, weights.ErrDomainSetMismatch},
		{"key name mismatch", map[string]float64{"a": 1}, map[string]map[int]float64{"b": {0: 1}}, weights.ErrDomainSetMismatch},
		{"negative domain weight", map[string]float64{"a": -1}, map[string]map[int]float64{"a": {0: 1}}, weights.ErrInvalidWeight},
		{"NaN dimension weight", map[string]float64{"a": 1}, map[string]map[int]float64{"a": {0: math.NaN()}}, weights.ErrInvalidWeight},
		{"Inf domain weight", map[string]float64{"a": math.Inf(1)}, map[string]map[int]float64{"a": {0: 1}}, weights.ErrInvalidWeight},
		{"negative dimension index", map[string]float64{"a": 1}, map[string]map[int]float64{"a": {-1: 1}}, weights.ErrInvalidDimension},
		{"zero domain total", map[string]float64{"a": 0}, map[string]map[int]float64{"a": {0: 1}}, weights.ErrZeroTotal},
		{"zero dimension total", map[string]float64{"a": 1}, map[string]map[int]float64{"a": {0: 0}}, weights.ErrZeroTotal},
		{"dimension in two domains", map[string]float64{"a": 1, "b": 1}, map[string]map[int]float64{"a": {0: 1}, "b": {0: 1}}, weights.ErrDuplicateDimension},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := weights.New(tc.doms, tc.dims)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, w)
		})
	}
}

func TestValidate_ZeroAndNil(t *testing.T) {
	var nilW *weights.Weights
	assert.ErrorIs(t, nilW.Validate(), weights.ErrNilWeights)
	assert.False(t, nilW.IsWellFormed())
	assert.ErrorIs(t, (&weights.Weights{}).Validate(), weights.ErrEmpty)
}

func TestMerge_SharedAndExclusiveDomains(t *testing.T) {
	a := mustNew(t,
		map[string]float64{"color": 0.5, "taste": 0.5},
		map[string]map[int]float64{"color": {0: 0.25, 1: 0.75}, "taste": {2: 1}},
	)
	b := mustNew(t,
		map[string]float64{"color": 1},
		map[string]map[int]float64{"color": {0: 0.75, 1: 0.25}},
	)

	m, err := a.Merge(b, 0.5, 0.5)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	// color = 0.5*0.5 + 0.5*1 = 0.75, taste = 0.5 → normalized 0.6 / 0.4.
	v, _ := m.DomainWeight("color")
	assert.InDelta(t, 0.6, v, tol)
	v, _ = m.DomainWeight("taste")
	assert.InDelta(t, 0.4, v, tol)
	v, _ = m.DimensionWeight("color", 0)
	assert.InDelta(t, 0.5, v, tol)
	v, _ = m.DimensionWeight("taste", 2)
	assert.InDelta(t, 1.0, v, tol)
}

func TestMerge_Commutes(t *testing.T) {
	a := mustNew(t,
		map[string]float64{"x": 0.3, "y": 0.7},
		map[string]map[int]float64{"x": {0: 0.1, 1: 0.9}, "y": {2: 1}},
	)
	b := mustNew(t,
		map[string]float64{"x": 0.6, "z": 0.4},
		map[string]map[int]float64{"x": {0: 0.5, 1: 0.5}, "z": {3: 1}},
	)

	ab, err := a.Merge(b, 0.5, 0.5)
	require.NoError(t, err)
	ba, err := b.Merge(a, 0.5, 0.5)
	require.NoError(t, err)
	assertClose(t, ab, ba)
}

func TestMerge_Errors(t *testing.T) {
	a := mustNew(t, map[string]float64{"x": 1}, map[string]map[int]float64{"x": {0: 1, 1: 1}})
	b := mustNew(t, map[string]float64{"x": 1}, map[string]map[int]float64{"x": {0: 1}})
	c := mustNew(t, map[string]float64{"x": 1}, map[string]map[int]float64{"x": {0: 1, 2: 1}})
	d := mustNew(t, map[string]float64{"y": 1}, map[string]map[int]float64{"y": {0: 1}})

	_, err := a.Merge(b, 0.5, 0.5)
	assert.ErrorIs(t, err, weights.ErrDimensionConflict)
	_, err = a.Merge(c, 0.5, 0.5)
	assert.ErrorIs(t, err, weights.ErrDimensionConflict)
	_, err = b.Merge(d, 0.5, 0.5)
	assert.ErrorIs(t, err, weights.ErrDuplicateDimension)
	_, err = a.Merge(nil, 0.5, 0.5)
	assert.ErrorIs(t, err, weights.ErrNilWeights)
	_, err = a.Merge(a, 0, 0)
	assert.ErrorIs(t, err, weights.ErrBadMergeFactors)
	_, err = a.Merge(a, -1, 2)
	assert.ErrorIs(t, err, weights.ErrBadMergeFactors)
	_, err = a.Merge(a, math.NaN(), 1)
	assert.ErrorIs(t, err, weights.ErrBadMergeFactors)
}

// TestMerge_PostCondition merges random well-formed weights over the same
// grouping and checks the result stays well-formed.
func TestMerge_PostCondition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	random := func() *weights.Weights {
		return mustNew(t,
			map[string]float64{"a": rng.Float64() + 0.01, "b": rng.Float64() + 0.01},
			map[string]map[int]float64{
				"a": {0: rng.Float64() + 0.01, 1: rng.Float64() + 0.01},
				"b": {2: rng.Float64() + 0.01},
			},
		)
	}
	for i := 0; i < 200; i++ {
		x, y := random(), random()
		s := rng.Float64()
		m, err := x.Merge(y, s, 1-s+0.001)
		require.NoError(t, err)
		require.True(t, m.IsWellFormed(), "merge %d: %s", i, m)
	}
}

func TestProject(t *testing.T) {
	w := mustNew(t,
		map[string]float64{"a": 0.25, "b": 0.75},
		map[string]map[int]float64{"a": {0: 1}, "b": {1: 0.5, 2: 0.5}},
	)

	p, err := w.Project("b")
	require.NoError(t, err)
	v, _ := p.DomainWeight("b")
	assert.Equal(t, 1.0, v)
	v, _ = p.DimensionWeight("b", 2)
	assert.Equal(t, 0.5, v)
	_, ok := p.DomainWeight("a")
	assert.False(t, ok)

	same, err := w.Project("a", "b", "a")
	require.NoError(t, err)
	assert.True(t, w.Equal(same))

	_, err = w.Project()
	assert.ErrorIs(t, err, weights.ErrEmptyProjection)
	_, err = w.Project("c")
	assert.ErrorIs(t, err, weights.ErrUnknownDomain)
}

func TestCloneEqualString(t *testing.T) {
	w := mustNew(t, map[string]float64{"a": 1}, map[string]map[int]float64{"a": {1: 1, 0: 1}})

	cp := w.Clone()
	assert.True(t, w.Equal(cp))
	assert.NotSame(t, w, cp)

	dims := w.DimensionWeights()
	dims["a"][0] = 42
	v, _ := w.DimensionWeight("a", 0)
	assert.Equal(t, 0.5, v)

	other := mustNew(t, map[string]float64{"a": 1}, map[string]map[int]float64{"a": {0: 1, 1: 3}})
	assert.False(t, w.Equal(other))
	assert.False(t, w.Equal(nil))

	assert.Equal(t, "<{a:1},{a:{0:0.5,1:0.5}}>", w.String())
}
