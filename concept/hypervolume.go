// SPDX-License-Identifier: MIT

package concept

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/conceptspace/region"
	"github.com/katalvlaran/conceptspace/space"
)

// Hypervolume returns the integral of Membership over the whole space.
//
// Algorithm Outline:
//  1. Check that region, weights and sp agree on the domain grouping.
//  2. Inclusion-exclusion over the K boxes: for l = 1..K, add
//     (-1)^(l+1) · Σ_{|S| = l} V(∩S), where V is the single-box closed form.
//     An empty intersection contributes exactly 0 and is skipped.
//  3. V(box) = factor · Σ_{i=0..n} Σ_{|T| = i} Π_{d∉T} s_d·b_d·c · Π_dom ball(k_dom)
//     with s_d = w_dom·sqrt(w_dim), b_d the box extent on d,
//     factor = mu / (c^n · Π_d s_d), k_dom = |T ∩ dom| and
//     ball(k) = k! · π^(k/2) / Γ(k/2 + 1).
//
// The integral runs over the dimensions of the concept's own domains; n is
// their count. A zero dimension or domain weight means membership never
// decays along that axis and the result is +Inf.
//
// Complexity: O((2^K − 1) · 2^n · n). No special-casing: large K or n are the
// caller's responsibility.
func (k *Concept) Hypervolume(sp *space.Space) (float64, error) {
	return k.hypervolumeOfBoxes(sp, k.region.Boxes())
}

// hypervolumeOfBoxes runs inclusion-exclusion over boxes with the concept's
// mu, c and weights. boxes need not share a common point.
func (k *Concept) hypervolumeOfBoxes(sp *space.Space, boxes []region.Box) (float64, error) {
	kern, err := k.newKernel(sp)
	if err != nil {
		return 0, fmt.Errorf("concept: hypervolume: %w", err)
	}
	// A zero weight leaves an axis without decay. Every box term is then
	// +Inf and inclusion-exclusion would produce Inf - Inf.
	if kern.unbounded {
		return math.Inf(1), nil
	}

	var total float64
	for l := 1; l <= len(boxes); l++ {
		sign := 1.0
		if l%2 == 0 {
			sign = -1.0
		}
		var inner float64
		forEachCombination(len(boxes), l, func(idx []int) {
			inter, ok := boxes[idx[0]], true
			for _, j := range idx[1:] {
				if inter, ok = inter.Intersect(boxes[j]); !ok {
					return
				}
			}
			inner += kern.box(inter)
		})
		total += sign * inner
	}

	return total, nil
}

// kernel caches everything the single-box formula needs that does not depend
// on the box.
type kernel struct {
	c      float64
	factor float64
	dims   []int     // region dimensions, ascending
	scale  []float64 // w_dom·sqrt(w_dim) per entry of dims
	domain []int     // domain index per entry of dims
	nDom   int
	ball   []float64 // ball[k] for k = 0..largest domain size

	unbounded bool // some scale is zero
}

// newKernel checks the cross-invariants between region, weights and sp and
// precomputes the per-dimension constants.
func (k *Concept) newKernel(sp *space.Space) (*kernel, error) {
	if sp == nil {
		return nil, space.ErrNilSpace
	}
	if k.region.N() != sp.N() {
		return nil, fmt.Errorf("%w: region has %d dimensions, space %d", ErrDomainMismatch, k.region.N(), sp.N())
	}
	grouping := k.region.Domains()
	if !sameDomains(grouping, k.weights.Domains()) {
		return nil, fmt.Errorf("%w: region %v, weights %v", ErrDomainMismatch, grouping, k.weights.Domains())
	}
	if err := sp.CheckDomains(grouping); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDomainMismatch, err)
	}

	names := make([]string, 0, len(grouping))
	for dom := range grouping {
		names = append(names, dom)
	}
	sort.Strings(names)
	index := make(map[string]int, len(names))
	largest := 0
	for i, dom := range names {
		index[dom] = i
		if len(grouping[dom]) > largest {
			largest = len(grouping[dom])
		}
	}

	dims := k.region.Dimensions()
	kern := &kernel{
		c:      k.c,
		dims:   dims,
		scale:  make([]float64, len(dims)),
		domain: make([]int, len(dims)),
		nDom:   len(names),
		ball:   make([]float64, largest+1),
	}
	product := 1.0
	for i, dim := range dims {
		dom, err := sp.DomainOf(dim)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDomainMismatch, err)
		}
		pos, ok := index[dom]
		if !ok {
			return nil, fmt.Errorf("%w: dimension %d of domain %q is not in the region", ErrDomainMismatch, dim, dom)
		}
		wDom, okDom := k.weights.DomainWeight(dom)
		wDim, okDim := k.weights.DimensionWeight(dom, dim)
		if !okDom || !okDim {
			return nil, fmt.Errorf("%w: no weight for dimension %d of %q", ErrDomainMismatch, dim, dom)
		}
		kern.scale[i] = wDom * math.Sqrt(wDim)
		kern.domain[i] = pos
		product *= kern.scale[i]
	}
	for n := range kern.ball {
		kern.ball[n] = ballTerm(n)
	}
	kern.unbounded = product == 0
	kern.factor = k.mu / (math.Pow(k.c, float64(len(dims))) * product)

	return kern, nil
}

// box evaluates the single-box closed form.
func (kern *kernel) box(b region.Box) float64 {
	n := len(kern.dims)
	linear := make([]float64, n)
	for i, dim := range kern.dims {
		linear[i] = kern.scale[i] * b.Extent(dim) * kern.c
	}

	inT := make([]bool, n)
	counts := make([]int, kern.nDom)
	var result float64
	for i := 0; i <= n; i++ {
		forEachCombination(n, i, func(subset []int) {
			for j := range inT {
				inT[j] = false
			}
			for j := range counts {
				counts[j] = 0
			}
			for _, j := range subset {
				inT[j] = true
				counts[kern.domain[j]]++
			}

			first := 1.0
			for j := 0; j < n; j++ {
				if !inT[j] {
					first *= linear[j]
				}
			}
			second := 1.0
			for _, cnt := range counts {
				second *= kern.ball[cnt]
			}
			result += first * second
		})
	}

	return kern.factor * result
}

// ballTerm returns k! · π^(k/2) / Γ(k/2 + 1): k! times the volume of the
// k-dimensional unit ball, the integral of exp(-r) over R^k.
func ballTerm(k int) float64 {
	fk := float64(k)
	return math.Gamma(fk+1) * math.Pow(math.Pi, fk/2) / math.Gamma(fk/2+1)
}

// forEachCombination calls fn with every k-subset of {0..n-1} in
// lexicographic order. k = 0 yields the empty subset once. fn must not retain
// idx.
func forEachCombination(n, k int, fn func(idx []int)) {
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func sameDomains(a, b map[string][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for dom, dims := range a {
		other, ok := b[dom]
		if !ok || len(other) != len(dims) {
			return false
		}
		for i := range dims {
			if dims[i] != other[i] {
				return false
			}
		}
	}
	return true
}
