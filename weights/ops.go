// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"math"
)

// Merge combines w and other into a new Weights value.
//
// For a domain present in both operands the domain weight becomes
// s*w + t*other and each dimension weight s*w_dim + t*other_dim; a shared
// domain must list the same dimensions on both sides. A domain present in only
// one operand keeps its weights. The result is renormalized by New, so it is
// always well-formed or an error is returned.
//
// Complexity: O(n) for n dimensions across both operands.
func (w *Weights) Merge(other *Weights, s, t float64) (*Weights, error) {
	if w == nil || other == nil {
		return nil, ErrNilWeights
	}
	if !validWeight(s) || !validWeight(t) || s+t == 0 || math.IsInf(s+t, 0) {
		return nil, fmt.Errorf("%w: s=%v t=%v", ErrBadMergeFactors, s, t)
	}

	domains := make(map[string]float64, len(w.domains)+len(other.domains))
	dimensions := make(map[string]map[int]float64, len(w.domains)+len(other.domains))

	for dom, v := range w.domains {
		ov, shared := other.domains[dom]
		if !shared {
			domains[dom] = v
			dimensions[dom] = copyDims(w.dimensions[dom])
			continue
		}
		dims, odims := w.dimensions[dom], other.dimensions[dom]
		if len(dims) != len(odims) {
			return nil, fmt.Errorf("%w: %q", ErrDimensionConflict, dom)
		}
		merged := make(map[int]float64, len(dims))
		for dim, dv := range dims {
			odv, ok := odims[dim]
			if !ok {
				return nil, fmt.Errorf("%w: %q lacks dimension %d", ErrDimensionConflict, dom, dim)
			}
			merged[dim] = s*dv + t*odv
		}
		domains[dom] = s*v + t*ov
		dimensions[dom] = merged
	}
	for dom, ov := range other.domains {
		if _, shared := w.domains[dom]; shared {
			continue
		}
		domains[dom] = ov
		dimensions[dom] = copyDims(other.dimensions[dom])
	}

	return New(domains, dimensions)
}

// Project keeps only the named domains and renormalizes the domain weights.
// Dimension weights inside a kept domain are unchanged. Duplicated names are
// ignored.
func (w *Weights) Project(domains ...string) (*Weights, error) {
	if w == nil {
		return nil, ErrNilWeights
	}
	if len(domains) == 0 {
		return nil, ErrEmptyProjection
	}

	keptDomains := make(map[string]float64, len(domains))
	keptDimensions := make(map[string]map[int]float64, len(domains))
	for _, dom := range domains {
		v, ok := w.domains[dom]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, dom)
		}
		keptDomains[dom] = v
		keptDimensions[dom] = copyDims(w.dimensions[dom])
	}

	return New(keptDomains, keptDimensions)
}

func copyDims(in map[int]float64) map[int]float64 {
	out := make(map[int]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
