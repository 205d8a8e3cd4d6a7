// SPDX-License-Identifier: MIT

package region

import (
	"fmt"
	"math"
)

// Unify returns the union of r and other.
//
// Both regions must carry the same domain grouping and vector length. The
// box lists are concatenated (r first). When the combined boxes no longer
// share a common point, every box is extended on the region dimensions to
// contain the midpoint of the two star centers, which restores
// star-shapedness about that midpoint.
func (r *Region) Unify(other *Region) (*Region, error) {
	if r == nil || other == nil {
		return nil, ErrNilRegion
	}
	if r.N() != other.N() || !sameGrouping(r.domains, other.domains) {
		return nil, ErrDomainMismatch
	}

	boxes := append(r.Boxes(), other.Boxes()...)
	if u, err := New(boxes, r.domains); err == nil {
		return u, nil
	}

	a, b := r.Midpoint(), other.Midpoint()
	mid := make([]float64, len(a))
	for _, dim := range r.dims {
		mid[dim] = (a[dim] + b[dim]) / 2
	}
	for i := range boxes {
		boxes[i] = boxes[i].extend(mid, r.dims)
	}

	return New(boxes, r.domains)
}

// Project keeps only the named domains. Dimensions of dropped domains become
// unbounded in every box. At least one domain must remain.
func (r *Region) Project(domains ...string) (*Region, error) {
	if r == nil {
		return nil, ErrNilRegion
	}
	if len(domains) == 0 {
		return nil, ErrEmptyProjection
	}

	kept := make(map[string][]int, len(domains))
	for _, dom := range domains {
		dims, ok := r.domains[dom]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDomain, dom)
		}
		kept[dom] = append([]int(nil), dims...)
	}

	keep := make([]bool, r.N())
	for _, dims := range kept {
		for _, dim := range dims {
			keep[dim] = true
		}
	}

	boxes := r.Boxes()
	for _, b := range boxes {
		for dim := range keep {
			if !keep[dim] {
				b.Min[dim] = math.Inf(-1)
				b.Max[dim] = math.Inf(1)
			}
		}
	}

	return New(boxes, kept)
}

// Cut splits r at the hyperplane x[dim] = value.
//
// A box reaching below value contributes [Min, min(Max, value)] to the lower
// part; a box reaching above value contributes [max(Min, value), Max] to the
// upper part. A box lying entirely at or below value goes to the lower part
// whole. A part without boxes is returned as nil, which happens when the cut
// lies outside the region's extent on that side.
func (r *Region) Cut(dim int, value float64) (lower, upper *Region, err error) {
	if r == nil {
		return nil, nil, ErrNilRegion
	}
	if math.IsNaN(value) {
		return nil, nil, ErrInvalidValue
	}
	if !r.hasDim(dim) {
		return nil, nil, fmt.Errorf("%w: %d", ErrUnknownDimension, dim)
	}

	var lows, highs []Box
	for _, b := range r.boxes {
		if b.Min[dim] < value || b.Max[dim] <= value {
			lo := b.Clone()
			lo.Max[dim] = math.Min(lo.Max[dim], value)
			lows = append(lows, lo)
		}
		if b.Max[dim] > value {
			hi := b.Clone()
			hi.Min[dim] = math.Max(hi.Min[dim], value)
			highs = append(highs, hi)
		}
	}

	if len(lows) > 0 {
		if lower, err = New(lows, r.domains); err != nil {
			return nil, nil, fmt.Errorf("lower part: %w", err)
		}
	}
	if len(highs) > 0 {
		if upper, err = New(highs, r.domains); err != nil {
			return nil, nil, fmt.Errorf("upper part: %w", err)
		}
	}

	return lower, upper, nil
}

func (r *Region) hasDim(dim int) bool {
	for _, d := range r.dims {
		if d == dim {
			return true
		}
	}
	return false
}
