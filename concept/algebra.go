// SPDX-License-Identifier: MIT

package concept

import (
	"fmt"
	"math"
)

// Unify returns the union of k and other:
//
//	region  = k.region ∪ other.region   (region.Region.Unify)
//	mu      = max(k.mu, other.mu)
//	c       = min(k.c, other.c)          (the more permissive falloff)
//	weights = k.weights ⊕ other.weights  (equal-weight 0.5/0.5 merge)
//
// The result goes through New; Region.Unify and Weights.Merge are expected to
// keep their invariants, and a violation surfaces as a construction error.
func (k *Concept) Unify(other *Concept) (*Concept, error) {
	if other == nil {
		return nil, ErrNilConcept
	}

	r, err := k.region.Unify(other.region)
	if err != nil {
		return nil, fmt.Errorf("concept: unify: %w", err)
	}
	w, err := k.weights.Merge(other.weights, 0.5, 0.5)
	if err != nil {
		return nil, fmt.Errorf("concept: unify: %w", err)
	}

	return New(r, math.Max(k.mu, other.mu), math.Min(k.c, other.c), w)
}

// Project restricts the concept to the given domains; mu and c are kept.
// At least one domain must remain.
func (k *Concept) Project(domains ...string) (*Concept, error) {
	r, err := k.region.Project(domains...)
	if err != nil {
		return nil, fmt.Errorf("concept: project: %w", err)
	}
	w, err := k.weights.Project(domains...)
	if err != nil {
		return nil, fmt.Errorf("concept: project: %w", err)
	}

	return New(r, k.mu, k.c, w)
}

// Cut splits the concept at the hyperplane x[dim] = value. Both parts keep
// mu, c and (a copy of) the weights. A part is nil when the cut lies outside
// the core's extent on that side.
func (k *Concept) Cut(dim int, value float64) (lower, upper *Concept, err error) {
	lowRegion, highRegion, err := k.region.Cut(dim, value)
	if err != nil {
		return nil, nil, fmt.Errorf("concept: cut: %w", err)
	}

	if lowRegion != nil {
		if lower, err = New(lowRegion, k.mu, k.c, k.weights); err != nil {
			return nil, nil, err
		}
	}
	if highRegion != nil {
		if upper, err = New(highRegion, k.mu, k.c, k.weights); err != nil {
			return nil, nil, err
		}
	}

	return lower, upper, nil
}
