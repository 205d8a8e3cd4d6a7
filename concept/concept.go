// SPDX-License-Identifier: MIT

package concept

import (
	"fmt"
	"math"

	"github.com/katalvlaran/conceptspace/region"
	"github.com/katalvlaran/conceptspace/weights"
)

// Concept is an immutable FSSSS <region, mu, c, weights>.
type Concept struct {
	region  *region.Region
	mu      float64
	c       float64
	weights *weights.Weights
}

// New validates its inputs in the order region → mu → c → weights and
// returns a Concept owning private copies of region and weights.
// The first failing check decides the error; nothing is built on failure.
// Region and weights must carry the same domain grouping; a mismatch fails
// with both ErrInvalidWeights and ErrDomainMismatch.
func New(r *region.Region, mu, c float64, w *weights.Weights) (*Concept, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRegion, err)
	}
	if math.IsNaN(mu) || mu <= 0 || mu > 1 {
		return nil, fmt.Errorf("%w: %v not in (0, 1]", ErrInvalidMu, mu)
	}
	if math.IsNaN(c) || math.IsInf(c, 1) || c <= 0 {
		return nil, fmt.Errorf("%w: %v is not a finite positive number", ErrInvalidC, c)
	}
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWeights, err)
	}
	if !sameDomains(r.Domains(), w.Domains()) {
		return nil, fmt.Errorf("%w: %w: region %v, weights %v", ErrInvalidWeights, ErrDomainMismatch, r.Domains(), w.Domains())
	}

	return &Concept{region: r.Clone(), mu: mu, c: c, weights: w.Clone()}, nil
}

// Region returns a copy of the crisp core.
func (k *Concept) Region() *region.Region { return k.region.Clone() }

// Mu returns the peak membership.
func (k *Concept) Mu() float64 { return k.mu }

// C returns the decay rate.
func (k *Concept) C() float64 { return k.c }

// Weights returns a copy of the weights.
func (k *Concept) Weights() *weights.Weights { return k.weights.Clone() }

// NumDimensions returns how many dimensions the concept's domains cover.
func (k *Concept) NumDimensions() int { return len(k.region.Dimensions()) }

// NumBoxes returns how many boxes form the crisp core.
func (k *Concept) NumBoxes() int { return k.region.NumBoxes() }

// Equal reports structural equality over all four fields.
func (k *Concept) Equal(other *Concept) bool {
	if k == nil || other == nil {
		return k == other
	}
	return k.mu == other.mu &&
		k.c == other.c &&
		k.region.Equal(other.region) &&
		k.weights.Equal(other.weights)
}

// String renders the concept as <region,mu,c,weights>.
func (k *Concept) String() string {
	if k == nil {
		return "<nil>"
	}
	return fmt.Sprintf("<%s,%g,%g,%s>", k.region, k.mu, k.c, k.weights)
}
