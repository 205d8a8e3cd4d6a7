// SPDX-License-Identifier: MIT

package concept

import "fmt"

// The operations below have no adopted formula yet. Each fails with
// ErrNotSpecified.

// Intersect is the pointwise-minimum fuzzy intersection of k and other.
// It must return a valid concept or fail when the result is not expressible
// as one.
func (k *Concept) Intersect(other *Concept) (*Concept, error) {
	return nil, fmt.Errorf("%w: intersect", ErrNotSpecified)
}

// SubsetOf is the degree in [0, 1] to which k is a subset of other.
func (k *Concept) SubsetOf(other *Concept) (float64, error) {
	return 0, fmt.Errorf("%w: subset_of", ErrNotSpecified)
}

// Implies is the degree to which k implies other.
func (k *Concept) Implies(other *Concept) (float64, error) {
	return 0, fmt.Errorf("%w: implies", ErrNotSpecified)
}

// Similarity is a symmetric resemblance degree between k and other.
func (k *Concept) Similarity(other *Concept) (float64, error) {
	return 0, fmt.Errorf("%w: similarity", ErrNotSpecified)
}

// Between is the degree to which k lies between first and second.
func (k *Concept) Between(first, second *Concept) (float64, error) {
	return 0, fmt.Errorf("%w: between", ErrNotSpecified)
}
