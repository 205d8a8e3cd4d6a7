// SPDX-License-Identifier: MIT

package concept

import "errors"

// Construction errors, in validation order.
var (
	// ErrInvalidRegion indicates a missing or malformed crisp region.
	ErrInvalidRegion = errors.New("concept: invalid region")

	// ErrInvalidMu indicates mu outside (0, 1].
	ErrInvalidMu = errors.New("concept: invalid mu")

	// ErrInvalidC indicates c that is not a finite positive number.
	ErrInvalidC = errors.New("concept: invalid c")

	// ErrInvalidWeights indicates missing or malformed weights.
	ErrInvalidWeights = errors.New("concept: invalid weights")
)

// Evaluation errors.
var (
	// ErrNilConcept indicates that a nil *Concept was passed as an operand.
	ErrNilConcept = errors.New("concept: concept is nil")

	// ErrNoCandidates indicates that the region produced no closest-point
	// candidates for a query point. A valid region never does this.
	ErrNoCandidates = errors.New("concept: region returned no closest-point candidates")

	// ErrDomainMismatch indicates that the region, the weights and the space
	// disagree on the domain grouping.
	ErrDomainMismatch = errors.New("concept: region, weights and space disagree on domains")

	// ErrNotSpecified marks an operation without an adopted formula.
	ErrNotSpecified = errors.New("concept: operation not specified")

	// ErrLimitExceeded indicates a concept larger than the configured
	// dimension or box limit of a batch evaluation.
	ErrLimitExceeded = errors.New("concept: size limit exceeded")
)
