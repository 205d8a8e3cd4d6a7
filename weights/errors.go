// SPDX-License-Identifier: MIT

package weights

import "errors"

var (
	// ErrNilWeights indicates that a nil *Weights was used.
	ErrNilWeights = errors.New("weights: weights are nil")

	// ErrEmpty indicates no domains, or a domain without dimensions.
	ErrEmpty = errors.New("weights: at least one domain with at least one dimension is required")

	// ErrDomainSetMismatch indicates domain weights and dimension weights name different domains.
	ErrDomainSetMismatch = errors.New("weights: domain and dimension weights name different domains")

	// ErrInvalidWeight indicates a NaN, infinite or negative weight.
	ErrInvalidWeight = errors.New("weights: weight must be finite and non-negative")

	// ErrInvalidDimension indicates a negative dimension index.
	ErrInvalidDimension = errors.New("weights: dimension index must be non-negative")

	// ErrZeroTotal indicates a group of weights that sums to zero.
	ErrZeroTotal = errors.New("weights: weights sum to zero")

	// ErrDuplicateDimension indicates a dimension listed under more than one domain.
	ErrDuplicateDimension = errors.New("weights: dimension belongs to more than one domain")

	// ErrNotNormalized indicates a weight group that does not sum to 1.
	ErrNotNormalized = errors.New("weights: weights do not sum to 1")

	// ErrUnknownDomain indicates a domain name not present in the weights.
	ErrUnknownDomain = errors.New("weights: unknown domain")

	// ErrEmptyProjection indicates a projection onto no domains.
	ErrEmptyProjection = errors.New("weights: projection must keep at least one domain")

	// ErrDimensionConflict indicates that a domain shared by two merge operands
	// lists different dimensions on each side.
	ErrDimensionConflict = errors.New("weights: shared domain has different dimensions")

	// ErrBadMergeFactors indicates merge factors that are negative, non-finite or both zero.
	ErrBadMergeFactors = errors.New("weights: merge factors must be finite, non-negative and not both zero")
)
