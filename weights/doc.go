// SPDX-License-Identifier: MIT

// Package weights holds the relative importance of domains and of the
// dimensions inside each domain.
//
// A Weights value is built only through New, which validates and normalizes
// its input: every weight is finite and non-negative, domain weights sum to 1,
// and dimension weights sum to 1 inside each domain. A dimension may belong to
// one domain only. The value is immutable; Merge and Project return new values.
//
// Errors (sentinel):
//
//	– ErrEmpty            no domains, or a domain without dimensions.
//	– ErrDomainSetMismatch domain-weight and dimension-weight keys disagree.
//	– ErrInvalidWeight    NaN, ±Inf or negative weight.
//	– ErrZeroTotal        a group of weights sums to zero and cannot be normalized.
//	– ErrDuplicateDimension a dimension listed under more than one domain.
//	– ErrNotNormalized    Validate found a group not summing to 1 within Epsilon.
package weights
