// SPDX-License-Identifier: MIT

package space

import "errors"

// Sentinel errors returned by the space package. Match them with errors.Is;
// call sites may wrap them with extra context.
var (
	// ErrNoDomains indicates that a space was requested without any domain.
	ErrNoDomains = errors.New("space: at least one domain is required")

	// ErrEmptyDomain indicates a domain with no dimensions or an empty name.
	ErrEmptyDomain = errors.New("space: domain must have a name and at least one dimension")

	// ErrDuplicateDimension indicates that a dimension was assigned to more than one domain.
	ErrDuplicateDimension = errors.New("space: dimension assigned to more than one domain")

	// ErrDimensionGap indicates that the dimensions do not cover 0..n-1 exactly.
	ErrDimensionGap = errors.New("space: dimensions must cover 0..n-1 without gaps")

	// ErrUnknownDimension indicates a dimension index outside the space.
	ErrUnknownDimension = errors.New("space: unknown dimension")

	// ErrUnknownDomain indicates a domain name that the space does not define.
	ErrUnknownDomain = errors.New("space: unknown domain")

	// ErrDomainMismatch indicates a domain grouping that disagrees with the space.
	ErrDomainMismatch = errors.New("space: domain grouping does not match the space")

	// ErrPointLength indicates a point whose length differs from the dimension count.
	ErrPointLength = errors.New("space: point length does not match dimension count")

	// ErrNaNPoint indicates a point coordinate that is NaN.
	ErrNaNPoint = errors.New("space: point coordinate is NaN")

	// ErrNilWeights indicates that Distance was called without weights.
	ErrNilWeights = errors.New("space: weights are nil")

	// ErrNilSpace indicates that a nil *Space was used.
	ErrNilSpace = errors.New("space: space is nil")

	// ErrDimensionNames indicates a dimension-name list of the wrong length.
	ErrDimensionNames = errors.New("space: dimension names must match dimension count")

	// ErrAlreadyInitialized is returned by Registry.Init after the first successful call.
	ErrAlreadyInitialized = errors.New("space: registry already initialized")

	// ErrNotInitialized is returned by Registry.Get before Init.
	ErrNotInitialized = errors.New("space: registry not initialized")
)
