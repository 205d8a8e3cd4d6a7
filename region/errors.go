// SPDX-License-Identifier: MIT

package region

import "errors"

var (
	// ErrNilRegion indicates that a nil *Region was used.
	ErrNilRegion = errors.New("region: region is nil")

	// ErrNoBoxes indicates a region without boxes.
	ErrNoBoxes = errors.New("region: at least one box is required")

	// ErrNoDomains indicates a region without domains, or an empty domain.
	ErrNoDomains = errors.New("region: at least one non-empty domain is required")

	// ErrBoxShape indicates boxes whose Min/Max vectors differ in length.
	ErrBoxShape = errors.New("region: box vectors have inconsistent length")

	// ErrInvalidBox indicates a region dimension that is not finite or has Min > Max.
	ErrInvalidBox = errors.New("region: box bounds must be finite with min <= max")

	// ErrUnboundedMismatch indicates a dimension outside the region's domains
	// that is not (-Inf, +Inf).
	ErrUnboundedMismatch = errors.New("region: dimensions outside the domains must be unbounded")

	// ErrDuplicateDimension indicates a dimension listed under two domains.
	ErrDuplicateDimension = errors.New("region: dimension belongs to more than one domain")

	// ErrUnknownDimension indicates a dimension not covered by the region's domains.
	ErrUnknownDimension = errors.New("region: dimension not in region domains")

	// ErrUnknownDomain indicates a domain the region does not carry.
	ErrUnknownDomain = errors.New("region: unknown domain")

	// ErrNotStarShaped indicates boxes without a common point.
	ErrNotStarShaped = errors.New("region: boxes do not share a common point")

	// ErrDomainMismatch indicates operands with different domain groupings.
	ErrDomainMismatch = errors.New("region: domain groupings differ")

	// ErrEmptyProjection indicates a projection that keeps no domain.
	ErrEmptyProjection = errors.New("region: projection must keep at least one domain")

	// ErrPointLength indicates a point whose length differs from the box vectors.
	ErrPointLength = errors.New("region: point length does not match region")

	// ErrInvalidValue indicates a NaN cut value or coordinate.
	ErrInvalidValue = errors.New("region: value is NaN")
)
