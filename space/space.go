// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"sort"
)

// Space is an immutable description of the ambient conceptual space.
// The zero value is not usable; build one with New.
type Space struct {
	n        int
	domains  map[string][]int // ascending dimensions per domain
	domainOf []string         // dimension -> owning domain
	names    []string         // optional, len n when set
}

// Option configures New.
type Option func(*options)

type options struct {
	names []string
}

// WithDimensionNames attaches human-readable names to dimensions 0..n-1.
// New fails with ErrDimensionNames when the count does not match.
func WithDimensionNames(names ...string) Option {
	cp := append([]string(nil), names...)
	return func(o *options) { o.names = cp }
}

// New validates the domain grouping and returns a Space.
//
// Implementation:
//   - Stage 1: reject empty input, empty domains and empty domain names.
//   - Stage 2: assign every dimension to its domain, rejecting duplicates.
//   - Stage 3: require the dimensions to be exactly 0..n-1.
//
// Complexity: O(n log n).
func New(domains map[string][]int, opts ...Option) (*Space, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(domains) == 0 {
		return nil, ErrNoDomains
	}

	owner := make(map[int]string)
	grouped := make(map[string][]int, len(domains))
	for dom, dims := range domains {
		if dom == "" || len(dims) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyDomain, dom)
		}
		sorted := append([]int(nil), dims...)
		sort.Ints(sorted)
		for _, dim := range sorted {
			if prev, taken := owner[dim]; taken {
				return nil, fmt.Errorf("%w: %d in %q and %q", ErrDuplicateDimension, dim, prev, dom)
			}
			owner[dim] = dom
		}
		grouped[dom] = sorted
	}

	n := len(owner)
	domainOf := make([]string, n)
	for dim, dom := range owner {
		if dim < 0 || dim >= n {
			return nil, fmt.Errorf("%w: got dimension %d for %d dimensions", ErrDimensionGap, dim, n)
		}
		domainOf[dim] = dom
	}

	if o.names != nil && len(o.names) != n {
		return nil, fmt.Errorf("%w: %d names for %d dimensions", ErrDimensionNames, len(o.names), n)
	}

	return &Space{n: n, domains: grouped, domainOf: domainOf, names: o.names}, nil
}

// N returns the total number of dimensions.
func (s *Space) N() int { return s.n }

// Domains returns a copy of the domain grouping.
func (s *Space) Domains() map[string][]int {
	out := make(map[string][]int, len(s.domains))
	for dom, dims := range s.domains {
		out[dom] = append([]int(nil), dims...)
	}
	return out
}

// DomainNames returns the domain names in ascending order.
func (s *Space) DomainNames() []string {
	names := make([]string, 0, len(s.domains))
	for dom := range s.domains {
		names = append(names, dom)
	}
	sort.Strings(names)
	return names
}

// DomainOf returns the domain that owns dim.
// An index outside 0..n-1 is a data-integrity error, never a default.
func (s *Space) DomainOf(dim int) (string, error) {
	if dim < 0 || dim >= s.n {
		return "", fmt.Errorf("%w: %d", ErrUnknownDimension, dim)
	}
	return s.domainOf[dim], nil
}

// DimensionName returns the configured name of dim, or "d<dim>" when the
// space was built without names.
func (s *Space) DimensionName(dim int) (string, error) {
	if dim < 0 || dim >= s.n {
		return "", fmt.Errorf("%w: %d", ErrUnknownDimension, dim)
	}
	if s.names == nil {
		return fmt.Sprintf("d%d", dim), nil
	}
	return s.names[dim], nil
}

// CheckDomains verifies that every domain of grouping exists in the space with
// exactly the same dimensions. A subset of the space's domains is accepted.
func (s *Space) CheckDomains(grouping map[string][]int) error {
	if s == nil {
		return ErrNilSpace
	}
	for dom, dims := range grouping {
		own, ok := s.domains[dom]
		if !ok {
			return fmt.Errorf("%w: %w %q", ErrDomainMismatch, ErrUnknownDomain, dom)
		}
		if len(own) != len(dims) {
			return fmt.Errorf("%w: %q has %d dimensions, space has %d", ErrDomainMismatch, dom, len(dims), len(own))
		}
		for _, dim := range dims {
			got, err := s.DomainOf(dim)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrDomainMismatch, err)
			}
			if got != dom {
				return fmt.Errorf("%w: dimension %d belongs to %q, not %q", ErrDomainMismatch, dim, got, dom)
			}
		}
	}
	return nil
}
