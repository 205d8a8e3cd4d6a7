// SPDX-License-Identifier: MIT

package region

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Region is a star-shaped union of boxes over a set of domains.
// The zero value is not valid; use New.
type Region struct {
	boxes   []Box
	domains map[string][]int // ascending dimensions per domain
	dims    []int            // ascending union of all domain dimensions
}

// New validates boxes and domains and returns a Region owning copies of both.
//
// Implementation:
//   - Stage 1: at least one box, one domain; consistent vector lengths.
//   - Stage 2: domain dimensions are unique and inside the vectors.
//   - Stage 3: region dimensions finite with Min <= Max; all others unbounded.
//   - Stage 4: the boxes share a common point (star-shapedness).
//
// Complexity: O(K·n) for K boxes over n-length vectors.
func New(boxes []Box, domains map[string][]int) (*Region, error) {
	if len(boxes) == 0 {
		return nil, ErrNoBoxes
	}
	if len(domains) == 0 {
		return nil, ErrNoDomains
	}

	n := boxes[0].Len()
	for i, b := range boxes {
		if len(b.Min) != n || len(b.Max) != n {
			return nil, fmt.Errorf("%w: box %d", ErrBoxShape, i)
		}
	}

	grouped := make(map[string][]int, len(domains))
	inRegion := make([]bool, n)
	for dom, dims := range domains {
		if len(dims) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoDomains, dom)
		}
		sorted := append([]int(nil), dims...)
		sort.Ints(sorted)
		for _, dim := range sorted {
			if dim < 0 || dim >= n {
				return nil, fmt.Errorf("%w: %d of %q outside %d-dimensional boxes", ErrUnknownDimension, dim, dom, n)
			}
			if inRegion[dim] {
				return nil, fmt.Errorf("%w: %d", ErrDuplicateDimension, dim)
			}
			inRegion[dim] = true
		}
		grouped[dom] = sorted
	}

	copies := make([]Box, len(boxes))
	for i, b := range boxes {
		for dim := 0; dim < n; dim++ {
			lo, hi := b.Min[dim], b.Max[dim]
			if inRegion[dim] {
				if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
					return nil, fmt.Errorf("%w: box %d dimension %d [%v, %v]", ErrInvalidBox, i, dim, lo, hi)
				}
				continue
			}
			if !math.IsInf(lo, -1) || !math.IsInf(hi, 1) {
				return nil, fmt.Errorf("%w: box %d dimension %d", ErrUnboundedMismatch, i, dim)
			}
		}
		copies[i] = b.Clone()
	}

	r := &Region{boxes: copies, domains: grouped, dims: dimsOf(grouped)}
	if _, ok := r.central(); !ok {
		return nil, ErrNotStarShaped
	}

	return r, nil
}

// Validate re-checks every invariant of New.
func (r *Region) Validate() error {
	if r == nil {
		return ErrNilRegion
	}
	_, err := New(r.boxes, r.domains)
	return err
}

// IsWellFormed is Validate reduced to a bool.
func (r *Region) IsWellFormed() bool { return r.Validate() == nil }

// N returns the length of the box vectors (the space dimensionality).
func (r *Region) N() int { return r.boxes[0].Len() }

// Boxes returns deep copies of the boxes in order.
func (r *Region) Boxes() []Box {
	out := make([]Box, len(r.boxes))
	for i, b := range r.boxes {
		out[i] = b.Clone()
	}
	return out
}

// NumBoxes returns the number of boxes.
func (r *Region) NumBoxes() int { return len(r.boxes) }

// Domains returns a copy of the domain grouping.
func (r *Region) Domains() map[string][]int {
	out := make(map[string][]int, len(r.domains))
	for dom, dims := range r.domains {
		out[dom] = append([]int(nil), dims...)
	}
	return out
}

// DomainNames returns the domain names in ascending order.
func (r *Region) DomainNames() []string {
	names := make([]string, 0, len(r.domains))
	for dom := range r.domains {
		names = append(names, dom)
	}
	sort.Strings(names)
	return names
}

// Dimensions returns the region's dimensions in ascending order.
func (r *Region) Dimensions() []int { return append([]int(nil), r.dims...) }

// CentralRegion returns the common intersection of all boxes.
func (r *Region) CentralRegion() Box {
	c, _ := r.central()
	return c
}

// Midpoint returns the center of the central region on the region's
// dimensions. Coordinates of the other dimensions are 0 and carry no meaning.
func (r *Region) Midpoint() []float64 {
	c := r.CentralRegion()
	mid := make([]float64, c.Len())
	for _, dim := range r.dims {
		mid[dim] = (c.Min[dim] + c.Max[dim]) / 2
	}
	return mid
}

// Contains reports whether p lies in at least one box.
func (r *Region) Contains(p []float64) bool {
	for _, b := range r.boxes {
		if b.Contains(p) {
			return true
		}
	}
	return false
}

// ClosestCandidates returns, for every box, the point of that box nearest to
// p. The minimum distance from p to the region is realized by one of them.
// The result is never empty for a valid region.
func (r *Region) ClosestCandidates(p []float64) ([][]float64, error) {
	if r == nil {
		return nil, ErrNilRegion
	}
	if len(r.boxes) == 0 {
		return nil, ErrNoBoxes
	}
	if len(p) != r.N() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrPointLength, len(p), r.N())
	}
	for i, v := range p {
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%w: coordinate %d", ErrInvalidValue, i)
		}
	}

	out := make([][]float64, len(r.boxes))
	for i, b := range r.boxes {
		out[i] = b.ClosestPoint(p)
	}
	return out, nil
}

// Clone returns a deep copy.
func (r *Region) Clone() *Region {
	if r == nil {
		return nil
	}
	return &Region{boxes: r.Boxes(), domains: r.Domains(), dims: r.Dimensions()}
}

// Equal reports structural equality: same boxes in the same order and the
// same domain grouping.
func (r *Region) Equal(other *Region) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.boxes) != len(other.boxes) || !sameGrouping(r.domains, other.domains) {
		return false
	}
	for i := range r.boxes {
		if !r.boxes[i].Equal(other.boxes[i]) {
			return false
		}
	}
	return true
}

// String renders the region as <[box,...],{domain:[dims],...}>.
func (r *Region) String() string {
	if r == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString("<[")
	for i, b := range r.boxes {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(b.String())
	}
	sb.WriteString("],{")
	for i, dom := range r.DomainNames() {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s:%v", dom, r.domains[dom])
	}
	sb.WriteString("}>")
	return sb.String()
}

// central folds Box.Intersect over all boxes.
func (r *Region) central() (Box, bool) {
	acc := r.boxes[0]
	for _, b := range r.boxes[1:] {
		var ok bool
		if acc, ok = acc.Intersect(b); !ok {
			return Box{}, false
		}
	}
	return acc.Clone(), true
}

func dimsOf(grouping map[string][]int) []int {
	var dims []int
	for _, ds := range grouping {
		dims = append(dims, ds...)
	}
	sort.Ints(dims)
	return dims
}

func sameGrouping(a, b map[string][]int) bool {
	if len(a) != len(b) {
		return false
	}
	for dom, dims := range a {
		other, ok := b[dom]
		if !ok || len(other) != len(dims) {
			return false
		}
		for i := range dims {
			if dims[i] != other[i] {
				return false
			}
		}
	}
	return true
}
