// SPDX-License-Identifier: MIT

package weights

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Epsilon is the tolerance Validate applies to the "sums to 1" checks.
const Epsilon = 1e-9

// Weights stores normalized domain and dimension importances.
// The zero value is not valid; use New.
type Weights struct {
	domains    map[string]float64
	dimensions map[string]map[int]float64
}

// New validates and normalizes the given weights.
//
// Implementation:
//   - Stage 1: structural checks (non-empty, identical domain key sets,
//     finite non-negative values, unique dimensions).
//   - Stage 2: divide every group by its total so that it sums to 1.
//
// The input maps are copied; later mutation by the caller has no effect.
//
// Complexity: O(n) for n dimensions.
func New(domainWeights map[string]float64, dimensionWeights map[string]map[int]float64) (*Weights, error) {
	if err := checkStructure(domainWeights, dimensionWeights); err != nil {
		return nil, err
	}

	domTotal := 0.0
	for _, v := range domainWeights {
		domTotal += v
	}
	if domTotal <= 0 {
		return nil, fmt.Errorf("%w: domain weights", ErrZeroTotal)
	}

	w := &Weights{
		domains:    make(map[string]float64, len(domainWeights)),
		dimensions: make(map[string]map[int]float64, len(dimensionWeights)),
	}
	for dom, v := range domainWeights {
		w.domains[dom] = v / domTotal

		dimTotal := 0.0
		for _, dv := range dimensionWeights[dom] {
			dimTotal += dv
		}
		if dimTotal <= 0 {
			return nil, fmt.Errorf("%w: dimensions of domain %q", ErrZeroTotal, dom)
		}
		dims := make(map[int]float64, len(dimensionWeights[dom]))
		for dim, dv := range dimensionWeights[dom] {
			dims[dim] = dv / dimTotal
		}
		w.dimensions[dom] = dims
	}

	return w, nil
}

// checkStructure verifies everything except normalization.
func checkStructure(domainWeights map[string]float64, dimensionWeights map[string]map[int]float64) error {
	if len(domainWeights) == 0 {
		return ErrEmpty
	}
	if len(domainWeights) != len(dimensionWeights) {
		return ErrDomainSetMismatch
	}

	owner := make(map[int]string)
	for dom, v := range domainWeights {
		if !validWeight(v) {
			return fmt.Errorf("%w: domain %q = %v", ErrInvalidWeight, dom, v)
		}
		dims, ok := dimensionWeights[dom]
		if !ok {
			return fmt.Errorf("%w: %q has no dimension weights", ErrDomainSetMismatch, dom)
		}
		if len(dims) == 0 {
			return fmt.Errorf("%w: domain %q", ErrEmpty, dom)
		}
		for dim, dv := range dims {
			if dim < 0 {
				return fmt.Errorf("%w: %d in domain %q", ErrInvalidDimension, dim, dom)
			}
			if !validWeight(dv) {
				return fmt.Errorf("%w: dimension %d of %q = %v", ErrInvalidWeight, dim, dom, dv)
			}
			if prev, taken := owner[dim]; taken {
				return fmt.Errorf("%w: %d in %q and %q", ErrDuplicateDimension, dim, prev, dom)
			}
			owner[dim] = dom
		}
	}

	return nil
}

func validWeight(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}

// Validate reports whether w is well-formed: structurally sound and normalized
// within Epsilon. Values built by New always pass.
func (w *Weights) Validate() error {
	if w == nil {
		return ErrNilWeights
	}
	if err := checkStructure(w.domains, w.dimensions); err != nil {
		return err
	}

	total := 0.0
	for _, v := range w.domains {
		total += v
	}
	if math.Abs(total-1) > Epsilon {
		return fmt.Errorf("%w: domain weights sum to %v", ErrNotNormalized, total)
	}
	for dom, dims := range w.dimensions {
		total = 0
		for _, v := range dims {
			total += v
		}
		if math.Abs(total-1) > Epsilon {
			return fmt.Errorf("%w: dimensions of %q sum to %v", ErrNotNormalized, dom, total)
		}
	}

	return nil
}

// IsWellFormed is Validate reduced to a bool.
func (w *Weights) IsWellFormed() bool { return w.Validate() == nil }

// DomainWeight returns the weight of dom.
func (w *Weights) DomainWeight(dom string) (float64, bool) {
	v, ok := w.domains[dom]
	return v, ok
}

// DimensionWeight returns the weight of dim inside dom.
func (w *Weights) DimensionWeight(dom string, dim int) (float64, bool) {
	v, ok := w.dimensions[dom][dim]
	return v, ok
}

// DomainWeights returns a copy of the domain weights.
func (w *Weights) DomainWeights() map[string]float64 {
	out := make(map[string]float64, len(w.domains))
	for k, v := range w.domains {
		out[k] = v
	}
	return out
}

// DimensionWeights returns a deep copy of the per-domain dimension weights.
func (w *Weights) DimensionWeights() map[string]map[int]float64 {
	return copyDimensions(w.dimensions)
}

// Domains returns the domain grouping implied by the weights, with the
// dimensions of every domain in ascending order.
func (w *Weights) Domains() map[string][]int {
	out := make(map[string][]int, len(w.dimensions))
	for dom, dims := range w.dimensions {
		list := make([]int, 0, len(dims))
		for dim := range dims {
			list = append(list, dim)
		}
		sort.Ints(list)
		out[dom] = list
	}
	return out
}

// DomainNames returns the domain names in ascending order.
func (w *Weights) DomainNames() []string {
	names := make([]string, 0, len(w.domains))
	for dom := range w.domains {
		names = append(names, dom)
	}
	sort.Strings(names)
	return names
}

// Clone returns a deep copy of w.
func (w *Weights) Clone() *Weights {
	if w == nil {
		return nil
	}
	return &Weights{domains: w.DomainWeights(), dimensions: copyDimensions(w.dimensions)}
}

// Equal reports exact structural equality.
func (w *Weights) Equal(other *Weights) bool {
	if w == nil || other == nil {
		return w == other
	}
	if len(w.domains) != len(other.domains) {
		return false
	}
	for dom, v := range w.domains {
		ov, ok := other.domains[dom]
		if !ok || ov != v {
			return false
		}
		dims, odims := w.dimensions[dom], other.dimensions[dom]
		if len(dims) != len(odims) {
			return false
		}
		for dim, dv := range dims {
			if odv, ok := odims[dim]; !ok || odv != dv {
				return false
			}
		}
	}
	return true
}

// String renders the weights deterministically, domains and dimensions sorted.
func (w *Weights) String() string {
	if w == nil {
		return "<nil>"
	}
	var sb strings.Builder
	sb.WriteString("<{")
	for i, dom := range w.DomainNames() {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s:%g", dom, w.domains[dom])
	}
	sb.WriteString("},{")
	doms := w.Domains()
	for i, dom := range w.DomainNames() {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%s:{", dom)
		for j, dim := range doms[dom] {
			if j > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%d:%g", dim, w.dimensions[dom][dim])
		}
		sb.WriteByte('}')
	}
	sb.WriteString("}>")
	return sb.String()
}

func copyDimensions(in map[string]map[int]float64) map[string]map[int]float64 {
	out := make(map[string]map[int]float64, len(in))
	for dom, dims := range in {
		cp := make(map[int]float64, len(dims))
		for dim, v := range dims {
			cp[dim] = v
		}
		out[dom] = cp
	}
	return out
}
