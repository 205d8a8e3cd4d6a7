// SPDX-License-Identifier: MIT

package space

import (
	"fmt"
	"math"

	"github.com/katalvlaran/conceptspace/weights"
)

// Distance returns the weighted combined distance between p and q.
//
// Inside a domain the contribution is Euclidean with every squared coordinate
// difference scaled by the dimension weight; domains are combined by a sum
// scaled by the domain weight:
//
//	d(p, q) = Σ_dom w_dom * sqrt( Σ_{dim ∈ dom} w_dim * (p_dim - q_dim)² )
//
// Only the domains carried by w contribute, which is how projected concepts
// ignore the dimensions they no longer care about. Every domain of w must
// exist in the space with the same dimensions. Domains are summed in name
// order so repeated calls return bit-identical results.
//
// Complexity: O(n).
func (s *Space) Distance(p, q []float64, w *weights.Weights) (float64, error) {
	if s == nil {
		return 0, ErrNilSpace
	}
	if w == nil {
		return 0, ErrNilWeights
	}
	if err := s.checkPoint(p); err != nil {
		return 0, err
	}
	if err := s.checkPoint(q); err != nil {
		return 0, err
	}
	grouping := w.Domains()
	if err := s.CheckDomains(grouping); err != nil {
		return 0, err
	}

	var total float64
	for _, dom := range w.DomainNames() {
		dims := grouping[dom]
		domWeight, _ := w.DomainWeight(dom)
		var inner float64
		for _, dim := range dims {
			dimWeight, _ := w.DimensionWeight(dom, dim)
			diff := p[dim] - q[dim]
			inner += dimWeight * diff * diff
		}
		total += domWeight * math.Sqrt(inner)
	}

	return total, nil
}

func (s *Space) checkPoint(p []float64) error {
	if len(p) != s.n {
		return fmt.Errorf("%w: got %d, want %d", ErrPointLength, len(p), s.n)
	}
	for i, v := range p {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: dimension %d", ErrNaNPoint, i)
		}
	}
	return nil
}
