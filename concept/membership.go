// SPDX-License-Identifier: MIT

package concept

import (
	"fmt"
	"math"

	"github.com/katalvlaran/conceptspace/space"
	"github.com/katalvlaran/conceptspace/weights"
)

// Membership returns mu * exp(-c * d) where d is the smallest weighted
// distance between point and the crisp core. Points inside the core get
// exactly mu.
//
// Errors:
//   - ErrNoCandidates when the region yields no closest-point candidates.
//   - region / space sentinels for malformed points or mismatched domains.
//
// Complexity: O(K·n).
func (k *Concept) Membership(sp *space.Space, point []float64) (float64, error) {
	candidates, err := k.region.ClosestCandidates(point)
	if err != nil {
		return 0, fmt.Errorf("concept: membership: %w", err)
	}
	d, err := minDistance(sp, candidates, point, k.weights)
	if err != nil {
		return 0, fmt.Errorf("concept: membership: %w", err)
	}

	return k.mu * math.Exp(-k.c*d), nil
}

// minDistance returns the minimum of sp.Distance(candidate, point, w) over a
// non-empty candidate set. An empty set is a contract violation of the
// region and is reported, never defaulted.
func minDistance(sp *space.Space, candidates [][]float64, point []float64, w *weights.Weights) (float64, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}

	best := math.Inf(1)
	for _, cand := range candidates {
		d, err := sp.Distance(cand, point, w)
		if err != nil {
			return 0, err
		}
		if d < best {
			best = d
		}
	}
	return best, nil
}
