// SPDX-License-Identifier: MIT

// Package concept implements concepts of a conceptual space as Fuzzy Simple
// Star-Shaped Sets (FSSSS): a crisp star-shaped core (a region.Region) plus a
// membership that decays exponentially with the weighted distance from that
// core.
//
// 🚀 What is a concept?
//
//	A Concept is the tuple <region, mu, c, weights>:
//	  • region  - the crisp core, a union of boxes sharing a common point;
//	  • mu      - peak membership (prototypicality), 0 < mu <= 1;
//	  • c       - decay rate, c > 0 (larger means faster falloff);
//	  • weights - domain and dimension importances used by the distance.
//
//	membership(x) = mu * exp(-c * min_{y ∈ core} d(x, y))
//
// ✨ Key features:
//   - New validates region → mu → c → weights and fails with ErrInvalidRegion,
//     ErrInvalidMu, ErrInvalidC or ErrInvalidWeights on the first violation.
//   - Membership and Hypervolume take the space.Space explicitly.
//   - Hypervolume integrates membership over the space in closed form, using
//     inclusion-exclusion over the (possibly overlapping) boxes.
//   - Unify, Project and Cut return freshly built concepts.
//   - Intersect, SubsetOf, Implies, Similarity and Between are extension
//     points that fail with ErrNotSpecified.
//   - HypervolumeAll evaluates many concepts with bounded concurrency and
//     caller-side size limits.
//
// ⚙️ Usage:
//
//	sp, _ := space.New(map[string][]int{"d": {0}})
//	core, _ := region.New([]region.Box{region.NewBox([]float64{0}, []float64{0})},
//		map[string][]int{"d": {0}})
//	w, _ := weights.New(map[string]float64{"d": 1}, map[string]map[int]float64{"d": {0: 1}})
//	k, err := concept.New(core, 1.0, 1.0, w)
//	if err != nil {
//		return err
//	}
//	m, _ := k.Membership(sp, []float64{5}) // exp(-5)
//
// Complexity:
//
//   - Membership:  O(K·n) for K boxes and n dimensions.
//   - Hypervolume: O((2^K − 1) · 2^n · n). Exponential in both the number of
//     boxes and the number of dimensions; intended for small concepts. Callers
//     needing bounded latency should go through HypervolumeAll with
//     WithMaxDimensions / WithMaxBoxes, or impose their own limits.
//
// Concurrency:
//
//	Concepts are immutable; all methods are safe for concurrent use.
package concept
