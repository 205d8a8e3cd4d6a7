// SPDX-License-Identifier: MIT

// Package space describes the ambient conceptual space that concepts live in:
// how many dimensions there are, how those dimensions are grouped into domains,
// and how far apart two points are under a given set of weights.
//
// 🚀 What is a conceptual space?
//
//	A conceptual space is a real vector space whose dimensions are grouped into
//	domains - sets of dimensions that are perceived holistically (hue, saturation
//	and value form the "color" domain; sweetness alone forms "taste").
//
// ✨ Key features:
//   - Space is an explicit, immutable value: build it once with New and pass it
//     into every distance or hypervolume computation. No hidden singleton.
//   - Every dimension belongs to exactly one domain; New rejects gaps, duplicates
//     and empty domains, and DomainOf fails loudly for unknown dimensions.
//   - Distance implements the canonical combined metric: Euclidean inside a
//     domain (each term scaled by the dimension weight, square-rooted), and a
//     weighted Manhattan combination across domains (scaled by the domain weight).
//   - Registry is an init-once holder for applications that want one shared
//     Space: later Init calls fail fast with ErrAlreadyInitialized.
//
// ⚙️ Usage:
//
//	sp, err := space.New(map[string][]int{
//		"color": {0, 1, 2},
//		"taste": {3},
//	}, space.WithDimensionNames("hue", "saturation", "value", "sweetness"))
//	if err != nil {
//		return err
//	}
//	d, err := sp.Distance(p, q, w)
//
// Complexity:
//
//   - New:      O(n log n) for n dimensions.
//   - Distance: O(n).
package space
