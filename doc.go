// Package conceptspace is an in-memory toolkit for conceptual spaces: concepts
// as Fuzzy Simple Star-Shaped Sets over weighted, domain-structured
// dimensions.
//
// 🚀 What is conceptspace?
//
//	A small, immutable-value library that brings together:
//		• Spaces: dimensions grouped into domains, weighted combined distance
//		• Weights: normalized domain and dimension importances, merge & project
//		• Regions: star-shaped unions of axis-aligned boxes, unify / project / cut
//		• Concepts: crisp core + exponential falloff, membership & hypervolume
//		• Config: YAML + environment description of a space and batch limits
//
// ✨ Why conceptspace?
//
//   - Explicit context - the space is passed to every evaluation, no globals
//   - Fail loudly - unspecified operations return ErrNotSpecified
//   - Closed-form hypervolume - inclusion-exclusion over boxes, no sampling
//   - Bounded batches - HypervolumeAll with size limits and worker count
//
// Under the hood, everything is organized under five subpackages:
//
//	space/   - dimensions, domains, distance, init-once registry
//	weights/ - domain & dimension weights
//	region/  - boxes and star-shaped regions
//	concept/ - concepts, membership, hypervolume, algebra, batch evaluation
//	config/  - YAML/env configuration → space, logger, batch options
//
// Quick ASCII example (two boxes sharing the central region ▓):
//
//	    ┌───┐
//	    │   │
//	┌───┼───┼───┐
//	│   │▓▓▓│   │
//	└───┼───┼───┘
//	    │   │
//	    └───┘
//
// See examples/fruit_space.go for an end-to-end run.
//
//	go get github.com/katalvlaran/conceptspace
package conceptspace
