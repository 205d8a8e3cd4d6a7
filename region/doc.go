// SPDX-License-Identifier: MIT

// Package region models the crisp core of a concept: a union of axis-aligned
// boxes that share at least one common point, which makes the union
// star-shaped about every point of that common intersection.
//
// Boxes are stored over the full space vector. Dimensions that belong to the
// region's domains are finite with Min <= Max; every other dimension is
// unbounded (Min = -Inf, Max = +Inf), meaning "no constraint". A point-shaped
// core is a box with Min == Max on every region dimension.
//
// Operations:
//
//	– ClosestCandidates  one clamped point per box; never empty for a valid region.
//	– Unify              union of the box lists, repaired to stay star-shaped.
//	– Project            drop domains (their dimensions become unbounded).
//	– Cut                split at the hyperplane x[dim] = value.
//
// All operations return fresh values; a Region is never mutated after New.
package region
