// SPDX-License-Identifier: MIT

package region

import (
	"fmt"
	"math"
	"strings"
)

// Box is an axis-aligned hyperrectangle [Min[i], Max[i]] per dimension.
// Unbounded dimensions use -Inf / +Inf.
type Box struct {
	Min []float64
	Max []float64
}

// NewBox copies lo and hi into a Box. Bounds are checked by New when the
// box becomes part of a Region.
func NewBox(lo, hi []float64) Box {
	return Box{Min: append([]float64(nil), lo...), Max: append([]float64(nil), hi...)}
}

// Len returns the length of the box vectors.
func (b Box) Len() int { return len(b.Min) }

// Extent returns Max[dim] - Min[dim], or 0 when the box is empty on dim.
func (b Box) Extent(dim int) float64 {
	e := b.Max[dim] - b.Min[dim]
	if e < 0 {
		return 0
	}
	return e
}

// Intersect returns the overlap of b and other. ok is false when the overlap
// is empty, i.e. Max < Min on some dimension, or when the boxes have
// different lengths. A zero-width overlap (touching faces, point boxes) is
// not empty: two identical point boxes must intersect in that point, or a
// region listing the same point core twice would count it twice in
// Hypervolume.
func (b Box) Intersect(other Box) (Box, bool) {
	if b.Len() != other.Len() {
		return Box{}, false
	}
	out := Box{Min: make([]float64, b.Len()), Max: make([]float64, b.Len())}
	for i := range b.Min {
		out.Min[i] = math.Max(b.Min[i], other.Min[i])
		out.Max[i] = math.Min(b.Max[i], other.Max[i])
		if out.Max[i] < out.Min[i] {
			return Box{}, false
		}
	}
	return out, true
}

// Contains reports whether p lies inside b (boundaries included).
func (b Box) Contains(p []float64) bool {
	if len(p) != b.Len() {
		return false
	}
	for i, v := range p {
		if v < b.Min[i] || v > b.Max[i] {
			return false
		}
	}
	return true
}

// ClosestPoint returns the point of b nearest to p on every axis: p clamped
// into [Min, Max]. Unbounded dimensions keep p's coordinate.
func (b Box) ClosestPoint(p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = math.Min(math.Max(v, b.Min[i]), b.Max[i])
	}
	return out
}

// Clone returns a deep copy.
func (b Box) Clone() Box { return NewBox(b.Min, b.Max) }

// Equal reports exact equality of the bounds.
func (b Box) Equal(other Box) bool {
	if len(b.Min) != len(other.Min) || len(b.Max) != len(other.Max) {
		return false
	}
	for i := range b.Min {
		if b.Min[i] != other.Min[i] || b.Max[i] != other.Max[i] {
			return false
		}
	}
	return true
}

// String renders the box as [min]-[max].
func (b Box) String() string {
	var sb strings.Builder
	writeVec(&sb, b.Min)
	sb.WriteByte('-')
	writeVec(&sb, b.Max)
	return sb.String()
}

// extend grows b on dims so that it contains p.
func (b Box) extend(p []float64, dims []int) Box {
	out := b.Clone()
	for _, dim := range dims {
		out.Min[dim] = math.Min(out.Min[dim], p[dim])
		out.Max[dim] = math.Max(out.Max[dim], p[dim])
	}
	return out
}

func writeVec(sb *strings.Builder, v []float64) {
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(sb, "%g", x)
	}
	sb.WriteByte(']')
}
