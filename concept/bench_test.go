// SPDX-License-Identifier: MIT

package concept_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/conceptspace/concept"
	"github.com/katalvlaran/conceptspace/region"
)

// benchConcept builds a concept over n one-dimensional domains with k boxes
// that all contain the origin.
func benchConcept(b *testing.B, n, k int) (*concept.Concept, map[string][]int) {
	domains := make(map[string][]int, n)
	doms := make(map[string]float64, n)
	dims := make(map[string]map[int]float64, n)
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("x%d", i)
		domains[name] = []int{i}
		doms[name] = 1
		dims[name] = map[int]float64{i: 1}
	}

	boxes := make([]region.Box, k)
	for j := range boxes {
		lo := make([]float64, n)
		hi := make([]float64, n)
		for i := 0; i < n; i++ {
			lo[i] = -float64(j + 1)
			hi[i] = float64((i+j)%3 + 1)
		}
		boxes[j] = region.NewBox(lo, hi)
	}

	return mustConcept(b, mustRegion(b, domains, boxes...), 1, 1, mustWeights(b, doms, dims)), domains
}

func benchmarkHypervolume(b *testing.B, n, k int) {
	c, domains := benchConcept(b, n, k)
	sp := mustSpace(b, domains)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Hypervolume(sp); err != nil {
			b.Fatalf("Hypervolume failed: %v", err)
		}
	}
}

func BenchmarkHypervolume_4D_1Box(b *testing.B) { benchmarkHypervolume(b, 4, 1) }
func BenchmarkHypervolume_4D_4Boxes(b *testing.B) { benchmarkHypervolume(b, 4, 4) }
func BenchmarkHypervolume_8D_4Boxes(b *testing.B) { benchmarkHypervolume(b, 8, 4) }
func BenchmarkHypervolume_8D_8Boxes(b *testing.B) { benchmarkHypervolume(b, 8, 8) }

func BenchmarkMembership_8D_8Boxes(b *testing.B) {
	c, domains := benchConcept(b, 8, 8)
	sp := mustSpace(b, domains)
	p := []float64{5, -5, 5, -5, 5, -5, 5, -5}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Membership(sp, p); err != nil {
			b.Fatalf("Membership failed: %v", err)
		}
	}
}

func BenchmarkHypervolumeAll_16x6D(b *testing.B) {
	concepts := make([]*concept.Concept, 16)
	var domains map[string][]int
	for i := range concepts {
		concepts[i], domains = benchConcept(b, 6, 1+i%4)
	}
	sp := mustSpace(b, domains)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := concept.HypervolumeAll(context.Background(), sp, concepts); err != nil {
			b.Fatalf("HypervolumeAll failed: %v", err)
		}
	}
}
