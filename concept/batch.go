// SPDX-License-Identifier: MIT

package concept

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/conceptspace/space"
)

// HypervolumeAll computes the hypervolume of every concept, in input order.
//
// Each concept is checked against the dimension and box limits before any
// exponential work starts; an oversized concept fails the whole call with
// ErrLimitExceeded. The computations themselves are independent and run on up
// to WithConcurrency goroutines. Cancellation of ctx is observed between
// concepts, not inside a single Hypervolume.
func HypervolumeAll(ctx context.Context, sp *space.Space, concepts []*Concept, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)

	for i, k := range concepts {
		if k == nil {
			return nil, fmt.Errorf("concept %d: %w", i, ErrNilConcept)
		}
		if o.maxDimensions > 0 && k.NumDimensions() > o.maxDimensions {
			return nil, fmt.Errorf("concept %d: %w: %d dimensions > %d", i, ErrLimitExceeded, k.NumDimensions(), o.maxDimensions)
		}
		if o.maxBoxes > 0 && k.NumBoxes() > o.maxBoxes {
			return nil, fmt.Errorf("concept %d: %w: %d boxes > %d", i, ErrLimitExceeded, k.NumBoxes(), o.maxBoxes)
		}
	}

	out := make([]float64, len(concepts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, k := range concepts {
		i, k := i, k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			v, err := k.Hypervolume(sp)
			if err != nil {
				return fmt.Errorf("concept %d: %w", i, err)
			}
			out[i] = v
			o.logger.Debug("hypervolume computed",
				slog.Int("index", i),
				slog.Int("dimensions", k.NumDimensions()),
				slog.Int("boxes", k.NumBoxes()),
				slog.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
