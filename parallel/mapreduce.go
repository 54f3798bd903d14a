// SPDX-License-Identifier: MIT
// Package: graphstat/parallel
//
// mapreduce.go - partition, map on a bounded errgroup, reduce once.

package parallel

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphstat/core"
	"golang.org/x/sync/errgroup"
)

// Task computes the partial result of one partition. It must only read g.
type Task[T any] func(ctx context.Context, part []core.NodeID) (T, error)

// Combine folds a partial result into the accumulator. It must be
// associative; MapReduce applies it in partition order.
type Combine[T any] func(acc, part T) T

// Partition splits nodes into at most parts contiguous, non-empty chunks of
// near-equal length. Chunks alias nodes; callers must not mutate them.
// Complexity: O(parts).
func Partition(nodes []core.NodeID, parts int) [][]core.NodeID {
	if len(nodes) == 0 || parts < 1 {
		return nil
	}
	if parts > len(nodes) {
		parts = len(nodes)
	}
	out := make([][]core.NodeID, 0, parts)
	size, rem := len(nodes)/parts, len(nodes)%parts
	start := 0
	for i := 0; i < parts; i++ {
		end := start + size
		if i < rem {
			end++ // first rem chunks absorb the remainder
		}
		out = append(out, nodes[start:end])
		start = end
	}

	return out
}

// MapReduce partitions the nodes of g, runs task on every partition with at
// most Workers goroutines, and merges the partial results with combine,
// starting from zero, after all partitions finished.
//
// Returns ErrNilGraph, ErrOptionViolation, an ErrPassFailed-wrapped join of
// every partition error (including ErrWorkerPanic), or the caller's context
// error when ctx is cancelled before completion.
func MapReduce[T any](
	ctx context.Context,
	g *core.Graph,
	task Task[T],
	combine Combine[T],
	zero T,
	opts ...Option,
) (T, error) {
	if g == nil {
		return zero, core.ErrNilGraph
	}
	o, err := Resolve(opts...)
	if err != nil {
		return zero, err
	}

	parts := Partition(g.Nodes(), o.Partitions)
	results := make([]T, len(parts))
	errs := make([]error, len(parts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for i, part := range parts {
		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("partition %d: %w: %v", i, ErrWorkerPanic, r)
					errs[i] = err
				}
			}()
			// Partitions queued behind a failure are skipped.
			if err = egCtx.Err(); err != nil {
				return err
			}
			res, err := task(egCtx, part)
			if err != nil {
				errs[i] = fmt.Errorf("partition %d: %w", i, err)
				return errs[i]
			}
			results[i] = res
			return nil
		})
	}
	waitErr := eg.Wait()

	if joined := errors.Join(errs...); joined != nil {
		return zero, fmt.Errorf("%w: %w", ErrPassFailed, joined)
	}
	if waitErr != nil {
		return zero, waitErr
	}

	acc := zero
	for _, res := range results {
		acc = combine(acc, res)
	}

	return acc, nil
}
