// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_random_sparse.go - RandomSparse(n, p), an Erdős–Rényi style sampler.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource).
//   - Undirected Builder: unordered pairs {i,j}, i<j. Directed Builder:
//     ordered pairs (i,j), i≠j. Self-loops are never sampled.
//   - Trial order is i asc, j asc, so a fixed seed yields a fixed graph.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples every admissible edge
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := nodeIDs(cfg, 0, n)
		if err := addNodes(methodRandomSparse, b, ids); err != nil {
			return err
		}
		undirected := b.Undirected()
		for i := 0; i < n; i++ {
			j := 0
			if undirected {
				j = i + 1
			}
			for ; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				w := cfg.weight()
				if err := b.AddWeightedEdge(ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: AddWeightedEdge(%d→%d, w=%d): %w",
						methodRandomSparse, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}

// trial reports a Bernoulli(p) outcome; p ∈ {0,1} needs no RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
