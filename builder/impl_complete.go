// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_complete.go - Complete(n) and CompleteBipartite(n1, n2).
//
// Contract:
//   - Complete: n ≥ 1; indices 0..n-1; every pair {i,j}, i<j, in
//     lexicographic order, one weight draw per pair.
//   - CompleteBipartite: n1, n2 ≥ 1; left side indices 0..n1-1, right side
//     n1..n1+n2-1; pairs in left-major order.
//
// Complexity: O(n²) / O(n1·n2) edges, O(n) extra for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := nodeIDs(cfg, 0, n)
		if err := addNodes(methodComplete, b, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				w := cfg.weight()
				if err := link(b, ids[i], ids[j], w); err != nil {
					return fmt.Errorf("%s: link(%d-%d, w=%d): %w", methodComplete, ids[i], ids[j], w, err)
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n1 < minPartitionNodes || n2 < minPartitionNodes {
			return fmt.Errorf("%s: n1=%d, n2=%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionNodes, ErrTooFewVertices)
		}
		left := nodeIDs(cfg, 0, n1)
		right := nodeIDs(cfg, n1, n1+n2)
		if err := addNodes(methodCompleteBipartite, b, left); err != nil {
			return err
		}
		if err := addNodes(methodCompleteBipartite, b, right); err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				w := cfg.weight()
				if err := link(b, u, v, w); err != nil {
					return fmt.Errorf("%s: link(%d-%d, w=%d): %w", methodCompleteBipartite, u, v, w, err)
				}
			}
		}

		return nil
	}
}
