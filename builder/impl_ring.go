// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_ring.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2; edges i-i+1 for i = 0..n-2.
//   - Cycle: n ≥ 3; Path edges plus the closing edge (n-1)-0.
//   - Both directions are recorded through link, like every other
//     symmetric topology.
//
// Complexity: O(n) time, O(n) extra for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the path P_n.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		return chain(methodPath, b, cfg, nodeIDs(cfg, 0, n), false)
	}
}

// Cycle returns a Constructor that builds the cycle C_n.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		return chain(methodCycle, b, cfg, nodeIDs(cfg, 0, n), true)
	}
}

// chain registers ids and connects consecutive entries, closing the ring
// when closed is set.
func chain(method string, b *core.Builder, cfg builderConfig, ids []core.NodeID, closed bool) error {
	if err := addNodes(method, b, ids); err != nil {
		return err
	}
	last := len(ids) - 1
	if closed {
		last = len(ids)
	}
	for i := 0; i < last; i++ {
		u, v := ids[i], ids[(i+1)%len(ids)]
		w := cfg.weight()
		if err := link(b, u, v, w); err != nil {
			return fmt.Errorf("%s: link(%d-%d, w=%d): %w", method, u, v, w, err)
		}
	}

	return nil
}
