// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2; hub is index 0, leaves are indices 1..n-1; spokes in
//     increasing leaf order.
//   - Wheel: n ≥ 4; a Star whose leaves also form a ring 1→2→…→(n-1)→1.
//   - Spokes and rim edges are symmetric (see link).
//
// Complexity: O(n) time, O(n) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		_, err := spokes(methodStar, b, cfg, n)

		return err
	}
}

// Wheel returns a Constructor that builds W_n: a hub joined to a C_{n-1} rim.
func Wheel(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		rim, err := spokes(methodWheel, b, cfg, n)
		if err != nil {
			return err
		}
		for i := range rim {
			u, v := rim[i], rim[(i+1)%len(rim)]
			w := cfg.weight()
			if err = link(b, u, v, w); err != nil {
				return fmt.Errorf("%s: link(%d-%d, w=%d): %w", methodWheel, u, v, w, err)
			}
		}

		return nil
	}
}

// spokes adds the hub and n-1 leaves and returns the leaf IDs.
func spokes(method string, b *core.Builder, cfg builderConfig, n int) ([]core.NodeID, error) {
	ids := nodeIDs(cfg, 0, n)
	if err := addNodes(method, b, ids); err != nil {
		return nil, err
	}
	hub, leaves := ids[0], ids[1:]
	for _, leaf := range leaves {
		w := cfg.weight()
		if err := link(b, hub, leaf, w); err != nil {
			return nil, fmt.Errorf("%s: link(%d-%d, w=%d): %w", method, hub, leaf, w, err)
		}
	}

	return leaves, nil
}
