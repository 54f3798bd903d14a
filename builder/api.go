// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// api.go - the BuildGraph orchestrator and the Constructor contract.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

// Constructor records a deterministic set of nodes and edges into b using
// the resolved builderConfig. Constructors validate their parameters before
// touching b and return sentinel errors instead of panicking.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with gopts, resolves the builder
// configuration from bopts, applies all constructors in order and freezes
// the result. Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of constructors + O(V·log V) for Build.
func BuildGraph(gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build()
}

// link records u→v with weight w, plus v→u when b does not mirror by itself.
func link(b *core.Builder, u, v core.NodeID, w int64) error {
	if err := b.AddWeightedEdge(u, v, w); err != nil {
		return err
	}
	if !b.Undirected() {
		return b.AddWeightedEdge(v, u, w)
	}

	return nil
}

// addNodes registers ids in order.
func addNodes(method string, b *core.Builder, ids []core.NodeID) error {
	for _, id := range ids {
		if err := b.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
		}
	}

	return nil
}

// nodeIDs maps indices [from, to) through cfg.idFn.
func nodeIDs(cfg builderConfig, from, to int) []core.NodeID {
	ids := make([]core.NodeID, 0, to-from)
	for i := from; i < to; i++ {
		ids = append(ids, cfg.idFn(i))
	}

	return ids
}
