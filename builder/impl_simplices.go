// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// impl_simplices.go - RandomSimplices, a seeded co-authorship style fixture.
//
// Contract:
//   - sp.Nodes ≥ 2, sp.Years ≥ 1, sp.PerYear ≥ 1, sp.MaxMembers ≥ 2
//     (else ErrTooFewVertices); an RNG is required (else ErrNeedRandSource).
//   - For every year FirstYear..FirstYear+Years-1, PerYear simplices are drawn;
//     each has 2..min(MaxMembers, Nodes) distinct members chosen uniformly.
//   - Member IDs go through cfg.idFn, so WithIDOffset applies.
//
// Complexity: O(Years·PerYear·Nodes) for the permutation draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
)

const (
	methodRandomSimplices = "RandomSimplices"
	minSimplexMembers     = 2
	minSimplexYears       = 1
)

// SimplexSpec sizes a RandomSimplices fixture.
type SimplexSpec struct {
	Nodes      int // population the members are drawn from
	FirstYear  int // first time bucket
	Years      int // number of consecutive buckets
	PerYear    int // simplices per bucket
	MaxMembers int // upper bound on simplex size
}

// RandomSimplices draws a temporal co-occurrence graph according to sp.
func RandomSimplices(sp SimplexSpec, opts ...BuilderOption) (*core.TemporalGraph, error) {
	cfg := newBuilderConfig(opts...)
	switch {
	case sp.Nodes < minSimplexMembers, sp.MaxMembers < minSimplexMembers:
		return nil, fmt.Errorf("%s: nodes=%d, maxMembers=%d < min=%d: %w",
			methodRandomSimplices, sp.Nodes, sp.MaxMembers, minSimplexMembers, ErrTooFewVertices)
	case sp.Years < minSimplexYears, sp.PerYear < minSimplexYears:
		return nil, fmt.Errorf("%s: years=%d, perYear=%d < min=%d: %w",
			methodRandomSimplices, sp.Years, sp.PerYear, minSimplexYears, ErrTooFewVertices)
	case cfg.rng == nil:
		return nil, fmt.Errorf("%s: %w", methodRandomSimplices, ErrNeedRandSource)
	}

	maxSize := min(sp.MaxMembers, sp.Nodes)
	tb := core.NewTemporalBuilder()
	members := make([]core.NodeID, 0, maxSize)
	for y := 0; y < sp.Years; y++ {
		year := sp.FirstYear + y
		for s := 0; s < sp.PerYear; s++ {
			size := minSimplexMembers + cfg.rng.Intn(maxSize-minSimplexMembers+1)
			members = members[:0]
			for _, idx := range cfg.rng.Perm(sp.Nodes)[:size] {
				members = append(members, cfg.idFn(idx))
			}
			if err := tb.AddSimplex(year, members); err != nil {
				return nil, fmt.Errorf("%s: AddSimplex(%d): %w", methodRandomSimplices, year, err)
			}
		}
	}

	return tb.Build()
}
