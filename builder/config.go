// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn         (index i → NodeID(i))
//   - rng      = nil                 (pure unless seeded)
//   - weightFn = DefaultWeightFn     (constant 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts over the defaults; later options win.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
