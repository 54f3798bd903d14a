// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate their arguments and panic on meaningless
// input (nil functions, nil RNG); constructors themselves never panic.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/graphstat/core"
)

// BuilderOption customizes the builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → NodeID mapping. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithIDOffset shifts every generated ID by off, so several constructors can
// be composed in one BuildGraph without colliding.
func WithIDOffset(off core.NodeID) BuilderOption {
	return WithIDScheme(OffsetIDFn(off))
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
