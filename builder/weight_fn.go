// SPDX-License-Identifier: MIT
// Package: graphstat/builder
//
// weight_fn.go - edge weight generators.
//
// Every generator returns a strictly positive weight; with a nil RNG the
// stochastic generators fall back to DefaultEdgeWeight.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn draws an edge weight from rng (which may be nil).
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 1.
func ConstantWeightFn(value int64) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [lo, hi]. Panics unless 1 ≤ lo ≤ hi.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// GeometricWeightFn draws 1 + ⌊Exp(rate)⌋, a heavy-headed distribution that
// resembles repeated collaboration counts. Panics if rate ≤ 0.
func GeometricWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("GeometricWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := math.Floor(rng.ExpFloat64() / rate)
		if sample >= math.MaxInt64-1 {
			return math.MaxInt64
		}

		return 1 + int64(sample)
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}
