// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: randomness only enters through WithSeed/WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator used by topology constructors.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for weight sampling. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the configured (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight makes every generated edge weigh w. Panics if w < 0.
func WithConstantWeight(w float64) BuilderOption {
	if w < 0 {
		panic(fmt.Sprintf("builder: WithConstantWeight(%g): weight must be ≥ 0", w))
	}
	return WithWeightFn(func(*rand.Rand) float64 { return w })
}

// WithUniformWeights samples weights uniformly from [lo, hi).
// Without an RNG (see WithSeed) every edge gets lo.
// Panics unless 0 ≤ lo ≤ hi.
func WithUniformWeights(lo, hi float64) BuilderOption {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("builder: WithUniformWeights: require 0 ≤ lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return WithWeightFn(func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	})
}
