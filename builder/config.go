// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = decimalID             ("0","1","2",...)
//   • rng      = nil                   (no randomness unless seeded)
//   • weightFn = constant DefaultEdgeWeight

package builder

import (
	"math/rand"
	"strconv"
)

// DefaultEdgeWeight is the weight of every generated edge when no weight
// function is configured.
const DefaultEdgeWeight float64 = 1

// builderConfig aggregates all knobs used by constructors.
// It is passed by value, so constructors cannot mutate the caller's view.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn func(int) string
	// RNG for weight sampling; nil means deterministic fallback.
	rng *rand.Rand
	// Weight generator for generated edges.
	weightFn func(*rand.Rand) float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later options override earlier ones).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     decimalID,
		rng:      nil,
		weightFn: func(*rand.Rand) float64 { return DefaultEdgeWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// decimalID renders an index as a base-10 string ("0","1","2",...).
func decimalID(i int) string {
	return strconv.Itoa(i)
}
