// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices); smaller rings would need a self-loop
//     or a duplicate edge, both rejected by core.
//   - Emits edges i–(i+1) mod n for i=0..n-1.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		if err := addIndexed(g, cfg, methodCycle, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			uID := cfg.idFn(i)
			vID := cfg.idFn((i + 1) % n)
			w := cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", methodCycle, uID, vID, w, err)
			}
		}

		return nil
	}
}
