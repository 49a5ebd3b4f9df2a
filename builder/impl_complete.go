// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits each unordered pair {i,j}, i<j, in lexicographic index order.
//
// Complexity: O(n²) time, O(n) extra space for the cached IDs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		for i := 0; i < n; i++ {
			u := ids[i]
			for j := i + 1; j < n; j++ {
				v := ids[j]
				w := cfg.weightFn(cfg.rng)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", methodComplete, u, v, w, err)
				}
			}
		}

		return nil
	}
}
