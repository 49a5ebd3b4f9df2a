// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in increasing order.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		if err := addIndexed(g, cfg, methodPath, n); err != nil {
			return err
		}

		var (
			i        int
			w        float64
			uID, vID string
		)
		for i = 1; i < n; i++ {
			uID, vID = cfg.idFn(i-1), cfg.idFn(i)
			w = cfg.weightFn(cfg.rng)
			if _, err := g.AddEdge(uID, vID, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%s–%s, w=%g): %w", methodPath, uID, vID, w, err)
			}
		}

		return nil
	}
}

// addIndexed registers n vertices named cfg.idFn(0..n-1).
func addIndexed(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", method, id, err)
		}
	}
	return nil
}
