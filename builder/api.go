// SPDX-License-Identifier: MIT
// Package: graphkit/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors wrapped with context.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early, return wrapped
// sentinel errors and emit vertices and edges in a stable order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts and applies all constructors in order. Any constructor error is
// wrapped with "BuildGraph: %w" and returned immediately; the partially built
// graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is the counterpart
// of BuildGraph for callers that own the graph (for example to pass
// core.WithCapacity).
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Network constructors - explicit vertex and edge listings
// =============================================================================

const (
	methodNodes         = "Nodes"
	methodWeightedEdges = "WeightedEdges"
	methodFromNetwork   = "FromNetwork"
)

// Nodes registers the given vertex IDs in order. Already present IDs are
// left untouched.
func Nodes(ids ...string) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range ids {
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%q): %w", methodNodes, id, err)
			}
		}
		return nil
	}
}

// WeightedEdges adds the given edges in order. Endpoints must already be
// registered (see Nodes); core rejects unknown endpoints with
// core.ErrVertexNotFound.
func WeightedEdges(edges ...EdgeSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for i, e := range edges {
			if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return fmt.Errorf("%s: edge[%d] %s–%s (w=%g): %w", methodWeightedEdges, i, e.From, e.To, e.Weight, err)
			}
		}
		return nil
	}
}

// FromNetwork registers every node of n and then every edge.
// A network without nodes yields ErrEmptyNetwork.
func FromNetwork(n Network) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(n.Nodes) == 0 {
			return fmt.Errorf("%s(%q): %w", methodFromNetwork, n.Title, ErrEmptyNetwork)
		}
		if err := Nodes(n.Nodes...)(g, cfg); err != nil {
			return fmt.Errorf("%s(%q): %w", methodFromNetwork, n.Title, err)
		}
		if err := WeightedEdges(n.Edges...)(g, cfg); err != nil {
			return fmt.Errorf("%s(%q): %w", methodFromNetwork, n.Title, err)
		}
		return nil
	}
}

// =============================================================================
// Topology constructors - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure that adds vertices via cfg.idFn
// (Grid uses fixed "r,c" IDs), draws each edge weight from cfg.weightFn and
// emits edges in a stable, documented order.

// Path builds a simple path P_n (n ≥ 2).
//func Path(n int) Constructor

// Cycle builds an n-vertex simple cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor

// Complete builds the complete simple graph K_n (n ≥ 1).
//func Complete(n int) Constructor

// Grid builds an R×C 4-neighborhood grid with IDs "r,c" (row-major).
//func Grid(rows, cols int) Constructor
