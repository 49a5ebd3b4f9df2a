// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only structural summary of a graph (counts and degree distribution).
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// GraphStats is a snapshot of the structural statistics of a Graph.
type GraphStats struct {
	// VertexCount is the number of vertices.
	VertexCount int

	// EdgeCount is the number of undirected edges.
	EdgeCount int

	// TotalWeight is the sum of all edge weights.
	TotalWeight float64

	// AverageDegree is 2E/V, or 0 for an empty graph.
	AverageDegree float64

	// Degrees maps every vertex ID to its degree.
	Degrees map[string]int
}

// Stats produces a deterministic, read-only snapshot of the graph structure.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock then muEdgeAdj.RLock (canonical lock order).
//   - Stage 2: Read every adjacency bucket size as the vertex degree.
//   - Stage 3: Sum edge weights once over the edge catalog.
//
// Returns:
//   - GraphStats: value object; Degrees is freshly allocated.
//
// Complexity:
//   - Time O(V+E), Space O(V).
func (g *Graph) Stats() GraphStats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	stats := GraphStats{
		VertexCount: len(g.vertices),
		EdgeCount:   len(g.edges),
		Degrees:     make(map[string]int, len(g.vertices)),
	}
	for id := range g.vertices {
		stats.Degrees[id] = len(g.adjacency[id])
	}
	var e *Edge
	for _, e = range g.edges {
		stats.TotalWeight += e.Weight
	}
	if stats.VertexCount > 0 {
		stats.AverageDegree = float64(2*stats.EdgeCount) / float64(stats.VertexCount)
	}

	return stats
}
