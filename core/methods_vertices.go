// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import (
	"fmt"
	"sort"
)

// IsNil reports whether the receiver is nil.
func (v *Vertex) IsNil() bool { return v == nil }

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, allocate Vertex and register it.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muVert -> muEdgeAdj to avoid lock inversion across vertex/edge code paths.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}

	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// AddVertices inserts every id in order, ignoring duplicates.
// It stops at the first invalid id and reports its position; vertices added
// before the failure stay in the graph.
func (g *Graph) AddVertices(ids ...string) error {
	for i, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("core: AddVertices[%d]: %w", i, err)
		}
	}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns all vertex IDs sorted lexicographically ascending.
//
// Determinism:
//   - Sorted order is a contract; algorithms rely on it for reproducible tie-breaking.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	var id string
	for id = range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
//
// Implementation:
//   - Stage 1: Validate id and vertex existence under locks.
//   - Stage 2: Read the size of the adjacency bucket (no loops, no parallel edges,
//     so every neighbor contributes exactly one edge).
//
// Errors:
//   - ErrEmptyVertexID: if id is empty.
//   - ErrVertexNotFound: if the vertex does not exist in the graph.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Degree(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(g.adjacency[id]), nil
}
