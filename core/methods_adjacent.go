// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - Neighbors() sorts incident edges by the opposite endpoint ID asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex neighbor slices sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - ensureAdjacency is called only under the muEdgeAdj write lock.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns all edges incident to the given vertex id.
//
// Implementation:
//   - Stage 1: Validate id is non-empty (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert read lock and muEdgeAdj read lock (in that order).
//   - Stage 3: Validate vertex existence (ErrVertexNotFound).
//   - Stage 4: Map adjacency[id] to catalog edges and sort by the opposite endpoint.
//
// Behavior highlights:
//   - Returns pointers to live catalog edges (read-only by convention).
//   - Use e.Other(id) to obtain the neighbor, since orientation is not normalized.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]*Edge, 0, len(g.adjacency[id]))
	var eid string
	for _, eid = range g.adjacency[id] {
		if e := g.edges[eid]; !e.IsNil() {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Other(id) < out[j].Other(id) })

	return out, nil
}

// NeighborIDs returns the set of vertex IDs adjacent to id, sorted lexicographically ascending.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return sortedKeys(g.adjacency[id]), nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its sorted neighbor IDs.
// Isolated vertices map to an empty, non-nil slice.
// Returned slices are freshly allocated and safe to retain.
//
// Complexity:
//   - Time O(V + E log E), Space O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacency))
	for from, toMap := range g.adjacency {
		result[from] = sortedKeys(toMap)
	}

	return result
}

// ensureAdjacency guarantees that adjacency[id] is initialized.
// Must be called ONLY under the muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}

func sortedKeys(m map[string]string) []string {
	ids := make([]string, 0, len(m))
	for k := range m {
		ids = append(ids, k)
	}
	sort.Strings(ids)

	return ids
}
