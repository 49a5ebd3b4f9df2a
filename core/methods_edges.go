// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/GetEdge/Edges/EdgeCount.
//       Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges sorted by edge sequence number asc.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock (with muVert read lock held for endpoint checks).
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new undirected edge between two existing vertices.
//
// Steps:
//  1. Validate IDs (ErrEmptyVertexID).
//  2. Reject self-loops and non-finite weights (ErrInvalidEdge).
//  3. Reject negative weights (ErrNegativeWeight, also ErrInvalidEdge).
//  4. Under muVert read lock, require both endpoints to exist; edges never
//     register vertices on their own (ErrInvalidEdge + ErrVertexNotFound).
//  5. Under muEdgeAdj write lock, reject a second edge for the same pair (ErrInvalidEdge).
//  6. Generate eid atomically, store the edge, and link both adjacency directions.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, from)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", fmt.Errorf("%w: weight %v on %q–%q is not finite", ErrInvalidEdge, weight, from, to)
	}
	if weight < 0 {
		return "", fmt.Errorf("%w: %w: %q–%q weight=%v", ErrInvalidEdge, ErrNegativeWeight, from, to, weight)
	}

	// 2) Endpoints must be registered
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	for _, id := range [2]string{from, to} {
		if _, ok := g.vertices[id]; !ok {
			return "", fmt.Errorf("%w: %w: %q", ErrInvalidEdge, ErrVertexNotFound, id)
		}
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if existing, ok := g.adjacency[from][to]; ok {
		return "", fmt.Errorf("%w: %q–%q already connected by %s", ErrInvalidEdge, from, to, existing)
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}

	// 4) Link both directions
	ensureAdjacency(g, from)
	ensureAdjacency(g, to)
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid

	return eid, nil
}

// HasEdge reports whether an edge between a and b exists, in either orientation.
// Complexity: O(1).
func (g *Graph) HasEdge(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[a][b]

	return ok
}

// Weight returns the weight of the edge between a and b.
// Lookups are symmetric: Weight(a,b) == Weight(b,a).
//
// Errors:
//   - ErrEdgeNotFound: if no edge joins a and b (including unknown vertices).
//
// Complexity: O(1).
func (g *Graph) Weight(a, b string) (float64, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[a][b]
	if !ok {
		return 0, fmt.Errorf("%w: %q–%q", ErrEdgeNotFound, a, b)
	}

	return g.edges[eid].Weight, nil
}

// GetEdge returns the Edge with the given edgeID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only by callers.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEdgeNotFound, edgeID)
	}

	return e, nil
}

// Edges returns all edges in insertion order (by edge sequence number).
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return edgeSeq(out[i].ID) < edgeSeq(out[j].ID) })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
//
// Determinism:
//   - Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically.
//   - Produces "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// edgeSeq extracts the sequence number from an ID produced by nextEdgeID.
// "e10" must sort after "e9", so IDs are compared numerically.
func edgeSeq(id string) uint64 {
	n, _ := strconv.ParseUint(id[1:], 10, 64)

	return n
}
