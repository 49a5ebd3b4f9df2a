// Package core defines the central Graph, Vertex, and Edge types,
// and provides thread-safe primitives for building and querying weighted
// undirected graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so a fully built graph can be shared by
// any number of concurrent readers.
//
// This file declares Vertex, Edge, Graph, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrVertexNotFound  - requested vertex does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrInvalidEdge     - self-loop, duplicate pair, non-finite weight or unknown endpoint.
//	ErrNegativeWeight  - negative weight supplied (also matches ErrInvalidEdge).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates an edge that cannot be part of a simple weighted graph.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrNegativeWeight indicates a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Vertex represents a node in the graph.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data.
	Metadata map[string]interface{}
}

// Edge represents an undirected weighted connection between two distinct vertices.
//
// From/To keep the orientation in which the edge was added; algorithms
// must treat the pair as unordered.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string

	// Weight is the non-negative, finite cost of the edge.
	Weight float64
}

// Other returns the endpoint of e opposite to id.
// The result is undefined if id is not an endpoint of e.
func (e *Edge) Other(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// IsNil reports whether the receiver is nil.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the internal maps for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// Graph is the core in-memory graph data structure.
//
// The graph is undirected and weighted, without self-loops or parallel edges.
// muVert protects the vertices map; muEdgeAdj protects the edges map and adjacency.
// nextEdgeID is an atomic counter for unique Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	capacity int // initial map size hint

	// Storage
	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[a][b] = Edge.ID, mirrored as adjacency[b][a].
	adjacency map[string]map[string]string
}

// NewGraph creates an empty weighted undirected Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	g.vertices = make(map[string]*Vertex, g.capacity)
	g.edges = make(map[string]*Edge, g.capacity)
	g.adjacency = make(map[string]map[string]string, g.capacity)

	return g
}
