// Package core provides a thread-safe in-memory weighted undirected Graph
// with a minimal, composable API surface.
//
// The Graph G = (V,E) is simple:
//
//   - Edges are undirected; adjacency is mirrored (adjacency[a][b] == adjacency[b][a]).
//   - No self-loops and at most one edge per unordered vertex pair.
//   - Weights are float64, finite and non-negative.
//   - Edges require both endpoints to be registered first; AddEdge never
//     creates vertices implicitly.
//   - Collision-free atomic Edge.ID generation (“e1”, “e2”, …).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error              // O(1), idempotent
//	AddVertices(ids ...string) error        // O(k), idempotent
//	HasVertex(id string) bool               // O(1)
//
//	// Edge lifecycle
//	AddEdge(a, b string, w float64) (edgeID string, err error) // O(1)
//	HasEdge(a, b string) bool               // O(1), symmetric
//	Weight(a, b string) (float64, error)    // O(1), symmetric
//
//	// Query
//	Neighbors(id string) ([]*Edge, error)   // O(d·log d), sorted by neighbor ID
//	NeighborIDs(id string) ([]string, error)// O(d·log d), sorted
//	AdjacencyList() map[string][]string     // O(V+E)
//	Vertices() []string                     // O(V·log V), sorted
//	Edges() []*Edge                         // O(E·log E), insertion order
//
//	// Counts & degrees
//	Degree(id string) (int, error)          // O(1)
//	VertexCount() int                       // O(1)
//	EdgeCount() int                         // O(1)
//	Stats() GraphStats                      // O(V+E)
//
// Path is the shared result type of the path-search packages: a nil Path
// means "no path", and Path{start} is the zero-hop path.
//
// Errors:
//
//	ErrEmptyVertexID  – zero-length vertex ID
//	ErrVertexNotFound – missing vertex (Neighbors, NeighborIDs, Degree)
//	ErrEdgeNotFound   – missing edge (Weight, GetEdge, Path.Cost)
//	ErrInvalidEdge    – self-loop, duplicate pair, non-finite weight, unregistered endpoint
//	ErrNegativeWeight – negative weight (wrapped together with ErrInvalidEdge)
package core
