// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// on weighted undirected graphs with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra(g, Source(id), opts...) returns the distance to every vertex of g
//     (Infinity for vertices in other components) and, with WithReturnPath, the
//     predecessor map. PathTo turns that map into a core.Path.
//   - Selection is a linear scan over unvisited vertices in ascending ID order,
//     O(V²) overall. Among vertices at equal distance the lexicographically
//     smallest ID is settled first, so results are fully deterministic.
//   - Supports distance caps (WithMaxDistance), impassable edges
//     (WithInfEdgeThreshold) and a settlement hook (WithOnSettle).
//
// Usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("Lviv"), dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(dist["Odessa"], dijkstra.PathTo(prev, "Lviv", "Odessa"))
//
// Errors:
//
//	ErrEmptySource, ErrNilGraph, ErrVertexNotFound (matches core.ErrVertexNotFound),
//	ErrNegativeWeight (matches core.ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
package dijkstra
