// Package bfs provides breadth-first search over a core.Graph.
//
// What
//
//   - Path(g, start, goal, opts...) returns a path with the fewest edges from
//     start to goal, ignoring weights. The goal is tested at enqueue time, so
//     the search stops as soon as the goal is discovered.
//   - Walk(g, start, opts...) runs a full traversal and returns a BFSResult:
//   - Order: visit sequence
//   - Depth: map from vertex → distance (edges) from start
//   - Parent: map from vertex → its predecessor in the BFS tree
//     (BFSResult.PathTo reconstructs hop-minimal paths from it).
//   - Hooks: OnEnqueue (on discovery) and OnVisit (on dequeue; may abort
//     with an error).
//   - WithFilterNeighbor skips individual edges; WithMaxDepth bounds the
//     explored radius.
//
// Determinism
//
//	core.NeighborIDs returns neighbors in ascending ID order and BFS enqueues
//	them in that order, so visit order and returned paths are reproducible.
//
// Errors
//
//	ErrGraphNil             - g is nil.
//	ErrStartVertexNotFound  - start is absent (also matches core.ErrVertexNotFound).
//	ErrGoalVertexNotFound   - goal is absent (also matches core.ErrVertexNotFound).
//	ErrOptionViolation      - invalid option value (e.g. negative MaxDepth).
//	ErrNeighbors            - neighbor lookup failed.
//	context errors and hook errors are propagated wrapped.
//
// Complexity
//
//	Time O(V + E), memory O(V).
package bfs
