// Package dfs implements depth-first path search on a core.Graph.
//
// What:
//
//   - Path(g, start, goal): find some path from start to goal by exploring as
//     deep as possible before backtracking. The result is not necessarily
//     the shortest one.
//   - An explicit LIFO stack of (vertex, path) frames replaces recursion; each
//     frame carries the full path used to reach its vertex.
//   - Cycle avoidance is per path, not global: a vertex may be reached again
//     along a different branch, but never twice on the same path.
//
// Determinism:
//
//	Neighbors are enumerated in ascending ID order (core.NeighborIDs) and
//	pushed in that order, so the lexicographically largest unexplored
//	neighbor is popped first. The goal is tested while neighbors are
//	enumerated; the first hit wins.
//
// Edge cases:
//
//   - start == goal returns Path{start} without entering the loop.
//   - An exhausted stack returns a nil Path and a nil error ("no path").
//
// Complexity:
//
//   - Time:   exponential in the worst case (paths, not vertices, are
//     enumerated); always terminates because every push strictly grows a
//     path bounded by V.
//   - Memory: O(depth · V) for the carried paths.
//
// Options:
//
//   - WithContext(ctx)   cancellation, checked once per popped frame.
//   - WithOnVisit(fn)    hook per popped frame; an error aborts the search.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start not in graph (matches core.ErrVertexNotFound)
//   - ErrGoalVertexNotFound   goal not in graph (matches core.ErrVertexNotFound)
//   - context errors          search canceled via context
//   - hook errors             wrapped from OnVisit
package dfs
