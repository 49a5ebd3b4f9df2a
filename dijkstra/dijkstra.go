package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every vertex of the weighted graph g.
//
// Returns:
//
//   - dist: distance for every vertex (Infinity if unreachable).
//   - prev: predecessor map if ReturnPath is set (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     prev[source] and prev[v] for unreachable v are "".
//   - err:  error if inputs are invalid or a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have a negative weight (ErrNegativeWeight).
//
// Implementation:
//   - Stage 1: Every vertex starts at Infinity, the source at 0.
//   - Stage 2: Repeatedly scan the unvisited vertices in ascending ID order and
//     settle the first one with the strictly smallest distance, so ties go to
//     the lexicographically smallest ID. Stop when the smallest distance is
//     Infinity or every vertex is settled.
//   - Stage 3: Relax the settled vertex's edges with a strict "<" comparison.
//
// Complexity:
//
//   - Time:  O(V² + E)
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (DistanceMap, map[string]string, error) {
	// 1) Build options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges for negative weights.
	var e *core.Edge
	for _, e = range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s–%s weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 4) Run
	r := newRunner(g, cfg)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	order   []string          // vertex IDs, ascending; fixes the scan order
	dist    DistanceMap       // vertex ID → current best distance from Source
	prev    map[string]string // vertex ID → predecessor on the shortest path
	visited map[string]bool   // settled vertices
	settled int
}

// newRunner initializes distances, predecessors and visited flags.
func newRunner(g *core.Graph, cfg Options) *runner {
	order := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		order:   order,
		dist:    make(DistanceMap, len(order)),
		prev:    make(map[string]string, len(order)),
		visited: make(map[string]bool, len(order)),
	}
	for _, v := range order {
		r.dist[v] = Infinity
		r.prev[v] = ""
	}
	r.dist[cfg.Source] = 0

	return r
}

// process settles vertices one at a time until none is reachable.
func (r *runner) process() error {
	for r.settled < len(r.order) {
		u, ok := r.selectMin()
		if !ok {
			break
		}

		r.visited[u] = true
		r.settled++
		if r.options.OnSettle != nil {
			r.options.OnSettle(u, r.dist[u])
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// selectMin returns the unvisited vertex with the smallest finite distance.
// The scan runs in ascending ID order and only a strictly smaller distance
// replaces the current candidate.
func (r *runner) selectMin() (string, bool) {
	best, bestDist := "", Infinity
	for _, v := range r.order {
		if r.visited[v] {
			continue
		}
		if r.dist[v] < bestDist {
			best, bestDist = v, r.dist[v]
		}
	}

	return best, best != ""
}

// relax examines each edge incident to u and improves neighbor distances.
// Edges at or above InfEdgeThreshold are skipped, as are candidates beyond
// MaxDistance.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	var (
		e       *core.Edge
		v       string
		newDist float64
	)
	for _, e = range neighbors {
		v = e.Other(u)
		if r.visited[v] || e.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
	}

	return nil
}

// PathTo reconstructs the shortest path from source to target using a
// predecessor map returned with WithReturnPath. It returns Path{source} when
// target == source and nil when target is unreachable or unknown.
func PathTo(prev map[string]string, source, target string) core.Path {
	if target == source {
		return core.Path{source}
	}
	if prev[target] == "" {
		return nil
	}

	var rev core.Path
	for cur := target; cur != ""; cur = prev[cur] {
		rev = append(rev, cur)
		if cur == source {
			break
		}
		// A well-formed predecessor map never revisits a vertex.
		if len(rev) > len(prev) {
			return nil
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
