package core

import (
	"fmt"
	"strings"
)

// Path is an ordered sequence of vertex IDs where consecutive entries are
// joined by an edge. A nil Path means "no path found"; the single-vertex path
// [start] is a valid, found path with zero hops.
type Path []string

// Found reports whether p represents an actual path.
func (p Path) Found() bool { return p != nil }

// Hops returns the number of edges in p, or -1 if no path was found.
func (p Path) Hops() int {
	if p == nil {
		return -1
	}

	return len(p) - 1
}

// Cost sums the edge weights along p in g.
// A missing edge between consecutive vertices yields ErrEdgeNotFound.
func (p Path) Cost(g *Graph) (float64, error) {
	var total float64
	for i := 1; i < len(p); i++ {
		w, err := g.Weight(p[i-1], p[i])
		if err != nil {
			return 0, fmt.Errorf("core: path step %d: %w", i, err)
		}
		total += w
	}

	return total, nil
}

// Contains reports whether id appears anywhere in p.
func (p Path) Contains(id string) bool {
	for _, v := range p {
		if v == id {
			return true
		}
	}

	return false
}

// Extend returns a copy of p with id appended. p itself is never modified,
// so sibling frames in a search can share a common prefix safely.
func (p Path) Extend(id string) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, id)
}

// String renders p as "A → B → C", or "no path" when not found.
func (p Path) String() string {
	if p == nil {
		return "no path"
	}

	return strings.Join(p, " → ")
}
