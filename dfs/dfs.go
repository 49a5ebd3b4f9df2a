package dfs

import (
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// dfsWalker encapsulates state during a single search.
type dfsWalker struct {
	graph *core.Graph // underlying graph, read-only
	opts  DFSOptions  // search options
	goal  string      // target vertex
	stack []frame     // LIFO work list
}

// Path performs a depth-first search for some path from start to goal.
//
// It returns Path{start} when start == goal, the first path found otherwise,
// or a nil Path with a nil error when goal is unreachable.
func Path(g *core.Graph, start, goal string, opts ...Option) (core.Path, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Both endpoints must exist
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalVertexNotFound, goal)
	}

	// 4. The loop only tests neighbors, so the trivial path is handled up front
	if start == goal {
		return core.Path{start}, nil
	}

	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		goal:  goal,
		stack: []frame{{id: start, path: core.Path{start}}},
	}

	return w.run()
}

// run pops frames until the goal is found, the stack empties, or the search aborts.
func (w *dfsWalker) run() (core.Path, error) {
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		// 2. Pop
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 3. Hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.id, top.path.Hops()); err != nil {
				return nil, fmt.Errorf("dfs: OnVisit hook for %q: %w", top.id, err)
			}
		}

		// 4. Expand
		found, err := w.expand(top)
		if err != nil || found != nil {
			return found, err
		}
	}

	return nil, nil
}

// expand pushes every neighbor of f that is not already on f's path.
// It returns the extended path as soon as a neighbor equals the goal.
func (w *dfsWalker) expand(f frame) (core.Path, error) {
	nbrs, err := w.graph.NeighborIDs(f.id)
	if err != nil {
		return nil, fmt.Errorf("dfs: NeighborIDs(%q): %w", f.id, err)
	}

	var nid string
	for _, nid = range nbrs {
		if f.path.Contains(nid) {
			continue
		}
		next := f.path.Extend(nid)
		if nid == w.goal {
			return next, nil
		}
		w.stack = append(w.stack, frame{id: nid, path: next})
	}

	return nil, nil
}
