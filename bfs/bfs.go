package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	goal    string // empty for a full traversal
	found   bool
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// Path returns a path from start to goal with the fewest edges.
//
// The goal is tested when a vertex is enqueued, so the search stops as soon
// as the goal is discovered. Neighbors are enqueued in ascending ID order,
// which makes the returned path deterministic among equal-length candidates.
// It returns Path{start} when start == goal and a nil Path with a nil error
// when goal is unreachable (or beyond MaxDepth).
func Path(g *core.Graph, start, goal string, opts ...Option) (core.Path, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if !g.HasVertex(goal) {
		return nil, fmt.Errorf("%w: %q", ErrGoalVertexNotFound, goal)
	}
	if start == goal {
		return core.Path{start}, nil
	}

	w.goal = goal
	w.enqueue(start, 0, "")
	if err = w.loop(); err != nil {
		return nil, err
	}
	if !w.found {
		return nil, nil
	}

	return tracePath(w.res.Parent, start, goal), nil
}

// Walk runs a full breadth-first traversal of the component containing start
// and returns the visit order, hop depths and BFS-tree parents.
func Walk(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	w.enqueue(start, 0, "")
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newWalker validates the graph, options and start vertex.
func newWalker(g *core.Graph, start string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.VertexCount()
	return &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}, nil
}

// enqueue marks id visited at depth d, records its parent and calls OnEnqueue.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it empties, the goal is found, a hook
// fails or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.found {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors enqueues each unseen, allowed neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) error {
	neighbors, err := w.graph.NeighborIDs(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %q: %w", ErrNeighbors, item.id, err)
	}

	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.id)
		if nbr == w.goal {
			w.found = true
			return nil
		}
	}
	return nil
}
