// Package dfs defines types and options for depth-first path search,
// including cancellation and per-frame visit hooks.
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/graphkit/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Path.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not exist in the graph.
	ErrStartVertexNotFound = fmt.Errorf("dfs: start %w", core.ErrVertexNotFound)

	// ErrGoalVertexNotFound indicates that the goal vertex ID does not exist in the graph.
	ErrGoalVertexNotFound = fmt.Errorf("dfs: goal %w", core.ErrVertexNotFound)
)

// Option configures optional behavior of the search.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for a depth-first path search.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked for every popped frame with the frame's
	// vertex and its depth (hop count from start).
	// Returning an error aborts the search with that error.
	OnVisit func(id string, depth int) error
}

// DefaultOptions returns a DFSOptions struct with a background context and no hooks.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:     context.Background(),
		OnVisit: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a per-frame hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// frame is one stack entry: a vertex and the path used to reach it.
type frame struct {
	id   string
	path core.Path
}
