// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
//
// Options:
//
//	– Source:           ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:       if true, return the predecessor map for path reconstruction.
//	– MaxDistance:      optional cap on distances; vertices farther away stay at Infinity.
//	– InfEdgeThreshold: edges with weight >= this threshold are treated as impassable.
//	– OnSettle:         hook invoked when a vertex's distance becomes final.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a negative edge weight is detected in the graph.
//	– ErrBadMaxDistance  if MaxDistance < 0 (option constructor panics).
//	– ErrBadInfThreshold if InfEdgeThreshold <= 0 (option constructor panics).
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/graphkit/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex does not exist in the graph.
	ErrVertexNotFound = fmt.Errorf("dijkstra: source %w", core.ErrVertexNotFound)

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = fmt.Errorf("dijkstra: %w", core.ErrNegativeWeight)

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or a
	// negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Infinity is the distance of vertices that cannot be reached from the source.
var Infinity = math.Inf(1)

// DistanceMap maps every vertex ID of the graph to its shortest distance from
// the source. Unreachable vertices map to Infinity.
type DistanceMap map[string]float64

// Reachable reports whether id has a finite distance.
func (d DistanceMap) Reachable(id string) bool {
	dist, ok := d[id]
	return ok && !math.IsInf(dist, 1)
}

// Entry is one row of a sorted distance table.
type Entry struct {
	ID       string
	Distance float64
}

// Sorted returns the distances ordered by increasing distance, ties broken by
// ascending ID. Unreachable vertices come last.
func (d DistanceMap) Sorted() []Entry {
	out := make([]Entry, 0, len(d))
	for id, dist := range d {
		out = append(out, Entry{ID: id, Distance: dist})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex ID (must be non-empty and present in the graph).
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – cap on distances to explore. Default is +Inf (no cap).
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Default is +Inf (no obstacles).
//
// OnSettle         – called once per settled vertex, in settlement order.
type Options struct {
	Source           string
	ReturnPath       bool
	MaxDistance      float64
	InfEdgeThreshold float64
	OnSettle         func(id string, dist float64)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. It must be supplied.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
// If not set, the predecessor map is not returned (prev == nil).
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed max are left at Infinity.
// Panics with ErrBadMaxDistance on negative or NaN values.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at and above which edges
// are considered non-traversable.
// Panics with ErrBadInfThreshold on zero, negative or NaN values.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 || math.IsNaN(threshold) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnSettle installs a hook that observes each vertex when its shortest
// distance becomes final.
func WithOnSettle(fn func(id string, dist float64)) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex ID.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable vertices).
//   - InfEdgeThreshold: +Inf (no edges treated as impassable).
//   - OnSettle:         nil.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}
