// Package builder assembles core.Graph instances from declarative input.
//
// Two families of constructors are provided:
//
//   - Network constructors: Nodes, WeightedEdges and FromNetwork turn an
//     explicit node/edge listing (typically decoded from YAML with
//     LoadNetwork or LoadNetworkFile) into a graph. Sample returns the
//     built-in seven-city road network.
//   - Topology constructors: Path, Cycle, Complete and Grid generate
//     synthetic weighted graphs for tests and benchmarks. Vertex IDs come
//     from the configured ID scheme (decimal by default) and edge weights
//     from the configured weight function (constant 1 by default).
//
// All constructors are composed through a single orchestrator:
//
//	g, err := builder.BuildGraph(nil, builder.FromNetwork(builder.Sample()))
//
// Options (WithIDScheme, WithSeed, WithRand, WithWeightFn, WithConstantWeight,
// WithUniformWeights) resolve into an immutable configuration before any
// constructor runs. The same options and constructor order always produce an
// identical graph.
//
// Errors:
//
//	ErrTooFewVertices  - size parameter below the constructor minimum.
//	ErrConstructFailed - nil constructor or nil graph.
//	ErrEmptyNetwork    - network without nodes.
//	ErrDecode          - malformed YAML network document.
//
// Constructor errors are wrapped with their method name; branch with errors.Is.
package builder
