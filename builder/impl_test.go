// Package builder_test contains functional tests for the topology
// constructors, verifying counts, stable IDs and weight policies.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

// TestBuilders_Functional runs table-driven checks for each topology.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				for _, pair := range [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}} {
					assert.True(t, g.HasEdge(pair[0], pair[1]), "Path edge %v", pair)
				}
				assert.False(t, g.HasEdge("3", "0"))
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("4", "0"), "ring closes")
				for _, v := range g.Vertices() {
					d, err := g.Degree(v)
					require.NoError(t, err)
					assert.Equal(t, 2, d, "Degree(%s)", v)
				}
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.Equal(t, 3.0, g.Stats().AverageDegree)
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *core.Graph) {
				assert.True(t, g.HasEdge("0,0", "0,1"))
				assert.True(t, g.HasEdge("0,2", "1,2"))
				assert.False(t, g.HasEdge("0,0", "1,1"))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight, "default weight on %s", e.ID)
			}
			tc.sampleCheck(t, g)
		})
	}
}

func TestBuilders_TooFewVertices(t *testing.T) {
	for name, ctor := range map[string]builder.Constructor{
		"Path(1)":     builder.Path(1),
		"Cycle(2)":    builder.Cycle(2),
		"Complete(0)": builder.Complete(0),
		"Grid(0,3)":   builder.Grid(0, 3),
	} {
		_, err := builder.BuildGraph(nil, ctor)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}
}

func TestBuildGraph_Composition(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(3), nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	// Two constructors over the same IDs collide on the shared edge.
	_, err = builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	assert.ErrorIs(t, err, core.ErrInvalidEdge)

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Path(2)), builder.ErrConstructFailed)

	g := core.NewGraph(core.WithCapacity(8))
	require.NoError(t, builder.Apply(g, nil, builder.Nodes("hub"), builder.Path(3)))
	_, err = g.AddEdge("hub", "0", 2)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())
}

func TestBuilderOptions(t *testing.T) {
	letters := func(i int) string { return string(rune('A' + i)) }

	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithIDScheme(letters), builder.WithConstantWeight(2.5)},
		builder.Path(3),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 5.0, g.Stats().TotalWeight)

	// Same seed ⇒ same weights.
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeights(10, 20)}
	}
	g1, err := builder.BuildGraph(opts(), builder.Complete(5))
	require.NoError(t, err)
	g2, err := builder.BuildGraph(opts(), builder.Complete(5))
	require.NoError(t, err)
	e1, e2 := g1.Edges(), g2.Edges()
	require.Len(t, e2, len(e1))
	for i := range e1 {
		assert.Equal(t, e1[i].Weight, e2[i].Weight)
		assert.GreaterOrEqual(t, e1[i].Weight, 10.0)
		assert.Less(t, e1[i].Weight, 20.0)
	}

	// Without an RNG the uniform policy falls back to its lower bound.
	g3, err := builder.BuildGraph([]builder.BuilderOption{builder.WithUniformWeights(3, 9)}, builder.Path(2))
	require.NoError(t, err)
	assert.Equal(t, 3.0, g3.Stats().TotalWeight)

	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithConstantWeight(-1) })
	assert.Panics(t, func() { builder.WithUniformWeights(5, 1) })
}
