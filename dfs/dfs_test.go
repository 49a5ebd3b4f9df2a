package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dfs"
)

// buildDetour returns a graph where the last-pushed branch is the long way round:
//
//	A ─ B ─ G
//	│       │
//	Z ─ Y ──┘
func buildDetour(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil,
		builder.Nodes("A", "B", "G", "Y", "Z"),
		builder.WeightedEdges(
			builder.EdgeSpec{From: "A", To: "B", Weight: 1},
			builder.EdgeSpec{From: "A", To: "Z", Weight: 1},
			builder.EdgeSpec{From: "Z", To: "Y", Weight: 1},
			builder.EdgeSpec{From: "Y", To: "G", Weight: 1},
			builder.EdgeSpec{From: "B", To: "G", Weight: 1},
		),
	)
	require.NoError(t, err)
	return g
}

func buildSample(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.FromNetwork(builder.Sample()))
	require.NoError(t, err)
	return g
}

func TestPath_NilGraph(t *testing.T) {
	p, err := dfs.Path(nil, "A", "B")
	assert.Nil(t, p)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestPath_UnknownEndpoints(t *testing.T) {
	g := buildDetour(t)

	_, err := dfs.Path(g, "X", "G")
	assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = dfs.Path(g, "A", "X")
	assert.ErrorIs(t, err, dfs.ErrGoalVertexNotFound)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestPath_StartEqualsGoal(t *testing.T) {
	g := buildDetour(t)

	p, err := dfs.Path(g, "Y", "Y")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"Y"}, p)
	assert.Equal(t, 0, p.Hops())
}

func TestPath_FollowsLastPushedBranch(t *testing.T) {
	g := buildDetour(t)

	p, err := dfs.Path(g, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"A", "Z", "Y", "G"}, p)

	cost, err := p.Cost(g)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cost)
}

func TestPath_Unreachable(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(3), builder.Nodes("island"))
	require.NoError(t, err)

	p, err := dfs.Path(g, "0", "island")
	assert.NoError(t, err)
	assert.Nil(t, p)
	assert.False(t, p.Found())
}

func TestPath_Sample(t *testing.T) {
	g := buildSample(t)

	var visited []string
	var depths []int
	p, err := dfs.Path(g, "Dnipro", "Lviv", dfs.WithOnVisit(func(id string, depth int) error {
		visited = append(visited, id)
		depths = append(depths, depth)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, core.Path{"Dnipro", "Uman", "Lviv"}, p)
	assert.Equal(t, []string{"Dnipro", "Uman"}, visited)
	assert.Equal(t, []int{0, 1}, depths)

	// Longer than the hop-minimal route Kharkiv → Dnipro → Odessa.
	p, err = dfs.Path(g, "Kharkiv", "Odessa")
	require.NoError(t, err)
	assert.Equal(t, core.Path{"Kharkiv", "Poltava", "Uman", "Odessa"}, p)
}

func TestPath_NoRepeatedVertices(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(6))
	require.NoError(t, err)

	for _, goal := range g.Vertices() {
		p, err := dfs.Path(g, "0", goal)
		require.NoError(t, err)
		seen := make(map[string]bool, len(p))
		for _, v := range p {
			assert.False(t, seen[v], "vertex %s repeated in %v", v, p)
			seen[v] = true
		}
		assert.Equal(t, "0", p[0])
		assert.Equal(t, goal, p[len(p)-1])
	}
}

func TestPath_Idempotent(t *testing.T) {
	g := buildSample(t)

	first, err := dfs.Path(g, "Kyiv", "Kharkiv")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := dfs.Path(g, "Kyiv", "Kharkiv")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPath_ContextCancelled(t *testing.T) {
	g := buildDetour(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p, err := dfs.Path(g, "A", "G", dfs.WithContext(ctx))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPath_OnVisitAborts(t *testing.T) {
	g := buildDetour(t)
	stop := errors.New("stop here")

	p, err := dfs.Path(g, "A", "G", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "Z" {
			return stop
		}
		return nil
	}))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, stop)
}
