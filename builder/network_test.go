package builder_test

import (
	"bytes"
	"io/fs"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
)

func TestSample_Graph(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.FromNetwork(builder.Sample()))
	require.NoError(t, err)

	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 11, g.EdgeCount())

	w, err := g.Weight("Lviv", "Uman")
	require.NoError(t, err)
	assert.Equal(t, 530.0, w)

	nbrs, err := g.NeighborIDs("Uman")
	require.NoError(t, err)
	assert.Equal(t, []string{"Dnipro", "Kyiv", "Lviv", "Odessa", "Poltava"}, nbrs)
}

func TestLoadNetworkFile_Triangle(t *testing.T) {
	n, err := builder.LoadNetworkFile("testdata/triangle.yaml")
	require.NoError(t, err)

	want := builder.Network{
		Title: "triangle",
		Nodes: []string{"A", "B", "C"},
		Edges: []builder.EdgeSpec{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 2.5},
			{From: "A", To: "C", Weight: 4},
		},
	}
	if diff := cmp.Diff(want, n); diff != "" {
		t.Fatalf("LoadNetworkFile mismatch (-want +got):\n%s", diff)
	}

	g, err := builder.BuildGraph(nil, builder.FromNetwork(n))
	require.NoError(t, err)
	assert.Equal(t, 7.5, g.Stats().TotalWeight)
}

func TestLoadNetwork_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{name: "empty document", doc: "", want: builder.ErrEmptyNetwork},
		{name: "no nodes", doc: "title: x\nnodes: []\n", want: builder.ErrEmptyNetwork},
		{name: "malformed", doc: "nodes: [A, B\n", want: builder.ErrDecode},
		{name: "wrong type", doc: "nodes: [A, B]\nedges:\n  - {from: A, to: B, weight: far}\n", want: builder.ErrDecode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.LoadNetwork(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.LoadNetworkFile("testdata/unknown_field.yaml")
	assert.ErrorIs(t, err, builder.ErrDecode)

	_, err = builder.LoadNetworkFile("testdata/does_not_exist.yaml")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestFromNetwork_Rejections(t *testing.T) {
	n, err := builder.LoadNetworkFile("testdata/dangling_edge.yaml")
	require.NoError(t, err)

	_, err = builder.BuildGraph(nil, builder.FromNetwork(n))
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.ErrorIs(t, err, core.ErrInvalidEdge)

	_, err = builder.BuildGraph(nil, builder.FromNetwork(builder.Network{Title: "void"}))
	assert.ErrorIs(t, err, builder.ErrEmptyNetwork)

	neg := builder.Network{
		Nodes: []string{"A", "B"},
		Edges: []builder.EdgeSpec{{From: "A", To: "B", Weight: -3}},
	}
	_, err = builder.BuildGraph(nil, builder.FromNetwork(neg))
	assert.ErrorIs(t, err, core.ErrNegativeWeight)

	dup := builder.Network{
		Nodes: []string{"A", "B"},
		Edges: []builder.EdgeSpec{{From: "A", To: "B", Weight: 1}, {From: "B", To: "A", Weight: 2}},
	}
	_, err = builder.BuildGraph(nil, builder.FromNetwork(dup))
	assert.ErrorIs(t, err, core.ErrInvalidEdge)
}

func TestNetworkOf_WriteYAML(t *testing.T) {
	src, err := builder.LoadNetworkFile("testdata/triangle.yaml")
	require.NoError(t, err)
	g, err := builder.BuildGraph(nil, builder.FromNetwork(src))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, builder.NetworkOf(g, src.Title).WriteYAML(&buf))

	back, err := builder.LoadNetwork(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(src, back); diff != "" {
		t.Fatalf("snapshot mismatch (-want +got):\n%s", diff)
	}
}
