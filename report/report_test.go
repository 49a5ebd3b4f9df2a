package report_test

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/report"
)

func TestPrinter_Stats(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.FromNetwork(builder.Sample()))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, report.WithPlain()).Stats("Ukraine roads", g.Stats()))

	want := `== Ukraine roads ==
nodes: 7
edges: 11
total weight: 3732
average degree: 3.14
degrees:
  Dnipro  4
  Kharkiv 2
  Kyiv    3
  Lviv    2
  Odessa  2
  Poltava 4
  Uman    5
`
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Path(t *testing.T) {
	var buf bytes.Buffer
	p := report.New(&buf, report.WithPlain())

	require.NoError(t, p.Path("bfs", core.Path{"Dnipro", "Uman", "Lviv"}, 947))
	require.NoError(t, p.Path("dfs", nil, 0))
	require.NoError(t, p.Path("self", core.Path{"Kyiv"}, 0))

	want := "bfs: Dnipro → Uman → Lviv (2 hops, cost 947)\n" +
		"dfs: no path\n" +
		"self: Kyiv (0 hops, cost 0)\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Distances(t *testing.T) {
	dist := dijkstra.DistanceMap{
		"A":      0,
		"B":      2.5,
		"island": math.Inf(1),
	}

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf, report.WithPlain()).Distances("A", dist))

	want := "distances from A\n" +
		"  A      0\n" +
		"  B      2.5\n" +
		"  island ∞\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Path("route", core.Path{"A", "B"}, 1))
	assert.Contains(t, buf.String(), "route:")
	assert.Contains(t, buf.String(), "A → B")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestPrinter_WriteError(t *testing.T) {
	err := report.New(failingWriter{}, report.WithPlain()).Path("x", nil, 0)
	assert.ErrorContains(t, err, "disk full")
}

func TestFormatWeight(t *testing.T) {
	assert.Equal(t, "1026", report.FormatWeight(1026))
	assert.Equal(t, "0.25", report.FormatWeight(0.25))
	assert.Equal(t, report.Infinity, report.FormatWeight(dijkstra.Infinity))
}
