package core_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/graphkit/core"
)

// BenchmarkAddEdge measures AddEdge on a growing chain of pre-registered vertices.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(b.N + 1))
	for i := 0; i <= b.N; i++ {
		_ = g.AddVertex("V" + strconv.Itoa(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge("V"+strconv.Itoa(i), "V"+strconv.Itoa(i+1), float64(i))
	}
}

// BenchmarkNeighborIDs measures sorted neighbor enumeration on a star of 1000 leaves.
func BenchmarkNeighborIDs(b *testing.B) {
	g := core.NewGraph()
	_ = g.AddVertex("Center")
	for i := 0; i < 1000; i++ {
		leaf := "L" + strconv.Itoa(i)
		_ = g.AddVertex(leaf)
		_, _ = g.AddEdge("Center", leaf, 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.NeighborIDs("Center")
	}
}
