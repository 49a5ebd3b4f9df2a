// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls against
// distinct pre-registered leaves are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	require.NoError(t, g.AddVertex("X"))
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i)))
	}

	errCh := make(chan error, num)
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id), float64(id))
			errCh <- err
		}(i)
	}
	wg.Wait()
	close(errCh)
	MustNoErrorsFromChan(t, errCh, "concurrent AddEdge")

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders runs many read-only queries against one shared graph.
func TestConcurrentReaders(t *testing.T) {
	g := NewSquare(t)
	want := g.Stats()

	errCh := make(chan error, NReaders)
	var wg sync.WaitGroup
	wg.Add(NReaders)
	for r := 0; r < NReaders; r++ {
		go func() {
			defer wg.Done()
			for i := 0; i < NRounds; i++ {
				if _, err := g.NeighborIDs(VertexA); err != nil {
					errCh <- err
					return
				}
				if _, err := g.Weight(VertexC, VertexA); err != nil {
					errCh <- err
					return
				}
				if s := g.Stats(); s.EdgeCount != want.EdgeCount {
					errCh <- fmt.Errorf("EdgeCount drifted: %d", s.EdgeCount)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	MustNoErrorsFromChan(t, errCh, "concurrent readers")
}
