// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphquest/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls from a hub
// to distinct leaves are safe and all neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X", 0, 0))
	const num = 200
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i), i+1, 1))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			_, err := g.AddEdge("X", fmt.Sprintf("V%d", id))
			require.NoError(t, err)
		}(i)
	}
	wg.Wait()

	nbs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadsAndClone validates concurrent reads and clones do not
// race with each other.
func TestConcurrentReadsAndClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i), i, i%7))
	}
	for i := 1; i < 50; i++ {
		_, err := g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}

	const readers = 50
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			_, _ = g.NeighborIDs("V10")
			_ = g.Edges()
			c := g.Clone()
			require.Equal(t, 49, c.EdgeCount())
		}()
	}
	wg.Wait()
}
