package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphquest/core"
	"github.com/katalvlaran/graphquest/geom"
)

// triangle builds A(0,0) B(4,0) C(0,3) with edges A–B, B–C.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0, 0))
	require.NoError(t, g.AddVertex("B", 4, 0))
	require.NoError(t, g.AddVertex("C", 0, 3))
	_, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C")
	require.NoError(t, err)

	return g
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex("", 1, 1), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A", 1, 2))
	// idempotent at the same position
	require.NoError(t, g.AddVertex("A", 1, 2))
	// conflicting position
	require.ErrorIs(t, g.AddVertex("A", 2, 2), core.ErrPositionConflict)

	p, err := g.Position("A")
	require.NoError(t, err)
	assert.Equal(t, geom.Pt(1, 2), p)
	_, err = g.Position("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())
}

func TestAddEdgeInvariants(t *testing.T) {
	g := triangle(t)

	_, err := g.AddEdge("A", "A")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)
	_, err = g.AddEdge("B", "A")
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("A", "missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AddEdge("", "A")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	assert.True(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("B", "A"))
	assert.False(t, g.HasEdge("A", "C"))
	assert.Equal(t, 2, g.EdgeCount())

	d, err := g.Degree("B")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	_, err = g.Degree("nope")
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
}

func TestEdgesCreationOrder(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		require.NoError(t, g.AddVertex(string(rune('a'+i)), i, 0))
	}
	for i := 0; i < 11; i++ {
		_, err := g.AddEdge(string(rune('a'+i)), string(rune('a'+i+1)))
		require.NoError(t, err)
	}
	ids := make([]string, 0, 11)
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8", "e9", "e10", "e11"}, ids)
}

func TestNeighborsAndSegment(t *testing.T) {
	g := triangle(t)

	nbrs, err := g.NeighborIDs("B")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, nbrs)

	edges, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, "A", edges[0].Other("B"))
	assert.Equal(t, "C", edges[1].Other("B"))

	_, err = g.NeighborIDs("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	seg, err := g.Segment(edges[1].ID)
	require.NoError(t, err)
	assert.Equal(t, geom.Seg(geom.Pt(4, 0), geom.Pt(0, 3)), seg)
	_, err = g.Segment("e99")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{"B"}, adj["A"])
	assert.Equal(t, []string{"A", "C"}, adj["B"])
}

func TestRemoveVertexAndEdge(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, 0, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)

	g = triangle(t)
	es := g.Edges()
	require.NoError(t, g.RemoveEdge(es[0].ID))
	assert.ErrorIs(t, g.RemoveEdge(es[0].ID), core.ErrEdgeNotFound)
	assert.False(t, g.HasEdge("A", "B"))
	assert.True(t, g.HasEdge("C", "B"))
}

func TestCloneAndInducedSubgraph(t *testing.T) {
	g := triangle(t)

	c := g.Clone()
	assert.Equal(t, g.Vertices(), c.Vertices())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())
	// clones are independent
	require.NoError(t, c.RemoveVertex("C"))
	assert.True(t, g.HasVertex("C"))

	sub := core.InducedSubgraph(g, map[string]bool{"A": true, "B": true})
	assert.Equal(t, []string{"A", "B"}, sub.Vertices())
	assert.Equal(t, 1, sub.EdgeCount())
	// the edge counter carries over: new IDs never collide with copied ones
	require.NoError(t, sub.AddVertex("D", 9, 9))
	eid, err := sub.AddEdge("A", "D")
	require.NoError(t, err)
	assert.Equal(t, "e3", eid)
}
