package datastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeSymmetric(t *testing.T) {
	g := NewWeightedGraph(3)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 2, 3)

	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(5), w)
	w, ok = g.Weight(1, 0)
	require.True(t, ok)
	assert.Equal(t, int64(5), w)

	assert.Equal(t, 3, g.NumberOfVertices())
	assert.Equal(t, 2, g.NumberOfEdges())
	assert.Equal(t, int64(8), g.TotalWeight())
}

func TestAddEdgeOverwrites(t *testing.T) {
	g := NewWeightedGraph(2)
	g.AddEdge(0, 1, 5)
	g.AddEdge(1, 0, 2)

	w, _ := g.Weight(0, 1)
	assert.Equal(t, int64(2), w)
	n, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Len(t, n, 1)
}

func TestAddEdgeSelfLoopIgnored(t *testing.T) {
	g := NewWeightedGraph(1)
	g.AddEdge(0, 0, 4)

	assert.True(t, g.HasVertex(0))
	assert.Equal(t, 0, g.NumberOfEdges())
}

func TestUpdateEdgeAccumulates(t *testing.T) {
	g := NewWeightedGraph(3)
	g.UpdateEdge(0, 1, 2)
	g.UpdateEdge(1, 0, 3)
	g.UpdateEdge(1, 2, 1)

	w, _ := g.Weight(0, 1)
	assert.Equal(t, int64(5), w)
	w, _ = g.Weight(2, 1)
	assert.Equal(t, int64(1), w)
}

func TestRemove(t *testing.T) {
	g := NewWeightedGraph(3)
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, 1)
	g.AddEdge(0, 2, 1)

	require.NoError(t, g.Remove(1))
	assert.Equal(t, 2, g.NumberOfVertices())
	assert.False(t, g.HasVertex(1))

	n, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, map[Index]int64{2: 1}, n)

	_, err = g.Neighbors(1)
	assert.ErrorIs(t, err, ErrMissingVertex)
	assert.ErrorIs(t, g.Remove(1), ErrMissingVertex)
	assert.ErrorIs(t, g.Remove(42), ErrMissingVertex)
}

func TestBuildWeightedGraphIdempotent(t *testing.T) {
	edges := []Edge{
		NewEdge("jqt", "rhn", 1),
		NewEdge("jqt", "xhk", 1),
		NewEdge("rhn", "jqt", 1),
		NewEdge("jqt", "rhn", 1),
	}
	g, ids := BuildWeightedGraph(edges)

	assert.Equal(t, 3, ids.Size())
	assert.Equal(t, 2, g.NumberOfEdges())
	jqt, _ := ids.Lookup("jqt")
	n, err := g.Neighbors(Index(jqt))
	require.NoError(t, err)
	assert.Len(t, n, 2)
}

func TestForEachVerticesAscending(t *testing.T) {
	g := NewWeightedGraph(4)
	g.AddEdge(3, 1, 1)
	g.AddEdge(0, 2, 1)
	require.NoError(t, g.Remove(2))

	got := []Index{}
	g.ForEachVertices(func(u Index) {
		got = append(got, u)
	})
	assert.Equal(t, []Index{0, 1, 3}, got)
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewWeightedGraph(2)
	g.AddEdge(0, 1, 1)

	c := g.Clone()
	c.UpdateEdge(0, 1, 4)
	require.NoError(t, c.Remove(0))

	w, _ := g.Weight(0, 1)
	assert.Equal(t, int64(1), w)
	assert.Equal(t, 2, g.NumberOfVertices())
	assert.Equal(t, 1, c.NumberOfVertices())
}

func TestInducedSubgraph(t *testing.T) {
	g := NewWeightedGraph(4)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 3)
	g.AddEdge(2, 3, 4)

	sub := g.InducedSubgraph([]Index{2, 1})
	assert.Equal(t, 2, sub.NumberOfVertices())
	w, ok := sub.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, int64(3), w)
	assert.Equal(t, 1, sub.NumberOfEdges())
}

func TestPartitionGraphFromWeighted(t *testing.T) {
	g := NewWeightedGraph(3)
	g.AddEdge(0, 1, 2)
	g.AddEdge(1, 2, 3)

	pg := NewPartitionGraphFromWeighted(g)
	assert.Equal(t, 3, pg.NumberOfVertices())
	assert.Equal(t, 2, pg.NumberOfEdges())
	assert.Equal(t, 2, pg.GetVertexEdgesSize(1))

	e := pg.GetEdgeOfVertex(0, 0)
	rev := pg.GetReversedEdgeOfVertex(0, 0)
	assert.Equal(t, e.GetFrom(), rev.GetTo())
	assert.Equal(t, e.GetTo(), rev.GetFrom())
	assert.Equal(t, int64(2), rev.GetCapacity())

	c := pg.Clone()
	c.GetEdgeOfVertex(0, 0).AddFlow(2)
	assert.Equal(t, int64(0), pg.GetEdgeOfVertex(0, 0).GetFlow())
	assert.Equal(t, int64(0), c.GetEdgeOfVertex(0, 0).GetResidual())
}
