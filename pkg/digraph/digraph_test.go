package digraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := New[string, int]()
	g.AddVertex("a")
	g.AddVertex("a")

	assert.Equal(t, []string{"a"}, g.Vertices())
}

func TestAddEdgeCreatesVertices(t *testing.T) {
	g := New[string, int]()
	g.AddEdge("a", "b", 1)

	assert.Equal(t, []string{"a", "b"}, g.Vertices())
	assert.Equal(t, []string{"b"}, g.Neighbors("a"))

	info, ok := g.EdgeInfo("a", "b")
	require.True(t, ok)
	assert.Equal(t, 1, info)
}

func TestAddEdgeOverwritesPayload(t *testing.T) {
	g := New[string, int]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "b", 2)

	info, ok := g.EdgeInfo("a", "b")
	require.True(t, ok)
	assert.Equal(t, 2, info)
	assert.Equal(t, []string{"b"}, g.Neighbors("a"))
	assert.Len(t, g.Edges(), 1)
}

func TestRemoveEdge(t *testing.T) {
	g := New[string, int]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 2)

	g.RemoveEdge("a", "b")

	assert.Equal(t, []string{"c"}, g.Neighbors("a"))
	_, ok := g.EdgeInfo("a", "b")
	assert.False(t, ok)
}

func TestRemoveEdgeUnknownVertexNoop(t *testing.T) {
	g := New[string, int]()
	g.RemoveEdge("missing", "b")

	assert.Empty(t, g.Vertices())
}

func TestRemoveVertexCascadesIncomingEdges(t *testing.T) {
	g := New[string, int]()
	g.AddEdge("a", "x", 1)
	g.AddEdge("b", "x", 2)
	g.AddEdge("b", "y", 3)

	g.RemoveVertex("x")

	assert.NotContains(t, g.Vertices(), "x")
	assert.Empty(t, g.Neighbors("a"))
	assert.Equal(t, []string{"y"}, g.Neighbors("b"))
}

func TestRemoveVertexDropsOutgoingEdges(t *testing.T) {
	g := New[string, int]()
	g.AddEdge("a", "b", 1)
	g.AddEdge("a", "c", 2)

	g.RemoveVertex("a")

	assert.Empty(t, g.Neighbors("a"))
	assert.Equal(t, []string{"b", "c"}, g.Vertices())
	assert.Empty(t, g.Edges())
}

func TestNeighborsUnknownVertex(t *testing.T) {
	g := New[string, int]()
	assert.Empty(t, g.Neighbors("missing"))
}

func TestNeighborsInsertionOrder(t *testing.T) {
	g := New[string, int]()
	g.AddEdge("a", "c", 1)
	g.AddEdge("a", "b", 2)
	g.AddEdge("a", "d", 3)

	assert.Equal(t, []string{"c", "b", "d"}, g.Neighbors("a"))
}

func TestEdgesEnumeration(t *testing.T) {
	g := New[string, string]()
	g.AddEdge("u1", "b1", "open")
	g.AddEdge("u2", "b1", "open")
	g.AddEdge("u1", "b2", "closed")

	edges := g.Edges()
	require.Len(t, edges, 3)
	assert.Equal(t, Edge[string, string]{From: "u1", To: "b1", Info: "open"}, edges[0])
	assert.Equal(t, Edge[string, string]{From: "u1", To: "b2", Info: "closed"}, edges[1])
	assert.Equal(t, Edge[string, string]{From: "u2", To: "b1", Info: "open"}, edges[2])
}

func TestPointerPayloadMutableInPlace(t *testing.T) {
	type payload struct{ returnedAt string }

	g := New[string, *payload]()
	g.AddEdge("u1", "b1", &payload{})

	info, ok := g.EdgeInfo("u1", "b1")
	require.True(t, ok)
	info.returnedAt = "2024-01-01 00:00:00"

	again, ok := g.EdgeInfo("u1", "b1")
	require.True(t, ok)
	assert.Equal(t, "2024-01-01 00:00:00", again.returnedAt)
}
