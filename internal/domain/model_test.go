package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pageNode(id string) *Node {
	return NewNode(id, id, NodeKindPage, 1)
}

func TestAddNodeRejectsDuplicateID(t *testing.T) {
	m := NewModel()
	require.True(t, m.AddNode(pageNode("a")))
	assert.False(t, m.AddNode(pageNode("a")))
	assert.Equal(t, 1, m.NodeCount())
}

func TestAddEdgeKeepsConnectionsSymmetric(t *testing.T) {
	m := NewModel()
	m.AddNode(pageNode("a"))
	m.AddNode(pageNode("b"))

	require.True(t, m.AddEdge("a", "b", WeightStructural))

	a, _ := m.NodeByID("a")
	b, _ := m.NodeByID("b")
	assert.True(t, a.ConnectedTo("b"))
	assert.True(t, b.ConnectedTo("a"))
}

func TestAddEdgeRejections(t *testing.T) {
	m := NewModel()
	m.AddNode(pageNode("a"))
	m.AddNode(pageNode("b"))
	require.True(t, m.AddEdge("a", "b", WeightStructural))

	assert.False(t, m.AddEdge("a", "a", WeightStructural), "self loop")
	assert.False(t, m.AddEdge("a", "missing", WeightStructural), "unknown target")
	assert.False(t, m.AddEdge("missing", "b", WeightStructural), "unknown source")
	assert.False(t, m.AddEdge("a", "b", WeightCurated), "duplicate pair")
	assert.False(t, m.AddEdge("b", "a", WeightCurated), "duplicate pair, reversed")
	assert.Equal(t, 1, m.EdgeCount())
}

func TestCloneIsIndependent(t *testing.T) {
	m := NewModel()
	m.AddNode(pageNode("a"))
	m.AddNode(pageNode("b"))
	m.AddEdge("a", "b", WeightStructural)

	clone := m.Clone()
	cloneA, ok := clone.NodeByID("a")
	require.True(t, ok)

	cloneA.Position = Position{X: 99, Y: 99}
	cloneA.SearchScore = 0.9
	cloneA.Connect("ghost")

	origA, _ := m.NodeByID("a")
	assert.Equal(t, Position{}, origA.Position)
	assert.Zero(t, origA.SearchScore)
	assert.False(t, origA.ConnectedTo("ghost"))

	assert.Equal(t, m.EdgeCount(), clone.EdgeCount())
	assert.True(t, cloneA.ConnectedTo("b"))
}

func TestReindexRebuildsLookupAndConnections(t *testing.T) {
	// a decoded model carries only Nodes and Edges
	m := &Model{
		Nodes: []*Node{
			{ID: "a", Title: "A", Path: "a", Kind: NodeKindPage},
			{ID: "b", Title: "B", Path: "b", Kind: NodeKindPage},
		},
		Edges: []Edge{{Source: "a", Target: "b", Weight: WeightStructural}},
	}
	m.Reindex()

	a, ok := m.NodeByID("a")
	require.True(t, ok)
	assert.True(t, a.ConnectedTo("b"))
	b, _ := m.NodeByID("b")
	assert.True(t, b.ConnectedTo("a"))
	assert.True(t, m.HasNode("b"))
}

func TestEdgeHelpers(t *testing.T) {
	e := Edge{Source: "a", Target: "b", Weight: WeightCurated}
	assert.Equal(t, "a-b", e.Key())
	assert.Equal(t, "b-a", LinkKey("b", "a"))
	assert.True(t, e.Involves("a"))
	assert.False(t, e.Involves("c"))
	assert.Equal(t, "b", e.OtherEnd("a"))
	assert.Equal(t, "a", e.OtherEnd("b"))
}

func TestConnectionIDsSorted(t *testing.T) {
	n := pageNode("hub")
	n.Connect("c")
	n.Connect("a")
	n.Connect("b")
	assert.Equal(t, []string{"a", "b", "c"}, n.ConnectionIDs())
	assert.Equal(t, 3, n.ConnectionCount())
}
