package digraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPathGraph(t *testing.T) *Graph {
	t.Helper()
	g := New()
	g.AddNodesFrom([]NodeTuple{
		{ID: 0, Attrs: Attrs{"text": "a"}},
		{ID: 1, Attrs: Attrs{"text": "b"}},
		{ID: 2, Attrs: Attrs{"text": "c"}},
	})
	require.NoError(t, g.AddEdgesFrom([]EdgeTuple{
		{Src: 0, Dst: 1, Attrs: Attrs{"etype": "x"}},
		{Src: 1, Dst: 2, Attrs: Attrs{"etype": "y"}},
	}))
	return g
}

func TestAddNodesAndEdges(t *testing.T) {
	g := newPathGraph(t)

	assert.Equal(t, 3, g.NumberOfNodes())
	assert.Equal(t, 2, g.NumberOfEdges())
	assert.True(t, g.HasEdge(0, 1))
	assert.False(t, g.HasEdge(1, 0))
	assert.Equal(t, []int{2}, g.Successors(1))
	assert.Equal(t, []int{0}, g.Predecessors(1))
}

func TestAddExistingNodeMergesAttributes(t *testing.T) {
	g := New()
	g.AddNode(7, Attrs{"text": "a"})
	g.AddNode(7, Attrs{"ntype": "TOKEN"})

	attrs, ok := g.Node(7)
	require.True(t, ok)
	assert.Equal(t, Attrs{"text": "a", "ntype": "TOKEN"}, attrs)
	assert.Equal(t, 1, g.NumberOfNodes())
}

func TestAddExistingEdgeDoesNotDuplicate(t *testing.T) {
	g := newPathGraph(t)
	require.NoError(t, g.AddEdge(0, 1, Attrs{"etype": "z"}))

	assert.Equal(t, 2, g.NumberOfEdges())
	attrs, _ := g.Edge(0, 1)
	assert.Equal(t, "z", attrs["etype"])
}

func TestAddEdgesFromRejectsMissingEndpoints(t *testing.T) {
	g := newPathGraph(t)

	err := g.AddEdgesFrom([]EdgeTuple{
		{Src: 2, Dst: 0},
		{Src: 0, Dst: 99},
	})
	require.ErrorIs(t, err, ErrMissingEndpoint)
	assert.False(t, g.HasEdge(2, 0), "failing batch must leave the graph unchanged")
	assert.Equal(t, 3, g.NumberOfNodes())
}

func TestImplicitNodesCreatesBareEndpoints(t *testing.T) {
	g := New(WithImplicitNodes())
	g.AddNode(0, Attrs{"text": "a"})

	require.NoError(t, g.AddEdgesFrom([]EdgeTuple{{Src: 0, Dst: 5}}))

	attrs, ok := g.Node(5)
	require.True(t, ok)
	assert.Empty(t, attrs)
	assert.Equal(t, 2, g.NumberOfNodes())
}

func TestRemoveNodeDropsIncidentEdges(t *testing.T) {
	g := newPathGraph(t)
	require.NoError(t, g.AddEdge(1, 1, nil))

	require.NoError(t, g.RemoveNode(1))

	assert.Equal(t, 2, g.NumberOfNodes())
	assert.Equal(t, 0, g.NumberOfEdges())
	assert.Empty(t, g.Successors(0))
	assert.ErrorIs(t, g.RemoveNode(1), ErrNodeNotFound)
}

func TestSearchNodesAndNodeAttribute(t *testing.T) {
	g := New()
	g.AddNodesFrom([]NodeTuple{
		{ID: 3, Attrs: Attrs{"ntype": "TOKEN", "text": "is"}},
		{ID: 1, Attrs: Attrs{"ntype": "SENTENCE", "text": "It is."}},
		{ID: 2, Attrs: Attrs{"ntype": "TOKEN", "text": "It"}},
		{ID: 4},
	})

	assert.Equal(t, []int{3, 2}, g.SearchNodes("ntype", "TOKEN"))
	assert.Nil(t, g.SearchNodes("ntype", "NER"))
	assert.Equal(t, []NodeValue{
		{ID: 3, Value: "is"},
		{ID: 1, Value: "It is."},
		{ID: 2, Value: "It"},
	}, g.NodeAttribute("text"))
}

func TestDeleteAttributes(t *testing.T) {
	g := newPathGraph(t)

	assert.True(t, g.DeleteNodeAttr(0, "text"))
	assert.False(t, g.DeleteNodeAttr(0, "text"))
	assert.False(t, g.DeleteNodeAttr(42, "text"))
	assert.True(t, g.DeleteEdgeAttr(0, 1, "etype"))
	assert.False(t, g.DeleteEdgeAttr(1, 0, "etype"))
}

func TestNodesReturnsCopies(t *testing.T) {
	g := newPathGraph(t)
	nodes := g.Nodes()
	nodes[0].Attrs["text"] = "mutated"

	attrs, _ := g.Node(0)
	assert.Equal(t, "a", attrs["text"])
}

func TestCopyIsIndependent(t *testing.T) {
	g := newPathGraph(t)
	c := g.Copy()

	require.NoError(t, c.ContractNodes(0, 2, false))

	assert.Equal(t, 3, g.NumberOfNodes())
	assert.Equal(t, 2, c.NumberOfNodes())
	assert.False(t, g.HasContraction())
	assert.True(t, c.HasContraction())
}
