package graph

import (
	"errors"
	"testing"

	"github.com/OFFIS-RIT/lingraph/pkg/common"
	"github.com/OFFIS-RIT/lingraph/pkg/digraph"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newYorkGraph(t *testing.T) *digraph.Graph {
	t.Helper()

	nodes := NodeTuples{
		NewTokenNodeTuple(0, "New York", 0),
		NewTokenNodeTuple(1, "City", 1),
		NewTokenNodeTuple(2, "is", 2),
		NewTokenNodeTuple(3, "in", 3),
		NewTokenNodeTuple(4, "New York", 4),
		NewNodeTuple(5, vocab.NodeTypeSentence, "New York City is in New York"),
	}
	edges := EdgeTuples{
		NewEdgeTuple(0, 5, vocab.EdgeTypeTokenToSent),
		NewEdgeTuple(4, 5, vocab.EdgeTypeTokenToSent),
	}

	g, err := BuildGraph(nodes, edges, BuildParams{})
	require.NoError(t, err)
	return g
}

func TestContractNodesByIdenticalText(t *testing.T) {
	g := newYorkGraph(t)

	stats, err := ContractNodesByIdenticalText(g, vocab.NodeTypeToken, ContractParams{})
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumberOfNodes())
	assert.Equal(t, 1, g.NumberOfEdges())
	assert.True(t, g.HasNode(0))
	assert.False(t, g.HasNode(4))
	assert.True(t, g.HasEdge(0, 5))
	assert.False(t, g.HasContraction())

	assert.Equal(t, ContractStats{
		NodeType:         vocab.NodeTypeToken,
		NodesBefore:      6,
		EdgesBefore:      2,
		NodesAfter:       5,
		EdgesAfter:       1,
		Candidates:       5,
		Groups:           1,
		Merged:           1,
		CleanedNodeAttrs: 1,
		CleanedEdgeAttrs: 1,
	}, stats)

	attrs, _ := g.Node(0)
	assert.Equal(t, 0, attrs[AttrPositionID])
}

func TestContractNodesByIdenticalTextKeepContraction(t *testing.T) {
	g := newYorkGraph(t)

	stats, err := ContractNodesByIdenticalText(g, vocab.NodeTypeToken, ContractParams{KeepContraction: true})
	require.NoError(t, err)

	assert.Zero(t, stats.CleanedNodeAttrs)
	assert.True(t, g.HasContraction())
	merged := g.NodeContraction(0)
	require.Len(t, merged, 1)
	assert.Equal(t, 4, merged[0].ID)
	assert.Equal(t, "New York", merged[0].Attrs[AttrText])
	require.Len(t, g.EdgeContraction(0, 5), 1)
}

func TestContractNodesByIdenticalTextIdempotent(t *testing.T) {
	g := newYorkGraph(t)

	_, err := ContractNodesByIdenticalText(g, vocab.NodeTypeToken, ContractParams{})
	require.NoError(t, err)
	nodes, edges := g.NumberOfNodes(), g.NumberOfEdges()

	stats, err := ContractNodesByIdenticalText(g, vocab.NodeTypeToken, ContractParams{})
	require.NoError(t, err)

	assert.Equal(t, nodes, g.NumberOfNodes())
	assert.Equal(t, edges, g.NumberOfEdges())
	assert.Zero(t, stats.Groups)
	assert.Zero(t, stats.Merged)
}

func TestContractNodesByIdenticalTextScope(t *testing.T) {
	tests := []struct {
		name  string
		ntype vocab.NodeType
		nodes int
		edges int
	}{
		{name: "no matching category", ntype: vocab.NodeTypeNER, nodes: 6, edges: 2},
		{name: "single member category", ntype: vocab.NodeTypeSentence, nodes: 6, edges: 2},
		{name: "token", ntype: vocab.NodeTypeToken, nodes: 5, edges: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newYorkGraph(t)

			_, err := ContractNodesByIdenticalText(g, tt.ntype, ContractParams{})
			require.NoError(t, err)

			assert.Equal(t, tt.nodes, g.NumberOfNodes())
			assert.Equal(t, tt.edges, g.NumberOfEdges())
			attrs, ok := g.Node(5)
			require.True(t, ok)
			assert.Equal(t, string(vocab.NodeTypeSentence), attrs[AttrNodeType])
		})
	}
}

func TestContractNodesByIdenticalTextInvalidCategory(t *testing.T) {
	g := newYorkGraph(t)

	_, err := ContractNodesByIdenticalText(g, vocab.NodeType("WORD"), ContractParams{})

	assert.True(t, errors.Is(err, vocab.ErrInvalidLabel))
	assert.Equal(t, 6, g.NumberOfNodes())
}

func TestContractNodesByIdenticalTextSentenceGraph(t *testing.T) {
	sent := aliceSentence()
	sent.Tokens = append(sent.Tokens, common.Token{Index: 6, Text: "Alice", Pos: "PROPN", Dep: "appos", Head: 0})

	nodes, edges, err := CollectSentenceElements(&sent)
	require.NoError(t, err)
	g, err := BuildGraph(nodes, edges, BuildParams{})
	require.NoError(t, err)

	_, err = ContractNodesByIdenticalText(g, vocab.NodeTypeUniPOS, ContractParams{})
	require.NoError(t, err)

	// Four PROPN nodes collapse into one; every token keeps its own POS edge.
	assert.Len(t, g.SearchNodes(AttrNodeType, string(vocab.NodeTypeUniPOS)), 4)
	assert.Equal(t, len(edges), g.NumberOfEdges())

	_, err = ContractNodesByIdenticalText(g, vocab.NodeTypeToken, ContractParams{})
	require.NoError(t, err)

	// The second "Alice" token is absorbed together with its arc from the
	// first one, which would become a self-loop.
	assert.Len(t, g.SearchNodes(AttrNodeType, string(vocab.NodeTypeToken)), 6)
	assert.False(t, g.HasEdge(3, 3))
	assert.Equal(t, len(edges)-3, g.NumberOfEdges())
}
