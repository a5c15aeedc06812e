package graph

import (
	"encoding/json"
	"testing"

	"github.com/OFFIS-RIT/lingraph/pkg/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	sent := aliceSentence()
	nodes, edges, err := CollectSentenceElements(&sent)
	require.NoError(t, err)
	g, err := BuildGraph(nodes, edges, BuildParams{})
	require.NoError(t, err)

	out, err := Export(g)
	require.NoError(t, err)

	assert.Len(t, out.ID, 21)
	assert.True(t, out.Directed)
	assert.False(t, out.Multigraph)
	require.Len(t, out.Nodes, 15)
	require.Len(t, out.Links, 20)

	assert.Equal(t, map[string]any{
		"id":         0,
		AttrNodeType: string(vocab.NodeTypeSentence),
		AttrText:     "Alice lives in New York.",
	}, out.Nodes[0])
	assert.Equal(t, map[string]any{
		"source":     3,
		"target":     1,
		AttrEdgeType: string(vocab.EdgeTypeTokenToNER),
		AttrText:     "",
	}, out.Links[0])
}

func TestExportOmitsProvenance(t *testing.T) {
	g := newYorkGraph(t)
	_, err := ContractNodesByIdenticalText(g, vocab.NodeTypeToken, ContractParams{KeepContraction: true})
	require.NoError(t, err)

	out, err := Export(g)
	require.NoError(t, err)

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "contraction")

	var decoded struct {
		Nodes []map[string]any `json:"nodes"`
		Links []map[string]any `json:"links"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Len(t, decoded.Nodes, 5)
	assert.Len(t, decoded.Links, 1)
}
