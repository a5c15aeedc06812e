package graph

import (
	"fmt"

	"github.com/OFFIS-RIT/lingraph/pkg/digraph"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"
)

// ContractParams configures ContractNodesByIdenticalText.
type ContractParams struct {
	// KeepContraction skips the cleanup pass so the merge provenance stays
	// readable through digraph.Graph.NodeContraction and EdgeContraction.
	KeepContraction bool
}

// ContractStats summarizes one contraction run.
type ContractStats struct {
	NodeType         vocab.NodeType `json:"ntype"`
	NodesBefore      int            `json:"nodes_before"`
	EdgesBefore      int            `json:"edges_before"`
	NodesAfter       int            `json:"nodes_after"`
	EdgesAfter       int            `json:"edges_after"`
	Candidates       int            `json:"candidates"`
	Groups           int            `json:"groups"`
	Merged           int            `json:"merged"`
	CleanedNodeAttrs int            `json:"cleaned_node_attrs"`
	CleanedEdgeAttrs int            `json:"cleaned_edge_attrs"`
}

// ContractNodesByIdenticalText merges all nodes of category ntype that carry
// the same text into the first of them in insertion order. Incident edges
// are redirected to the survivor and edges that would become self-loops are
// dropped. Nodes of other categories are never touched.
//
// g is mutated in place. Unless params.KeepContraction is set, all merge
// provenance is removed before returning.
func ContractNodesByIdenticalText(
	g *digraph.Graph,
	ntype vocab.NodeType,
	params ContractParams,
) (ContractStats, error) {
	if _, err := vocab.ParseNodeType(string(ntype)); err != nil {
		return ContractStats{}, err
	}

	stats := ContractStats{
		NodeType:    ntype,
		NodesBefore: g.NumberOfNodes(),
		EdgesBefore: g.NumberOfEdges(),
	}

	candidates := g.SearchNodes(AttrNodeType, string(ntype))
	stats.Candidates = len(candidates)

	order := make([]string, 0)
	groups := make(map[string][]int)
	for _, id := range candidates {
		attrs, _ := g.Node(id)
		text := fmt.Sprint(attrs[AttrText])
		if _, ok := groups[text]; !ok {
			order = append(order, text)
		}
		groups[text] = append(groups[text], id)
	}

	for _, text := range order {
		members := groups[text]
		if len(members) < 2 {
			continue
		}
		stats.Groups++

		survivor := members[0]
		for _, other := range members[1:] {
			if err := g.ContractNodes(survivor, other, false); err != nil {
				return stats, fmt.Errorf("failed to contract node %d into %d: %w", other, survivor, err)
			}
			stats.Merged++
		}
	}

	if !params.KeepContraction {
		stats.CleanedNodeAttrs, stats.CleanedEdgeAttrs = g.DropContraction()
	}

	stats.NodesAfter = g.NumberOfNodes()
	stats.EdgesAfter = g.NumberOfEdges()

	logger.Debug(
		"[Contract] Contracted nodes by identical text",
		"ntype", ntype,
		"nodes_before", stats.NodesBefore,
		"edges_before", stats.EdgesBefore,
		"nodes_after", stats.NodesAfter,
		"edges_after", stats.EdgesAfter,
		"groups", stats.Groups,
		"merged", stats.Merged,
		"cleaned_nodes", stats.CleanedNodeAttrs,
		"cleaned_edges", stats.CleanedEdgeAttrs,
	)

	return stats, nil
}
