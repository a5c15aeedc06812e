package graph

import (
	"fmt"
	"maps"

	"github.com/OFFIS-RIT/lingraph/pkg/digraph"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NodeLinkGraph is the node-link JSON form of a graph.
type NodeLinkGraph struct {
	ID         string           `json:"id"`
	Directed   bool             `json:"directed"`
	Multigraph bool             `json:"multigraph"`
	Nodes      []map[string]any `json:"nodes"`
	Links      []map[string]any `json:"links"`
}

// Export converts g into node-link form. Nodes and links keep insertion
// order. Every node carries its id under "id" and every link its endpoints
// under "source" and "target"; the remaining keys are the attributes.
func Export(g *digraph.Graph) (*NodeLinkGraph, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("failed to generate graph id: %w", err)
	}

	out := &NodeLinkGraph{
		ID:       id,
		Directed: true,
		Nodes:    make([]map[string]any, 0, g.NumberOfNodes()),
		Links:    make([]map[string]any, 0, g.NumberOfEdges()),
	}

	for _, n := range g.Nodes() {
		m := make(map[string]any, len(n.Attrs)+1)
		maps.Copy(m, n.Attrs)
		m["id"] = n.ID
		out.Nodes = append(out.Nodes, m)
	}
	for _, e := range g.Edges() {
		m := make(map[string]any, len(e.Attrs)+2)
		maps.Copy(m, e.Attrs)
		m["source"] = e.Src
		m["target"] = e.Dst
		out.Links = append(out.Links, m)
	}

	return out, nil
}
