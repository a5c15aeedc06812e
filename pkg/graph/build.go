package graph

import (
	"errors"
	"fmt"

	"github.com/OFFIS-RIT/lingraph/pkg/digraph"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"
)

var (
	ErrUnsupportedGraphType = errors.New("unsupported graph type")
	ErrDuplicateNodeID      = errors.New("duplicate node id")
)

// GraphType names a graph variant. Only GraphTypeDigraph can be built.
type GraphType string

const (
	GraphTypeDigraph      GraphType = "digraph"
	GraphTypeGraph        GraphType = "graph"
	GraphTypeMultiDigraph GraphType = "multidigraph"
	GraphTypeMultiGraph   GraphType = "multigraph"
)

// BuildParams configures BuildGraph. The zero value builds a digraph and
// rejects edges whose endpoints are not among the supplied nodes.
type BuildParams struct {
	GraphType GraphType

	// AllowMissingEndpoints creates attribute-less nodes for dangling edge
	// endpoints instead of failing with digraph.ErrMissingEndpoint.
	AllowMissingEndpoints bool
}

// BuildGraph materializes a directed graph from node and edge records.
func BuildGraph(nodes NodeTuples, edges EdgeTuples, params BuildParams) (*digraph.Graph, error) {
	graphType := params.GraphType
	if graphType == "" {
		graphType = GraphTypeDigraph
	}
	if graphType != GraphTypeDigraph {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGraphType, graphType)
	}

	seen := make(map[int]struct{}, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n.NodeID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNodeID, n.NodeID)
		}
		seen[n.NodeID] = struct{}{}
	}

	var opts []digraph.Option
	if params.AllowMissingEndpoints {
		opts = append(opts, digraph.WithImplicitNodes())
	}

	g := digraph.New(opts...)
	g.AddNodesFrom(nodes.ToList())
	if err := g.AddEdgesFrom(edges.ToList()); err != nil {
		return nil, fmt.Errorf("failed to add edges: %w", err)
	}

	logger.Debug(
		"[Graph] Constructed graph",
		"type", graphType,
		"nodes", g.NumberOfNodes(),
		"edges", g.NumberOfEdges(),
	)

	return g, nil
}
