package graph

import (
	"fmt"

	"github.com/OFFIS-RIT/lingraph/pkg/vocab"
)

// GraphClient turns parsed documents into contracted linguistic graphs. It
// controls how many sentences are mapped in parallel and which node
// categories are contracted after a document graph is built.
//
// A GraphClient should be created using NewGraphClient. It holds no mutable
// state and may be shared between goroutines.
type GraphClient struct {
	parallelSentences     int
	graphType             GraphType
	allowMissingEndpoints bool
	contractTypes         []vocab.NodeType
	keepContraction       bool
}

// NewGraphClientParams defines the configuration parameters for creating
// a new GraphClient.
//
// ParallelSentences controls how many sentences of a paragraph are mapped
// concurrently. Values <= 0 fall back to 1.
// ContractTypes lists the node categories contracted, in order, after a
// document graph has been built. Nil means Token only.
type NewGraphClientParams struct {
	ParallelSentences     int
	GraphType             GraphType
	AllowMissingEndpoints bool
	ContractTypes         []vocab.NodeType
	KeepContraction       bool
}

// NewGraphClient creates and returns a new GraphClient configured with
// the provided parameters.
//
// Example:
//
//	client, err := graph.NewGraphClient(graph.NewGraphClientParams{
//		ParallelSentences: 8,
//		ContractTypes:     []vocab.NodeType{vocab.NodeTypeToken, vocab.NodeTypeNER},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Returns an error if the graph type or a contraction category is invalid.
func NewGraphClient(params NewGraphClientParams) (*GraphClient, error) {
	parallel := params.ParallelSentences
	if parallel <= 0 {
		parallel = 1
	}

	graphType := params.GraphType
	if graphType == "" {
		graphType = GraphTypeDigraph
	}
	if graphType != GraphTypeDigraph {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedGraphType, graphType)
	}

	contractTypes := params.ContractTypes
	if contractTypes == nil {
		contractTypes = []vocab.NodeType{vocab.NodeTypeToken}
	}
	for _, t := range contractTypes {
		if _, err := vocab.ParseNodeType(string(t)); err != nil {
			return nil, err
		}
	}

	g := &GraphClient{
		parallelSentences:     parallel,
		graphType:             graphType,
		allowMissingEndpoints: params.AllowMissingEndpoints,
		contractTypes:         append([]vocab.NodeType(nil), contractTypes...),
		keepContraction:       params.KeepContraction,
	}

	return g, nil
}

// ContractTypes returns the categories contracted by ProcessDocument.
func (g *GraphClient) ContractTypes() []vocab.NodeType {
	return append([]vocab.NodeType(nil), g.contractTypes...)
}

// WithContractTypes returns a copy of the client contracting types instead
// of the configured categories.
func (g *GraphClient) WithContractTypes(types []vocab.NodeType) (*GraphClient, error) {
	for _, t := range types {
		if _, err := vocab.ParseNodeType(string(t)); err != nil {
			return nil, err
		}
	}
	c := *g
	c.contractTypes = append([]vocab.NodeType(nil), types...)
	return &c, nil
}

func (g *GraphClient) buildParams() BuildParams {
	return BuildParams{
		GraphType:             g.graphType,
		AllowMissingEndpoints: g.allowMissingEndpoints,
	}
}
