package util

import (
	"github.com/OFFIS-RIT/lingraph/pkg/graph"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"
)

// NewGraphClientFromEnv builds the graph client from PARALLEL_SENTENCES,
// CONTRACT_TYPES, ALLOW_MISSING_ENDPOINTS and KEEP_CONTRACTION.
func NewGraphClientFromEnv() (*graph.GraphClient, error) {
	types, err := vocab.ParseNodeTypeList(GetEnvList("CONTRACT_TYPES", []string{string(vocab.NodeTypeToken)}))
	if err != nil {
		return nil, err
	}
	return graph.NewGraphClient(graph.NewGraphClientParams{
		ParallelSentences:     GetEnvInt("PARALLEL_SENTENCES", 8),
		AllowMissingEndpoints: GetEnvBool("ALLOW_MISSING_ENDPOINTS", false),
		ContractTypes:         types,
		KeepContraction:       GetEnvBool("KEEP_CONTRACTION", false),
	})
}
