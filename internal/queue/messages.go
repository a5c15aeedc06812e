package queue

import (
	"github.com/OFFIS-RIT/lingraph/pkg/common"
	"github.com/OFFIS-RIT/lingraph/pkg/graph"
	"github.com/OFFIS-RIT/lingraph/pkg/loader"
)

// QueueGraphMsg requests the graph of one document. Document carries the
// parsed document inline; otherwise FilePath is read from Source.
type QueueGraphMsg struct {
	DocumentID    string                `json:"document_id"`
	CorrelationID string                `json:"correlation_id,omitempty"`
	FilePath      string                `json:"file_path,omitempty"`
	Source        loader.DocumentSource `json:"source,omitempty"`
	ContractTypes []string              `json:"contract_types,omitempty"`
	Document      *common.Document      `json:"document,omitempty"`
}

// QueueGraphResultMsg is published to GraphResultQueue after a document was
// processed.
type QueueGraphResultMsg struct {
	DocumentID    string                `json:"document_id"`
	CorrelationID string                `json:"correlation_id,omitempty"`
	ResultPath    string                `json:"result_path,omitempty"`
	Stats         []graph.ContractStats `json:"stats"`
	Graph         *graph.NodeLinkGraph  `json:"graph"`
}
