package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/OFFIS-RIT/lingraph/internal/util"
	"github.com/OFFIS-RIT/lingraph/pkg/common"
	"github.com/OFFIS-RIT/lingraph/pkg/graph"
	"github.com/OFFIS-RIT/lingraph/pkg/loader"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"
)

const publishAttempts = 3

// ErrPermanent marks failures that a redelivery cannot fix.
var ErrPermanent = errors.New("permanent failure")

// ResultStore persists exported graphs and returns their location.
type ResultStore interface {
	Save(ctx context.Context, documentID string, body []byte) (string, error)
}

// GraphProcessor handles graph_queue messages.
type GraphProcessor struct {
	client  *graph.GraphClient
	loaders map[loader.DocumentSource]loader.DocumentLoader
	results ResultStore
}

// NewGraphProcessorParams configures a GraphProcessor. Results may be nil,
// in which case graphs are only published.
type NewGraphProcessorParams struct {
	Client  *graph.GraphClient
	Loaders map[loader.DocumentSource]loader.DocumentLoader
	Results ResultStore
}

func NewGraphProcessor(params NewGraphProcessorParams) *GraphProcessor {
	return &GraphProcessor{
		client:  params.Client,
		loaders: params.Loaders,
		results: params.Results,
	}
}

// ProcessGraphMessage builds the graph of the requested document and
// publishes it to GraphResultQueue. Errors wrapping ErrPermanent should not
// be retried.
func (p *GraphProcessor) ProcessGraphMessage(ctx context.Context, ch Channel, msg string) error {
	data := new(QueueGraphMsg)
	if err := json.Unmarshal([]byte(msg), data); err != nil {
		return fmt.Errorf("%w: failed to decode message: %w", ErrPermanent, err)
	}

	client := p.client
	if len(data.ContractTypes) > 0 {
		types, err := vocab.ParseNodeTypeList(data.ContractTypes)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPermanent, err)
		}
		if client, err = client.WithContractTypes(types); err != nil {
			return fmt.Errorf("%w: %w", ErrPermanent, err)
		}
	}

	doc, err := p.resolveDocument(ctx, data)
	if err != nil {
		return err
	}

	logger.Info("[Queue] Building graph", "document_id", doc.ID, "correlation_id", data.CorrelationID)

	res, err := client.ProcessDocument(ctx, doc)
	if err != nil {
		if isInputError(err) {
			err = fmt.Errorf("%w: %w", ErrPermanent, err)
		}
		return fmt.Errorf("failed to process document %s: %w", doc.ID, err)
	}

	export, err := graph.Export(res.Graph)
	if err != nil {
		return err
	}

	result := QueueGraphResultMsg{
		DocumentID:    doc.ID,
		CorrelationID: data.CorrelationID,
		Stats:         res.Stats,
		Graph:         export,
	}

	if p.results != nil && data.Source == loader.DocumentSourceS3 {
		body, err := json.Marshal(export)
		if err != nil {
			return fmt.Errorf("failed to marshal graph: %w", err)
		}
		path, err := p.results.Save(ctx, doc.ID, body)
		if err != nil {
			return fmt.Errorf("failed to store graph: %w", err)
		}
		result.ResultPath = path
	}

	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result message: %w", err)
	}
	err = util.RetryErr(publishAttempts, func() error {
		return PublishFIFO(ch, GraphResultQueue, out)
	})
	if err != nil {
		return fmt.Errorf("failed to publish result: %w", err)
	}

	logger.Info(
		"[Queue] Published graph",
		"document_id", doc.ID,
		"nodes", res.Graph.NumberOfNodes(),
		"edges", res.Graph.NumberOfEdges(),
		"result_path", result.ResultPath,
	)

	return nil
}

func (p *GraphProcessor) resolveDocument(ctx context.Context, data *QueueGraphMsg) (*common.Document, error) {
	if data.Document != nil {
		doc := data.Document
		if doc.ID == "" {
			doc.ID = data.DocumentID
		}
		if doc.Empty() {
			return nil, fmt.Errorf("%w: %w", ErrPermanent, loader.ErrEmptyDocument)
		}
		if err := doc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPermanent, err)
		}
		return doc, nil
	}

	if data.FilePath == "" {
		return nil, fmt.Errorf("%w: message for document %s has neither document nor file_path", ErrPermanent, data.DocumentID)
	}

	source := data.Source
	if source == "" {
		source = loader.DocumentSourceFile
	}
	l, ok := p.loaders[source]
	if !ok {
		return nil, fmt.Errorf("%w: no loader for source %q", ErrPermanent, source)
	}

	file := loader.DocumentFile{
		ID:       data.DocumentID,
		FilePath: data.FilePath,
		Source:   source,
		Loader:   l,
	}
	doc, err := file.GetDocument(ctx)
	if err != nil {
		if isInputError(err) {
			return nil, fmt.Errorf("%w: %w", ErrPermanent, err)
		}
		return nil, err
	}
	return doc, nil
}

func isInputError(err error) bool {
	return errors.Is(err, vocab.ErrInvalidLabel) ||
		errors.Is(err, common.ErrInvalidSentence) ||
		errors.Is(err, loader.ErrEmptyDocument) ||
		errors.Is(err, loader.ErrInvalidDocument)
}
