package graph

import (
	"context"
	"fmt"

	"github.com/OFFIS-RIT/lingraph/pkg/common"
	"github.com/OFFIS-RIT/lingraph/pkg/digraph"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// DocumentGraph is the contracted graph of one document.
type DocumentGraph struct {
	DocumentID string
	Graph      *digraph.Graph
	Stats      []ContractStats
}

// ProcessSentence maps a single sentence, builds its graph and contracts the
// configured categories.
func (g *GraphClient) ProcessSentence(sent *common.Sentence) (*digraph.Graph, []ContractStats, error) {
	nodes, edges, err := CollectSentenceElements(sent)
	if err != nil {
		return nil, nil, err
	}

	dg, err := BuildGraph(nodes, edges, g.buildParams())
	if err != nil {
		return nil, nil, err
	}

	stats, err := g.contract(dg)
	if err != nil {
		return nil, nil, err
	}

	return dg, stats, nil
}

// ProcessParagraph maps every sentence of p in parallel and builds the
// uncontracted paragraph graph. Node 0 is the paragraph node.
func (g *GraphClient) ProcessParagraph(ctx context.Context, p common.Paragraph) (*digraph.Graph, error) {
	el, err := g.collectParagraph(ctx, p)
	if err != nil {
		return nil, err
	}
	return BuildGraph(el.nodes, el.edges, g.buildParams())
}

// ProcessDocument builds one graph from all paragraphs of doc and contracts
// every configured category in order. A failure in any sentence aborts the
// whole document.
func (g *GraphClient) ProcessDocument(ctx context.Context, doc *common.Document) (*DocumentGraph, error) {
	paragraphs := doc.AllParagraphs()

	logger.Info("[Graph] Processing document", "document_id", doc.ID, "paragraphs", len(paragraphs))

	blocks := make([]sentenceElements, len(paragraphs))
	for i, p := range paragraphs {
		el, err := g.collectParagraph(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("paragraph %d: %w", i, err)
		}
		blocks[i] = el
	}

	nodes, edges := mergeDocumentElements(blocks)
	dg, err := BuildGraph(nodes, edges, g.buildParams())
	if err != nil {
		return nil, err
	}

	stats, err := g.contract(dg)
	if err != nil {
		return nil, err
	}

	logger.Info(
		"[Graph] Document graph completed",
		"document_id", doc.ID,
		"nodes", dg.NumberOfNodes(),
		"edges", dg.NumberOfEdges(),
	)

	return &DocumentGraph{DocumentID: doc.ID, Graph: dg, Stats: stats}, nil
}

func (g *GraphClient) collectParagraph(ctx context.Context, p common.Paragraph) (sentenceElements, error) {
	results := make([]sentenceElements, len(p.Sentences))

	eg, gCtx := errgroup.WithContext(ctx)
	eg.SetLimit(g.parallelSentences)
	for i := range p.Sentences {
		eg.Go(func() error {
			select {
			case <-gCtx.Done():
				return gCtx.Err()
			default:
				nodes, edges, err := CollectSentenceElements(&p.Sentences[i])
				if err != nil {
					return fmt.Errorf("failed to collect sentence elements: %w", err)
				}
				results[i] = sentenceElements{nodes: nodes, edges: edges}
				return nil
			}
		})
	}

	if err := eg.Wait(); err != nil {
		return sentenceElements{}, err
	}

	nodes, edges := mergeParagraphElements(p.Text, results)
	return sentenceElements{nodes: nodes, edges: edges}, nil
}

func (g *GraphClient) contract(dg *digraph.Graph) ([]ContractStats, error) {
	stats := make([]ContractStats, 0, len(g.contractTypes))
	for _, t := range g.contractTypes {
		s, err := ContractNodesByIdenticalText(dg, t, ContractParams{KeepContraction: g.keepContraction})
		if err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, nil
}
