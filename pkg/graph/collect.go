package graph

import (
	"fmt"
	"strings"

	"github.com/OFFIS-RIT/lingraph/pkg/common"
	"github.com/OFFIS-RIT/lingraph/pkg/logger"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"
)

// CollectSentenceElements maps one parsed sentence to its node and edge
// records.
//
// Node ids are dense and follow emission order: the sentence node, one node
// per distinct entity, then for every token its token node immediately
// followed by its part-of-speech node. Edges are grouped as token-to-entity,
// token-to-sentence, token-to-pos and dependency arcs.
//
// A part-of-speech tag, entity label or dependency relation outside its
// vocabulary fails the whole call with vocab.ErrInvalidLabel. Records of the
// same entity must agree on the label, otherwise the call fails with
// common.ErrInvalidSentence.
func CollectSentenceElements(sent *common.Sentence) (NodeTuples, EdgeTuples, error) {
	if err := sent.Validate(); err != nil {
		return nil, nil, err
	}

	nodes := make(NodeTuples, 0, 1+len(sent.Entities)+2*len(sent.Tokens))

	tokenNID := make(map[int]int, len(sent.Tokens))
	posNID := make(map[int]int, len(sent.Tokens))
	entNID := make(map[string]int, len(sent.Entities))

	currNID := 0

	sentNID := currNID
	nodes = append(nodes, NewNodeTuple(sentNID, vocab.NodeTypeSentence, sent.Text))
	currNID++

	entLabel := make(map[string]vocab.NamedEntityLabel, len(sent.Entities))
	for _, ent := range sent.Entities {
		key := ent.Key()
		label, err := vocab.ParseNamedEntityLabel(ent.Label)
		if err != nil {
			return nil, nil, fmt.Errorf("sentence %d entity %s: %w", sent.ID, key, err)
		}
		if prev, ok := entLabel[key]; ok {
			if prev != label {
				return nil, nil, fmt.Errorf("sentence %d entity %s: %w: label %s conflicts with %s", sent.ID, key, common.ErrInvalidSentence, label, prev)
			}
			continue
		}
		entLabel[key] = label
		entNID[key] = currNID
		nodes = append(nodes, NewNodeTuple(currNID, vocab.NodeTypeNER, string(label)))
		currNID++
	}

	for _, tok := range sent.Tokens {
		pos, err := vocab.ParseUniversalPOSTag(strings.ToUpper(tok.Pos))
		if err != nil {
			return nil, nil, fmt.Errorf("sentence %d token %d: %w", sent.ID, tok.Index, err)
		}

		tokenNID[tok.Index] = currNID
		nodes = append(nodes, NewTokenNodeTuple(currNID, tok.Text, tok.Index))
		currNID++

		posNID[tok.Index] = currNID
		nodes = append(nodes, NewNodeTuple(currNID, vocab.NodeTypeUniPOS, string(pos)))
		currNID++
	}

	var (
		tokenToNER    EdgeTuples
		tokenToSent   EdgeTuples
		tokenToUniPOS EdgeTuples
		dependencyArc EdgeTuples
	)

	// Records sharing an entity may cover different spans; every covered
	// token is linked once.
	linked := make(map[[2]int]struct{}, len(sent.Entities))
	for _, ent := range sent.Entities {
		dst := entNID[ent.Key()]
		for _, tok := range sent.EntityTokens(ent) {
			src := tokenNID[tok.Index]
			if _, ok := linked[[2]int{src, dst}]; ok {
				continue
			}
			linked[[2]int{src, dst}] = struct{}{}
			tokenToNER = append(tokenToNER, NewEdgeTuple(src, dst, vocab.EdgeTypeTokenToNER))
		}
	}

	children := sent.Children()
	for _, tok := range sent.Tokens {
		tokenToSent = append(tokenToSent, NewEdgeTuple(tokenNID[tok.Index], sentNID, vocab.EdgeTypeTokenToSent))
		tokenToUniPOS = append(tokenToUniPOS, NewEdgeTuple(tokenNID[tok.Index], posNID[tok.Index], vocab.EdgeTypeTokenToUniPOS))

		for _, child := range children[tok.Index] {
			label, err := vocab.ParseDependencyLabel(strings.ToUpper(child.Dep))
			if err != nil {
				return nil, nil, fmt.Errorf("sentence %d arc %d -> %d: %w", sent.ID, tok.Index, child.Index, err)
			}
			dependencyArc = append(dependencyArc, NewDependencyArcTuple(tokenNID[tok.Index], tokenNID[child.Index], label))
		}
	}

	edges := make(EdgeTuples, 0, len(tokenToNER)+len(tokenToSent)+len(tokenToUniPOS)+len(dependencyArc))
	edges = append(edges, tokenToNER...)
	edges = append(edges, tokenToSent...)
	edges = append(edges, tokenToUniPOS...)
	edges = append(edges, dependencyArc...)

	logger.Debug(
		"[Graph] Collected sentence elements",
		"sentence_id", sent.ID,
		"nodes", len(nodes),
		"edges", len(edges),
		"text_length", len(sent.Text),
	)

	return nodes, edges, nil
}
