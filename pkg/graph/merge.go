package graph

import "github.com/OFFIS-RIT/lingraph/pkg/vocab"

// sentenceElements holds the records of one mapped sentence.
type sentenceElements struct {
	nodes NodeTuples
	edges EdgeTuples
}

// offsetElements shifts every node id and edge endpoint of el by offset.
// Records are copied; el is left untouched.
func offsetElements(el sentenceElements, offset int) sentenceElements {
	out := sentenceElements{
		nodes: make(NodeTuples, len(el.nodes)),
		edges: make(EdgeTuples, len(el.edges)),
	}
	for i, n := range el.nodes {
		n.NodeID += offset
		out.nodes[i] = n
	}
	for i, e := range el.edges {
		e.SrcID += offset
		e.DstID += offset
		out.edges[i] = e
	}
	return out
}

// mergeParagraphElements assembles the records of a paragraph: the paragraph
// node gets id 0, every sentence block follows in sentence order and each
// sentence node is linked to the paragraph node. The sentence node of every
// block is its first record.
func mergeParagraphElements(text string, sentences []sentenceElements) (NodeTuples, EdgeTuples) {
	nodeCount, edgeCount := 1, 0
	for _, s := range sentences {
		nodeCount += len(s.nodes)
		edgeCount += len(s.edges) + 1
	}

	const paraNID = 0
	nodes := make(NodeTuples, 0, nodeCount)
	edges := make(EdgeTuples, 0, edgeCount)
	nodes = append(nodes, NewNodeTuple(paraNID, vocab.NodeTypeParagraph, text))

	offset := paraNID + 1
	for _, s := range sentences {
		shifted := offsetElements(s, offset)
		nodes = append(nodes, shifted.nodes...)
		edges = append(edges, shifted.edges...)
		if len(shifted.nodes) > 0 {
			edges = append(edges, NewEdgeTuple(shifted.nodes[0].NodeID, paraNID, vocab.EdgeTypeSentToPara))
		}
		offset += len(s.nodes)
	}

	return nodes, edges
}

// mergeDocumentElements concatenates paragraph blocks into one dense id space.
func mergeDocumentElements(paragraphs []sentenceElements) (NodeTuples, EdgeTuples) {
	var nodes NodeTuples
	var edges EdgeTuples
	offset := 0
	for _, p := range paragraphs {
		shifted := offsetElements(p, offset)
		nodes = append(nodes, shifted.nodes...)
		edges = append(edges, shifted.edges...)
		offset += len(p.nodes)
	}
	return nodes, edges
}
