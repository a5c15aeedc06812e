package vocab

import "strings"

// NodeType classifies a graph node. Contraction is always scoped to one
// NodeType.
type NodeType string

const (
	NodeTypeParagraph NodeType = "PARAGRAPH"
	NodeTypeSentence  NodeType = "SENTENCE"
	NodeTypeToken     NodeType = "TOKEN"
	NodeTypeUniPOS    NodeType = "UNIVERSALPOS"
	NodeTypeNER       NodeType = "NER"
)

var nodeTypes = newLabelSet("node type",
	NodeTypeParagraph,
	NodeTypeSentence,
	NodeTypeToken,
	NodeTypeUniPOS,
	NodeTypeNER,
)

// ParseNodeType returns the NodeType for raw or an *InvalidLabelError.
func ParseNodeType(raw string) (NodeType, error) { return nodeTypes.parse(raw) }

// Valid reports whether t is a member of the node type vocabulary.
func (t NodeType) Valid() bool { return nodeTypes.contains(t) }

// NodeTypes lists every node type in declaration order.
func NodeTypes() []NodeType { return nodeTypes.values() }

// ParseNodeTypeList parses configuration input such as "token, ner".
// Items are trimmed and upper-cased; empty items are skipped.
func ParseNodeTypeList(raw []string) ([]NodeType, error) {
	out := make([]NodeType, 0, len(raw))
	for _, item := range raw {
		item = strings.ToUpper(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		t, err := ParseNodeType(item)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// EdgeType classifies a directed relation between two nodes.
type EdgeType string

const (
	EdgeTypeSentToPara    EdgeType = "SentToPara"
	EdgeTypeTokenToNER    EdgeType = "TokenToNER"
	EdgeTypeTokenToSent   EdgeType = "TokenToSent"
	EdgeTypeTokenToUniPOS EdgeType = "TokenToUniPOS"
	EdgeTypeDependencyArc EdgeType = "DependencyArc"
)

var edgeTypes = newLabelSet("edge type",
	EdgeTypeSentToPara,
	EdgeTypeTokenToNER,
	EdgeTypeTokenToSent,
	EdgeTypeTokenToUniPOS,
	EdgeTypeDependencyArc,
)

// ParseEdgeType returns the EdgeType for raw or an *InvalidLabelError.
func ParseEdgeType(raw string) (EdgeType, error) { return edgeTypes.parse(raw) }

func (t EdgeType) Valid() bool { return edgeTypes.contains(t) }

func EdgeTypes() []EdgeType { return edgeTypes.values() }
