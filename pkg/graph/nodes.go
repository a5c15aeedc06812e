package graph

import (
	"github.com/OFFIS-RIT/lingraph/pkg/digraph"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"
)

// Attribute keys used on graph nodes and edges.
const (
	AttrNodeType   = "ntype"
	AttrEdgeType   = "etype"
	AttrText       = "text"
	AttrPositionID = "position_id"
)

// NodeFeats is the feature payload of a node. PositionID is set for token
// nodes only.
type NodeFeats struct {
	NType      vocab.NodeType `json:"ntype"`
	Text       string         `json:"text"`
	PositionID *int           `json:"position_id,omitempty"`
}

// Attrs converts the features into the untyped attribute form stored in the
// graph. Vocabulary values are stored as their raw strings.
func (f NodeFeats) Attrs() digraph.Attrs {
	attrs := digraph.Attrs{
		AttrNodeType: string(f.NType),
		AttrText:     f.Text,
	}
	if f.PositionID != nil {
		attrs[AttrPositionID] = *f.PositionID
	}
	return attrs
}

// NodeTuple is a typed node record.
type NodeTuple struct {
	NodeID    int       `json:"node_id"`
	NodeFeats NodeFeats `json:"node_feats"`
}

func NewNodeTuple(id int, ntype vocab.NodeType, text string) NodeTuple {
	return NodeTuple{NodeID: id, NodeFeats: NodeFeats{NType: ntype, Text: text}}
}

func NewTokenNodeTuple(id int, text string, position int) NodeTuple {
	return NodeTuple{
		NodeID: id,
		NodeFeats: NodeFeats{
			NType:      vocab.NodeTypeToken,
			Text:       text,
			PositionID: &position,
		},
	}
}

func (t NodeTuple) ToTuple() digraph.NodeTuple {
	return digraph.NodeTuple{ID: t.NodeID, Attrs: t.NodeFeats.Attrs()}
}

// NodeTuples is an ordered set of node records.
type NodeTuples []NodeTuple

// ToList converts every record into the bulk-insert form of the graph.
func (ts NodeTuples) ToList() []digraph.NodeTuple {
	out := make([]digraph.NodeTuple, len(ts))
	for i, t := range ts {
		out[i] = t.ToTuple()
	}
	return out
}
