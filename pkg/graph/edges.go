package graph

import (
	"github.com/OFFIS-RIT/lingraph/pkg/digraph"
	"github.com/OFFIS-RIT/lingraph/pkg/vocab"
)

// EdgeFeats is the feature payload of an edge. Text carries the dependency
// relation of DependencyArc edges and is empty otherwise.
type EdgeFeats struct {
	EType vocab.EdgeType `json:"etype"`
	Text  string         `json:"text"`
}

func (f EdgeFeats) Attrs() digraph.Attrs {
	return digraph.Attrs{
		AttrEdgeType: string(f.EType),
		AttrText:     f.Text,
	}
}

// EdgeTuple is a typed, directed edge record.
type EdgeTuple struct {
	SrcID     int       `json:"src_id"`
	DstID     int       `json:"dst_id"`
	EdgeFeats EdgeFeats `json:"edge_feats"`
}

func NewEdgeTuple(src, dst int, etype vocab.EdgeType) EdgeTuple {
	return EdgeTuple{SrcID: src, DstID: dst, EdgeFeats: EdgeFeats{EType: etype}}
}

func NewDependencyArcTuple(head, child int, label vocab.DependencyLabel) EdgeTuple {
	return EdgeTuple{
		SrcID: head,
		DstID: child,
		EdgeFeats: EdgeFeats{
			EType: vocab.EdgeTypeDependencyArc,
			Text:  string(label),
		},
	}
}

func (t EdgeTuple) ToTuple() digraph.EdgeTuple {
	return digraph.EdgeTuple{Src: t.SrcID, Dst: t.DstID, Attrs: t.EdgeFeats.Attrs()}
}

// EdgeTuples is an ordered set of edge records.
type EdgeTuples []EdgeTuple

func (ts EdgeTuples) ToList() []digraph.EdgeTuple {
	out := make([]digraph.EdgeTuple, len(ts))
	for i, t := range ts {
		out[i] = t.ToTuple()
	}
	return out
}
