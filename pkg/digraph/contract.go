package digraph

import "fmt"

// ContractedNode records a node absorbed by a contraction.
type ContractedNode struct {
	ID    int
	Attrs Attrs
}

// ContractedEdge records an edge that was redirected onto an edge that
// already existed and was therefore absorbed by it. Src and Dst are the
// endpoints the edge had before the contraction.
type ContractedEdge struct {
	Src   int
	Dst   int
	Attrs Attrs
}

// ContractNodes merges v into u. Every edge incident to v is redirected to u
// with its direction and attributes preserved. A redirected edge that lands
// on an existing edge is absorbed: the existing edge keeps its attributes and
// the absorbed one is recorded as contraction provenance. Edges that would
// become self-loops on u are dropped unless selfLoops is set.
//
// Provenance is kept beside the graph, never inside attribute maps. Read it
// with NodeContraction and EdgeContraction, remove it with DropContraction.
func (g *Graph) ContractNodes(u, v int, selfLoops bool) error {
	for _, id := range []int{u, v} {
		if !g.HasNode(id) {
			return fmt.Errorf("contract %d into %d: %w: %d", v, u, ErrNodeNotFound, id)
		}
	}
	if u == v {
		return nil
	}

	redirect := func(id int) int {
		if id == v {
			return u
		}
		return id
	}

	type pending struct {
		src, dst         int
		origSrc, origDst int
		attrs            Attrs
		contraction      []ContractedEdge
	}
	var moved []pending
	for p := g.pred[v].Oldest(); p != nil; p = p.Next() {
		if p.Key == v {
			continue
		}
		attrs, _ := g.succ[p.Key].Get(v)
		moved = append(moved, pending{
			src:         redirect(p.Key),
			dst:         u,
			origSrc:     p.Key,
			origDst:     v,
			attrs:       attrs,
			contraction: g.edgeContraction[edgeKey{p.Key, v}],
		})
	}
	for p := g.succ[v].Oldest(); p != nil; p = p.Next() {
		moved = append(moved, pending{
			src:         u,
			dst:         redirect(p.Key),
			origSrc:     v,
			origDst:     p.Key,
			attrs:       p.Value,
			contraction: g.edgeContraction[edgeKey{v, p.Key}],
		})
	}

	vAttrs, _ := g.nodes.Get(v)
	absorbed := append([]ContractedNode{{ID: v, Attrs: vAttrs}}, g.nodeContraction[v]...)

	if err := g.RemoveNode(v); err != nil {
		return err
	}

	for _, e := range moved {
		if e.src == e.dst && !selfLoops {
			continue
		}
		key := edgeKey{e.src, e.dst}
		if g.HasEdge(e.src, e.dst) {
			g.edgeContraction[key] = append(g.edgeContraction[key], ContractedEdge{
				Src:   e.origSrc,
				Dst:   e.origDst,
				Attrs: e.attrs,
			})
			g.edgeContraction[key] = append(g.edgeContraction[key], e.contraction...)
			continue
		}
		g.addEdge(e.src, e.dst, e.attrs)
		if len(e.contraction) > 0 {
			g.edgeContraction[key] = e.contraction
		}
	}

	g.nodeContraction[u] = append(g.nodeContraction[u], absorbed...)
	return nil
}

// NodeContraction returns the nodes absorbed into id since the last
// DropContraction.
func (g *Graph) NodeContraction(id int) []ContractedNode {
	return cloneContractedNodes(g.nodeContraction[id])
}

// EdgeContraction returns the edges absorbed into src -> dst since the last
// DropContraction.
func (g *Graph) EdgeContraction(src, dst int) []ContractedEdge {
	return cloneContractedEdges(g.edgeContraction[edgeKey{src, dst}])
}

// HasContraction reports whether any node or edge still carries provenance.
func (g *Graph) HasContraction() bool {
	return len(g.nodeContraction) > 0 || len(g.edgeContraction) > 0
}

// DropContraction removes all contraction provenance and returns how many
// nodes and edges carried it.
func (g *Graph) DropContraction() (nodes int, edges int) {
	nodes = len(g.nodeContraction)
	edges = len(g.edgeContraction)
	clear(g.nodeContraction)
	clear(g.edgeContraction)
	return nodes, edges
}

func cloneContractedNodes(in []ContractedNode) []ContractedNode {
	if in == nil {
		return nil
	}
	out := make([]ContractedNode, len(in))
	for i, n := range in {
		out[i] = ContractedNode{ID: n.ID, Attrs: n.Attrs.clone()}
	}
	return out
}

func cloneContractedEdges(in []ContractedEdge) []ContractedEdge {
	if in == nil {
		return nil
	}
	out := make([]ContractedEdge, len(in))
	for i, e := range in {
		out[i] = ContractedEdge{Src: e.Src, Dst: e.Dst, Attrs: e.Attrs.clone()}
	}
	return out
}
