// Package digraph is a small in-memory directed graph with attribute maps on
// nodes and edges. It keeps insertion order for nodes and for the successors
// of every node, so iteration and therefore every algorithm built on it is
// deterministic.
//
// The graph is simple: there is at most one edge per ordered node pair.
// Adding an edge that already exists updates its attributes.
//
// A Graph is not safe for concurrent mutation.
package digraph

import (
	"errors"
	"fmt"
	"maps"
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	ErrNodeNotFound    = errors.New("node not found")
	ErrMissingEndpoint = errors.New("edge endpoint not in graph")
)

// Attrs holds the attributes of a node or an edge.
type Attrs map[string]any

func (a Attrs) clone() Attrs {
	if a == nil {
		return Attrs{}
	}
	return maps.Clone(a)
}

// NodeTuple is the bulk-insert form of a node.
type NodeTuple struct {
	ID    int
	Attrs Attrs
}

// EdgeTuple is the bulk-insert form of an edge.
type EdgeTuple struct {
	Src   int
	Dst   int
	Attrs Attrs
}

// NodeValue pairs a node id with the value of one of its attributes.
type NodeValue struct {
	ID    int
	Value any
}

type edgeKey struct {
	src int
	dst int
}

// Graph is a directed graph. Use New to create one.
type Graph struct {
	nodes *orderedmap.OrderedMap[int, Attrs]
	succ  map[int]*orderedmap.OrderedMap[int, Attrs]
	pred  map[int]*orderedmap.OrderedMap[int, struct{}]

	numEdges      int
	implicitNodes bool

	nodeContraction map[int][]ContractedNode
	edgeContraction map[edgeKey][]ContractedEdge
}

// Option configures a Graph.
type Option func(*Graph)

// WithImplicitNodes makes AddEdgesFrom create attribute-less nodes for
// endpoints that do not exist yet instead of failing with
// ErrMissingEndpoint.
func WithImplicitNodes() Option {
	return func(g *Graph) {
		g.implicitNodes = true
	}
}

// New returns an empty graph.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:           orderedmap.New[int, Attrs](),
		succ:            make(map[int]*orderedmap.OrderedMap[int, Attrs]),
		pred:            make(map[int]*orderedmap.OrderedMap[int, struct{}]),
		nodeContraction: make(map[int][]ContractedNode),
		edgeContraction: make(map[edgeKey][]ContractedEdge),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddNode adds a node or merges attrs into an existing one.
func (g *Graph) AddNode(id int, attrs Attrs) {
	if existing, ok := g.nodes.Get(id); ok {
		maps.Copy(existing, attrs)
		return
	}
	g.nodes.Set(id, attrs.clone())
	g.succ[id] = orderedmap.New[int, Attrs]()
	g.pred[id] = orderedmap.New[int, struct{}]()
}

// AddNodesFrom adds every node in order.
func (g *Graph) AddNodesFrom(nodes []NodeTuple) {
	for _, n := range nodes {
		g.AddNode(n.ID, n.Attrs)
	}
}

// AddEdge adds src -> dst or merges attrs into the existing edge.
func (g *Graph) AddEdge(src, dst int, attrs Attrs) error {
	if err := g.checkEndpoints(src, dst); err != nil {
		return err
	}
	g.addEdge(src, dst, attrs)
	return nil
}

// AddEdgesFrom adds every edge in order. Without WithImplicitNodes all
// endpoints are checked first, so a failing call leaves the graph unchanged.
func (g *Graph) AddEdgesFrom(edges []EdgeTuple) error {
	for _, e := range edges {
		if err := g.checkEndpoints(e.Src, e.Dst); err != nil {
			return err
		}
	}
	for _, e := range edges {
		g.addEdge(e.Src, e.Dst, e.Attrs)
	}
	return nil
}

func (g *Graph) checkEndpoints(src, dst int) error {
	if g.implicitNodes {
		return nil
	}
	for _, id := range []int{src, dst} {
		if !g.HasNode(id) {
			return fmt.Errorf("%w: edge %d -> %d references node %d", ErrMissingEndpoint, src, dst, id)
		}
	}
	return nil
}

func (g *Graph) addEdge(src, dst int, attrs Attrs) {
	if !g.HasNode(src) {
		g.AddNode(src, nil)
	}
	if !g.HasNode(dst) {
		g.AddNode(dst, nil)
	}
	if existing, ok := g.succ[src].Get(dst); ok {
		maps.Copy(existing, attrs)
		return
	}
	g.succ[src].Set(dst, attrs.clone())
	g.pred[dst].Set(src, struct{}{})
	g.numEdges++
}

// RemoveNode deletes id together with every incident edge.
func (g *Graph) RemoveNode(id int) error {
	if !g.HasNode(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	for p := g.succ[id].Oldest(); p != nil; p = p.Next() {
		g.pred[p.Key].Delete(id)
		delete(g.edgeContraction, edgeKey{id, p.Key})
		g.numEdges--
	}
	for p := g.pred[id].Oldest(); p != nil; p = p.Next() {
		if p.Key == id {
			continue
		}
		g.succ[p.Key].Delete(id)
		delete(g.edgeContraction, edgeKey{p.Key, id})
		g.numEdges--
	}
	delete(g.succ, id)
	delete(g.pred, id)
	delete(g.nodeContraction, id)
	g.nodes.Delete(id)
	return nil
}

func (g *Graph) HasNode(id int) bool {
	_, ok := g.nodes.Get(id)
	return ok
}

func (g *Graph) HasEdge(src, dst int) bool {
	s, ok := g.succ[src]
	if !ok {
		return false
	}
	_, ok = s.Get(dst)
	return ok
}

// Node returns the live attribute map of id.
func (g *Graph) Node(id int) (Attrs, bool) {
	return g.nodes.Get(id)
}

// Edge returns the live attribute map of src -> dst.
func (g *Graph) Edge(src, dst int) (Attrs, bool) {
	s, ok := g.succ[src]
	if !ok {
		return nil, false
	}
	return s.Get(dst)
}

func (g *Graph) NumberOfNodes() int {
	return g.nodes.Len()
}

func (g *Graph) NumberOfEdges() int {
	return g.numEdges
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []NodeTuple {
	out := make([]NodeTuple, 0, g.nodes.Len())
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		out = append(out, NodeTuple{ID: p.Key, Attrs: p.Value.clone()})
	}
	return out
}

// Edges returns copies of all edges, grouped by source in node insertion
// order.
func (g *Graph) Edges() []EdgeTuple {
	out := make([]EdgeTuple, 0, g.numEdges)
	for n := g.nodes.Oldest(); n != nil; n = n.Next() {
		for p := g.succ[n.Key].Oldest(); p != nil; p = p.Next() {
			out = append(out, EdgeTuple{Src: n.Key, Dst: p.Key, Attrs: p.Value.clone()})
		}
	}
	return out
}

func (g *Graph) Successors(id int) []int {
	s, ok := g.succ[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, s.Len())
	for p := s.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

func (g *Graph) Predecessors(id int) []int {
	s, ok := g.pred[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, s.Len())
	for p := s.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// SearchNodes returns, in insertion order, the ids of all nodes whose
// attribute key equals value.
func (g *Graph) SearchNodes(key string, value any) []int {
	var out []int
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		v, ok := p.Value[key]
		if ok && reflect.DeepEqual(v, value) {
			out = append(out, p.Key)
		}
	}
	return out
}

// NodeAttribute returns the value of key for every node that has it, in
// insertion order.
func (g *Graph) NodeAttribute(key string) []NodeValue {
	var out []NodeValue
	for p := g.nodes.Oldest(); p != nil; p = p.Next() {
		if v, ok := p.Value[key]; ok {
			out = append(out, NodeValue{ID: p.Key, Value: v})
		}
	}
	return out
}

// DeleteNodeAttr removes key from node id and reports whether it was there.
func (g *Graph) DeleteNodeAttr(id int, key string) bool {
	attrs, ok := g.nodes.Get(id)
	if !ok {
		return false
	}
	if _, ok := attrs[key]; !ok {
		return false
	}
	delete(attrs, key)
	return true
}

// DeleteEdgeAttr removes key from edge src -> dst and reports whether it was
// there.
func (g *Graph) DeleteEdgeAttr(src, dst int, key string) bool {
	attrs, ok := g.Edge(src, dst)
	if !ok {
		return false
	}
	if _, ok := attrs[key]; !ok {
		return false
	}
	delete(attrs, key)
	return true
}

// Copy returns a deep copy of the graph, contraction provenance included.
func (g *Graph) Copy() *Graph {
	c := New()
	c.implicitNodes = g.implicitNodes
	c.AddNodesFrom(g.Nodes())
	for _, e := range g.Edges() {
		c.addEdge(e.Src, e.Dst, e.Attrs)
	}
	for id, merged := range g.nodeContraction {
		c.nodeContraction[id] = cloneContractedNodes(merged)
	}
	for key, merged := range g.edgeContraction {
		c.edgeContraction[key] = cloneContractedEdges(merged)
	}
	return c
}
