package graph

import (
	"errors"
	"slices"

	"github.com/paulmach/orb"
)

var (
	// ErrDuplicateNode is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph. Node IDs must be unique.
	ErrDuplicateNode = errors.New("graph: duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From node
	// does not exist in the graph.
	ErrUnknownSourceNode = errors.New("graph: unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To node
	// does not exist in the graph.
	ErrUnknownTargetNode = errors.New("graph: unknown target node")

	// ErrDuplicateEdgeKey is returned by [Graph.AddEdge] when an explicit
	// parallel-edge key is already in use for the same (From, To) pair.
	ErrDuplicateEdgeKey = errors.New("graph: duplicate parallel-edge key")
)

// NodeID identifies a node in the street network. Values follow the OSM
// node ID convention.
type NodeID int64

// Attrs stores arbitrary key-value pairs attached to nodes or edges.
// Edge attribute sets conventionally carry a numeric "length" used to
// pick among parallel edges when plotting routes. Attrs maps are never
// nil after a node or edge has been added to a graph.
type Attrs map[string]any

// Node represents an intersection or dead end in the street network.
// Point holds the node's position in (lon, lat) order.
type Node struct {
	ID    NodeID
	Point orb.Point
	Attrs Attrs
}

// Edge represents one directed street segment between two nodes.
//
// Parallel edges between the same ordered (From, To) pair are distinguished
// by Key. Geometry holds the segment's linear geometry in (lon, lat) order;
// an empty geometry means the segment is a straight line between its
// endpoint nodes (the table extractor synthesizes it on demand).
type Edge struct {
	From     NodeID
	To       NodeID
	Key      int
	Geometry orb.LineString
	Attrs    Attrs
}

// Length returns the edge's "length" attribute as a float64.
// It reports false when the attribute is absent or not numeric.
func (e *Edge) Length() (float64, bool) {
	switch v := e.Attrs["length"].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// Graph is a directed multigraph of street segments.
//
// Edges preserve insertion order, which is also the iteration order of the
// edge-table extractor. The zero value is not usable - use New.
// Graph is not safe for concurrent mutation; see the plotting contract in
// package plot.
type Graph struct {
	nodes map[NodeID]*Node
	edges []*Edge

	// adjacency[(from)Node.ID][(to)Node.ID][Edge.Key] = edge
	adjacency map[NodeID]map[NodeID]map[int]*Edge
}

// New creates an empty street network graph.
func New() *Graph {
	return &Graph{
		nodes:     make(map[NodeID]*Node),
		adjacency: make(map[NodeID]map[NodeID]map[int]*Edge),
	}
}

// AddNode adds a node to the graph.
// Returns ErrDuplicateNode if a node with the same ID already exists.
// The node's Attrs field is automatically initialized to an empty map if nil.
func (g *Graph) AddNode(n Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	node := &n
	g.nodes[node.ID] = node
	return nil
}

// AddEdge adds a directed edge between two existing nodes and returns its
// parallel-edge key. A negative e.Key requests automatic assignment of the
// smallest unused key for the (From, To) pair; a non-negative key is used
// as-is and must not collide with an existing parallel edge.
//
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode when an endpoint is
// missing, and ErrDuplicateEdgeKey on key collision. The edge's Attrs field
// is automatically initialized to an empty map if nil.
func (g *Graph) AddEdge(e Edge) (int, error) {
	if _, ok := g.nodes[e.From]; !ok {
		return 0, ErrUnknownSourceNode
	}
	if _, ok := g.nodes[e.To]; !ok {
		return 0, ErrUnknownTargetNode
	}

	parallel := g.adjacency[e.From][e.To]
	if e.Key < 0 {
		e.Key = 0
		for {
			if _, used := parallel[e.Key]; !used {
				break
			}
			e.Key++
		}
	} else if _, used := parallel[e.Key]; used {
		return 0, ErrDuplicateEdgeKey
	}

	if e.Attrs == nil {
		e.Attrs = Attrs{}
	}
	edge := &e
	g.edges = append(g.edges, edge)
	if g.adjacency[e.From] == nil {
		g.adjacency[e.From] = make(map[NodeID]map[int]*Edge)
	}
	if g.adjacency[e.From][e.To] == nil {
		g.adjacency[e.From][e.To] = make(map[int]*Edge)
	}
	g.adjacency[e.From][e.To][edge.Key] = edge
	return edge.Key, nil
}

// Node returns the node with the given ID and true, or nil and false if not
// found. The returned pointer refers to the actual node in the graph.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in the graph. The order is not guaranteed.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	return nodes
}

// Edges returns a copy of the edge slice in insertion order.
// The edge structs themselves are shared with the graph.
func (g *Graph) Edges() []*Edge { return slices.Clone(g.edges) }

// EdgesBetween returns all parallel edges from u to v in ascending key
// order. Returns nil when no edge connects the pair.
func (g *Graph) EdgesBetween(u, v NodeID) []*Edge {
	parallel := g.adjacency[u][v]
	if len(parallel) == 0 {
		return nil
	}
	edges := make([]*Edge, 0, len(parallel))
	for _, e := range parallel {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, func(a, b *Edge) int { return a.Key - b.Key })
	return edges
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
