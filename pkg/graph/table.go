package graph

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
)

var (
	// ErrNoRouteEdge is returned by [RouteTable] when a consecutive node
	// pair in the route has no edge in the graph.
	ErrNoRouteEdge = errors.New("graph: no edge between consecutive route nodes")

	// ErrMissingLength is returned by [RouteTable] when a candidate parallel
	// edge has no numeric "length" attribute to compare on.
	ErrMissingLength = errors.New("graph: edge has no numeric length attribute")
)

// Row is one entry of the edge table: a single edge's endpoints,
// parallel-edge key, linear geometry, and attribute set. Rows are a
// read-only view derived from the graph at call time; the Geometry and
// Attrs fields are shared with the graph, not copied.
type Row struct {
	From     NodeID
	To       NodeID
	Key      int
	Geometry orb.LineString
	Attrs    Attrs
}

// Table converts the graph's edges into a table of linear geometries plus
// attributes, one row per edge in insertion order.
//
// An edge with an empty geometry gets a synthesized two-point straight line
// between its endpoint node positions.
func Table(g *Graph) []Row {
	rows := make([]Row, len(g.edges))
	for i, e := range g.edges {
		rows[i] = rowFor(g, e)
	}
	return rows
}

// RouteTable builds the edge table restricted to a route, expressed as an
// ordered sequence of node IDs. For each consecutive pair (u, v) the
// minimum-length parallel edge is selected; equal lengths resolve to the
// lowest parallel-edge key. Row order follows route order.
//
// A route of fewer than two nodes yields an empty table. Returns an error
// wrapping ErrNoRouteEdge when a pair has no edge, or ErrMissingLength when
// a candidate edge cannot be compared.
func RouteTable(g *Graph, route []NodeID) ([]Row, error) {
	if len(route) < 2 {
		return nil, nil
	}
	rows := make([]Row, 0, len(route)-1)
	for i := 0; i < len(route)-1; i++ {
		u, v := route[i], route[i+1]
		e, err := minLengthEdge(g, u, v)
		if err != nil {
			return nil, err
		}
		rows = append(rows, rowFor(g, e))
	}
	return rows, nil
}

// minLengthEdge picks the shortest parallel edge from u to v.
// EdgesBetween returns candidates in ascending key order and the strict
// comparison keeps the first minimum, so ties resolve to the lowest key.
func minLengthEdge(g *Graph, u, v NodeID) (*Edge, error) {
	candidates := g.EdgesBetween(u, v)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("route pair (%d, %d): %w", u, v, ErrNoRouteEdge)
	}

	var best *Edge
	var bestLength float64
	for _, e := range candidates {
		length, ok := e.Length()
		if !ok {
			return nil, fmt.Errorf("edge (%d, %d, %d): %w", e.From, e.To, e.Key, ErrMissingLength)
		}
		if best == nil || length < bestLength {
			best = e
			bestLength = length
		}
	}
	return best, nil
}

func rowFor(g *Graph, e *Edge) Row {
	row := Row{From: e.From, To: e.To, Key: e.Key, Geometry: e.Geometry, Attrs: e.Attrs}
	if len(row.Geometry) == 0 {
		from := g.nodes[e.From]
		to := g.nodes[e.To]
		row.Geometry = orb.LineString{from.Point, to.Point}
	}
	return row
}
