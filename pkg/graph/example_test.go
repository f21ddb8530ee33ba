package graph_test

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/osmplot/osmplot/pkg/graph"
)

// Build a two-segment network with a pair of parallel edges and extract
// the edge table for a route through it.
func ExampleRouteTable() {
	g := graph.New()
	g.AddNode(graph.Node{ID: 100, Point: orb.Point{13.40, 52.52}})
	g.AddNode(graph.Node{ID: 200, Point: orb.Point{13.41, 52.53}})
	g.AddNode(graph.Node{ID: 300, Point: orb.Point{13.42, 52.54}})

	// Two parallel edges from 100 to 200; the route picks the shorter one.
	g.AddEdge(graph.Edge{From: 100, To: 200, Key: -1, Attrs: graph.Attrs{"length": 120.0}})
	g.AddEdge(graph.Edge{From: 100, To: 200, Key: -1, Attrs: graph.Attrs{"length": 80.0}})
	g.AddEdge(graph.Edge{From: 200, To: 300, Key: -1, Attrs: graph.Attrs{"length": 50.0}})

	rows, err := graph.RouteTable(g, []graph.NodeID{100, 200, 300})
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, row := range rows {
		fmt.Printf("(%d, %d, %d) length=%v\n", row.From, row.To, row.Key, row.Attrs["length"])
	}
	// Output:
	// (100, 200, 1) length=80
	// (200, 300, 0) length=50
}
