package graph

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
)

// testNetwork builds a small network with one pair of parallel edges:
//
//	1 --(key 0, len 30)--> 2 --(key 0, len 10)--> 3
//	       (key 1, len 20)
func testNetwork(t *testing.T) *Graph {
	t.Helper()
	g := New()
	nodes := []Node{
		{ID: 1, Point: orb.Point{13.40, 52.52}},
		{ID: 2, Point: orb.Point{13.41, 52.53}},
		{ID: 3, Point: orb.Point{13.42, 52.54}},
	}
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%d): %v", n.ID, err)
		}
	}

	edges := []Edge{
		{From: 1, To: 2, Attrs: Attrs{"length": 30.0, "name": "Lange Straße"},
			Geometry: orb.LineString{{13.40, 52.52}, {13.405, 52.526}, {13.41, 52.53}}},
		{From: 1, To: 2, Attrs: Attrs{"length": 20.0, "name": "Kurze Straße"},
			Geometry: orb.LineString{{13.40, 52.52}, {13.41, 52.53}}},
		{From: 2, To: 3, Attrs: Attrs{"length": 10.0, "name": "Endstraße"}},
	}
	for _, e := range edges {
		e.Key = -1
		if _, err := g.AddEdge(e); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", e.From, e.To, err)
		}
	}
	return g
}

func TestTable(t *testing.T) {
	g := testNetwork(t)
	rows := Table(g)

	if len(rows) != g.EdgeCount() {
		t.Fatalf("len(rows) = %d, want %d", len(rows), g.EdgeCount())
	}

	// Row 0 keeps the edge's own geometry.
	if len(rows[0].Geometry) != 3 {
		t.Errorf("row 0 geometry has %d points, want 3", len(rows[0].Geometry))
	}

	// Row 2's edge has no geometry: a straight line between the endpoint
	// nodes is synthesized.
	want := orb.LineString{{13.41, 52.53}, {13.42, 52.54}}
	if len(rows[2].Geometry) != 2 {
		t.Fatalf("row 2 geometry has %d points, want 2", len(rows[2].Geometry))
	}
	for i, pt := range rows[2].Geometry {
		if pt != want[i] {
			t.Errorf("row 2 point %d = %v, want %v", i, pt, want[i])
		}
	}
}

func TestRouteTable(t *testing.T) {
	g := testNetwork(t)

	rows, err := RouteTable(g, []NodeID{1, 2, 3})
	if err != nil {
		t.Fatalf("RouteTable: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// The (1, 2) pair has parallel edges; the shorter key-1 edge wins.
	if rows[0].From != 1 || rows[0].To != 2 || rows[0].Key != 1 {
		t.Errorf("row 0 = (%d, %d, %d), want (1, 2, 1)", rows[0].From, rows[0].To, rows[0].Key)
	}
	if rows[1].From != 2 || rows[1].To != 3 || rows[1].Key != 0 {
		t.Errorf("row 1 = (%d, %d, %d), want (2, 3, 0)", rows[1].From, rows[1].To, rows[1].Key)
	}
}

func TestRouteTableTieBreaksToLowestKey(t *testing.T) {
	g := New()
	g.AddNode(Node{ID: 1})
	g.AddNode(Node{ID: 2})
	g.AddEdge(Edge{From: 1, To: 2, Key: 4, Attrs: Attrs{"length": 10.0}})
	g.AddEdge(Edge{From: 1, To: 2, Key: 2, Attrs: Attrs{"length": 10.0}})

	rows, err := RouteTable(g, []NodeID{1, 2})
	if err != nil {
		t.Fatalf("RouteTable: %v", err)
	}
	if rows[0].Key != 2 {
		t.Errorf("tie resolved to key %d, want 2", rows[0].Key)
	}
}

func TestRouteTableShortRoutes(t *testing.T) {
	g := testNetwork(t)

	for _, route := range [][]NodeID{nil, {}, {1}} {
		rows, err := RouteTable(g, route)
		if err != nil {
			t.Errorf("RouteTable(%v) error = %v, want nil", route, err)
		}
		if len(rows) != 0 {
			t.Errorf("RouteTable(%v) = %d rows, want 0", route, len(rows))
		}
	}
}

func TestRouteTableErrors(t *testing.T) {
	g := testNetwork(t)

	if _, err := RouteTable(g, []NodeID{3, 1}); !errors.Is(err, ErrNoRouteEdge) {
		t.Errorf("missing pair error = %v, want ErrNoRouteEdge", err)
	}

	g.AddEdge(Edge{From: 3, To: 1, Key: -1}) // no length attribute
	if _, err := RouteTable(g, []NodeID{3, 1}); !errors.Is(err, ErrMissingLength) {
		t.Errorf("missing length error = %v, want ErrMissingLength", err)
	}
}

func TestGeoJSON(t *testing.T) {
	g := testNetwork(t)
	fc := GeoJSON(Table(g))

	if len(fc.Features) != g.EdgeCount() {
		t.Fatalf("len(Features) = %d, want %d", len(fc.Features), g.EdgeCount())
	}

	f := fc.Features[1]
	if got := f.Properties["u"]; got != int64(1) {
		t.Errorf(`Properties["u"] = %v, want 1`, got)
	}
	if got := f.Properties["key"]; got != 1 {
		t.Errorf(`Properties["key"] = %v, want 1`, got)
	}
	if got := f.Properties["name"]; got != "Kurze Straße" {
		t.Errorf(`Properties["name"] = %v, want "Kurze Straße"`, got)
	}
	if _, ok := f.Geometry.(orb.LineString); !ok {
		t.Errorf("Geometry type = %T, want orb.LineString", f.Geometry)
	}
}
