// Package pkg provides the core libraries for osmplot web map rendering.
//
// # Overview
//
// osmplot turns street network graphs into interactive Leaflet web maps.
// The pkg directory is organized into four main areas:
//
//  1. [graph] - Street network model and edge-table extraction
//  2. [webmap] - Map view object model (maps, polylines, popups, tilesets)
//  3. [plot] - Public plotting entry points (graph-wide and route plots)
//  4. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through osmplot:
//
//	Street network graph
//	         ↓
//	    [graph] package (edge table, route edge selection)
//	         ↓
//	    [plot] package (centroid, polylines, popups, bounds)
//	         ↓
//	    [webmap] package (map object graph)
//	         ↓
//	    [webmap/leaflet] package (HTML document)
//
// # Quick Start
//
// Plot a graph and save the web map:
//
//	import (
//	    "os"
//
//	    "github.com/osmplot/osmplot/pkg/graph"
//	    "github.com/osmplot/osmplot/pkg/plot"
//	    "github.com/osmplot/osmplot/pkg/webmap"
//	    _ "github.com/osmplot/osmplot/pkg/webmap/leaflet"
//	)
//
//	// 1. Build (or import) the street network
//	g := graph.New()
//	// ... AddNode / AddEdge ...
//
//	// 2. Plot every edge with click popups
//	m, err := plot.GraphMap(g, plot.WithPopupAttribute("name"))
//
//	// 3. Write the Leaflet document
//	err = m.(*webmap.Map).WriteHTML(os.Stdout)
//
// [graph]: https://pkg.go.dev/github.com/osmplot/osmplot/pkg/graph
// [webmap]: https://pkg.go.dev/github.com/osmplot/osmplot/pkg/webmap
// [webmap/leaflet]: https://pkg.go.dev/github.com/osmplot/osmplot/pkg/webmap/leaflet
// [plot]: https://pkg.go.dev/github.com/osmplot/osmplot/pkg/plot
// [observability]: https://pkg.go.dev/github.com/osmplot/osmplot/pkg/observability
package pkg
