// Package webmap models an interactive web map as an in-memory object
// graph: a [Map] with a viewport (center, zoom, tileset) and an ordered
// set of child layers such as [Polyline] and [FeatureGroup].
//
// The package deliberately knows nothing about HTML. Turning a map into a
// document is the job of a [Renderer], registered at process start the way
// database/sql drivers are:
//
//	import (
//	    "github.com/osmplot/osmplot/pkg/webmap"
//	    _ "github.com/osmplot/osmplot/pkg/webmap/leaflet"
//	)
//
//	m := webmap.New(webmap.WithCenter(52.52, 13.405), webmap.WithZoom(12))
//	html, err := m.HTML()
//
// When no renderer has been registered, [Available] and every render call
// fail with [ErrRendererUnavailable]. This keeps "rendering unavailable"
// distinguishable from bad input at every entry point that needs it.
package webmap
