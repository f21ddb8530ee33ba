// Package plot renders street network graphs and routes as interactive
// Leaflet web maps.
//
// The two entry points mirror each other: [GraphMap] draws every edge of a
// graph, [RouteMap] draws the edges traversed by an ordered node sequence.
// Both return the map view they drew on - a fresh [webmap.Map] centered on
// the plotted geometry, or the caller-supplied target when accumulating
// layers on an existing map:
//
//	m, err := plot.GraphMap(g, plot.WithPopupAttribute("name"))
//	if err != nil {
//	    return err
//	}
//	_, err = plot.RouteMap(g, route, plot.WithTarget(m))
//
// Rendering requires a registered webmap renderer (see package
// webmap/leaflet); both entry points fail with ErrCodeRendererUnavailable
// before touching any geometry when none is present.
//
// Note that anything larger than a small city can produce a large web map
// document that is slow to render in the browser.
package plot

import (
	"encoding/json"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/osmplot/osmplot/pkg/errors"
	"github.com/osmplot/osmplot/pkg/graph"
	"github.com/osmplot/osmplot/pkg/observability"
	"github.com/osmplot/osmplot/pkg/webmap"
)

// GraphMap plots every edge of g as a styled polyline on a web map and
// returns the map view. With no WithTarget option a fresh map is created,
// centered on the centroid of the graph's geometry and fitted to its
// bounding box.
func GraphMap(g *graph.Graph, opts ...Option) (webmap.Container, error) {
	cfg := newConfig(DefaultEdgeColor, opts)
	if err := webmap.Available(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererUnavailable, err, "cannot plot graph")
	}
	return assemble("graph", graph.Table(g), cfg)
}

// RouteMap plots a route - an ordered sequence of node IDs - as styled
// polylines, one per consecutive node pair, picking the minimum-length
// parallel edge for each pair. Routes of fewer than two nodes draw zero
// edges. Route lookup errors from the graph are returned untranslated.
func RouteMap(g *graph.Graph, route []graph.NodeID, opts ...Option) (webmap.Container, error) {
	cfg := newConfig(DefaultRouteColor, opts)
	if err := webmap.Available(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRendererUnavailable, err, "cannot plot route")
	}
	rows, err := graph.RouteTable(g, route)
	if err != nil {
		return nil, err
	}
	return assemble("route", rows, cfg)
}

func assemble(kind string, rows []graph.Row, cfg config) (webmap.Container, error) {
	start := time.Now()
	observability.Plot().OnPlotStart(kind, len(rows))
	target, err := assembleLayers(rows, cfg)
	observability.Plot().OnPlotComplete(kind, len(rows), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	if cfg.logger != nil {
		cfg.logger.Debug("plotted edges", "kind", kind, "count", len(rows),
			"elapsed", time.Since(start).Round(time.Millisecond))
	}
	return target, nil
}

func assembleLayers(rows []graph.Row, cfg config) (webmap.Container, error) {
	target := cfg.target
	if target == nil {
		lat, lon := centroid(rows)
		target = webmap.New(
			webmap.WithCenter(lat, lon),
			webmap.WithZoom(cfg.zoom),
			webmap.WithTiles(cfg.tiles),
		)
	}

	for _, row := range rows {
		pl, err := polyline(row, cfg)
		if err != nil {
			return nil, err
		}
		target.Add(pl)
	}

	// Only a top-level map has a viewport to fit; feature groups and empty
	// tables leave the view as-is.
	if cfg.fitBounds && len(rows) > 0 {
		if m, ok := target.(*webmap.Map); ok {
			sw, ne := bounds(rows)
			m.FitBounds(sw, ne)
		}
	}
	return target, nil
}

// polyline converts one table row into a styled polyline, reversing each
// coordinate pair from the geometry's (lon, lat) into the renderer's
// (lat, lon) order. The point sequence itself is never reversed.
func polyline(row graph.Row, cfg config) (*webmap.Polyline, error) {
	locations := make([][2]float64, len(row.Geometry))
	for i, pt := range row.Geometry {
		locations[i] = [2]float64{pt.Lat(), pt.Lon()}
	}

	pl := webmap.NewPolyline(locations)
	pl.Color = cfg.color
	pl.Weight = cfg.width
	pl.Opacity = cfg.opacity
	pl.Extra = cfg.style

	if cfg.popupAttribute != "" {
		value, ok := row.Attrs[cfg.popupAttribute]
		if !ok {
			return nil, errors.New(errors.ErrCodeAttributeNotFound,
				"edge (%d, %d, %d) has no attribute %q", row.From, row.To, row.Key, cfg.popupAttribute)
		}
		// The popup renderer does not interpret markup, so the value is
		// carried as a JSON-encoded text payload with newlines pre-escaped.
		payload, err := json.Marshal(value)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err,
				"encode popup value for edge (%d, %d, %d)", row.From, row.To, row.Key)
		}
		pl.Popup = webmap.NewPopup(string(payload))
	}
	return pl, nil
}

// centroid returns the (lat, lon) centroid of the union of all row
// geometries. An empty table centers at the origin.
func centroid(rows []graph.Row) (lat, lon float64) {
	if len(rows) == 0 {
		return 0, 0
	}
	union := make(orb.MultiLineString, len(rows))
	for i, row := range rows {
		union[i] = row.Geometry
	}
	center, _ := planar.CentroidArea(union)
	return center.Lat(), center.Lon()
}

// bounds returns the (southwest, northeast) corners of the bounding box
// over all row geometries, each in (lat, lon) order.
func bounds(rows []graph.Row) (sw, ne [2]float64) {
	b := rows[0].Geometry.Bound()
	for _, row := range rows[1:] {
		b = b.Union(row.Geometry.Bound())
	}
	return [2]float64{b.Min.Lat(), b.Min.Lon()}, [2]float64{b.Max.Lat(), b.Max.Lon()}
}
