package webmap

import (
	"encoding/hex"
	"io"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/osmplot/osmplot/pkg/observability"
)

// Layer is a drawable child of a [Map] or [FeatureGroup].
type Layer interface {
	// ID returns the unique element identifier used in the rendered document.
	ID() string
}

// Container is a plot target: either a top-level *Map or a *FeatureGroup
// sub-layer. Layers are appended in call order and rendered in that order.
type Container interface {
	Add(layers ...Layer)
	Layers() []Layer
}

// Option configures a Map before creation.
type Option func(*Map)

// WithCenter sets the initial viewport center in (lat, lon) order.
func WithCenter(lat, lon float64) Option {
	return func(m *Map) { m.center = [2]float64{lat, lon} }
}

// WithZoom sets the initial zoom level.
func WithZoom(zoom int) Option {
	return func(m *Map) { m.zoom = zoom }
}

// WithTiles sets the tileset by registry name or raw URL template.
// See [Tileset] for resolution rules.
func WithTiles(name string) Option {
	return func(m *Map) { m.tiles = name }
}

// Map is one interactive web map instance: a viewport plus an ordered set
// of child layers. Center, zoom, and tileset are fixed at creation;
// [Map.FitBounds] overrides the visible viewport afterwards without
// touching the stored center and zoom.
//
// Map is mutated in place by Add and FitBounds and must not be shared
// across goroutines while a plot call is in progress.
type Map struct {
	id     string
	center [2]float64 // (lat, lon)
	zoom   int
	tiles  string
	layers []Layer

	bounds    [2][2]float64 // (southwest, northeast), each (lat, lon)
	hasBounds bool
}

// New creates a map centered at (0, 0) with zoom 1 and the default
// tileset, then applies opts in order.
func New(opts ...Option) *Map {
	m := &Map{id: elementID("map"), zoom: 1, tiles: DefaultTiles}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the map's document element identifier.
func (m *Map) ID() string { return m.id }

// Center returns the stored viewport center in (lat, lon) order.
func (m *Map) Center() (lat, lon float64) { return m.center[0], m.center[1] }

// Zoom returns the stored initial zoom level.
func (m *Map) Zoom() int { return m.zoom }

// Tiles returns the tileset name or URL template the map was created with.
func (m *Map) Tiles() string { return m.tiles }

// Add appends child layers to the map.
func (m *Map) Add(layers ...Layer) { m.layers = append(m.layers, layers...) }

// Layers returns a copy of the child layer slice in render order.
func (m *Map) Layers() []Layer { return slices.Clone(m.layers) }

// FitBounds records a viewport override so the rendered map exactly
// contains the rectangle spanned by the southwest and northeast corners,
// both in (lat, lon) order. The stored center and zoom are unaffected.
func (m *Map) FitBounds(sw, ne [2]float64) {
	m.bounds = [2][2]float64{sw, ne}
	m.hasBounds = true
}

// Bounds returns the recorded fit-bounds rectangle, if any.
func (m *Map) Bounds() ([2][2]float64, bool) { return m.bounds, m.hasBounds }

// HTML renders the map as a self-contained HTML document using the
// registered renderer. Fails with [ErrRendererUnavailable] when none has
// been registered.
func (m *Map) HTML() ([]byte, error) {
	r, err := current()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	observability.Render().OnRenderStart(m.id, len(m.layers))
	data, err := r.RenderHTML(m)
	observability.Render().OnRenderComplete(m.id, len(data), time.Since(start), err)
	return data, err
}

// WriteHTML renders the map and writes the document to w.
func (m *Map) WriteHTML(w io.Writer) error {
	data, err := m.HTML()
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// FeatureGroup is a named sub-layer grouping child layers so they can be
// toggled or accumulated as a unit. It is a valid plot target but never a
// bounds-fitting target; only top-level maps control the viewport.
type FeatureGroup struct {
	id     string
	name   string
	layers []Layer
}

// NewFeatureGroup creates an empty feature group with a display name.
func NewFeatureGroup(name string) *FeatureGroup {
	return &FeatureGroup{id: elementID("feature_group"), name: name}
}

// ID returns the group's document element identifier.
func (g *FeatureGroup) ID() string { return g.id }

// Name returns the group's display name.
func (g *FeatureGroup) Name() string { return g.name }

// Add appends child layers to the group.
func (g *FeatureGroup) Add(layers ...Layer) { g.layers = append(g.layers, layers...) }

// Layers returns a copy of the child layer slice in render order.
func (g *FeatureGroup) Layers() []Layer { return slices.Clone(g.layers) }

// elementID generates a document-unique identifier in the
// "<kind>_<uuid hex>" convention used for map element variable names.
func elementID(kind string) string {
	u := uuid.New()
	return kind + "_" + hex.EncodeToString(u[:])[:12]
}
