// Package leaflet emits webmap object graphs as self-contained Leaflet
// HTML documents.
//
// Importing this package for its side effect registers the emitter as the
// process-wide webmap renderer:
//
//	import _ "github.com/osmplot/osmplot/pkg/webmap/leaflet"
//
// Without such an import, rendering entry points fail with
// [webmap.ErrRendererUnavailable].
package leaflet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/osmplot/osmplot/pkg/errors"
	"github.com/osmplot/osmplot/pkg/webmap"
)

// Leaflet distribution pinned to a known-good release.
const (
	leafletCSS = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	leafletJS  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

const documentCSS = `
    html, body { margin: 0; padding: 0; height: 100%; }
    .webmap { position: absolute; top: 0; bottom: 0; width: 100%; }`

// Emitter renders a webmap.Map as a Leaflet HTML document.
// The zero value is ready to use.
type Emitter struct{}

func init() { webmap.Register(Emitter{}) }

// RenderHTML produces the full HTML document for m: Leaflet assets in the
// head, one map div, and a script that instantiates the map, its tile
// layer, and every child layer in order. Fails with ErrCodeUnknownTiles
// for an unresolvable tileset and ErrCodeUnsupported for layer types the
// emitter does not know.
func (Emitter) RenderHTML(m *webmap.Map) ([]byte, error) {
	tiles, ok := webmap.Tileset(m.Tiles())
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownTiles, "unknown tileset %q", m.Tiles())
	}

	var buf bytes.Buffer
	renderHead(&buf)
	fmt.Fprintf(&buf, "  <div id=%q class=\"webmap\"></div>\n", m.ID())
	buf.WriteString("  <script>\n")

	lat, lon := m.Center()
	fmt.Fprintf(&buf, "    var %s = L.map(%q).setView([%s, %s], %d);\n",
		m.ID(), m.ID(), num(lat), num(lon), m.Zoom())
	fmt.Fprintf(&buf, "    L.tileLayer(%q, {\"attribution\": %q, \"maxZoom\": %d}).addTo(%s);\n",
		tiles.URL, tiles.Attribution, tiles.MaxZoom, m.ID())

	if err := renderLayers(&buf, m.ID(), m.Layers()); err != nil {
		return nil, err
	}

	if b, ok := m.Bounds(); ok {
		fmt.Fprintf(&buf, "    %s.fitBounds([[%s, %s], [%s, %s]]);\n",
			m.ID(), num(b[0][0]), num(b[0][1]), num(b[1][0]), num(b[1][1]))
	}

	buf.WriteString("  </script>\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

func renderHead(buf *bytes.Buffer) {
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	buf.WriteString("  <meta charset=\"utf-8\">\n")
	buf.WriteString("  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	fmt.Fprintf(buf, "  <link rel=\"stylesheet\" href=%q>\n", leafletCSS)
	fmt.Fprintf(buf, "  <script src=%q></script>\n", leafletJS)
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", documentCSS)
	buf.WriteString("</head>\n<body>\n")
}

func renderLayers(buf *bytes.Buffer, parent string, layers []webmap.Layer) error {
	for _, l := range layers {
		switch v := l.(type) {
		case *webmap.Polyline:
			renderPolyline(buf, parent, v)
		case *webmap.FeatureGroup:
			fmt.Fprintf(buf, "    var %s = L.featureGroup().addTo(%s);\n", v.ID(), parent)
			if err := renderLayers(buf, v.ID(), v.Layers()); err != nil {
				return err
			}
		default:
			return errors.New(errors.ErrCodeUnsupported, "unsupported layer type %T", l)
		}
	}
	return nil
}

func renderPolyline(buf *bytes.Buffer, parent string, p *webmap.Polyline) {
	fmt.Fprintf(buf, "    var %s = L.polyline(%s, %s).addTo(%s);\n",
		p.ID(), locationsJS(p.Locations), optionsJS(p), parent)
	if p.Popup != nil {
		payload, _ := json.Marshal(p.Popup.HTML)
		fmt.Fprintf(buf, "    %s.bindPopup(%s);\n", p.ID(), payload)
	}
}

func locationsJS(locations [][2]float64) string {
	var b strings.Builder
	b.WriteString("[")
	for i, loc := range locations {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "[%s, %s]", num(loc[0]), num(loc[1]))
	}
	b.WriteString("]")
	return b.String()
}

// optionsJS serializes the polyline's style as a JS object literal with
// deterministic key order: the fixed color/weight/opacity triple first,
// then pass-through options sorted by name.
func optionsJS(p *webmap.Polyline) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{\"color\": %q, \"weight\": %s, \"opacity\": %s",
		p.Color, num(p.Weight), num(p.Opacity))

	keys := make([]string, 0, len(p.Extra))
	for k := range p.Extra {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		value, err := json.Marshal(p.Extra[k])
		if err != nil {
			// Unencodable pass-through values degrade to their Go string form.
			value, _ = json.Marshal(fmt.Sprint(p.Extra[k]))
		}
		fmt.Fprintf(&b, ", %q: %s", k, value)
	}
	b.WriteString("}")
	return b.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
