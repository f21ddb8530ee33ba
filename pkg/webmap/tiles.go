package webmap

import "strings"

// DefaultTiles is the tileset used when none is configured.
const DefaultTiles = "cartodbpositron"

// TileProvider describes one basemap tileset: a slippy-map URL template
// plus the attribution the provider requires.
type TileProvider struct {
	Name        string
	URL         string
	Attribution string
	MaxZoom     int
}

const osmAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`

const cartoAttribution = osmAttribution + ` &copy; <a href="https://carto.com/attributions">CARTO</a>`

// Built-in tilesets, keyed by registry name.
var tileProviders = map[string]TileProvider{
	"cartodbpositron": {
		URL:         "https://{s}.basemaps.cartocdn.com/light_all/{z}/{x}/{y}{r}.png",
		Attribution: cartoAttribution,
		MaxZoom:     20,
	},
	"cartodbdark_matter": {
		URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}{r}.png",
		Attribution: cartoAttribution,
		MaxZoom:     20,
	},
	"openstreetmap": {
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: osmAttribution,
		MaxZoom:     19,
	},
}

// Tileset resolves a tileset identifier to a provider. Registry names map
// to the built-in providers above; a string containing a "{z}" placeholder
// is treated as a raw URL template with no attribution. Anything else
// reports false.
func Tileset(name string) (TileProvider, bool) {
	if p, ok := tileProviders[name]; ok {
		p.Name = name
		return p, true
	}
	if strings.Contains(name, "{z}") {
		return TileProvider{Name: "custom", URL: name, MaxZoom: 19}, true
	}
	return TileProvider{}, false
}
