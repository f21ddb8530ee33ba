package webmap

// StyleOptions is an open-ended mapping of renderer option names to values,
// forwarded verbatim to the rendering layer's construction call. The core
// makes no claims about which keys are valid.
type StyleOptions map[string]any

// Polyline is a styled line layer. Locations are in (lat, lon) order -
// note this is the reverse of the (lon, lat) convention geometries use.
//
// No geometry validation is performed; zero-point or degenerate location
// lists are passed through to the renderer unchanged.
type Polyline struct {
	id        string
	Locations [][2]float64
	Color     string
	Weight    float64
	Opacity   float64
	Popup     *Popup
	Extra     StyleOptions
}

// NewPolyline creates a polyline over the given (lat, lon) locations.
// Styling fields are left for the caller to fill in.
func NewPolyline(locations [][2]float64) *Polyline {
	return &Polyline{id: elementID("poly_line"), Locations: locations}
}

// ID returns the polyline's document element identifier.
func (p *Polyline) ID() string { return p.id }

// Popup is a text payload shown when its parent layer is clicked.
// The renderer does not interpret markup, so callers that need literal
// newlines or quoting must pre-escape the payload into HTML, e.g. via a
// lossless textual encoding such as JSON.
type Popup struct {
	HTML string
}

// NewPopup creates a popup carrying the given payload.
func NewPopup(html string) *Popup { return &Popup{HTML: html} }
