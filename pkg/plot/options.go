package plot

import (
	"github.com/charmbracelet/log"

	"github.com/osmplot/osmplot/pkg/webmap"
)

// Defaults shared by both entry points; the line color default differs
// between graph and route plots.
const (
	DefaultZoom       = 1
	DefaultEdgeColor  = "#333333"
	DefaultRouteColor = "#cc0000"
	DefaultWidth      = 5.0
	DefaultOpacity    = 1.0
)

// Option configures a plot call.
type Option func(*config)

type config struct {
	target         webmap.Container
	popupAttribute string
	tiles          string
	zoom           int
	fitBounds      bool
	color          string
	width          float64
	opacity        float64
	style          webmap.StyleOptions
	logger         *log.Logger
}

func newConfig(color string, opts []Option) config {
	cfg := config{
		tiles:     webmap.DefaultTiles,
		zoom:      DefaultZoom,
		fitBounds: true,
		color:     color,
		width:     DefaultWidth,
		opacity:   DefaultOpacity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTarget plots onto an existing map or feature group instead of
// creating a fresh map. The target is mutated in place and returned by
// the plot call; its center and zoom are never recomputed.
func WithTarget(c webmap.Container) Option {
	return func(cfg *config) { cfg.target = c }
}

// WithPopupAttribute shows the named edge attribute in a pop-up when a
// drawn line is clicked. Every plotted edge must carry the attribute.
func WithPopupAttribute(name string) Option {
	return func(cfg *config) { cfg.popupAttribute = name }
}

// WithTiles sets the tileset for a freshly created map.
func WithTiles(name string) Option {
	return func(cfg *config) { cfg.tiles = name }
}

// WithZoom sets the initial zoom level for a freshly created map.
func WithZoom(zoom int) Option {
	return func(cfg *config) { cfg.zoom = zoom }
}

// WithFitBounds controls whether the viewport is fitted to the plotted
// geometry. Defaults to true; only top-level maps are ever fitted.
func WithFitBounds(fit bool) Option {
	return func(cfg *config) { cfg.fitBounds = fit }
}

// WithColor sets the line color.
func WithColor(color string) Option {
	return func(cfg *config) { cfg.color = color }
}

// WithWidth sets the line width.
func WithWidth(width float64) Option {
	return func(cfg *config) { cfg.width = width }
}

// WithOpacity sets the line opacity.
func WithOpacity(opacity float64) Option {
	return func(cfg *config) { cfg.opacity = opacity }
}

// WithStyle forwards an extra style option verbatim to the rendering
// layer's polyline construction call. No validation is performed on the
// key or value.
func WithStyle(key string, value any) Option {
	return func(cfg *config) {
		if cfg.style == nil {
			cfg.style = webmap.StyleOptions{}
		}
		cfg.style[key] = value
	}
}

// WithLogger enables debug logging of plot progress.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}
