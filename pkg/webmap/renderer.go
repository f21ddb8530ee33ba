package webmap

import (
	"errors"
	"sync"
)

// ErrRendererUnavailable is returned by [Available] and the render methods
// when no renderer has been registered. Import a renderer package such as
// pkg/webmap/leaflet for its side effect to make rendering available.
var ErrRendererUnavailable = errors.New("webmap: no renderer registered")

// Renderer turns a map object graph into a self-contained HTML document.
type Renderer interface {
	RenderHTML(m *Map) ([]byte, error)
}

var (
	rendererMu sync.RWMutex
	renderer   Renderer
)

// Register installs r as the process-wide renderer. It is typically called
// from a renderer package's init function, mirroring the database/sql
// driver registration pattern. A nil renderer is ignored.
func Register(r Renderer) {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if r != nil {
		renderer = r
	}
}

// Available reports whether a renderer has been registered, returning
// ErrRendererUnavailable when rendering cannot work. Entry points that
// build maps call this first so "feature unavailable" is distinguishable
// from bad input.
func Available() error {
	rendererMu.RLock()
	defer rendererMu.RUnlock()
	if renderer == nil {
		return ErrRendererUnavailable
	}
	return nil
}

// Reset removes the registered renderer.
// This is primarily useful for testing.
func Reset() {
	rendererMu.Lock()
	defer rendererMu.Unlock()
	renderer = nil
}

func current() (Renderer, error) {
	rendererMu.RLock()
	defer rendererMu.RUnlock()
	if renderer == nil {
		return nil, ErrRendererUnavailable
	}
	return renderer, nil
}
