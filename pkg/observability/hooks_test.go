package observability

import (
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	p := NoopPlotHooks{}
	p.OnPlotStart("graph", 100)
	p.OnPlotComplete("graph", 100, time.Second, nil)

	r := NoopRenderHooks{}
	r.OnRenderStart("map_0123456789ab", 3)
	r.OnRenderComplete("map_0123456789ab", 2048, time.Second, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Plot().(NoopPlotHooks); !ok {
		t.Error("Plot() should return NoopPlotHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}

	// Set custom hooks
	customPlot := &testPlotHooks{}
	SetPlotHooks(customPlot)
	if Plot() != customPlot {
		t.Error("SetPlotHooks should set custom hooks")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != customRender {
		t.Error("SetRenderHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Plot().(NoopPlotHooks); !ok {
		t.Error("Reset() should restore NoopPlotHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPlotHooks{}
	SetPlotHooks(custom)

	// Setting nil should be ignored
	SetPlotHooks(nil)

	if Plot() != custom {
		t.Error("SetPlotHooks(nil) should be ignored")
	}

	Reset()
}

// Test implementations
type testPlotHooks struct{ NoopPlotHooks }
type testRenderHooks struct{ NoopRenderHooks }
