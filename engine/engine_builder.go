package engine

import (
	"github.com/Carmen-Shannon/orrery/engine/renderer"
	"github.com/Carmen-Shannon/orrery/engine/simulation"
	"github.com/Carmen-Shannon/orrery/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the loop frequency in Hz. Values <= 0 select DefaultTickRate (62.5 Hz).
//
// Parameters:
//   - hz: target iterations per second
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(hz float64) EngineBuilderOption {
	return func(e *engine) {
		e.tickRate = tickPeriod(hz)
	}
}

// WithWindow sets the window polled for input each iteration.
//
// Parameters:
//   - w: an open Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets the renderer each frame is drawn with.
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithClock sets the clock advanced by one tick per iteration.
func WithClock(c simulation.Clock) EngineBuilderOption {
	return func(e *engine) {
		e.clock = c
	}
}

// WithFrameSource sets where frame snapshots come from. A scene.Scene is the usual source.
func WithFrameSource(s FrameSource) EngineBuilderOption {
	return func(e *engine) {
		e.source = s
	}
}
