package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/orrery/engine/profiler"
	"github.com/Carmen-Shannon/orrery/engine/renderer"
	"github.com/Carmen-Shannon/orrery/engine/simulation"
	"github.com/Carmen-Shannon/orrery/engine/window"
)

// DefaultTickRate is the loop frequency in Hz, one frame every 16 ms.
const DefaultTickRate = 62.5

// FrameSource supplies the per-frame snapshot the renderer draws.
type FrameSource interface {
	// Update refreshes derived state, such as camera matrices, before a frame.
	Update()

	// Resize is called with the new surface size when the window changes size.
	Resize(width, height int)

	// Frame snapshots the current state together with the previous frame's metrics.
	Frame(metrics profiler.FrameMetrics) renderer.Frame
}

// engine implements the Engine interface.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window   window.Window
	renderer renderer.Renderer
	clock    simulation.Clock
	source   FrameSource

	metrics          profiler.FrameMetrics
	profiler         *profiler.Profiler
	profilingEnabled bool

	tickRate time.Duration
	running  atomic.Bool
}

// Engine drives the viewer: one fixed-period loop on the calling thread that
// polls input, advances the clock and renders.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Metrics returns the timing of the most recent frame.
	Metrics() profiler.FrameMetrics

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the loop frequency in Hz. Values <= 0 select DefaultTickRate.
	// Before Run it sets the initial period. While Run is active it may be called
	// from any goroutine and the change applies from the next tick.
	//
	// Parameters:
	//   - hz: target iterations per second
	SetTickRate(hz float64)

	// Run blocks until Quit is called, the window closes or a frame fails to render.
	// It must be called from the main thread.
	Run()

	// Quit asks Run to return. Safe to call multiple times and from any goroutine.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// The window's resize callback is wired to the renderer and the frame source.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		profiler:        profiler.NewProfiler(),
		tickRate:        tickPeriod(DefaultTickRate),
	}
	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if e.renderer != nil {
				e.renderer.Resize(width, height)
			}
			if e.source != nil {
				e.source.Resize(width, height)
			}
		})
	}
	return e
}

// tickPeriod converts a frequency to a period, falling back to DefaultTickRate.
func tickPeriod(hz float64) time.Duration {
	if hz <= 0 {
		hz = DefaultTickRate
	}
	return time.Duration(float64(time.Second) / hz)
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Metrics() profiler.FrameMetrics {
	return e.metrics
}

func (e *engine) Run() {
	if e.window == nil || e.renderer == nil || e.source == nil {
		log.Printf("[Engine] cannot run without a window, renderer and frame source")
		return
	}

	ticker := time.NewTicker(e.tickRate)
	defer ticker.Stop()

	e.running.Store(true)
	defer e.running.Store(false)

	for e.step() {
		// No catch-up: a slow frame only delays the next tick.
		select {
		case <-e.quitChannel:
			return
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
			e.tickRate = newRate
		case <-ticker.C:
		}
	}
}

// step runs one loop iteration and reports whether the loop should continue.
func (e *engine) step() bool {
	if e.quitRequested() || !e.window.PollEvents() {
		return false
	}
	// Input callbacks run inside PollEvents and may have asked to quit.
	if e.quitRequested() {
		return false
	}

	if e.clock != nil {
		e.clock.Tick(1)
	}
	e.source.Update()

	start := time.Now()
	err := e.renderer.RenderFrame(e.source.Frame(e.metrics))
	elapsed := time.Since(start)
	if err != nil {
		log.Printf("[Engine] render failed, stopping: %v", err)
		return false
	}

	e.metrics.Record(elapsed)
	if e.profilingEnabled && e.profiler != nil {
		e.profiler.Observe(elapsed)
		if e.clock != nil {
			e.profiler.SetSimulationTicks(e.clock.Ticks())
		}
		e.profiler.Tick()
	}
	return true
}

func (e *engine) quitRequested() bool {
	select {
	case <-e.quitChannel:
		return true
	default:
		return false
	}
}

// Quit closes the quit channel once; later calls are no-ops.
func (e *engine) Quit() {
	e.quitOnce.Do(func() {
		close(e.quitChannel)
	})
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickRate(hz float64) {
	newRate := tickPeriod(hz)
	if !e.running.Load() {
		e.tickRate = newRate
		return
	}

	// Non-blocking send - if a change is already pending, replace it.
	select {
	case e.tickRateChannel <- newRate:
	default:
		select {
		case <-e.tickRateChannel:
		default:
		}
		e.tickRateChannel <- newRate
	}
}
