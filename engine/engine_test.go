package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/Carmen-Shannon/orrery/engine/body"
	"github.com/Carmen-Shannon/orrery/engine/profiler"
	"github.com/Carmen-Shannon/orrery/engine/renderer"
	"github.com/Carmen-Shannon/orrery/engine/simulation"
	"github.com/Carmen-Shannon/orrery/engine/ui"
	"github.com/cogentcore/webgpu/wgpu"
)

type fakeWindow struct {
	polls    int
	maxPolls int
	onPoll   func(n int)
	resize   func(width, height int)
}

func (w *fakeWindow) SetKeyDownCallback(func(uint32))              {}
func (w *fakeWindow) SetSpecialKeyDownCallback(func(uint32))       {}
func (w *fakeWindow) SetPointerCallback(func(int, bool, int, int)) {}
func (w *fakeWindow) SetResizeCallback(cb func(width, height int)) { w.resize = cb }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor   { return nil }
func (w *fakeWindow) IsRunning() bool                              { return w.polls < w.maxPolls }
func (w *fakeWindow) Close() error                                 { return nil }
func (w *fakeWindow) Width() int                                   { return 1280 }
func (w *fakeWindow) Height() int                                  { return 720 }
func (w *fakeWindow) PollEvents() bool {
	w.polls++
	if w.onPoll != nil {
		w.onPoll(w.polls)
	}
	return w.polls <= w.maxPolls
}

type fakeRenderer struct {
	frames  []renderer.Frame
	failAt  int
	resized [2]int
}

func (r *fakeRenderer) RenderFrame(f renderer.Frame) error {
	r.frames = append(r.frames, f)
	time.Sleep(time.Millisecond)
	if r.failAt > 0 && len(r.frames) == r.failAt {
		return errors.New("device lost")
	}
	return nil
}
func (r *fakeRenderer) Resize(width, height int)            { r.resized = [2]int{width, height} }
func (r *fakeRenderer) SetPresentMode(renderer.PresentMode) {}
func (r *fakeRenderer) Layout() ui.Layout                   { return ui.NewLayout(1280, 720) }
func (r *fakeRenderer) Release()                            {}

type fakeSource struct {
	updates int
	resized [2]int
	clock   simulation.Clock
}

func (s *fakeSource) Update()                  { s.updates++ }
func (s *fakeSource) Resize(width, height int) { s.resized = [2]int{width, height} }
func (s *fakeSource) Frame(m profiler.FrameMetrics) renderer.Frame {
	f := renderer.Frame{Metrics: m}
	if s.clock != nil {
		f.Bodies = s.clock.Registry().Bodies()
		f.Sim = s.clock.State()
	}
	return f
}

func newTestEngine(w *fakeWindow, r *fakeRenderer, s *fakeSource, opts ...EngineBuilderOption) Engine {
	base := []EngineBuilderOption{
		WithWindow(w),
		WithRenderer(r),
		WithFrameSource(s),
		WithTickRate(1000),
	}
	if s.clock != nil {
		base = append(base, WithClock(s.clock))
	}
	return NewEngine(append(base, opts...)...)
}

func TestRunStopsWhenWindowCloses(t *testing.T) {
	clock := simulation.NewClock(body.DefaultRegistry())
	w, r, s := &fakeWindow{maxPolls: 3}, &fakeRenderer{}, &fakeSource{clock: clock}
	newTestEngine(w, r, s).Run()

	if len(r.frames) != 3 || s.updates != 3 {
		t.Fatalf("frames = %d, updates = %d, want 3", len(r.frames), s.updates)
	}
	if clock.Ticks() != 3 {
		t.Fatalf("clock ticks = %v, want 3", clock.Ticks())
	}
}

func TestFramesCarryPreviousMetrics(t *testing.T) {
	w, r, s := &fakeWindow{maxPolls: 2}, &fakeRenderer{}, &fakeSource{}
	e := newTestEngine(w, r, s)
	e.Run()

	if r.frames[0].Metrics.Valid {
		t.Fatal("first frame has metrics before anything was rendered")
	}
	if !r.frames[1].Metrics.Valid || r.frames[1].Metrics.FrameDuration < time.Millisecond {
		t.Fatalf("second frame metrics = %+v", r.frames[1].Metrics)
	}
	if !e.Metrics().Valid {
		t.Fatal("engine metrics not recorded")
	}
}

func TestQuitFromInputCallback(t *testing.T) {
	w, r, s := &fakeWindow{maxPolls: 100}, &fakeRenderer{}, &fakeSource{}
	var e Engine
	w.onPoll = func(n int) {
		if n == 2 {
			e.Quit()
		}
	}
	e = newTestEngine(w, r, s)
	e.Run()

	if len(r.frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(r.frames))
	}
	e.Quit()
}

func TestRenderErrorStopsLoop(t *testing.T) {
	w, r, s := &fakeWindow{maxPolls: 100}, &fakeRenderer{failAt: 2}, &fakeSource{}
	e := newTestEngine(w, r, s, WithProfiling(true))
	e.Run()

	if len(r.frames) != 2 {
		t.Fatalf("frames = %d, want 2", len(r.frames))
	}
	if w.polls != 2 {
		t.Fatalf("polls = %d, want 2", w.polls)
	}
}

func TestPausedClockStillRenders(t *testing.T) {
	clock := simulation.NewClock(body.DefaultRegistry(), simulation.WithPaused(true))
	w, r, s := &fakeWindow{maxPolls: 2}, &fakeRenderer{}, &fakeSource{clock: clock}
	newTestEngine(w, r, s).Run()

	if len(r.frames) != 2 || clock.Ticks() != 0 {
		t.Fatalf("frames = %d, ticks = %v", len(r.frames), clock.Ticks())
	}
	if !r.frames[1].Sim.Paused {
		t.Fatal("frame does not report the pause")
	}
}

func TestProfilerTracksSimulationTicks(t *testing.T) {
	clock := simulation.NewClock(body.DefaultRegistry())
	w, r, s := &fakeWindow{maxPolls: 3}, &fakeRenderer{}, &fakeSource{clock: clock}
	e := newTestEngine(w, r, s, WithProfiling(true)).(*engine)
	e.Run()

	if got := e.profiler.SimulationTicks(); got != 3 {
		t.Fatalf("profiler simulation ticks = %v, want 3", got)
	}
	if e.profiler.FramesTotal() != 3 {
		t.Fatalf("profiler frames = %v, want 3", e.profiler.FramesTotal())
	}
}

func TestSetTickRateAfterRun(t *testing.T) {
	w, r, s := &fakeWindow{maxPolls: 1}, &fakeRenderer{}, &fakeSource{}
	e := newTestEngine(w, r, s).(*engine)
	e.Run()

	if e.running.Load() {
		t.Fatal("running still set after Run returned")
	}
	e.SetTickRate(100)
	if e.tickRate != 10*time.Millisecond || len(e.tickRateChannel) != 0 {
		t.Fatalf("tick rate = %v, pending = %d", e.tickRate, len(e.tickRateChannel))
	}
}

func TestResizeIsForwarded(t *testing.T) {
	w, r, s := &fakeWindow{}, &fakeRenderer{}, &fakeSource{}
	newTestEngine(w, r, s)
	if w.resize == nil {
		t.Fatal("resize callback not installed")
	}
	w.resize(800, 600)
	if r.resized != [2]int{800, 600} || s.resized != [2]int{800, 600} {
		t.Fatalf("renderer %v, source %v", r.resized, s.resized)
	}
}

func TestRunWithoutCollaborators(t *testing.T) {
	e := NewEngine()
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run without a window did not return")
	}
}

func TestTickPeriod(t *testing.T) {
	tests := []struct {
		hz   float64
		want time.Duration
	}{
		{DefaultTickRate, 16 * time.Millisecond},
		{0, 16 * time.Millisecond},
		{-5, 16 * time.Millisecond},
		{100, 10 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := tickPeriod(tt.hz); got != tt.want {
			t.Errorf("tickPeriod(%v) = %v, want %v", tt.hz, got, tt.want)
		}
	}
}

func TestSetTickRate(t *testing.T) {
	e := NewEngine().(*engine)
	e.SetTickRate(50)
	if e.tickRate != 20*time.Millisecond {
		t.Fatalf("tick rate = %v", e.tickRate)
	}

	e.running.Store(true)
	e.SetTickRate(100)
	e.SetTickRate(200)
	if got := <-e.tickRateChannel; got != 5*time.Millisecond {
		t.Fatalf("pending rate = %v, want the latest 5ms", got)
	}
}
