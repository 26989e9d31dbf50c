package profiler

import (
	"log"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"golang.org/x/time/rate"
)

// Profiler aggregates render timings and memory statistics and writes a
// summary line to the log at most once per update interval. The metrics live
// in a private registry; nothing is exported over the network.
type Profiler struct {
	registry      *prometheus.Registry
	renderSeconds prometheus.Summary
	frames        prometheus.Counter
	simTicks      prometheus.Gauge

	limiter *rate.Limiter
	now     func() time.Time

	frameCount     int
	lastTime       time.Time
	memStats       runtime.MemStats
	lastTotalAlloc uint64
}

// Quantiles tracked for render durations, with their allowed error.
var renderObjectives = map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001}

// NewProfiler creates a Profiler that logs at most once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return newProfiler(time.Second, time.Now)
}

func newProfiler(interval time.Duration, now func() time.Time) *Profiler {
	p := &Profiler{
		registry: prometheus.NewRegistry(),
		renderSeconds: prometheus.NewSummary(prometheus.SummaryOpts{
			Name:       "orrery_render_duration_seconds",
			Help:       "Time spent rendering one frame",
			Objectives: renderObjectives,
			MaxAge:     10 * time.Second,
		}),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "orrery_frames_total",
			Help: "Total number of frames rendered",
		}),
		simTicks: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "orrery_simulation_ticks",
			Help: "Simulation ticks applied while running",
		}),
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		now:      now,
		lastTime: now(),
	}
	p.registry.MustRegister(p.renderSeconds, p.frames, p.simTicks)
	// The first window starts now rather than at the first Tick.
	p.limiter.AllowN(p.lastTime, 1)
	return p
}

// Observe records the render duration of one frame.
//
// Parameters:
//   - d: measured render duration
func (p *Profiler) Observe(d time.Duration) {
	p.renderSeconds.Observe(d.Seconds())
	p.frames.Inc()
}

// SetSimulationTicks records how many clock ticks have been applied so far.
// Paused frames do not advance it, so it trails FramesTotal while paused.
func (p *Profiler) SetSimulationTicks(n float64) {
	p.simTicks.Set(n)
}

// SimulationTicks returns the last value passed to SetSimulationTicks.
func (p *Profiler) SimulationTicks() float64 {
	m := &dto.Metric{}
	if err := p.simTicks.Write(m); err != nil {
		return 0
	}
	return m.GetGauge().GetValue()
}

// Tick should be called once per frame. Logs frame rate, render quantiles and
// memory statistics when the update interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.frameCount++
	current := p.now()
	if !p.limiter.AllowN(current, 1) {
		return false
	}

	elapsed := current.Sub(p.lastTime)
	fps := 0.0
	if elapsed > 0 {
		fps = float64(p.frameCount) / elapsed.Seconds()
	}
	q := p.Quantiles()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocRateMB := 0.0
	if elapsed > 0 {
		allocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()
	}

	log.Printf("[Profiler] FPS: %.2f | Render p50: %.2f ms p99: %.2f ms | Frames: %.0f | Sim ticks: %.0f | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d",
		fps, q[0.5]*1000, q[0.99]*1000, p.FramesTotal(), p.SimulationTicks(), heapMB, allocRateMB, p.memStats.NumGC)

	p.frameCount = 0
	p.lastTime = current
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Quantiles returns the current render-duration quantiles in seconds, keyed by rank.
//
// Returns:
//   - map[float64]float64: quantile rank to value; NaN when no samples are in the window
func (p *Profiler) Quantiles() map[float64]float64 {
	m := &dto.Metric{}
	out := make(map[float64]float64, len(renderObjectives))
	if err := p.renderSeconds.Write(m); err != nil {
		log.Printf("[Profiler] failed to read render summary: %v", err)
		return out
	}
	for _, q := range m.GetSummary().GetQuantile() {
		out[q.GetQuantile()] = q.GetValue()
	}
	return out
}

// FramesTotal returns the number of frames observed.
func (p *Profiler) FramesTotal() float64 {
	m := &dto.Metric{}
	if err := p.frames.Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}
