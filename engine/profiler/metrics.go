package profiler

import (
	"fmt"
	"time"
)

// FrameMetrics is the single-slot record of the most recent frame, overwritten every frame.
type FrameMetrics struct {
	// FrameDuration is how long the last render took.
	FrameDuration time.Duration
	// FPS is the instantaneous rate 1 / FrameDuration. Zero when Valid is false.
	FPS float64
	// Valid is false until a frame with a positive duration has been recorded.
	Valid bool
}

// Record overwrites m with the timing of one frame. A non-positive duration
// cannot yield a rate, so FPS is reported as unavailable.
//
// Parameters:
//   - d: measured render duration
func (m *FrameMetrics) Record(d time.Duration) {
	m.FrameDuration = d
	if d <= 0 {
		m.FPS = 0
		m.Valid = false
		return
	}
	m.FPS = 1 / d.Seconds()
	m.Valid = true
}

// FrameTimeText formats the frame time in milliseconds with two decimals.
func (m FrameMetrics) FrameTimeText() string {
	return fmt.Sprintf("Frame time: %.2f ms", float64(m.FrameDuration)/float64(time.Millisecond))
}

// FPSText formats the rate with two decimals, or n/a when unavailable.
func (m FrameMetrics) FPSText() string {
	if !m.Valid {
		return "FPS: n/a"
	}
	return fmt.Sprintf("FPS: %.2f", m.FPS)
}
