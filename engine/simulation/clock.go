package simulation

import (
	"github.com/Carmen-Shannon/orrery/common"
	"github.com/Carmen-Shannon/orrery/engine/body"
)

const (
	// OrbitScale converts a body's OrbitSpeed into degrees per tick.
	OrbitScale = 0.016
	// RotationScale converts a body's RotationSpeed into degrees per tick.
	RotationScale = 0.48

	DefaultTimeMultiplier = 1.6
	MinTimeMultiplier     = 0.1
	MaxTimeMultiplier     = 10.0
)

// State is a snapshot of the global simulation controls.
type State struct {
	Paused         bool
	TimeMultiplier float64
}

// Clock advances every body's orbit and rotation angles.
// Not thread-safe; it is driven from the frame loop.
type Clock interface {
	// Tick advances all bodies by dtTicks nominal ticks. Does nothing while
	// paused or when dtTicks is not positive. Angles stay within [0, 360).
	//
	// Parameters:
	//   - dtTicks: elapsed ticks, normally 1
	Tick(dtTicks float64)

	// SetTimeMultiplier multiplies the current multiplier by factor and clamps
	// the result to the configured bounds.
	//
	// Parameters:
	//   - factor: relative change, e.g. 0.9 or 1.1
	SetTimeMultiplier(factor float64)

	// TogglePause flips the paused flag.
	TogglePause()

	// Paused reports whether ticks are currently ignored.
	Paused() bool

	// TimeMultiplier returns the current multiplier.
	TimeMultiplier() float64

	// State returns a snapshot of the paused flag and multiplier.
	State() State

	// Ticks returns the total ticks applied while running.
	Ticks() float64

	// Registry returns the registry this clock advances.
	Registry() body.Registry
}

type clock struct {
	registry      body.Registry
	paused        bool
	multiplier    float64
	minMultiplier float64
	maxMultiplier float64
	orbitScale    float64
	rotationScale float64
	ticks         float64
}

var _ Clock = &clock{}

// NewClock creates a Clock over reg.
//
// Parameters:
//   - reg: the bodies to animate
//   - opts: optional configuration
//
// Returns:
//   - Clock: the configured clock
func NewClock(reg body.Registry, opts ...ClockBuilderOption) Clock {
	c := &clock{
		registry:      reg,
		multiplier:    DefaultTimeMultiplier,
		minMultiplier: MinTimeMultiplier,
		maxMultiplier: MaxTimeMultiplier,
		orbitScale:    OrbitScale,
		rotationScale: RotationScale,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.minMultiplier > c.maxMultiplier {
		c.minMultiplier, c.maxMultiplier = c.maxMultiplier, c.minMultiplier
	}
	c.multiplier = common.Clamp(c.multiplier, c.minMultiplier, c.maxMultiplier)
	return c
}

func (c *clock) Tick(dtTicks float64) {
	if c.paused || dtTicks <= 0 {
		return
	}
	orbitStep := c.multiplier * c.orbitScale * dtTicks
	rotationStep := c.multiplier * c.rotationScale * dtTicks
	c.registry.Each(func(_ int, b *body.CelestialBody) {
		b.OrbitAngle = common.WrapDegrees(b.OrbitAngle + b.OrbitSpeed*orbitStep)
		b.RotationAngle = common.WrapDegrees(b.RotationAngle + b.RotationSpeed*rotationStep)
	})
	c.ticks += dtTicks
}

func (c *clock) SetTimeMultiplier(factor float64) {
	c.multiplier = common.Clamp(c.multiplier*factor, c.minMultiplier, c.maxMultiplier)
}

func (c *clock) TogglePause() {
	c.paused = !c.paused
}

func (c *clock) Paused() bool {
	return c.paused
}

func (c *clock) TimeMultiplier() float64 {
	return c.multiplier
}

func (c *clock) State() State {
	return State{Paused: c.paused, TimeMultiplier: c.multiplier}
}

func (c *clock) Ticks() float64 {
	return c.ticks
}

func (c *clock) Registry() body.Registry {
	return c.registry
}
