package simulation

// ClockBuilderOption is a functional option for configuring a Clock.
// Use the With* functions to create options.
type ClockBuilderOption func(c *clock)

// WithTimeMultiplier sets the starting multiplier. Clamped to the multiplier bounds.
// Defaults to 1.6.
//
// Parameters:
//   - m: initial multiplier
//
// Returns:
//   - ClockBuilderOption: option function to apply
func WithTimeMultiplier(m float64) ClockBuilderOption {
	return func(c *clock) {
		c.multiplier = m
	}
}

// WithMultiplierBounds sets the inclusive multiplier range. Defaults to [0.1, 10].
//
// Parameters:
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - ClockBuilderOption: option function to apply
func WithMultiplierBounds(lo, hi float64) ClockBuilderOption {
	return func(c *clock) {
		c.minMultiplier = lo
		c.maxMultiplier = hi
	}
}

// WithPaused starts the clock paused.
func WithPaused(paused bool) ClockBuilderOption {
	return func(c *clock) {
		c.paused = paused
	}
}

// WithOrbitScale overrides OrbitScale.
func WithOrbitScale(scale float64) ClockBuilderOption {
	return func(c *clock) {
		c.orbitScale = scale
	}
}

// WithRotationScale overrides RotationScale.
func WithRotationScale(scale float64) ClockBuilderOption {
	return func(c *clock) {
		c.rotationScale = scale
	}
}
