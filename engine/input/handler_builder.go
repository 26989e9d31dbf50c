package input

import (
	"github.com/Carmen-Shannon/orrery/engine/ui"
)

// HandlerBuilderOption is a functional option for configuring a Handler.
type HandlerBuilderOption func(*handler)

// WithCameraSpeed sets the factor applied to every camera step. Defaults to 1.5.
//
// Parameters:
//   - speed: step multiplier
//
// Returns:
//   - HandlerBuilderOption: option function to apply
func WithCameraSpeed(speed float64) HandlerBuilderOption {
	return func(h *handler) {
		h.cameraSpeed = speed
	}
}

// WithSensitivity sets the initial sensitivity scalar. Defaults to 1.0.
func WithSensitivity(s float64) HandlerBuilderOption {
	return func(h *handler) {
		h.sensitivity = s
	}
}

// WithSensitivityBounds sets the range the sensitivity is clamped to. Defaults to [0.1, 10].
//
// Parameters:
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - HandlerBuilderOption: option function to apply
func WithSensitivityBounds(lo, hi float64) HandlerBuilderOption {
	return func(h *handler) {
		h.minSensitivity = lo
		h.maxSensitivity = hi
	}
}

// WithLayout sets the initial HUD geometry used for pointer hit-testing. It must
// be the layout the renderer draws with; SetLayout updates it after a resize.
// Defaults to a 1280x720 layout.
func WithLayout(l ui.Layout) HandlerBuilderOption {
	return func(h *handler) {
		h.layout = l
	}
}

// WithExit sets the callback run when the exit key is pressed.
func WithExit(fn func()) HandlerBuilderOption {
	return func(h *handler) {
		h.onExit = fn
	}
}
