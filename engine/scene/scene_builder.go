package scene

import (
	"github.com/Carmen-Shannon/orrery/engine/input"
	"github.com/Carmen-Shannon/orrery/engine/starfield"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithStars sets the backdrop instead of generating one.
//
// Parameters:
//   - stars: the star field, used as is
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithStars(stars []starfield.Point) SceneBuilderOption {
	return func(s *scene) {
		s.stars = stars
	}
}

// WithInput attaches the handler whose HUD layout follows Resize.
func WithInput(h input.Handler) SceneBuilderOption {
	return func(s *scene) {
		s.handler = h
	}
}
