package light

import "github.com/lucasb-eyer/go-colorful"

// LightBuilderOption is a functional option used to configure a Light during construction.
type LightBuilderOption func(*lightImpl)

// WithPosition sets the world-space position of the light.
//
// Parameters:
//   - x: world-space X
//   - y: world-space Y
//   - z: world-space Z
//
// Returns:
//   - LightBuilderOption: a function that sets the position
func WithPosition(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = [3]float32{x, y, z}
	}
}

// WithAmbient sets the ambient term.
func WithAmbient(c colorful.Color) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = c
	}
}

// WithDiffuse sets the diffuse term.
func WithDiffuse(c colorful.Color) LightBuilderOption {
	return func(l *lightImpl) {
		l.diffuse = c
	}
}

// WithSpecular sets the specular term.
func WithSpecular(c colorful.Color) LightBuilderOption {
	return func(l *lightImpl) {
		l.specular = c
	}
}
