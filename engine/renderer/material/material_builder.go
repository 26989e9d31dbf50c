package material

// MaterialBuilderOption is a functional option used to configure a Material during construction.
type MaterialBuilderOption func(*material)

// WithSpecularStrength sets the specular multiplier.
//
// Parameters:
//   - s: the specular strength, typically in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that sets the specular strength
func WithSpecularStrength(s float32) MaterialBuilderOption {
	return func(m *material) {
		m.specularStrength = s
	}
}

// WithShininess sets the Phong exponent.
//
// Parameters:
//   - s: the shininess exponent
//
// Returns:
//   - MaterialBuilderOption: a function that sets the shininess
func WithShininess(s float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = s
	}
}
