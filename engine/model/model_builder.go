package model

// ModelBuilderOption is a functional option for configuring a Model.
type ModelBuilderOption func(*model)

// WithName sets the model's identifier.
//
// Parameters:
//   - name: identifier used as a lookup key by the renderer
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithTopology sets how indices form primitives. Defaults to TopologyTriangles.
func WithTopology(t Topology) ModelBuilderOption {
	return func(m *model) {
		m.topology = t
	}
}

// WithGeometry sets the vertex and index lists.
//
// Parameters:
//   - vertices: mesh vertices
//   - indices: indices into vertices
//
// Returns:
//   - ModelBuilderOption: option function to apply
func WithGeometry(vertices []GPUVertex, indices []uint32) ModelBuilderOption {
	return func(m *model) {
		m.vertices = vertices
		m.indices = indices
	}
}

// WithBoundingRadius overrides the computed bounding radius.
func WithBoundingRadius(radius float32) ModelBuilderOption {
	return func(m *model) {
		m.boundingRadius = radius
	}
}
