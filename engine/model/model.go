package model

// Topology tells the renderer how a model's indices are assembled.
type Topology int

const (
	TopologyTriangles Topology = iota
	TopologyLines
)

type model struct {
	name           string
	topology       Topology
	vertices       []GPUVertex
	indices        []uint32
	boundingRadius float32
}

// Model is an immutable indexed mesh ready for GPU upload.
type Model interface {
	// Name returns the model's identifier.
	Name() string

	// Topology returns how indices form primitives.
	Topology() Topology

	// Vertices returns the vertex list. Callers must not modify it.
	Vertices() []GPUVertex

	// Indices returns the index list. Callers must not modify it.
	Indices() []uint32

	// IndexCount returns len(Indices()).
	IndexCount() int

	// VertexData returns the vertices serialized for a vertex buffer.
	VertexData() []byte

	// IndexData returns the indices serialized for a uint32 index buffer.
	IndexData() []byte

	// BoundingRadius returns the radius of a sphere around the model-space origin
	// that encloses every vertex.
	BoundingRadius() float32
}

var _ Model = &model{}

// NewModel creates a Model from options. The bounding radius is computed from
// the vertices unless set explicitly.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - Model: the newly created model
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, option := range options {
		option(m)
	}
	if m.boundingRadius == 0 {
		for _, v := range m.vertices {
			p := v.Position
			m.boundingRadius = max(m.boundingRadius, length3(p[0], p[1], p[2]))
		}
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Topology() Topology {
	return m.topology
}

func (m *model) Vertices() []GPUVertex {
	return m.vertices
}

func (m *model) Indices() []uint32 {
	return m.indices
}

func (m *model) IndexCount() int {
	return len(m.indices)
}

func (m *model) VertexData() []byte {
	return MarshalVertices(m.vertices)
}

func (m *model) IndexData() []byte {
	return MarshalIndices(m.indices)
}

func (m *model) BoundingRadius() float32 {
	return m.boundingRadius
}
