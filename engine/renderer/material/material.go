package material

// Defaults shared by every lit body.
const (
	DefaultSpecularStrength float32 = 0.3
	DefaultShininess        float32 = 50
)

// material is the implementation of the Material interface.
type material struct {
	name             string
	specularStrength float32
	shininess        float32
}

// Material defines the surface response of lit geometry to the scene light.
// Base colour is supplied per draw; the material carries only the specular
// parameters shared by all bodies.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// SpecularStrength retrieves the multiplier applied to the specular highlight.
	//
	// Returns:
	//   - float32: the specular strength
	SpecularStrength() float32

	// Shininess retrieves the Phong exponent. Higher values give a tighter highlight.
	//
	// Returns:
	//   - float32: the shininess exponent
	Shininess() float32
}

var _ Material = &material{}

// NewMaterial creates a Material with the default specular parameters, then applies options.
//
// Parameters:
//   - name: identifier of the material
//   - options: functional options
//
// Returns:
//   - Material: the newly created material
func NewMaterial(name string, options ...MaterialBuilderOption) Material {
	m := &material{
		name:             name,
		specularStrength: DefaultSpecularStrength,
		shininess:        DefaultShininess,
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) SpecularStrength() float32 {
	return m.specularStrength
}

func (m *material) Shininess() float32 {
	return m.shininess
}
