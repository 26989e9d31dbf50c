package light

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Default Phong terms of the light placed at the star.
var (
	DefaultAmbient  = colorful.Color{R: 0.2, G: 0.15, B: 0.05}
	DefaultDiffuse  = colorful.Color{R: 1.0, G: 0.8, B: 0.4}
	DefaultSpecular = colorful.Color{R: 1.0, G: 0.9, B: 0.6}
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position [3]float32
	ambient  colorful.Color
	diffuse  colorful.Color
	specular colorful.Color
}

// Light defines the interface for the single point light of the scene.
//
// The light emits equally in all directions from its position and is not
// attenuated with distance. Its three colour terms feed the ambient, diffuse
// and specular parts of the Phong model evaluated by the lit body shader.
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - [3]float32: position as (x, y, z)
	Position() [3]float32

	// Ambient returns the colour added to every lit fragment regardless of orientation.
	//
	// Returns:
	//   - colorful.Color: the ambient term
	Ambient() colorful.Color

	// Diffuse returns the colour scaled by the cosine between normal and light direction.
	//
	// Returns:
	//   - colorful.Color: the diffuse term
	Diffuse() colorful.Color

	// Specular returns the colour of the highlight.
	//
	// Returns:
	//   - colorful.Color: the specular term
	Specular() colorful.Color

	// SetPosition moves the light.
	//
	// Parameters:
	//   - x: world-space X
	//   - y: world-space Y
	//   - z: world-space Z
	SetPosition(x, y, z float32)
}

var _ Light = &lightImpl{}

// NewLight creates a point light at the origin with the default colour terms,
// then applies opts.
//
// Parameters:
//   - opts: functional options
//
// Returns:
//   - Light: the newly created light
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		ambient:  DefaultAmbient,
		diffuse:  DefaultDiffuse,
		specular: DefaultSpecular,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Position() [3]float32 {
	return l.position
}

func (l *lightImpl) Ambient() colorful.Color {
	return l.ambient
}

func (l *lightImpl) Diffuse() colorful.Color {
	return l.diffuse
}

func (l *lightImpl) Specular() colorful.Color {
	return l.specular
}

func (l *lightImpl) SetPosition(x, y, z float32) {
	l.position = [3]float32{x, y, z}
}
