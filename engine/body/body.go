package body

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RenderProfile flags select the extra geometry a body is drawn with.
// They are fixed when the catalog is built.
type RenderProfile uint8

const (
	// ProfileStar draws the body as unlit layered glow spheres and skips its orbit ring.
	ProfileStar RenderProfile = 1 << iota
	// ProfileRing attaches a tilted torus around the body.
	ProfileRing
	// ProfileAtmosphere adds a translucent shell slightly larger than the body.
	ProfileAtmosphere
)

// Has reports whether every flag in f is set.
func (p RenderProfile) Has(f RenderProfile) bool {
	return p&f == f
}

// CelestialBody is one entry of the solar-system catalog.
// Angles are in degrees and kept within [0, 360) by the simulation clock.
type CelestialBody struct {
	// Name is the unique display name.
	Name string
	// Radius is the render scale factor.
	Radius float64
	// Distance is the orbit radius from the origin. Zero means the body sits at the centre.
	Distance float64
	// OrbitSpeed is degrees per tick at a time multiplier of 1, before scaling.
	OrbitSpeed float64
	// RotationSpeed is degrees per tick at a time multiplier of 1, before scaling.
	RotationSpeed float64
	// AxialTilt is the static tilt applied before spin, in degrees.
	AxialTilt float64
	// Color is the surface colour.
	Color colorful.Color
	// HasSatellite is informational only; no satellite is simulated.
	HasSatellite bool
	// Visible controls whether the body and its extras are drawn.
	Visible bool
	// OrbitAngle is the current angular position along the orbit.
	OrbitAngle float64
	// RotationAngle is the current spin about the body's own axis.
	RotationAngle float64
	// Profile selects star, ring and atmosphere rendering.
	Profile RenderProfile
}

// Position returns the body's world-space centre: the point (Distance, 0, 0)
// rotated by OrbitAngle degrees about +Y.
//
// Returns:
//   - float64, float64, float64: the x, y, z coordinates
func (b CelestialBody) Position() (float64, float64, float64) {
	s, c := math.Sincos(b.OrbitAngle * math.Pi / 180.0)
	return b.Distance * c, 0, -b.Distance * s
}

// IsStar reports whether the body is rendered as the central star.
func (b CelestialBody) IsStar() bool {
	return b.Profile.Has(ProfileStar)
}
