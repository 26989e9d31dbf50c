package body

import (
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultCatalog returns the ten bodies of the default scene, star first,
// all visible and at angle zero.
func DefaultCatalog() []CelestialBody {
	return []CelestialBody{
		{Name: "Sun", Radius: 2.0, Distance: 0, OrbitSpeed: 0, RotationSpeed: 0.8, Color: rgb(1.0, 0.7, 0.1), AxialTilt: 7.25, Visible: true, Profile: ProfileStar},
		{Name: "Mercury", Radius: 0.38, Distance: 5, OrbitSpeed: 4.74, RotationSpeed: 0.3, Color: rgb(0.7, 0.5, 0.3), AxialTilt: 0.1, Visible: true},
		{Name: "Venus", Radius: 0.95, Distance: 7, OrbitSpeed: 3.5, RotationSpeed: 0.1, Color: rgb(0.9, 0.7, 0.2), AxialTilt: 177.4, Visible: true},
		{Name: "Earth", Radius: 1.0, Distance: 10, OrbitSpeed: 2.98, RotationSpeed: 0.5, Color: rgb(0.2, 0.4, 0.9), AxialTilt: 23.44, HasSatellite: true, Visible: true, Profile: ProfileAtmosphere},
		{Name: "Mars", Radius: 0.53, Distance: 13, OrbitSpeed: 2.41, RotationSpeed: 0.4, Color: rgb(0.8, 0.3, 0.1), AxialTilt: 25.19, HasSatellite: true, Visible: true},
		{Name: "Jupiter", Radius: 1.12, Distance: 18, OrbitSpeed: 1.31, RotationSpeed: 1.2, Color: rgb(0.8, 0.6, 0.4), AxialTilt: 3.13, HasSatellite: true, Visible: true},
		{Name: "Saturn", Radius: 0.94, Distance: 22, OrbitSpeed: 0.97, RotationSpeed: 1.0, Color: rgb(0.9, 0.8, 0.5), AxialTilt: 26.73, HasSatellite: true, Visible: true, Profile: ProfileRing},
		{Name: "Uranus", Radius: 0.4, Distance: 26, OrbitSpeed: 0.68, RotationSpeed: 0.8, Color: rgb(0.4, 0.6, 0.8), AxialTilt: 97.77, HasSatellite: true, Visible: true},
		{Name: "Neptune", Radius: 0.39, Distance: 30, OrbitSpeed: 0.54, RotationSpeed: 0.7, Color: rgb(0.2, 0.3, 0.9), AxialTilt: 28.32, HasSatellite: true, Visible: true, Profile: ProfileAtmosphere},
		{Name: "Pluto", Radius: 0.18, Distance: 35, OrbitSpeed: 0.47, RotationSpeed: 0.3, Color: rgb(0.8, 0.7, 0.6), AxialTilt: 122.53, Visible: true},
	}
}

// DefaultRegistry returns a Registry over DefaultCatalog.
func DefaultRegistry() Registry {
	return NewRegistry(DefaultCatalog()...)
}

func rgb(r, g, b float64) colorful.Color {
	return colorful.Color{R: r, G: g, B: b}
}
