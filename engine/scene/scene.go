package scene

import (
	"github.com/Carmen-Shannon/orrery/engine/camera"
	"github.com/Carmen-Shannon/orrery/engine/input"
	"github.com/Carmen-Shannon/orrery/engine/profiler"
	"github.com/Carmen-Shannon/orrery/engine/renderer"
	"github.com/Carmen-Shannon/orrery/engine/simulation"
	"github.com/Carmen-Shannon/orrery/engine/starfield"
	"github.com/Carmen-Shannon/orrery/engine/ui"
)

// Scene owns the state one view of the solar system is drawn from: the
// clock with its body registry, the orbit camera, the star field and the
// input handler that mutates them.
type Scene interface {
	// Clock returns the simulation clock.
	Clock() simulation.Clock

	// Camera returns the scene camera.
	Camera() camera.Camera

	// Stars returns the backdrop. The slice is never mutated.
	Stars() []starfield.Point

	// Update refreshes the camera matrices from the controller.
	Update()

	// Resize adapts the camera aspect ratio and the input handler's HUD
	// layout to a new surface size.
	//
	// Parameters:
	//   - width, height: surface size in pixels
	Resize(width, height int)

	// Frame snapshots the scene for the renderer.
	//
	// Parameters:
	//   - metrics: timing of the previous frame
	//
	// Returns:
	//   - renderer.Frame: the read-only frame
	Frame(metrics profiler.FrameMetrics) renderer.Frame
}

type scene struct {
	clock   simulation.Clock
	camera  camera.Camera
	stars   []starfield.Point
	handler input.Handler
}

var _ Scene = &scene{}

// NewScene creates a Scene around clock and cam. Without WithStars a default
// star field is generated.
//
// Parameters:
//   - clock: the simulation clock and its registry
//   - cam: a camera with its controller attached
//   - options: functional options
//
// Returns:
//   - Scene: the new scene
func NewScene(clock simulation.Clock, cam camera.Camera, options ...SceneBuilderOption) Scene {
	s := &scene{
		clock:  clock,
		camera: cam,
	}
	for _, opt := range options {
		opt(s)
	}
	if s.stars == nil {
		s.stars = starfield.Generate(starfield.DefaultCount, starfield.DefaultBound, starfield.DefaultMinSize, starfield.DefaultMaxSize)
	}
	return s
}

func (s *scene) Clock() simulation.Clock {
	return s.clock
}

func (s *scene) Camera() camera.Camera {
	return s.camera
}

func (s *scene) Stars() []starfield.Point {
	return s.stars
}

func (s *scene) Update() {
	s.camera.Update()
}

func (s *scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.camera.SetAspect(float32(width) / float32(height))
	if s.handler != nil {
		s.handler.SetLayout(ui.NewLayout(width, height))
	}
}

func (s *scene) Frame(metrics profiler.FrameMetrics) renderer.Frame {
	return renderer.Frame{
		Bodies:  s.clock.Registry().Bodies(),
		Camera:  s.camera,
		Stars:   s.stars,
		Sim:     s.clock.State(),
		Metrics: metrics,
	}
}
