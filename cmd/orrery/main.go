// Command orrery opens an interactive 3D view of the solar system.
//
// Controls: space pauses, W/S and A/D orbit the camera, +/- zoom, 1/2 slow
// down or speed up time, the arrow keys change sensitivity and Esc quits.
// Clicking Play/Pause or a planet name in the list toggles it.
package main

import (
	"log"

	"github.com/Carmen-Shannon/orrery/engine"
	"github.com/Carmen-Shannon/orrery/engine/body"
	"github.com/Carmen-Shannon/orrery/engine/camera"
	"github.com/Carmen-Shannon/orrery/engine/input"
	"github.com/Carmen-Shannon/orrery/engine/renderer"
	"github.com/Carmen-Shannon/orrery/engine/scene"
	"github.com/Carmen-Shannon/orrery/engine/simulation"
	"github.com/Carmen-Shannon/orrery/engine/window"
)

func main() {
	// ── Window ──────────────────────────────────────────────────────
	win := window.NewWindow()
	defer win.Close()

	// ── Simulation state ────────────────────────────────────────────
	registry := body.DefaultRegistry()
	clock := simulation.NewClock(registry)
	controller := camera.NewCameraController()
	cam := camera.NewCamera(
		camera.WithAspect(float32(win.Width())/float32(win.Height())),
		camera.WithController(controller),
	)

	// ── Renderer ────────────────────────────────────────────────────
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win, registry.Bodies())
	if err != nil {
		log.Fatalf("failed to create renderer: %v", err)
	}
	defer r.Release()

	// ── Input + Engine ──────────────────────────────────────────────
	// The exit hook needs the engine, which needs the scene, which needs the handler.
	var eng engine.Engine
	handler := input.NewHandler(clock, controller, registry,
		input.WithLayout(r.Layout()),
		input.WithExit(func() {
			if eng != nil {
				eng.Quit()
			}
		}),
	)
	win.SetKeyDownCallback(handler.HandleKey)
	win.SetSpecialKeyDownCallback(handler.HandleSpecialKey)
	win.SetPointerCallback(handler.HandlePointer)

	eng = engine.NewEngine(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithClock(clock),
		engine.WithFrameSource(scene.NewScene(clock, cam, scene.WithInput(handler))),
		engine.WithTickRate(engine.DefaultTickRate),
		engine.WithProfiling(true),
	)

	log.Printf("[Engine] starting with %d bodies", registry.Len())
	eng.Run()
	log.Printf("[Engine] stopped")
}
