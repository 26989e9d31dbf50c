package renderer

import (
	"github.com/Carmen-Shannon/orrery/engine/light"
	"github.com/Carmen-Shannon/orrery/engine/renderer/material"
	"github.com/lucasb-eyer/go-colorful"
	"tinygo.org/x/tinyfont"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithPresentMode sets the surface present mode. Defaults to PresentModeVSync.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithMSAA sets the multisample count of the main pass. Defaults to MSAA4x.
//
// Parameters:
//   - count: the MSAASampleCount to use (MSAAOff, MSAA4x, MSAA8x, or MSAA16x)
//
// Returns:
//   - RendererBuilderOption: a function that applies the MSAA option to a renderer
func WithMSAA(count MSAASampleCount) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingMSAA = &count
	}
}

// WithForceSoftwareRenderer requests the fallback (CPU) adapter. A software
// Vulkan ICD such as lavapipe must be installed.
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithLight sets the point light at the Sun. Defaults to light.NewLight().
func WithLight(l light.Light) RendererBuilderOption {
	return func(r *renderer) {
		r.light = l
	}
}

// WithMaterial sets the specular response shared by every lit body.
func WithMaterial(m material.Material) RendererBuilderOption {
	return func(r *renderer) {
		r.material = m
	}
}

// WithClearColor sets the background colour. Defaults to black.
//
// Parameters:
//   - c: the clear colour in sRGB
//
// Returns:
//   - RendererBuilderOption: a function that applies the clear colour to a renderer
func WithClearColor(c colorful.Color) RendererBuilderOption {
	return func(r *renderer) {
		r.clearColor = c
	}
}

// WithMeshWorkers sets how many workers generate meshes at start-up. Defaults to 4.
func WithMeshWorkers(n int) RendererBuilderOption {
	return func(r *renderer) {
		r.meshWorkers = n
	}
}

// WithFont sets the HUD and label font. Defaults to freemono 9pt.
func WithFont(font tinyfont.Fonter) RendererBuilderOption {
	return func(r *renderer) {
		r.font = font
	}
}
