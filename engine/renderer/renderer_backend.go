package renderer

// RendererBackendType identifies the GPU backend behind a Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU draws through WebGPU.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how finished frames reach the display.
type PresentMode int

const (
	// PresentModeVSync waits for vertical blank. No tearing, frame rate capped at the refresh rate.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents immediately and may tear.
	PresentModeUncapped
)

// MSAASampleCount is the sample count of the main render pass. WebGPU only
// guarantees 1 and 4; 8 and 16 depend on the adapter.
type MSAASampleCount uint32

const (
	MSAAOff MSAASampleCount = 1
	MSAA4x  MSAASampleCount = 4 // default
	MSAA8x  MSAASampleCount = 8
	MSAA16x MSAASampleCount = 16
)

// RendererBackend is what the Renderer needs from a GPU API.
type RendererBackend interface {
	wgpuRendererBackend
}
