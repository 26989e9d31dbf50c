package renderer

import (
	"fmt"
	"log"
	"sync"

	"github.com/Carmen-Shannon/orrery/common"
	"github.com/Carmen-Shannon/orrery/engine/body"
	"github.com/Carmen-Shannon/orrery/engine/camera"
	"github.com/Carmen-Shannon/orrery/engine/light"
	"github.com/Carmen-Shannon/orrery/engine/model"
	"github.com/Carmen-Shannon/orrery/engine/profiler"
	"github.com/Carmen-Shannon/orrery/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/orrery/engine/renderer/material"
	"github.com/Carmen-Shannon/orrery/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/orrery/engine/simulation"
	"github.com/Carmen-Shannon/orrery/engine/starfield"
	"github.com/Carmen-Shannon/orrery/engine/ui"
	"github.com/Carmen-Shannon/orrery/engine/window"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/lucasb-eyer/go-colorful"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// Frame is the read-only snapshot handed to the renderer once per loop iteration.
type Frame struct {
	Bodies  []body.CelestialBody
	Camera  camera.Camera
	Stars   []starfield.Point
	Sim     simulation.State
	Metrics profiler.FrameMetrics
}

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu *sync.Mutex

	backendType RendererBackendType
	backend     RendererBackend

	pipelines map[string]pipeline.Pipeline
	meshes    map[string]bind_group_provider.BindGroupProvider
	bounds    map[string]float32

	// starMesh is a quad carrying the star field as its instance buffer.
	starMesh  bind_group_provider.BindGroupProvider
	starCount int

	frameGroup   bind_group_provider.BindGroupProvider
	drawGroup    bind_group_provider.BindGroupProvider
	overlayGroup bind_group_provider.BindGroupProvider
	drawSlots    int

	canvas *hudCanvas
	layout ui.Layout

	light    light.Light
	material material.Material
	font     tinyfont.Fonter

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
	clearColor           colorful.Color
	meshWorkers          int
}

// Renderer draws one Frame of the solar system: the star field backdrop, the
// bodies with their orbit rings and extra layers, the body labels and the HUD.
type Renderer interface {
	// RenderFrame draws and presents f.
	//
	// Parameters:
	//   - f: the frame snapshot
	//
	// Returns:
	//   - error: an error if the frame could not be recorded or submitted
	RenderFrame(f Frame) error

	// Resize reconfigures the surface and the HUD canvas for a new window size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// SetPresentMode changes the present mode. Takes effect on the next Resize.
	SetPresentMode(mode PresentMode)

	// Layout returns the HUD geometry for the current surface size.
	Layout() ui.Layout

	// Release frees every GPU resource held by the renderer.
	Release()
}

var _ Renderer = &renderer{}

// NewRenderer creates a Renderer drawing into win. Meshes for every body in
// catalog are generated up front on a worker pool, so catalog must list every
// body that later frames can contain.
//
// Parameters:
//   - backendType: the GPU backend to use
//   - win: the window providing the surface
//   - catalog: the bodies that will be drawn
//   - options: functional options
//
// Returns:
//   - Renderer: the ready renderer
//   - error: an error if the GPU or any pipeline could not be set up
func NewRenderer(backendType RendererBackendType, win window.Window, catalog []body.CelestialBody, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:          &sync.Mutex{},
		backendType: backendType,
		pipelines:   make(map[string]pipeline.Pipeline),
		meshes:      make(map[string]bind_group_provider.BindGroupProvider),
		bounds:      make(map[string]float32),
		meshWorkers: defaultMeshWorkers,
		font:        &freemono.Regular9pt7b,
	}

	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before the backend requests a GPU adapter.
	for _, opt := range options {
		opt(r)
	}
	if r.light == nil {
		r.light = light.NewLight()
	}
	if r.material == nil {
		r.material = material.NewMaterial("body")
	}

	msaa := MSAA4x
	if r.pendingMSAA != nil {
		msaa = *r.pendingMSAA
	}

	var err error
	switch backendType {
	case BackendTypeWGPU:
		fallthrough
	default:
		r.backend, err = newWGPURendererBackend(win.SurfaceDescriptor(), r.forceFallbackAdapter, msaa)
	}
	if err != nil {
		return nil, fmt.Errorf("renderer backend: %w", err)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	cr, cg, cb := r.clearColor.LinearRgb()
	r.backend.SetClearColor(wgpu.Color{R: cr, G: cg, B: cb, A: 1})

	if err := r.backend.ConfigureSurface(win.Width(), win.Height()); err != nil {
		return nil, fmt.Errorf("configure surface: %w", err)
	}

	for _, p := range scenePipelines() {
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return nil, err
		}
		r.pipelines[p.PipelineKey()] = p
	}

	pool := newMeshPool(r.meshWorkers)
	meshes := buildMeshes(pool, catalog)
	pool.Stop()
	for key, m := range meshes {
		provider, err := r.uploadMesh(key, m)
		if err != nil {
			return nil, err
		}
		r.meshes[key] = provider
		r.bounds[key] = m.BoundingRadius()
	}
	if r.starMesh, err = r.uploadMesh("stars", meshes[meshQuad]); err != nil {
		return nil, err
	}

	r.frameGroup = bind_group_provider.NewBindGroupProvider("Frame")
	if err := r.backend.InitBindGroup(r.frameGroup, frameLayout(), nil); err != nil {
		return nil, err
	}

	r.drawSlots = drawBudget(len(catalog))
	r.drawGroup = bind_group_provider.NewBindGroupProvider("Draw", bind_group_provider.WithDynamicStride(drawSlotStride))
	sizes := map[int]uint64{0: uint64(r.drawSlots) * drawSlotStride}
	if err := r.backend.InitBindGroup(r.drawGroup, drawLayout(), sizes); err != nil {
		return nil, err
	}

	if err := r.initOverlay(win.Width(), win.Height()); err != nil {
		return nil, err
	}

	log.Printf("[Renderer] ready: %d pipelines, %d meshes, %d draw slots", len(r.pipelines), len(r.meshes), r.drawSlots)
	return r, nil
}

func (r *renderer) uploadMesh(label string, m model.Model) (bind_group_provider.BindGroupProvider, error) {
	provider := bind_group_provider.NewBindGroupProvider(label)
	if err := r.backend.InitMeshBuffers(provider, m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		return nil, fmt.Errorf("mesh %s: %w", label, err)
	}
	return provider, nil
}

// initOverlay (re)creates the HUD canvas, its texture and the overlay bind group.
func (r *renderer) initOverlay(width, height int) error {
	if r.overlayGroup != nil {
		r.overlayGroup.Release()
	}
	r.layout = ui.NewLayout(width, height)
	r.canvas = newHUDCanvas(width, height)

	r.overlayGroup = bind_group_provider.NewBindGroupProvider("Overlay")
	if err := r.backend.InitTextureView(r.overlayGroup, 0, r.canvasStaging()); err != nil {
		return err
	}
	if err := r.backend.InitSampler(r.overlayGroup, 1, *common.OverlaySampler()); err != nil {
		return err
	}
	return r.backend.InitBindGroup(r.overlayGroup, overlayLayout(), nil)
}

func (r *renderer) canvasStaging() common.TextureStagingData {
	w, h := r.canvas.Size()
	return common.TextureStagingData{
		Pixels: r.canvas.Pixels(),
		Width:  uint32(w),
		Height: uint32(h),
	}
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.backend.ConfigureSurface(width, height); err != nil {
		log.Printf("[Renderer] resize to %dx%d failed: %v", width, height, err)
		return
	}
	if err := r.initOverlay(width, height); err != nil {
		log.Printf("[Renderer] overlay resize failed: %v", err)
	}
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) Layout() ui.Layout {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.layout
}

func (r *renderer) RenderFrame(f Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f.Camera == nil {
		return fmt.Errorf("frame has no camera")
	}

	if len(f.Stars) != r.starCount {
		if err := r.backend.InitInstanceBuffer(r.starMesh, MarshalStars(f.Stars), len(f.Stars)); err != nil {
			return fmt.Errorf("star field: %w", err)
		}
		r.starCount = len(f.Stars)
	}

	aspect := float32(r.layout.Width) / float32(max(r.layout.Height, 1))
	items := append([]drawItem{starFieldItem(aspect)}, buildDrawList(f.Bodies)...)
	if len(items) > r.drawSlots {
		return fmt.Errorf("%d draws exceed the %d draw slots sized for the catalog", len(items), r.drawSlots)
	}

	frame := GPUFrameUniform{
		Camera:   camera.NewGPUCameraUniform(f.Camera),
		Light:    light.ToGPULight(r.light),
		Material: material.ToGPUMaterial(r.material),
		Viewport: [4]float32{float32(r.layout.Width), float32(r.layout.Height)},
	}
	writes := make([]bind_group_provider.BufferWrite, 0, len(items)+1)
	writes = append(writes, bind_group_provider.BufferWrite{Provider: r.frameGroup, Binding: 0, Data: frame.Marshal()})
	for i, item := range items {
		u := item.uniform()
		writes = append(writes, bind_group_provider.SlotWrite(r.drawGroup, 0, i, u.Marshal()))
	}
	r.backend.WriteBuffers(writes)

	r.canvas.Clear()
	r.canvas.Draw(r.font, hudLines(f, r.layout))
	r.canvas.Draw(r.font, labelLines(f, r.layout))
	if err := r.backend.WriteTexture(r.overlayGroup, 0, r.canvasStaging()); err != nil {
		return fmt.Errorf("overlay upload: %w", err)
	}

	if err := r.backend.BeginFrame(); err != nil {
		return err
	}

	frustum := f.Camera.Frustum()
	scene := []bind_group_provider.BindGroupProvider{r.frameGroup, r.drawGroup}
	for slot, item := range items {
		if item.Pipeline != pipelineStars && !item.inFrustum(frustum, r.bounds[item.Mesh]) {
			continue
		}
		mesh, instances := r.meshes[item.Mesh], uint32(1)
		if item.Pipeline == pipelineStars {
			if r.starCount == 0 {
				continue
			}
			mesh, instances = r.starMesh, uint32(r.starCount)
		}
		if mesh == nil {
			log.Printf("[Renderer] no mesh %q, skipping draw", item.Mesh)
			continue
		}
		r.backend.DrawCall(r.pipelines[item.Pipeline], mesh, instances, scene, slot)
	}
	r.backend.DrawCall(r.pipelines[pipelineOverlay], r.meshes[meshQuad], 1,
		[]bind_group_provider.BindGroupProvider{r.overlayGroup}, 0)

	if err := r.backend.EndFrame(); err != nil {
		return err
	}
	r.backend.Present()
	return nil
}

func (r *renderer) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, m := range r.meshes {
		m.Release()
	}
	for _, g := range []bind_group_provider.BindGroupProvider{r.starMesh, r.frameGroup, r.drawGroup, r.overlayGroup} {
		if g != nil {
			g.Release()
		}
	}
	r.backend.Release()
}
