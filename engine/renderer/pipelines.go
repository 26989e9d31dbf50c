package renderer

import (
	_ "embed"

	"github.com/Carmen-Shannon/orrery/engine/model"
	"github.com/Carmen-Shannon/orrery/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/orrery/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/body.wgsl
var bodyShaderSource string

//go:embed assets/star.wgsl
var starShaderSource string

//go:embed assets/overlay.wgsl
var overlayShaderSource string

// Vertex buffer layouts. Slot 0 is always a model.GPUVertex stream; the star
// pipeline adds a per-instance stream in slot 1.
var (
	vertexStride = uint64((&model.GPUVertex{}).Size())

	meshVertexLayout = wgpu.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		},
	}

	positionVertexLayout = wgpu.VertexBufferLayout{
		ArrayStride: vertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		},
	}

	starInstanceLayout = wgpu.VertexBufferLayout{
		ArrayStride: 16,
		StepMode:    wgpu.VertexStepModeInstance,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 2},
		},
	}
)

// frameLayout is group 0 of the scene pipelines: one Frame uniform.
func frameLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Frame Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64((&GPUFrameUniform{}).Size()),
				},
			},
		},
	}
}

// drawLayout is group 1 of the scene pipelines: a Draw uniform addressed by dynamic offset.
func drawLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Draw Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:             wgpu.BufferBindingTypeUniform,
					HasDynamicOffset: true,
					MinBindingSize:   uint64((&GPUDrawUniform{}).Size()),
				},
			},
		},
	}
}

// overlayLayout is group 0 of the overlay pipeline: the HUD texture and its sampler.
func overlayLayout() wgpu.BindGroupLayoutDescriptor {
	return wgpu.BindGroupLayoutDescriptor{
		Label: "Overlay Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageFragment,
				Texture: wgpu.TextureBindingLayout{
					SampleType:    wgpu.TextureSampleTypeFloat,
					ViewDimension: wgpu.TextureViewDimension2D,
				},
			},
			{
				Binding:    1,
				Visibility: wgpu.ShaderStageFragment,
				Sampler: wgpu.SamplerBindingLayout{
					Type: wgpu.SamplerBindingTypeFiltering,
				},
			},
		},
	}
}

// scenePreProcessor resolves the camera, light, material, frame and draw includes.
func scenePreProcessor() shader.PreProcessor {
	return shader.NewPreProcessor(
		shader.WithStruct("frame", GPUFrameUniformSource),
		shader.WithStruct("draw", GPUDrawUniformSource),
	)
}

// scenePipelines builds every pipeline the renderer draws with, in draw order.
//
// Returns:
//   - []pipeline.Pipeline: stars, opaque, lines, translucent, overlay
func scenePipelines() []pipeline.Pipeline {
	pp := scenePreProcessor()
	sceneGroups := []shader.ShaderBuilderOption{
		shader.WithPreProcessor(pp),
		shader.WithBindGroupLayout(0, frameLayout()),
		shader.WithBindGroupLayout(1, drawLayout()),
	}

	bodyShaders := func(key string) []pipeline.PipelineBuilderOption {
		vs := shader.NewShader(key+"_vs", shader.ShaderTypeVertex, bodyShaderSource,
			append(sceneGroups, shader.WithVertexLayouts(meshVertexLayout))...)
		fs := shader.NewShader(key+"_fs", shader.ShaderTypeFragment, bodyShaderSource, sceneGroups...)
		return []pipeline.PipelineBuilderOption{pipeline.WithVertexShader(vs), pipeline.WithFragmentShader(fs)}
	}

	starVS := shader.NewShader("stars_vs", shader.ShaderTypeVertex, starShaderSource,
		append(sceneGroups, shader.WithVertexLayouts(positionVertexLayout, starInstanceLayout))...)
	starFS := shader.NewShader("stars_fs", shader.ShaderTypeFragment, starShaderSource, sceneGroups...)

	overlayGroups := []shader.ShaderBuilderOption{shader.WithBindGroupLayout(0, overlayLayout())}
	overlayVS := shader.NewShader("overlay_vs", shader.ShaderTypeVertex, overlayShaderSource,
		append(overlayGroups, shader.WithVertexLayouts(positionVertexLayout))...)
	overlayFS := shader.NewShader("overlay_fs", shader.ShaderTypeFragment, overlayShaderSource, overlayGroups...)

	return []pipeline.Pipeline{
		pipeline.NewPipeline(pipelineStars,
			pipeline.WithVertexShader(starVS),
			pipeline.WithFragmentShader(starFS),
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
		),
		pipeline.NewPipeline(pipelineOpaque, bodyShaders(pipelineOpaque)...),
		pipeline.NewPipeline(pipelineLines,
			append(bodyShaders(pipelineLines), pipeline.WithTopology(wgpu.PrimitiveTopologyLineList))...,
		),
		pipeline.NewPipeline(pipelineTranslucent,
			append(bodyShaders(pipelineTranslucent),
				pipeline.WithBlendEnabled(true),
				pipeline.WithDepthWriteEnabled(false),
			)...,
		),
		pipeline.NewPipeline(pipelineOverlay,
			pipeline.WithVertexShader(overlayVS),
			pipeline.WithFragmentShader(overlayFS),
			pipeline.WithBlendEnabled(true),
			pipeline.WithDepthTestEnabled(false),
			pipeline.WithDepthWriteEnabled(false),
		),
	}
}
