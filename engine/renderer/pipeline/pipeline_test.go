package pipeline

import (
	"testing"

	"github.com/Carmen-Shannon/orrery/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

const src = `
@vertex
fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }

@fragment
fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }
`

func uniformEntry(binding uint32, vis wgpu.ShaderStage) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: vis,
		Buffer:     wgpu.BufferBindingLayout{Type: wgpu.BufferBindingTypeUniform, MinBindingSize: 16},
	}
}

func TestNewPipelineDefaults(t *testing.T) {
	p := NewPipeline("default")
	if p.PipelineKey() != "default" {
		t.Fatalf("key = %q", p.PipelineKey())
	}
	if !p.DepthTestEnabled() || !p.DepthWriteEnabled() || p.BlendEnabled() {
		t.Fatal("unexpected depth/blend defaults")
	}
	if p.Topology() != wgpu.PrimitiveTopologyTriangleList || p.CullMode() != wgpu.CullModeNone || p.FrontFace() != wgpu.FrontFaceCCW {
		t.Fatal("unexpected primitive defaults")
	}
	if p.BlendState() == nil || p.BlendState().Color.SrcFactor != wgpu.BlendFactorSrcAlpha {
		t.Fatal("default blend state should be source-alpha blending")
	}
	if p.RenderPipeline() != nil {
		t.Fatal("render pipeline should be nil before registration")
	}
}

func TestPipelineOptions(t *testing.T) {
	p := NewPipeline("lines",
		WithTopology(wgpu.PrimitiveTopologyLineList),
		WithDepthWriteEnabled(false),
		WithDepthTestEnabled(false),
		WithBlendEnabled(true),
		WithCullMode(wgpu.CullModeBack),
		WithFrontFace(wgpu.FrontFaceCW),
		WithDepthBias(2, 1.5),
	)
	if p.Topology() != wgpu.PrimitiveTopologyLineList || p.DepthWriteEnabled() || p.DepthTestEnabled() || !p.BlendEnabled() {
		t.Fatal("options not applied")
	}
	if p.CullMode() != wgpu.CullModeBack || p.FrontFace() != wgpu.FrontFaceCW {
		t.Fatal("cull options not applied")
	}
	if p.DepthBias() != 2 || p.DepthBiasSlopeScale() != 1.5 {
		t.Fatal("depth bias not applied")
	}
}

func TestValidate(t *testing.T) {
	vs := shader.NewShader("vs", shader.ShaderTypeVertex, src)
	fs := shader.NewShader("fs", shader.ShaderTypeFragment, src)

	if err := NewPipeline("empty").Validate(); err == nil {
		t.Error("pipeline without shaders should not validate")
	}
	if err := NewPipeline("half", WithVertexShader(vs)).Validate(); err == nil {
		t.Error("pipeline without fragment shader should not validate")
	}
	if err := NewPipeline("ok", WithVertexShader(vs), WithFragmentShader(fs)).Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	if NewPipeline("ok", WithVertexShader(vs)).Shader(shader.ShaderTypeVertex) != vs {
		t.Error("Shader did not return the vertex shader")
	}
}

func TestBindGroupLayoutsMerge(t *testing.T) {
	vs := shader.NewShader("vs", shader.ShaderTypeVertex, src,
		shader.WithBindGroupLayout(0, wgpu.BindGroupLayoutDescriptor{
			Label:   "frame",
			Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageVertex)},
		}),
	)
	fs := shader.NewShader("fs", shader.ShaderTypeFragment, src,
		shader.WithBindGroupLayout(0, wgpu.BindGroupLayoutDescriptor{
			Label:   "frame",
			Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(1, wgpu.ShaderStageFragment), uniformEntry(0, wgpu.ShaderStageFragment)},
		}),
		shader.WithBindGroupLayout(1, wgpu.BindGroupLayoutDescriptor{
			Label:   "draw",
			Entries: []wgpu.BindGroupLayoutEntry{uniformEntry(0, wgpu.ShaderStageFragment)},
		}),
	)

	merged := NewPipeline("merge", WithVertexShader(vs), WithFragmentShader(fs)).BindGroupLayouts()
	if len(merged) != 2 {
		t.Fatalf("groups = %d, want 2", len(merged))
	}
	frame := merged[0]
	if len(frame.Entries) != 2 {
		t.Fatalf("group 0 entries = %d, want 2", len(frame.Entries))
	}
	if frame.Entries[0].Binding != 0 || frame.Entries[1].Binding != 1 {
		t.Fatal("entries not sorted by binding")
	}
	if frame.Entries[0].Visibility != wgpu.ShaderStageVertex|wgpu.ShaderStageFragment {
		t.Fatalf("binding 0 visibility = %v", frame.Entries[0].Visibility)
	}
	if merged[1].Label != "draw" || merged[1].Entries[0].Visibility != wgpu.ShaderStageFragment {
		t.Fatal("fragment-only group not carried over")
	}
}
