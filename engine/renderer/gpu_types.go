package renderer

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/Carmen-Shannon/orrery/engine/camera"
	"github.com/Carmen-Shannon/orrery/engine/light"
	"github.com/Carmen-Shannon/orrery/engine/renderer/material"
	"github.com/Carmen-Shannon/orrery/engine/starfield"
)

// drawSlotStride is the distance between per-draw uniform slots. It equals the
// largest minUniformBufferOffsetAlignment WebGPU allows.
const drawSlotStride = 256

// GPUFrameUniformSource is the canonical WGSL definition of the Frame struct.
// Matches GPUFrameUniform layout exactly (176 bytes).
//
//go:embed assets/frame.wgsl
var GPUFrameUniformSource string

// GPUDrawUniformSource is the canonical WGSL definition of the Draw struct.
// Matches GPUDrawUniform layout exactly (96 bytes).
//
//go:embed assets/draw.wgsl
var GPUDrawUniformSource string

// GPUFrameUniform is the per-frame uniform block shared by every body and star draw.
// Size: 176 bytes.
type GPUFrameUniform struct {
	Camera   camera.GPUCameraUniform // offset   0
	Light    light.GPULight          // offset  80
	Material material.GPUMaterial    // offset 144
	Viewport [4]float32              // offset 160: width, height in pixels
}

// Size returns the size of the GPUFrameUniform struct in bytes.
func (g *GPUFrameUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 176-byte buffer ready for GPU upload
func (g *GPUFrameUniform) Marshal() []byte {
	buf := make([]byte, 0, 176)
	buf = append(buf, g.Camera.Marshal()...)
	buf = append(buf, g.Light.Marshal()...)
	buf = append(buf, g.Material.Marshal()...)
	return appendFloats(buf, g.Viewport[:]...)
}

// GPUDrawUniform is the per-draw uniform written into one dynamic-offset slot.
// Size: 96 bytes.
type GPUDrawUniform struct {
	Model  [16]float32 // offset  0: column-major model matrix
	Color  [4]float32  // offset 64: RGBA
	Params [4]float32  // offset 80: x = 1 for Phong shading, 0 for flat colour
}

// Size returns the size of the GPUDrawUniform struct in bytes.
func (g *GPUDrawUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 96-byte buffer ready for GPU upload
func (g *GPUDrawUniform) Marshal() []byte {
	buf := make([]byte, 0, 96)
	buf = appendFloats(buf, g.Model[:]...)
	buf = appendFloats(buf, g.Color[:]...)
	return appendFloats(buf, g.Params[:]...)
}

// GPUStarInstance is one per-instance record of the star vertex buffer.
// Size: 16 bytes.
type GPUStarInstance struct {
	Position [3]float32 // offset  0
	Size     float32    // offset 12: point size in pixels
}

// MarshalStars packs star points into the instance buffer layout.
//
// Parameters:
//   - stars: the star field
//
// Returns:
//   - []byte: 16 bytes per star
func MarshalStars(stars []starfield.Point) []byte {
	buf := make([]byte, 0, len(stars)*16)
	for _, s := range stars {
		buf = appendFloats(buf, s.X, s.Y, s.Z, float32(s.Size))
	}
	return buf
}

func appendFloats(buf []byte, fs ...float32) []byte {
	for _, f := range fs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
	}
	return buf
}
