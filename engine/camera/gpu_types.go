package camera

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUCameraUniformSource is the canonical WGSL definition of the CameraUniform
// struct. Matches GPUCameraUniform layout exactly (80 bytes).
//
//go:embed assets/camera.wgsl
var GPUCameraUniformSource string

// GPUCameraUniform is the GPU layout of the per-frame camera block.
// Matches the WGSL CameraUniform struct (see GPUCameraUniformSource).
// Size: 80 bytes.
type GPUCameraUniform struct {
	ViewProj       [16]float32 // offset  0: projection * view
	CameraPosition [3]float32  // offset 64: world-space eye position
	_pad           float32     // offset 76
}

// NewGPUCameraUniform snapshots cam into its GPU layout.
//
// Parameters:
//   - cam: camera whose matrices are current
//
// Returns:
//   - GPUCameraUniform: the packed uniform
func NewGPUCameraUniform(cam Camera) GPUCameraUniform {
	u := GPUCameraUniform{ViewProj: cam.ViewProjectionMatrix()}
	if ctrl := cam.Controller(); ctrl != nil {
		u.CameraPosition[0], u.CameraPosition[1], u.CameraPosition[2] = ctrl.ViewVector()
	}
	return u
}

// Size returns the size of the GPUCameraUniform struct in bytes.
func (g *GPUCameraUniform) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the uniform into a little-endian byte buffer.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCameraUniform) Marshal() []byte {
	buf := make([]byte, g.Size())
	for i := range 16 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.ViewProj[i]))
	}
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[64+i*4:], math.Float32bits(g.CameraPosition[i]))
	}
	return buf
}
