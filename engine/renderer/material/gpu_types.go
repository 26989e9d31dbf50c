package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialSource is the canonical WGSL definition of the Material struct.
// Matches GPUMaterial layout exactly (16 bytes).
//
//go:embed assets/material.wgsl
var GPUMaterialSource string

// GPUMaterial is the GPU-aligned uniform block of a Material.
// Size: 16 bytes.
type GPUMaterial struct {
	SpecularStrength float32    // offset 0
	Shininess        float32    // offset 4
	_pad             [2]float32 // offset 8
}

// ToGPUMaterial converts a Material into its GPU layout.
func ToGPUMaterial(m Material) GPUMaterial {
	return GPUMaterial{SpecularStrength: m.SpecularStrength(), Shininess: m.Shininess()}
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 16-byte buffer ready for GPU upload.
func (g *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(g.SpecularStrength))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(g.Shininess))
	return buf
}
