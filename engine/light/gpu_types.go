package light

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/lucasb-eyer/go-colorful"
)

// GPULightSource is the canonical WGSL definition of the Light struct.
// Matches GPULight layout exactly (64 bytes).
//
//go:embed assets/light.wgsl
var GPULightSource string

// GPULight is the GPU-aligned representation of the scene light.
// Matches the WGSL Light struct layout exactly (see GPULightSource).
// Size: 64 bytes.
type GPULight struct {
	Position [3]float32 // offset  0: world-space position
	_pad     float32    // offset 12
	Ambient  [4]float32 // offset 16: RGB, alpha unused
	Diffuse  [4]float32 // offset 32: RGB, alpha unused
	Specular [4]float32 // offset 48: RGB, alpha unused
}

// Size returns the size of the GPULight struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes
func (g *GPULight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPULight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload
func (g *GPULight) Marshal() []byte {
	buf := make([]byte, 64)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
	}
	for i := range 4 {
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Ambient[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:], math.Float32bits(g.Diffuse[i]))
		binary.LittleEndian.PutUint32(buf[48+i*4:], math.Float32bits(g.Specular[i]))
	}
	return buf
}

// ToGPULight converts a Light into its GPU layout.
//
// Parameters:
//   - l: the light to convert
//
// Returns:
//   - GPULight: the packed representation
func ToGPULight(l Light) GPULight {
	return GPULight{
		Position: l.Position(),
		Ambient:  rgba(l.Ambient()),
		Diffuse:  rgba(l.Diffuse()),
		Specular: rgba(l.Specular()),
	}
}

func rgba(c colorful.Color) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), 1}
}
