package model

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUVertex is the GPU layout of one mesh vertex, matching the VertexInput
// struct of the renderer's WGSL shaders.
// Size: 24 bytes.
type GPUVertex struct {
	Position [3]float32 // offset  0: model-space position
	Normal   [3]float32 // offset 12: unit normal, zero for line meshes
}

// Size returns the size of the GPUVertex struct in bytes.
func (g *GPUVertex) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the vertex into a little-endian byte buffer.
//
// Returns:
//   - []byte: 24-byte buffer ready for GPU upload
func (g *GPUVertex) Marshal() []byte {
	buf := make([]byte, 24)
	for i := range 3 {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Position[i]))
		binary.LittleEndian.PutUint32(buf[12+i*4:], math.Float32bits(g.Normal[i]))
	}
	return buf
}

// MarshalVertices serializes a vertex slice back to back.
func MarshalVertices(vs []GPUVertex) []byte {
	out := make([]byte, 0, len(vs)*24)
	for i := range vs {
		out = append(out, vs[i].Marshal()...)
	}
	return out
}

// MarshalIndices serializes 32-bit indices in little-endian order.
func MarshalIndices(idx []uint32) []byte {
	out := make([]byte, len(idx)*4)
	for i, v := range idx {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}
