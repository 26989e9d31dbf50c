package model

import (
	"math"
)

// Sphere builds a unit UV sphere centred at the origin with its poles on ±Y.
//
// Parameters:
//   - slices: segments around Y, at least 3
//   - stacks: segments from pole to pole, at least 2
//
// Returns:
//   - Model: a triangle mesh of (slices+1)*(stacks+1) vertices
func Sphere(slices, stacks int) Model {
	slices, stacks = max(slices, 3), max(stacks, 2)

	vertices := make([]GPUVertex, 0, (slices+1)*(stacks+1))
	for st := 0; st <= stacks; st++ {
		phi := math.Pi * float64(st) / float64(stacks)
		sinPhi, cosPhi := math.Sincos(phi)
		for sl := 0; sl <= slices; sl++ {
			theta := 2 * math.Pi * float64(sl) / float64(slices)
			sinTheta, cosTheta := math.Sincos(theta)
			n := [3]float32{float32(sinPhi * cosTheta), float32(cosPhi), float32(sinPhi * sinTheta)}
			vertices = append(vertices, GPUVertex{Position: n, Normal: n})
		}
	}

	return NewModel(
		WithName("sphere"),
		WithGeometry(vertices, gridIndices(stacks, slices)),
		WithBoundingRadius(1),
	)
}

// Torus builds a torus around the Z axis lying in the XY plane.
//
// Parameters:
//   - majorRadius: distance from the origin to the tube centre
//   - tubeRadius: radius of the tube
//   - sides: segments around the tube, at least 3
//   - rings: segments around the Z axis, at least 3
//
// Returns:
//   - Model: a triangle mesh
func Torus(majorRadius, tubeRadius float32, sides, rings int) Model {
	sides, rings = max(sides, 3), max(rings, 3)
	R, r := float64(majorRadius), float64(tubeRadius)

	vertices := make([]GPUVertex, 0, (sides+1)*(rings+1))
	for side := 0; side <= sides; side++ {
		v := 2 * math.Pi * float64(side) / float64(sides)
		sinV, cosV := math.Sincos(v)
		for ring := 0; ring <= rings; ring++ {
			u := 2 * math.Pi * float64(ring) / float64(rings)
			sinU, cosU := math.Sincos(u)
			vertices = append(vertices, GPUVertex{
				Position: [3]float32{float32((R + r*cosV) * cosU), float32((R + r*cosV) * sinU), float32(r * sinV)},
				Normal:   [3]float32{float32(cosV * cosU), float32(cosV * sinU), float32(sinV)},
			})
		}
	}

	return NewModel(
		WithName("torus"),
		WithGeometry(vertices, gridIndices(sides, rings)),
		WithBoundingRadius(majorRadius+tubeRadius),
	)
}

// Circle builds a closed unit circle in the XZ plane as a line list.
//
// Parameters:
//   - segments: number of line segments, at least 3
//
// Returns:
//   - Model: a line mesh with 2*segments indices
func Circle(segments int) Model {
	segments = max(segments, 3)
	vertices := make([]GPUVertex, segments)
	indices := make([]uint32, 0, segments*2)
	for i := range vertices {
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		vertices[i].Position = [3]float32{float32(c), 0, float32(s)}
		indices = append(indices, uint32(i), uint32((i+1)%segments))
	}
	return NewModel(
		WithName("circle"),
		WithTopology(TopologyLines),
		WithGeometry(vertices, indices),
		WithBoundingRadius(1),
	)
}

// Quad builds a two-triangle square spanning [-1, 1] in XY, facing +Z.
func Quad() Model {
	vertices := []GPUVertex{
		{Position: [3]float32{-1, -1, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{1, -1, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{1, 1, 0}, Normal: [3]float32{0, 0, 1}},
		{Position: [3]float32{-1, 1, 0}, Normal: [3]float32{0, 0, 1}},
	}
	return NewModel(
		WithName("quad"),
		WithGeometry(vertices, []uint32{0, 1, 2, 0, 2, 3}),
	)
}

// gridIndices triangulates a (rows+1) x (cols+1) vertex grid laid out row by
// row, emitting (a, a+1, b) and (a+1, b+1, b) where b is one row below a.
func gridIndices(rows, cols int) []uint32 {
	stride := uint32(cols + 1)
	indices := make([]uint32, 0, rows*cols*6)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			a := uint32(r)*stride + uint32(c)
			b := a + stride
			indices = append(indices, a, a+1, b, a+1, b+1, b)
		}
	}
	return indices
}

func length3(x, y, z float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y + z*z)))
}
