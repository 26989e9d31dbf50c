package common

import (
	"math"
)

// Plane represents the plane ax + by + cz + d = 0 with (a, b, c) as Normal and d as Distance.
type Plane struct {
	Normal   [3]float32
	Distance float32
}

// Frustum holds the six clip planes of a view volume, oriented so the positive
// half-space is inside.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
	FrustumFar
)

// ExtractFrustumFromMatrix derives normalized clip planes from a column-major
// view-projection matrix (Gribb/Hartmann). The near plane uses the WebGPU
// [0, 1] depth convention, so it is row 2 alone rather than row 3 + row 2.
//
// Parameters:
//   - viewProj: 16 float32 values, projection * view
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj []float32) Frustum {
	row := func(r int) [4]float32 {
		return [4]float32{viewProj[r], viewProj[4+r], viewProj[8+r], viewProj[12+r]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	combos := [6][4]float32{}
	for i := 0; i < 4; i++ {
		combos[FrustumLeft][i] = r3[i] + r0[i]
		combos[FrustumRight][i] = r3[i] - r0[i]
		combos[FrustumBottom][i] = r3[i] + r1[i]
		combos[FrustumTop][i] = r3[i] - r1[i]
		combos[FrustumNear][i] = r2[i]
		combos[FrustumFar][i] = r3[i] - r2[i]
	}

	var f Frustum
	for i, c := range combos {
		p := Plane{Normal: [3]float32{c[0], c[1], c[2]}, Distance: c[3]}
		length := float32(math.Sqrt(float64(dot3(p.Normal, p.Normal))))
		if length > 0 {
			p.Normal = [3]float32{p.Normal[0] / length, p.Normal[1] / length, p.Normal[2] / length}
			p.Distance /= length
		}
		f.Planes[i] = p
	}
	return f
}

// IntersectsSphere reports whether a sphere overlaps the frustum.
//
// Parameters:
//   - x, y, z: sphere centre in world space
//   - radius: sphere radius
//
// Returns:
//   - bool: false only when the sphere lies entirely outside some plane
func (f Frustum) IntersectsSphere(x, y, z, radius float32) bool {
	for _, p := range f.Planes {
		if dot3(p.Normal, [3]float32{x, y, z})+p.Distance < -radius {
			return false
		}
	}
	return true
}
