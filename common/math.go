package common

import (
	"math"
)

// Identity resets a 4x4 column-major matrix to the identity matrix.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	clear(m[:16])
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// Mul4 multiplies two column-major 4x4 matrices: out = a * b.
// out may alias a or b.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix
//   - b: right-hand matrix
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			buf[col*4+row] = sum
		}
	}
	copy(out, buf[:])
}

// Perspective writes a perspective projection targeting the WebGPU [0, 1] depth range.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func Perspective(out []float32, fovY, aspect, near, far float32) {
	f := 1.0 / float32(math.Tan(float64(fovY)/2.0))
	clear(out[:16])
	out[0] = f / aspect
	out[5] = f
	out[10] = far / (near - far)
	out[11] = -1.0
	out[14] = (near * far) / (near - far)
}

// LookAt writes a right-handed view matrix for an eye looking at center.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eyeX, eyeY, eyeZ: camera position in world space
//   - centerX, centerY, centerZ: target point
//   - upX, upY, upZ: up direction, typically (0, 1, 0)
func LookAt(out []float32, eyeX, eyeY, eyeZ, centerX, centerY, centerZ, upX, upY, upZ float32) {
	fz := normalize3([3]float32{eyeX - centerX, eyeY - centerY, eyeZ - centerZ})
	fx := normalize3(cross3([3]float32{upX, upY, upZ}, fz))
	fy := cross3(fz, fx)
	eye := [3]float32{eyeX, eyeY, eyeZ}

	for i, axis := range [3][3]float32{fx, fy, fz} {
		out[i] = axis[0]
		out[4+i] = axis[1]
		out[8+i] = axis[2]
		out[12+i] = -dot3(axis, eye)
	}
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// Translation writes a translation matrix.
func Translation(out []float32, x, y, z float32) {
	Identity(out)
	out[12], out[13], out[14] = x, y, z
}

// Scaling writes a non-uniform scale matrix.
func Scaling(out []float32, x, y, z float32) {
	Identity(out)
	out[0], out[5], out[10] = x, y, z
}

// RotationX writes a rotation of angle radians about +X.
func RotationX(out []float32, angle float32) {
	s, c := sincos(angle)
	Identity(out)
	out[5], out[6] = c, s
	out[9], out[10] = -s, c
}

// RotationY writes a rotation of angle radians about +Y.
func RotationY(out []float32, angle float32) {
	s, c := sincos(angle)
	Identity(out)
	out[0], out[2] = c, -s
	out[8], out[10] = s, c
}

// RotationZ writes a rotation of angle radians about +Z.
func RotationZ(out []float32, angle float32) {
	s, c := sincos(angle)
	Identity(out)
	out[0], out[1] = c, s
	out[4], out[5] = -s, c
}

// Chain multiplies the given matrices left to right into out, so the last
// matrix is applied to a vertex first. An empty chain yields the identity.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - ms: matrices to compose, outermost first
func Chain(out []float32, ms ...[]float32) {
	var acc [16]float32
	Identity(acc[:])
	for _, m := range ms {
		Mul4(acc[:], acc[:], m)
	}
	copy(out, acc[:])
}

// TransformPoint applies a column-major 4x4 matrix to (x, y, z, 1) and
// returns the homogeneous result.
func TransformPoint(m []float32, x, y, z float32) (float32, float32, float32, float32) {
	return m[0]*x + m[4]*y + m[8]*z + m[12],
		m[1]*x + m[5]*y + m[9]*z + m[13],
		m[2]*x + m[6]*y + m[10]*z + m[14],
		m[3]*x + m[7]*y + m[11]*z + m[15]
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float32 {
	return float32(deg * math.Pi / 180.0)
}

func sincos(angle float32) (float32, float32) {
	s, c := math.Sincos(float64(angle))
	return float32(s), float32(c)
}

func cross3(a, b [3]float32) [3]float32 {
	return [3]float32{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b [3]float32) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normalize3(v [3]float32) [3]float32 {
	l := float32(math.Sqrt(float64(dot3(v, v))))
	if l == 0 {
		return v
	}
	return [3]float32{v[0] / l, v[1] / l, v[2] / l}
}
