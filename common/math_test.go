package common

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestChainAppliesLastMatrixFirst(t *testing.T) {
	var rot, trans, m [16]float32
	RotationY(rot[:], DegToRad(90))
	Translation(trans[:], 10, 0, 0)

	// Rotate a point already moved out along +X.
	Chain(m[:], rot[:], trans[:])
	x, y, z, w := TransformPoint(m[:], 0, 0, 0)
	if !approx(x, 0) || !approx(y, 0) || !approx(z, -10) || !approx(w, 1) {
		t.Fatalf("got (%f, %f, %f, %f), want (0, 0, -10, 1)", x, y, z, w)
	}
}

func TestRotationsAreRightHanded(t *testing.T) {
	tests := []struct {
		name  string
		build func([]float32, float32)
		in    [3]float32
		want  [3]float32
	}{
		{"x", RotationX, [3]float32{0, 1, 0}, [3]float32{0, 0, 1}},
		{"y", RotationY, [3]float32{0, 0, 1}, [3]float32{1, 0, 0}},
		{"z", RotationZ, [3]float32{1, 0, 0}, [3]float32{0, 1, 0}},
	}
	for _, tt := range tests {
		var m [16]float32
		tt.build(m[:], DegToRad(90))
		x, y, z, _ := TransformPoint(m[:], tt.in[0], tt.in[1], tt.in[2])
		if !approx(x, tt.want[0]) || !approx(y, tt.want[1]) || !approx(z, tt.want[2]) {
			t.Errorf("%s: got (%f, %f, %f), want %v", tt.name, x, y, z, tt.want)
		}
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 0, 0, 40, 0, 0, 0, 0, 1, 0)

	x, y, z, _ := TransformPoint(view[:], 0, 0, 40)
	if !approx(x, 0) || !approx(y, 0) || !approx(z, 0) {
		t.Fatalf("eye maps to (%f, %f, %f), want origin", x, y, z)
	}
	_, _, z, _ = TransformPoint(view[:], 0, 0, 0)
	if !approx(z, -40) {
		t.Fatalf("target depth = %f, want -40", z)
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var proj [16]float32
	Perspective(proj[:], DegToRad(45), 1, 1, 100)

	_, _, z, w := TransformPoint(proj[:], 0, 0, -1)
	if !approx(z/w, 0) {
		t.Fatalf("near plane depth = %f, want 0", z/w)
	}
	_, _, z, w = TransformPoint(proj[:], 0, 0, -100)
	if !approx(z/w, 1) {
		t.Fatalf("far plane depth = %f, want 1", z/w)
	}
}

func TestFrustumIntersectsSphere(t *testing.T) {
	var view, proj, vp [16]float32
	LookAt(view[:], 0, 0, 40, 0, 0, 0, 0, 1, 0)
	Perspective(proj[:], DegToRad(45), 16.0/9.0, 1, 200)
	Mul4(vp[:], proj[:], view[:])
	f := ExtractFrustumFromMatrix(vp[:])

	if !f.IntersectsSphere(0, 0, 0, 1) {
		t.Fatal("origin should be visible")
	}
	if f.IntersectsSphere(0, 0, 60, 1) {
		t.Fatal("point behind the eye should be culled")
	}
	if f.IntersectsSphere(500, 0, 0, 1) {
		t.Fatal("point far to the side should be culled")
	}
}

func TestClampAndWrap(t *testing.T) {
	if got := Clamp(0.05, 0.1, 10.0); got != 0.1 {
		t.Fatalf("Clamp low = %v", got)
	}
	if got := Clamp(12.0, 0.1, 10.0); got != 10 {
		t.Fatalf("Clamp high = %v", got)
	}
	tests := map[float64]float64{
		0:     0,
		359.5: 359.5,
		360:   0,
		725:   5,
		-30:   330,
	}
	for in, want := range tests {
		if got := WrapDegrees(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestIsSpecialKey(t *testing.T) {
	for _, k := range []uint32{KeyUp, KeyDown, KeyLeft, KeyRight, KeyF1, KeyHome} {
		if !IsSpecialKey(k) {
			t.Errorf("IsSpecialKey(%d) = false", k)
		}
	}
	for _, k := range []uint32{KeySpace, KeyW, KeyEsc, KeyKPAdd, Key1} {
		if IsSpecialKey(k) {
			t.Errorf("IsSpecialKey(%d) = true", k)
		}
	}
}
