package model

import (
	"math"
	"testing"
)

func checkIndices(t *testing.T, m Model) {
	t.Helper()
	n := uint32(len(m.Vertices()))
	for i, idx := range m.Indices() {
		if idx >= n {
			t.Fatalf("%s: index %d = %d out of range (%d vertices)", m.Name(), i, idx, n)
		}
	}
}

func TestSphere(t *testing.T) {
	m := Sphere(40, 40)
	if got, want := len(m.Vertices()), 41*41; got != want {
		t.Fatalf("vertices = %d, want %d", got, want)
	}
	if got, want := m.IndexCount(), 40*40*6; got != want {
		t.Fatalf("indices = %d, want %d", got, want)
	}
	checkIndices(t, m)
	for _, v := range m.Vertices() {
		if l := length3(v.Position[0], v.Position[1], v.Position[2]); math.Abs(float64(l-1)) > 1e-5 {
			t.Fatalf("vertex off the unit sphere: %v", v.Position)
		}
	}
	if m.Topology() != TopologyTriangles || m.BoundingRadius() != 1 {
		t.Fatalf("unexpected sphere metadata")
	}
}

func TestSphereClampsSegments(t *testing.T) {
	m := Sphere(0, 0)
	if got := len(m.Vertices()); got != 4*3 {
		t.Fatalf("vertices = %d, want 12", got)
	}
}

func TestTorus(t *testing.T) {
	m := Torus(1.692, 0.2, 20, 20)
	checkIndices(t, m)
	if got, want := m.IndexCount(), 20*20*6; got != want {
		t.Fatalf("indices = %d, want %d", got, want)
	}
	for _, v := range m.Vertices() {
		p := v.Position
		ring := math.Hypot(float64(p[0]), float64(p[1]))
		tube := math.Hypot(ring-1.692, float64(p[2]))
		if math.Abs(tube-0.2) > 1e-4 {
			t.Fatalf("vertex %v is %f from the tube centre, want 0.2", p, tube)
		}
	}
	if math.Abs(float64(m.BoundingRadius())-1.892) > 1e-6 {
		t.Fatalf("bounding radius = %f", m.BoundingRadius())
	}
}

func TestCircle(t *testing.T) {
	m := Circle(72)
	if m.Topology() != TopologyLines {
		t.Fatal("circle should be a line mesh")
	}
	if len(m.Vertices()) != 72 || m.IndexCount() != 144 {
		t.Fatalf("vertices, indices = %d, %d", len(m.Vertices()), m.IndexCount())
	}
	checkIndices(t, m)
	idx := m.Indices()
	if idx[len(idx)-1] != 0 {
		t.Fatal("circle is not closed")
	}
	for _, v := range m.Vertices() {
		if v.Position[1] != 0 {
			t.Fatalf("vertex %v off the XZ plane", v.Position)
		}
	}
}

func TestQuadAndMarshal(t *testing.T) {
	m := Quad()
	checkIndices(t, m)
	if len(m.VertexData()) != 4*24 {
		t.Fatalf("vertex data = %d bytes", len(m.VertexData()))
	}
	if len(m.IndexData()) != 6*4 {
		t.Fatalf("index data = %d bytes", len(m.IndexData()))
	}
	if math.Abs(float64(m.BoundingRadius())-math.Sqrt2) > 1e-6 {
		t.Fatalf("bounding radius = %f, want sqrt(2)", m.BoundingRadius())
	}
}
