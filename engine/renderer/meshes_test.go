package renderer

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/orrery/engine/body"
)

func TestBuildMeshes(t *testing.T) {
	pool := newMeshPool(2)
	defer pool.Stop()

	meshes := buildMeshes(pool, body.DefaultCatalog())
	for _, key := range []string{meshSphere, meshCircle, meshQuad, ringMeshKey("Saturn")} {
		if meshes[key] == nil {
			t.Fatalf("missing mesh %q", key)
		}
	}
	if len(meshes) != 4 {
		t.Fatalf("built %d meshes, want 4", len(meshes))
	}
	if got, want := meshes[meshSphere].IndexCount(), sphereSegments*sphereSegments*6; got != want {
		t.Errorf("sphere indices = %d, want %d", got, want)
	}
	if got, want := meshes[meshCircle].IndexCount(), orbitRingSegments*2; got != want {
		t.Errorf("circle indices = %d, want %d", got, want)
	}

	// Saturn's ring radius scales with the body.
	want := 0.94*ringRadiusFactor + ringTubeRadius
	if got := float64(meshes[ringMeshKey("Saturn")].BoundingRadius()); math.Abs(got-want) > 1e-5 {
		t.Errorf("ring bounding radius = %f, want %f", got, want)
	}
}

func TestBuildMeshesNoRings(t *testing.T) {
	pool := newMeshPool(1)
	defer pool.Stop()

	meshes := buildMeshes(pool, body.DefaultCatalog()[:3])
	if len(meshes) != 3 {
		t.Fatalf("built %d meshes, want 3", len(meshes))
	}
}
