package renderer

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/orrery/common"
	"github.com/Carmen-Shannon/orrery/engine/body"
)

func countByPipeline(items []drawItem) map[string]int {
	counts := make(map[string]int)
	for _, it := range items {
		counts[it.Pipeline]++
	}
	return counts
}

func TestBuildDrawListDefaultCatalog(t *testing.T) {
	items := buildDrawList(body.DefaultCatalog())

	// Sun: 2 opaque + 1 translucent layer. Nine planets: a sphere and an
	// orbit line each. Earth and Neptune add a shell, Saturn a ring.
	want := map[string]int{pipelineOpaque: 12, pipelineLines: 9, pipelineTranslucent: 3}
	got := countByPipeline(items)
	for k, n := range want {
		if got[k] != n {
			t.Errorf("%s draws = %d, want %d", k, got[k], n)
		}
	}
	if len(items) != 24 {
		t.Fatalf("len(items) = %d, want 24", len(items))
	}
}

func TestBuildDrawListOrder(t *testing.T) {
	rank := map[string]int{pipelineOpaque: 0, pipelineLines: 1, pipelineTranslucent: 2}
	items := buildDrawList(body.DefaultCatalog())
	for i := 1; i < len(items); i++ {
		if rank[items[i].Pipeline] < rank[items[i-1].Pipeline] {
			t.Fatalf("item %d (%s) drawn after %s", i, items[i].Pipeline, items[i-1].Pipeline)
		}
	}
}

func TestBuildDrawListSkipsHidden(t *testing.T) {
	bodies := body.DefaultCatalog()
	for i := range bodies {
		if bodies[i].Name == "Earth" || bodies[i].Name == "Saturn" {
			bodies[i].Visible = false
		}
	}
	got := countByPipeline(buildDrawList(bodies))
	if got[pipelineOpaque] != 9 || got[pipelineLines] != 7 || got[pipelineTranslucent] != 2 {
		t.Fatalf("counts = %v", got)
	}
	for _, it := range buildDrawList(bodies) {
		if it.Mesh == ringMeshKey("Saturn") {
			t.Fatal("hidden Saturn still draws its ring")
		}
	}
}

func TestBuildDrawListEmpty(t *testing.T) {
	if items := buildDrawList(nil); len(items) != 0 {
		t.Fatalf("len = %d, want 0", len(items))
	}
}

func TestStarLayers(t *testing.T) {
	sun := body.DefaultCatalog()[0]
	items := buildDrawList([]body.CelestialBody{sun})
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	wantScale := []float32{0.9, 1.0, 1.2}
	for i, it := range items {
		if it.Lit {
			t.Errorf("star layer %d is lit", i)
		}
		if it.Mesh != meshSphere {
			t.Errorf("star layer %d mesh = %s", i, it.Mesh)
		}
		// The spin and tilt are rotations, so the first column keeps the scale as its length.
		col := math.Sqrt(float64(it.Model[0]*it.Model[0] + it.Model[1]*it.Model[1] + it.Model[2]*it.Model[2]))
		if want := float64(wantScale[i] * 2.0); math.Abs(col-want) > 1e-4 {
			t.Errorf("layer %d scale = %f, want %f", i, col, want)
		}
	}
	if items[2].Pipeline != pipelineTranslucent || items[2].Color[3] != 0.5 {
		t.Fatalf("outer layer = %+v, want translucent with alpha 0.5", items[2])
	}
}

func TestOrbitRingCentredOnOrigin(t *testing.T) {
	mars := body.DefaultCatalog()[4]
	mars.OrbitAngle = 123
	var ring *drawItem
	for _, it := range buildDrawList([]body.CelestialBody{mars}) {
		if it.Pipeline == pipelineLines {
			ring = &it
		}
	}
	if ring == nil {
		t.Fatal("no orbit ring")
	}
	if ring.Model[0] != 13 || ring.Model[5] != 1 || ring.Model[10] != 13 {
		t.Fatalf("ring scale = (%f, %f, %f), want (13, 1, 13)", ring.Model[0], ring.Model[5], ring.Model[10])
	}
	if ring.Model[12] != 0 || ring.Model[13] != 0 || ring.Model[14] != 0 {
		t.Fatal("ring is not centred on the origin")
	}
}

func TestDrawItemInFrustum(t *testing.T) {
	var proj, view, vp [16]float32
	common.Perspective(proj[:], common.DegToRad(45), 1, 0.1, 1000)
	common.LookAt(view[:], 0, 0, 40, 0, 0, 0, 0, 1, 0)
	common.Mul4(vp[:], proj[:], view[:])
	frustum := common.ExtractFrustumFromMatrix(vp[:])

	place := func(x, y, z, s float32) drawItem {
		var tr, sc [16]float32
		common.Translation(tr[:], x, y, z)
		common.Scaling(sc[:], s, s, s)
		var item drawItem
		common.Chain(item.Model[:], tr[:], sc[:])
		return item
	}

	tests := []struct {
		name string
		item drawItem
		want bool
	}{
		{"origin", place(0, 0, 0, 1), true},
		{"behind eye", place(0, 0, 60, 1), false},
		{"far to the side", place(500, 0, 0, 1), false},
		{"large orbit around the view", place(0, 0, 0, 80), true},
		{"scaled into view", place(30, 0, 0, 20), true},
	}
	for _, tt := range tests {
		if got := tt.item.inFrustum(frustum, 1); got != tt.want {
			t.Errorf("%s: inFrustum = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSurfaceFollowsPosition(t *testing.T) {
	for _, angle := range []float64{0, 45, 90, 271.5} {
		earth := body.DefaultCatalog()[3]
		earth.OrbitAngle = angle
		earth.RotationAngle = 33
		var surface drawItem
		for _, it := range buildDrawList([]body.CelestialBody{earth}) {
			if it.Pipeline == pipelineOpaque {
				surface = it
			}
		}
		x, y, z, _ := common.TransformPoint(surface.Model[:], 0, 0, 0)
		px, py, pz := earth.Position()
		if math.Abs(float64(x)-px) > 1e-4 || math.Abs(float64(y)-py) > 1e-4 || math.Abs(float64(z)-pz) > 1e-4 {
			t.Fatalf("angle %v: centre = (%f, %f, %f), want (%f, %f, %f)", angle, x, y, z, px, py, pz)
		}
		if !surface.Lit {
			t.Fatal("planet surface should be lit")
		}
	}
}

func TestAtmosphereShell(t *testing.T) {
	earth := body.DefaultCatalog()[3]
	var shell *drawItem
	for _, it := range buildDrawList([]body.CelestialBody{earth}) {
		if it.Pipeline == pipelineTranslucent {
			shell = &it
		}
	}
	if shell == nil {
		t.Fatal("no atmosphere shell")
	}
	if shell.Color[3] != atmosphereAlpha {
		t.Fatalf("alpha = %f, want %f", shell.Color[3], atmosphereAlpha)
	}
}

func TestRingUsesPerBodyMesh(t *testing.T) {
	saturn := body.DefaultCatalog()[6]
	found := false
	for _, it := range buildDrawList([]body.CelestialBody{saturn}) {
		if it.Mesh == ringMeshKey("Saturn") {
			found = true
			if it.Pipeline != pipelineOpaque || !it.Lit {
				t.Fatalf("ring = %+v, want lit opaque", it)
			}
		}
	}
	if !found {
		t.Fatal("Saturn has no ring draw")
	}
}

func TestDrawBudget(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, defaultDrawBudget},
		{5, defaultDrawBudget},
		{10, 71},
		{100, 701},
	}
	for _, tt := range tests {
		if got := drawBudget(tt.n); got != tt.want {
			t.Errorf("drawBudget(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	// The worst case must fit: every body a ringed star with an atmosphere.
	bodies := body.DefaultCatalog()
	for i := range bodies {
		bodies[i].Profile = body.ProfileStar | body.ProfileRing | body.ProfileAtmosphere
	}
	if n := len(buildDrawList(bodies)) + starFieldDrawSlots; n > drawBudget(len(bodies)) {
		t.Fatalf("%d draws exceed budget %d", n, drawBudget(len(bodies)))
	}
}

func TestDrawItemUniform(t *testing.T) {
	lit := drawItem{Lit: true, Color: [4]float32{1, 0, 0, 1}}
	if u := lit.uniform(); u.Params[0] != 1 || u.Color != lit.Color {
		t.Fatalf("uniform = %+v", u)
	}
	if u := (drawItem{}).uniform(); u.Params[0] != 0 {
		t.Fatal("unlit item has lighting enabled")
	}
}

func TestStarFieldItem(t *testing.T) {
	item := starFieldItem(16.0 / 9.0)
	if item.Pipeline != pipelineStars || item.Mesh != meshQuad {
		t.Fatalf("item = %+v", item)
	}
	var want [16]float32
	common.Perspective(want[:], common.DegToRad(60), 16.0/9.0, 0.1, 200)
	if item.Model != want {
		t.Fatal("star field does not use the fixed 60 degree projection")
	}
}
