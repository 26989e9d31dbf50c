package renderer

import (
	"math"

	"github.com/Carmen-Shannon/orrery/common"
	"github.com/Carmen-Shannon/orrery/engine/body"
	"github.com/lucasb-eyer/go-colorful"
)

// Pipeline keys.
const (
	pipelineStars       = "stars"
	pipelineOpaque      = "opaque"
	pipelineLines       = "lines"
	pipelineTranslucent = "translucent"
	pipelineOverlay     = "overlay"
)

// Mesh keys. Ring meshes are keyed per body because their size depends on the body radius.
const (
	meshSphere = "sphere"
	meshCircle = "circle"
	meshQuad   = "quad"
	ringPrefix = "ring:"
)

// Geometry and colours of the extra layers drawn around bodies.
const (
	ringTiltDegrees   = 25.0
	ringTubeRadius    = 0.2
	ringRadiusFactor  = 1.8
	atmosphereScale   = 1.05
	atmosphereAlpha   = 0.3
	starFieldFovDeg   = 60.0
	starFieldNear     = 0.1
	starFieldFar      = 200.0
	orbitRingSegments = 72
	sphereSegments    = 40
	ringMeshSegments  = 20
	starLayerCount    = 3
)

// Per-draw uniform slot budget.
const (
	defaultDrawBudget  = 64
	perBodyDrawBudget  = 4
	starFieldDrawSlots = 1
)

var (
	orbitRingColor = [4]float32{0.3, 0.3, 0.3, 1}
	ringColor      = colorful.Color{R: 0.8, G: 0.8, B: 0.6}
	starFieldColor = [4]float32{1, 1, 1, 1}

	// starLayers are the nested glow spheres of a star, innermost first.
	starLayers = [starLayerCount]struct {
		scale float32
		color [4]float32
	}{
		{0.9, [4]float32{1.0, 0.9, 0.2, 1}},
		{1.0, [4]float32{1.0, 0.7, 0.1, 1}},
		{1.2, [4]float32{1.0, 0.5, 0.1, 0.5}},
	}
)

// drawItem is one draw call of the scene pass.
type drawItem struct {
	Pipeline string
	Mesh     string
	Model    [16]float32
	Color    [4]float32
	Lit      bool
}

// uniform packs the item into its dynamic uniform slot layout.
func (d drawItem) uniform() GPUDrawUniform {
	u := GPUDrawUniform{Model: d.Model, Color: d.Color}
	if d.Lit {
		u.Params[0] = 1
	}
	return u
}

// inFrustum reports whether the item's mesh bounds, placed by its model
// matrix, overlap the view volume. The radius is scaled by the largest axis.
func (d drawItem) inFrustum(f common.Frustum, meshRadius float32) bool {
	x, y, z, _ := common.TransformPoint(d.Model[:], 0, 0, 0)
	m := d.Model
	scale := max(axisLength(m[0], m[1], m[2]), axisLength(m[4], m[5], m[6]), axisLength(m[8], m[9], m[10]))
	return f.IntersectsSphere(x, y, z, meshRadius*scale)
}

func axisLength(x, y, z float32) float32 {
	return float32(math.Sqrt(float64(x*x + y*y + z*z)))
}

// ringMeshKey returns the mesh key of the ring around the named body.
func ringMeshKey(name string) string {
	return ringPrefix + name
}

// buildDrawList turns the body snapshot into draw calls grouped by pipeline:
// every opaque item first, then orbit lines, then translucent shells, so
// blended layers composite over finished opaque geometry.
//
// Parameters:
//   - bodies: the body snapshot in catalog order
//
// Returns:
//   - []drawItem: the ordered draw calls
func buildDrawList(bodies []body.CelestialBody) []drawItem {
	var opaque, lines, translucent []drawItem

	var orbit, translate, tilt, spin, scale, base, ringTilt [16]float32
	for _, b := range bodies {
		if !b.Visible {
			continue
		}

		common.RotationY(orbit[:], common.DegToRad(b.OrbitAngle))
		common.Translation(translate[:], float32(b.Distance), 0, 0)
		common.RotationZ(tilt[:], common.DegToRad(b.AxialTilt))
		common.RotationY(spin[:], common.DegToRad(b.RotationAngle))
		common.Chain(base[:], orbit[:], translate[:], tilt[:], spin[:])
		r := float32(b.Radius)

		if b.IsStar() {
			for _, layer := range starLayers {
				item := drawItem{Pipeline: pipelineOpaque, Mesh: meshSphere, Color: layer.color}
				common.Scaling(scale[:], r*layer.scale, r*layer.scale, r*layer.scale)
				common.Chain(item.Model[:], base[:], scale[:])
				if layer.color[3] < 1 {
					item.Pipeline = pipelineTranslucent
					translucent = append(translucent, item)
				} else {
					opaque = append(opaque, item)
				}
			}
		} else {
			ring := drawItem{Pipeline: pipelineLines, Mesh: meshCircle, Color: orbitRingColor}
			common.Scaling(ring.Model[:], float32(b.Distance), 1, float32(b.Distance))
			lines = append(lines, ring)

			surface := drawItem{Pipeline: pipelineOpaque, Mesh: meshSphere, Color: rgba(b.Color, 1), Lit: true}
			common.Scaling(scale[:], r, r, r)
			common.Chain(surface.Model[:], base[:], scale[:])
			opaque = append(opaque, surface)

			if b.Profile.Has(body.ProfileAtmosphere) {
				shell := drawItem{Pipeline: pipelineTranslucent, Mesh: meshSphere, Color: rgba(b.Color, atmosphereAlpha), Lit: true}
				s := r * atmosphereScale
				common.Scaling(scale[:], s, s, s)
				common.Chain(shell.Model[:], base[:], scale[:])
				translucent = append(translucent, shell)
			}
		}

		if b.Profile.Has(body.ProfileRing) {
			item := drawItem{Pipeline: pipelineOpaque, Mesh: ringMeshKey(b.Name), Color: rgba(ringColor, 1), Lit: true}
			common.RotationX(ringTilt[:], common.DegToRad(ringTiltDegrees))
			common.Chain(item.Model[:], base[:], ringTilt[:])
			opaque = append(opaque, item)
		}
	}

	items := make([]drawItem, 0, len(opaque)+len(lines)+len(translucent))
	items = append(items, opaque...)
	items = append(items, lines...)
	return append(items, translucent...)
}

// drawBudget is the number of per-draw uniform slots needed for n bodies:
// the star field plus the worst case of every body being a ringed star.
func drawBudget(n int) int {
	return max(defaultDrawBudget, starFieldDrawSlots+n*(starLayerCount+perBodyDrawBudget))
}

// starFieldItem is the backdrop draw: stars projected with an identity view and
// a fixed 60 degree projection so the field never moves with the camera.
func starFieldItem(aspect float32) drawItem {
	item := drawItem{Pipeline: pipelineStars, Mesh: meshQuad, Color: starFieldColor}
	common.Perspective(item.Model[:], common.DegToRad(starFieldFovDeg), aspect, starFieldNear, starFieldFar)
	return item
}

func rgba(c colorful.Color, alpha float32) [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), alpha}
}
