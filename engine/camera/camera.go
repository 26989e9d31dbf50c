package camera

import (
	"math"

	"github.com/Carmen-Shannon/orrery/common"
	"github.com/go-gl/mathgl/mgl32"
)

type cameraImpl struct {
	up [3]float32

	fov    float32
	aspect float32
	near   float32
	far    float32

	viewMatrix           [16]float32
	projectionMatrix     [16]float32
	viewProjectionMatrix [16]float32

	controller CameraController
}

// Camera holds perspective settings and computes view/projection matrices
// from an attached CameraController via Update().
type Camera interface {
	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Fov returns the vertical field of view in radians.
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	Aspect() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// ViewMatrix returns the current 4x4 view matrix (column-major).
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current 4x4 WebGPU projection matrix (column-major).
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view (column-major).
	ViewProjectionMatrix() [16]float32

	// Frustum returns the clip planes of the current view-projection.
	Frustum() common.Frustum

	// Project maps a world-space point to window pixels with the origin at the
	// top-left corner, the same way gluProject does for a full-window viewport.
	//
	// Parameters:
	//   - x, y, z: world-space point
	//   - width, height: viewport size in pixels
	//
	// Returns:
	//   - sx, sy: window coordinates
	//   - bool: false when the point is behind the eye or beyond the far plane
	Project(x, y, z float32, width, height int) (sx, sy float32, ok bool)

	// Controller returns the attached CameraController, or nil.
	Controller() CameraController

	// Update reads the controller and recomputes all matrices.
	// Does nothing if no controller is attached.
	Update()

	// SetAspect sets the aspect ratio and recomputes matrices.
	//
	// Parameters:
	//   - aspect: width / height
	SetAspect(aspect float32)

	// SetController attaches a CameraController.
	//
	// Parameters:
	//   - ctrl: the controller to attach
	SetController(ctrl CameraController)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a Camera with a 45 degree field of view and a 0.1..100
// depth range.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		up:     [3]float32{0, 1, 0},
		fov:    45.0 * (math.Pi / 180.0),
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	common.Identity(c.viewMatrix[:])
	common.Identity(c.projectionMatrix[:])
	common.Identity(c.viewProjectionMatrix[:])
	for _, option := range options {
		option(c)
	}
	c.updateMatrices()
	return c
}

func (c *cameraImpl) Up() (x, y, z float32) {
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) ViewMatrix() [16]float32 {
	return c.viewMatrix
}

func (c *cameraImpl) ProjectionMatrix() [16]float32 {
	return c.projectionMatrix
}

func (c *cameraImpl) ViewProjectionMatrix() [16]float32 {
	return c.viewProjectionMatrix
}

func (c *cameraImpl) Frustum() common.Frustum {
	return common.ExtractFrustumFromMatrix(c.viewProjectionMatrix[:])
}

func (c *cameraImpl) Project(x, y, z float32, width, height int) (float32, float32, bool) {
	if c.controller == nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}

	// Project with OpenGL clip conventions so depth lands in [0, 1] exactly as
	// gluProject reports it.
	ex, ey, ez := c.controller.ViewVector()
	tx, ty, tz := c.controller.Target()
	modelview := mgl32.LookAtV(
		mgl32.Vec3{ex, ey, ez},
		mgl32.Vec3{tx, ty, tz},
		mgl32.Vec3{c.up[0], c.up[1], c.up[2]},
	)
	projection := mgl32.Perspective(c.fov, c.aspect, c.near, c.far)

	obj := mgl32.Vec3{x, y, z}
	if modelview.Mul4x1(obj.Vec4(1)).Z() >= 0 {
		return 0, 0, false
	}
	win := mgl32.Project(obj, modelview, projection, 0, 0, width, height)
	if win.Z() >= 1 {
		return 0, 0, false
	}
	return win.X(), float32(height) - win.Y(), true
}

func (c *cameraImpl) Controller() CameraController {
	return c.controller
}

func (c *cameraImpl) Update() {
	if c.controller == nil {
		return
	}
	c.updateMatrices()
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
	c.updateMatrices()
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.controller = ctrl
	c.updateMatrices()
}

// updateMatrices recalculates view, projection and view-projection.
// The view matrix is left untouched while no controller is attached.
func (c *cameraImpl) updateMatrices() {
	common.Perspective(c.projectionMatrix[:], c.fov, c.aspect, c.near, c.far)
	if c.controller != nil {
		px, py, pz := c.controller.ViewVector()
		tx, ty, tz := c.controller.Target()
		common.LookAt(c.viewMatrix[:],
			px, py, pz,
			tx, ty, tz,
			c.up[0], c.up[1], c.up[2],
		)
	}
	common.Mul4(c.viewProjectionMatrix[:], c.projectionMatrix[:], c.viewMatrix[:])
}
