package camera

import (
	"math"

	"github.com/Carmen-Shannon/orrery/common"
)

// Default orbit parameters.
const (
	DefaultDistance    = 40.0
	DefaultMinDistance = 10.0
	DefaultMaxDistance = 50.0
)

// cameraControllerImpl is the single implementation of CameraController.
// It is only touched from the frame loop and carries no lock.
type cameraControllerImpl struct {
	target [3]float32

	distance float32
	pitch    float32
	yaw      float32

	minDistance float32
	maxDistance float32
}

var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates an orbit controller looking at the origin from
// distance 40 with zero pitch and yaw.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		distance:    DefaultDistance,
		minDistance: DefaultMinDistance,
		maxDistance: DefaultMaxDistance,
	}
	for _, option := range options {
		option(cc)
	}
	if cc.minDistance > cc.maxDistance {
		cc.minDistance, cc.maxDistance = cc.maxDistance, cc.minDistance
	}
	cc.distance = common.Clamp(cc.distance, cc.minDistance, cc.maxDistance)
	return cc
}

func (cc *cameraControllerImpl) ApplyDelta(axis Axis, amount float32) {
	switch axis {
	case AxisPitch:
		cc.pitch += amount
	case AxisYaw:
		cc.yaw += amount
	case AxisDistance:
		cc.SetDistance(cc.distance + amount)
	}
}

func (cc *cameraControllerImpl) ViewVector() (x, y, z float32) {
	sinYaw, cosYaw := math.Sincos(float64(cc.yaw))
	sinPitch := math.Sin(float64(cc.pitch))
	d := float64(cc.distance)
	return cc.target[0] + float32(d*sinYaw),
		cc.target[1] + float32(d*sinPitch),
		cc.target[2] + float32(d*cosYaw)
}

func (cc *cameraControllerImpl) Target() (x, y, z float32) {
	return cc.target[0], cc.target[1], cc.target[2]
}

func (cc *cameraControllerImpl) Distance() float32 {
	return cc.distance
}

func (cc *cameraControllerImpl) SetDistance(distance float32) {
	cc.distance = common.Clamp(distance, cc.minDistance, cc.maxDistance)
}

func (cc *cameraControllerImpl) MinDistance() float32 {
	return cc.minDistance
}

func (cc *cameraControllerImpl) MaxDistance() float32 {
	return cc.maxDistance
}

func (cc *cameraControllerImpl) Pitch() float32 {
	return cc.pitch
}

func (cc *cameraControllerImpl) SetPitch(pitch float32) {
	cc.pitch = pitch
}

func (cc *cameraControllerImpl) Yaw() float32 {
	return cc.yaw
}

func (cc *cameraControllerImpl) SetYaw(yaw float32) {
	cc.yaw = yaw
}
