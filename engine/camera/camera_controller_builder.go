package camera

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithDistance sets the initial eye distance. Clamped to the distance bounds.
//
// Parameters:
//   - distance: distance parameter of the orbit
//
// Returns:
//   - CameraControllerOption: functional option to set the distance
func WithDistance(distance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.distance = distance
	}
}

// WithDistanceBounds sets the allowed distance range. Defaults to [10, 50].
//
// Parameters:
//   - minDistance: closest allowed distance
//   - maxDistance: farthest allowed distance
//
// Returns:
//   - CameraControllerOption: functional option to set the bounds
func WithDistanceBounds(minDistance, maxDistance float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minDistance = minDistance
		cc.maxDistance = maxDistance
	}
}

// WithPitch sets the initial vertical angle in radians.
func WithPitch(pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.pitch = pitch
	}
}

// WithYaw sets the initial horizontal angle in radians.
func WithYaw(yaw float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = yaw
	}
}

// WithTarget moves the look-at point away from the origin.
func WithTarget(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = [3]float32{x, y, z}
	}
}
