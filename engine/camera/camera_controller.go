package camera

// Axis selects which orbit parameter ApplyDelta changes.
type Axis int

const (
	// AxisPitch is the vertical orbit angle in radians, unbounded.
	AxisPitch Axis = iota
	// AxisYaw is the horizontal orbit angle in radians, unbounded.
	AxisYaw
	// AxisDistance is the eye distance from the target, clamped to the distance bounds.
	AxisDistance
)

// CameraController owns the orbit state the Camera reads each frame: a
// distance from the origin plus pitch and yaw angles.
//
// The eye is placed at (d·sin yaw, d·sin pitch, d·cos yaw). This is not a
// spherical mapping: the true eye distance grows with |pitch|.
type CameraController interface {
	// ApplyDelta adds amount to the given axis. Distance changes are clamped
	// to [MinDistance, MaxDistance]; angles are left unbounded.
	//
	// Parameters:
	//   - axis: which parameter to change
	//   - amount: signed change in radians or world units
	ApplyDelta(axis Axis, amount float32)

	// ViewVector returns the eye position derived from distance, pitch and yaw.
	//
	// Returns:
	//   - x, y, z: world-space eye position
	ViewVector() (x, y, z float32)

	// Target returns the look-at point.
	//
	// Returns:
	//   - x, y, z: world-space target position
	Target() (x, y, z float32)

	// Distance returns the current eye distance parameter.
	Distance() float32

	// SetDistance sets the distance directly, clamped to the bounds.
	//
	// Parameters:
	//   - distance: new distance
	SetDistance(distance float32)

	// MinDistance returns the closest allowed distance.
	MinDistance() float32

	// MaxDistance returns the farthest allowed distance.
	MaxDistance() float32

	// Pitch returns the vertical angle in radians.
	Pitch() float32

	// SetPitch sets the vertical angle in radians.
	SetPitch(pitch float32)

	// Yaw returns the horizontal angle in radians.
	Yaw() float32

	// SetYaw sets the horizontal angle in radians.
	SetYaw(yaw float32)
}
