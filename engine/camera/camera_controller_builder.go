package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption configures a controller before its first position is computed.
// Options run in order, so later options override earlier ones.
type CameraControllerOption func(*cameraControllerImpl)

// WithTarget sets the pivot the controller orbits and the point a following camera looks at.
//
// Parameters:
//   - target: world-space pivot
//
// Returns:
//   - CameraControllerOption: option setting the pivot
func WithTarget(target mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.target = target
	}
}

// WithRadius sets the starting distance between the controller position and its target.
// The value is clamped to the radius bounds on the first zoom or SetRadius call.
//
// Parameters:
//   - radius: orbit distance in world units
//
// Returns:
//   - CameraControllerOption: option setting the orbit distance
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithAzimuth sets the starting angle around world +Y, measured from +Z toward +X.
func WithAzimuth(azimuth float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.azimuth = azimuth
	}
}

// WithElevation sets the starting angle above the XZ plane in radians.
func WithElevation(elevation float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.elevation = elevation
	}
}

// WithRadiusBounds limits how close and how far Zoom and SetRadius may place the controller.
// The bounds may be given in either order.
//
// Parameters:
//   - nearest: one radius bound
//   - farthest: the other radius bound
//
// Returns:
//   - CameraControllerOption: option setting the radius range
func WithRadiusBounds(nearest, farthest float32) CameraControllerOption {
	if nearest > farthest {
		nearest, farthest = farthest, nearest
	}
	return func(cc *cameraControllerImpl) {
		cc.minRadius = nearest
		cc.maxRadius = farthest
	}
}

// WithElevationBounds limits the elevation reachable through orbit, drag and SetElevation.
// The bounds may be given in either order. Keeping both inside (-pi/2, pi/2) avoids the
// poles, where the pan axes are undefined.
//
// Parameters:
//   - lowest: one elevation bound in radians
//   - highest: the other elevation bound in radians
//
// Returns:
//   - CameraControllerOption: option setting the elevation range
func WithElevationBounds(lowest, highest float32) CameraControllerOption {
	if lowest > highest {
		lowest, highest = highest, lowest
	}
	return func(cc *cameraControllerImpl) {
		cc.minElevation = lowest
		cc.maxElevation = highest
	}
}

// WithOrbitSpeed sets the step in radians applied by each OrbitLeft/Right/Up/Down call.
func WithOrbitSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orbitSpeed = speed
	}
}

// WithMouseSensitivity sets the radians of rotation per pixel passed to Drag.
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithZoomSpeed scales the radius change applied by Zoom.
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithPanSpeed scales the world-space distance applied by PanRight, PanUp and PanForward.
func WithPanSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.panSpeed = speed
	}
}
