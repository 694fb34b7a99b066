package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

type CameraBuilderOption func(*cameraImpl)

// WithWorldUp sets the camera's world up vector and re-derives its orientation.
//
// Parameters:
//   - up: world up vector, need not be normalized
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's world up vector
func WithWorldUp(up mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setWorldUp(up)
	}
}

// WithLookAt places the camera at eye looking at target.
//
// Parameters:
//   - eye: world-space camera position
//   - target: world-space point to look at
//
// Returns:
//   - CameraBuilderOption: a function that positions and aims the camera
func WithLookAt(eye, target mgl32.Vec3) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.eyePoint = eye
		c.lookAt(target)
	}
}

// WithFov sets the camera's vertical field of view in degrees.
//
// Parameters:
//   - degrees: vertical field of view in degrees
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's field of view
func WithFov(degrees float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.fov = degrees
		c.cache.invalidateProjection()
	}
}

// WithAspectRatio sets the camera's aspect ratio (width / height).
//
// Parameters:
//   - aspect: the aspect ratio to set
//
// Returns:
//   - CameraBuilderOption: a function that sets the camera's aspect ratio
func WithAspectRatio(aspect float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.aspectRatio = aspect
		c.cache.invalidateProjection()
	}
}

// WithNearClip sets the near clipping plane distance.
//
// Parameters:
//   - near: near plane distance
//
// Returns:
//   - CameraBuilderOption: a function that sets the near plane
func WithNearClip(near float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.nearClip = near
		c.cache.invalidateProjection()
	}
}

// WithFarClip sets the far clipping plane distance.
//
// Parameters:
//   - far: far plane distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the far plane
func WithFarClip(far float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.farClip = far
		c.cache.invalidateProjection()
	}
}

// WithLensShift sets the horizontal and vertical lens shift of a perspective camera.
//
// Parameters:
//   - horizontal: horizontal shift in [-1, 1]
//   - vertical: vertical shift in [-1, 1]
//
// Returns:
//   - CameraBuilderOption: functional option to set the lens shift
func WithLensShift(horizontal, vertical float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.lensShift = mgl32.Vec2{horizontal, vertical}
		c.cache.invalidateProjection()
	}
}

// WithEyeSeparation sets the interocular distance of a stereo camera.
//
// Parameters:
//   - distance: eye separation in world units
//
// Returns:
//   - CameraBuilderOption: functional option to set the eye separation
func WithEyeSeparation(distance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setEyeSeparation(distance)
	}
}

// WithConvergence sets the zero-parallax distance of a stereo camera.
//
// Parameters:
//   - distance: convergence distance
//
// Returns:
//   - CameraBuilderOption: functional option to set the convergence distance
func WithConvergence(distance float32) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.setConvergence(distance, false)
	}
}

// WithController attaches a controller to the camera and applies its current position and
// target immediately.
//
// Parameters:
//   - ctrl: the controller to attach
//
// Returns:
//   - CameraBuilderOption: functional option to set the controller
func WithController(ctrl CameraController) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.controller = ctrl
		if ctrl != nil {
			c.eyePoint = ctrl.Position()
			c.lookAt(ctrl.Target())
		}
	}
}

// WithDebugChecks enables logging of degenerate inputs such as zero-length directions or
// inverted clip planes. Results are unchanged; the checks only report.
//
// Parameters:
//   - enabled: whether to run the checks
//
// Returns:
//   - CameraBuilderOption: functional option to toggle debug checks
func WithDebugChecks(enabled bool) CameraBuilderOption {
	return func(c *cameraImpl) {
		c.debugChecks = enabled
	}
}
