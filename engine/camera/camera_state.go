package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// The unexported mutators below assume the caller holds the mutex. Each one keeps
// orientation and view direction consistent and stales only the caches it affects.

func (c *cameraImpl) setEyePoint(eye mgl32.Vec3) {
	c.eyePoint = eye
	c.cache.invalidateView()
}

func (c *cameraImpl) setViewDirection(direction mgl32.Vec3) {
	c.checkDirection("SetViewDirection", direction)
	c.viewDirection = direction.Normalize()
	c.orientation = common.RotationBetween(common.Forward, c.viewDirection)
	c.cache.invalidateView()
}

func (c *cameraImpl) setOrientation(orientation mgl32.Quat) {
	c.orientation = orientation.Normalize()
	c.viewDirection = c.orientation.Rotate(common.Forward)
	c.cache.invalidateView()
}

func (c *cameraImpl) setWorldUp(up mgl32.Vec3) {
	c.checkDirection("SetWorldUp", up)
	c.worldUp = up.Normalize()
	c.orientation = common.OrientationFromDirection(c.viewDirection, c.worldUp)
	c.cache.invalidateView()
}

func (c *cameraImpl) lookAt(target mgl32.Vec3) {
	c.checkDirection("LookAt", target.Sub(c.eyePoint))
	c.viewDirection = target.Sub(c.eyePoint).Normalize()
	c.orientation = common.OrientationFromDirection(c.viewDirection, c.worldUp)
	c.cache.invalidateView()
}

func (c *cameraImpl) setPerspective(verticalFovDegrees, aspectRatio, nearPlane, farPlane float32) {
	c.fov = verticalFovDegrees
	c.aspectRatio = aspectRatio
	c.nearClip = nearPlane
	c.farClip = farPlane
	c.checkClipPlanes("SetPerspective")
	c.cache.invalidateProjection()
}

func (c *cameraImpl) fovHorizontal() float32 {
	return common.ToDegrees(2 * math32.Atan(math32.Tan(common.ToRadians(c.fov)*0.5)*c.aspectRatio))
}

func (c *cameraImpl) setFovHorizontal(degrees float32) {
	c.fov = common.ToDegrees(2 * math32.Atan(math32.Tan(common.ToRadians(degrees)*0.5)/c.aspectRatio))
	c.cache.invalidateProjection()
}

func (c *cameraImpl) focalLength() float32 {
	return 1 / (math32.Tan(common.ToRadians(c.fov)*0.5) * 2)
}

// rightAxis returns the camera's local +X axis in world space.
func (c *cameraImpl) rightAxis() mgl32.Vec3 {
	return c.orientation.Rotate(mgl32.Vec3{1, 0, 0})
}
