package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// OrthographicCamera is a Camera with explicit frustum bounds and a linear projection.
type OrthographicCamera interface {
	Camera

	// SetOrtho replaces the frustum bounds.
	//
	// Parameters:
	//   - left, right: horizontal extents
	//   - bottom, top: vertical extents
	//   - nearPlane, farPlane: clip distances
	SetOrtho(left, right, bottom, top, nearPlane, farPlane float32)
}

var _ OrthographicCamera = &cameraImpl{}

// NewOrthographic creates an orthographic camera with the given bounds. The camera sits at
// the origin looking down -Z, so its view matrix is the identity and is built immediately.
//
// Parameters:
//   - left, right: horizontal extents
//   - bottom, top: vertical extents
//   - nearPlane, farPlane: clip distances
//   - options: functional options applied after the bounds
//
// Returns:
//   - OrthographicCamera: the newly created camera
func NewOrthographic(left, right, bottom, top, nearPlane, farPlane float32, options ...CameraBuilderOption) OrthographicCamera {
	c := newCameraImpl(KindOrthographic)
	c.setOrtho(left, right, bottom, top, nearPlane, farPlane)
	c.calcViewMatrix()
	c.applyOptions(options)
	return c
}

// NewOrthographicDefault creates an orthographic camera looking from (0, 0, 0.1) at the
// origin with bounds [-1, 1] on both axes and clip planes at 0.1 and 1000.
//
// Parameters:
//   - options: functional options applied after the defaults
//
// Returns:
//   - OrthographicCamera: the newly created camera
func NewOrthographicDefault(options ...CameraBuilderOption) OrthographicCamera {
	c := newCameraImpl(KindOrthographic)
	c.eyePoint = mgl32.Vec3{0, 0, 0.1}
	c.lookAt(mgl32.Vec3{})
	c.centerOfInterest = 0.1
	c.setOrtho(-1, 1, -1, 1, 0.1, 1000)
	c.calcViewMatrix()
	c.applyOptions(options)
	return c
}

func (c *cameraImpl) SetOrtho(left, right, bottom, top, nearPlane, farPlane float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setOrtho(left, right, bottom, top, nearPlane, farPlane)
}

func (c *cameraImpl) setOrtho(left, right, bottom, top, nearPlane, farPlane float32) {
	c.frustumLeft = left
	c.frustumRight = right
	c.frustumBottom = bottom
	c.frustumTop = top
	c.nearClip = nearPlane
	c.farClip = farPlane
	c.checkClipPlanes("SetOrtho")
	c.cache.invalidateProjection()
}

// orthographicPair assembles the orthographic projection and its exact inverse.
func (c *cameraImpl) orthographicPair() (projection, inverse mgl32.Mat4) {
	l, r, b, t := c.frustumLeft, c.frustumRight, c.frustumBottom, c.frustumTop
	n, f := c.nearClip, c.farClip

	projection = mgl32.Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}

	inverse = mgl32.Mat4{
		(r - l) * 0.5, 0, 0, 0,
		0, (t - b) * 0.5, 0, 0,
		0, 0, -(f - n) * 0.5, 0,
		(r + l) * 0.5, (t + b) * 0.5, -(f + n) * 0.5, 1,
	}
	return projection, inverse
}
