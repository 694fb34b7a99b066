package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// cacheState records whether a derived matrix reflects the current parameters.
type cacheState uint8

const (
	cacheStale cacheState = iota
	cacheValid
)

// eye indexes the per-eye matrix slots. Non-stereo cameras only use eyeCenter.
type eye uint8

const (
	eyeCenter eye = iota
	eyeLeft
	eyeRight
	eyeCount
)

type eyeMatrices struct {
	view              mgl32.Mat4
	inverseView       mgl32.Mat4
	projection        mgl32.Mat4
	inverseProjection mgl32.Mat4
}

// matrixCache memoizes the derived matrices. Left and right eye slots share the
// cache states of the center slot because they are always rebuilt together.
type matrixCache struct {
	view        cacheState
	inverseView cacheState
	projection  cacheState

	// camera basis from the last view rebuild: right, up, backward
	u, v, w mgl32.Vec3

	eyes [eyeCount]eyeMatrices
}

func (mc *matrixCache) invalidateView() {
	mc.view = cacheStale
	mc.inverseView = cacheStale
}

func (mc *matrixCache) invalidateProjection() {
	mc.projection = cacheStale
}

// activeEye returns the matrix slot accessors should read from.
func (c *cameraImpl) activeEye() eye {
	if c.kind != KindStereo || !c.stereo.enabled {
		return eyeCenter
	}
	if c.stereo.left {
		return eyeLeft
	}
	return eyeRight
}

// calcMatrices ensures view and projection are valid. Caller must hold the mutex.
func (c *cameraImpl) calcMatrices() {
	c.ensureView()
	c.ensureProjection()
}

func (c *cameraImpl) ensureView() {
	if c.cache.view != cacheValid {
		c.calcViewMatrix()
	}
}

func (c *cameraImpl) ensureInverseView() {
	c.ensureView()
	if c.cache.inverseView != cacheValid {
		c.calcInverseView()
	}
}

func (c *cameraImpl) ensureProjection() {
	if c.cache.projection != cacheValid {
		c.calcProjection()
	}
}

// calcViewMatrix rebuilds the camera basis and the view matrix of every eye slot in use.
func (c *cameraImpl) calcViewMatrix() {
	c.cache.w = c.viewDirection.Normalize().Mul(-1)
	c.cache.u = c.rightAxis()
	c.cache.v = c.orientation.Rotate(mgl32.Vec3{0, 1, 0})

	u, v, w := c.cache.u, c.cache.v, c.cache.w
	d := c.viewTranslation(c.eyePoint)

	c.cache.eyes[eyeCenter].view = mgl32.Mat4{
		u[0], v[0], w[0], 0,
		u[1], v[1], w[1], 0,
		u[2], v[2], w[2], 0,
		d[0], d[1], d[2], 1,
	}

	if c.kind == KindStereo {
		c.calcStereoViewMatrices()
	}

	c.cache.view = cacheValid
	c.cache.inverseView = cacheStale
}

// viewTranslation returns the translation column of a view matrix placed at eye, using the
// basis from the last view rebuild.
func (c *cameraImpl) viewTranslation(eye mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{-eye.Dot(c.cache.u), -eye.Dot(c.cache.v), -eye.Dot(c.cache.w)}
}

func (c *cameraImpl) calcInverseView() {
	last := eyeCenter
	if c.kind == KindStereo {
		last = eyeRight
	}
	for e := eyeCenter; e <= last; e++ {
		c.cache.eyes[e].inverseView = c.cache.eyes[e].view.Inv()
	}
	c.cache.inverseView = cacheValid
}

// calcProjection derives the frustum bounds for the camera kind and rebuilds every
// projection slot in use.
func (c *cameraImpl) calcProjection() {
	base := &c.cache.eyes[eyeCenter]

	switch c.kind {
	case KindOrthographic:
		base.projection, base.inverseProjection = c.orthographicPair()
	default:
		c.calcPerspectiveBounds()
		base.projection, base.inverseProjection = c.perspectivePair()
	}

	if c.kind == KindStereo {
		c.calcStereoProjections()
	}

	c.cache.projection = cacheValid
}

// Accessors used by the queries. Caller must hold the mutex.

func (c *cameraImpl) viewMatrix() mgl32.Mat4 {
	c.ensureView()
	return c.cache.eyes[c.activeEye()].view
}

func (c *cameraImpl) inverseViewMatrix() mgl32.Mat4 {
	c.ensureInverseView()
	return c.cache.eyes[c.activeEye()].inverseView
}

func (c *cameraImpl) projectionMatrix() mgl32.Mat4 {
	c.ensureProjection()
	return c.cache.eyes[c.activeEye()].projection
}

func (c *cameraImpl) inverseProjectionMatrix() mgl32.Mat4 {
	c.ensureProjection()
	return c.cache.eyes[c.activeEye()].inverseProjection
}

func (c *cameraImpl) ViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewMatrix()
}

func (c *cameraImpl) InverseViewMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseViewMatrix()
}

func (c *cameraImpl) ProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix()
}

func (c *cameraImpl) InverseProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inverseProjectionMatrix()
}

func (c *cameraImpl) ViewProjectionMatrix() mgl32.Mat4 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.projectionMatrix().Mul4(c.viewMatrix())
}
