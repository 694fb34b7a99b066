package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func (c *cameraImpl) NearClipCoordinates() ClipCorners {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calcMatrices()
	return c.clipCorners(c.nearClip, 1)
}

func (c *cameraImpl) FarClipCoordinates() ClipCorners {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calcMatrices()

	ratio := c.farClip / c.nearClip
	if c.kind == KindOrthographic {
		ratio = 1
	}
	return c.clipCorners(c.farClip, ratio)
}

// clipCorners returns the frustum cross-section dist units in front of the active eye, with
// the near-plane extents scaled by ratio. Caller must hold the mutex and have called
// calcMatrices.
func (c *cameraImpl) clipCorners(dist, ratio float32) ClipCorners {
	viewDirection := c.viewDirection.Normalize()
	shift := c.parallaxShift()
	left := c.frustumLeft + shift
	right := c.frustumRight + shift

	center := c.eyePointShifted().Add(viewDirection.Mul(dist))
	top := c.cache.v.Mul(ratio * c.frustumTop)
	bottom := c.cache.v.Mul(ratio * c.frustumBottom)
	l := c.cache.u.Mul(ratio * left)
	r := c.cache.u.Mul(ratio * right)

	return ClipCorners{
		TopLeft:     center.Add(top).Add(l),
		TopRight:    center.Add(top).Add(r),
		BottomLeft:  center.Add(bottom).Add(l),
		BottomRight: center.Add(bottom).Add(r),
	}
}

func (c *cameraImpl) GenerateRay(u, v, imagePlaneAspect float32) common.Ray {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calcMatrices()

	if c.kind == KindOrthographic {
		origin := c.eyePoint.
			Add(c.cache.u.Mul(common.Lerp(c.frustumLeft, c.frustumRight, u))).
			Add(c.cache.v.Mul(common.Lerp(c.frustumBottom, c.frustumTop, v)))
		return common.Ray{Origin: origin, Direction: c.cache.w.Mul(-1)}
	}

	s := (u - 0.5) * imagePlaneAspect
	t := v - 0.5
	viewDistance := imagePlaneAspect / math32.Abs(c.frustumRight-c.frustumLeft) * c.nearClip
	direction := c.cache.u.Mul(s).Add(c.cache.v.Mul(t)).Sub(c.cache.w.Mul(viewDistance))
	return common.Ray{Origin: c.eyePoint, Direction: direction.Normalize()}
}

func (c *cameraImpl) BillboardVectors() (right, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.viewMatrix()
	return m.Row(0).Vec3(), m.Row(1).Vec3()
}

func (c *cameraImpl) WorldToScreen(world mgl32.Vec3, screenWidth, screenHeight float32) mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	ndc := c.worldToNdc(world)
	return mgl32.Vec2{
		(ndc[0] + 1) / 2 * screenWidth,
		(1 - (ndc[1]+1)/2) * screenHeight,
	}
}

func (c *cameraImpl) WorldToNdc(world mgl32.Vec3) mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldToNdc(world)
}

func (c *cameraImpl) worldToNdc(world mgl32.Vec3) mgl32.Vec3 {
	eyeCoord := common.TransformPoint(c.viewMatrix(), world)
	clip := c.projectionMatrix().Mul4x1(eyeCoord)
	return mgl32.Vec3{clip[0] / clip[3], clip[1] / clip[3], clip[2] / clip[3]}
}

func (c *cameraImpl) WorldToEyeDepth(world mgl32.Vec3) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	m := c.viewMatrix()
	return m[2]*world[0] + m[6]*world[1] + m[10]*world[2] + m[14]
}

func (c *cameraImpl) CalcScreenArea(sphere common.Sphere, screenSizePixels mgl32.Vec2) float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	camSpaceSphere := sphere.Transformed(c.viewMatrix())
	return camSpaceSphere.CalcProjectedArea(c.focalLength(), screenSizePixels)
}

func (c *cameraImpl) ViewFrustum() common.Frustum {
	c.mu.Lock()
	defer c.mu.Unlock()
	return common.ExtractFrustumFromMatrix(c.projectionMatrix().Mul4(c.viewMatrix()))
}
