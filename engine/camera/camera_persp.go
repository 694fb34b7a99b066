package camera

import (
	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PerspectiveCamera is a Camera whose frustum is derived from a vertical field of view,
// an aspect ratio and an optional lens shift.
type PerspectiveCamera interface {
	Camera

	// SetPerspective sets the field of view, aspect ratio and clip planes in one call.
	//
	// Parameters:
	//   - verticalFovDegrees: vertical field of view in degrees
	//   - aspectRatio: width / height
	//   - nearPlane: near clipping distance (must be > 0)
	//   - farPlane: far clipping distance (must be > nearPlane)
	SetPerspective(verticalFovDegrees, aspectRatio, nearPlane, farPlane float32)

	// LensShift returns the horizontal and vertical lens shift.
	//
	// Returns:
	//   - mgl32.Vec2: shift in [-1, 1] per axis
	LensShift() mgl32.Vec2

	// SetLensShift offsets the frustum without changing the field of view. A shift of 1
	// moves the frustum by half its extent along that axis.
	//
	// Parameters:
	//   - horizontal: horizontal shift in [-1, 1]
	//   - vertical: vertical shift in [-1, 1]
	SetLensShift(horizontal, vertical float32)

	// SetLensShiftHorizontal sets only the horizontal lens shift.
	//
	// Parameters:
	//   - horizontal: horizontal shift in [-1, 1]
	SetLensShiftHorizontal(horizontal float32)

	// SetLensShiftVertical sets only the vertical lens shift.
	//
	// Parameters:
	//   - vertical: vertical shift in [-1, 1]
	SetLensShiftVertical(vertical float32)

	// CalcFraming returns a copy of the camera moved back along its view direction so
	// that the sphere exactly fills the frame on the tighter axis. Orientation is kept.
	//
	// Parameters:
	//   - worldSpaceSphere: the sphere to frame
	//
	// Returns:
	//   - PerspectiveCamera: the repositioned copy
	CalcFraming(worldSpaceSphere common.Sphere) PerspectiveCamera
}

var _ PerspectiveCamera = &cameraImpl{}

// NewPerspective creates a perspective camera looking from (28, 21, 28) at the origin with
// a 35 degree vertical field of view, aspect 1 and clip planes at 0.1 and 1000.
//
// Parameters:
//   - options: functional options applied after the defaults
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspective(options ...CameraBuilderOption) PerspectiveCamera {
	c := newCameraImpl(KindPerspective)
	c.initPerspectiveDefaults()
	c.applyOptions(options)
	return c
}

// NewPerspectiveForPixels creates a perspective camera for a pixel-sized canvas. The eye is
// centered over the canvas at the distance where the canvas exactly fills the vertical
// field of view, so one world unit on the z = 0 plane covers one pixel. Clip planes are
// placed at a tenth and ten times that distance.
//
// Parameters:
//   - pixelWidth, pixelHeight: canvas size in pixels
//   - fovDegrees: vertical field of view in degrees
//   - options: functional options applied after the defaults
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspectiveForPixels(pixelWidth, pixelHeight int, fovDegrees float32, options ...CameraBuilderOption) PerspectiveCamera {
	c := newCameraImpl(KindPerspective)
	c.initPixelPerspective(pixelWidth, pixelHeight, fovDegrees, nil)
	c.applyOptions(options)
	return c
}

// NewPerspectiveForPixelsClip is NewPerspectiveForPixels with explicit clip planes.
//
// Parameters:
//   - pixelWidth, pixelHeight: canvas size in pixels
//   - fovDegrees: vertical field of view in degrees
//   - nearPlane, farPlane: clip distances
//   - options: functional options applied after the defaults
//
// Returns:
//   - PerspectiveCamera: the newly created camera
func NewPerspectiveForPixelsClip(pixelWidth, pixelHeight int, fovDegrees, nearPlane, farPlane float32, options ...CameraBuilderOption) PerspectiveCamera {
	c := newCameraImpl(KindPerspective)
	c.initPixelPerspective(pixelWidth, pixelHeight, fovDegrees, &[2]float32{nearPlane, farPlane})
	c.applyOptions(options)
	return c
}

func (c *cameraImpl) initPerspectiveDefaults() {
	c.worldUp = mgl32.Vec3{0, 1, 0}
	c.eyePoint = mgl32.Vec3{28, 21, 28}
	c.lookAt(mgl32.Vec3{})
	c.centerOfInterest = 44.822
	c.setPerspective(35, 1, 0.1, 1000)
}

// initPixelPerspective sets up the pixel-canvas pose. A nil clip derives the clip planes
// from the eye distance.
func (c *cameraImpl) initPixelPerspective(pixelWidth, pixelHeight int, fovDegrees float32, clip *[2]float32) {
	eyeX := float32(pixelWidth) / 2
	eyeY := float32(pixelHeight) / 2
	halfFov := 3.14159 * fovDegrees / 360
	dist := eyeY / math32.Tan(halfFov)
	aspect := float32(pixelWidth) / float32(pixelHeight)

	nearDist, farDist := dist/10, dist*10
	if clip != nil {
		nearDist, farDist = clip[0], clip[1]
	}

	c.setPerspective(fovDegrees, aspect, nearDist, farDist)
	c.eyePoint = mgl32.Vec3{eyeX, eyeY, dist}
	c.lookAt(mgl32.Vec3{eyeX, eyeY, 0})
}

func (c *cameraImpl) SetPerspective(verticalFovDegrees, aspectRatio, nearPlane, farPlane float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPerspective(verticalFovDegrees, aspectRatio, nearPlane, farPlane)
}

func (c *cameraImpl) LensShift() mgl32.Vec2 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lensShift
}

func (c *cameraImpl) SetLensShift(horizontal, vertical float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lensShift = mgl32.Vec2{horizontal, vertical}
	c.cache.invalidateProjection()
}

func (c *cameraImpl) SetLensShiftHorizontal(horizontal float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lensShift[0] = horizontal
	c.cache.invalidateProjection()
}

func (c *cameraImpl) SetLensShiftVertical(vertical float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lensShift[1] = vertical
	c.cache.invalidateProjection()
}

func (c *cameraImpl) FocalLength() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.focalLength()
}

func (c *cameraImpl) CalcFraming(worldSpaceSphere common.Sphere) PerspectiveCamera {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := c.clone()
	xDistance := worldSpaceSphere.Radius / math32.Sin(common.ToRadians(c.fovHorizontal()*0.5))
	yDistance := worldSpaceSphere.Radius / math32.Sin(common.ToRadians(c.fov*0.5))
	distance := math32.Max(xDistance, yDistance)
	result.setEyePoint(worldSpaceSphere.Center.Sub(result.viewDirection.Mul(distance)))
	return result
}

// calcPerspectiveBounds derives the near-plane extents from the field of view, aspect
// ratio and lens shift.
func (c *cameraImpl) calcPerspectiveBounds() {
	c.frustumTop = c.nearClip * math32.Tan(math32.Pi/180*c.fov*0.5)
	c.frustumBottom = -c.frustumTop
	c.frustumRight = c.frustumTop * c.aspectRatio
	c.frustumLeft = -c.frustumRight

	if c.lensShift[1] != 0 {
		c.frustumTop = common.Lerp(0, 2*c.frustumTop, 0.5+0.5*c.lensShift[1])
		c.frustumBottom = common.Lerp(2*c.frustumBottom, 0, 0.5+0.5*c.lensShift[1])
	}

	if c.lensShift[0] != 0 {
		c.frustumRight = common.Lerp(2*c.frustumRight, 0, 0.5-0.5*c.lensShift[0])
		c.frustumLeft = common.Lerp(0, 2*c.frustumLeft, 0.5-0.5*c.lensShift[0])
	}
}

// perspectivePair assembles the off-axis perspective matrix and its closed-form inverse
// from the frustum bounds.
func (c *cameraImpl) perspectivePair() (projection, inverse mgl32.Mat4) {
	l, r, b, t := c.frustumLeft, c.frustumRight, c.frustumBottom, c.frustumTop
	n, f := c.nearClip, c.farClip

	projection = mgl32.Mat4{
		2 * n / (r - l), 0, 0, 0,
		0, 2 * n / (t - b), 0, 0,
		(r + l) / (r - l), (t + b) / (t - b), -(f + n) / (f - n), -1,
		0, 0, -2 * f * n / (f - n), 0,
	}

	inverse = mgl32.Mat4{
		(r - l) / (2 * n), 0, 0, 0,
		0, (t - b) / (2 * n), 0, 0,
		0, 0, 0, -(f - n) / (2 * f * n),
		(r + l) / (2 * n), (t + b) / (2 * n), -1, (f + n) / (2 * f * n),
	}
	return projection, inverse
}
