package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// StereoCamera is a PerspectiveCamera that also derives a left and right eye pair using
// off-axis frustums converging at a zero-parallax plane. While stereo is disabled it
// behaves exactly like a PerspectiveCamera.
type StereoCamera interface {
	PerspectiveCamera

	// Convergence returns the distance to the zero-parallax plane.
	//
	// Returns:
	//   - float32: convergence distance
	Convergence() float32

	// SetConvergence sets the distance to the zero-parallax plane.
	//
	// Parameters:
	//   - distance: convergence distance (must be non-zero)
	//   - adjustEyeSeparation: when true the eye separation is set to distance / 30
	SetConvergence(distance float32, adjustEyeSeparation bool)

	// EyeSeparation returns the interocular distance.
	//
	// Returns:
	//   - float32: eye separation in world units
	EyeSeparation() float32

	// SetEyeSeparation sets the interocular distance.
	//
	// Parameters:
	//   - distance: eye separation in world units
	SetEyeSeparation(distance float32)

	// EyePointShifted returns the eye point of the selected eye, offset half the eye
	// separation along the local right axis. Returns the unshifted eye point while stereo
	// is disabled.
	//
	// Returns:
	//   - mgl32.Vec3: world-space position of the selected eye
	EyePointShifted() mgl32.Vec3

	// EnableStereo makes the accessors return the selected eye's matrices.
	EnableStereo()

	// DisableStereo makes the accessors return the cyclopean matrices.
	DisableStereo()

	// IsStereoEnabled reports whether stereo rendering is enabled.
	//
	// Returns:
	//   - bool: true if enabled
	IsStereoEnabled() bool

	// EnableStereoLeft enables stereo and selects the left eye.
	EnableStereoLeft()

	// IsStereoLeft reports whether the left eye is selected.
	//
	// Returns:
	//   - bool: true if the left eye is selected
	IsStereoLeft() bool

	// EnableStereoRight enables stereo and selects the right eye.
	EnableStereoRight()

	// IsStereoRight reports whether the right eye is selected.
	//
	// Returns:
	//   - bool: true if the right eye is selected
	IsStereoRight() bool
}

var _ StereoCamera = &cameraImpl{}

// NewStereo creates a stereo camera with the NewPerspective defaults, an eye separation of
// 0.05, a convergence distance of 1 and stereo disabled with the left eye selected.
//
// Parameters:
//   - options: functional options applied after the defaults
//
// Returns:
//   - StereoCamera: the newly created camera
func NewStereo(options ...CameraBuilderOption) StereoCamera {
	c := newCameraImpl(KindStereo)
	c.initPerspectiveDefaults()
	c.applyOptions(options)
	return c
}

// NewStereoForPixels creates a stereo camera with the NewPerspectiveForPixels pose.
//
// Parameters:
//   - pixelWidth, pixelHeight: canvas size in pixels
//   - fovDegrees: vertical field of view in degrees
//   - options: functional options applied after the defaults
//
// Returns:
//   - StereoCamera: the newly created camera
func NewStereoForPixels(pixelWidth, pixelHeight int, fovDegrees float32, options ...CameraBuilderOption) StereoCamera {
	c := newCameraImpl(KindStereo)
	c.initPixelPerspective(pixelWidth, pixelHeight, fovDegrees, nil)
	c.applyOptions(options)
	return c
}

func (c *cameraImpl) Convergence() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stereo.convergence
}

func (c *cameraImpl) SetConvergence(distance float32, adjustEyeSeparation bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setConvergence(distance, adjustEyeSeparation)
}

func (c *cameraImpl) setConvergence(distance float32, adjustEyeSeparation bool) {
	c.stereo.convergence = distance
	if c.debugChecks && distance == 0 {
		logf("camera: SetConvergence: zero convergence distance")
	}
	if adjustEyeSeparation {
		c.stereo.eyeSeparation = distance / 30
		c.cache.invalidateView()
	}
	c.cache.invalidateProjection()
}

func (c *cameraImpl) EyeSeparation() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stereo.eyeSeparation
}

func (c *cameraImpl) SetEyeSeparation(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setEyeSeparation(distance)
}

func (c *cameraImpl) setEyeSeparation(distance float32) {
	c.stereo.eyeSeparation = distance
	c.cache.invalidateView()
	c.cache.invalidateProjection()
}

func (c *cameraImpl) EyePointShifted() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eyePointShifted()
}

func (c *cameraImpl) EnableStereo() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stereo.enabled = true
}

func (c *cameraImpl) DisableStereo() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stereo.enabled = false
}

func (c *cameraImpl) IsStereoEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stereo.enabled
}

func (c *cameraImpl) EnableStereoLeft() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stereo.enabled = true
	c.stereo.left = true
}

func (c *cameraImpl) IsStereoLeft() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stereo.left
}

func (c *cameraImpl) EnableStereoRight() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stereo.enabled = true
	c.stereo.left = false
}

func (c *cameraImpl) IsStereoRight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.stereo.left
}

// eyePointShifted returns the eye point of the active eye. Caller must hold the mutex.
func (c *cameraImpl) eyePointShifted() mgl32.Vec3 {
	switch c.activeEye() {
	case eyeLeft:
		return c.eyeOffsetPoint(eyeLeft)
	case eyeRight:
		return c.eyeOffsetPoint(eyeRight)
	default:
		return c.eyePoint
	}
}

// eyeOffsetPoint returns the eye point moved half the eye separation along the local right
// axis, toward -X for the left eye and +X for the right eye.
func (c *cameraImpl) eyeOffsetPoint(e eye) mgl32.Vec3 {
	offset := c.rightAxis().Mul(0.5 * c.stereo.eyeSeparation)
	if e == eyeLeft {
		return c.eyePoint.Sub(offset)
	}
	return c.eyePoint.Add(offset)
}

// parallaxShift returns the horizontal near-plane offset of the active eye's frustum:
// positive for the left eye, negative for the right eye and zero without stereo.
func (c *cameraImpl) parallaxShift() float32 {
	shift := 0.5 * c.stereo.eyeSeparation * (c.nearClip / c.stereo.convergence)
	switch c.activeEye() {
	case eyeLeft:
		return shift
	case eyeRight:
		return -shift
	default:
		return 0
	}
}

// calcStereoViewMatrices copies the cyclopean view into both eye slots and replaces only the
// translation column. Both eyes share the cyclopean basis.
func (c *cameraImpl) calcStereoViewMatrices() {
	for _, e := range [...]eye{eyeLeft, eyeRight} {
		m := c.cache.eyes[eyeCenter].view
		d := c.viewTranslation(c.eyeOffsetPoint(e))
		m[12], m[13], m[14] = d[0], d[1], d[2]
		c.cache.eyes[e].view = m
	}
}

// calcStereoProjections copies the cyclopean projection pair into both eye slots and skews
// only the horizontal asymmetry terms by the off-axis parallax, keeping each eye's
// projection and inverse projection exact inverses of each other.
func (c *cameraImpl) calcStereoProjections() {
	r, l, n := c.frustumRight, c.frustumLeft, c.nearClip
	skew := c.stereo.eyeSeparation * (n / c.stereo.convergence)

	left := c.cache.eyes[eyeCenter]
	left.projection[8] = (r + l + skew) / (r - l)
	left.inverseProjection[12] = (r + l + skew) / (2 * n)
	c.cache.eyes[eyeLeft].projection = left.projection
	c.cache.eyes[eyeLeft].inverseProjection = left.inverseProjection

	right := c.cache.eyes[eyeCenter]
	right.projection[8] = (r + l - skew) / (r - l)
	right.inverseProjection[12] = (r + l - skew) / (2 * n)
	c.cache.eyes[eyeRight].projection = right.projection
	c.cache.eyes[eyeRight].inverseProjection = right.inverseProjection
}
