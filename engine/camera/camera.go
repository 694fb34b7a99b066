package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags the projection variant of a camera.
type Kind uint8

const (
	// KindPerspective derives its frustum from a vertical field of view, aspect ratio and lens shift.
	KindPerspective Kind = iota
	// KindOrthographic uses explicit frustum bounds and a linear projection.
	KindOrthographic
	// KindStereo is a perspective camera that also derives left and right eye matrices.
	KindStereo
)

func (k Kind) String() string {
	switch k {
	case KindPerspective:
		return "perspective"
	case KindOrthographic:
		return "orthographic"
	case KindStereo:
		return "stereo"
	default:
		return "unknown"
	}
}

// FrustumBounds holds the near-plane extents and clip distances of a camera frustum.
type FrustumBounds struct {
	Left, Right, Bottom, Top float32
	Near, Far                float32
}

// ClipCorners holds the four world-space corners of a frustum cross-section.
type ClipCorners struct {
	TopLeft, TopRight, BottomLeft, BottomRight mgl32.Vec3
}

type stereoParams struct {
	eyeSeparation float32
	convergence   float32
	enabled       bool
	left          bool
}

type cameraImpl struct {
	mu   *sync.Mutex
	kind Kind

	eyePoint         mgl32.Vec3
	viewDirection    mgl32.Vec3
	orientation      mgl32.Quat
	worldUp          mgl32.Vec3
	centerOfInterest float32

	fov         float32 // vertical, degrees
	aspectRatio float32
	nearClip    float32
	farClip     float32
	lensShift   mgl32.Vec2

	// near-plane extents; derived for perspective cameras, set directly for orthographic ones
	frustumLeft   float32
	frustumRight  float32
	frustumBottom float32
	frustumTop    float32

	stereo stereoParams
	cache  matrixCache

	controller  CameraController
	debugChecks bool
}

// Camera defines the state and queries shared by every camera variant.
// Mutators only mark the affected matrices stale; matrices are rebuilt lazily
// the next time an accessor or query needs them.
type Camera interface {
	// Kind returns the projection variant of the camera.
	//
	// Returns:
	//   - Kind: perspective, orthographic or stereo
	Kind() Kind

	// EyePoint returns the world-space camera position.
	//
	// Returns:
	//   - mgl32.Vec3: the eye point
	EyePoint() mgl32.Vec3

	// SetEyePoint moves the camera without changing its orientation.
	//
	// Parameters:
	//   - eye: new world-space position
	SetEyePoint(eye mgl32.Vec3)

	// ViewDirection returns the normalized direction the camera looks along.
	//
	// Returns:
	//   - mgl32.Vec3: the view direction
	ViewDirection() mgl32.Vec3

	// SetViewDirection points the camera along direction. The orientation becomes the
	// shortest rotation taking local -Z onto the normalized direction.
	//
	// Parameters:
	//   - direction: new view direction, need not be normalized
	SetViewDirection(direction mgl32.Vec3)

	// Orientation returns the unit quaternion rotating camera space into world space.
	//
	// Returns:
	//   - mgl32.Quat: the orientation
	Orientation() mgl32.Quat

	// SetOrientation sets the camera rotation and derives the view direction from it.
	//
	// Parameters:
	//   - orientation: new rotation, need not be normalized
	SetOrientation(orientation mgl32.Quat)

	// WorldUp returns the up vector used to resolve roll.
	//
	// Returns:
	//   - mgl32.Vec3: the normalized world up vector
	WorldUp() mgl32.Vec3

	// SetWorldUp sets the world up vector and re-derives the orientation from the current
	// view direction, which re-resolves roll.
	//
	// Parameters:
	//   - up: new world up vector, need not be normalized
	SetWorldUp(up mgl32.Vec3)

	// CenterOfInterest returns the distance from the eye to the notional look-at point.
	//
	// Returns:
	//   - float32: center of interest distance
	CenterOfInterest() float32

	// SetCenterOfInterest sets the distance from the eye to the notional look-at point.
	//
	// Parameters:
	//   - distance: new center of interest distance
	SetCenterOfInterest(distance float32)

	// CenterOfInterestPoint returns the point CenterOfInterest units along the view direction.
	//
	// Returns:
	//   - mgl32.Vec3: world-space center of interest
	CenterOfInterestPoint() mgl32.Vec3

	// SetCenterOfInterestPoint sets the center of interest distance to the given point and
	// turns the camera to look at it.
	//
	// Parameters:
	//   - point: world-space point of interest, must differ from the eye point
	SetCenterOfInterestPoint(point mgl32.Vec3)

	// LookAt turns the camera toward target, keeping the eye point and world up.
	//
	// Parameters:
	//   - target: world-space point to look at, must differ from the eye point
	LookAt(target mgl32.Vec3)

	// LookAtFrom moves the camera to eye and turns it toward target.
	//
	// Parameters:
	//   - eye: new world-space position
	//   - target: world-space point to look at
	LookAtFrom(eye, target mgl32.Vec3)

	// LookAtFromUp moves the camera to eye, replaces world up and turns it toward target.
	//
	// Parameters:
	//   - eye: new world-space position
	//   - target: world-space point to look at
	//   - up: new world up vector, need not be normalized
	LookAtFromUp(eye, target, up mgl32.Vec3)

	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: vertical field of view in degrees
	Fov() float32

	// SetFov sets the vertical field of view in degrees.
	//
	// Parameters:
	//   - degrees: vertical field of view
	SetFov(degrees float32)

	// FovHorizontal returns the horizontal field of view in degrees implied by the
	// vertical field of view and aspect ratio.
	//
	// Returns:
	//   - float32: horizontal field of view in degrees
	FovHorizontal() float32

	// SetFovHorizontal sets the vertical field of view so that the horizontal field of view
	// matches degrees at the current aspect ratio.
	//
	// Parameters:
	//   - degrees: horizontal field of view
	SetFovHorizontal(degrees float32)

	// AspectRatio returns the frustum aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	AspectRatio() float32

	// SetAspectRatio sets the frustum aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspectRatio(aspect float32)

	// NearClip returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	NearClip() float32

	// SetNearClip sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance (must be > 0)
	SetNearClip(near float32)

	// FarClip returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	FarClip() float32

	// SetFarClip sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance (must be > near)
	SetFarClip(far float32)

	// Frustum returns the near-plane extents and clip distances, recomputing them if stale.
	//
	// Returns:
	//   - FrustumBounds: the current frustum bounds
	Frustum() FrustumBounds

	// FocalLength returns the normalized focal length 1 / (2 * tan(fov / 2)).
	//
	// Returns:
	//   - float32: the focal length
	FocalLength() float32

	// ViewMatrix returns the world-to-camera matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the view matrix
	ViewMatrix() mgl32.Mat4

	// InverseViewMatrix returns the camera-to-world matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the inverse view matrix
	InverseViewMatrix() mgl32.Mat4

	// ProjectionMatrix returns the camera-to-clip matrix (column-major, z in [-1, 1]).
	//
	// Returns:
	//   - mgl32.Mat4: the projection matrix
	ProjectionMatrix() mgl32.Mat4

	// InverseProjectionMatrix returns the clip-to-camera matrix (column-major).
	//
	// Returns:
	//   - mgl32.Mat4: the inverse projection matrix
	InverseProjectionMatrix() mgl32.Mat4

	// ViewProjectionMatrix returns ProjectionMatrix * ViewMatrix.
	//
	// Returns:
	//   - mgl32.Mat4: the combined view-projection matrix
	ViewProjectionMatrix() mgl32.Mat4

	// NearClipCoordinates returns the world-space corners of the near clipping plane.
	//
	// Returns:
	//   - ClipCorners: the four near-plane corners
	NearClipCoordinates() ClipCorners

	// FarClipCoordinates returns the world-space corners of the far clipping plane.
	// Perspective and stereo cameras scale the near-plane extents by far/near. Orthographic
	// cameras keep them unscaled, so the far rectangle matches the near one.
	//
	// Returns:
	//   - ClipCorners: the four far-plane corners
	FarClipCoordinates() ClipCorners

	// GenerateRay returns the world-space ray through normalized image-plane coordinates.
	// Perspective and stereo rays start at the eye point. Orthographic rays are parallel
	// to the view direction and start on the near-plane rectangle at (u, v).
	//
	// Parameters:
	//   - u: horizontal image-plane coordinate in [0, 1]
	//   - v: vertical image-plane coordinate in [0, 1]
	//   - imagePlaneAspect: aspect ratio of the viewport the coordinates refer to
	//
	// Returns:
	//   - common.Ray: the picking ray
	GenerateRay(u, v, imagePlaneAspect float32) common.Ray

	// BillboardVectors returns the world-space right and up vectors of the view, for
	// building camera-facing quads.
	//
	// Returns:
	//   - right: first row of the view matrix
	//   - up: second row of the view matrix
	BillboardVectors() (right, up mgl32.Vec3)

	// WorldToScreen projects a world-space point into pixel coordinates with the origin at
	// the top-left of the screen.
	//
	// Parameters:
	//   - world: world-space point
	//   - screenWidth, screenHeight: viewport size in pixels
	//
	// Returns:
	//   - mgl32.Vec2: pixel coordinates
	WorldToScreen(world mgl32.Vec3, screenWidth, screenHeight float32) mgl32.Vec2

	// WorldToNdc projects a world-space point into normalized device coordinates.
	//
	// Parameters:
	//   - world: world-space point
	//
	// Returns:
	//   - mgl32.Vec3: NDC after the perspective divide
	WorldToNdc(world mgl32.Vec3) mgl32.Vec3

	// WorldToEyeDepth returns the camera-space z of a world-space point. Points in front of
	// the camera have negative depth.
	//
	// Parameters:
	//   - world: world-space point
	//
	// Returns:
	//   - float32: camera-space z
	WorldToEyeDepth(world mgl32.Vec3) float32

	// CalcScreenArea estimates the pixel area covered by a world-space bounding sphere.
	//
	// Parameters:
	//   - sphere: world-space bounding sphere
	//   - screenSizePixels: viewport width and height in pixels
	//
	// Returns:
	//   - float32: projected area in square pixels
	CalcScreenArea(sphere common.Sphere, screenSizePixels mgl32.Vec2) float32

	// ViewFrustum returns the six world-space culling planes of the current view.
	//
	// Returns:
	//   - common.Frustum: planes facing into the visible volume
	ViewFrustum() common.Frustum

	// Clone returns an independent copy of the camera, including its cached matrices.
	//
	// Returns:
	//   - Camera: the copy
	Clone() Camera

	// Controller returns the attached CameraController, or nil.
	//
	// Returns:
	//   - CameraController: the attached controller or nil
	Controller() CameraController

	// SetController attaches a CameraController to the camera.
	//
	// Parameters:
	//   - ctrl: the controller to attach, or nil to detach
	SetController(ctrl CameraController)

	// Update reads position and target from the attached controller and looks from one at
	// the other. If no controller is attached, this method does nothing.
	Update()
}

var _ Camera = &cameraImpl{}

// newCameraImpl returns a camera with the base defaults: eye at the origin looking down -Z,
// Y up, 35 degree vertical field of view, aspect 1 and clip planes at 0.1 and 1000.
func newCameraImpl(kind Kind) *cameraImpl {
	return &cameraImpl{
		mu:               &sync.Mutex{},
		kind:             kind,
		viewDirection:    common.Forward,
		orientation:      mgl32.QuatIdent(),
		worldUp:          mgl32.Vec3{0, 1, 0},
		centerOfInterest: 1,
		fov:              35,
		aspectRatio:      1,
		nearClip:         0.1,
		farClip:          1000,
		stereo: stereoParams{
			eyeSeparation: 0.05,
			convergence:   1,
			left:          true,
		},
	}
}

func (c *cameraImpl) applyOptions(options []CameraBuilderOption) {
	for _, option := range options {
		option(c)
	}
}

func (c *cameraImpl) Kind() Kind {
	return c.kind
}

func (c *cameraImpl) EyePoint() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eyePoint
}

func (c *cameraImpl) SetEyePoint(eye mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setEyePoint(eye)
}

func (c *cameraImpl) ViewDirection() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewDirection
}

func (c *cameraImpl) SetViewDirection(direction mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setViewDirection(direction)
}

func (c *cameraImpl) Orientation() mgl32.Quat {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.orientation
}

func (c *cameraImpl) SetOrientation(orientation mgl32.Quat) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setOrientation(orientation)
}

func (c *cameraImpl) WorldUp() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.worldUp
}

func (c *cameraImpl) SetWorldUp(up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setWorldUp(up)
}

func (c *cameraImpl) CenterOfInterest() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.centerOfInterest
}

func (c *cameraImpl) SetCenterOfInterest(distance float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.centerOfInterest = distance
}

func (c *cameraImpl) CenterOfInterestPoint() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eyePoint.Add(c.viewDirection.Mul(c.centerOfInterest))
}

func (c *cameraImpl) SetCenterOfInterestPoint(point mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.centerOfInterest = point.Sub(c.eyePoint).Len()
	c.lookAt(point)
}

func (c *cameraImpl) LookAt(target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lookAt(target)
}

func (c *cameraImpl) LookAtFrom(eye, target mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eyePoint = eye
	c.lookAt(target)
}

func (c *cameraImpl) LookAtFromUp(eye, target, up mgl32.Vec3) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.eyePoint = eye
	c.checkDirection("LookAtFromUp", up)
	c.worldUp = up.Normalize()
	c.lookAt(target)
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) SetFov(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fov = degrees
	c.cache.invalidateProjection()
}

func (c *cameraImpl) FovHorizontal() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fovHorizontal()
}

func (c *cameraImpl) SetFovHorizontal(degrees float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setFovHorizontal(degrees)
}

func (c *cameraImpl) AspectRatio() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspectRatio
}

func (c *cameraImpl) SetAspectRatio(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspectRatio = aspect
	c.cache.invalidateProjection()
}

func (c *cameraImpl) NearClip() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nearClip
}

func (c *cameraImpl) SetNearClip(near float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nearClip = near
	c.checkClipPlanes("SetNearClip")
	c.cache.invalidateProjection()
}

func (c *cameraImpl) FarClip() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.farClip
}

func (c *cameraImpl) SetFarClip(far float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.farClip = far
	c.checkClipPlanes("SetFarClip")
	c.cache.invalidateProjection()
}

func (c *cameraImpl) Frustum() FrustumBounds {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calcMatrices()
	return FrustumBounds{
		Left:   c.frustumLeft,
		Right:  c.frustumRight,
		Bottom: c.frustumBottom,
		Top:    c.frustumTop,
		Near:   c.nearClip,
		Far:    c.farClip,
	}
}

func (c *cameraImpl) Clone() Camera {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clone()
}

func (c *cameraImpl) Controller() CameraController {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controller
}

func (c *cameraImpl) SetController(ctrl CameraController) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.controller = ctrl
}

func (c *cameraImpl) Update() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.controller == nil {
		return
	}
	c.eyePoint = c.controller.Position()
	c.lookAt(c.controller.Target())
}

// clone copies the camera by value and gives the copy its own mutex.
// Caller must hold the mutex.
func (c *cameraImpl) clone() *cameraImpl {
	cp := *c
	cp.mu = &sync.Mutex{}
	return &cp
}
