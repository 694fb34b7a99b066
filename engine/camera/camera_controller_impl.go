package camera

import (
	"sync"

	"github.com/Carmen-Shannon/oxy-camera/common"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// Supports both orbit and planar controls simultaneously. Orbit methods modify
// spherical coordinates and recompute position; planar methods translate both
// position and target along local camera axes, preserving the orbit relationship.
type cameraControllerImpl struct {
	mu *sync.Mutex

	// Camera position (computed from target + spherical coords)
	position mgl32.Vec3
	target   mgl32.Vec3

	// Spherical coordinates (offset from target)
	radius    float32
	azimuth   float32 // Horizontal angle around Y axis
	elevation float32 // Vertical angle from horizontal plane

	// Orbit constraints
	minRadius    float32
	maxRadius    float32
	minElevation float32
	maxElevation float32

	orbitSpeed       float32
	mouseSensitivity float32
	zoomSpeed        float32
	panSpeed         float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with sensible defaults.
// The returned controller supports both orbit and planar controls simultaneously.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu: &sync.Mutex{},

		radius:    250.0,
		azimuth:   0.0,
		elevation: math32.Pi / 6,

		minRadius:    20.0,
		maxRadius:    2000.0,
		minElevation: 0.05,
		maxElevation: math32.Pi/2 - 0.1,

		orbitSpeed:       0.03,
		mouseSensitivity: 0.005,
		zoomSpeed:        15.0,
		panSpeed:         1.0,
	}

	for _, option := range options {
		option(cc)
	}

	cc.updatePosition()
	return cc
}

// --- internal helpers ---

// updatePosition recomputes the camera position from spherical coordinates.
// Must be called whenever radius, azimuth, elevation, or target changes.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updatePosition() {
	cosElev := math32.Cos(cc.elevation)
	sinElev := math32.Sin(cc.elevation)
	cosAzim := math32.Cos(cc.azimuth)
	sinAzim := math32.Sin(cc.azimuth)

	cc.position = cc.target.Add(mgl32.Vec3{
		cc.radius * cosElev * sinAzim,
		cc.radius * sinElev,
		cc.radius * cosElev * cosAzim,
	})
}

func (cc *cameraControllerImpl) clampRadius() {
	cc.radius = mgl32.Clamp(cc.radius, cc.minRadius, cc.maxRadius)
}

func (cc *cameraControllerImpl) clampElevation() {
	cc.elevation = mgl32.Clamp(cc.elevation, cc.minElevation, cc.maxElevation)
}

// localAxes returns the right, up and forward axes of a camera looking from position at
// target with a +Y world up. If position and target coincide all axes are zero.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) localAxes() (right, up, forward mgl32.Vec3) {
	backward := cc.position.Sub(cc.target)
	if backward.Len() < 1e-8 {
		return
	}
	basis := common.AlignZAxisWithTarget(backward, mgl32.Vec3{0, 1, 0})
	return basis.Col(0).Vec3(), basis.Col(1).Vec3(), basis.Col(2).Vec3().Mul(-1)
}

func (cc *cameraControllerImpl) translate(axis mgl32.Vec3, delta float32) {
	offset := axis.Mul(delta * cc.panSpeed)
	cc.target = cc.target.Add(offset)
	cc.position = cc.position.Add(offset)
}

// --- CameraController shared methods ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) SetTarget(target mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.target = target
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	cc.clampRadius()
	cc.updatePosition()
}

// --- orbitCameraController implementation ---

func (cc *cameraControllerImpl) OrbitLeft() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth -= cc.orbitSpeed
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitRight() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += cc.orbitSpeed
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitUp() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation += cc.orbitSpeed
	cc.clampElevation()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) OrbitDown() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation -= cc.orbitSpeed
	cc.clampElevation()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Drag(dx, dy float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth += dx * cc.mouseSensitivity
	cc.elevation += dy * cc.mouseSensitivity
	cc.clampElevation()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) SetRadius(radius float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius = radius
	cc.clampRadius()
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Azimuth() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.azimuth
}

func (cc *cameraControllerImpl) SetAzimuth(azimuth float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.azimuth = azimuth
	cc.updatePosition()
}

func (cc *cameraControllerImpl) Elevation() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.elevation
}

func (cc *cameraControllerImpl) SetElevation(elevation float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.elevation = elevation
	cc.clampElevation()
	cc.updatePosition()
}

// --- planarCameraController implementation ---

func (cc *cameraControllerImpl) PanRight(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	right, _, _ := cc.localAxes()
	cc.translate(right, delta)
}

func (cc *cameraControllerImpl) PanUp(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, up, _ := cc.localAxes()
	cc.translate(up, delta)
}

func (cc *cameraControllerImpl) PanForward(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	_, _, forward := cc.localAxes()
	cc.translate(forward, delta)
}
