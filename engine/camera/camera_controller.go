package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraController defines the union interface for camera navigation.
// Controllers own positional state (position, target). A Camera with an attached
// controller looks from Position at Target on every Update. Embeds both
// orbitCameraController and planarCameraController, enabling orbit and planar
// controls to work simultaneously from a single controller instance.
type CameraController interface {
	orbitCameraController
	planarCameraController

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// SetTarget sets the look-at/pivot point and recomputes position from spherical coordinates.
	//
	// Parameters:
	//   - target: world-space coordinates
	SetTarget(target mgl32.Vec3)

	// Zoom adjusts the camera's distance by modifying orbit radius.
	// Positive delta zooms in (closer to target).
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)
}

// orbitCameraController defines orbit-specific control methods.
// Provides third-person orbit controls using spherical coordinates (radius, azimuth, elevation)
// relative to the target/pivot point.
type orbitCameraController interface {
	// OrbitLeft rotates the camera left around the target by one orbit speed step.
	OrbitLeft()

	// OrbitRight rotates the camera right around the target by one orbit speed step.
	OrbitRight()

	// OrbitUp tilts the camera upward by one orbit speed step, clamped to max elevation.
	OrbitUp()

	// OrbitDown tilts the camera downward by one orbit speed step, clamped to min elevation.
	OrbitDown()

	// Drag orbits by a pointer delta scaled by the mouse sensitivity.
	// Positive dx orbits right, positive dy tilts up.
	//
	// Parameters:
	//   - dx, dy: pointer movement in pixels
	Drag(dx, dy float32)

	// Radius returns the current orbit radius (distance from target).
	//
	// Returns:
	//   - float32: current distance from target
	Radius() float32

	// SetRadius sets the orbit radius directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - radius: new distance from target
	SetRadius(radius float32)

	// Azimuth returns the current horizontal angle around the Y axis.
	//
	// Returns:
	//   - float32: azimuth in radians
	Azimuth() float32

	// SetAzimuth sets the horizontal angle directly and recomputes position.
	//
	// Parameters:
	//   - azimuth: new horizontal angle in radians
	SetAzimuth(azimuth float32)

	// Elevation returns the current vertical angle from the horizontal plane.
	//
	// Returns:
	//   - float32: elevation in radians
	Elevation() float32

	// SetElevation sets the vertical angle directly, clamped to min/max bounds.
	//
	// Parameters:
	//   - elevation: new vertical angle in radians
	SetElevation(elevation float32)
}

// planarCameraController defines planar translation control methods.
// Provides first-person-style panning along the camera's local axes without
// changing orbit angles. Panning shifts both position and target by the same
// offset, preserving the orbit relationship.
type planarCameraController interface {
	// PanRight translates the camera along its local right axis.
	// Positive delta moves right, negative moves left.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanRight(delta float32)

	// PanUp translates the camera along its local up axis.
	// Positive delta moves up, negative moves down.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanUp(delta float32)

	// PanForward translates the camera along its local forward axis (dolly).
	// Positive delta moves toward the target, negative moves away.
	//
	// Parameters:
	//   - delta: pan amount scaled by the pan speed
	PanForward(delta float32)
}
