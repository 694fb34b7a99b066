package common

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Forward is the canonical view direction of an unrotated camera (local -Z).
var Forward = mgl32.Vec3{0, 0, -1}

// Lerp linearly interpolates between a and b.
// The expression is evaluated as a + (b-a)*t so frustum values derived from it
// are reproducible bit for bit. The explicit conversion keeps the compiler from
// fusing the multiply and add.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor
//
// Returns:
//   - float32: the interpolated value
func Lerp(a, b, t float32) float32 {
	return a + float32((b-a)*t)
}

// ToRadians converts an angle in degrees to radians.
func ToRadians(degrees float32) float32 {
	return degrees * (math32.Pi / 180)
}

// ToDegrees converts an angle in radians to degrees.
func ToDegrees(radians float32) float32 {
	return radians * (180 / math32.Pi)
}

// AlignZAxisWithTarget builds a rotation matrix whose local Z axis points along targetDir
// and whose local X axis is perpendicular to upDir. The matrix is column-major with the
// new X, Y and Z axes stored in columns 0, 1 and 2.
//
// A zero targetDir falls back to +Z and a zero upDir falls back to +Y. When the two
// directions are parallel an arbitrary perpendicular up direction is chosen.
//
// Parameters:
//   - targetDir: direction the local Z axis should point along
//   - upDir: reference up direction used to resolve roll
//
// Returns:
//   - mgl32.Mat4: the rotation matrix
func AlignZAxisWithTarget(targetDir, upDir mgl32.Vec3) mgl32.Mat4 {
	if targetDir.Dot(targetDir) == 0 {
		targetDir = mgl32.Vec3{0, 0, 1}
	}
	if upDir.Dot(upDir) == 0 {
		upDir = mgl32.Vec3{0, 1, 0}
	}

	if c := upDir.Cross(targetDir); c.Dot(c) == 0 {
		upDir = targetDir.Cross(mgl32.Vec3{1, 0, 0})
		if upDir.Dot(upDir) == 0 {
			upDir = targetDir.Cross(mgl32.Vec3{0, 0, 1})
		}
	}

	targetPerpDir := upDir.Cross(targetDir)
	targetUpDir := targetDir.Cross(targetPerpDir)

	x := targetPerpDir.Normalize()
	y := targetUpDir.Normalize()
	z := targetDir.Normalize()

	return mgl32.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	}
}

// OrientationFromDirection returns the unit quaternion that maps local -Z onto viewDirection
// while keeping local +X perpendicular to worldUp.
//
// Parameters:
//   - viewDirection: normalized direction the camera looks along
//   - worldUp: normalized world up vector
//
// Returns:
//   - mgl32.Quat: the resulting orientation
func OrientationFromDirection(viewDirection, worldUp mgl32.Vec3) mgl32.Quat {
	return mgl32.Mat4ToQuat(AlignZAxisWithTarget(viewDirection.Mul(-1), worldUp)).Normalize()
}

// RotationBetween returns the shortest-arc unit quaternion rotating from onto to.
// Inputs need not be normalized. The quaternion is assembled in float64 so directions a
// fraction of a degree from antiparallel still rotate onto to. Exactly opposite inputs
// yield a half turn about an axis perpendicular to from.
//
// Parameters:
//   - from: source direction
//   - to: destination direction
//
// Returns:
//   - mgl32.Quat: the rotation
func RotationBetween(from, to mgl32.Vec3) mgl32.Quat {
	a := [3]float64{float64(from[0]), float64(from[1]), float64(from[2])}
	b := [3]float64{float64(to[0]), float64(to[1]), float64(to[2])}

	dot := a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
	cross := [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
	crossSq := cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2]
	lengths := math.Sqrt((a[0]*a[0] + a[1]*a[1] + a[2]*a[2]) * (b[0]*b[0] + b[1]*b[1] + b[2]*b[2]))

	// |a||b| + a.b cancels near antiparallel; |a x b|^2 / (|a||b| - a.b) does not.
	var w float64
	if dot >= 0 {
		w = lengths + dot
	} else {
		w = crossSq / (lengths - dot)
	}

	n := math.Sqrt(w*w + crossSq)
	if n == 0 || math.IsNaN(n) {
		axis := from.Cross(mgl32.Vec3{1, 0, 0})
		if axis.Dot(axis) == 0 {
			axis = from.Cross(mgl32.Vec3{0, 1, 0})
		}
		return mgl32.Quat{W: 0, V: axis.Normalize()}
	}

	return mgl32.Quat{
		W: float32(w / n),
		V: mgl32.Vec3{float32(cross[0] / n), float32(cross[1] / n), float32(cross[2] / n)},
	}
}

// TransformPoint multiplies a point (w = 1) by m and returns the homogeneous result.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec4 {
	return m.Mul4x1(p.Vec4(1))
}
