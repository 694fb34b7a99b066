package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line starting at Origin and extending along Direction.
type Ray struct {
	// Origin is the world-space start point of the ray.
	Origin mgl32.Vec3
	// Direction is the unit direction of the ray.
	Direction mgl32.Vec3
}

// PointAt returns the point at parametric distance t along the ray.
//
// Parameters:
//   - t: distance along the ray direction
//
// Returns:
//   - mgl32.Vec3: Origin + Direction*t
func (r Ray) PointAt(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Sphere is a bounding sphere used for framing, culling and level-of-detail queries.
type Sphere struct {
	// Center is the position of the sphere's center.
	Center mgl32.Vec3
	// Radius is the sphere radius.
	Radius float32
}

// Transformed returns the sphere with its center moved through m. The radius is kept,
// which is only exact for rigid transforms such as a view matrix.
func (s Sphere) Transformed(m mgl32.Mat4) Sphere {
	return Sphere{Center: TransformPoint(m, s.Center).Vec3(), Radius: s.Radius}
}

// CalcProjectedArea estimates the screen-space area, in pixels, covered by the sphere.
// The sphere must already be in camera space (camera at the origin looking down -Z).
// The estimate is the area of the projected ellipse and is most accurate when the sphere
// covers a small fraction of the screen.
//
// Parameters:
//   - focalLength: normalized focal length of the camera
//   - screenSizePixels: viewport width and height in pixels
//
// Returns:
//   - float32: projected area in square pixels
func (s Sphere) CalcProjectedArea(focalLength float32, screenSizePixels mgl32.Vec2) float32 {
	o := s.Center
	r2 := s.Radius * s.Radius
	z2 := o[2] * o[2]
	l2 := o.Dot(o)
	area := -math32.Pi * focalLength * focalLength * r2 * math32.Sqrt(math32.Abs((l2-r2)/(r2-z2))) / (r2 - z2)
	return area * screenSizePixels[0] * screenSizePixels[1] * 0.25
}
