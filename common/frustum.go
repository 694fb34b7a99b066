package common

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Plane represents a plane in 3D space using the equation: ax + by + cz + d = 0
// where (a, b, c) is the normal and d is the distance from origin.
type Plane struct {
	Normal   mgl32.Vec3
	Distance float32
}

// SignedDistance returns the signed distance from p to the plane.
// Positive values lie on the side the normal points to.
func (p Plane) SignedDistance(point mgl32.Vec3) float32 {
	return p.Normal.Dot(point) + p.Distance
}

// Frustum represents the six planes of a view frustum for culling.
// Planes are oriented so that positive half-space is inside the frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumPlane indices for clarity
const (
	FrustumLeft   = 0
	FrustumRight  = 1
	FrustumBottom = 2
	FrustumTop    = 3
	FrustumNear   = 4
	FrustumFar    = 5
)

// ExtractFrustumFromMatrix extracts frustum planes from a view-projection matrix.
// The matrix should be the combined Projection * View matrix with OpenGL clip space (z in [-1, 1]).
// Uses the Gribb/Hartmann method for plane extraction.
//
// Reference: https://www8.cs.umu.se/kurser/5DV051/HT12/lab/plane_extraction.pdf
//
// Parameters:
//   - viewProj: the column-major view-projection matrix
//
// Returns:
//   - Frustum: the extracted frustum with normalized planes
func ExtractFrustumFromMatrix(viewProj mgl32.Mat4) Frustum {
	var f Frustum

	row0 := viewProj.Row(0)
	row1 := viewProj.Row(1)
	row2 := viewProj.Row(2)
	row3 := viewProj.Row(3)

	f.Planes[FrustumLeft] = planeFromRow(row3.Add(row0))
	f.Planes[FrustumRight] = planeFromRow(row3.Sub(row0))
	f.Planes[FrustumBottom] = planeFromRow(row3.Add(row1))
	f.Planes[FrustumTop] = planeFromRow(row3.Sub(row1))
	f.Planes[FrustumNear] = planeFromRow(row3.Add(row2))
	f.Planes[FrustumFar] = planeFromRow(row3.Sub(row2))

	for i := range f.Planes {
		f.normalizePlane(i)
	}

	return f
}

// ContainsPoint reports whether point lies inside or on every plane of the frustum.
//
// Parameters:
//   - point: world-space point to test
//
// Returns:
//   - bool: true if the point is inside the frustum
func (f *Frustum) ContainsPoint(point mgl32.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].SignedDistance(point) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere reports whether any part of the sphere lies inside the frustum.
// The test is conservative: spheres near frustum corners may be reported as intersecting.
//
// Parameters:
//   - sphere: world-space bounding sphere
//
// Returns:
//   - bool: false only if the sphere is entirely outside at least one plane
func (f *Frustum) IntersectsSphere(sphere Sphere) bool {
	for i := range f.Planes {
		if f.Planes[i].SignedDistance(sphere.Center) < -sphere.Radius {
			return false
		}
	}
	return true
}

func planeFromRow(r mgl32.Vec4) Plane {
	return Plane{Normal: r.Vec3(), Distance: r[3]}
}

// normalizePlane normalizes a frustum plane so that the normal has unit length.
func (f *Frustum) normalizePlane(index int) {
	p := &f.Planes[index]
	length := p.Normal.Len()

	if length > 0 {
		invLen := 1.0 / length
		p.Normal = p.Normal.Mul(invLen)
		p.Distance *= invLen
	}
}
