package camera

import (
	"testing"

	"github.com/fogleman/fauxgl"
	"github.com/go-gl/mathgl/mgl32"
)

// These tests project the same points through fauxgl's float64 pipeline and compare NDC.

func toFauxgl(v mgl32.Vec3) fauxgl.Vector {
	return fauxgl.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

func fauxglNdc(m fauxgl.Matrix, p mgl32.Vec3) mgl32.Vec3 {
	w := m.MulPositionW(toFauxgl(p))
	return mgl32.Vec3{float32(w.X / w.W), float32(w.Y / w.W), float32(w.Z / w.W)}
}

var oraclePoints = []mgl32.Vec3{
	{0, 0, 0},
	{1, 0.5, -0.25},
	{-2, 1, 1.5},
	{0.3, -0.7, 2},
}

var oraclePoses = []struct {
	name        string
	eye, target mgl32.Vec3
}{
	{"front", mgl32.Vec3{0, 0, 8}, mgl32.Vec3{}},
	{"oblique", mgl32.Vec3{5, 3, 6}, mgl32.Vec3{0, 0.5, 0}},
	{"side", mgl32.Vec3{-7, 1, 0.5}, mgl32.Vec3{0, 0, 0.2}},
}

func TestPerspectiveMatchesFauxgl(t *testing.T) {
	for _, pose := range oraclePoses {
		t.Run(pose.name, func(t *testing.T) {
			cam := NewPerspective(WithLookAt(pose.eye, pose.target))
			cam.SetPerspective(45, 1.6, 0.5, 200)

			ref := fauxgl.LookAt(toFauxgl(pose.eye), toFauxgl(pose.target), fauxgl.Vector{Y: 1}).
				Perspective(45, 1.6, 0.5, 200)

			for _, p := range oraclePoints {
				if got, want := cam.WorldToNdc(p), fauxglNdc(ref, p); !approxVec3(got, want, 1e-3) {
					t.Errorf("WorldToNdc(%v) = %v, fauxgl = %v", p, got, want)
				}
			}
		})
	}
}

func TestLensShiftMatchesFauxglFrustum(t *testing.T) {
	pose := oraclePoses[1]
	cam := NewPerspective(WithLookAt(pose.eye, pose.target), WithLensShift(0.4, -0.3))
	cam.SetPerspective(50, 1.25, 0.5, 100)

	b := cam.Frustum()
	ref := fauxgl.LookAt(toFauxgl(pose.eye), toFauxgl(pose.target), fauxgl.Vector{Y: 1}).
		Frustum(float64(b.Left), float64(b.Right), float64(b.Bottom), float64(b.Top), float64(b.Near), float64(b.Far))

	for _, p := range oraclePoints {
		if got, want := cam.WorldToNdc(p), fauxglNdc(ref, p); !approxVec3(got, want, 1e-3) {
			t.Errorf("WorldToNdc(%v) = %v, fauxgl = %v", p, got, want)
		}
	}
}

func TestOrthographicMatchesFauxgl(t *testing.T) {
	for _, pose := range oraclePoses {
		t.Run(pose.name, func(t *testing.T) {
			cam := NewOrthographic(-3, 4, -2, 2.5, 0.5, 50)
			cam.LookAtFrom(pose.eye, pose.target)

			ref := fauxgl.LookAt(toFauxgl(pose.eye), toFauxgl(pose.target), fauxgl.Vector{Y: 1}).
				Orthographic(-3, 4, -2, 2.5, 0.5, 50)

			for _, p := range oraclePoints {
				if got, want := cam.WorldToNdc(p), fauxglNdc(ref, p); !approxVec3(got, want, 1e-4) {
					t.Errorf("WorldToNdc(%v) = %v, fauxgl = %v", p, got, want)
				}
			}
		})
	}
}

func TestStereoEyesMatchFauxgl(t *testing.T) {
	pose := oraclePoses[1]
	const sep, conv = 0.3, 6

	cam := NewStereo(WithLookAt(pose.eye, pose.target), WithEyeSeparation(sep), WithConvergence(conv))
	cam.SetPerspective(40, 1.5, 0.5, 100)
	b := cam.Frustum()
	shift := 0.5 * sep * (b.Near / conv)

	right := cam.ViewDirection().Cross(cam.WorldUp()).Normalize()
	offset := right.Mul(0.5 * sep)

	for _, tt := range []struct {
		name   string
		left   bool
		offset mgl32.Vec3
		shift  float32
	}{
		{"left", true, offset.Mul(-1), shift},
		{"right", false, offset, -shift},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if tt.left {
				cam.EnableStereoLeft()
			} else {
				cam.EnableStereoRight()
			}

			eye := pose.eye.Add(tt.offset)
			target := pose.target.Add(tt.offset)
			ref := fauxgl.LookAt(toFauxgl(eye), toFauxgl(target), fauxgl.Vector{Y: 1}).
				Frustum(float64(b.Left+tt.shift), float64(b.Right+tt.shift), float64(b.Bottom), float64(b.Top),
					float64(b.Near), float64(b.Far))

			if got := cam.EyePointShifted(); !approxVec3(got, eye, 1e-5) {
				t.Errorf("EyePointShifted = %v, want %v", got, eye)
			}
			for _, p := range oraclePoints {
				if got, want := cam.WorldToNdc(p), fauxglNdc(ref, p); !approxVec3(got, want, 1e-3) {
					t.Errorf("WorldToNdc(%v) = %v, fauxgl = %v", p, got, want)
				}
			}
		})
	}
}
