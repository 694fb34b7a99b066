package camera

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func approx(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func approxVec3(a, b mgl32.Vec3, eps float32) bool {
	for i := range a {
		if !approx(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

func approxMat4(a, b mgl32.Mat4, eps float32) bool {
	for i := range a {
		if !approx(a[i], b[i], eps) {
			return false
		}
	}
	return true
}

// captureLogs redirects debug-check output for the duration of the test.
func captureLogs(t *testing.T) *[]string {
	t.Helper()
	var msgs []string
	orig := logf
	logf = func(format string, args ...any) {
		msgs = append(msgs, fmt.Sprintf(format, args...))
	}
	t.Cleanup(func() { logf = orig })
	return &msgs
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindPerspective, "perspective"},
		{KindOrthographic, "orthographic"},
		{KindStereo, "stereo"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestNewPerspectiveDefaults(t *testing.T) {
	cam := NewPerspective()

	if cam.Kind() != KindPerspective {
		t.Errorf("Kind = %v, want perspective", cam.Kind())
	}
	if got := cam.EyePoint(); got != (mgl32.Vec3{28, 21, 28}) {
		t.Errorf("EyePoint = %v", got)
	}
	wantDir := mgl32.Vec3{-28, -21, -28}.Normalize()
	if got := cam.ViewDirection(); !approxVec3(got, wantDir, 1e-6) {
		t.Errorf("ViewDirection = %v, want %v", got, wantDir)
	}
	if cam.CenterOfInterest() != 44.822 {
		t.Errorf("CenterOfInterest = %v", cam.CenterOfInterest())
	}
	if cam.Fov() != 35 || cam.AspectRatio() != 1 || cam.NearClip() != 0.1 || cam.FarClip() != 1000 {
		t.Errorf("perspective = (%v, %v, %v, %v), want (35, 1, 0.1, 1000)",
			cam.Fov(), cam.AspectRatio(), cam.NearClip(), cam.FarClip())
	}
	if cam.WorldUp() != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("WorldUp = %v", cam.WorldUp())
	}
}

func TestSetViewDirectionRoundTrip(t *testing.T) {
	dirs := []mgl32.Vec3{
		{1, 2, -3},
		{0, 0, -1},
		{0, 0, 1},
		{-4, 0, 0},
		{0.1, -0.9, 0.2},
		{0.01, 0.01, 1},
	}
	for _, eps := range []float32{1e-4, 1e-3, 0.01, 0.03, 0.05} {
		dirs = append(dirs,
			mgl32.Vec3{eps, 0, 1},
			mgl32.Vec3{0, eps, 1},
			mgl32.Vec3{eps, 0, -1},
			mgl32.Vec3{0, eps, -1},
		)
	}

	for _, dir := range dirs {
		cam := NewPerspective()
		cam.SetViewDirection(dir)

		want := dir.Normalize()
		if got := cam.ViewDirection(); !approxVec3(got, want, 1e-6) {
			t.Errorf("SetViewDirection(%v): ViewDirection = %v, want %v", dir, got, want)
		}
		if got := cam.Orientation().Rotate(mgl32.Vec3{0, 0, -1}); !approxVec3(got, want, 1e-5) {
			t.Errorf("SetViewDirection(%v): orientation maps -Z to %v", dir, got)
		}

		view := cam.ViewMatrix()
		u := mgl32.Vec3{view[0], view[4], view[8]}
		v := mgl32.Vec3{view[1], view[5], view[9]}
		w := mgl32.Vec3{view[2], view[6], view[10]}
		if !approx(u.Len(), 1, 1e-5) || !approx(v.Len(), 1, 1e-5) || !approx(u.Dot(v), 0, 1e-5) {
			t.Errorf("SetViewDirection(%v): view rows not orthonormal: u=%v v=%v", dir, u, v)
		}
		if got := u.Cross(v); !approxVec3(got, w, 1e-5) {
			t.Errorf("SetViewDirection(%v): u x v = %v, want w = %v", dir, got, w)
		}
	}
}

func TestSetOrientationRoundTrip(t *testing.T) {
	cam := NewPerspective()
	q := mgl32.QuatRotate(0.7, mgl32.Vec3{1, 1, 0}.Normalize())
	cam.SetOrientation(q.Scale(3))

	if got := cam.Orientation(); !approx(got.W, q.W, 1e-5) || !approxVec3(got.V, q.V, 1e-5) {
		t.Errorf("Orientation = %v, want %v", got, q)
	}
	want := q.Rotate(mgl32.Vec3{0, 0, -1})
	if got := cam.ViewDirection(); !approxVec3(got, want, 1e-5) {
		t.Errorf("ViewDirection = %v, want %v", got, want)
	}
}

func TestLookAtFromBuildsViewMatrix(t *testing.T) {
	cam := NewPerspective()
	cam.LookAtFrom(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})

	if got := cam.ViewDirection(); !approxVec3(got, mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("ViewDirection = %v, want (0, 0, -1)", got)
	}
	if got, want := cam.ViewMatrix(), mgl32.Translate3D(0, 0, -5); !approxMat4(got, want, 1e-5) {
		t.Errorf("ViewMatrix = %v, want %v", got, want)
	}
}

func TestLookAtKeepsRightAxisLevel(t *testing.T) {
	cam := NewPerspective()
	cam.LookAtFrom(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{1, -2, 0})

	right, up := cam.BillboardVectors()
	if d := right.Dot(cam.WorldUp()); !approx(d, 0, 1e-5) {
		t.Errorf("right . worldUp = %v, want 0", d)
	}
	if up.Dot(cam.WorldUp()) <= 0 {
		t.Errorf("camera up %v points away from world up", up)
	}
}

func TestViewTimesInverseViewIsIdentity(t *testing.T) {
	cam := NewPerspective()
	cam.LookAtFrom(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{1, -2, 0})

	got := cam.ViewMatrix().Mul4(cam.InverseViewMatrix())
	if !approxMat4(got, mgl32.Ident4(), 1e-5) {
		t.Errorf("view * inverseView = %v, want identity", got)
	}
}

func TestSetWorldUpReresolvesRoll(t *testing.T) {
	cam := NewPerspective()
	cam.LookAtFrom(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	cam.SetWorldUp(mgl32.Vec3{2, 0, 0})

	if got := cam.WorldUp(); got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("WorldUp = %v, want (1, 0, 0)", got)
	}
	if got := cam.ViewDirection(); !approxVec3(got, mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("ViewDirection changed to %v", got)
	}
	_, up := cam.BillboardVectors()
	if !approxVec3(up, mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Errorf("camera up = %v, want (1, 0, 0)", up)
	}
}

func TestLookAtFromUp(t *testing.T) {
	cam := NewPerspective()
	cam.LookAtFromUp(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -3})

	if got := cam.WorldUp(); got != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("WorldUp = %v", got)
	}
	if got := cam.ViewDirection(); !approxVec3(got, mgl32.Vec3{0, -1, 0}, 1e-6) {
		t.Errorf("ViewDirection = %v", got)
	}
	if d := cam.WorldToEyeDepth(mgl32.Vec3{}); !approx(d, -5, 1e-5) {
		t.Errorf("depth of target = %v, want -5", d)
	}
}

func TestCenterOfInterest(t *testing.T) {
	cam := NewPerspective()
	cam.LookAtFrom(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	cam.SetCenterOfInterest(5)

	if got := cam.CenterOfInterestPoint(); !approxVec3(got, mgl32.Vec3{}, 1e-5) {
		t.Errorf("CenterOfInterestPoint = %v, want origin", got)
	}

	cam.SetCenterOfInterestPoint(mgl32.Vec3{4, 0, 2})
	if got := cam.CenterOfInterest(); !approx(got, 5, 1e-5) {
		t.Errorf("CenterOfInterest = %v, want 5", got)
	}
	if got := cam.ViewDirection(); !approxVec3(got, mgl32.Vec3{0.8, 0, -0.6}, 1e-5) {
		t.Errorf("ViewDirection = %v, want (0.8, 0, -0.6)", got)
	}
	if got := cam.EyePoint(); got != (mgl32.Vec3{0, 0, 5}) {
		t.Errorf("EyePoint moved to %v", got)
	}
}

func TestViewMutationKeepsProjectionCache(t *testing.T) {
	cam := NewPerspective().(*cameraImpl)
	proj := cam.ProjectionMatrix()
	invProj := cam.InverseProjectionMatrix()

	cam.SetEyePoint(mgl32.Vec3{1, 2, 3})
	cam.LookAt(mgl32.Vec3{-4, 0, 1})
	cam.SetWorldUp(mgl32.Vec3{0, 1, 0.1})

	if cam.cache.projection != cacheValid {
		t.Fatalf("view mutation staled the projection")
	}
	if cam.cache.view != cacheStale {
		t.Errorf("view cache not staled by view mutation")
	}
	if got := cam.ProjectionMatrix(); got != proj {
		t.Errorf("projection changed after view mutation")
	}
	if got := cam.InverseProjectionMatrix(); got != invProj {
		t.Errorf("inverse projection changed after view mutation")
	}
}

func TestProjectionMutationKeepsViewCache(t *testing.T) {
	cam := NewPerspective().(*cameraImpl)
	view := cam.ViewMatrix()
	invView := cam.InverseViewMatrix()
	proj := cam.ProjectionMatrix()

	cam.SetFov(50)
	cam.SetAspectRatio(1.5)
	cam.SetNearClip(0.5)
	cam.SetFarClip(50)

	if cam.cache.view != cacheValid || cam.cache.inverseView != cacheValid {
		t.Fatalf("projection mutation staled the view")
	}
	if cam.cache.projection != cacheStale {
		t.Errorf("projection cache not staled by projection mutation")
	}
	if got := cam.ViewMatrix(); got != view {
		t.Errorf("view changed after projection mutation")
	}
	if got := cam.InverseViewMatrix(); got != invView {
		t.Errorf("inverse view changed after projection mutation")
	}
	if got := cam.ProjectionMatrix(); got == proj {
		t.Errorf("projection not rebuilt after SetFov")
	}
	if cam.cache.projection != cacheValid {
		t.Errorf("projection cache not valid after rebuild")
	}
}

func TestAccessorsRebuildLazily(t *testing.T) {
	cam := NewPerspective().(*cameraImpl)
	if cam.cache.view != cacheStale || cam.cache.projection != cacheStale {
		t.Fatalf("new camera should start with stale caches")
	}

	cam.ViewMatrix()
	if cam.cache.view != cacheValid {
		t.Errorf("ViewMatrix did not validate the view cache")
	}
	if cam.cache.inverseView != cacheStale {
		t.Errorf("ViewMatrix should not build the inverse view")
	}
	if cam.cache.projection != cacheStale {
		t.Errorf("ViewMatrix should not build the projection")
	}

	cam.InverseViewMatrix()
	if cam.cache.inverseView != cacheValid {
		t.Errorf("InverseViewMatrix did not validate the inverse view cache")
	}
}

func TestClone(t *testing.T) {
	orig := NewPerspective()
	orig.LookAtFrom(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{})
	view := orig.ViewMatrix()
	proj := orig.ProjectionMatrix()

	cp := orig.Clone()
	if cp.Kind() != KindPerspective {
		t.Errorf("clone Kind = %v", cp.Kind())
	}
	if cp.ViewMatrix() != view || cp.ProjectionMatrix() != proj {
		t.Errorf("clone matrices differ from the original")
	}

	cp.SetEyePoint(mgl32.Vec3{10, 10, 10})
	cp.SetFov(80)
	if orig.EyePoint() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("clone mutation moved the original to %v", orig.EyePoint())
	}
	if orig.ViewMatrix() != view || orig.ProjectionMatrix() != proj {
		t.Errorf("clone mutation changed the original matrices")
	}
	if orig.Fov() != 35 {
		t.Errorf("original Fov = %v, want 35", orig.Fov())
	}
}

func TestUpdateFollowsController(t *testing.T) {
	cam := NewPerspective()
	before := cam.EyePoint()
	cam.Update()
	if cam.EyePoint() != before {
		t.Fatalf("Update without a controller moved the camera")
	}

	ctrl := NewCameraController(WithTarget(mgl32.Vec3{1, 0, 0}), WithRadius(100))
	cam.SetController(ctrl)
	if cam.Controller() != ctrl {
		t.Fatalf("Controller did not return the attached controller")
	}

	ctrl.OrbitRight()
	cam.Update()

	if got := cam.EyePoint(); got != ctrl.Position() {
		t.Errorf("EyePoint = %v, want %v", got, ctrl.Position())
	}
	want := ctrl.Target().Sub(ctrl.Position()).Normalize()
	if got := cam.ViewDirection(); !approxVec3(got, want, 1e-5) {
		t.Errorf("ViewDirection = %v, want %v", got, want)
	}

	cam.SetController(nil)
	ctrl.Zoom(1)
	pos := cam.EyePoint()
	cam.Update()
	if cam.EyePoint() != pos {
		t.Errorf("Update after detaching still followed the controller")
	}
}

func TestWithControllerAppliesPose(t *testing.T) {
	ctrl := NewCameraController(WithTarget(mgl32.Vec3{0, 1, 0}))
	cam := NewPerspective(WithController(ctrl))

	if cam.EyePoint() != ctrl.Position() {
		t.Errorf("EyePoint = %v, want %v", cam.EyePoint(), ctrl.Position())
	}
	want := ctrl.Target().Sub(ctrl.Position()).Normalize()
	if got := cam.ViewDirection(); !approxVec3(got, want, 1e-5) {
		t.Errorf("ViewDirection = %v, want %v", got, want)
	}
}

func TestBuilderOptions(t *testing.T) {
	cam := NewPerspective(
		WithLookAt(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}),
		WithFov(60),
		WithAspectRatio(2),
		WithNearClip(1),
		WithFarClip(50),
		WithLensShift(0.5, 0),
	)

	if cam.Fov() != 60 || cam.AspectRatio() != 2 || cam.NearClip() != 1 || cam.FarClip() != 50 {
		t.Errorf("options not applied: fov=%v aspect=%v near=%v far=%v",
			cam.Fov(), cam.AspectRatio(), cam.NearClip(), cam.FarClip())
	}
	if cam.LensShift() != (mgl32.Vec2{0.5, 0}) {
		t.Errorf("LensShift = %v", cam.LensShift())
	}
	if got := cam.ViewDirection(); !approxVec3(got, mgl32.Vec3{0, 0, -1}, 1e-6) {
		t.Errorf("ViewDirection = %v", got)
	}
	if f := cam.Frustum(); f.Left == -f.Right {
		t.Errorf("lens shift not reflected in frustum %+v", f)
	}
}

func TestDebugChecksLogDegenerateInput(t *testing.T) {
	msgs := captureLogs(t)

	cam := NewPerspective(WithDebugChecks(true))
	cam.SetNearClip(-1)
	if len(*msgs) != 1 || !strings.Contains((*msgs)[0], "SetNearClip") {
		t.Fatalf("logs after bad near clip = %q", *msgs)
	}

	cam.SetNearClip(0.1)
	cam.SetFarClip(0.05)
	if len(*msgs) != 2 || !strings.Contains((*msgs)[1], "SetFarClip") {
		t.Fatalf("logs after bad far clip = %q", *msgs)
	}

	cam.SetViewDirection(mgl32.Vec3{})
	if len(*msgs) != 3 || !strings.Contains((*msgs)[2], "zero-length direction") {
		t.Fatalf("logs after zero direction = %q", *msgs)
	}
}

func TestDebugChecksDisabledByDefault(t *testing.T) {
	msgs := captureLogs(t)

	cam := NewPerspective()
	cam.SetNearClip(-1)
	cam.SetWorldUp(mgl32.Vec3{})

	if len(*msgs) != 0 {
		t.Errorf("unexpected logs with checks disabled: %q", *msgs)
	}
}

func TestConcurrentAccessors(t *testing.T) {
	cam := NewStereo(WithLookAt(mgl32.Vec3{0, 2, 6}, mgl32.Vec3{}))
	want := cam.ViewProjectionMatrix()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := cam.ViewProjectionMatrix(); got != want {
					t.Errorf("ViewProjectionMatrix changed under concurrent reads")
					return
				}
				cam.WorldToNdc(mgl32.Vec3{0.1, 0.2, 0.3})
			}
		}()
	}
	wg.Wait()
}
