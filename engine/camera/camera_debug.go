package camera

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// logf is swapped out in tests to capture debug-check output.
var logf = log.Printf

func (c *cameraImpl) checkDirection(op string, direction mgl32.Vec3) {
	if c.debugChecks && direction.Dot(direction) == 0 {
		logf("camera: %s: zero-length direction on %s camera", op, c.kind)
	}
}

func (c *cameraImpl) checkClipPlanes(op string) {
	if !c.debugChecks {
		return
	}
	if c.nearClip <= 0 || c.farClip <= c.nearClip {
		logf("camera: %s: invalid clip planes near=%g far=%g", op, c.nearClip, c.farClip)
	}
}
