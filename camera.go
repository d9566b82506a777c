package tinsel

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Projection and orbit defaults.
const (
	cameraNear       = 0.5 // eye-space Z below which billboards are culled
	defaultDistance  = 34
	introDistance    = 90
	introDuration    = 2.5
	defaultPitch     = 0.22 // radians above the horizon
	defaultOrbitRate = 0.12 // radians per second of yaw drift
	focalFactor      = 1.1  // focal length as a fraction of half screen height
)

// OrbitCamera circles a target point at a fixed pitch and distance, with a
// slow automatic yaw drift. Dragging temporarily overrides the drift; the
// intro eases the distance in from afar with a gween tween.
type OrbitCamera struct {
	// Target is the world-space point the camera looks at.
	Target Vec3
	// Yaw and Pitch are the orbit angles in radians.
	Yaw, Pitch float64
	// Distance is the eye's distance from Target.
	Distance float64
	// OrbitRate is the automatic yaw drift in radians per second.
	// Zero disables the drift.
	OrbitRate float64

	introTween *gween.Tween
}

// newOrbitCamera creates a camera aimed at the origin with the intro sweep
// armed: the first frames ease Distance from far out to its resting value.
func newOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Pitch:      defaultPitch,
		Distance:   introDistance,
		OrbitRate:  defaultOrbitRate,
		introTween: gween.New(introDistance, defaultDistance, introDuration, ease.OutCubic),
	}
}

// update advances the yaw drift and the intro tween by dt seconds.
func (c *OrbitCamera) update(dt float64) {
	c.Yaw += c.OrbitRate * dt
	if c.introTween != nil {
		v, done := c.introTween.Update(float32(dt))
		c.Distance = float64(v)
		if done {
			c.introTween = nil
		}
	}
}

// Drag rotates the orbit by screen-space deltas. Pitch is clamped so the
// camera never flips over the pole.
func (c *OrbitCamera) Drag(dx, dy float64) {
	c.Yaw -= dx * 0.008
	c.Pitch += dy * 0.005
	const maxPitch = 1.4
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	} else if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// project maps a world position to screen space. Returns the screen
// coordinates, the eye-space depth, and the perspective scale factor applied
// to billboard sizes. ok is false when the point is behind the near plane.
func (c *OrbitCamera) project(p Vec3, halfW, halfH float64) (x, y, depth, scale float64, ok bool) {
	// World to eye: translate to the target, yaw around Y, pitch around X,
	// then push back by Distance.
	rel := p.Sub(c.Target)

	sinYaw, cosYaw := math.Sincos(c.Yaw)
	rx := cosYaw*rel.X - sinYaw*rel.Z
	rz := sinYaw*rel.X + cosYaw*rel.Z

	sinPitch, cosPitch := math.Sincos(c.Pitch)
	ry := cosPitch*rel.Y - sinPitch*rz
	rz = sinPitch*rel.Y + cosPitch*rz

	depth = c.Distance - rz
	if depth < cameraNear {
		return 0, 0, 0, 0, false
	}

	scale = halfH * focalFactor / depth
	x = halfW + rx*scale
	y = halfH - ry*scale
	return x, y, depth, scale, true
}
