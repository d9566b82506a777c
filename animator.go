package tinsel

import "math"

// Snow gets fixed-rate twinkle increments on two axes on top of the generic
// per-particle drift.
const (
	snowTwinkleX = 0.013
	snowTwinkleZ = 0.021
)

// Animator advances every particle's visual state once per rendered frame.
// It reads the active layout, moves each billboard toward its layout target
// with an exponential approach, applies the generic rotation drift, then the
// category effect branch. The per-particle step has no failure path and
// allocates nothing; particle order is not observable since particles are
// mutually independent.
type Animator struct {
	particles []*Particle
	time      float64
}

func newAnimator(particles []*Particle) *Animator {
	return &Animator{particles: particles}
}

// Time returns the accumulated animation time in seconds.
func (a *Animator) Time() float64 {
	return a.time
}

// Update advances all particles by dt seconds toward the given layout.
// dt is not clamped; a stall produces a large step, which only affects
// smoothness. The derived lerp factor is capped at 1 so a huge dt lands
// exactly on the target instead of overshooting past it.
func (a *Animator) Update(dt float64, layout LayoutID) {
	a.time += dt
	for _, p := range a.particles {
		a.step(p, dt, layout)
	}
}

func (a *Animator) step(p *Particle, dt float64, layout LayoutID) {
	h := p.Handle

	// Position: decaying-exponential approach to the layout target.
	k := dt * p.Category.approachSpeed(layout)
	if k > 1 {
		k = 1
	}
	h.Position = h.Position.Lerp(p.Targets[layout], k)

	// Rotation: unconditional per-frame drift, wrapped for hygiene.
	h.Rotation.X = wrapAngle(h.Rotation.X + p.RotVel.X)
	h.Rotation.Y = wrapAngle(h.Rotation.Y + p.RotVel.Y)
	h.Rotation.Z = wrapAngle(h.Rotation.Z + p.RotVel.Z)

	switch p.Category {
	case CategoryLight:
		blink := math.Sin(a.time*3+p.Phase)*0.5 + 0.5
		h.Emissive = 0.5 + blink*1.5
		h.Scale = p.BaseScale * (0.8 + blink*0.4)
	case CategoryStar:
		h.Scale = p.BaseScale * (1 + math.Sin(a.time*2)*0.2)
		h.Emissive = 1 + math.Sin(a.time*4)*0.5
		for i, halo := range p.halos {
			halo.Position = h.Position
			halo.Scale = h.Scale * haloScale[i]
			halo.Emissive = h.Emissive
		}
	case CategorySnow:
		h.Rotation.X = wrapAngle(h.Rotation.X + snowTwinkleX)
		h.Rotation.Z = wrapAngle(h.Rotation.Z + snowTwinkleZ)
	}
	// Leaf, ornament, trunk: position and rotation only.
}

// haloScale are the star halos' scale multipliers relative to the star.
var haloScale = [2]float64{2.2, 3.6}

// wrapAngle wraps a to (-pi, pi].
func wrapAngle(a float64) float64 {
	if a > -math.Pi && a <= math.Pi {
		return a
	}
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
