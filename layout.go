package tinsel

import (
	"math"
	"math/rand/v2"
)

// TreeConfig controls instance counts and the shape constants of the
// assembled layout. The zero value is usable; unset fields get defaults.
// Non-positive counts yield zero instances of that category; the generator
// never fails.
type TreeConfig struct {
	// TrunkCount is the number of trunk instances.
	TrunkCount int
	// FoliageCount is the number of leaf instances (the bulk of the tree).
	FoliageCount int
	// OrnamentCount is the number of ornament draws. Draws landing in the
	// top 2% of the cone are skipped, so the realized count is slightly
	// lower and probabilistic.
	OrnamentCount int
	// LightCount is the number of string-light bulbs along the spiral.
	LightCount int
	// SnowCount is the number of snowfall instances.
	SnowCount int

	// Height is the cone height from base ring to apex.
	Height float64
	// BaseRadius is the cone radius at the base.
	BaseRadius float64
	// TrunkHeight is the height of the trunk band below the cone.
	TrunkHeight float64
	// TrunkRadius caps the trunk cylinder radius.
	TrunkRadius float64
	// VerticalOffset shifts the whole tree so it centers vertically
	// around the origin. The cone base sits at this Y.
	VerticalOffset float64

	// ScatterRadius is the spherical shell radius range for dispersed
	// targets of trunk, foliage, ornament, light, and star instances.
	ScatterRadius Range
	// SnowScatterRadius is the farther shell used by snow.
	SnowScatterRadius Range
}

const (
	spiralTurns       = 9    // full turns of the light string
	spiralJitter      = 0.25 // radial jitter of bulbs around the spiral
	ornamentTopSkip   = 0.98 // draws above this normalized height are skipped
	ornamentLargeOdds = 0.3  // fraction of ornaments that are "large"
	undulationWaves   = 7    // branch undulation periods along the cone
	undulationAmp     = 0.18 // outward radius gain at undulation peaks
	starRise          = 0.6  // star's lift above the apex
)

func (c *TreeConfig) applyDefaults() {
	if c.TrunkCount == 0 {
		c.TrunkCount = 250
	}
	if c.FoliageCount == 0 {
		c.FoliageCount = 8000
	}
	if c.OrnamentCount == 0 {
		c.OrnamentCount = 350
	}
	if c.LightCount == 0 {
		c.LightCount = 400
	}
	if c.SnowCount == 0 {
		c.SnowCount = 700
	}
	if c.Height == 0 {
		c.Height = 12
	}
	if c.BaseRadius == 0 {
		c.BaseRadius = 4.4
	}
	if c.TrunkHeight == 0 {
		c.TrunkHeight = 1.6
	}
	if c.TrunkRadius == 0 {
		c.TrunkRadius = 0.5
	}
	if c.VerticalOffset == 0 {
		c.VerticalOffset = -5
	}
	if c.ScatterRadius == (Range{}) {
		c.ScatterRadius = Range{35, 50}
	}
	if c.SnowScatterRadius == (Range{}) {
		c.SnowScatterRadius = Range{80, 100}
	}
}

// coneRadius returns the cone radius at normalized height t in [0, 1].
// Shrinks linearly from BaseRadius at the base to zero at the apex.
func (c *TreeConfig) coneRadius(t float64) float64 {
	return c.BaseRadius * (1 - t)
}

// apex returns the assembled position of the cone tip.
func (c *TreeConfig) apex() Vec3 {
	return Vec3{Y: c.VerticalOffset + c.Height}
}

// scatterPoint samples a point uniformly on a spherical shell whose radius
// is drawn from r. Polar angle via inverse-CDF (cos theta uniform in [-1, 1])
// so the shell is area-uniform, not pole-heavy.
func scatterPoint(r Range) Vec3 {
	radius := r.Random()
	cosTheta := 1 - 2*rand.Float64()
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	phi := rand.Float64() * 2 * math.Pi
	return Vec3{
		X: radius * sinTheta * math.Cos(phi),
		Y: radius * cosTheta,
		Z: radius * sinTheta * math.Sin(phi),
	}
}

// randomSpin draws per-axis rotation increments in a small symmetric range.
var spinRange = Range{-0.02, 0.02}

func randomSpin() Vec3 {
	return Vec3{spinRange.Random(), spinRange.Random(), spinRange.Random()}
}

func randomPhase() float64 {
	return rand.Float64() * 2 * math.Pi
}

// buildTree runs the layout generator once: it populates the group with one
// billboard per instance and returns the particle list, each carrying an
// assembled and a dispersed target. Pure placement: no ebiten resources are
// touched, so scenes can be built headlessly.
func buildTree(g *Group, cfg TreeConfig) []*Particle {
	total := cfg.TrunkCount + cfg.FoliageCount + cfg.OrnamentCount +
		cfg.LightCount + cfg.SnowCount + 1
	if total < 1 {
		total = 1
	}
	particles := make([]*Particle, 0, total)

	particles = placeTrunk(g, cfg, particles)
	particles = placeFoliage(g, cfg, particles)
	particles = placeOrnaments(g, cfg, particles)
	particles = placeLights(g, cfg, particles)
	particles = placeStar(g, cfg, particles)
	particles = placeSnow(g, cfg, particles)
	return particles
}

// placeTrunk samples positions inside a short cylinder under the cone:
// uniform angle, radius capped at TrunkRadius (sqrt for area uniformity),
// height within the trunk band.
func placeTrunk(g *Group, cfg TreeConfig, out []*Particle) []*Particle {
	base := cfg.VerticalOffset - cfg.TrunkHeight
	for i := 0; i < cfg.TrunkCount; i++ {
		angle := rand.Float64() * 2 * math.Pi
		radius := cfg.TrunkRadius * math.Sqrt(rand.Float64())
		pos := Vec3{
			X: radius * math.Cos(angle),
			Y: base + rand.Float64()*cfg.TrunkHeight,
			Z: radius * math.Sin(angle),
		}
		scale := Range{0.10, 0.16}.Random()
		out = append(out, newParticle(g, CategoryTrunk, pos, scatterPoint(cfg.ScatterRadius), scale, trunkColor))
	}
	return out
}

// placeFoliage fills the cone body. The radial fraction uses pow(u, 0.8) to
// concentrate mass toward the core while still reaching the cone boundary;
// outer instances (fraction > 0.6) get a sinusoidal outward push along the
// height axis to break the cone silhouette into branch undulations.
func placeFoliage(g *Group, cfg TreeConfig, out []*Particle) []*Particle {
	for i := 0; i < cfg.FoliageCount; i++ {
		t := rand.Float64()
		frac := math.Pow(rand.Float64(), 0.8)
		radius := cfg.coneRadius(t) * frac
		if frac > 0.6 {
			wave := 0.5 + 0.5*math.Sin(t*undulationWaves*2*math.Pi)
			radius *= 1 + undulationAmp*wave
		}
		angle := rand.Float64() * 2 * math.Pi
		pos := Vec3{
			X: radius * math.Cos(angle),
			Y: cfg.VerticalOffset + t*cfg.Height,
			Z: radius * math.Sin(angle),
		}
		scale := Range{0.11, 0.16}.Random() - t*0.04
		out = append(out, newParticle(g, CategoryLeaf, pos, scatterPoint(cfg.ScatterRadius), scale, foliageColor()))
	}
	return out
}

// placeOrnaments hangs baubles near the cone surface (80-110% of the local
// radius). Draws in the top 2% of the cone are skipped outright, so the
// realized count is probabilistic. About 30% of ornaments are large.
func placeOrnaments(g *Group, cfg TreeConfig, out []*Particle) []*Particle {
	for i := 0; i < cfg.OrnamentCount; i++ {
		t := rand.Float64()
		if t > ornamentTopSkip {
			continue
		}
		radius := cfg.coneRadius(t) * Range{0.8, 1.1}.Random()
		angle := rand.Float64() * 2 * math.Pi
		pos := Vec3{
			X: radius * math.Cos(angle),
			Y: cfg.VerticalOffset + t*cfg.Height,
			Z: radius * math.Sin(angle),
		}
		scale := Range{0.16, 0.20}.Random()
		if rand.Float64() < ornamentLargeOdds {
			scale *= 1.8
		}
		out = append(out, newParticle(g, CategoryOrnament, pos, scatterPoint(cfg.ScatterRadius), scale, ornamentColor()))
	}
	return out
}

// placeLights drapes a multi-turn spiral string from base to apex. Bulbs are
// evenly spaced along the string with small radial jitter; color alternates
// two variants by weighted random choice.
func placeLights(g *Group, cfg TreeConfig, out []*Particle) []*Particle {
	n := cfg.LightCount
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		angle := t * 2 * math.Pi * spiralTurns
		radius := cfg.coneRadius(t) + Range{-spiralJitter, spiralJitter}.Random()
		if radius < 0 {
			radius = 0
		}
		pos := Vec3{
			X: radius * math.Cos(angle),
			Y: cfg.VerticalOffset + t*cfg.Height,
			Z: radius * math.Sin(angle),
		}
		p := newParticle(g, CategoryLight, pos, scatterPoint(cfg.ScatterRadius), 0.14, lightColor())
		p.Handle.Additive = true
		out = append(out, p)
	}
	return out
}

// placeStar puts the single topper at the apex plus a small rise, with two
// nested translucent halo quads for glow. The star participates in the
// scatter cycle like every other particle (the animator treats the list
// uniformly), so it gets a shell target from the same rule.
func placeStar(g *Group, cfg TreeConfig, out []*Particle) []*Particle {
	pos := cfg.apex().Add(Vec3{Y: starRise})
	p := newParticle(g, CategoryStar, pos, scatterPoint(cfg.ScatterRadius), 0.55, starColor)
	p.Handle.Additive = true

	inner := g.New(pos, p.BaseScale*haloScale[0], starColor)
	inner.Color.A = 0.45
	inner.Additive = true
	outer := g.New(pos, p.BaseScale*haloScale[1], starColor)
	outer.Color.A = 0.2
	outer.Additive = true
	p.halos = []*Billboard{inner, outer}

	return append(out, p)
}

// Snow volume: a wide cube-ish region shifted upward relative to the tree.
const (
	snowSpread = 18 // half-extent on X and Z
	snowFloor  = -7
	snowCeil   = 15
)

// placeSnow fills the broad volume around the tree. Snow disperses to a
// farther shell than the other categories.
func placeSnow(g *Group, cfg TreeConfig, out []*Particle) []*Particle {
	for i := 0; i < cfg.SnowCount; i++ {
		pos := Vec3{
			X: Range{-snowSpread, snowSpread}.Random(),
			Y: Range{snowFloor, snowCeil}.Random(),
			Z: Range{-snowSpread, snowSpread}.Random(),
		}
		scale := Range{0.05, 0.09}.Random()
		p := newParticle(g, CategorySnow, pos, scatterPoint(cfg.SnowScatterRadius), scale, snowColor)
		p.Handle.Additive = true
		p.Handle.Twinkle = true
		out = append(out, p)
	}
	return out
}
