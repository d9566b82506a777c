package tinsel

// Particle is one animated instance in the scene. It owns its Billboard
// exclusively; no two particles share a handle. Targets, BaseScale, RotVel,
// Phase, Category, and BaseColor are fixed at creation; only the billboard's
// transform and material state change after that, and only the animator
// changes them.
type Particle struct {
	// Handle is the owned render handle.
	Handle *Billboard

	// Targets holds one position per layout, indexed by LayoutID. All are
	// finite and immutable after creation. Indexing by LayoutID keeps the
	// animator layout-count-agnostic: adding a layout only touches the
	// generator.
	Targets []Vec3

	// BaseScale is the scale captured at creation. All scale pulsing
	// multiplies against this baseline, never against the previous frame.
	BaseScale float64

	// BaseColor and BaseEmissive are the creation-time material reference
	// for effects that modulate color or intensity.
	BaseColor    Color
	BaseEmissive float64

	// RotVel is the fixed per-axis rotation increment applied every frame,
	// randomized once in a small symmetric range.
	RotVel Vec3

	// Phase desynchronizes periodic effects between particles.
	Phase float64

	// Category selects the animator's effect branch.
	Category Category

	// halos are the star's two nested translucent glow quads. Nil for every
	// other category. The animator repositions them to follow the star.
	halos []*Billboard
}

// newParticle creates a particle with its billboard, capturing the initial
// scale and material as the modulation baseline.
func newParticle(g *Group, cat Category, tree, scatter Vec3, scale float64, col Color) *Particle {
	h := g.New(tree, scale, col)
	return &Particle{
		Handle:       h,
		Targets:      []Vec3{tree, scatter},
		BaseScale:    scale,
		BaseColor:    col,
		BaseEmissive: h.Emissive,
		RotVel:       randomSpin(),
		Phase:        randomPhase(),
		Category:     cat,
	}
}

// Target returns the particle's target position for the given layout.
func (p *Particle) Target(layout LayoutID) Vec3 {
	return p.Targets[layout]
}
