package tinsel

// billboardIDCounter is a plain counter; no atomic, tinsel is single-threaded.
var billboardIDCounter uint32

func nextBillboardID() uint32 {
	billboardIDCounter++
	return billboardIDCounter
}

// Billboard is the render handle for one particle: an independently
// positionable camera-facing quad. A single flat struct is used for every
// category to avoid interface dispatch on the hot path. Billboards hold no
// GPU resources themselves; the renderer maps them to draw calls each frame,
// so they can be created and mutated headlessly (tests run without a window).
type Billboard struct {
	ID uint32

	// Transform, mutated by the animator every frame.
	Position Vec3
	Rotation Vec3 // per-axis angles in radians, wrapped to (-pi, pi]
	Scale    float64

	// Color is the base tint; Emissive multiplies it at submission time.
	Color    Color
	Emissive float64

	// Additive selects lighter blending (lights, star, snow, halos).
	Additive bool

	// Twinkle makes brightness follow the rotation axes (snow glint).
	Twinkle bool

	Visible  bool
	disposed bool
}

// IsDisposed reports whether the billboard has been released by its group.
func (b *Billboard) IsDisposed() bool {
	return b.disposed
}

// Group is the container for grouped billboard instances. It owns every
// billboard it creates; Dispose releases them in bulk at scene teardown.
type Group struct {
	billboards []*Billboard
}

// NewGroup creates an empty billboard container.
func NewGroup() *Group {
	return &Group{}
}

// New creates a billboard owned by this group.
func (g *Group) New(pos Vec3, scale float64, col Color) *Billboard {
	b := &Billboard{
		ID:       nextBillboardID(),
		Position: pos,
		Scale:    scale,
		Color:    col,
		Emissive: 1.0,
		Visible:  true,
	}
	g.billboards = append(g.billboards, b)
	return b
}

// Billboards returns the group's billboard list. The returned slice MUST NOT
// be mutated; the renderer iterates it every frame.
func (g *Group) Billboards() []*Billboard {
	return g.billboards
}

// Len returns the number of owned billboards.
func (g *Group) Len() int {
	return len(g.billboards)
}

// Dispose releases every owned billboard and empties the group. Safe to call
// more than once.
func (g *Group) Dispose() {
	for _, b := range g.billboards {
		b.disposed = true
		b.Visible = false
	}
	g.billboards = g.billboards[:0]
}
