package tinsel

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// TreeScene owns the particle collection, the camera, and the active layout
// slot. The layout slot is the only shared state: written by the input/UI
// layer (SetLayout/ToggleLayout), read by the animator each frame. That
// single-writer/single-reader arrangement is race-free only because ebiten
// runs Update and Draw on one goroutine. Do not call scene methods from
// other goroutines.
type TreeScene struct {
	cfg       TreeConfig
	group     *Group
	particles []*Particle
	animator  *Animator
	camera    *OrbitCamera
	renderer  renderer

	layout   LayoutID
	disposed bool
}

// NewTreeScene runs the layout generator once and returns a scene ready to
// drive. Creation is headless: no window or GPU resources are touched until
// the first Draw, so construction cannot fail for rendering reasons; those
// surface from Run. The error return guards config validation only.
func NewTreeScene(cfg TreeConfig) (*TreeScene, error) {
	cfg.applyDefaults()
	if cfg.Height <= 0 || cfg.BaseRadius <= 0 {
		return nil, fmt.Errorf("tinsel: non-positive tree dimensions (height %v, base radius %v)", cfg.Height, cfg.BaseRadius)
	}

	group := NewGroup()
	particles := buildTree(group, cfg)
	return &TreeScene{
		cfg:       cfg,
		group:     group,
		particles: particles,
		animator:  newAnimator(particles),
		camera:    newOrbitCamera(),
	}, nil
}

// Config returns the effective configuration after defaults.
func (s *TreeScene) Config() TreeConfig {
	return s.cfg
}

// Particles returns the live particle list. The returned slice MUST NOT be
// mutated.
func (s *TreeScene) Particles() []*Particle {
	return s.particles
}

// Group returns the billboard container.
func (s *TreeScene) Group() *Group {
	return s.group
}

// Camera returns the scene's orbit camera for external control.
func (s *TreeScene) Camera() *OrbitCamera {
	return s.camera
}

// Layout returns the active layout.
func (s *TreeScene) Layout() LayoutID {
	return s.layout
}

// SetLayout sets the active layout. Takes effect on the next Update; the
// scene never toggles on its own.
func (s *TreeScene) SetLayout(l LayoutID) {
	s.layout = l
}

// ToggleLayout flips between the tree and scatter layouts.
func (s *TreeScene) ToggleLayout() {
	if s.layout == LayoutTree {
		s.layout = LayoutScatter
	} else {
		s.layout = LayoutTree
	}
}

// Update advances the scene by one tick. Implements the ebiten.Game Update
// contract when driven directly; Run calls it for you.
func (s *TreeScene) Update() error {
	s.Step(1.0 / float64(ebiten.TPS()))
	return nil
}

// Step advances the scene by an explicit dt in seconds. Split from Update so
// tests can drive deterministic frames without ebiten.
func (s *TreeScene) Step(dt float64) {
	if s.disposed {
		return
	}
	s.camera.update(dt)
	s.animator.Update(dt, s.layout)
}

// Draw renders all billboards to screen.
func (s *TreeScene) Draw(screen *ebiten.Image) {
	if s.disposed {
		return
	}
	s.renderer.draw(screen, s.group, s.camera)
}

// Dispose releases every owned render handle in bulk. The scene is inert
// afterwards; Update and Draw become no-ops. Safe to call more than once.
func (s *TreeScene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.group.Dispose()
	s.particles = nil
}

// IsDisposed reports whether Dispose has run.
func (s *TreeScene) IsDisposed() bool {
	return s.disposed
}
