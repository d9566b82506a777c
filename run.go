package tinsel

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and the standard UI wiring created by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the initial window size in pixels.
	// Defaults: 1280x720.
	Width, Height int
	// OverlayTitle and OverlayHint are the lines drawn over the scene.
	OverlayTitle string
	OverlayHint  string
	// PhotoPath is the image shown by the reveal gesture. Empty means a
	// file dialog opens on first reveal.
	PhotoPath string
	// Mute disables the toggle chime.
	Mute bool
	// ShowFPS draws the FPS widget.
	ShowFPS bool
}

// game is the ebiten.Game gluing the scene to the input and overlay layers:
// taps toggle the layout, double-tap or long-press toggles the photo reveal,
// dragging orbits the camera. The scene itself stays input-agnostic.
type game struct {
	scene    *TreeScene
	overlay  *Overlay
	gestures *gestureDetector
	chime    *Chime
	fps      *fpsWidget
	showFPS  bool
	w, h     int
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	ev := g.gestures.update(dt)
	switch {
	case ev.DoubleTap || ev.LongPress:
		g.overlay.ToggleReveal()
	case ev.Tap:
		g.scene.ToggleLayout()
		g.chime.Play(g.scene.Layout() == LayoutTree)
	case ev.Dragging:
		g.scene.Camera().Drag(ev.DragDX, ev.DragDY)
	}

	g.scene.Step(dt)
	g.overlay.update(dt)
	if g.showFPS {
		g.fps.update(dt, len(g.scene.Particles()))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	g.overlay.draw(screen)
	if g.showFPS {
		g.fps.draw(screen)
	}
}

// Layout implements the ebiten resize contract: the scene renders at the
// full window resolution.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window, wires the standard input and overlay layers around the
// scene, and blocks until the window closes. The scene's render handles are
// released before returning. Rendering-context failures from ebiten surface
// here as the fatal initialization error.
func Run(scene *TreeScene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	var chime *Chime
	if !cfg.Mute {
		chime = NewChime()
	}

	g := &game{
		scene:    scene,
		overlay:  NewOverlay(cfg.OverlayTitle, cfg.OverlayHint, cfg.PhotoPath),
		gestures: newGestureDetector(),
		chime:    chime,
		fps:      &fpsWidget{},
		showFPS:  cfg.ShowFPS,
	}

	err := ebiten.RunGame(g)
	scene.Dispose()
	return err
}
