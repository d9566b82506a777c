package tinsel

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsWidget displays the current FPS and particle count in a corner.
// The readout refreshes every ~0.5 seconds onto a small cached image.
type fpsWidget struct {
	img        *ebiten.Image
	sinceDraw  float64
	population int
}

func (w *fpsWidget) update(dt float64, population int) {
	w.sinceDraw += dt
	w.population = population
}

func (w *fpsWidget) draw(screen *ebiten.Image) {
	if w.img == nil {
		// 120x32 is enough for "FPS: 60.0" plus the count line.
		w.img = ebiten.NewImage(120, 32)
		w.sinceDraw = 1
	}
	if w.sinceDraw >= 0.5 {
		w.sinceDraw = 0
		w.img.Clear()
		w.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nN: %d", ebiten.ActualFPS(), w.population))
	}
	var op ebiten.DrawImageOptions
	sw := screen.Bounds().Dx()
	op.GeoM.Translate(float64(sw-128), 8)
	screen.DrawImage(w.img, &op)
}
