package tinsel

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/ncruces/zenity"
	"github.com/tanema/gween/ease"
)

const (
	overlayFadeIn  = 0.35
	overlayFadeOut = 0.25
	photoMaxFrac   = 0.7 // photo fits within this fraction of the screen
	dimAlpha       = 0.65
)

// Overlay draws the title/hint text and the photo-reveal modal on top of the
// scene. Text renders through DebugPrint onto a cached image; the modal dims
// the scene and fades a centered photo in and out. The scene below knows
// nothing about it.
type Overlay struct {
	// Title and Hint are drawn at the top-left, above the scene.
	Title string
	Hint  string

	textImg   *ebiten.Image
	textDirty bool

	photoPath string
	photo     *ebiten.Image
	visible   bool
	alpha     float64
	fade      *floatTween
	disabled  bool // set after a failed photo load; reveal becomes a no-op
}

// NewOverlay creates an overlay. photoPath may be empty: the first reveal
// then opens a native file dialog to pick one.
func NewOverlay(title, hint, photoPath string) *Overlay {
	return &Overlay{
		Title:     title,
		Hint:      hint,
		photoPath: photoPath,
		textDirty: true,
	}
}

// Revealed reports whether the photo modal is currently shown (or fading in).
func (o *Overlay) Revealed() bool {
	return o.visible
}

// ToggleReveal shows or hides the photo modal. On first show, the photo is
// loaded, via a file dialog when no path was configured. Load failures log
// and disable the modal rather than interrupting the scene.
func (o *Overlay) ToggleReveal() {
	if o.disabled {
		return
	}
	if o.visible {
		o.visible = false
		o.fade = newFloatTween(o.alpha, 0, overlayFadeOut, ease.OutQuad)
		return
	}
	if o.photo == nil {
		if err := o.loadPhoto(); err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				fmt.Fprintf(os.Stderr, "[tinsel] photo reveal disabled: %v\n", err)
				o.disabled = true
			}
			return
		}
	}
	o.visible = true
	o.fade = newFloatTween(o.alpha, 1, overlayFadeIn, ease.OutQuad)
}

// loadPhoto resolves the photo path (asking via zenity when unset) and
// decodes it into an ebiten image.
func (o *Overlay) loadPhoto() error {
	path := o.photoPath
	if path == "" {
		chosen, err := zenity.SelectFile(
			zenity.Title("Choose a photo"),
			zenity.FileFilters{{
				Name:     "Images",
				Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
			}},
		)
		if err != nil {
			return err
		}
		path = chosen
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open photo: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode photo %s: %w", path, err)
	}
	o.photo = ebiten.NewImageFromImage(img)
	o.photoPath = path
	return nil
}

// update advances the modal fade by dt seconds.
func (o *Overlay) update(dt float64) {
	if o.fade != nil {
		o.alpha = o.fade.update(dt)
		if o.fade.done {
			o.fade = nil
		}
	}
}

// draw renders text and, when revealed, the dim layer and photo.
func (o *Overlay) draw(screen *ebiten.Image) {
	o.drawText(screen)
	if o.alpha <= 0 || o.photo == nil {
		return
	}

	bounds := screen.Bounds()
	sw := float64(bounds.Dx())
	sh := float64(bounds.Dy())

	// Dim the scene.
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(sw, sh)
	op.ColorScale.ScaleWithColor(Color{A: o.alpha * dimAlpha}.toRGBA())
	screen.DrawImage(ensureWhitePixel(), &op)

	// Center the photo, scaled to fit.
	pb := o.photo.Bounds()
	pw := float64(pb.Dx())
	ph := float64(pb.Dy())
	fit := min(sw*photoMaxFrac/pw, sh*photoMaxFrac/ph)

	op.GeoM.Reset()
	op.GeoM.Scale(fit, fit)
	op.GeoM.Translate((sw-pw*fit)/2, (sh-ph*fit)/2)
	op.ColorScale.Reset()
	a := float32(o.alpha)
	op.ColorScale.Scale(a, a, a, a)
	screen.DrawImage(o.photo, &op)
}

// drawText lazily renders Title and Hint to a small cached image, the same
// approach the FPS widget uses.
func (o *Overlay) drawText(screen *ebiten.Image) {
	if o.Title == "" && o.Hint == "" {
		return
	}
	if o.textImg == nil {
		o.textImg = ebiten.NewImage(320, 40)
		o.textDirty = true
	}
	if o.textDirty {
		o.textImg.Clear()
		ebitenutil.DebugPrint(o.textImg, o.Title+"\n"+o.Hint)
		o.textDirty = false
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(12, 10)
	screen.DrawImage(o.textImg, &op)
}

// SetText replaces the title and hint lines.
func (o *Overlay) SetText(title, hint string) {
	o.Title = title
	o.Hint = hint
	o.textDirty = true
}
