package tinsel

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawItem is a single projected billboard ready for submission.
type drawItem struct {
	x, y     float64
	depth    float64
	size     float64 // on-screen half size in pixels
	rotation float64
	r, g, b  float32
	alpha    float32
	additive bool
	soft     bool // soft disc texture instead of the hard quad
}

// renderer projects billboards, sorts them back to front, and submits one
// DrawImage per item. Buffers persist across frames so steady-state drawing
// allocates nothing; textures are created lazily on the first Draw because
// ebiten images need the game loop running.
type renderer struct {
	items   []drawItem
	sortBuf []drawItem

	quad *ebiten.Image // hard-edged square for leaf/ornament/trunk
	disc *ebiten.Image // radial-falloff disc for light/star/snow/halos
}

const texSize = 32

// ensureTextures builds the two procedural billboard textures.
func (r *renderer) ensureTextures() {
	if r.quad != nil {
		return
	}
	r.quad = ebiten.NewImage(texSize, texSize)
	r.quad.Fill(color.White)

	r.disc = ebiten.NewImage(texSize, texSize)
	half := float64(texSize) / 2
	for py := 0; py < texSize; py++ {
		for px := 0; px < texSize; px++ {
			dx := (float64(px) + 0.5 - half) / half
			dy := (float64(py) + 0.5 - half) / half
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= 1 {
				continue
			}
			// Quadratic falloff reads as a soft glow under additive blend.
			a := (1 - d) * (1 - d)
			v := uint8(a * 255)
			r.disc.Set(px, py, color.RGBA{v, v, v, v})
		}
	}
}

// draw projects and submits every visible billboard in the group.
func (r *renderer) draw(screen *ebiten.Image, g *Group, cam *OrbitCamera) {
	r.ensureTextures()

	bounds := screen.Bounds()
	halfW := float64(bounds.Dx()) / 2
	halfH := float64(bounds.Dy()) / 2

	r.items = r.items[:0]
	for _, b := range g.Billboards() {
		if !b.Visible {
			continue
		}
		x, y, depth, pscale, ok := cam.project(b.Position, halfW, halfH)
		if !ok {
			continue
		}
		size := b.Scale * pscale
		if size < 0.3 {
			continue
		}
		em := b.Emissive
		alpha := b.Color.A
		if b.Twinkle {
			// Glint as the twinkle axes sweep through alignment.
			alpha *= 0.75 + 0.25*math.Cos(b.Rotation.X)*math.Cos(b.Rotation.Z)
		}
		r.items = append(r.items, drawItem{
			x:        x,
			y:        y,
			depth:    depth,
			size:     size,
			rotation: b.Rotation.Z,
			r:        float32(b.Color.R * em),
			g:        float32(b.Color.G * em),
			b:        float32(b.Color.B * em),
			alpha:    float32(alpha),
			additive: b.Additive,
			soft:     b.Additive,
		})
	}

	r.sortByDepth()
	r.submit(screen)
}

// itemLessOrEqual orders items far-to-near so nearer billboards composite on
// top. <= keeps the sort stable for equal depths.
func itemLessOrEqual(a, b drawItem) bool {
	return a.depth >= b.depth
}

// sortByDepth is a bottom-up merge sort over r.items using r.sortBuf as
// scratch. Zero allocations once the buffer reaches its high-water mark.
func (r *renderer) sortByDepth() {
	n := len(r.items)
	if n <= 1 {
		return
	}
	if cap(r.sortBuf) < n {
		r.sortBuf = make([]drawItem, n)
	}
	r.sortBuf = r.sortBuf[:n]

	a := r.items
	b := r.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			mergeItems(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(r.items, r.sortBuf)
	}
}

// mergeItems merges sorted runs [lo, mid) and [mid, hi) from src into dst.
func mergeItems(src, dst []drawItem, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if itemLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}

// submit draws the sorted items. Color scale is premultiplied by alpha, as
// ebiten's ColorScale expects.
func (r *renderer) submit(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range r.items {
		it := &r.items[i]

		img := r.quad
		if it.soft {
			img = r.disc
		}

		s := it.size * 2 / texSize
		op.GeoM.Reset()
		op.GeoM.Translate(-texSize/2, -texSize/2)
		if it.rotation != 0 && !it.soft {
			op.GeoM.Rotate(it.rotation)
		}
		op.GeoM.Scale(s, s)
		op.GeoM.Translate(it.x, it.y)

		op.ColorScale.Reset()
		op.ColorScale.Scale(it.r*it.alpha, it.g*it.alpha, it.b*it.alpha, it.alpha)

		if it.additive {
			op.Blend = ebiten.BlendLighter
		} else {
			op.Blend = ebiten.BlendSourceOver
		}
		screen.DrawImage(img, &op)
	}
}
