package tinsel

import (
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Material palettes. Foliage and ornaments draw a random variant per
// instance; lights alternate two variants by weighted choice. Colors are
// generated in HSV so variants stay in the same perceptual family.

func fromColorful(c colorful.Color, a float64) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: a}
}

// foliagePalette is the small fixed set of green variants.
var foliagePalette = []Color{
	fromColorful(colorful.Hsv(130, 0.85, 0.38), 1),
	fromColorful(colorful.Hsv(135, 0.80, 0.48), 1),
	fromColorful(colorful.Hsv(142, 0.75, 0.32), 1),
	fromColorful(colorful.Hsv(120, 0.70, 0.55), 1),
}

// ornamentPalette holds saturated bauble colors.
var ornamentPalette = []Color{
	fromColorful(colorful.Hsv(0, 0.90, 0.85), 1),   // red
	fromColorful(colorful.Hsv(45, 0.85, 0.95), 1),  // gold
	fromColorful(colorful.Hsv(210, 0.75, 0.90), 1), // blue
	fromColorful(colorful.Hsv(315, 0.70, 0.85), 1), // magenta
	fromColorful(colorful.Hsv(170, 0.65, 0.80), 1), // teal
}

// Light string variants: warm white dominates, with a cooler accent.
var (
	lightWarm = fromColorful(colorful.Hsv(42, 0.55, 1.0), 1)
	lightCool = fromColorful(colorful.Hsv(200, 0.35, 1.0), 1)
)

// lightWarmWeight is the probability of the warm variant per bulb.
const lightWarmWeight = 0.7

var (
	trunkColor = fromColorful(colorful.Hsv(28, 0.65, 0.35), 1)
	snowColor  = Color{R: 0.95, G: 0.97, B: 1.0, A: 1}
	starColor  = fromColorful(colorful.Hsv(48, 0.50, 1.0), 1)
)

func foliageColor() Color {
	return foliagePalette[rand.IntN(len(foliagePalette))]
}

func ornamentColor() Color {
	return ornamentPalette[rand.IntN(len(ornamentPalette))]
}

func lightColor() Color {
	if rand.Float64() < lightWarmWeight {
		return lightWarm
	}
	return lightCool
}
