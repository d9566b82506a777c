package tinsel

import (
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * 255),
		G: uint8(c.G * 255),
		B: uint8(c.B * 255),
		A: uint8(c.A * 255),
	}
}

// Vec3 is a 3D vector used for positions, targets, and rotation angles
// throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec3) Dist(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Lerp returns the linear interpolation from v toward o by factor t.
// Callers clamp t; Lerp itself does not.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// WhitePixel is a 1x1 white image used for solid color fills (overlay dim
// layer, debug rectangles). Created lazily because ebiten images cannot be
// allocated before the game loop in some environments.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// Range is a general-purpose min/max range used by the layout generator.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// Category is the fixed tag determining a particle's visual role and which
// effect branch the animator applies. The set is closed and exhaustive.
type Category uint8

const (
	CategoryLeaf     Category = iota // foliage instances forming the cone body
	CategoryOrnament                 // baubles near the cone surface
	CategoryLight                    // string lights along the spiral
	CategoryStar                     // the single tree topper
	CategorySnow                     // ambient snowfall volume
	CategoryTrunk                    // short cylinder at the base
)

// String returns the category name for logs and test failures.
func (c Category) String() string {
	switch c {
	case CategoryLeaf:
		return "leaf"
	case CategoryOrnament:
		return "ornament"
	case CategoryLight:
		return "light"
	case CategoryStar:
		return "star"
	case CategorySnow:
		return "snow"
	case CategoryTrunk:
		return "trunk"
	default:
		return "unknown"
	}
}

// LayoutID names a set of per-particle target positions. Every particle
// carries one target per layout; the active layout is a single scene-wide
// slot written by the input layer and read by the animator.
type LayoutID uint8

const (
	// LayoutTree is the assembled "tree" shape.
	LayoutTree LayoutID = iota
	// LayoutScatter is the dispersed cloud, spherically distributed
	// around the origin.
	LayoutScatter

	layoutCount = 2
)

// approachSpeed returns the exponential-approach rate (per second) a
// particle of this category uses toward the active layout's target.
// Dispersal uses one slower rate for every category.
func (c Category) approachSpeed(layout LayoutID) float64 {
	if layout == LayoutScatter {
		return 1.5
	}
	switch c {
	case CategoryOrnament:
		return 1.8
	case CategoryLeaf:
		return 2.2
	default:
		return 2.0
	}
}
