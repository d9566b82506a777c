// Package tinsel renders an interactive, particle-based Christmas tree for
// [Ebitengine]: several thousand billboard instances that morph between an
// assembled tree shape and a dispersed cloud, with string-light blinking, a
// pulsing star topper, drifting snow, and a photo-reveal overlay.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window, wires
// tap/double-tap/long-press input, and drives the frame loop for you:
//
//	scene, err := tinsel.NewTreeScene(tinsel.TreeConfig{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	tinsel.Run(scene, tinsel.RunConfig{
//		Title: "Tree", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [TreeScene.Update] and [TreeScene.Draw] directly; toggle the active layout
// from your own input handling with [TreeScene.SetLayout] or
// [TreeScene.ToggleLayout].
//
// # Model
//
// [NewTreeScene] runs the layout generator once: every instance gets a
// [Category] (leaf, ornament, light, star, snow, trunk), one target position
// per [LayoutID], and an owned [Billboard] render handle. Each frame the
// animator moves every billboard toward the active layout's target with a
// decaying-exponential approach and applies the category's effect branch.
//
// Tinsel is single-threaded by design: all scene methods must be called from
// the goroutine running the ebiten game loop.
//
// [Ebitengine]: https://ebitengine.org
package tinsel
