package tinsel

import (
	"math"
	"testing"
)

const frameDT = 1.0 / 60.0

// smallScene builds a scene small enough to step thousands of frames fast.
func smallScene(t *testing.T) *TreeScene {
	t.Helper()
	return buildTestScene(t, TreeConfig{
		TrunkCount:    20,
		FoliageCount:  60,
		OrnamentCount: 20,
		LightCount:    20,
		SnowCount:     20,
	})
}

func TestPositionsConvergeMonotonically(t *testing.T) {
	s := smallScene(t)
	s.SetLayout(LayoutScatter)

	prev := make([]float64, len(s.Particles()))
	for i, p := range s.Particles() {
		prev[i] = p.Handle.Position.Dist(p.Target(LayoutScatter))
	}

	for frame := 0; frame < 120; frame++ {
		s.Step(frameDT)
		for i, p := range s.Particles() {
			d := p.Handle.Position.Dist(p.Target(LayoutScatter))
			if d >= prev[i] && prev[i] > 1e-9 {
				t.Fatalf("frame %d: %s distance %f did not shrink from %f", frame, p.Category, d, prev[i])
			}
			prev[i] = d
		}
	}
}

func TestDispersalConvergesWithinFiveSeconds(t *testing.T) {
	s := smallScene(t)
	s.SetLayout(LayoutScatter)

	// 5 seconds at 60 steps/sec with the dispersed speed factor closes
	// >99.9% of the initial gap.
	for frame := 0; frame < 5*60; frame++ {
		s.Step(frameDT)
	}
	for _, p := range s.Particles() {
		d := p.Handle.Position.Dist(p.Target(LayoutScatter))
		if d >= 0.5 {
			t.Errorf("%s still %f from scatter target after 5s", p.Category, d)
		}
	}
}

func TestBaseScaleNeverMutates(t *testing.T) {
	s := smallScene(t)

	base := make(map[*Particle]float64, len(s.Particles()))
	for _, p := range s.Particles() {
		base[p] = p.BaseScale
	}

	// Toggle with settling time in between; pulsing must stay anchored to
	// the creation-time baseline, not compound across frames or toggles.
	for cycle := 0; cycle < 3; cycle++ {
		s.ToggleLayout()
		for frame := 0; frame < 4*60; frame++ {
			s.Step(frameDT)
		}
	}

	for _, p := range s.Particles() {
		if p.BaseScale != base[p] {
			t.Fatalf("%s BaseScale drifted: %f -> %f", p.Category, base[p], p.BaseScale)
		}
		switch p.Category {
		case CategoryLight:
			lo, hi := p.BaseScale*0.8, p.BaseScale*1.2
			if p.Handle.Scale < lo-1e-9 || p.Handle.Scale > hi+1e-9 {
				t.Fatalf("light scale %f outside pulse band [%f, %f]", p.Handle.Scale, lo, hi)
			}
		case CategoryStar:
			lo, hi := p.BaseScale*0.8, p.BaseScale*1.2
			if p.Handle.Scale < lo-1e-9 || p.Handle.Scale > hi+1e-9 {
				t.Fatalf("star scale %f outside pulse band", p.Handle.Scale)
			}
		default:
			if p.Handle.Scale != p.BaseScale {
				t.Fatalf("%s scale %f changed from baseline %f", p.Category, p.Handle.Scale, p.BaseScale)
			}
		}
	}
}

func TestEmissiveBounds(t *testing.T) {
	s := smallScene(t)

	// Step through several full periods of the driving sines.
	for frame := 0; frame < 10*60; frame++ {
		s.Step(frameDT)
		for _, p := range s.Particles() {
			em := p.Handle.Emissive
			switch p.Category {
			case CategoryLight:
				if em < 0.5-1e-9 || em > 2.0+1e-9 {
					t.Fatalf("light emissive %f outside [0.5, 2.0]", em)
				}
			case CategoryStar:
				if em < 0.5-1e-9 || em > 1.5+1e-9 {
					t.Fatalf("star emissive %f outside [0.5, 1.5]", em)
				}
			}
		}
	}
}

func TestRotationDriftsAndWraps(t *testing.T) {
	s := smallScene(t)

	for frame := 0; frame < 2000; frame++ {
		s.Step(frameDT)
	}
	var moved bool
	for _, p := range s.Particles() {
		r := p.Handle.Rotation
		for _, a := range [3]float64{r.X, r.Y, r.Z} {
			if a <= -math.Pi || a > math.Pi {
				t.Fatalf("%s rotation %f outside (-pi, pi]", p.Category, a)
			}
			if a != 0 {
				moved = true
			}
		}
	}
	if !moved {
		t.Error("no rotation accumulated after 2000 frames")
	}
}

func TestSnowTwinkleOutpacesGenericDrift(t *testing.T) {
	// Snow's fixed-rate twinkle adds to the per-particle drift on X and Z:
	// after one frame, each snow rotation axis moves by rotVel + twinkle.
	s := buildTestScene(t, TreeConfig{
		SnowCount: 50, TrunkCount: -1, FoliageCount: -1, OrnamentCount: -1, LightCount: -1,
	})
	s.Step(frameDT)
	for _, p := range s.Particles() {
		if p.Category != CategorySnow {
			continue
		}
		wantX := wrapAngle(p.RotVel.X + snowTwinkleX)
		wantZ := wrapAngle(p.RotVel.Z + snowTwinkleZ)
		assertNear(t, "snow X twinkle", p.Handle.Rotation.X, wantX)
		assertNear(t, "snow Z twinkle", p.Handle.Rotation.Z, wantZ)
		assertNear(t, "snow Y drift only", p.Handle.Rotation.Y, wrapAngle(p.RotVel.Y))
	}
}

func TestStarHalosFollow(t *testing.T) {
	s := smallScene(t)
	s.SetLayout(LayoutScatter)

	for frame := 0; frame < 60; frame++ {
		s.Step(frameDT)
	}

	var star *Particle
	for _, p := range s.Particles() {
		if p.Category == CategoryStar {
			star = p
		}
	}
	for i, halo := range star.halos {
		if halo.Position != star.Handle.Position {
			t.Errorf("halo %d at %+v, star at %+v", i, halo.Position, star.Handle.Position)
		}
		assertNear(t, "halo scale tracks star", halo.Scale, star.Handle.Scale*haloScale[i])
	}
}

func TestHugeDeltaLandsOnTarget(t *testing.T) {
	// The lerp factor caps at 1: a multi-second stall lands exactly on the
	// target instead of overshooting past it.
	s := smallScene(t)
	s.SetLayout(LayoutScatter)
	s.Step(10.0)

	for _, p := range s.Particles() {
		if d := p.Handle.Position.Dist(p.Target(LayoutScatter)); d > 1e-9 {
			t.Fatalf("%s overshoot or undershoot after stall: %f from target", p.Category, d)
		}
	}
}

func TestZeroDeltaOnlyAdvancesRotation(t *testing.T) {
	s := smallScene(t)

	before := make([]Vec3, len(s.Particles()))
	for i, p := range s.Particles() {
		before[i] = p.Handle.Position
	}

	s.Step(0)

	for i, p := range s.Particles() {
		if p.Handle.Position != before[i] {
			t.Fatalf("%s moved with dt=0", p.Category)
		}
		// Rotation increments are per-frame, not per-second, so they
		// still advance on a zero-dt frame.
		if p.RotVel != (Vec3{}) && p.Handle.Rotation == (Vec3{}) {
			t.Fatalf("%s rotation did not advance on a zero-dt frame", p.Category)
		}
	}
}

func TestToggleRetargetsEveryParticle(t *testing.T) {
	s := smallScene(t)
	s.SetLayout(LayoutScatter)
	for frame := 0; frame < 5*60; frame++ {
		s.Step(frameDT)
	}
	s.SetLayout(LayoutTree)
	for frame := 0; frame < 6*60; frame++ {
		s.Step(frameDT)
	}
	for _, p := range s.Particles() {
		if d := p.Handle.Position.Dist(p.Target(LayoutTree)); d >= 0.5 {
			t.Errorf("%s still %f from tree target after reassembly", p.Category, d)
		}
	}
}

func TestUpdateAllocsNothing(t *testing.T) {
	s := smallScene(t)
	s.SetLayout(LayoutScatter)
	s.Step(frameDT) // warmup

	allocs := testing.AllocsPerRun(100, func() {
		s.Step(frameDT)
	})
	if allocs > 0 {
		t.Errorf("Step allocs = %f, want 0", allocs)
	}
}

// --- Benchmarks ---

func benchScene(b *testing.B, foliage int) *TreeScene {
	b.Helper()
	s, err := NewTreeScene(TreeConfig{FoliageCount: foliage})
	if err != nil {
		b.Fatal(err)
	}
	s.SetLayout(LayoutScatter)
	return s
}

func BenchmarkAnimatorUpdate_1000(b *testing.B) {
	s := benchScene(b, 1000)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.Step(frameDT)
	}
}

func BenchmarkAnimatorUpdate_8000(b *testing.B) {
	s := benchScene(b, 8000)
	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		s.Step(frameDT)
	}
}
