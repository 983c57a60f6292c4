package game

import (
	"testing"

	"dustward/internal/core"
)

func TestFootprintPoolWraps(t *testing.T) {
	fx := newEffects()

	for i := 0; i < footprintCap+5; i++ {
		fx.spawnFootprint(core.V(float64(i), 0), core.V(0, 1), 10)
	}

	// The cursor wrapped: entry 0 now holds spawn number footprintCap.
	if fx.Footprints[0].Pos.X != float64(footprintCap) {
		t.Errorf("Oldest entry should be overwritten, got X=%.0f", fx.Footprints[0].Pos.X)
	}
	if fx.footCursor != 5 {
		t.Errorf("Cursor should wrap to 5, got %d", fx.footCursor)
	}

	// Never more than the pool capacity live.
	live := 0
	for _, f := range fx.Footprints {
		if f.Life > 0 {
			live++
		}
	}
	if live != footprintCap {
		t.Errorf("Expected %d live footprints, got %d", footprintCap, live)
	}
}

func TestEffectsAge(t *testing.T) {
	w := newTestWorld(1)
	w.FX.spawnDust(core.V(0, 0), 0.5)
	w.FX.spawnShimmer(core.V(0, 0), 0.8)

	w.updateEffects(1.0)

	if w.FX.Dust[0].Life > 0 {
		t.Error("Dust should expire after its lifetime")
	}
	if w.FX.Shimmers[0].Life > 0 {
		t.Error("Shimmer should expire after its lifetime")
	}
}

func TestWindLinesSpawnOverTime(t *testing.T) {
	w := newTestWorld(1)

	// WindMax seconds guarantees at least one spawn, but a line only lives
	// WindLife seconds, so count spawned entries rather than live ones.
	for i := 0; i < int(w.cfg.Effects.WindMax*60)+1; i++ {
		w.updateEffects(1.0 / 60)
	}

	spawned := 0
	for _, wl := range w.FX.Wind {
		if wl.MaxLife > 0 {
			spawned++
		}
	}
	if spawned == 0 {
		t.Error("Ambient wind lines should spawn over time")
	}
}

func TestWindLinesDrift(t *testing.T) {
	w := newTestWorld(1)
	w.FX.spawnWind(core.V(0, 0), 100, 30, 10)

	w.updateEffects(1.0)

	if w.FX.Wind[0].Pos.X <= 0 {
		t.Error("Wind lines should drift eastward")
	}
}

func TestStormParticlesSeedAndClear(t *testing.T) {
	w := newTestWorld(1)

	// Calm: pool untouched.
	w.updateEffects(1.0 / 60)
	if w.FX.stormSeeded {
		t.Fatal("Storm pool must not seed while calm")
	}

	w.Storm.State = StormBuilding
	w.Storm.Duration = w.cfg.Storm.BuildTime
	w.Storm.Remaining = w.cfg.Storm.BuildTime
	w.updateEffects(1.0 / 60)

	if !w.FX.stormSeeded {
		t.Fatal("Storm pool should seed on the first storm tick")
	}
	for i, p := range w.FX.StormDust {
		if !p.Active {
			t.Fatalf("Particle %d should be active during the storm", i)
		}
		if p.Vel.X <= 0 {
			t.Fatalf("Particle %d should move eastward", i)
		}
	}

	w.Storm.State = StormCalm
	w.updateEffects(1.0 / 60)
	if w.FX.stormSeeded {
		t.Error("Storm pool should clear when the storm ends")
	}
	for i, p := range w.FX.StormDust {
		if p.Active {
			t.Fatalf("Particle %d should deactivate after the storm", i)
		}
	}
}

func TestStormParticlesWrapAcrossView(t *testing.T) {
	w := newTestWorld(1)
	w.Storm.State = StormActive
	w.Storm.Duration = 1000
	w.Storm.Remaining = 1000

	w.updateEffects(1.0 / 60)

	// Drive long enough for the fastest particles to cross the view.
	for i := 0; i < 60*10; i++ {
		w.updateEffects(1.0 / 60)
	}

	right := w.Camera.X + VirtualW/2
	left := w.Camera.X - VirtualW/2
	for i, p := range w.FX.StormDust {
		if p.Pos.X > right+20+1 || p.Pos.X < left-20-1 {
			t.Errorf("Particle %d escaped the view band: X=%.1f", i, p.Pos.X)
		}
	}
}

func TestDustPuffsWhileMoving(t *testing.T) {
	w := newTestWorld(1)

	stepFrames(w, 60, core.InputFrame{Right: true}, 1.0/60)

	live := 0
	for _, d := range w.FX.Dust {
		if d.Life > 0 {
			live++
		}
	}
	if live == 0 {
		t.Error("Walking should kick up dust puffs")
	}
}
