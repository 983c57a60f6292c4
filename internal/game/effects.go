package game

import "dustward/internal/core"

// Pool capacities. Every pool is a fixed array with a wrapping write
// cursor; spawning past capacity silently overwrites the oldest entry and
// nothing ever allocates after Reset.
const (
	footprintCap = 64
	dustCap      = 32
	windCap      = 16
	shimmerCap   = 8
	stormCap     = 128
)

// Footprint is one boot mark left on the sand.
type Footprint struct {
	Pos     core.Vec2
	Dir     core.Vec2 // Travel direction at spawn time, for glyph orientation
	Life    float64
	MaxLife float64
}

// DustPuff is a short-lived kicked-up dust cloud.
type DustPuff struct {
	Pos     core.Vec2
	Life    float64
	MaxLife float64
}

// WindLine is a horizontal streak drifting across the view.
type WindLine struct {
	Pos     core.Vec2
	Speed   float64 // World px/s, always eastward
	Length  float64
	Life    float64
	MaxLife float64
}

// Shimmer marks a freshly respawned item.
type Shimmer struct {
	Pos     core.Vec2
	Life    float64
	MaxLife float64
}

// StormParticle is one grain of the sandstorm wall. Particles persist for
// the whole storm and wrap across the view instead of expiring.
type StormParticle struct {
	Pos    core.Vec2
	Vel    core.Vec2
	Active bool
}

// Effects holds the five ambient effect pools. Spawners only advance
// cursors; aging and the wind timer run once per tick from the world step.
type Effects struct {
	Footprints [footprintCap]Footprint
	Dust       [dustCap]DustPuff
	Wind       [windCap]WindLine
	Shimmers   [shimmerCap]Shimmer
	StormDust  [stormCap]StormParticle

	footCursor    int
	dustCursor    int
	windCursor    int
	shimmerCursor int

	windClock   float64 // Countdown to the next wind line
	stormSeeded bool
}

func newEffects() Effects {
	return Effects{}
}

func (fx *Effects) spawnFootprint(pos, dir core.Vec2, life float64) {
	fx.Footprints[fx.footCursor] = Footprint{Pos: pos, Dir: dir, Life: life, MaxLife: life}
	fx.footCursor = (fx.footCursor + 1) % footprintCap
}

func (fx *Effects) spawnDust(pos core.Vec2, life float64) {
	fx.Dust[fx.dustCursor] = DustPuff{Pos: pos, Life: life, MaxLife: life}
	fx.dustCursor = (fx.dustCursor + 1) % dustCap
}

func (fx *Effects) spawnWind(pos core.Vec2, speed, length, life float64) {
	fx.Wind[fx.windCursor] = WindLine{Pos: pos, Speed: speed, Length: length, Life: life, MaxLife: life}
	fx.windCursor = (fx.windCursor + 1) % windCap
}

func (fx *Effects) spawnShimmer(pos core.Vec2, life float64) {
	fx.Shimmers[fx.shimmerCursor] = Shimmer{Pos: pos, Life: life, MaxLife: life}
	fx.shimmerCursor = (fx.shimmerCursor + 1) % shimmerCap
}

// updateEffects ages every pool by dt, runs the ambient wind spawn timer,
// and drives the storm particle wall. Called once per tick regardless of
// which screen is open, so effects keep animating behind overlays.
func (w *World) updateEffects(dt float64) {
	fx := &w.FX

	for i := range fx.Footprints {
		if fx.Footprints[i].Life > 0 {
			fx.Footprints[i].Life -= dt
		}
	}
	for i := range fx.Dust {
		if fx.Dust[i].Life > 0 {
			fx.Dust[i].Life -= dt
			fx.Dust[i].Pos.Y -= 14 * dt
		}
	}
	for i := range fx.Shimmers {
		if fx.Shimmers[i].Life > 0 {
			fx.Shimmers[i].Life -= dt
		}
	}
	for i := range fx.Wind {
		wl := &fx.Wind[i]
		if wl.Life > 0 {
			wl.Life -= dt
			wl.Pos.X += wl.Speed * dt
		}
	}

	w.updateWindTimer(dt)
	w.updateStormParticles(dt)
}

// updateWindTimer spawns ambient wind lines on a random interval, halved
// while the storm is building or active.
func (w *World) updateWindTimer(dt float64) {
	fx := &w.FX
	fx.windClock -= dt
	if fx.windClock > 0 {
		return
	}

	interval := w.cfg.Effects.WindMin +
		w.rng.Float64()*(w.cfg.Effects.WindMax-w.cfg.Effects.WindMin)
	if w.Storm.WindBoosted() {
		interval /= 2
	}
	fx.windClock = interval

	// Spawn just off the west edge of the view at a random height.
	pos := core.V(
		w.Camera.X-VirtualW/2-40,
		w.Camera.Y+(w.rng.Float64()-0.5)*VirtualH,
	)
	speed := 160 + w.rng.Float64()*140
	length := 24 + w.rng.Float64()*40
	fx.spawnWind(pos, speed, length, w.cfg.Effects.WindLife)
}

// updateStormParticles drives the sandstorm wall while a storm is in
// progress. The pool is seeded lazily on the first storm tick; particles
// that blow past the east view edge re-enter from the west with a fresh
// vertical position, so the wall never thins out mid-storm.
func (w *World) updateStormParticles(dt float64) {
	fx := &w.FX
	if !w.Storm.InProgress() {
		if fx.stormSeeded {
			for i := range fx.StormDust {
				fx.StormDust[i].Active = false
			}
			fx.stormSeeded = false
		}
		return
	}

	left := w.Camera.X - VirtualW/2
	right := w.Camera.X + VirtualW/2
	top := w.Camera.Y - VirtualH/2

	if !fx.stormSeeded {
		for i := range fx.StormDust {
			fx.StormDust[i] = StormParticle{
				Pos:    core.V(left+w.rng.Float64()*VirtualW, top+w.rng.Float64()*VirtualH),
				Vel:    core.V(300+w.rng.Float64()*220, (w.rng.Float64()-0.5)*60),
				Active: true,
			}
		}
		fx.stormSeeded = true
	}

	// Intensity follows the storm phase so the wall thickens while
	// building and thins while fading.
	intensity := w.Storm.Phase()
	if w.Storm.State == StormActive {
		intensity = 1
	}
	for i := range fx.StormDust {
		p := &fx.StormDust[i]
		if !p.Active {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt * (0.4 + 0.6*intensity)))
		if p.Pos.X > right+20 {
			p.Pos.X = left - 20
			p.Pos.Y = top + w.rng.Float64()*VirtualH
		}
	}
}
