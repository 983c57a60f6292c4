package game

import (
	"math"

	"dustward/internal/config"
	"dustward/internal/core"
)

// DayCycle tracks the single monotonic day clock. Phase, the night
// predicate, shadows, and the ambient tint are all derived from it with
// no hidden state.
type DayCycle struct {
	cfg   config.DayTuning
	Clock float64
}

func newDayCycle(cfg config.DayTuning) DayCycle {
	return DayCycle{cfg: cfg}
}

// Update advances the clock, wrapping at the day length.
func (d *DayCycle) Update(dt float64) {
	d.Clock += dt
	for d.Clock >= d.cfg.Length {
		d.Clock -= d.cfg.Length
	}
}

// Phase returns the position in the day as a value in [0,1).
func (d *DayCycle) Phase() float64 {
	return d.Clock / d.cfg.Length
}

// IsNight reports whether the current phase falls in the night band.
func (d *DayCycle) IsNight() bool {
	p := d.Phase()
	return p > d.cfg.NightAfter || p < d.cfg.NightUntil
}

// ShadowOffset returns the deterministic shadow displacement for the
// current phase: a cosine-driven horizontal sway with a fixed vertical
// drop, zeroed at night when shadows disappear.
func (d *DayCycle) ShadowOffset() core.Vec2 {
	if d.IsNight() {
		return core.Vec2{}
	}
	return core.V(math.Cos(d.Phase()*2*math.Pi)*10, 6)
}

// Tint is the ambient light color blended over the scene.
type Tint struct {
	R, G, B float64 // 0..1 channel weights
	Alpha   float64 // Blend strength
}

// tintKey is one palette keyframe. Keys are ordered by phase; lookup wraps
// from the last key back to the first.
type tintKey struct {
	phase float64
	tint  Tint
}

var dayPalette = []tintKey{
	{0.00, Tint{R: 1.00, G: 0.85, B: 0.65, Alpha: 0.25}}, // dawn
	{0.10, Tint{R: 1.00, G: 1.00, B: 0.95, Alpha: 0.00}}, // morning
	{0.45, Tint{R: 1.00, G: 0.98, B: 0.90, Alpha: 0.00}}, // afternoon
	{0.62, Tint{R: 1.00, G: 0.72, B: 0.45, Alpha: 0.25}}, // golden hour
	{0.75, Tint{R: 0.55, G: 0.40, B: 0.60, Alpha: 0.45}}, // dusk
	{0.85, Tint{R: 0.18, G: 0.20, B: 0.38, Alpha: 0.60}}, // night
	{0.95, Tint{R: 0.20, G: 0.24, B: 0.42, Alpha: 0.55}}, // late night
}

// Ambient returns the current ambient tint: a linear interpolation between
// the two palette keyframes bounding the phase, wrapping past the last key.
// Pure function of phase.
func (d *DayCycle) Ambient() Tint {
	p := d.Phase()
	n := len(dayPalette)

	// Last keyframe at or below p. The first key sits at phase 0, so one
	// always exists.
	i := 0
	for j := 1; j < n; j++ {
		if dayPalette[j].phase <= p {
			i = j
		}
	}
	prev := dayPalette[i]
	next := dayPalette[(i+1)%n]

	span := next.phase - prev.phase
	into := p - prev.phase
	if span <= 0 {
		span += 1 // wrap segment from the last key back to the first
	}

	t := 0.0
	if span > 0 {
		t = core.ClampF(into/span, 0, 1)
	}
	return Tint{
		R:     core.LerpF(prev.tint.R, next.tint.R, t),
		G:     core.LerpF(prev.tint.G, next.tint.G, t),
		B:     core.LerpF(prev.tint.B, next.tint.B, t),
		Alpha: core.LerpF(prev.tint.Alpha, next.tint.Alpha, t),
	}
}
