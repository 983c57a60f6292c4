package game

import "dustward/internal/core"

// updateMovement applies one tick of the movement controller: input vector
// to position delta, world-bounds clamp, facing/walk-state upkeep, and the
// movement-driven effect triggers. Called only when no modal screen is open.
func (w *World) updateMovement(in core.InputFrame, dt float64) {
	dir := in.Dir()
	wasMoving := w.Player.Moving
	prevFacing := w.Player.Facing

	if dir.IsZero() {
		w.Player.Moving = false
		w.Player.dustClock = 0
		return
	}

	speed := w.cfg.Player.Speed * w.Storm.SpeedMultiplier()
	delta := dir.Scale(speed * dt)
	w.Player.Pos = w.Player.Pos.Add(delta).ClampRect(w.cfg.World.Width, w.cfg.World.Height)

	w.Player.Moving = true
	w.Player.Facing = dir
	w.Player.WalkPhase += dt * w.cfg.Player.WalkRate

	// Footprints on movement start, on direction change, and every
	// FootprintSpacing px of travel.
	started := !wasMoving
	turned := wasMoving && dir != prevFacing
	w.Player.stepDist += delta.Len()
	if started || turned || w.Player.stepDist >= w.cfg.Effects.FootprintSpacing {
		w.FX.spawnFootprint(w.Player.Pos, dir, w.cfg.Effects.FootprintLife)
		w.Player.stepDist = 0
	}

	// Dust puffs on movement start and at a fixed interval while moving.
	if started {
		w.FX.spawnDust(w.Player.Pos, w.cfg.Effects.DustLife)
		w.Player.dustClock = 0
	} else {
		w.Player.dustClock += dt
		if w.Player.dustClock >= w.cfg.Effects.DustInterval {
			w.FX.spawnDust(w.Player.Pos, w.cfg.Effects.DustLife)
			w.Player.dustClock -= w.cfg.Effects.DustInterval
		}
	}
}

// updateCamera eases the camera toward the player. Exponential-decay
// follow: a fixed blend fraction of the remaining distance per frame.
func (w *World) updateCamera() {
	w.Camera = w.Camera.Lerp(w.Player.Pos, w.cfg.Player.CameraBlend)
}
