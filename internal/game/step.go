package game

import "dustward/internal/core"

// Step advances the simulation by one tick. Update order is fixed:
// world clocks first, then input routing for whichever screen is open,
// then item respawns, effects, UI timers, and finally the camera. The
// renderer sees a fully settled frame.
func (w *World) Step(in core.InputFrame) {
	dt := in.DT
	w.tick++

	w.Day.Update(dt)
	w.Storm.Update(dt, w.rng)

	switch w.Screen {
	case ScreenWorkbench:
		w.handleWorkbenchInput(in, dt)
	case ScreenTrade:
		w.handleTradeInput(in)
	case ScreenLog:
		w.handleLogInput(in)
	case ScreenInventory:
		w.handleInventoryInput(in)
	default:
		w.updateMovement(in, dt)
		if in.Interact {
			w.handleInteract()
		}
		if in.Inventory && w.Screen == ScreenNone {
			w.Screen = ScreenInventory
		}
	}

	w.RespawnTick(dt)
	w.updateEffects(dt)
	w.tickTimers(dt)
	w.updateCamera()
}

// tickTimers decrements the cosmetic countdowns, clamping at zero.
func (w *World) tickTimers(dt float64) {
	w.FullMsg = countdown(w.FullMsg, dt)
	w.Bench.Flash = countdown(w.Bench.Flash, dt)
	w.Gate.TokenAnim = countdown(w.Gate.TokenAnim, dt)
}

func countdown(v, dt float64) float64 {
	if v <= 0 {
		return 0
	}
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
