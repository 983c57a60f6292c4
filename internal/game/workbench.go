package game

import (
	"math"

	"dustward/internal/core"
)

// BenchState enumerates the workbench state machine.
type BenchState int

const (
	BenchClosed BenchState = iota
	BenchOpen
	BenchRepairing
)

// String returns a short name for the state.
func (s BenchState) String() string {
	switch s {
	case BenchClosed:
		return "closed"
	case BenchOpen:
		return "open"
	case BenchRepairing:
		return "repairing"
	default:
		return "unknown"
	}
}

// Workbench governs the repair interaction. RepairSlot and SacrificeSlot
// are inventory indices, -1 when unset, never equal while both set. The
// referenced slots are re-validated (occupied check) at every use because
// a sibling operation may vacate them between frames.
type Workbench struct {
	Pos           core.Vec2
	State         BenchState
	RepairSlot    int
	SacrificeSlot int
	Timer         float64 // Repair progress in seconds
	Flash         float64 // Completion flash countdown
}

func newWorkbench(pos core.Vec2) Workbench {
	return Workbench{
		Pos:           pos,
		State:         BenchClosed,
		RepairSlot:    -1,
		SacrificeSlot: -1,
	}
}

// RepairBonus returns the current base condition gain per repair,
// reflecting the tool upgrade.
func (w *World) RepairBonus() float64 {
	if w.Gate.ToolUpgrade {
		return w.cfg.Workbench.UpgradedBonus
	}
	return w.cfg.Workbench.BaseBonus
}

// openWorkbench enters the Open state with both slots cleared.
// Only callable while no modal screen is open.
func (w *World) openWorkbench() {
	if w.Screen != ScreenNone {
		return
	}
	w.Screen = ScreenWorkbench
	w.Bench.State = BenchOpen
	w.Bench.RepairSlot = -1
	w.Bench.SacrificeSlot = -1
	w.Bench.Timer = 0
}

// closeWorkbench leaves the workbench screen. Refused mid-repair: a
// started repair always runs to completion.
func (w *World) closeWorkbench() {
	if w.Bench.State == BenchRepairing {
		return
	}
	w.Bench.State = BenchClosed
	w.Bench.RepairSlot = -1
	w.Bench.SacrificeSlot = -1
	w.Screen = ScreenNone
}

// benchToggleSlot assigns or clears a slot's role. An occupied, unassigned
// slot fills whichever role is empty (repair first); clicking an assigned
// slot clears that assignment. A slot can never hold both roles.
func (w *World) benchToggleSlot(i int) {
	if !w.slotOccupied(i) {
		return
	}
	switch {
	case i == w.Bench.RepairSlot:
		w.Bench.RepairSlot = -1
	case i == w.Bench.SacrificeSlot:
		w.Bench.SacrificeSlot = -1
	case w.Bench.RepairSlot == -1:
		w.Bench.RepairSlot = i
	case w.Bench.SacrificeSlot == -1:
		w.Bench.SacrificeSlot = i
	}
}

// startRepair enters Repairing if both slots are set and still occupied.
func (w *World) startRepair() {
	if w.Bench.State != BenchOpen {
		return
	}
	if !w.slotOccupied(w.Bench.RepairSlot) || !w.slotOccupied(w.Bench.SacrificeSlot) {
		return
	}
	w.Bench.State = BenchRepairing
	w.Bench.Timer = 0
}

// resolveRepair applies the finished repair exactly once: the repair
// slot's condition rises by the base bonus plus the category-match bonus,
// capped at 1.0, and the sacrifice is destroyed unconditionally. Both
// slots reset to -1, so a second invocation has nothing to act on.
//
// If either slot was vacated during the timer (stale index), nothing is
// applied; the state machine still returns to Open with cleared slots.
func (w *World) resolveRepair() {
	rep := w.Bench.RepairSlot
	sac := w.Bench.SacrificeSlot

	if w.slotOccupied(rep) && w.slotOccupied(sac) {
		bonus := w.RepairBonus()
		repCat := Catalog[w.Inv.Slots[rep].Type].Category
		sacCat := Catalog[w.Inv.Slots[sac].Type].Category
		if repCat == sacCat {
			bonus += w.cfg.Workbench.MatchBonus
		}
		w.Inv.Slots[rep].Condition = math.Min(1.0, w.Inv.Slots[rep].Condition+bonus)
		w.clearSlot(sac)
		w.Stats.Repairs++
	}

	w.Bench.RepairSlot = -1
	w.Bench.SacrificeSlot = -1
	w.Bench.State = BenchOpen
	w.Bench.Timer = 0
	w.Bench.Flash = w.cfg.Workbench.FlashTime
}

// handleWorkbenchInput processes one tick of input while the workbench
// screen is open, including repair timer progress.
func (w *World) handleWorkbenchInput(in core.InputFrame, dt float64) {
	if w.Bench.State == BenchRepairing {
		// No input is honored mid-repair; the timer runs to completion.
		w.Bench.Timer += dt
		if w.Bench.Timer >= w.cfg.Workbench.RepairTime {
			w.resolveRepair()
		}
		return
	}

	if in.Escape {
		w.closeWorkbench()
		return
	}

	if in.Click {
		if i, ok := slotAt(in.PointerX, in.PointerY, w.Inv.Cap); ok {
			w.benchToggleSlot(i)
			return
		}
		if WorkbenchRepairButton().Contains(in.PointerX, in.PointerY) {
			w.startRepair()
			return
		}
		if CloseButton().Contains(in.PointerX, in.PointerY) {
			w.closeWorkbench()
		}
		return
	}

	if in.Interact {
		w.startRepair()
	}
}
