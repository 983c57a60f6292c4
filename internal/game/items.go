package game

import "dustward/internal/core"

// TryPickup scans the item array for the first active item within
// PickupRadius of pos and attempts to add it to the inventory. First match
// in array order wins, not the nearest; at most one pickup per call.
//
// On success the item deactivates and schedules a respawn. On a full
// inventory the item stays active and the "full" banner timer starts.
// Returns true if an item was picked up.
func (w *World) TryPickup(pos core.Vec2) bool {
	picked, _ := w.tryPickup(pos)
	return picked
}

// tryPickup additionally reports whether an in-range item was found at
// all, so the interact dispatcher knows the press was consumed even when
// the inventory was full.
func (w *World) tryPickup(pos core.Vec2) (picked, found bool) {
	for i := range w.Items {
		it := &w.Items[i]
		if !it.Active {
			continue
		}
		if pos.Dist(it.Pos) > w.cfg.Items.PickupRadius {
			continue
		}

		if !w.AddToInventory(it.Type, it.Condition) {
			w.FullMsg = w.cfg.Items.FullMsgTime
			return false, true
		}

		it.Active = false
		it.Condition = 0
		it.RespawnIn = w.cfg.Items.RespawnMin + w.rng.Float64()*w.cfg.Items.RespawnJitter
		w.FX.spawnDust(it.Pos, w.cfg.Effects.DustLife)
		w.Stats.ItemsScavenged++
		return true, true
	}
	return false, false
}

// AddToInventory fills the first unoccupied slot (lowest index).
// Returns false without mutating anything if no slot is free.
func (w *World) AddToInventory(typeIndex int, condition float64) bool {
	for i := 0; i < w.Inv.Cap; i++ {
		if w.Inv.Slots[i].Occupied {
			continue
		}
		w.Inv.Slots[i] = InventorySlot{
			Type:      typeIndex,
			Condition: condition,
			Occupied:  true,
		}
		return true
	}
	return false
}

// clearSlot vacates an inventory slot, zeroing its contents by convention.
func (w *World) clearSlot(i int) {
	if i < 0 || i >= len(w.Inv.Slots) {
		return
	}
	w.Inv.Slots[i] = InventorySlot{}
}

// slotOccupied reports whether a remembered slot index still references an
// occupied slot. State machines holding slot indices must re-check this
// before acting, since a sibling operation may have vacated the slot.
func (w *World) slotOccupied(i int) bool {
	return i >= 0 && i < w.Inv.Cap && w.Inv.Slots[i].Occupied
}

// RespawnTick counts down inactive items and reactivates any whose timer
// expires: new clear position, fresh random type and condition, and a
// spawn shimmer at the new location.
func (w *World) RespawnTick(dt float64) {
	for i := range w.Items {
		it := &w.Items[i]
		if it.Active || it.RespawnIn <= 0 {
			continue
		}
		it.RespawnIn -= dt
		if it.RespawnIn > 0 {
			continue
		}
		it.RespawnIn = 0
		it.Pos = w.placeClear()
		it.Type = w.rng.Intn(TypeCount())
		it.Condition = w.rollCondition()
		it.Active = true
		w.FX.spawnShimmer(it.Pos, w.cfg.Effects.ShimmerLife)
	}
}

// handleInteract resolves what an interact press targets when no modal
// screen is open: items take priority over the workbench, which takes
// priority over the gate.
func (w *World) handleInteract() {
	if _, found := w.tryPickup(w.Player.Pos); found {
		return
	}
	if w.Player.Pos.Dist(w.Bench.Pos) <= w.cfg.Workbench.Radius {
		w.openWorkbench()
		return
	}
	if w.Player.Pos.Dist(w.Gate.Pos) <= w.cfg.Trade.Radius {
		w.openTrade()
	}
}
