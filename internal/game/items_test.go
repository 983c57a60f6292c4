package game

import (
	"testing"

	"dustward/internal/core"
)

// placeItem overrides item i for a controlled pickup scenario.
func placeItem(w *World, i, typ int, cond float64, pos core.Vec2) {
	w.Items[i] = WorldItem{Type: typ, Condition: cond, Pos: pos, Active: true}
}

func TestPickupWithinRadius(t *testing.T) {
	w := newTestWorld(1)
	pos := w.Player.Pos.Add(core.V(w.cfg.Items.PickupRadius-1, 0))
	placeItem(w, 0, 2, 0.5, pos)

	if !w.TryPickup(w.Player.Pos) {
		t.Fatal("Item within pickup radius should be collected")
	}
	if w.Items[0].Active {
		t.Error("Picked item should deactivate")
	}
	if w.Items[0].RespawnIn < w.cfg.Items.RespawnMin ||
		w.Items[0].RespawnIn > w.cfg.Items.RespawnMin+w.cfg.Items.RespawnJitter {
		t.Errorf("Respawn timer %.1f outside [%.0f, %.0f]",
			w.Items[0].RespawnIn, w.cfg.Items.RespawnMin,
			w.cfg.Items.RespawnMin+w.cfg.Items.RespawnJitter)
	}
	if w.Inv.Count() != 1 {
		t.Errorf("Expected 1 carried item, got %d", w.Inv.Count())
	}
	if w.Inv.Slots[0].Type != 2 || w.Inv.Slots[0].Condition != 0.5 {
		t.Error("Carried item should keep its type and condition")
	}
	if w.Stats.ItemsScavenged != 1 {
		t.Errorf("Scavenge counter should be 1, got %d", w.Stats.ItemsScavenged)
	}
}

func TestPickupOutOfRadius(t *testing.T) {
	w := newTestWorld(1)
	pos := w.Player.Pos.Add(core.V(w.cfg.Items.PickupRadius+1, 0))
	placeItem(w, 0, 0, 0.5, pos)

	// Park the remaining items far away.
	for i := 1; i < len(w.Items); i++ {
		w.Items[i].Pos = core.V(100, 100)
	}

	if w.TryPickup(w.Player.Pos) {
		t.Error("Item outside pickup radius should not be collected")
	}
	if !w.Items[0].Active {
		t.Error("Unpicked item should stay active")
	}
}

func TestPickupFirstFoundWins(t *testing.T) {
	w := newTestWorld(1)
	// Item 3 is nearer, but item 1 comes first in array order.
	placeItem(w, 1, 0, 0.5, w.Player.Pos.Add(core.V(40, 0)))
	placeItem(w, 3, 1, 0.5, w.Player.Pos.Add(core.V(5, 0)))
	w.Items[0].Pos = core.V(100, 100)
	w.Items[2].Pos = core.V(100, 100)

	if !w.TryPickup(w.Player.Pos) {
		t.Fatal("Pickup should succeed")
	}
	if w.Items[1].Active {
		t.Error("First item in array order should win, not the nearest")
	}
	if !w.Items[3].Active {
		t.Error("Nearer but later item should be untouched")
	}
}

func TestPickupAtMostOnePerPress(t *testing.T) {
	w := newTestWorld(1)
	placeItem(w, 0, 0, 0.5, w.Player.Pos.Add(core.V(10, 0)))
	placeItem(w, 1, 1, 0.5, w.Player.Pos.Add(core.V(12, 0)))

	w.TryPickup(w.Player.Pos)

	if w.Inv.Count() != 1 {
		t.Errorf("One press should collect at most one item, got %d", w.Inv.Count())
	}
	if !w.Items[1].Active {
		t.Error("Second in-range item should remain for the next press")
	}
}

func TestPickupFullInventory(t *testing.T) {
	w := newTestWorld(1)
	for i := 0; i < w.Inv.Cap; i++ {
		w.Inv.Slots[i] = InventorySlot{Type: 0, Condition: 0.5, Occupied: true}
	}
	placeItem(w, 0, 1, 0.9, w.Player.Pos.Add(core.V(10, 0)))

	if w.TryPickup(w.Player.Pos) {
		t.Error("Pickup should fail with a full pack")
	}
	if !w.Items[0].Active {
		t.Error("Item should stay in the world when the pack is full")
	}
	if w.FullMsg != w.cfg.Items.FullMsgTime {
		t.Errorf("Full banner timer should start at %.1f, got %.1f",
			w.cfg.Items.FullMsgTime, w.FullMsg)
	}
}

func TestAddToInventoryFillsLowestSlot(t *testing.T) {
	w := newTestWorld(1)
	w.Inv.Slots[0] = InventorySlot{Type: 0, Condition: 0.5, Occupied: true}
	w.Inv.Slots[1] = InventorySlot{Type: 1, Condition: 0.5, Occupied: true}
	w.clearSlot(0)

	if !w.AddToInventory(3, 0.7) {
		t.Fatal("Add should succeed")
	}
	if !w.Inv.Slots[0].Occupied || w.Inv.Slots[0].Type != 3 {
		t.Error("New item should land in the lowest vacant slot")
	}
}

func TestRespawnCycle(t *testing.T) {
	w := newTestWorld(1)
	placeItem(w, 0, 0, 0.5, w.Player.Pos.Add(core.V(10, 0)))
	w.TryPickup(w.Player.Pos)

	timer := w.Items[0].RespawnIn

	// One tick short of expiry: still inactive.
	w.RespawnTick(timer - 0.01)
	if w.Items[0].Active {
		t.Fatal("Item should not respawn before its timer expires")
	}

	w.RespawnTick(0.02)
	it := w.Items[0]
	if !it.Active {
		t.Fatal("Item should respawn when its timer expires")
	}
	if it.RespawnIn != 0 {
		t.Error("Respawned item should have a zero timer")
	}
	if it.Condition < w.cfg.Items.ConditionMin ||
		it.Condition > w.cfg.Items.ConditionMin+w.cfg.Items.ConditionSpan {
		t.Errorf("Respawned condition %.3f outside spawn range", it.Condition)
	}

	shimmers := 0
	for _, s := range w.FX.Shimmers {
		if s.Life > 0 {
			shimmers++
		}
	}
	if shimmers == 0 {
		t.Error("Respawn should spawn a shimmer")
	}
}

func TestInteractPriorityItemOverStation(t *testing.T) {
	w := newTestWorld(1)
	// Stand at the workbench with an item in reach. The item wins.
	w.Player.Pos = w.Bench.Pos
	placeItem(w, 0, 0, 0.5, w.Bench.Pos.Add(core.V(10, 0)))

	w.handleInteract()

	if w.Screen == ScreenWorkbench {
		t.Error("Item pickup should take priority over opening the workbench")
	}
	if w.Inv.Count() != 1 {
		t.Error("Interact should have collected the item")
	}
}

func TestInteractOpensWorkbench(t *testing.T) {
	w := newTestWorld(1)
	w.Player.Pos = w.Bench.Pos.Add(core.V(w.cfg.Workbench.Radius-1, 0))

	// Clear any items that happen to sit near the bench.
	for i := range w.Items {
		w.Items[i].Active = false
		w.Items[i].RespawnIn = 100
	}

	w.handleInteract()

	if w.Screen != ScreenWorkbench {
		t.Errorf("Expected workbench screen, got %v", w.Screen)
	}
	if w.Bench.State != BenchOpen {
		t.Errorf("Expected bench open, got %v", w.Bench.State)
	}
}

func TestInteractOpensTrade(t *testing.T) {
	w := newTestWorld(1)
	w.Player.Pos = w.Gate.Pos.Add(core.V(w.cfg.Trade.Radius-1, 0))

	for i := range w.Items {
		w.Items[i].Active = false
		w.Items[i].RespawnIn = 100
	}

	w.handleInteract()

	if w.Screen != ScreenTrade {
		t.Errorf("Expected trade screen, got %v", w.Screen)
	}
}

func TestFullInventoryInteractConsumed(t *testing.T) {
	w := newTestWorld(1)
	// Full pack, item in range AND bench in range: the failed pickup
	// consumes the press, no screen opens.
	for i := 0; i < w.Inv.Cap; i++ {
		w.Inv.Slots[i] = InventorySlot{Type: 0, Condition: 0.5, Occupied: true}
	}
	w.Player.Pos = w.Bench.Pos
	placeItem(w, 0, 1, 0.9, w.Bench.Pos.Add(core.V(10, 0)))

	w.handleInteract()

	if w.Screen != ScreenNone {
		t.Error("Failed pickup should consume the press without opening a screen")
	}
	if w.FullMsg == 0 {
		t.Error("Full banner should be showing")
	}
}
