package game

import (
	"testing"

	"dustward/internal/config"
	"dustward/internal/core"
)

func newTestWorld(seed int64) *World {
	w := NewWorld(config.DefaultWorldConfig())
	w.Reset(seed)
	return w
}

// stepFrames advances the world n ticks with the given frame and dt.
func stepFrames(w *World, n int, frame core.InputFrame, dt float64) {
	frame.DT = dt
	for i := 0; i < n; i++ {
		w.Step(frame)
	}
}

func TestResetPlacesPlayerAtCenter(t *testing.T) {
	w := newTestWorld(1)

	cx := w.cfg.World.Width / 2
	cy := w.cfg.World.Height / 2
	if w.Player.Pos.X != cx || w.Player.Pos.Y != cy {
		t.Errorf("Player not at center: got (%.1f, %.1f), want (%.1f, %.1f)",
			w.Player.Pos.X, w.Player.Pos.Y, cx, cy)
	}
	if w.Camera != w.Player.Pos {
		t.Errorf("Camera should start on the player")
	}
}

func TestGenerateItems(t *testing.T) {
	w := newTestWorld(7)

	if len(w.Items) != w.cfg.Items.Count {
		t.Fatalf("Expected %d items, got %d", w.cfg.Items.Count, len(w.Items))
	}

	m := w.cfg.World.EdgeMargin
	cx := w.cfg.World.Width / 2
	cy := w.cfg.World.Height / 2
	half := w.cfg.World.CenterClear

	for i, it := range w.Items {
		if !it.Active {
			t.Errorf("Item %d should start active", i)
		}
		if it.RespawnIn != 0 {
			t.Errorf("Active item %d has pending respawn timer %.1f", i, it.RespawnIn)
		}
		if it.Pos.X < m || it.Pos.X > w.cfg.World.Width-m ||
			it.Pos.Y < m || it.Pos.Y > w.cfg.World.Height-m {
			t.Errorf("Item %d placed outside edge margin: (%.1f, %.1f)", i, it.Pos.X, it.Pos.Y)
		}
		dx := it.Pos.X - cx
		dy := it.Pos.Y - cy
		if dx >= -half && dx <= half && dy >= -half && dy <= half {
			t.Errorf("Item %d placed inside center exclusion: (%.1f, %.1f)", i, it.Pos.X, it.Pos.Y)
		}
		if it.Condition < w.cfg.Items.ConditionMin ||
			it.Condition > w.cfg.Items.ConditionMin+w.cfg.Items.ConditionSpan {
			t.Errorf("Item %d condition %.3f outside spawn range", i, it.Condition)
		}
		if it.Type < 0 || it.Type >= TypeCount() {
			t.Errorf("Item %d has invalid type %d", i, it.Type)
		}
	}
}

func TestInventoryStartsEmptyAtBaseCapacity(t *testing.T) {
	w := newTestWorld(3)

	if w.Inv.Cap != w.cfg.Items.BaseCapacity {
		t.Errorf("Expected capacity %d, got %d", w.cfg.Items.BaseCapacity, w.Inv.Cap)
	}
	if len(w.Inv.Slots) != w.cfg.Trade.UpgradedCapacity {
		t.Errorf("Backing array should hold upgraded capacity %d, got %d",
			w.cfg.Trade.UpgradedCapacity, len(w.Inv.Slots))
	}
	if w.Inv.Count() != 0 {
		t.Errorf("Inventory should start empty, got %d occupied", w.Inv.Count())
	}
}

func TestGenerateDressing(t *testing.T) {
	w := newTestWorld(11)

	if len(w.Decor) != w.cfg.World.DecorCount {
		t.Errorf("Expected %d decorations, got %d", w.cfg.World.DecorCount, len(w.Decor))
	}
	if len(w.Skyline) == 0 {
		t.Error("Skyline should not be empty")
	}
	if len(w.Dunes) != 3 {
		t.Errorf("Expected 3 dune layers, got %d", len(w.Dunes))
	}
}

func TestResetDiscardsState(t *testing.T) {
	w := newTestWorld(5)

	w.Gate.Tokens = 7
	w.Stats.Repairs = 3
	w.Screen = ScreenTrade

	w.Reset(5)

	if w.Gate.Tokens != 0 || w.Stats.Repairs != 0 {
		t.Error("Reset should discard economy and stats")
	}
	if w.Screen != ScreenNone {
		t.Error("Reset should close any open screen")
	}
	if w.Tick() != 0 {
		t.Error("Reset should zero the tick counter")
	}
}
