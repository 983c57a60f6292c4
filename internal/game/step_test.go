package game

import (
	"testing"

	"dustward/internal/core"
)

// scriptFrame pairs an input frame with how many ticks to hold it.
type scriptFrame struct {
	frame core.InputFrame
	ticks int
}

// runScript steps the world through a frame script at 60 Hz.
func runScript(w *World, script []scriptFrame) {
	for _, s := range script {
		f := s.frame
		f.DT = 1.0 / 60
		for i := 0; i < s.ticks; i++ {
			w.Step(f)
			// Edge-triggered inputs fire on the first tick only.
			f.Interact = false
			f.Inventory = false
			f.Escape = false
			f.Click = false
		}
	}
}

func TestStepDeterminism(t *testing.T) {
	script := []scriptFrame{
		{core.InputFrame{Right: true, Down: true}, 300},
		{core.InputFrame{Interact: true}, 1},
		{core.InputFrame{Left: true}, 200},
		{core.InputFrame{Interact: true}, 1},
		{core.InputFrame{Inventory: true}, 1},
		{core.InputFrame{}, 60},
		{core.InputFrame{Escape: true}, 1},
		{core.InputFrame{Up: true, Right: true}, 400},
	}

	a := newTestWorld(99)
	b := newTestWorld(99)

	for i, s := range script {
		runScript(a, []scriptFrame{s})
		runScript(b, []scriptFrame{s})
		if a.Hash() != b.Hash() {
			t.Fatalf("Worlds diverged after script segment %d", i)
		}
	}

	if a.Snapshot() != b.Snapshot() {
		t.Error("Final snapshots differ")
	}
}

func TestStepDifferentSeedsDiverge(t *testing.T) {
	a := newTestWorld(1)
	b := newTestWorld(2)

	if a.Hash() == b.Hash() {
		t.Error("Different seeds should generate different worlds")
	}
}

func TestStepSameSeedSameGeneration(t *testing.T) {
	a := newTestWorld(7)
	b := newTestWorld(7)

	if a.Hash() != b.Hash() {
		t.Error("Same seed should generate identical worlds")
	}
	for i := range a.Items {
		if a.Items[i] != b.Items[i] {
			t.Fatalf("Item %d differs between same-seed worlds", i)
		}
	}
}

func TestStepTickAdvances(t *testing.T) {
	w := newTestWorld(1)

	stepFrames(w, 10, core.InputFrame{}, 1.0/60)
	if w.Tick() != 10 {
		t.Errorf("Expected tick 10, got %d", w.Tick())
	}
}

func TestModalScreenBlocksMovement(t *testing.T) {
	w := newTestWorld(1)
	w.Screen = ScreenInventory
	start := w.Player.Pos

	stepFrames(w, 60, core.InputFrame{Right: true}, 1.0/60)

	if w.Player.Pos != start {
		t.Error("Player must not move while a screen is open")
	}
}

func TestWorldClocksRunBehindScreens(t *testing.T) {
	w := newTestWorld(1)
	w.Screen = ScreenTrade

	before := w.Day.Clock
	stepFrames(w, 60, core.InputFrame{}, 1.0/60)

	if w.Day.Clock <= before {
		t.Error("Day clock should keep running while a screen is open")
	}
}

func TestRespawnRunsBehindScreens(t *testing.T) {
	w := newTestWorld(1)
	w.Items[0].Active = false
	w.Items[0].RespawnIn = 0.5
	w.Screen = ScreenInventory

	stepFrames(w, 60, core.InputFrame{}, 1.0/60)

	if !w.Items[0].Active {
		t.Error("Respawn timers should keep counting while a screen is open")
	}
}

func TestInventoryKeyOpensOnlyFromWorld(t *testing.T) {
	w := newTestWorld(1)

	f := core.InputFrame{Inventory: true, DT: 1.0 / 60}
	w.Step(f)
	if w.Screen != ScreenInventory {
		t.Fatal("Inventory key should open the inventory screen")
	}

	w.Screen = ScreenTrade
	w.Step(f)
	if w.Screen != ScreenTrade {
		t.Error("Inventory key must not switch away from an open screen")
	}
}

func TestInventoryClosesOnEscape(t *testing.T) {
	w := newTestWorld(1)
	w.Screen = ScreenInventory

	w.Step(core.InputFrame{Escape: true, DT: 1.0 / 60})

	if w.Screen != ScreenNone {
		t.Error("Escape should close the inventory screen")
	}
}

func TestCosmeticTimersCountDown(t *testing.T) {
	w := newTestWorld(1)
	w.FullMsg = 0.5
	w.Bench.Flash = 0.5
	w.Gate.TokenAnim = 0.5

	stepFrames(w, 60, core.InputFrame{}, 1.0/60)

	if w.FullMsg != 0 || w.Bench.Flash != 0 || w.Gate.TokenAnim != 0 {
		t.Errorf("Timers should clamp to zero, got %.2f %.2f %.2f",
			w.FullMsg, w.Bench.Flash, w.Gate.TokenAnim)
	}
}

func TestCountdownClamps(t *testing.T) {
	if got := countdown(0.1, 0.5); got != 0 {
		t.Errorf("countdown(0.1, 0.5) = %.2f, want 0", got)
	}
	if got := countdown(0, 0.5); got != 0 {
		t.Errorf("countdown(0, 0.5) = %.2f, want 0", got)
	}
	if got := countdown(1.0, 0.25); got != 0.75 {
		t.Errorf("countdown(1.0, 0.25) = %.2f, want 0.75", got)
	}
}
