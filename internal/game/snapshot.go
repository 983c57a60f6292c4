package game

import (
	"fmt"
	"hash/fnv"
)

// Snapshot captures the observable simulation state for determinism
// testing. Two worlds reset with the same seed and stepped with the same
// input frames must produce identical snapshots at every tick.
type Snapshot struct {
	Tick uint64

	PlayerX float64
	PlayerY float64

	ActiveItems int
	Carried     int
	Capacity    int

	Tokens       int
	LogsUnlocked int
	ToolUpgrade  bool

	BenchState BenchState
	Screen     ModalScreen

	StormState StormState
	DayPhase   float64
	Night      bool

	TokensEarned   int
	ItemsScavenged int
	ItemsSold      int
	Repairs        int
}

// Snapshot returns the current snapshot.
func (w *World) Snapshot() Snapshot {
	active := 0
	for i := range w.Items {
		if w.Items[i].Active {
			active++
		}
	}

	return Snapshot{
		Tick:           w.tick,
		PlayerX:        w.Player.Pos.X,
		PlayerY:        w.Player.Pos.Y,
		ActiveItems:    active,
		Carried:        w.Inv.Count(),
		Capacity:       w.Inv.Cap,
		Tokens:         w.Gate.Tokens,
		LogsUnlocked:   w.Gate.LogsUnlocked,
		ToolUpgrade:    w.Gate.ToolUpgrade,
		BenchState:     w.Bench.State,
		Screen:         w.Screen,
		StormState:     w.Storm.State,
		DayPhase:       w.Day.Phase(),
		Night:          w.Day.IsNight(),
		TokensEarned:   w.Stats.TokensEarned,
		ItemsScavenged: w.Stats.ItemsScavenged,
		ItemsSold:      w.Stats.ItemsSold,
		Repairs:        w.Stats.Repairs,
	}
}

// Hash folds the snapshot plus the full item and inventory arrays into a
// single value, for compact divergence checks over long runs.
func (w *World) Hash() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%+v", w.Snapshot())
	for i := range w.Items {
		it := &w.Items[i]
		fmt.Fprintf(h, "|%d:%t:%.6f:%.3f:%.3f:%.3f",
			it.Type, it.Active, it.Condition, it.Pos.X, it.Pos.Y, it.RespawnIn)
	}
	for i := range w.Inv.Slots {
		s := &w.Inv.Slots[i]
		fmt.Fprintf(h, "|%t:%d:%.6f", s.Occupied, s.Type, s.Condition)
	}
	return h.Sum64()
}
