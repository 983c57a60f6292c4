// Package game implements the world simulation: player movement, the
// salvage item lifecycle, the workbench and gate state machines, the
// day/night and sandstorm cycles, and the ambient effect pools. All state
// lives in one World aggregate stepped once per tick; rendering consumes
// it read-only.
package game

import (
	"math/rand"

	"dustward/internal/config"
	"dustward/internal/core"
)

// Virtual screen dimensions. UI rects and pointer coordinates live in this
// space; the platform maps terminal cells onto it.
const (
	VirtualW = 1280.0
	VirtualH = 720.0
)

// ModalScreen identifies the open overlay. At most one is open at a time;
// player movement is gated while any is.
type ModalScreen int

const (
	ScreenNone ModalScreen = iota
	ScreenInventory
	ScreenWorkbench
	ScreenTrade
	ScreenLog
)

// String returns a short name for the screen.
func (s ModalScreen) String() string {
	switch s {
	case ScreenNone:
		return "none"
	case ScreenInventory:
		return "inventory"
	case ScreenWorkbench:
		return "workbench"
	case ScreenTrade:
		return "trade"
	case ScreenLog:
		return "log"
	default:
		return "unknown"
	}
}

// WorldItem is a scavengeable salvage placed in the world.
//
// Invariants: Active implies RespawnIn == 0; inactive items count RespawnIn
// down and reactivate exactly once when it reaches zero.
type WorldItem struct {
	Type      int
	Condition float64
	Pos       core.Vec2
	Active    bool
	RespawnIn float64
}

// InventorySlot holds one carried item. When Occupied is false the other
// fields are zeroed by convention.
type InventorySlot struct {
	Type      int
	Condition float64
	Occupied  bool
}

// Inventory is the fixed-capacity carry space. The backing array is sized
// for the upgraded capacity; Cap marks how many slots are usable.
type Inventory struct {
	Slots []InventorySlot
	Cap   int
}

// Count returns the number of occupied slots.
func (inv *Inventory) Count() int {
	n := 0
	for i := 0; i < inv.Cap; i++ {
		if inv.Slots[i].Occupied {
			n++
		}
	}
	return n
}

// Player is the controllable character.
type Player struct {
	Pos       core.Vec2
	Facing    core.Vec2 // Unit vector; persists through idle frames
	WalkPhase float64   // Advances only while moving
	Moving    bool

	stepDist  float64 // World px traveled since last footprint
	dustClock float64 // Seconds since last dust puff while moving
}

// DecorKind tags a piece of static ground decoration.
type DecorKind int

const (
	DecorRock DecorKind = iota
	DecorScrub
	DecorBones
	DecorWreck
)

// Decoration is static world dressing, generated once at startup.
type Decoration struct {
	Pos     core.Vec2
	Kind    DecorKind
	Variant int
}

// Building is one silhouette in the city skyline behind the gate.
type Building struct {
	X      float64 // World x of the left edge
	Width  float64
	Height float64
}

// DuneLayer is one parallax band of background dunes.
type DuneLayer struct {
	Depth      float64 // Parallax factor in (0,1]; smaller scrolls slower
	Amplitude  float64
	Wavelength float64
	Offset     float64
}

// RunStats accumulates session counters for the end-of-run summary.
type RunStats struct {
	TokensEarned   int
	ItemsScavenged int
	ItemsSold      int
	Repairs        int
}

// World is the complete simulation state. It is mutated only by Step and
// the operations Step dispatches; the renderer reads it through Snapshot.
type World struct {
	cfg  config.WorldConfig
	rng  *rand.Rand
	tick uint64

	Player Player
	Camera core.Vec2

	Items []WorldItem
	Inv   Inventory

	Bench Workbench
	Gate  Trade
	Storm Storm
	Day   DayCycle
	FX    Effects

	Screen     ModalScreen
	ViewingLog int     // Open data-log index while Screen == ScreenLog
	FullMsg    float64 // "Inventory full" banner countdown

	// Static world dressing, never recomputed after generation.
	Decor   []Decoration
	Skyline []Building
	Dunes   []DuneLayer

	Stats RunStats
}

// NewWorld creates an ungenerated world with the given tuning.
// Call Reset before stepping.
func NewWorld(cfg config.WorldConfig) *World {
	return &World{cfg: cfg}
}

// Config returns the world tuning in effect.
func (w *World) Config() config.WorldConfig {
	return w.cfg
}

// Tick returns the number of completed simulation ticks.
func (w *World) Tick() uint64 {
	return w.tick
}

// Reset generates the world from the given seed and places the player at
// the world center. All prior state is discarded.
func (w *World) Reset(seed int64) {
	w.rng = rand.New(rand.NewSource(seed))
	w.tick = 0
	w.Stats = RunStats{}

	cx := w.cfg.World.Width / 2
	cy := w.cfg.World.Height / 2
	w.Player = Player{
		Pos:    core.V(cx, cy),
		Facing: core.V(0, 1),
	}
	w.Camera = w.Player.Pos

	w.Inv = Inventory{
		Slots: make([]InventorySlot, w.cfg.Trade.UpgradedCapacity),
		Cap:   w.cfg.Items.BaseCapacity,
	}

	w.Bench = newWorkbench(core.V(cx+260, cy-120))
	w.Gate = newTrade(core.V(cx, w.cfg.World.EdgeMargin+220))
	w.Storm = newStorm(w.cfg.Storm, w.rng)
	w.Day = newDayCycle(w.cfg.Day)
	w.FX = newEffects()

	w.Screen = ScreenNone
	w.ViewingLog = -1
	w.FullMsg = 0

	w.generate()
}

// generate produces the static world dressing and initial item placement
// from the seeded RNG. Runs exactly once per Reset.
func (w *World) generate() {
	w.generateDecor()
	w.generateSkyline()
	w.generateDunes()
	w.generateItems()
}

func (w *World) generateDecor() {
	w.Decor = make([]Decoration, w.cfg.World.DecorCount)
	for i := range w.Decor {
		kind := DecorRock
		switch {
		case i%7 == 3:
			kind = DecorScrub
		case i%13 == 6:
			kind = DecorBones
		case i%23 == 11:
			kind = DecorWreck
		}
		w.Decor[i] = Decoration{
			Pos: core.V(
				w.rng.Float64()*w.cfg.World.Width,
				w.rng.Float64()*w.cfg.World.Height,
			),
			Kind:    kind,
			Variant: w.rng.Intn(4),
		}
	}
}

func (w *World) generateSkyline() {
	// The walled city sits along the north edge, behind the gate.
	const buildings = 12
	w.Skyline = make([]Building, buildings)
	span := w.cfg.World.Width / buildings
	for i := range w.Skyline {
		width := span * (0.5 + w.rng.Float64()*0.4)
		w.Skyline[i] = Building{
			X:      float64(i)*span + w.rng.Float64()*(span-width),
			Width:  width,
			Height: 80 + w.rng.Float64()*180,
		}
	}
}

func (w *World) generateDunes() {
	w.Dunes = []DuneLayer{
		{Depth: 0.2, Amplitude: 26, Wavelength: 900, Offset: w.rng.Float64() * 900},
		{Depth: 0.45, Amplitude: 18, Wavelength: 620, Offset: w.rng.Float64() * 620},
		{Depth: 0.7, Amplitude: 11, Wavelength: 410, Offset: w.rng.Float64() * 410},
	}
}

func (w *World) generateItems() {
	w.Items = make([]WorldItem, w.cfg.Items.Count)
	for i := range w.Items {
		w.Items[i] = WorldItem{
			Type:      w.rng.Intn(TypeCount()),
			Condition: w.rollCondition(),
			Pos:       w.placeClear(),
			Active:    true,
		}
	}
}

// rollCondition returns a fresh random condition in
// [ConditionMin, ConditionMin+ConditionSpan].
func (w *World) rollCondition() float64 {
	return w.cfg.Items.ConditionMin + w.rng.Float64()*w.cfg.Items.ConditionSpan
}

// maxPlaceTries caps the rejection-sampling loop. With the shipped
// exclusion-zone-to-world ratio the loop terminates in a handful of tries;
// the cap only matters for degenerate configs.
const maxPlaceTries = 64

// placeClear picks a uniform random point inside the edge margin,
// rejecting points within the center exclusion square.
func (w *World) placeClear() core.Vec2 {
	m := w.cfg.World.EdgeMargin
	cx := w.cfg.World.Width / 2
	cy := w.cfg.World.Height / 2
	half := w.cfg.World.CenterClear

	var p core.Vec2
	for try := 0; try < maxPlaceTries; try++ {
		p = core.V(
			m+w.rng.Float64()*(w.cfg.World.Width-2*m),
			m+w.rng.Float64()*(w.cfg.World.Height-2*m),
		)
		dx := p.X - cx
		dy := p.Y - cy
		if dx < -half || dx > half || dy < -half || dy > half {
			return p
		}
	}
	return p
}
