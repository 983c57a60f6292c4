package game

import (
	"dustward/internal/config"
	"dustward/internal/core"
	"dustward/internal/registry"
)

// Game adapts the world simulation to the platform's frame-driven
// interface. Two variants register: the standard game and a storm-free
// one for players who want a calmer desert.
type Game struct {
	id    string
	title string
	cfg   config.WorldConfig
	world *World
}

// New creates the standard variant with the given tuning.
func New(cfg config.WorldConfig) *Game {
	return &Game{
		id:    "dustward",
		title: "Dustward",
		cfg:   cfg,
		world: NewWorld(cfg),
	}
}

// NewClearSkies creates the storm-free variant.
func NewClearSkies(cfg config.WorldConfig) *Game {
	cfg.Storm.Enabled = false
	return &Game{
		id:    "dustward_clearskies",
		title: "Dustward: Clear Skies",
		cfg:   cfg,
		world: NewWorld(cfg),
	}
}

// SetConfig replaces the world tuning. Takes effect on the next Reset.
func (g *Game) SetConfig(cfg config.WorldConfig) {
	if g.id == "dustward_clearskies" {
		cfg.Storm.Enabled = false
	}
	g.cfg = cfg
}

// World exposes the underlying simulation for run summaries and tests.
func (g *Game) World() *World {
	return g.world
}

func (g *Game) ID() string {
	return g.id
}

func (g *Game) Title() string {
	return g.title
}

// Reset regenerates the world from the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.world = NewWorld(g.cfg)
	g.world.Reset(runtime.Seed)
}

// Step advances the world one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.world.Step(in)
	return core.StepResult{State: g.State()}
}

// Render draws the current frame.
func (g *Game) Render(dst *core.Screen) {
	g.world.Render(dst)
}

// State reports the session state. Tokens earned over the run serve as
// the score; the world has no fail state, so GameOver stays false.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.world.Stats.TokensEarned,
	}
}

func init() {
	registry.Register("dustward", func() registry.Game {
		return New(config.DefaultWorldConfig())
	})
	registry.Register("dustward_clearskies", func() registry.Game {
		return NewClearSkies(config.DefaultWorldConfig())
	})
}
