package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dustward/internal/core"
	"dustward/internal/game"
	"dustward/internal/registry"
	"dustward/internal/storage"
)

// Model is the Bubble Tea model for a Dustward session.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	frame     core.InputFrame
	started   time.Time
	runSaved  bool
	quitting  bool
}

// NewModel creates a Bubble Tea model for the given game.
func NewModel(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:      g,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		frame:     core.NewInputFrame(),
		started:   time.Now(),
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.keyMapper.MapMouse(msg, m.config.ScreenW, m.config.ScreenH, &m.frame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKey(msg, &m.frame) {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The world view scales with
// the terminal, so the simulation keeps running untouched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.keyMapper.Tick(&m.frame)
	m.frame.DT = 1.0 / float64(m.config.TickRate)

	m.game.Step(m.frame)

	m.frame.ClearEdges()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the expedition summary. Safe to call more than once;
// only the first call writes.
func (m *Model) saveRun() {
	if m.runSaved || m.store == nil {
		return
	}
	g, ok := m.game.(*game.Game)
	if !ok {
		return
	}

	stats := g.World().Stats
	if stats.ItemsScavenged == 0 && stats.TokensEarned == 0 {
		return // Nothing worth recording
	}

	//nolint:errcheck // Best-effort save on the way out
	m.store.SaveRun(storage.RunEntry{
		GameID:       m.game.ID(),
		Tokens:       stats.TokensEarned,
		Scavenged:    stats.ItemsScavenged,
		Sold:         stats.ItemsSold,
		Repairs:      stats.Repairs,
		Logs:         g.World().Gate.LogsUnlocked,
		DurationSecs: int(time.Since(m.started).Seconds()),
	})
	m.runSaved = true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".dustward", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
