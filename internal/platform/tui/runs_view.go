package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dustward/internal/registry"
	"dustward/internal/storage"
)

const maxRunsShown = 100

// RunsKeyMap defines the key bindings for the expedition browser.
type RunsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Variant key.Binding
	Sort    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Variant, k.Sort, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Variant, k.Sort, k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Variant: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch variant"),
		),
		Sort: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "recent/best"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// RunsModel is the Bubble Tea model for browsing expedition history.
type RunsModel struct {
	variants []registry.GameInfo
	cursor   int
	store    *storage.Store
	runs     []storage.RunEntry
	byBest   bool
	table    table.Model
	help     help.Model
	keys     RunsKeyMap
	width    int
	height   int
	quitting bool
}

// NewRunsModel creates an expedition browser.
func NewRunsModel(store *storage.Store, width, height int) RunsModel {
	m := RunsModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultRunsKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}

	m.table = m.createTable()
	if len(m.variants) > 0 {
		m.loadRuns()
	}
	return m
}

func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Tokens", Width: 7},
		{Title: "Found", Width: 6},
		{Title: "Sold", Width: 5},
		{Title: "Repairs", Width: 8},
		{Title: "Logs", Width: 5},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-7),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("94")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns reloads the table for the selected variant and sort order.
func (m *RunsModel) loadRuns() {
	m.runs = nil
	if m.store != nil && len(m.variants) > 0 {
		id := m.variants[m.cursor].ID
		var err error
		if m.byBest {
			m.runs, err = m.store.TopRuns(id, maxRunsShown)
		} else {
			m.runs, err = m.store.RecentRuns(id, maxRunsShown)
		}
		if err != nil {
			m.runs = nil
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			fmt.Sprintf("%d", r.Tokens),
			fmt.Sprintf("%d", r.Scavenged),
			fmt.Sprintf("%d", r.Sold),
			fmt.Sprintf("%d", r.Repairs),
			fmt.Sprintf("%d", r.Logs),
			formatDuration(r.DurationSecs),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func formatDuration(secs int) string {
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}

// Init initializes the model.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Variant):
			if len(m.variants) > 0 {
				m.cursor = (m.cursor + 1) % len(m.variants)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.Sort):
			m.byBest = !m.byBest
			m.loadRuns()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadRuns()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("180")).
		MarginBottom(1)

	title := "EXPEDITIONS"
	if len(m.variants) > 0 {
		order := "recent"
		if m.byBest {
			order = "best"
		}
		title = fmt.Sprintf("EXPEDITIONS - %s (%s)", m.variants[m.cursor].Title, order)
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	if len(m.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No expeditions recorded yet.\nHead out into the dunes!"))
	} else {
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunBrowser runs the expedition browser screen.
func RunBrowser(store *storage.Store, width, height int) error {
	model := NewRunsModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
