package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tally/internal/ledger"
	"tally/internal/model"
	"tally/internal/money"
	"tally/internal/report"
)

// View represents the current right-hand pane.
type View int

const (
	ViewChart View = iota
	ViewBreakdown
)

// Config holds the dashboard dependencies.
type Config struct {
	Ledger *ledger.Ledger
	Symbol string
}

// Model holds the dashboard state.
type Model struct {
	cfg        Config
	theme      Theme
	keymap     KeyMap
	help       help.Model
	money      money.Formatter
	records    []model.Record
	categories []model.Category
	months     []string
	monthIdx   int
	view       View
	scroll     int
	width      int
	height     int
	ready      bool
	quitting   bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	symbol := cfg.Symbol
	if symbol == "" {
		symbol = money.Default.Symbol
	}

	return Model{
		cfg:    cfg,
		theme:  DefaultTheme(),
		keymap: DefaultKeyMap(),
		help:   help.New(),
		money:  money.Formatter{Symbol: symbol},
		view:   ViewChart,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.loadData()
}

// loadData fetches a snapshot of the ledger.
func (m Model) loadData() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return dataLoadedMsg{
			records:    m.cfg.Ledger.Records(ctx, ledger.Filter{}),
			categories: m.cfg.Ledger.Categories(ctx),
		}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case dataLoadedMsg:
		m.records = msg.records
		m.categories = msg.categories
		m.months = report.MonthOptions(msg.records)
		if m.monthIdx >= len(m.months) {
			m.monthIdx = 0
		}
		m.scroll = 0
		m.ready = true
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit), key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.PrevMonth):
		if m.monthIdx < len(m.months)-1 {
			m.monthIdx++
			m.scroll = 0
		}

	case key.Matches(msg, m.keymap.NextMonth):
		if m.monthIdx > 0 {
			m.monthIdx--
			m.scroll = 0
		}

	case key.Matches(msg, m.keymap.Up):
		if m.scroll > 0 {
			m.scroll--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.scroll < m.maxScroll() {
			m.scroll++
		}

	case key.Matches(msg, m.keymap.ToggleView):
		if m.view == ViewChart {
			m.view = ViewBreakdown
		} else {
			m.view = ViewChart
		}

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadData()
	}

	return m, nil
}

// currentMonth returns the month key on display, or "" with no data.
func (m Model) currentMonth() string {
	if len(m.months) == 0 {
		return ""
	}
	return m.months[m.monthIdx]
}

// monthRecords returns the displayed month's records, newest first.
func (m Model) monthRecords() []model.Record {
	month := m.currentMonth()
	if month == "" {
		return nil
	}

	var out []model.Record
	for _, r := range m.records {
		if r.Date.MonthKey() == month {
			out = append(out, r)
		}
	}
	return out
}

func (m Model) maxScroll() int {
	n := len(m.monthRecords()) - m.recordRows()
	if n < 0 {
		return 0
	}
	return n
}
