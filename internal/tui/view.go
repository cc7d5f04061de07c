package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tally/internal/model"
	"tally/internal/money"
	"tally/internal/report"
)

const (
	barArea          = 24
	breakdownBarArea = 12
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.theme.Muted.Render("Loading records...")
	}

	if len(m.months) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderHeader(),
			"",
			m.theme.Muted.Render("No records yet. Add one with 'tally add'."),
			"",
			m.help.View(m.keymap),
		)
	}

	summary := report.Summarize(m.records, m.categories, m.currentMonth())

	var pane string
	if m.view == ViewChart {
		pane = m.renderBars(summary)
	} else {
		pane = m.renderBreakdown()
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top,
		m.theme.Box.Render(m.renderSummary(summary)),
		m.theme.Box.Render(pane),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		top,
		m.renderRecords(),
		"",
		m.help.View(m.keymap),
	)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("💰 tally")
	if len(m.months) == 0 {
		return title
	}

	return fmt.Sprintf("%s  %s %s",
		title,
		m.theme.Bold.Render(monthTitle(m.currentMonth())),
		m.theme.Muted.Render(fmt.Sprintf("(%d of %d)", m.monthIdx+1, len(m.months))))
}

func (m Model) renderSummary(s report.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Income:   %s\n", m.theme.Income.Render(m.money.Format(s.Income)))
	fmt.Fprintf(&b, "Expense:  %s\n", m.theme.Expense.Render(m.money.Format(s.Expense)))
	fmt.Fprintf(&b, "Balance:  %s\n", m.theme.Bold.Render(m.money.Format(s.Balance())))
	if s.Top != nil {
		fmt.Fprintf(&b, "Top:      %s (%s)", s.Top.Label, m.money.Format(s.Top.Amount))
	} else {
		fmt.Fprintf(&b, "Top:      %s", money.Placeholder)
	}
	return b.String()
}

// renderBars draws income and expense as proportional block bars sharing
// one scale.
func (m Model) renderBars(s report.Summary) string {
	in := s.Income.InexactFloat64()
	ex := s.Expense.InexactFloat64()
	maxVal := math.Max(math.Max(in, ex), 1)

	line := func(label string, v float64, style lipgloss.Style) string {
		bar := style.Render(progressBar(v/maxVal, barArea))
		return fmt.Sprintf("%-8s %s %s", label, bar, m.money.FormatFloat(v))
	}

	return strings.Join([]string{
		line("Income", in, m.theme.Income),
		line("Expense", ex, m.theme.Expense),
	}, "\n")
}

// renderBreakdown draws one proportional bar per expense category, scaled
// to the month's largest total and colored to match the pie palette.
func (m Model) renderBreakdown() string {
	totals := report.ExpenseTotals(m.records, m.categories, m.currentMonth())
	if len(totals) == 0 {
		return m.theme.Muted.Render("No expenses this month")
	}

	if len(totals) > 8 {
		totals = totals[:8]
	}

	maxAmount := totals[0].Amount.InexactFloat64()

	lines := make([]string, 0, len(totals))
	for i, t := range totals {
		bar := progressBar(t.Amount.InexactFloat64()/maxAmount, breakdownBarArea)

		lines = append(lines, fmt.Sprintf("%-14s %s %s",
			t.Label, m.theme.swatch(i).Render(bar), m.money.Format(t.Amount)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderRecords() string {
	records := m.monthRecords()

	lines := []string{
		m.theme.Bold.Render(fmt.Sprintf("Records (%d)", len(records))),
	}

	end := m.scroll + m.recordRows()
	if end > len(records) {
		end = len(records)
	}

	for _, r := range records[m.scroll:end] {
		sign := "+"
		style := m.theme.Income
		if r.Type == model.RecordTypeExpense {
			sign = "-"
			style = m.theme.Expense
		}

		lines = append(lines, fmt.Sprintf("  %s  %-12s %s  %s",
			r.Date,
			r.Category,
			style.Render(sign+m.money.Format(r.Amount)),
			m.theme.Muted.Render(r.Note)))
	}

	if end < len(records) {
		lines = append(lines, m.theme.Muted.Render(fmt.Sprintf("  … %d more", len(records)-end)))
	}

	return strings.Join(lines, "\n")
}

// progressBar renders a filled bar of the given cell width. The ratio is
// clamped to 0-1.
func progressBar(ratio float64, width int) string {
	if width <= 0 {
		return ""
	}

	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	filled := int(ratio * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// recordRows returns how many record lines fit the current terminal.
func (m Model) recordRows() int {
	if m.height == 0 {
		return 8
	}

	rows := m.height - 14
	if rows < 3 {
		return 3
	}
	return rows
}

func monthTitle(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("January 2006")
}
