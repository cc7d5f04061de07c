// Package tui implements the full-screen dashboard for browsing months of
// records.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tally/internal/chart"
)

// Theme defines the visual style for the dashboard.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Bold     lipgloss.Style
	Muted    lipgloss.Style
	Income   lipgloss.Style
	Expense  lipgloss.Style
	Box      lipgloss.Style
	Swatches []lipgloss.Style
}

// DefaultTheme returns the default dashboard theme. Breakdown swatches
// follow the chart palette so terminal and SVG output agree on colors.
func DefaultTheme() Theme {
	swatches := make([]lipgloss.Style, len(chart.DefaultPalette))
	for i, c := range chart.DefaultPalette {
		swatches[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
	}

	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2ECC71")),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a3a3a3")),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fafafa")),
		Bold: lipgloss.NewStyle().
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#737373")),
		Income: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2ECC71")),
		Expense: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ef4444")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#404040")).
			Padding(0, 1),
		Swatches: swatches,
	}
}

func (t Theme) swatch(rank int) lipgloss.Style {
	return t.Swatches[rank%len(t.Swatches)]
}
