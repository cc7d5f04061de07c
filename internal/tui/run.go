package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run opens the dashboard and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Ledger == nil {
		return fmt.Errorf("ledger is required")
	}

	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("dashboard failed: %w", err)
	}

	return nil
}
