package main

import (
	"github.com/spf13/cobra"

	"tally/internal/common"
	"tally/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Browse months in a full-screen dashboard",
		Long: `Open an interactive dashboard showing a month's summary, its expense
breakdown, and its records. Use the arrow keys to move between months.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			common.SilenceLogger()

			return tui.Run(cmd.Context(), tui.Config{
				Ledger: led,
				Symbol: currencySymbol(),
			})
		},
	}
}
