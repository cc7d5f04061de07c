package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/ledger"
	"tally/internal/report"
)

func monthsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "months",
		Short: "List months that have records",
		Long:  `List every month with at least one record, newest first.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			months := report.MonthOptions(led.Records(cmd.Context(), ledger.Filter{}))
			if len(months) == 0 {
				fmt.Println(cli.FormatInfo("No records yet. Use 'tally add' to create one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			for _, m := range months {
				fmt.Println(m) //nolint:forbidigo // User-facing output
			}

			return nil
		},
	}
}
