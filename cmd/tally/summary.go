package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/ledger"
	"tally/internal/money"
	"tally/internal/report"
)

func summaryCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show a month summary",
		Long: `Show income, expense, balance, and the top expense category for one
month. Defaults to the most recent month that has records.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, err := initLedger()
			if err != nil {
				return err
			}

			if month == "" {
				month = latestMonth(ctx, led)
			}

			records := led.Records(ctx, ledger.Filter{})
			s := report.Summarize(records, led.Categories(ctx), month)

			fm := formatter()
			var b strings.Builder
			fmt.Fprintf(&b, "Income:   %s\n", cli.IncomeStyle.Render(fm.Format(s.Income)))
			fmt.Fprintf(&b, "Expense:  %s\n", cli.ExpenseStyle.Render(fm.Format(s.Expense)))
			fmt.Fprintf(&b, "Balance:  %s\n", cli.BoldStyle.Render(fm.Format(s.Balance())))
			if s.Top != nil {
				fmt.Fprintf(&b, "Top expense: %s (%s)", s.Top.Label, fm.Format(s.Top.Amount))
			} else {
				fmt.Fprintf(&b, "Top expense: %s", money.Placeholder)
			}

			fmt.Println(cli.RenderBox("Summary "+month, b.String())) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month to summarize (YYYY-MM)")

	return cmd
}
