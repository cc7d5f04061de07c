package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/chart"
	"tally/internal/cli"
	"tally/internal/ledger"
	"tally/internal/report"
)

func chartCmd() *cobra.Command {
	var (
		month  string
		mode   string
		out    string
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render a month chart as SVG",
		Long: `Render one month of activity as an SVG chart.

Bar mode compares the month's income and expense totals; pie mode breaks
its expenses down by category.`,
		Example: `  # Bar chart for the latest month, straight to a file
  tally chart --out march.svg

  # Expense breakdown for a specific month on stdout
  tally chart --mode pie --month 2024-03`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			led, err := initLedger()
			if err != nil {
				return err
			}

			if month == "" {
				month = latestMonth(ctx, led)
			}

			renderer := newRenderer(width, height)

			var buf bytes.Buffer
			surface := chart.NewSVG(&buf, float64(renderer.Width()), float64(renderer.Height()))

			records := led.Records(ctx, ledger.Filter{})
			cats := led.Categories(ctx)

			inMonth := 0
			for _, r := range records {
				if r.Date.MonthKey() == month {
					inMonth++
				}
			}
			if inMonth == 0 {
				// Keep stdout clean for piped SVG output
				fmt.Fprintln(os.Stderr, cli.FormatWarning(fmt.Sprintf("No records for %s", month)))
			}

			switch mode {
			case "bar":
				s := report.Summarize(records, cats, month)
				renderer.Bars(surface, s.Income, s.Expense)
			case "pie":
				renderer.Pie(surface, report.ExpenseTotals(records, cats, month))
			default:
				return fmt.Errorf("invalid chart mode: %s (want bar or pie)", mode)
			}
			surface.Close()

			if out == "" || out == "-" {
				_, err := os.Stdout.Write(buf.Bytes())
				return err
			}

			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote %s chart for %s to %s", mode, month, out))) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "month to chart (YYYY-MM)")
	cmd.Flags().StringVar(&mode, "mode", "bar", "chart mode (bar, pie)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&width, "width", 0, "canvas width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "canvas height in pixels")

	return cmd
}
