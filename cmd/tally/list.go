package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/ledger"
	"tally/internal/model"
	"tally/internal/report"
)

func listCmd() *cobra.Command {
	var (
		month    string
		category string
		typeName string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Long:  `List records newest first, optionally filtered by month, category, or type.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			filter := ledger.Filter{
				Month:    month,
				Category: model.Slugify(category),
			}
			if typeName != "" {
				typ, err := model.ParseRecordType(typeName)
				if err != nil {
					return err
				}
				filter.Type = typ
			}

			records := led.Records(cmd.Context(), filter)
			if len(records) == 0 {
				fmt.Println(cli.FormatInfo("No records found. Use 'tally add' to create one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fm := formatter()

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			// Header
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.BoldStyle.Render("Date"),
				cli.BoldStyle.Render("Type"),
				cli.BoldStyle.Render("Category"),
				cli.BoldStyle.Render("Amount"),
				cli.BoldStyle.Render("Note"),
				cli.BoldStyle.Render("ID"))

			for _, r := range records {
				amount := fm.Format(r.Amount)
				if r.Type == model.RecordTypeExpense {
					amount = cli.ExpenseStyle.Render("-" + amount)
				} else {
					amount = cli.IncomeStyle.Render("+" + amount)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					r.Date, r.Type, r.Category, amount, r.Note, cli.SubtleStyle.Render(r.ID))
			}

			if err := w.Flush(); err != nil {
				return fmt.Errorf("failed to flush table: %w", err)
			}

			balance := report.Balance(records)
			fmt.Printf("\n%s %s\n", cli.BoldStyle.Render("Balance:"), fm.Format(balance)) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "filter by month (YYYY-MM)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter by category id or name")
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "filter by type (income, expense)")

	return cmd
}
