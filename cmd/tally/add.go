package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/ledger"
	"tally/internal/model"
	"tally/internal/report"
)

func addCmd() *cobra.Command {
	var (
		recordType string
		category   string
		date       string
		note       string
	)

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record an income or expense",
		Long: `Record a single transaction. Amounts are positive decimals; the type
flag decides whether it counts as income or expense.`,
		Example: `  # A quick expense in the food category
  tally add 12.50 --category food

  # Salary arriving on a specific date
  tally add 2500 --type income --category salary --date 2024-03-01 --note "March salary"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			rec, err := led.AddRecord(cmd.Context(), ledger.AddRecordInput{
				Type:     recordType,
				Amount:   args[0],
				Category: category,
				Date:     date,
				Note:     note,
			})
			if err != nil {
				return err
			}

			sign := "+"
			if rec.Type == model.RecordTypeExpense {
				sign = "-"
			}
			msg := fmt.Sprintf("Recorded %s%s in %s on %s (id: %s)",
				sign, formatter().Format(rec.Amount), rec.Category, rec.Date, rec.ID)
			fmt.Println(cli.FormatSuccess(msg)) //nolint:forbidigo // User-facing output

			balance := report.Balance(led.Records(cmd.Context(), ledger.Filter{}))
			fmt.Printf("%s %s\n", cli.BoldStyle.Render("Balance:"), formatter().Format(balance)) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().StringVarP(&recordType, "type", "t", "expense", "record type (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category id or name")
	cmd.Flags().StringVarP(&date, "date", "d", model.Today().String(), "date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
