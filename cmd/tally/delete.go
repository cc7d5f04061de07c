package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/model"
)

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <record-id>",
		Short: "Delete a record",
		Long:  `Delete a single record by id. Record ids are shown by 'tally list'.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			led, err := initLedger()
			if err != nil {
				return err
			}

			// Show the record being deleted
			rec, err := led.Record(ctx, id)
			if err != nil {
				return err
			}

			sign := "+"
			if rec.Type == model.RecordTypeExpense {
				sign = "-"
			}
			fmt.Printf("%s %s%s %s on %s %s\n", //nolint:forbidigo // User-facing output
				rec.Type, sign, formatter().Format(rec.Amount), rec.Category, rec.Date,
				cli.SubtleStyle.Render(rec.Note))

			// Confirm deletion
			if !force {
				ok, err := cli.Confirm(os.Stdin, os.Stdout, "Delete this record?")
				if err != nil {
					return fmt.Errorf("failed to get confirmation: %w", err)
				}
				if !ok {
					fmt.Println("Deletion cancelled.") //nolint:forbidigo // User-facing output
					return nil
				}
			}

			if err := led.DeleteRecord(ctx, id); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted record %s", id))) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}
