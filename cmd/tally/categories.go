package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tally/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categories",
		Long:  `List, add, and delete the categories records are filed under.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(addCategoryCmd())
	cmd.AddCommand(deleteCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatTitle("Categories")) //nolint:forbidigo // User-facing output

			// Create table writer
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			fmt.Fprintf(w, "%s\t%s\n",
				cli.BoldStyle.Render("ID"),
				cli.BoldStyle.Render("Name"))

			for _, cat := range led.Categories(cmd.Context()) {
				fmt.Fprintf(w, "%s\t%s\n", cat.ID, cat.Name)
			}

			return w.Flush()
		},
	}
}

func addCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new category",
		Long:  `Create a category. Its id is derived from the name.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			cat, err := led.AddCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created category %q (id: %s)", cat.Name, cat.ID))) //nolint:forbidigo // User-facing output

			return nil
		},
	}
}

func deleteCategoryCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category",
		Long: `Delete a category by id or name. Deletion is refused while any record
still uses the category, and for the last remaining category.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			led, err := initLedger()
			if err != nil {
				return err
			}

			// Confirm deletion
			if !force {
				ok, err := cli.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Delete category %q?", args[0]))
				if err != nil {
					return fmt.Errorf("failed to get confirmation: %w", err)
				}
				if !ok {
					fmt.Println("Deletion cancelled.") //nolint:forbidigo // User-facing output
					return nil
				}
			}

			if err := led.DeleteCategory(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted category %q", args[0]))) //nolint:forbidigo // User-facing output

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip confirmation prompt")

	return cmd
}
