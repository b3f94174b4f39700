package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rgbcalc/internal/guidelines"
	"github.com/rgehrsitz/rgbcalc/internal/output"
)

func newGuidelinesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guidelines",
		Short: "Inspect guideline tables",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the guideline orders in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := a.table()
			if err != nil {
				return err
			}
			from, to := table.Span()
			fmt.Fprint(cmd.OutOrStdout(), output.FormatGuidelineTable(table.Orders()))
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d orders covering %s to %s\n", table.Len(), from, to)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [order-number]",
		Short: "Show one guideline order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid order number %q", args[0])
			}
			table, err := a.table()
			if err != nil {
				return err
			}
			order, ok := table.Order(number)
			if !ok {
				return fmt.Errorf("guideline order %d not found", number)
			}
			fmt.Fprint(cmd.OutOrStdout(), output.FormatGuidelineOrder(order))
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate [guideline-file]",
		Short: "Validate a guideline table file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := guidelines.Load(args[0])
			if err != nil {
				return err
			}
			from, to := table.Span()
			fmt.Fprintf(cmd.OutOrStdout(), "Guideline table %s is valid (%d orders, %s to %s)\n", args[0], table.Len(), from, to)
			return nil
		},
	}

	cmd.AddCommand(listCmd, showCmd, validateCmd)
	return cmd
}
