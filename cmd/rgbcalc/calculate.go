package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rgbcalc/internal/calculation"
	"github.com/rgehrsitz/rgbcalc/internal/config"
	"github.com/rgehrsitz/rgbcalc/internal/output"
)

// exit code when no guideline order covers the lease start
const exitNoGuideline = 2

func newCalculateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the renewal rent for a lease",
		Example: "  rgbcalc calculate --date 2023-10-01 --term 2 --rent 1759.79\n" +
			"  rgbcalc calculate --date 2023-10-01 --term 2 --rent 1759.79 --preferential 1711.75 --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw config.RawRequest
			raw.LeaseStart, _ = cmd.Flags().GetString("date")
			raw.Term, _ = cmd.Flags().GetString("term")
			raw.Rent, _ = cmd.Flags().GetString("rent")
			raw.Preferential, _ = cmd.Flags().GetString("preferential")

			req, err := config.NewInputParser().ParseRequest(raw)
			if err != nil {
				return err
			}

			formatter := output.GetFormatterByName(a.settings.Format)
			if formatter == nil {
				return fmt.Errorf("unsupported format %q (available: %s; aliases: %s)",
					a.settings.Format,
					strings.Join(output.AvailableFormatterNames(), ", "),
					strings.Join(output.AvailableFormatAliases(), ", "))
			}

			table, err := a.table()
			if err != nil {
				return err
			}

			calc := calculation.NewCalculator(table)
			calc.SetLogger(a.log)
			result, ok := calc.Calculate(req)
			if !ok {
				return &exitError{
					code: exitNoGuideline,
					err:  fmt.Errorf("no applicable guideline for lease starting %s", req.LeaseStart),
				}
			}

			if save, _ := cmd.Flags().GetBool("save"); save {
				filename, err := output.WriteFormatted(formatter, &result, fileExtension(formatter.Name()))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			data, err := formatter.Format(&result)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().String("date", "", "Lease start date (YYYY-MM-DD)")
	cmd.Flags().String("term", "1", "Lease term in years (1 or 2)")
	cmd.Flags().String("rent", "", "Current legal rent, e.g. 1759.79")
	cmd.Flags().String("preferential", "", "Preferential rent the tenant currently pays (optional)")
	cmd.Flags().StringP("format", "f", "console", "Output format (console, text, json, yaml, csv, html)")
	cmd.Flags().Bool("save", false, "Write the report to renewal_order<N>_<term>.<ext> instead of stdout")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("rent")
	return cmd
}

func fileExtension(format string) string {
	switch format {
	case "console", "text":
		return "txt"
	default:
		return format
	}
}
