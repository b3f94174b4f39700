package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/rgbcalc/internal/calculation"
	"github.com/rgehrsitz/rgbcalc/internal/compare"
	"github.com/rgehrsitz/rgbcalc/internal/config"
)

func newCompareCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare",
		Short:   "Compare 1-year and 2-year renewals side by side",
		Example: "  rgbcalc compare --date 2023-10-01 --rent 1759.79 --format csv",
		Args:    cobra.NoArgs,
		Annotations: map[string]string{
			formatKeyAnnotation: "compare_format",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := config.RawRequest{Term: "1"}
			raw.LeaseStart, _ = cmd.Flags().GetString("date")
			raw.Rent, _ = cmd.Flags().GetString("rent")
			raw.Preferential, _ = cmd.Flags().GetString("preferential")

			req, err := config.NewInputParser().ParseRequest(raw)
			if err != nil {
				return err
			}

			table, err := a.table()
			if err != nil {
				return err
			}
			calc := calculation.NewCalculator(table)
			calc.SetLogger(a.log)

			compSet, ok := compare.NewCompareEngine(calc).Compare(req)
			if !ok {
				return &exitError{
					code: exitNoGuideline,
					err:  fmt.Errorf("no applicable guideline for lease starting %s", req.LeaseStart),
				}
			}

			var out string
			switch format := a.settings.CompareFormat; format {
			case "table":
				out = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			default:
				return fmt.Errorf("unsupported format %q (available: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().String("date", "", "Lease start date (YYYY-MM-DD)")
	cmd.Flags().String("rent", "", "Current legal rent, e.g. 1759.79")
	cmd.Flags().String("preferential", "", "Preferential rent the tenant currently pays (optional)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, compact, csv, json)")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("rent")
	return cmd
}
