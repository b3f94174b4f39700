package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/rgbcalc/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing lease terms
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("RENEWAL TERM COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Lease Start:  %s\n", compSet.LeaseStart))
	sb.WriteString(fmt.Sprintf("Order:        #%d\n", compSet.OrderNumber))
	sb.WriteString(fmt.Sprintf("Current Rent: %s\n", output.FormatCurrency(compSet.BaseRent)))
	sb.WriteString("\n")

	termWidth := 16
	numWidth := 15

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		termWidth, "Term",
		numWidth, "First Month",
		numWidth, "Final Rent",
		numWidth, "Avg Monthly",
		numWidth, "Total Rent"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, termWidth, numWidth, true))
	}
	for i := range compSet.AlternativeResults {
		sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], termWidth, numWidth, false))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s lease (%s):\n", alt.Term, alt.RuleDescription))
			sb.WriteString(fmt.Sprintf("  Final Rent:   %s%s (%s%%)\n",
				tf.deltaSymbol(alt.FinalRentDiffFromBase),
				output.FormatCurrency(alt.FinalRentDiffFromBase),
				alt.FinalRentPctFromBase.StringFixed(2)))
			sb.WriteString(fmt.Sprintf("  Avg Monthly:  %s%s\n",
				tf.deltaSymbol(alt.AverageDiffFromBase),
				output.FormatCurrency(alt.AverageDiffFromBase)))
			if alt.FinalTenantPay != nil {
				sb.WriteString(fmt.Sprintf("  Tenant Pays:  %s\n", output.FormatCurrency(*alt.FinalTenantPay)))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Notes) > 0 {
		sb.WriteString("NOTES\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, note := range compSet.Notes {
			sb.WriteString(fmt.Sprintf("• %s\n", note))
		}
	}

	return sb.String()
}

// formatRow formats a single term row
func (tf *TableFormatter) formatRow(result *ComparisonResult, termWidth, numWidth int, isBase bool) string {
	name := result.Term.String() + " lease"
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		termWidth, name,
		numWidth, output.FormatCurrency(result.FirstMonthRent),
		numWidth, output.FormatCurrency(result.FinalLegalRent),
		numWidth, output.FormatCurrency(result.AverageMonthlyRent),
		numWidth, output.FormatCurrency(result.TotalLegalRent))
}

// deltaSymbol returns a plus sign for increases; FormatCurrency already signs decreases
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// FormatCompact creates a compact single-line summary
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	if compSet.BaseResult != nil {
		sb.WriteString(fmt.Sprintf("Base %s: %s", compSet.BaseResult.Term, output.FormatCurrency(compSet.BaseResult.FinalLegalRent)))
	}
	for _, alt := range compSet.AlternativeResults {
		sb.WriteString(fmt.Sprintf(" | %s: %s (%s%s)",
			alt.Term,
			output.FormatCurrency(alt.FinalLegalRent),
			tf.deltaSymbol(alt.FinalRentDiffFromBase),
			output.FormatCurrency(alt.FinalRentDiffFromBase)))
	}
	return sb.String()
}
