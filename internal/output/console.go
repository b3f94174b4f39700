package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
)

// ConsoleFormatter renders the plain-text report printed by the CLI
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(r *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("RENT GUIDELINES RENEWAL CALCULATION\n")
	buf.WriteString(strings.Repeat("=", 60) + "\n")
	fmt.Fprintf(&buf, "Lease Start:       %s (%s lease)\n", r.LeaseStart, r.Term)
	fmt.Fprintf(&buf, "Governing Order:   %s (%s to %s)\n", r.OrderTitle(), r.EffectiveFrom, r.EffectiveTo)
	fmt.Fprintf(&buf, "Increase Rule:     %s\n", r.RuleDescription)
	fmt.Fprintf(&buf, "Current Rent:      %s\n", FormatCurrency(r.BaseRent))
	buf.WriteString("\n")

	buf.WriteString("INCREASES\n")
	buf.WriteString(strings.Repeat("-", 60) + "\n")
	for _, step := range r.IncreaseSteps {
		fmt.Fprintf(&buf, "  %-12s %12s -> %-12s %8s  %s\n",
			step.PeriodLabel,
			FormatCurrency(step.OldRent),
			FormatCurrency(step.NewRent),
			FormatPercentage(step.Percent),
			FormatSignedCurrency(step.DollarDelta))
	}
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "New Legal Rent:    %s\n", FormatCurrency(r.FinalLegalRent))
	fmt.Fprintf(&buf, "Total Increase:    %s (%s)\n", FormatSignedCurrency(r.TotalIncrease), FormatPercentage(r.TotalIncreasePercent))

	if r.Preferential != nil && r.PreferentialRent != nil {
		buf.WriteString("\n")
		buf.WriteString("PREFERENTIAL RENT\n")
		buf.WriteString(strings.Repeat("-", 60) + "\n")
		fmt.Fprintf(&buf, "  Currently Paying:   %s\n", FormatCurrency(*r.PreferentialRent))
		if r.Preferential.Year1TenantPay != nil {
			fmt.Fprintf(&buf, "  Year 1 Tenant Pays: %s\n", FormatCurrency(*r.Preferential.Year1TenantPay))
		}
		fmt.Fprintf(&buf, "  Tenant Pays:        %s\n", FormatCurrency(r.Preferential.FinalTenantPay))
	}

	if r.HasSchedule() {
		buf.WriteString("\n")
		buf.WriteString("MONTHLY SCHEDULE\n")
		buf.WriteString(strings.Repeat("-", 60) + "\n")
		fmt.Fprintf(&buf, "  %-8s %-12s %14s %14s\n", "Months", "Period", "Legal Rent", "Tenant Pays")
		for _, p := range SummarizeSchedule(r.MonthlyBreakdown) {
			fmt.Fprintf(&buf, "  %-8s %-12s %14s %14s\n", p.Months(), p.Label, FormatCurrency(p.LegalRent), FormatCurrency(p.TenantPays))
		}
	}

	return buf.Bytes(), nil
}
