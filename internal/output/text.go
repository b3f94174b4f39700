package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
)

// TextFormatter renders the short summary placed on the clipboard
type TextFormatter struct{}

func (TextFormatter) Name() string { return "text" }

func (TextFormatter) Format(r *domain.CalculationResult) ([]byte, error) {
	return []byte(Summary(r)), nil
}

// Summary is a compact plain-text description of a renewal
func Summary(r *domain.CalculationResult) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s, %s renewal starting %s\n", r.OrderTitle(), r.Term, r.LeaseStart)
	fmt.Fprintf(&sb, "Rule: %s\n", r.RuleDescription)
	fmt.Fprintf(&sb, "Current legal rent: %s\n", FormatCurrency(r.BaseRent))
	for _, step := range r.IncreaseSteps {
		fmt.Fprintf(&sb, "%s: %s (%s)\n", step.PeriodLabel, FormatCurrency(step.NewRent), FormatPercentage(step.Percent))
	}
	fmt.Fprintf(&sb, "New legal rent: %s\n", FormatCurrency(r.FinalLegalRent))
	fmt.Fprintf(&sb, "Total increase: %s (%s)\n", FormatSignedCurrency(r.TotalIncrease), FormatPercentage(r.TotalIncreasePercent))

	if p := r.Preferential; p != nil {
		if p.Year1TenantPay != nil {
			fmt.Fprintf(&sb, "Tenant pays (year 1): %s\n", FormatCurrency(*p.Year1TenantPay))
			fmt.Fprintf(&sb, "Tenant pays (year 2): %s\n", FormatCurrency(p.FinalTenantPay))
		} else {
			fmt.Fprintf(&sb, "Tenant pays: %s\n", FormatCurrency(p.FinalTenantPay))
		}
	}
	return sb.String()
}
