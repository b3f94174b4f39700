package output

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
)

// FormatGuidelineTable renders one row per order for `guidelines list`
func FormatGuidelineTable(orders []domain.RegulatoryOrder) string {
	var sb strings.Builder

	orderWidth := 6
	rangeWidth := 25
	ruleWidth := 36

	sb.WriteString(fmt.Sprintf("%-*s %-*s %-*s %s\n",
		orderWidth, "Order",
		rangeWidth, "Effective",
		ruleWidth, "1-Year Lease",
		"2-Year Lease"))
	sb.WriteString(strings.Repeat("-", 110) + "\n")

	for _, o := range orders {
		sb.WriteString(fmt.Sprintf("%-*d %-*s %-*s %s\n",
			orderWidth, o.Number,
			rangeWidth, o.EffectiveFrom.String()+" to "+o.EffectiveTo.String(),
			ruleWidth, o.OneYear.Describe(),
			o.TwoYear.Describe()))
	}
	return sb.String()
}

// FormatGuidelineOrder renders the detail view for `guidelines show`
func FormatGuidelineOrder(o domain.RegulatoryOrder) string {
	var sb strings.Builder
	sb.WriteString(o.Title() + "\n")
	sb.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&sb, "Effective From: %s\n", o.EffectiveFrom)
	fmt.Fprintf(&sb, "Effective To:   %s\n", o.EffectiveTo)
	fmt.Fprintf(&sb, "1-Year Lease:   %s (%s)\n", o.OneYear.Describe(), o.OneYear.Kind())
	fmt.Fprintf(&sb, "2-Year Lease:   %s (%s)\n", o.TwoYear.Describe(), o.TwoYear.Kind())
	return sb.String()
}
