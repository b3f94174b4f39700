package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Term",
		"Type",
		"Rule",
		"Lease Months",
		"First Month Rent",
		"Final Legal Rent",
		"Average Monthly Rent",
		"Total Legal Rent",
		"Final Tenant Pay",
		"Final Rent Diff from Base",
		"Final Rent % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, termType string) []string {
	tenant := ""
	if result.FinalTenantPay != nil {
		tenant = result.FinalTenantPay.StringFixed(2)
	}
	return []string{
		result.Term.String(),
		termType,
		result.RuleDescription,
		strconv.Itoa(result.LeaseMonths),
		result.FirstMonthRent.StringFixed(2),
		result.FinalLegalRent.StringFixed(2),
		result.AverageMonthlyRent.StringFixed(2),
		result.TotalLegalRent.StringFixed(2),
		tenant,
		result.FinalRentDiffFromBase.StringFixed(2),
		result.FinalRentPctFromBase.StringFixed(2),
	}
}
