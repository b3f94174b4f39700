package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
)

// CSVFormatter writes the monthly schedule when the rent changes during the
// lease, and the increase steps otherwise
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(r *domain.CalculationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var rows [][]string
	if r.HasSchedule() {
		rows = append(rows, []string{"Order", "Month", "Period", "LegalRent", "TenantPays"})
		for _, e := range r.MonthlyBreakdown {
			rows = append(rows, []string{
				strconv.Itoa(r.MatchedOrderNumber),
				strconv.Itoa(e.MonthIndex),
				e.PeriodLabel,
				e.LegalRent.StringFixed(2),
				e.TenantPays.StringFixed(2),
			})
		}
	} else {
		rows = append(rows, []string{"Order", "Period", "OldRent", "NewRent", "Percent", "Increase", "TenantPays"})
		tenant := ""
		if r.Preferential != nil {
			tenant = r.Preferential.FinalTenantPay.StringFixed(2)
		}
		for _, step := range r.IncreaseSteps {
			rows = append(rows, []string{
				strconv.Itoa(r.MatchedOrderNumber),
				step.PeriodLabel,
				step.OldRent.StringFixed(2),
				step.NewRent.StringFixed(2),
				step.Percent.String(),
				step.DollarDelta.StringFixed(2),
				tenant,
			})
		}
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
