package output

import (
	"strconv"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// SchedulePeriod is a run of consecutive months billed at the same rents
type SchedulePeriod struct {
	Label      string
	FromMonth  int
	ToMonth    int
	LegalRent  decimal.Decimal
	TenantPays decimal.Decimal
}

// Months renders the month span, e.g. "1-12" or "7"
func (p SchedulePeriod) Months() string {
	if p.FromMonth == p.ToMonth {
		return strconv.Itoa(p.FromMonth)
	}
	return strconv.Itoa(p.FromMonth) + "-" + strconv.Itoa(p.ToMonth)
}

// SummarizeSchedule collapses a monthly breakdown into its periods
func SummarizeSchedule(entries []domain.MonthlyEntry) []SchedulePeriod {
	var periods []SchedulePeriod
	for _, e := range entries {
		n := len(periods)
		if n > 0 {
			last := &periods[n-1]
			if last.Label == e.PeriodLabel && last.LegalRent.Equal(e.LegalRent) && last.TenantPays.Equal(e.TenantPays) {
				last.ToMonth = e.MonthIndex
				continue
			}
		}
		periods = append(periods, SchedulePeriod{
			Label:      e.PeriodLabel,
			FromMonth:  e.MonthIndex,
			ToMonth:    e.MonthIndex,
			LegalRent:  e.LegalRent,
			TenantPays: e.TenantPays,
		})
	}
	return periods
}
