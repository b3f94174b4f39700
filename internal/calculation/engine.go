package calculation

import (
	"fmt"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/rgehrsitz/rgbcalc/internal/guidelines"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Calculator computes renewal rents against a guideline table
type Calculator struct {
	Table  *guidelines.Table
	Logger Logger
}

// NewCalculator creates a calculator over the given table, or the bundled table when nil
func NewCalculator(table *guidelines.Table) *Calculator {
	if table == nil {
		table = guidelines.Default()
	}
	return &Calculator{
		Table:  table,
		Logger: NopLogger{},
	}
}

// SetLogger replaces the logger; nil installs a no-op logger
func (c *Calculator) SetLogger(l Logger) {
	if l == nil {
		c.Logger = NopLogger{}
		return
	}
	c.Logger = l
}

// Calculate resolves the governing order for the request and applies its rule.
// The request is assumed valid (positive rent, preferential not above rent).
// ok is false when no order covers the lease start date.
func (c *Calculator) Calculate(req domain.CalculationRequest) (result domain.CalculationResult, ok bool) {
	match, ok := c.Table.Find(req.LeaseStart, req.Term)
	if !ok {
		c.Logger.Infof("no guideline order covers lease start %s", req.LeaseStart)
		return domain.CalculationResult{}, false
	}
	c.Logger.Debugf("lease start %s matched order %d, %s rule %s",
		req.LeaseStart, match.Order.Number, req.Term, match.Rule.Describe())

	result = domain.CalculationResult{
		MatchedOrderNumber: match.Order.Number,
		EffectiveFrom:      match.Order.EffectiveFrom,
		EffectiveTo:        match.Order.EffectiveTo,
		LeaseStart:         req.LeaseStart,
		Term:               req.Term,
		RuleKind:           match.Rule.Kind(),
		RuleDescription:    match.Rule.Describe(),
		BaseRent:           req.BaseRent,
		PreferentialRent:   copyDecimal(req.PreferentialRent),
	}

	switch rule := match.Rule.(type) {
	case domain.FlatRule:
		applyFlat(&result, rule, req)
	case domain.SplitRule:
		applySplit(&result, rule, req)
	case domain.SplitByMonthRule:
		applySplitByMonth(&result, rule, req)
	default:
		panic(fmt.Sprintf("calculation: unhandled increase rule %T", match.Rule))
	}

	result.TotalIncrease = domain.Round2(result.FinalLegalRent.Sub(req.BaseRent))
	if req.BaseRent.IsPositive() {
		result.TotalIncreasePercent = domain.Round2(result.TotalIncrease.Mul(hundred).Div(req.BaseRent))
	}

	c.Logger.Debugf("order %d: legal rent %s -> %s over %d step(s)",
		result.MatchedOrderNumber, req.BaseRent.StringFixed(2), result.FinalLegalRent.StringFixed(2), len(result.IncreaseSteps))
	return result, true
}

// flat rules raise the rent once for the whole term; a preferential rent carries over unchanged
func applyFlat(result *domain.CalculationResult, rule domain.FlatRule, req domain.CalculationRequest) {
	newRent := domain.ApplyPercent(req.BaseRent, rule.Percent)

	label := "Year 1"
	if req.Term == domain.TwoYear {
		label = "Years 1-2"
	}

	result.FinalLegalRent = newRent
	result.IncreaseSteps = []domain.IncreaseStep{
		domain.NewIncreaseStep(label, req.BaseRent, newRent, rule.Percent),
	}

	if req.PreferentialRent != nil {
		result.Preferential = &domain.PreferentialOutcome{FinalTenantPay: *req.PreferentialRent}
	}
}

// split rules compound: year 2 is taken from the rounded year-1 rent
func applySplit(result *domain.CalculationResult, rule domain.SplitRule, req domain.CalculationRequest) {
	year1 := domain.ApplyPercent(req.BaseRent, rule.Year1Percent)
	year2 := domain.ApplyPercent(year1, rule.Year2PercentOnYear1Rent)

	result.FinalLegalRent = year2
	result.IncreaseSteps = []domain.IncreaseStep{
		domain.NewIncreaseStep("Year 1", req.BaseRent, year1, rule.Year1Percent),
		domain.NewIncreaseStep("Year 2", year1, year2, rule.Year2PercentOnYear1Rent),
	}

	tenantYear1, tenantYear2 := year1, year2
	if req.PreferentialRent != nil {
		tenantYear1 = domain.ApplyPercent(*req.PreferentialRent, rule.Year1Percent)
		tenantYear2 = domain.ApplyPercent(tenantYear1, rule.Year2PercentOnYear1Rent)
		y1 := tenantYear1
		result.Preferential = &domain.PreferentialOutcome{
			FinalTenantPay: tenantYear2,
			Year1TenantPay: &y1,
		}
	}

	result.MonthlyBreakdown = schedule(
		period{label: "Year 1", months: 12, legal: year1, tenant: tenantYear1},
		period{label: "Year 2", months: 12, legal: year2, tenant: tenantYear2},
	)
}

// split-by-month rules price both blocks of the lease off the same base rent; the
// second block runs to the end of the term. A preferential rent carries over unchanged.
func applySplitByMonth(result *domain.CalculationResult, rule domain.SplitByMonthRule, req domain.CalculationRequest) {
	first := domain.ApplyPercent(req.BaseRent, rule.FirstPercent)
	remaining := domain.ApplyPercent(req.BaseRent, rule.RemainingPercent)

	termMonths := req.Term.Months()
	firstLabel := monthsLabel(1, rule.FirstMonths)
	remainingLabel := monthsLabel(rule.FirstMonths+1, termMonths)

	result.FinalLegalRent = remaining
	result.IncreaseSteps = []domain.IncreaseStep{
		domain.NewIncreaseStep(firstLabel, req.BaseRent, first, rule.FirstPercent),
		domain.NewIncreaseStep(remainingLabel, req.BaseRent, remaining, rule.RemainingPercent),
	}

	tenantFirst, tenantRemaining := first, remaining
	if req.PreferentialRent != nil {
		tenantFirst, tenantRemaining = *req.PreferentialRent, *req.PreferentialRent
		result.Preferential = &domain.PreferentialOutcome{FinalTenantPay: *req.PreferentialRent}
	}

	result.MonthlyBreakdown = schedule(
		period{label: firstLabel, months: rule.FirstMonths, legal: first, tenant: tenantFirst},
		period{label: remainingLabel, months: termMonths - rule.FirstMonths, legal: remaining, tenant: tenantRemaining},
	)
}

type period struct {
	label  string
	months int
	legal  decimal.Decimal
	tenant decimal.Decimal
}

func schedule(periods ...period) []domain.MonthlyEntry {
	total := 0
	for _, p := range periods {
		total += p.months
	}

	entries := make([]domain.MonthlyEntry, 0, total)
	for _, p := range periods {
		for i := 0; i < p.months; i++ {
			entries = append(entries, domain.MonthlyEntry{
				MonthIndex:  len(entries) + 1,
				PeriodLabel: p.label,
				LegalRent:   p.legal,
				TenantPays:  p.tenant,
			})
		}
	}
	return entries
}

func monthsLabel(from, to int) string {
	if from == to {
		return fmt.Sprintf("Month %d", from)
	}
	return fmt.Sprintf("Months %d-%d", from, to)
}

func copyDecimal(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
