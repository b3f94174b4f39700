package compare

import (
	"cloud.google.com/go/civil"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult summarizes one lease term for side-by-side comparison
type ComparisonResult struct {
	Term   domain.Term               `json:"term"`
	Result *domain.CalculationResult `json:"-"`

	// Key Metrics
	RuleDescription    string           `json:"ruleDescription"`
	LeaseMonths        int              `json:"leaseMonths"`
	FirstMonthRent     decimal.Decimal  `json:"firstMonthRent"`
	FinalLegalRent     decimal.Decimal  `json:"finalLegalRent"`
	TotalLegalRent     decimal.Decimal  `json:"totalLegalRent"`     // sum of legal rent over the lease
	AverageMonthlyRent decimal.Decimal  `json:"averageMonthlyRent"` // rounded to cents
	FinalTenantPay     *decimal.Decimal `json:"finalTenantPay,omitempty"`

	// Comparison to Base
	FinalRentDiffFromBase decimal.Decimal `json:"finalRentDiffFromBase"`
	FinalRentPctFromBase  decimal.Decimal `json:"finalRentPctFromBase"`
	AverageDiffFromBase   decimal.Decimal `json:"averageDiffFromBase"`
}

// ComparisonSet compares the renewal terms available for one lease
type ComparisonSet struct {
	LeaseStart         civil.Date         `json:"leaseStart"`
	BaseRent           decimal.Decimal    `json:"baseRent"`
	OrderNumber        int                `json:"orderNumber"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Notes              []string           `json:"notes"`
}

// All returns the base result followed by the alternatives
func (cs *ComparisonSet) All() []ComparisonResult {
	all := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		all = append(all, *cs.BaseResult)
	}
	return append(all, cs.AlternativeResults...)
}

// newComparisonResult derives the comparison metrics from a calculation
func newComparisonResult(r *domain.CalculationResult) ComparisonResult {
	cr := ComparisonResult{
		Term:            r.Term,
		Result:          r,
		RuleDescription: r.RuleDescription,
		LeaseMonths:     r.Term.Months(),
		FinalLegalRent:  r.FinalLegalRent,
	}

	if r.HasSchedule() {
		cr.FirstMonthRent = r.MonthlyBreakdown[0].LegalRent
		total := decimal.Zero
		for _, e := range r.MonthlyBreakdown {
			total = total.Add(e.LegalRent)
		}
		cr.TotalLegalRent = total
	} else {
		cr.FirstMonthRent = r.FinalLegalRent
		cr.TotalLegalRent = r.FinalLegalRent.Mul(decimal.NewFromInt(int64(cr.LeaseMonths)))
	}
	cr.AverageMonthlyRent = domain.Round2(cr.TotalLegalRent.Div(decimal.NewFromInt(int64(cr.LeaseMonths))))

	if r.Preferential != nil {
		pay := r.Preferential.FinalTenantPay
		cr.FinalTenantPay = &pay
	}
	return cr
}
