package compare

import (
	"fmt"

	"github.com/rgehrsitz/rgbcalc/internal/calculation"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/rgehrsitz/rgbcalc/internal/output"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CompareEngine prices every lease term for a renewal against the same order
type CompareEngine struct {
	Calc *calculation.Calculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calc *calculation.Calculator) *CompareEngine {
	return &CompareEngine{Calc: calc}
}

// Compare calculates the 1-year renewal as the base and the 2-year renewal as the
// alternative. The request's own term is ignored. ok is false when no order
// covers the lease start.
func (ce *CompareEngine) Compare(req domain.CalculationRequest) (*ComparisonSet, bool) {
	var results []*domain.CalculationResult
	for _, term := range []domain.Term{domain.OneYear, domain.TwoYear} {
		r := req
		r.Term = term
		result, ok := ce.Calc.Calculate(r)
		if !ok {
			return nil, false
		}
		results = append(results, &result)
	}

	base := newComparisonResult(results[0])
	compSet := &ComparisonSet{
		LeaseStart:  req.LeaseStart,
		BaseRent:    req.BaseRent,
		OrderNumber: results[0].MatchedOrderNumber,
		BaseResult:  &base,
	}

	for _, r := range results[1:] {
		alt := newComparisonResult(r)
		alt.FinalRentDiffFromBase = alt.FinalLegalRent.Sub(base.FinalLegalRent)
		if base.FinalLegalRent.IsPositive() {
			alt.FinalRentPctFromBase = domain.Round2(alt.FinalRentDiffFromBase.Mul(hundred).Div(base.FinalLegalRent))
		}
		alt.AverageDiffFromBase = alt.AverageMonthlyRent.Sub(base.AverageMonthlyRent)
		compSet.AlternativeResults = append(compSet.AlternativeResults, alt)
	}

	compSet.Notes = notes(compSet)
	return compSet, true
}

func notes(cs *ComparisonSet) []string {
	var out []string
	for _, alt := range cs.AlternativeResults {
		switch {
		case alt.AverageDiffFromBase.IsNegative():
			out = append(out, fmt.Sprintf("%s lease averages %s less per month than the %s lease",
				alt.Term, output.FormatCurrency(alt.AverageDiffFromBase.Abs()), cs.BaseResult.Term))
		case alt.AverageDiffFromBase.IsPositive():
			out = append(out, fmt.Sprintf("%s lease averages %s more per month than the %s lease",
				alt.Term, output.FormatCurrency(alt.AverageDiffFromBase), cs.BaseResult.Term))
		default:
			out = append(out, fmt.Sprintf("%s and %s leases average the same monthly rent", alt.Term, cs.BaseResult.Term))
		}

		switch {
		case alt.Result != nil && alt.Result.RuleKind == domain.RuleSplit:
			out = append(out, fmt.Sprintf("%s lease rent steps up after year 1, to %s",
				alt.Term, output.FormatCurrency(alt.FinalLegalRent)))
		case !alt.FirstMonthRent.Equal(alt.FinalLegalRent):
			out = append(out, fmt.Sprintf("%s lease rent steps up after month %d, to %s",
				alt.Term, monthsAtFirstRent(alt), output.FormatCurrency(alt.FinalLegalRent)))
		default:
			out = append(out, fmt.Sprintf("%s lease holds the legal rent at %s for %d months",
				alt.Term, output.FormatCurrency(alt.FinalLegalRent), alt.LeaseMonths))
		}
	}
	return out
}

func monthsAtFirstRent(cr ComparisonResult) int {
	n := 0
	for _, e := range cr.Result.MonthlyBreakdown {
		if !e.LegalRent.Equal(cr.FirstMonthRent) {
			break
		}
		n++
	}
	return n
}
