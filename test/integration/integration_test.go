package integration

import (
	"testing"

	"github.com/rgehrsitz/rgbcalc/internal/calculation"
	"github.com/rgehrsitz/rgbcalc/internal/compare"
	"github.com/rgehrsitz/rgbcalc/internal/config"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/rgehrsitz/rgbcalc/internal/guidelines"
	"github.com/rgehrsitz/rgbcalc/internal/output"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customTablePath = "../testdata/guidelines_custom.yaml"

// TestIntegrationSmokeTest runs every bundled order through the calculator and every formatter
func TestIntegrationSmokeTest(t *testing.T) {
	table := guidelines.Default()
	calc := calculation.NewCalculator(table)
	rent := decimal.RequireFromString("1500.00")

	for _, order := range table.Orders() {
		for _, term := range []domain.Term{domain.OneYear, domain.TwoYear} {
			req := domain.CalculationRequest{LeaseStart: order.EffectiveFrom, Term: term, BaseRent: rent}

			result, ok := calc.Calculate(req)
			require.True(t, ok, "order %d should cover its own start date", order.Number)
			assert.Equal(t, order.Number, result.MatchedOrderNumber)
			assert.False(t, result.FinalLegalRent.LessThan(rent), "order %d %s lowered the rent", order.Number, term)

			for _, name := range output.AvailableFormatterNames() {
				data, err := output.GetFormatterByName(name).Format(&result)
				require.NoError(t, err, "order %d %s format %s", order.Number, term, name)
				assert.NotEmpty(t, data)
			}
		}
	}
}

// TestDataConsistency checks the relationships between the fields of every result
func TestDataConsistency(t *testing.T) {
	table := guidelines.Default()
	calc := calculation.NewCalculator(table)
	pref := decimal.RequireFromString("1234.56")

	for _, order := range table.Orders() {
		for _, term := range []domain.Term{domain.OneYear, domain.TwoYear} {
			req := domain.CalculationRequest{
				LeaseStart:       order.EffectiveTo,
				Term:             term,
				BaseRent:         decimal.RequireFromString("1759.79"),
				PreferentialRent: &pref,
			}
			result, ok := calc.Calculate(req)
			require.True(t, ok)

			assert.True(t, result.TotalIncrease.Equal(result.FinalLegalRent.Sub(result.BaseRent)),
				"order %d %s: total increase should be final minus base", order.Number, term)
			require.NotEmpty(t, result.IncreaseSteps)
			last := result.IncreaseSteps[len(result.IncreaseSteps)-1]
			assert.True(t, last.NewRent.Equal(result.FinalLegalRent), "order %d %s: last step ends at the final rent", order.Number, term)

			for _, step := range result.IncreaseSteps {
				assert.True(t, step.DollarDelta.Equal(step.NewRent.Sub(step.OldRent)))
				assert.True(t, step.NewRent.Equal(step.NewRent.Round(2)), "rents are whole cents")
			}

			switch result.RuleKind {
			case domain.RuleSplit:
				assert.Len(t, result.MonthlyBreakdown, term.Months())
				assert.True(t, result.IncreaseSteps[1].OldRent.Equal(result.IncreaseSteps[0].NewRent), "split compounds on year 1")
			case domain.RuleSplitByMonth:
				assert.Len(t, result.MonthlyBreakdown, term.Months())
			default:
				assert.Empty(t, result.MonthlyBreakdown)
			}

			require.NotNil(t, result.Preferential)
			assert.False(t, result.Preferential.FinalTenantPay.GreaterThan(result.FinalLegalRent),
				"order %d %s: tenant never pays more than the legal rent", order.Number, term)
		}
	}
}

// TestCustomTablePipeline drives raw form input through a table loaded from disk
func TestCustomTablePipeline(t *testing.T) {
	table, err := guidelines.Load(customTablePath)
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	calc := calculation.NewCalculator(table)
	parser := config.NewInputParser()

	t.Run("split_two_year", func(t *testing.T) {
		req, err := parser.ParseRequest(config.RawRequest{LeaseStart: "2031-09-30", Term: "2", Rent: "$1,000.00"})
		require.NoError(t, err)

		result, ok := calc.Calculate(req)
		require.True(t, ok)
		assert.Equal(t, 101, result.MatchedOrderNumber)
		// 1000 * 1.015 = 1015.00, then 1015 * 1.025 = 1040.375 -> 1040.38
		assert.Equal(t, "1015.00", result.IncreaseSteps[0].NewRent.StringFixed(2))
		assert.Equal(t, "1040.38", result.FinalLegalRent.StringFixed(2))
	})

	t.Run("split_by_month", func(t *testing.T) {
		req, err := parser.ParseRequest(config.RawRequest{LeaseStart: "2031-10-01", Term: "1", Rent: "999.99"})
		require.NoError(t, err)

		result, ok := calc.Calculate(req)
		require.True(t, ok)
		assert.Equal(t, 102, result.MatchedOrderNumber)
		// 999.99 * 1.005 = 1004.98995 -> 1004.99; 999.99 * 1.0225 = 1022.489775 -> 1022.49
		assert.Equal(t, "1004.99", result.MonthlyBreakdown[0].LegalRent.StringFixed(2))
		assert.Equal(t, "1022.49", result.MonthlyBreakdown[3].LegalRent.StringFixed(2))
		assert.Equal(t, "Months 4-12", result.MonthlyBreakdown[3].PeriodLabel)
	})

	t.Run("three_decimal_percent", func(t *testing.T) {
		req, err := parser.ParseRequest(config.RawRequest{LeaseStart: "2032-01-15", Term: "2", Rent: "2000"})
		require.NoError(t, err)

		result, ok := calc.Calculate(req)
		require.True(t, ok)
		// 2000 * 1.04125 = 2082.50
		assert.Equal(t, "2082.50", result.FinalLegalRent.StringFixed(2))
		assert.Equal(t, "4.125%", result.RuleDescription)
	})

	t.Run("outside_custom_table", func(t *testing.T) {
		req, err := parser.ParseRequest(config.RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "2000"})
		require.NoError(t, err)

		_, ok := calc.Calculate(req)
		assert.False(t, ok, "the custom table replaces the bundled orders")
	})

	t.Run("compare_terms", func(t *testing.T) {
		req, err := parser.ParseRequest(config.RawRequest{LeaseStart: "2031-01-01", Term: "1", Rent: "1000"})
		require.NoError(t, err)

		compSet, ok := compare.NewCompareEngine(calc).Compare(req)
		require.True(t, ok)
		assert.Equal(t, "1020.00", compSet.BaseResult.FinalLegalRent.StringFixed(2))
		assert.Equal(t, "1040.38", compSet.AlternativeResults[0].FinalLegalRent.StringFixed(2))
	})
}
