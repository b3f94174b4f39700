package domain

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Round2 rounds a currency amount to cents, halves away from zero.
// Every step of a renewal calculation goes through here before feeding the next step.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// ApplyPercent raises rent by pct percent and rounds the result to cents
func ApplyPercent(rent, pct decimal.Decimal) decimal.Decimal {
	return Round2(rent.Mul(hundred.Add(pct)).Div(hundred))
}

// CalculationRequest is a validated renewal calculation input
type CalculationRequest struct {
	LeaseStart       civil.Date       `json:"leaseStart" yaml:"lease_start"`
	Term             Term             `json:"term" yaml:"term"`
	BaseRent         decimal.Decimal  `json:"baseRent" yaml:"base_rent"`
	PreferentialRent *decimal.Decimal `json:"preferentialRent,omitempty" yaml:"preferential_rent,omitempty"`
}

// HasPreferential reports whether the tenant currently pays a preferential rent
func (r CalculationRequest) HasPreferential() bool {
	return r.PreferentialRent != nil
}

// IncreaseStep is one increase applied to the rent during the lease
type IncreaseStep struct {
	PeriodLabel string          `json:"periodLabel" yaml:"period_label"`
	OldRent     decimal.Decimal `json:"oldRent" yaml:"old_rent"`
	NewRent     decimal.Decimal `json:"newRent" yaml:"new_rent"`
	Percent     decimal.Decimal `json:"percent" yaml:"percent"`
	DollarDelta decimal.Decimal `json:"dollarDelta" yaml:"dollar_delta"`
}

// NewIncreaseStep builds a step, deriving the dollar change from the two rents
func NewIncreaseStep(label string, oldRent, newRent, pct decimal.Decimal) IncreaseStep {
	return IncreaseStep{
		PeriodLabel: label,
		OldRent:     oldRent,
		NewRent:     newRent,
		Percent:     pct,
		DollarDelta: Round2(newRent.Sub(oldRent)),
	}
}

// MonthlyEntry is the rent owed for one month of the lease
type MonthlyEntry struct {
	MonthIndex  int             `json:"monthIndex" yaml:"month_index"`
	PeriodLabel string          `json:"periodLabel" yaml:"period_label"`
	LegalRent   decimal.Decimal `json:"legalRent" yaml:"legal_rent"`
	TenantPays  decimal.Decimal `json:"tenantPays" yaml:"tenant_pays"`
}

// PreferentialOutcome is what a tenant paying a preferential rent pays after renewal
type PreferentialOutcome struct {
	FinalTenantPay decimal.Decimal  `json:"finalTenantPay" yaml:"final_tenant_pay"`
	Year1TenantPay *decimal.Decimal `json:"year1TenantPay,omitempty" yaml:"year1_tenant_pay,omitempty"`
}

// CalculationResult is the full outcome of a renewal calculation
type CalculationResult struct {
	MatchedOrderNumber int        `json:"matchedOrderNumber" yaml:"matched_order_number"`
	EffectiveFrom      civil.Date `json:"effectiveFrom" yaml:"effective_from"`
	EffectiveTo        civil.Date `json:"effectiveTo" yaml:"effective_to"`
	LeaseStart         civil.Date `json:"leaseStart" yaml:"lease_start"`
	Term               Term       `json:"term" yaml:"term"`
	RuleKind           RuleKind   `json:"ruleKind" yaml:"rule_kind"`
	RuleDescription    string     `json:"ruleDescription" yaml:"rule_description"`

	BaseRent         decimal.Decimal  `json:"baseRent" yaml:"base_rent"`
	PreferentialRent *decimal.Decimal `json:"preferentialRent,omitempty" yaml:"preferential_rent,omitempty"`

	FinalLegalRent       decimal.Decimal `json:"finalLegalRent" yaml:"final_legal_rent"`
	TotalIncrease        decimal.Decimal `json:"totalIncrease" yaml:"total_increase"`
	TotalIncreasePercent decimal.Decimal `json:"totalIncreasePercent" yaml:"total_increase_percent"`

	IncreaseSteps    []IncreaseStep       `json:"increaseSteps" yaml:"increase_steps"`
	MonthlyBreakdown []MonthlyEntry       `json:"monthlyBreakdown,omitempty" yaml:"monthly_breakdown,omitempty"`
	Preferential     *PreferentialOutcome `json:"preferentialOutcome,omitempty" yaml:"preferential_outcome,omitempty"`
}

// HasSchedule reports whether the rent changes partway through the lease
func (r *CalculationResult) HasSchedule() bool {
	return len(r.MonthlyBreakdown) > 0
}

// OrderTitle is the short name of the matched order
func (r *CalculationResult) OrderTitle() string {
	return RegulatoryOrder{Number: r.MatchedOrderNumber}.Title()
}
