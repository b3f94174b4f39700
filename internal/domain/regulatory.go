package domain

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
)

// Term is the length of a renewal lease in years
type Term int

const (
	OneYear Term = 1
	TwoYear Term = 2
)

// Valid reports whether the term is one the guideline orders publish rules for
func (t Term) Valid() bool {
	return t == OneYear || t == TwoYear
}

// Months returns the number of monthly rent payments in the term
func (t Term) Months() int {
	return int(t) * 12
}

func (t Term) String() string {
	if t == OneYear {
		return "1-year"
	}
	return fmt.Sprintf("%d-year", int(t))
}

// RuleKind discriminates the increase rule variants as they appear in the guideline table
type RuleKind string

const (
	RuleFlat         RuleKind = "flat"
	RuleSplit        RuleKind = "split"
	RuleSplitByMonth RuleKind = "split_by_month"
)

// IncreaseRule is one of FlatRule, SplitRule or SplitByMonthRule.
// The set is closed: the unexported marker keeps other packages from adding variants.
type IncreaseRule interface {
	Kind() RuleKind
	Describe() string
	increaseRule()
}

// FlatRule applies a single percentage once over the whole term
type FlatRule struct {
	Percent decimal.Decimal `yaml:"pct" json:"pct"`
}

func (FlatRule) Kind() RuleKind { return RuleFlat }
func (FlatRule) increaseRule()  {}

func (r FlatRule) Describe() string {
	return r.Percent.String() + "%"
}

// SplitRule raises rent for year 1, then raises the year-1 rent again for year 2
type SplitRule struct {
	Year1Percent            decimal.Decimal `yaml:"year1_pct" json:"year1_pct"`
	Year2PercentOnYear1Rent decimal.Decimal `yaml:"year2_pct_on_year1_rent" json:"year2_pct_on_year1_rent"`
}

func (SplitRule) Kind() RuleKind { return RuleSplit }
func (SplitRule) increaseRule()  {}

func (r SplitRule) Describe() string {
	return fmt.Sprintf("%s%% year 1, %s%% year 2 on year-1 rent",
		r.Year1Percent.String(), r.Year2PercentOnYear1Rent.String())
}

// SplitByMonthRule gives the first FirstMonths of a lease one percentage and the rest
// of the lease another, both taken from the same base rent
type SplitByMonthRule struct {
	FirstMonths      int             `yaml:"first_months" json:"first_months"`
	FirstPercent     decimal.Decimal `yaml:"first_pct" json:"first_pct"`
	RemainingPercent decimal.Decimal `yaml:"remaining_months_pct" json:"remaining_months_pct"`
}

func (SplitByMonthRule) Kind() RuleKind { return RuleSplitByMonth }
func (SplitByMonthRule) increaseRule()  {}

func (r SplitByMonthRule) Describe() string {
	return fmt.Sprintf("%s%% months 1-%d, %s%% from month %d",
		r.FirstPercent.String(), r.FirstMonths, r.RemainingPercent.String(), r.FirstMonths+1)
}

// RegulatoryOrder is one published Rent Guidelines Board apartment order
type RegulatoryOrder struct {
	Number        int
	EffectiveFrom civil.Date
	EffectiveTo   civil.Date
	OneYear       IncreaseRule
	TwoYear       IncreaseRule
}

// Covers reports whether date falls inside the order's inclusive effective range
func (o RegulatoryOrder) Covers(date civil.Date) bool {
	return !date.Before(o.EffectiveFrom) && !date.After(o.EffectiveTo)
}

// RuleFor returns the rule the order publishes for the given lease term
func (o RegulatoryOrder) RuleFor(term Term) IncreaseRule {
	if term == TwoYear {
		return o.TwoYear
	}
	return o.OneYear
}

// Title is the short human name of the order, e.g. "Order #55"
func (o RegulatoryOrder) Title() string {
	return fmt.Sprintf("Order #%d", o.Number)
}
