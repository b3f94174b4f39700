// Package guidelines holds the table of Rent Guidelines Board orders and resolves
// which order, and which of its rules, governs a renewal lease.
package guidelines

import (
	_ "embed"
	"fmt"
	"sort"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
)

//go:embed guidelines.yaml
var defaultTableSource []byte

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the bundled guideline table. The embedded data is parsed on first
// use; a defect in it is a build problem, so it panics rather than returning an error.
func Default() *Table {
	defaultOnce.Do(func() {
		t, err := Parse(defaultTableSource)
		if err != nil {
			panic(fmt.Sprintf("bundled guideline table is invalid: %v", err))
		}
		defaultTable = t
	})
	return defaultTable
}

// Table is an immutable, validated set of regulatory orders
type Table struct {
	orders []domain.RegulatoryOrder
}

// Match pairs the order covering a lease start date with the rule for the lease term
type Match struct {
	Order domain.RegulatoryOrder
	Rule  domain.IncreaseRule
}

// New validates orders and builds a table from them. The slice is copied.
func New(orders []domain.RegulatoryOrder) (*Table, error) {
	if err := Validate(orders); err != nil {
		return nil, err
	}
	return &Table{orders: append([]domain.RegulatoryOrder(nil), orders...)}, nil
}

// Find returns the order whose effective range contains date, with its rule for term.
// Orders are scanned in table order and the first covering order wins.
// ok is false when no order covers the date, which is an expected outcome for dates
// outside the published window.
func (t *Table) Find(date civil.Date, term domain.Term) (Match, bool) {
	for _, order := range t.orders {
		if order.Covers(date) {
			return Match{Order: order, Rule: order.RuleFor(term)}, true
		}
	}
	return Match{}, false
}

// Order looks an order up by its number
func (t *Table) Order(number int) (domain.RegulatoryOrder, bool) {
	for _, order := range t.orders {
		if order.Number == number {
			return order, true
		}
	}
	return domain.RegulatoryOrder{}, false
}

// Orders returns a copy of the orders sorted by effective date
func (t *Table) Orders() []domain.RegulatoryOrder {
	return sortedByDate(t.orders)
}

// Len returns the number of orders in the table
func (t *Table) Len() int {
	return len(t.orders)
}

// Span returns the first and last dates covered by the table
func (t *Table) Span() (from, to civil.Date) {
	if len(t.orders) == 0 {
		return civil.Date{}, civil.Date{}
	}
	sorted := sortedByDate(t.orders)
	return sorted[0].EffectiveFrom, sorted[len(sorted)-1].EffectiveTo
}

func sortedByDate(orders []domain.RegulatoryOrder) []domain.RegulatoryOrder {
	sorted := append([]domain.RegulatoryOrder(nil), orders...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.Before(sorted[j].EffectiveFrom)
	})
	return sorted
}
