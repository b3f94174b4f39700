package guidelines

import (
	"fmt"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
)

// Validate checks that orders form a usable lookup table: positive unique numbers,
// well-formed rules, and effective ranges that neither overlap nor leave gaps.
func Validate(orders []domain.RegulatoryOrder) error {
	if len(orders) == 0 {
		return &TableError{Message: "no orders defined"}
	}

	seen := make(map[int]bool, len(orders))
	for _, order := range orders {
		if order.Number <= 0 {
			return &TableError{Field: "order", Message: fmt.Sprintf("order number must be positive, got %d", order.Number)}
		}
		if seen[order.Number] {
			return &TableError{Order: order.Number, Field: "order", Message: "duplicate order number"}
		}
		seen[order.Number] = true

		if !order.EffectiveFrom.IsValid() || !order.EffectiveTo.IsValid() {
			return &TableError{Order: order.Number, Message: "effective dates are required and must be valid"}
		}
		if order.EffectiveTo.Before(order.EffectiveFrom) {
			return &TableError{
				Order:   order.Number,
				Field:   "effective_to",
				Message: fmt.Sprintf("%s is before effective_from %s", order.EffectiveTo, order.EffectiveFrom),
			}
		}
		if err := validateRule(order.Number, "one_year", domain.OneYear, order.OneYear); err != nil {
			return err
		}
		if err := validateRule(order.Number, "two_year", domain.TwoYear, order.TwoYear); err != nil {
			return err
		}
	}

	sorted := sortedByDate(orders)
	for i := 1; i < len(sorted); i++ {
		prev, next := sorted[i-1], sorted[i]
		if !next.EffectiveFrom.After(prev.EffectiveTo) {
			return &TableError{
				Order:   next.Number,
				Field:   "effective_from",
				Message: fmt.Sprintf("range overlaps order %d (ends %s)", prev.Number, prev.EffectiveTo),
			}
		}
		if expected := prev.EffectiveTo.AddDays(1); next.EffectiveFrom != expected {
			return &TableError{
				Order:   next.Number,
				Field:   "effective_from",
				Message: fmt.Sprintf("gap after order %d: expected %s, got %s", prev.Number, expected, next.EffectiveFrom),
			}
		}
	}

	return nil
}

// validateRule checks a rule against the lease term it is bound to
func validateRule(order int, field string, term domain.Term, rule domain.IncreaseRule) error {
	switch r := rule.(type) {
	case nil:
		return &TableError{Order: order, Field: field, Message: "rule is required"}
	case domain.FlatRule:
		return nil
	case domain.SplitRule:
		if term != domain.TwoYear {
			return &TableError{Order: order, Field: field + ".type", Message: "split rules apply only to 2-year leases"}
		}
		return nil
	case domain.SplitByMonthRule:
		if maxFirst := term.Months() - 1; r.FirstMonths < 1 || r.FirstMonths > maxFirst {
			return &TableError{
				Order:   order,
				Field:   field + ".first_months",
				Message: fmt.Sprintf("must be between 1 and %d, got %d", maxFirst, r.FirstMonths),
			}
		}
		return nil
	default:
		return &TableError{Order: order, Field: field, Message: fmt.Sprintf("unsupported rule %T", rule)}
	}
}
