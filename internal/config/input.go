package config

import (
	"fmt"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ValidationError reports a rejected calculation input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// RawRequest is a calculation request as typed by a user: every field is text
type RawRequest struct {
	LeaseStart   string
	Term         string
	Rent         string
	Preferential string
}

// InputParser turns user input into validated calculation requests
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// ParseRequest parses and validates raw form input
func (ip *InputParser) ParseRequest(raw RawRequest) (domain.CalculationRequest, error) {
	var req domain.CalculationRequest

	start := strings.TrimSpace(raw.LeaseStart)
	if start == "" {
		return req, fmt.Errorf("invalid request: %w", &ValidationError{Field: "lease start", Message: "date is required"})
	}
	d, err := civil.ParseDate(start)
	if err != nil {
		return req, fmt.Errorf("invalid request: %w", &ValidationError{Field: "lease start", Message: fmt.Sprintf("%q is not a YYYY-MM-DD date", start)})
	}
	req.LeaseStart = d

	term, err := strconv.Atoi(strings.TrimSpace(raw.Term))
	if err != nil {
		return req, fmt.Errorf("invalid request: %w", &ValidationError{Field: "term", Message: fmt.Sprintf("%q is not a number of years", raw.Term)})
	}
	req.Term = domain.Term(term)

	req.BaseRent, err = parseMoney("rent", raw.Rent)
	if err != nil {
		return req, fmt.Errorf("invalid request: %w", err)
	}

	if p := strings.TrimSpace(raw.Preferential); p != "" {
		pref, err := parseMoney("preferential rent", p)
		if err != nil {
			return req, fmt.Errorf("invalid request: %w", err)
		}
		req.PreferentialRent = &pref
	}

	if err := ip.ValidateRequest(&req); err != nil {
		return req, err
	}
	return req, nil
}

// ValidateRequest checks the preconditions the calculator relies on
func (ip *InputParser) ValidateRequest(req *domain.CalculationRequest) error {
	if !req.LeaseStart.IsValid() {
		return fmt.Errorf("invalid request: %w", &ValidationError{Field: "lease start", Message: "date is required"})
	}
	if !req.Term.Valid() {
		return fmt.Errorf("invalid request: %w", &ValidationError{Field: "term", Message: fmt.Sprintf("must be 1 or 2 years, got %d", int(req.Term))})
	}
	if !req.BaseRent.IsPositive() {
		return fmt.Errorf("invalid request: %w", &ValidationError{Field: "rent", Message: "must be positive"})
	}
	if req.PreferentialRent != nil {
		if !req.PreferentialRent.IsPositive() {
			return fmt.Errorf("invalid request: %w", &ValidationError{Field: "preferential rent", Message: "must be positive"})
		}
		if req.PreferentialRent.GreaterThan(req.BaseRent) {
			return fmt.Errorf("invalid request: %w", &ValidationError{
				Field:   "preferential rent",
				Message: fmt.Sprintf("%s cannot exceed the legal rent %s", req.PreferentialRent.StringFixed(2), req.BaseRent.StringFixed(2)),
			})
		}
	}
	return nil
}

// parseMoney accepts amounts like "1,759.79" or "$1759.79"
func parseMoney(field, value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, &ValidationError{Field: field, Message: "amount is required"}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: field, Message: fmt.Sprintf("%q is not a dollar amount", value)}
	}
	if !d.Equal(d.Round(2)) {
		return decimal.Zero, &ValidationError{Field: field, Message: fmt.Sprintf("%q has fractions of a cent", value)}
	}
	return d, nil
}
