package config

import (
	"errors"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest_Valid(t *testing.T) {
	parser := NewInputParser()

	req, err := parser.ParseRequest(RawRequest{
		LeaseStart:   " 2023-10-01 ",
		Term:         "2",
		Rent:         "$1,759.79",
		Preferential: "1711.75",
	})

	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2023, Month: 10, Day: 1}, req.LeaseStart)
	assert.Equal(t, domain.TwoYear, req.Term)
	assert.Equal(t, "1759.79", req.BaseRent.StringFixed(2))
	require.NotNil(t, req.PreferentialRent)
	assert.Equal(t, "1711.75", req.PreferentialRent.StringFixed(2))
}

func TestParseRequest_NoPreferential(t *testing.T) {
	parser := NewInputParser()

	req, err := parser.ParseRequest(RawRequest{LeaseStart: "2022-10-01", Term: "1", Rent: "2000"})

	require.NoError(t, err)
	assert.Nil(t, req.PreferentialRent)
	assert.False(t, req.HasPreferential())
}

func TestParseRequest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawRequest
		field    string
		contains string
	}{
		{"missing date", RawRequest{Term: "1", Rent: "2000"}, "lease start", "date is required"},
		{"bad date", RawRequest{LeaseStart: "10/01/2023", Term: "1", Rent: "2000"}, "lease start", "not a YYYY-MM-DD date"},
		{"term not a number", RawRequest{LeaseStart: "2023-10-01", Term: "one", Rent: "2000"}, "term", "not a number of years"},
		{"term out of range", RawRequest{LeaseStart: "2023-10-01", Term: "3", Rent: "2000"}, "term", "must be 1 or 2 years"},
		{"missing rent", RawRequest{LeaseStart: "2023-10-01", Term: "1"}, "rent", "amount is required"},
		{"rent not a number", RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "lots"}, "rent", "not a dollar amount"},
		{"zero rent", RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "0"}, "rent", "must be positive"},
		{"negative rent", RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "-5"}, "rent", "must be positive"},
		{"sub-cent rent", RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "2000.005"}, "rent", "fractions of a cent"},
		{"negative preferential", RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "2000", Preferential: "-1"}, "preferential rent", "must be positive"},
		{"preferential above legal", RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "2000", Preferential: "2000.01"}, "preferential rent", "cannot exceed the legal rent 2000.00"},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseRequest(tt.raw)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "error should wrap a ValidationError")
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestParseRequest_TrailingZerosAccepted(t *testing.T) {
	parser := NewInputParser()

	req, err := parser.ParseRequest(RawRequest{LeaseStart: "2023-10-01", Term: "1", Rent: "2000.500"})

	require.NoError(t, err)
	assert.Equal(t, "2000.50", req.BaseRent.StringFixed(2))
}

func TestValidateRequest_PreferentialEqualToLegal(t *testing.T) {
	parser := NewInputParser()
	pref := decimal.NewFromInt(2000)

	err := parser.ValidateRequest(&domain.CalculationRequest{
		LeaseStart:       civil.Date{Year: 2023, Month: 10, Day: 1},
		Term:             domain.OneYear,
		BaseRent:         decimal.NewFromInt(2000),
		PreferentialRent: &pref,
	})

	assert.NoError(t, err, "preferential rent may equal the legal rent")
}

func TestValidateRequest_ZeroDate(t *testing.T) {
	parser := NewInputParser()

	err := parser.ValidateRequest(&domain.CalculationRequest{Term: domain.OneYear, BaseRent: decimal.NewFromInt(2000)})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "lease start: date is required")
}
