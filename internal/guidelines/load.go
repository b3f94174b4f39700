package guidelines

import (
	"fmt"
	"os"

	"cloud.google.com/go/civil"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// TableError reports a defect in guideline table data
type TableError struct {
	Order   int
	Field   string
	Message string
}

func (e *TableError) Error() string {
	prefix := "guideline table"
	if e.Order != 0 {
		prefix = fmt.Sprintf("guideline order %d", e.Order)
	}
	if e.Field != "" {
		return prefix + ": " + e.Field + ": " + e.Message
	}
	return prefix + ": " + e.Message
}

type tableFile struct {
	Orders []orderRecord `yaml:"orders"`
}

type orderRecord struct {
	Order         int         `yaml:"order"`
	EffectiveFrom string      `yaml:"effective_from"`
	EffectiveTo   string      `yaml:"effective_to"`
	OneYear       *ruleRecord `yaml:"one_year"`
	TwoYear       *ruleRecord `yaml:"two_year"`
}

type ruleRecord struct {
	Type string `yaml:"type"`

	Pct *decimal.Decimal `yaml:"pct"`

	Year1Pct            *decimal.Decimal `yaml:"year1_pct"`
	Year2PctOnYear1Rent *decimal.Decimal `yaml:"year2_pct_on_year1_rent"`

	FirstMonths        *int             `yaml:"first_months"`
	FirstPct           *decimal.Decimal `yaml:"first_pct"`
	RemainingMonthsPct *decimal.Decimal `yaml:"remaining_months_pct"`
}

// Load reads and validates a guideline table from a YAML file
func Load(filename string) (*Table, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return table, nil
}

// Parse decodes and validates a guideline table from YAML
func Parse(data []byte) (*Table, error) {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse guideline YAML: %w", err)
	}

	orders := make([]domain.RegulatoryOrder, 0, len(file.Orders))
	for _, rec := range file.Orders {
		order, err := rec.toOrder()
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	return New(orders)
}

func (rec orderRecord) toOrder() (domain.RegulatoryOrder, error) {
	order := domain.RegulatoryOrder{Number: rec.Order}
	if rec.Order <= 0 {
		return order, &TableError{Field: "order", Message: fmt.Sprintf("order number must be positive, got %d", rec.Order)}
	}

	var err error
	if order.EffectiveFrom, err = parseDate(rec.Order, "effective_from", rec.EffectiveFrom); err != nil {
		return order, err
	}
	if order.EffectiveTo, err = parseDate(rec.Order, "effective_to", rec.EffectiveTo); err != nil {
		return order, err
	}
	if order.OneYear, err = rec.OneYear.toRule(rec.Order, "one_year"); err != nil {
		return order, err
	}
	if order.TwoYear, err = rec.TwoYear.toRule(rec.Order, "two_year"); err != nil {
		return order, err
	}
	return order, nil
}

func parseDate(order int, field, value string) (civil.Date, error) {
	if value == "" {
		return civil.Date{}, &TableError{Order: order, Field: field, Message: "date is required"}
	}
	d, err := civil.ParseDate(value)
	if err != nil {
		return civil.Date{}, &TableError{Order: order, Field: field, Message: fmt.Sprintf("invalid ISO date %q", value)}
	}
	return d, nil
}

func (rec *ruleRecord) toRule(order int, field string) (domain.IncreaseRule, error) {
	if rec == nil {
		return nil, &TableError{Order: order, Field: field, Message: "rule is required"}
	}

	missing := func(name string) error {
		return &TableError{Order: order, Field: field + "." + name, Message: "required for " + rec.Type + " rules"}
	}

	switch domain.RuleKind(rec.Type) {
	case domain.RuleFlat:
		if rec.Pct == nil {
			return nil, missing("pct")
		}
		return domain.FlatRule{Percent: *rec.Pct}, nil

	case domain.RuleSplit:
		if rec.Year1Pct == nil {
			return nil, missing("year1_pct")
		}
		if rec.Year2PctOnYear1Rent == nil {
			return nil, missing("year2_pct_on_year1_rent")
		}
		return domain.SplitRule{
			Year1Percent:            *rec.Year1Pct,
			Year2PercentOnYear1Rent: *rec.Year2PctOnYear1Rent,
		}, nil

	case domain.RuleSplitByMonth:
		if rec.FirstMonths == nil {
			return nil, missing("first_months")
		}
		if rec.FirstPct == nil {
			return nil, missing("first_pct")
		}
		if rec.RemainingMonthsPct == nil {
			return nil, missing("remaining_months_pct")
		}
		return domain.SplitByMonthRule{
			FirstMonths:      *rec.FirstMonths,
			FirstPercent:     *rec.FirstPct,
			RemainingPercent: *rec.RemainingMonthsPct,
		}, nil

	case "":
		return nil, &TableError{Order: order, Field: field + ".type", Message: "rule type is required"}

	default:
		return nil, &TableError{Order: order, Field: field + ".type", Message: fmt.Sprintf("unknown rule type %q", rec.Type)}
	}
}
