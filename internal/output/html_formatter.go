package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a printable renewal worksheet
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/worksheet.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("worksheet").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"signed": FormatSignedCurrency,
	"pct":    FormatPercentage,
	"deref":  func(d *decimal.Decimal) decimal.Decimal { return *d },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(result *domain.CalculationResult) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		*domain.CalculationResult
		Title    string
		Schedule []SchedulePeriod
	}{
		CalculationResult: result,
		Title:             result.OrderTitle() + " Renewal Worksheet",
		Schedule:          SummarizeSchedule(result.MonthlyBreakdown),
	}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
