package output

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as US dollars with thousands separators, e.g. $1,234.56
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	abs := rounded.Abs()

	fixed := abs.StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.')+1:]
	dollars := humanize.Comma(abs.Truncate(0).IntPart())

	if rounded.IsNegative() {
		return "-$" + dollars + "." + cents
	}
	return "$" + dollars + "." + cents
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// FormatSignedCurrency prefixes non-negative amounts with a plus sign
func FormatSignedCurrency(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return FormatCurrency(amount)
	}
	return "+" + FormatCurrency(amount)
}
