package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/rgbcalc/internal/config"
)

const customTable = `
orders:
  - order: 1
    effective_from: "2030-10-01"
    effective_to: "2031-09-30"
    one_year: { type: flat, pct: 10 }
    two_year: { type: flat, pct: 20 }
`

// execute runs a fresh command tree from an empty working directory
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "rgbcalc", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"calculate", "compare", "guidelines", "version"} {
		found, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "calculate")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, err := execute(t, "invalid-command")
	assert.Error(t, err)
}

func TestCalculate_Console(t *testing.T) {
	out, err := execute(t, "calculate", "--date", "2023-10-01", "--term", "2", "--rent", "1759.79", "--preferential", "1711.75")

	require.NoError(t, err)
	assert.Contains(t, out, "Order #55")
	assert.Contains(t, out, "New Legal Rent:    $1,866.04")
	assert.Contains(t, out, "Tenant Pays:        $1,815.10")
}

func TestCalculate_JSON(t *testing.T) {
	out, err := execute(t, "calculate", "--date", "2022-10-01", "--rent", "$2,000", "--format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"matchedOrderNumber": 54`)
	assert.Contains(t, out, `"ruleKind": "flat"`)
}

func TestCalculate_FormatAlias(t *testing.T) {
	out, err := execute(t, "calculate", "--date", "2022-10-01", "--rent", "2000", "-f", "txt")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Order #54, 1-year renewal starting 2022-10-01"))
}

func TestCalculate_FormatFromEnvironment(t *testing.T) {
	t.Setenv("RGBCALC_FORMAT", "csv")

	out, err := execute(t, "calculate", "--date", "2022-10-01", "--rent", "2000")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Order,Period,OldRent"))
}

func TestCalculate_NoGuideline(t *testing.T) {
	_, err := execute(t, "calculate", "--date", "2040-01-01", "--rent", "2000")

	require.Error(t, err)
	assert.Equal(t, "no applicable guideline for lease starting 2040-01-01", err.Error())
	assert.Equal(t, exitNoGuideline, exitCode(err))
}

func TestCalculate_InvalidInput(t *testing.T) {
	_, err := execute(t, "calculate", "--date", "2023-10-01", "--term", "3", "--rent", "2000")

	require.Error(t, err)
	var verr *config.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "term", verr.Field)
	assert.Equal(t, 1, exitCode(err))
}

func TestCalculate_MissingRequiredFlag(t *testing.T) {
	_, err := execute(t, "calculate", "--date", "2023-10-01")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rent")
}

func TestCalculate_UnsupportedFormat(t *testing.T) {
	_, err := execute(t, "calculate", "--date", "2022-10-01", "--rent", "2000", "--format", "pdf")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "pdf"`)
}

func TestCalculate_CustomGuidelines(t *testing.T) {
	path := writeFile(t, "orders.yaml", customTable)

	out, err := execute(t, "calculate", "--guidelines", path, "--date", "2031-01-01", "--rent", "1000", "--format", "text")

	require.NoError(t, err)
	assert.Contains(t, out, "New legal rent: $1,100.00")
}

func TestCalculate_SettingsFile(t *testing.T) {
	settings := writeFile(t, "settings.yaml", "format: yaml\n")

	out, err := execute(t, "--config", settings, "calculate", "--date", "2022-10-01", "--rent", "2000")

	require.NoError(t, err)
	assert.Contains(t, out, "matched_order_number: 54")
}

func TestCalculate_Save(t *testing.T) {
	out, err := execute(t, "calculate", "--date", "2022-10-01", "--rent", "2000", "--format", "html", "--save")
	require.NoError(t, err)
	assert.Equal(t, "Report written to renewal_order54_1-year.html\n", out)

	data, err := os.ReadFile("renewal_order54_1-year.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "<!DOCTYPE html>")
}

func TestCalculate_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "calculate", "--date", "2022-10-01", "--rent", "2000")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "--date", "2022-10-01", "--rent", "2000", "--format", "compact")

	require.NoError(t, err)
	assert.Equal(t, "Base 1-year: $2,065.00 | 2-year: $2,100.00 (+$35.00)\n", out)
}

func TestCompare_Table(t *testing.T) {
	out, err := execute(t, "compare", "--date", "2023-10-01", "--rent", "1759.79")

	require.NoError(t, err)
	assert.Contains(t, out, "RENEWAL TERM COMPARISON")
	assert.Contains(t, out, "2-year lease rent steps up after year 1, to $1,866.04")
}

func TestCompare_FormatFromEnvironment(t *testing.T) {
	t.Setenv("RGBCALC_COMPARE_FORMAT", "csv")

	out, err := execute(t, "compare", "--date", "2022-10-01", "--rent", "2000")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Term,Type,Rule,"), out)
}

func TestCompare_IgnoresCalculateFormat(t *testing.T) {
	t.Setenv("RGBCALC_FORMAT", "csv")
	settings := writeFile(t, "settings.yaml", "format: json\n")

	out, err := execute(t, "--config", settings, "compare", "--date", "2022-10-01", "--rent", "2000")

	require.NoError(t, err)
	assert.Contains(t, out, "RENEWAL TERM COMPARISON")
}

func TestCompare_FlagOverridesSettings(t *testing.T) {
	settings := writeFile(t, "settings.yaml", "compare_format: csv\n")

	out, err := execute(t, "--config", settings, "compare", "--date", "2022-10-01", "--rent", "2000", "-f", "compact")

	require.NoError(t, err)
	assert.Equal(t, "Base 1-year: $2,065.00 | 2-year: $2,100.00 (+$35.00)\n", out)
}

func TestCompare_NoGuideline(t *testing.T) {
	_, err := execute(t, "compare", "--date", "1990-01-01", "--rent", "2000")

	require.Error(t, err)
	assert.Equal(t, exitNoGuideline, exitCode(err))
}

func TestCompare_UnsupportedFormat(t *testing.T) {
	_, err := execute(t, "compare", "--date", "2022-10-01", "--rent", "2000", "--format", "html")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "html"`)
}

func TestGuidelinesList(t *testing.T) {
	out, err := execute(t, "guidelines", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "2.75% year 1, 3.2% year 2 on year-1 rent")
	assert.Contains(t, out, "14 orders covering 2012-10-01 to 2026-09-30")
}

func TestGuidelinesShow(t *testing.T) {
	out, err := execute(t, "guidelines", "show", "53")
	require.NoError(t, err)
	assert.Contains(t, out, "Order #53")
	assert.Contains(t, out, "0% months 1-6, 1.5% from month 7")

	_, err = execute(t, "guidelines", "show", "99")
	assert.EqualError(t, err, "guideline order 99 not found")

	_, err = execute(t, "guidelines", "show", "x")
	assert.EqualError(t, err, `invalid order number "x"`)
}

func TestGuidelinesValidate(t *testing.T) {
	path := writeFile(t, "orders.yaml", customTable)

	out, err := execute(t, "guidelines", "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid (1 orders, 2030-10-01 to 2031-09-30)")

	bad := writeFile(t, "bad.yaml", "orders: []\n")
	_, err = execute(t, "guidelines", "validate", bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no orders defined")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "rgbcalc dev (commit none, built unknown)"))
}
