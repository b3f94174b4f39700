package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/rgbcalc/internal/calculation"
	"github.com/rgehrsitz/rgbcalc/internal/config"
	"github.com/rgehrsitz/rgbcalc/internal/domain"
	"github.com/rgehrsitz/rgbcalc/internal/output"
)

// form field order
const (
	fieldDate = iota
	fieldTerm
	fieldRent
	fieldPreferential
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Lease start date",
	"Lease term (years)",
	"Current legal rent",
	"Preferential rent",
}

// Model represents the entire application state
type Model struct {
	scene Scene

	// Terminal dimensions
	width  int
	height int

	inputs [fieldCount]textinput.Model
	focus  int

	calc   *calculation.Calculator
	parser *config.InputParser

	result   *domain.CalculationResult
	notFound string
	err      error
	status   string

	copyToClipboard func(string) error
}

// NewModel creates the form model over the given calculator
func NewModel(calc *calculation.Calculator) Model {
	m := Model{
		scene:           SceneForm,
		calc:            calc,
		parser:          config.NewInputParser(),
		width:           80,
		height:          24,
		copyToClipboard: clipboard.WriteAll,
	}

	placeholders := [fieldCount]string{"YYYY-MM-DD", "1 or 2", "1759.79", "optional"}
	limits := [fieldCount]int{10, 1, 14, 14}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = limits[i]
		in.Prompt = "› "
		m.inputs[i] = in
	}
	m.inputs[fieldTerm].SetValue("1")
	m.inputs[fieldDate].Focus()
	return m
}

// Init starts the cursor blinking
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Result returns the last successful calculation, if any
func (m Model) Result() *domain.CalculationResult {
	return m.result
}

// Scene returns the active screen
func (m Model) Scene() Scene {
	return m.scene
}

func (m Model) rawRequest() config.RawRequest {
	return config.RawRequest{
		LeaseStart:   m.inputs[fieldDate].Value(),
		Term:         m.inputs[fieldTerm].Value(),
		Rent:         m.inputs[fieldRent].Value(),
		Preferential: m.inputs[fieldPreferential].Value(),
	}
}

// calculateCmd validates the form and runs the calculator
func calculateCmd(calc *calculation.Calculator, parser *config.InputParser, raw config.RawRequest) tea.Cmd {
	return func() tea.Msg {
		req, err := parser.ParseRequest(raw)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		result, found := calc.Calculate(req)
		return CalculatedMsg{Request: req, Result: result, Found: found}
	}
}

// copyCmd puts the text summary of a result on the clipboard
func copyCmd(copy func(string) error, result *domain.CalculationResult) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: copy(output.Summary(result))}
	}
}
