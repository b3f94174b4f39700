package tui

import "github.com/rgehrsitz/rgbcalc/internal/domain"

// Scene represents the screens of the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneResult
)

func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Lease Details"
	case SceneResult:
		return "Renewal"
	default:
		return "Unknown"
	}
}

// CalculatedMsg carries the outcome of a calculation. Found is false when no
// guideline order covers the lease start.
type CalculatedMsg struct {
	Request domain.CalculationRequest
	Result  domain.CalculationResult
	Found   bool
}

// ErrorMsg displays an input or runtime error under the form
type ErrorMsg struct {
	Err error
}

// CopiedMsg reports the outcome of a clipboard copy
type CopiedMsg struct {
	Err error
}
