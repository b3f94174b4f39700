package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/rgbcalc/internal/tui/tuistyles"
)

// MetricCard displays one rent figure with an optional change line
type MetricCard struct {
	Label  string
	Value  string
	Change string
	Rising bool
	Note   string
	Width  int
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// WithChange adds a change line, e.g. "+$106.25 (6.04%)"
func (m *MetricCard) WithChange(change string, rising bool) *MetricCard {
	m.Change = change
	m.Rising = rising
	return m
}

// WithNote adds a muted line under the value
func (m *MetricCard) WithNote(note string) *MetricCard {
	m.Note = note
	return m
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" + tuistyles.MetricValueStyle.Render(m.Value)
	if m.Change != "" {
		content += "\n" + tuistyles.TrendStyle(m.Rising).Render(tuistyles.TrendIndicator(m.Rising)+" "+m.Change)
	}
	if m.Note != "" {
		content += "\n" + tuistyles.SubtitleStyle.Render(m.Note)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// MetricRow lays cards out side by side
func MetricRow(cards ...*MetricCard) string {
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, c.Render())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
