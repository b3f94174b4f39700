package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/rgbcalc/internal/output"
	"github.com/rgehrsitz/rgbcalc/internal/tui/components"
	"github.com/rgehrsitz/rgbcalc/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.scene {
	case SceneForm:
		content = m.renderForm()
	case SceneResult:
		content = m.renderResult()
	default:
		content = "Unknown scene"
	}

	return tuistyles.AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		content,
		m.renderHelp(),
	))
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("RGB Renewal Calculator")
	return lipgloss.JoinVertical(lipgloss.Left, title, tuistyles.SubtitleStyle.Render(m.scene.String()), "")
}

func (m Model) renderForm() string {
	var b strings.Builder
	for i := range m.inputs {
		label := tuistyles.LabelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = tuistyles.FocusedLabelStyle.Render(fieldLabels[i])
		}
		b.WriteString(label + m.inputs[i].View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + tuistyles.ErrorStyle.Render(m.err.Error()) + "\n")
	}
	if m.notFound != "" {
		b.WriteString("\n" + tuistyles.ErrorStyle.Render(m.notFound) + "\n")
	}
	return b.String()
}

func (m Model) renderResult() string {
	r := m.result
	if r == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, %s lease starting %s\n", r.OrderTitle(), r.Term, r.LeaseStart)
	b.WriteString(tuistyles.SubtitleStyle.Render(r.RuleDescription) + "\n\n")

	cards := []*components.MetricCard{
		components.NewMetricCard("Current legal rent", output.FormatCurrency(r.BaseRent)),
		components.NewMetricCard("New legal rent", output.FormatCurrency(r.FinalLegalRent)).
			WithChange(fmt.Sprintf("%s (%s)", output.FormatSignedCurrency(r.TotalIncrease), output.FormatPercentage(r.TotalIncreasePercent)), r.TotalIncrease.IsPositive()),
	}
	if p := r.Preferential; p != nil {
		card := components.NewMetricCard("Tenant pays", output.FormatCurrency(p.FinalTenantPay))
		if p.Year1TenantPay != nil {
			card.WithNote("year 1: " + output.FormatCurrency(*p.Year1TenantPay))
		}
		cards = append(cards, card)
	}
	b.WriteString(components.MetricRow(cards...) + "\n\n")

	b.WriteString(tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-12s %12s %12s %8s", "Period", "Old rent", "New rent", "Percent")) + "\n")
	for _, step := range r.IncreaseSteps {
		b.WriteString(tuistyles.TableCellStyle.Render(fmt.Sprintf("%-12s %12s %12s %8s",
			step.PeriodLabel, output.FormatCurrency(step.OldRent), output.FormatCurrency(step.NewRent), output.FormatPercentage(step.Percent))) + "\n")
	}

	if r.HasSchedule() {
		b.WriteString("\n" + tuistyles.TableHeaderStyle.Render(fmt.Sprintf("%-8s %14s %14s", "Months", "Legal rent", "Tenant pays")) + "\n")
		for _, p := range output.SummarizeSchedule(r.MonthlyBreakdown) {
			b.WriteString(fmt.Sprintf("%-8s %14s %14s\n", p.Months(), output.FormatCurrency(p.LegalRent), output.FormatCurrency(p.TenantPays)))
		}
	}

	if m.status != "" {
		b.WriteString("\n" + tuistyles.InfoStyle.Render(m.status) + "\n")
	}
	return b.String()
}

func (m Model) renderHelp() string {
	help := "tab/shift+tab: move • enter: calculate • esc: clear • ctrl+c: quit"
	if m.scene == SceneResult {
		help = "c: copy summary • esc: edit lease • q: quit"
	}
	return "\n" + tuistyles.HelpStyle.Render(help)
}
