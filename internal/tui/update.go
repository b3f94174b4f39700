package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyQuit  = key.NewBinding(key.WithKeys("ctrl+c"))
	keyNext  = key.NewBinding(key.WithKeys("tab", "down"))
	keyPrev  = key.NewBinding(key.WithKeys("shift+tab", "up"))
	keyEnter = key.NewBinding(key.WithKeys("enter"))
	keyBack  = key.NewBinding(key.WithKeys("esc"))
	keyCopy  = key.NewBinding(key.WithKeys("c"))
	keyClose = key.NewBinding(key.WithKeys("q"))
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		m.notFound = ""
		return m, nil

	case CalculatedMsg:
		m.err = nil
		if !msg.Found {
			m.result = nil
			m.notFound = fmt.Sprintf("No applicable guideline for a lease starting %s.", msg.Request.LeaseStart)
			return m, nil
		}
		result := msg.Result
		m.result = &result
		m.notFound = ""
		m.status = ""
		m.scene = SceneResult
		return m, nil

	case CopiedMsg:
		if msg.Err != nil {
			m.status = "Copy failed: " + msg.Err.Error()
		} else {
			m.status = "Summary copied to clipboard."
		}
		return m, nil
	}

	if m.scene == SceneForm {
		return m.updateInputs(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keyQuit) {
		return m, tea.Quit
	}

	if m.scene == SceneResult {
		switch {
		case key.Matches(msg, keyClose):
			return m, tea.Quit
		case key.Matches(msg, keyBack):
			m.scene = SceneForm
			m.status = ""
			cmd := m.setFocus(m.focus)
			return m, cmd
		case key.Matches(msg, keyCopy):
			if m.result != nil {
				return m, copyCmd(m.copyToClipboard, m.result)
			}
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keyBack):
		m.err = nil
		m.notFound = ""
		return m, nil
	case key.Matches(msg, keyNext):
		cmd := m.setFocus((m.focus + 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, keyPrev):
		cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case key.Matches(msg, keyEnter):
		return m, calculateCmd(m.calc, m.parser, m.rawRequest())
	}
	return m.updateInputs(msg)
}

// setFocus moves the cursor to field i
func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

// updateInputs forwards the message to the focused field
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}
