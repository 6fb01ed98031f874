package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key and window events. Every edit recalculates both
// regimes; the computation is cheap enough to run per keystroke.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "tab", "down", "enter":
			m.focusField((m.focused + 1) % fieldCount)
			return m, nil
		case "shift+tab", "up":
			m.focusField((m.focused + fieldCount - 1) % fieldCount)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	m.recalculate()
	return m, cmd
}

func (m *Model) focusField(i int) {
	m.inputs[m.focused].Blur()
	m.focused = i
	m.inputs[m.focused].Focus()
}
