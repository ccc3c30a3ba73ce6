package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/infoboard/internal/constants"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case constants.StateJumpYear:
		content = m.form.View()
	default:
		content = m.viewBoard()
	}

	var banner string
	if m.formErr != "" {
		banner = errorStyle.Render(m.formErr)
	}

	return docStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Center, titleStyle.Render("信息看板"), m.clock.View()),
		banner,
		content,
		m.help.View(m.keys),
	))
}

func (m Model) viewBoard() string {
	cal := m.calendar.View()
	w := m.weather
	if m.width > 0 && m.width < 2*lipgloss.Width(cal) {
		w.SetWidth(lipgloss.Width(cal) - 4)
		return lipgloss.JoinVertical(lipgloss.Left, cal, w.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cal, "  ", w.View())
}
