package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	boardclock "github.com/julianstephens/infoboard/internal/clock"
)

var (
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

type Model struct {
	Time time.Time
}

func New(now time.Time) Model {
	return Model{Time: now}
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(boardclock.Interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.Time = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

func (m Model) Reading() boardclock.Reading {
	return boardclock.Format(m.Time)
}

func (m Model) View() string {
	r := m.Reading()
	return lipgloss.JoinHorizontal(lipgloss.Center,
		timeStyle.Render(r.Time),
		dateStyle.Render(r.Date),
	)
}
