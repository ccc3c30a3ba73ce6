package weather

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	boardweather "github.com/julianstephens/infoboard/internal/weather"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	readingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	failedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)
)

type Model struct {
	State   boardweather.State
	spinner spinner.Model
	width   int
}

func New() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return Model{spinner: s}
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m *Model) SetState(s boardweather.State) {
	m.State = s
}

// Init starts the spinner animation.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Location is the second line of the panel.
func (m Model) Location() string {
	s := m.State
	switch {
	case s.Phase == boardweather.Ready && s.Payload != nil && s.Payload.Location != "":
		return s.Payload.Location
	case s.Source == boardweather.SourceCity && s.City != "":
		return "城市：" + s.City
	case s.Position != nil && s.Position.Label != "":
		return s.Position.Label
	case s.Phase == boardweather.Locating:
		return "定位中..."
	}
	return ""
}

func (m Model) View() string {
	s := m.State
	lines := []string{headerStyle.Render("天气")}

	switch {
	case s.Busy():
		lines = append(lines, m.spinner.View()+" "+s.Text())
	case s.Phase == boardweather.Failed:
		text := s.Text()
		if s.Reason != "" {
			text += "：" + s.Reason
		}
		lines = append(lines, failedStyle.Render(text+"（按 r 重试）"))
	default:
		lines = append(lines, readingStyle.Render(s.Text()))
	}

	if loc := m.Location(); loc != "" {
		lines = append(lines, loc)
	}

	var notes []string
	if s.Note != "" {
		notes = append(notes, s.Note)
	}
	if s.LocateReason != "" {
		notes = append(notes, "定位失败原因："+s.LocateReason)
	}
	if u := s.Updated(); u != "" {
		notes = append(notes, u)
	}
	if len(notes) > 0 {
		lines = append(lines, noteStyle.Render(strings.Join(notes, "  ")))
	}

	style := panelStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
