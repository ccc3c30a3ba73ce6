package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/infoboard/internal/calendar"
)

const cellWidth = 4

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Width(7 * cellWidth).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(cellWidth).
			Align(lipgloss.Right)

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Width(cellWidth).
			Align(lipgloss.Right)

	mutedCellStyle = cellStyle.
			Foreground(lipgloss.Color("238"))

	todayCellStyle = cellStyle.
			Foreground(lipgloss.Color("205")).
			Bold(true)

	selectedCellStyle = cellStyle.
				Background(lipgloss.Color("62")).
				Foreground(lipgloss.Color("230"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			MarginTop(1)
)

// Model renders the engine's grid and keeps a keyboard focus date that is
// separate from the engine's selection until the user confirms it.
type Model struct {
	engine *calendar.Engine
	focus  calendar.Selection
}

func New(engine *calendar.Engine) Model {
	return Model{engine: engine, focus: engine.Selection()}
}

func (m Model) Engine() *calendar.Engine { return m.engine }

func (m Model) Focus() calendar.Selection { return m.focus }

// MoveFocus shifts the focus by days, paging the engine when the focus
// leaves the displayed month.
func (m *Model) MoveFocus(days int) {
	t := time.Date(m.focus.Year, time.Month(m.focus.Month+1), m.focus.Day+days, 0, 0, 0, 0, time.UTC)
	m.focus = calendar.Selection{Year: t.Year(), Month: int(t.Month()) - 1, Day: t.Day()}

	cur := m.engine.Cursor()
	if delta := (m.focus.Year-cur.Year)*12 + m.focus.Month - cur.Month; delta != 0 {
		m.engine.NavigateMonth(delta)
	}
}

// SyncFocus pulls the focus into the displayed month after the cursor moved.
func (m *Model) SyncFocus() {
	cur := m.engine.Cursor()
	if m.focus.Year == cur.Year && m.focus.Month == cur.Month {
		return
	}
	day := m.focus.Day
	if last := calendar.DaysInMonth(cur.Year, cur.Month); day > last {
		day = last
	}
	m.focus = calendar.Selection{Year: cur.Year, Month: cur.Month, Day: day}
}

// ResetFocus puts the focus back on the engine's selection.
func (m *Model) ResetFocus() {
	m.focus = m.engine.Selection()
}

// SelectFocused makes the focused day the engine's selection.
func (m *Model) SelectFocused() bool {
	return m.engine.SelectDay(m.focus.Year, m.focus.Month, m.focus.Day)
}

func (m Model) renderCell(c calendar.DayCell) string {
	style := cellStyle
	switch {
	case !c.IsCurrentMonth:
		style = mutedCellStyle
	case c.IsSelected:
		style = selectedCellStyle
	case c.IsToday:
		style = todayCellStyle
	}
	label := fmt.Sprintf("%d", c.Day)
	if c.IsCurrentMonth && c.Year == m.focus.Year && c.Month == m.focus.Month && c.Day == m.focus.Day {
		label = "[" + label + "]"
		style = style.Underline(true)
	}
	return style.Render(label)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.engine.Title()))
	b.WriteString("\n")

	header := make([]string, 0, 7)
	for _, h := range m.engine.Header() {
		header = append(header, headerStyle.Render(h))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))

	cells := m.engine.Grid()
	for i := 0; i < len(cells); i += 7 {
		row := make([]string, 0, 7)
		for _, c := range cells[i : i+7] {
			row = append(row, m.renderCell(c))
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		b.String(),
		detailStyle.Render(m.engine.SelectedDetail()),
	)
	return panelStyle.Render(content)
}
