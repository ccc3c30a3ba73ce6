package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/logger"
	"github.com/julianstephens/infoboard/internal/tui/components/clock"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clock.TickMsg:
		var cmd tea.Cmd
		m.clock, cmd = m.clock.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.weather, cmd = m.weather.Update(msg)
		return m, cmd

	case refreshMsg:
		task := m.acq.Start()
		m.weather.SetState(m.acq.State())
		return m, tea.Batch(m.runTask(task), m.refreshTick())

	case weatherEventMsg:
		task, ok := m.acq.Apply(msg.event)
		if !ok {
			return m, nil
		}
		m.weather.SetState(m.acq.State())
		return m, m.runTask(task)
	}

	if m.state == constants.StateJumpYear {
		return m.updateJumpYear(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	engine := m.calendar.Engine()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.calendar.MoveFocus(-1)
	case key.Matches(msg, m.keys.Right):
		m.calendar.MoveFocus(1)
	case key.Matches(msg, m.keys.Up):
		m.calendar.MoveFocus(-7)
	case key.Matches(msg, m.keys.Down):
		m.calendar.MoveFocus(7)
	case key.Matches(msg, m.keys.Select):
		m.calendar.SelectFocused()
	case key.Matches(msg, m.keys.PrevMonth):
		engine.NavigateMonth(-1)
		m.calendar.SyncFocus()
	case key.Matches(msg, m.keys.NextMonth):
		engine.NavigateMonth(1)
		m.calendar.SyncFocus()
	case key.Matches(msg, m.keys.PrevYear):
		engine.NavigateYear(-1)
		m.calendar.SyncFocus()
	case key.Matches(msg, m.keys.NextYear):
		engine.NavigateYear(1)
		m.calendar.SyncFocus()
	case key.Matches(msg, m.keys.Today):
		engine.JumpToToday()
		m.calendar.ResetFocus()
	case key.Matches(msg, m.keys.Retry):
		task := m.acq.Retry()
		m.weather.SetState(m.acq.State())
		return m, m.runTask(task)
	case key.Matches(msg, m.keys.JumpYear):
		m.yearForm = &YearFormModel{Year: strconv.Itoa(engine.Cursor().Year)}
		m.form = NewYearForm(m.yearForm)
		m.state = constants.StateJumpYear
		return m, m.form.Init()
	}
	return m, nil
}

func (m Model) updateJumpYear(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateBoard
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		year, _ := strconv.Atoi(strings.TrimSpace(m.yearForm.Year))
		if _, err := m.calendar.Engine().JumpToYear(year); err != nil {
			logger.Warn("year jump rejected", "year", m.yearForm.Year, "error", err)
			m.formErr = err.Error()
		} else {
			m.formErr = ""
			m.calendar.SyncFocus()
		}
		m.state = constants.StateBoard
		return m, nil
	case huh.StateAborted:
		m.state = constants.StateBoard
		return m, nil
	}
	return m, cmd
}

// NewYearForm prompts for a year in the supported range.
func NewYearForm(fm *YearFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("跳转到年份").
				Description(fmt.Sprintf("%d - %d", calendar.MinYear, calendar.MaxYear)).
				Value(&fm.Year).
				Validate(validateYear),
		),
	)
}

func validateYear(s string) error {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("year must be a number")
	}
	if year < calendar.MinYear || year > calendar.MaxYear {
		return fmt.Errorf("year must be between %d and %d", calendar.MinYear, calendar.MaxYear)
	}
	return nil
}
