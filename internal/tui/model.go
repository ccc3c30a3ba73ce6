package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/constants"
	calendarview "github.com/julianstephens/infoboard/internal/tui/components/calendar"
	"github.com/julianstephens/infoboard/internal/tui/components/clock"
	weatherview "github.com/julianstephens/infoboard/internal/tui/components/weather"
	"github.com/julianstephens/infoboard/internal/weather"
)

type YearFormModel struct {
	Year string
}

// refreshMsg starts a new weather cycle and re-arms the refresh timer.
type refreshMsg time.Time

// weatherEventMsg carries a finished weather task back to Update.
type weatherEventMsg struct {
	event weather.Event
}

type Model struct {
	ctx      context.Context
	acq      *weather.Acquisition
	interval time.Duration
	state    constants.SessionState
	keys     KeyMap
	help     help.Model
	clock    clock.Model
	calendar calendarview.Model
	weather  weatherview.Model
	form     *huh.Form
	yearForm *YearFormModel
	formErr  string
	width    int
	height   int
	quitting bool
}

// NewModel builds the board. A zero interval disables periodic weather
// refresh; the first cycle still starts on Init.
func NewModel(ctx context.Context, engine *calendar.Engine, acq *weather.Acquisition, interval time.Duration) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	now := engine.Options().Now
	if now == nil {
		now = time.Now
	}
	w := weatherview.New()
	w.SetState(acq.State())
	return Model{
		ctx:      ctx,
		acq:      acq,
		interval: interval,
		state:    constants.StateBoard,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		clock:    clock.New(now()),
		calendar: calendarview.New(engine),
		weather:  w,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.clock.Init(),
		m.weather.Init(),
		func() tea.Msg { return refreshMsg(time.Now()) },
	)
}

func (m Model) refreshTick() tea.Cmd {
	if m.interval <= 0 {
		return nil
	}
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func (m Model) runTask(task weather.Task) tea.Cmd {
	if task == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		return weatherEventMsg{event: task(ctx)}
	}
}

// Engine exposes the calendar engine for callers that inspect the board.
func (m Model) Engine() *calendar.Engine { return m.calendar.Engine() }

// Weather returns the weather state currently displayed.
func (m Model) Weather() weather.State { return m.weather.State }
