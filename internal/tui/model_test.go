package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/geo"
	"github.com/julianstephens/infoboard/internal/weather"
)

type stubCoords struct {
	err error
}

func (s stubCoords) ByCoordinates(ctx context.Context, lat, lon float64) (weather.Payload, error) {
	if s.err != nil {
		return weather.Payload{}, s.err
	}
	return weather.Payload{Description: "晴天", Icon: "☀️", TemperatureC: 3, WindSpeed: 12, WindUnit: "km/h"}, nil
}

type stubCity struct{}

func (stubCity) ByCity(ctx context.Context, city string) (weather.Payload, error) {
	return weather.Payload{Description: "多云", TemperatureC: 5, WindUnit: "m/s", Location: city}, nil
}

func newTestModel(t *testing.T, coords weather.CoordinateProvider) Model {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.February, 15, 9, 30, 0, 0, time.UTC) }
	engine := calendar.New(calendar.Options{Now: now})
	acq := weather.NewAcquisition(weather.Config{
		Locator:     geo.Static{Latitude: 39.9, Longitude: 116.4, Label: "北京"},
		Coordinates: coords,
		City:        stubCity{},
		DefaultCity: "Beijing",
		Now:         now,
		NewCycleID:  func() string { return "cycle" },
	})
	return NewModel(context.Background(), engine, acq, time.Minute)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestMonthAndYearKeys(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want calendar.Cursor
	}{
		{"next month", []tea.KeyMsg{runes("]")}, calendar.Cursor{Year: 2024, Month: 2}},
		{"prev month wraps year", []tea.KeyMsg{runes("["), runes("["), runes("[")}, calendar.Cursor{Year: 2023, Month: 10}},
		{"next year", []tea.KeyMsg{runes("}")}, calendar.Cursor{Year: 2025, Month: 1}},
		{"prev year", []tea.KeyMsg{runes("{")}, calendar.Cursor{Year: 2023, Month: 1}},
		{"today after paging", []tea.KeyMsg{runes("}"), runes("]"), runes("t")}, calendar.Cursor{Year: 2024, Month: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, stubCoords{})
			for _, k := range tt.keys {
				m, _ = send(t, m, k)
			}
			if got := m.Engine().Cursor(); got != tt.want {
				t.Errorf("cursor = %+v, want %+v", got, tt.want)
			}
			f := m.calendar.Focus()
			if f.Year != tt.want.Year || f.Month != tt.want.Month {
				t.Errorf("focus %+v not in displayed month %+v", f, tt.want)
			}
		})
	}
}

func TestFocusCrossesMonth(t *testing.T) {
	m := newTestModel(t, stubCoords{})
	for i := 0; i < 15; i++ {
		m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	}
	want := calendar.Selection{Year: 2024, Month: 0, Day: 31}
	if got := m.calendar.Focus(); got != want {
		t.Fatalf("focus = %+v, want %+v", got, want)
	}
	if got := m.Engine().Cursor(); got != (calendar.Cursor{Year: 2024, Month: 0}) {
		t.Errorf("cursor = %+v, want January 2024", got)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.Engine().Cursor(); got != (calendar.Cursor{Year: 2024, Month: 1}) {
		t.Errorf("cursor after moving down = %+v, want February 2024", got)
	}
	if got := m.calendar.Focus(); got.Day != 7 {
		t.Errorf("focus day = %d, want 7", got.Day)
	}
}

func TestSelectFocusedDay(t *testing.T) {
	m := newTestModel(t, stubCoords{})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	want := calendar.Selection{Year: 2024, Month: 1, Day: 16}
	if got := m.Engine().Selection(); got != want {
		t.Errorf("selection = %+v, want %+v", got, want)
	}
	if !strings.Contains(m.View(), "2024年2月16日 星期五") {
		t.Errorf("view missing detail line:\n%s", m.View())
	}
}

func TestRefreshCycle(t *testing.T) {
	m := newTestModel(t, stubCoords{})
	if m.Weather().Phase != weather.Idle {
		t.Fatalf("initial phase = %v, want Idle", m.Weather().Phase)
	}

	m, cmd := send(t, m, refreshMsg(time.Now()))
	if m.Weather().Phase != weather.Locating {
		t.Fatalf("phase after refresh = %v, want Locating", m.Weather().Phase)
	}
	if cmd == nil {
		t.Fatal("refresh returned no command")
	}

	m, cmd = send(t, m, weatherEventMsg{event: weather.Located{
		Generation: m.Weather().Generation,
		Position:   geo.Position{Latitude: 39.9, Longitude: 116.4},
	}})
	if m.Weather().Phase != weather.Fetching || m.Weather().Source != weather.SourceCoordinates {
		t.Fatalf("state after locate = %v/%v, want Fetching/Coordinates", m.Weather().Phase, m.Weather().Source)
	}
	if cmd == nil {
		t.Fatal("locate returned no fetch command")
	}

	m, cmd = send(t, m, cmd())
	if m.Weather().Phase != weather.Ready {
		t.Fatalf("phase after fetch = %v, want Ready", m.Weather().Phase)
	}
	if cmd != nil {
		t.Error("ready state should not schedule more work")
	}
	if !strings.Contains(m.View(), "晴天") {
		t.Errorf("view missing weather reading:\n%s", m.View())
	}
}

func TestCoordinateFailureFallsBackToCity(t *testing.T) {
	m := newTestModel(t, stubCoords{err: errors.New("boom")})
	m, _ = send(t, m, refreshMsg(time.Now()))

	gen := m.Weather().Generation
	m, cmd := send(t, m, weatherEventMsg{event: weather.Located{Generation: gen}})
	m, cmd = send(t, m, cmd())
	if m.Weather().Source != weather.SourceCity || m.Weather().Phase != weather.Fetching {
		t.Fatalf("state = %v/%v, want Fetching/City", m.Weather().Phase, m.Weather().Source)
	}
	m, _ = send(t, m, cmd())
	if m.Weather().Phase != weather.Ready || m.Weather().Payload.Location != "Beijing" {
		t.Errorf("state = %+v, want Ready for Beijing", m.Weather())
	}
}

func TestRetryDiscardsStaleCompletion(t *testing.T) {
	m := newTestModel(t, stubCoords{})
	m, _ = send(t, m, refreshMsg(time.Now()))
	stale := m.Weather().Generation

	m, cmd := send(t, m, runes("r"))
	if cmd == nil {
		t.Fatal("retry returned no command")
	}
	if m.Weather().Generation != stale+1 {
		t.Fatalf("generation = %d, want %d", m.Weather().Generation, stale+1)
	}

	m, cmd = send(t, m, weatherEventMsg{event: weather.Located{Generation: stale}})
	if cmd != nil || m.Weather().Phase != weather.Locating {
		t.Errorf("stale completion changed state: %v", m.Weather().Phase)
	}
}

func TestJumpYearForm(t *testing.T) {
	m := newTestModel(t, stubCoords{})
	m, _ = send(t, m, runes("g"))
	if m.state != constants.StateJumpYear {
		t.Fatalf("state = %v, want StateJumpYear", m.state)
	}
	if m.yearForm.Year != "2024" {
		t.Errorf("form prefilled with %q, want 2024", m.yearForm.Year)
	}

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != constants.StateBoard {
		t.Errorf("esc left state %v", m.state)
	}
	if got := m.Engine().Cursor().Year; got != 2024 {
		t.Errorf("cancelled jump moved cursor to %d", got)
	}
}

func TestValidateYear(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2024", false},
		{" 1 ", false},
		{"9999", false},
		{"0", true},
		{"10000", true},
		{"-5", true},
		{"abc", true},
		{"", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateYear(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateYear(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, stubCoords{})
	m, cmd := send(t, m, runes("q"))
	if cmd == nil || !m.quitting {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
