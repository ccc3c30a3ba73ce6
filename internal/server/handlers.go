package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/clock"
	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/weather"
)

// calendarView is the rendered month. Months are 0-based throughout the API;
// only the date query of /api/calendar/day uses YYYY-MM-DD.
type calendarView struct {
	Title     string             `json:"title"`
	Header    []string           `json:"header"`
	Cursor    calendar.Cursor    `json:"cursor"`
	Selection calendar.Selection `json:"selection"`
	Detail    string             `json:"detail"`
	Cells     []calendar.DayCell `json:"cells"`
}

type navigateRequest struct {
	Months int `json:"months"`
	Years  int `json:"years"`
}

type jumpRequest struct {
	Year  *int `json:"year"`
	Today bool `json:"today"`
}

type selectRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type dayView struct {
	Date   string `json:"date"`
	Detail string `json:"detail"`
}

type weatherView struct {
	weather.State
	Text    string `json:"text"`
	Updated string `json:"updated,omitempty"`
}

// view must be called with s.mu held.
func (s *Server) view(c calendar.Cursor) calendarView {
	return calendarView{
		Title:     calendar.Title(c),
		Header:    s.engine.Header(),
		Cursor:    c,
		Selection: s.engine.Selection(),
		Detail:    s.engine.SelectedDetail(),
		Cells:     s.engine.BuildGrid(c),
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "version": constants.Version})
}

func (s *Server) getClock(c echo.Context) error {
	return c.JSON(http.StatusOK, clock.Format(s.now()))
}

// getCalendar renders the current month, or the month given by ?year&month
// without moving the cursor.
func (s *Server) getCalendar(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.engine.Cursor()
	if y := c.QueryParam("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < calendar.MinYear || year > calendar.MaxYear {
			return badRequest("year must be between %d and %d", calendar.MinYear, calendar.MaxYear)
		}
		cur.Year = year
	}
	if m := c.QueryParam("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 0 || month > 11 {
			return badRequest("month must be between 0 and 11")
		}
		cur.Month = month
	}
	return c.JSON(http.StatusOK, s.view(cur))
}

func (s *Server) navigate(c echo.Context) error {
	var req navigateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.engine.Cursor().Add(req.Months + 12*req.Years)
	if next.Year < calendar.MinYear || next.Year > calendar.MaxYear {
		return badRequest("year must be between %d and %d", calendar.MinYear, calendar.MaxYear)
	}
	s.engine.NavigateMonth(req.Months + 12*req.Years)
	return c.JSON(http.StatusOK, s.view(s.engine.Cursor()))
}

func (s *Server) jump(c echo.Context) error {
	var req jumpRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case req.Today:
		s.engine.JumpToToday()
	case req.Year != nil:
		if _, err := s.engine.JumpToYear(*req.Year); err != nil {
			return badRequest("%s", err.Error())
		}
	default:
		return badRequest("year or today is required")
	}
	return c.JSON(http.StatusOK, s.view(s.engine.Cursor()))
}

func (s *Server) selectDay(c echo.Context) error {
	var req selectRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.engine.SelectDay(req.Year, req.Month, req.Day) {
		return badRequest("invalid date %d-%d-%d", req.Year, req.Month, req.Day)
	}
	return c.JSON(http.StatusOK, s.view(s.engine.Cursor()))
}

// day renders the detail line for ?date=YYYY-MM-DD, or the selection.
func (s *Server) day(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := c.QueryParam("date")
	if date == "" {
		sel := s.engine.Selection()
		return c.JSON(http.StatusOK, dayView{
			Date:   time.Date(sel.Year, time.Month(sel.Month+1), sel.Day, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat),
			Detail: s.engine.SelectedDetail(),
		})
	}

	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return badRequest("date must be YYYY-MM-DD")
	}
	return c.JSON(http.StatusOK, dayView{
		Date:   date,
		Detail: s.engine.DayDetail(t.Year(), int(t.Month())-1, t.Day()),
	})
}

func (s *Server) getWeather(c echo.Context) error {
	st := s.runner.Snapshot()
	return c.JSON(http.StatusOK, weatherView{State: st, Text: st.Text(), Updated: st.Updated()})
}

func (s *Server) retryWeather(c echo.Context) error {
	s.runner.Refresh()
	return c.JSON(http.StatusAccepted, map[string]string{"status": "refreshing"})
}
