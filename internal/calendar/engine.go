package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/infoboard/internal/logger"
	"github.com/julianstephens/infoboard/internal/lunar"
)

// MinYear and MaxYear bound explicit year jumps.
const (
	MinYear = 1
	MaxYear = 9999
)

// Options configures an Engine. Zero values select a Sunday-first compact
// grid, the wall clock, and no lunar support.
type Options struct {
	WeekStart WeekStart
	Layout    Layout
	Lunar     lunar.Converter
	Now       func() time.Time
}

// Engine owns the calendar cursor and selection. It is not safe for
// concurrent use; the TUI drives it from its single update loop and the HTTP
// server builds a fresh engine per request.
type Engine struct {
	opts      Options
	cursor    Cursor
	selection Selection
}

// New returns an engine whose cursor and selection are today.
func New(opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Lunar == nil {
		opts.Lunar = lunar.Unsupported{}
	}
	e := &Engine{opts: opts}
	e.resetToToday()
	return e
}

func (e *Engine) today() Selection {
	now := e.opts.Now()
	return Selection{Year: now.Year(), Month: int(now.Month()) - 1, Day: now.Day()}
}

func (e *Engine) resetToToday() {
	t := e.today()
	e.cursor = Cursor{Year: t.Year, Month: t.Month}
	e.selection = t
}

// Options returns the engine configuration.
func (e *Engine) Options() Options { return e.opts }

// Cursor returns the displayed month.
func (e *Engine) Cursor() Cursor { return e.cursor }

// Selection returns the selected day.
func (e *Engine) Selection() Selection { return e.selection }

// Title renders the heading of the displayed month.
func (e *Engine) Title() string { return Title(e.cursor) }

// Header returns the weekday column labels.
func (e *Engine) Header() []string { return WeekdayHeader(e.opts.WeekStart) }

// Grid builds the cells for the displayed month.
func (e *Engine) Grid() []DayCell { return e.BuildGrid(e.cursor) }

// BuildGrid builds the cells for c. Leading cells belong to the previous month
// and trailing cells to the next; both carry IsCurrentMonth false and are never
// marked today or selected.
func (e *Engine) BuildGrid(c Cursor) []DayCell {
	c = c.Add(0)
	offset := FirstWeekdayOffset(c.Year, c.Month, e.opts.WeekStart)
	days := DaysInMonth(c.Year, c.Month)

	size := offset + days
	if rem := size % 7; rem != 0 {
		size += 7 - rem
	}
	if e.opts.Layout == Fixed {
		size = 42
	}

	prev := c.Add(-1)
	next := c.Add(1)
	prevDays := DaysInMonth(prev.Year, prev.Month)
	today := e.today()

	cells := make([]DayCell, 0, size)
	for i := 0; i < size; i++ {
		idx := i - offset
		switch {
		case idx < 0:
			cells = append(cells, DayCell{Year: prev.Year, Month: prev.Month, Day: prevDays + idx + 1})
		case idx >= days:
			cells = append(cells, DayCell{Year: next.Year, Month: next.Month, Day: idx - days + 1})
		default:
			day := idx + 1
			cells = append(cells, DayCell{
				Year:           c.Year,
				Month:          c.Month,
				Day:            day,
				IsCurrentMonth: true,
				IsToday:        today == Selection{Year: c.Year, Month: c.Month, Day: day},
				IsSelected:     e.selection == Selection{Year: c.Year, Month: c.Month, Day: day},
			})
		}
	}
	return cells
}

// NavigateMonth moves the cursor by delta months and returns the new grid.
// The selection is kept even when it falls outside the displayed month.
func (e *Engine) NavigateMonth(delta int) []DayCell {
	e.cursor = e.cursor.Add(delta)
	logger.Debug("calendar navigate", "year", e.cursor.Year, "month", e.cursor.Month+1)
	return e.Grid()
}

// NavigateYear moves the cursor by delta years, keeping the month.
func (e *Engine) NavigateYear(delta int) []DayCell {
	return e.NavigateMonth(delta * 12)
}

// JumpToYear sets the cursor year, keeping the month.
func (e *Engine) JumpToYear(year int) ([]DayCell, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("year %d out of range %d-%d", year, MinYear, MaxYear)
	}
	e.cursor.Year = year
	return e.Grid(), nil
}

// JumpToToday resets both the cursor and the selection to today.
func (e *Engine) JumpToToday() []DayCell {
	e.resetToToday()
	return e.Grid()
}

// SelectDay records a new selection and reports whether it was accepted.
// Dates that do not exist leave the previous selection untouched.
func (e *Engine) SelectDay(year, month, day int) bool {
	if !ValidDate(year, month, day) {
		logger.Debug("calendar selection ignored", "year", year, "month", month+1, "day", day)
		return false
	}
	e.selection = Selection{Year: year, Month: month, Day: day}
	return true
}

// SelectedDetail renders the detail line of the current selection.
func (e *Engine) SelectedDetail() string {
	s := e.selection
	return e.DayDetail(s.Year, s.Month, s.Day)
}

// DayDetail renders the detail line for any date using the engine's lunar
// converter.
func (e *Engine) DayDetail(year, month, day int) string {
	return Detail(e.opts.Lunar, year, month, day)
}
