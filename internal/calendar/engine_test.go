package calendar

import (
	"testing"
	"time"

	"github.com/julianstephens/infoboard/internal/lunar"
)

func fixedNow(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 9, 30, 0, 0, time.Local) }
}

func newTestEngine(opts Options) *Engine {
	if opts.Now == nil {
		opts.Now = fixedNow(2024, time.February, 15)
	}
	return New(opts)
}

func TestNewStartsAtToday(t *testing.T) {
	e := newTestEngine(Options{})
	if got := e.Cursor(); got != (Cursor{Year: 2024, Month: 1}) {
		t.Errorf("cursor = %+v", got)
	}
	if got := e.Selection(); got != (Selection{Year: 2024, Month: 1, Day: 15}) {
		t.Errorf("selection = %+v", got)
	}
}

func TestBuildGridFebruary2024SundayFirst(t *testing.T) {
	e := newTestEngine(Options{})
	cells := e.Grid()

	if len(cells) != 35 {
		t.Fatalf("len(cells) = %d, want 35", len(cells))
	}
	leading := []int{28, 29, 30, 31}
	for i, day := range leading {
		c := cells[i]
		if c.IsCurrentMonth || c.Month != 0 || c.Day != day {
			t.Errorf("cell %d = %+v, want January %d spillover", i, c, day)
		}
	}
	if c := cells[4]; !c.IsCurrentMonth || c.Day != 1 {
		t.Errorf("cell 4 = %+v, want 1 February", c)
	}
	if c := cells[32]; !c.IsCurrentMonth || c.Day != 29 {
		t.Errorf("cell 32 = %+v, want 29 February", c)
	}
	if c := cells[33]; c.IsCurrentMonth || c.Month != 2 || c.Day != 1 {
		t.Errorf("cell 33 = %+v, want 1 March spillover", c)
	}

	var today, selected int
	for _, c := range cells {
		if c.IsToday {
			today++
			if c.Day != 15 {
				t.Errorf("today flag on day %d", c.Day)
			}
		}
		if c.IsSelected {
			selected++
		}
	}
	if today != 1 || selected != 1 {
		t.Errorf("today=%d selected=%d, want 1 and 1", today, selected)
	}
}

func TestBuildGridProperties(t *testing.T) {
	layouts := []Layout{Compact, Fixed}
	starts := []WeekStart{Sunday, Monday}

	for _, layout := range layouts {
		for _, ws := range starts {
			e := newTestEngine(Options{WeekStart: ws, Layout: layout})
			for year := 1999; year <= 2031; year += 4 {
				for month := 0; month < 12; month++ {
					c := Cursor{Year: year, Month: month}
					cells := e.BuildGrid(c)
					offset := FirstWeekdayOffset(year, month, ws)
					days := DaysInMonth(year, month)

					if len(cells)%7 != 0 {
						t.Fatalf("%v/%v %+v: %d cells not whole weeks", layout, ws, c, len(cells))
					}
					if layout == Fixed && len(cells) != 42 {
						t.Fatalf("fixed layout %+v: %d cells", c, len(cells))
					}
					if layout == Compact && len(cells) >= offset+days+7 {
						t.Fatalf("compact layout %+v: %d cells has an empty week", c, len(cells))
					}

					current := 0
					for i, cell := range cells {
						if cell.IsCurrentMonth {
							current++
							if cell.Day != i-offset+1 {
								t.Fatalf("%+v cell %d day %d", c, i, cell.Day)
							}
						}
						if !cell.IsCurrentMonth && (cell.IsToday || cell.IsSelected) {
							t.Fatalf("%+v spillover cell %d flagged: %+v", c, i, cell)
						}
						wantWeekday := (i + int(ws)) % 7
						if got := Weekday(cell.Year, cell.Month, cell.Day); got != wantWeekday {
							t.Fatalf("%+v cell %d weekday %d, want %d", c, i, got, wantWeekday)
						}
					}
					if current != days {
						t.Fatalf("%+v: %d current-month cells, want %d", c, current, days)
					}
				}
			}
		}
	}
}

func TestBuildGridTodayOnlyInCurrentMonth(t *testing.T) {
	// 31 January 2024 appears as spillover in the February grid.
	e := newTestEngine(Options{Now: fixedNow(2024, time.January, 31)})
	cells := e.BuildGrid(Cursor{Year: 2024, Month: 1})
	for _, c := range cells {
		if c.IsToday {
			t.Fatalf("unexpected today flag on %+v", c)
		}
	}
}

func TestNavigateMonth(t *testing.T) {
	e := newTestEngine(Options{})
	for i := 0; i < 12; i++ {
		e.NavigateMonth(1)
	}
	if got := e.Cursor(); got != (Cursor{Year: 2025, Month: 1}) {
		t.Errorf("after +12 cursor = %+v", got)
	}
	for i := 0; i < 12; i++ {
		e.NavigateMonth(-1)
	}
	if got := e.Cursor(); got != (Cursor{Year: 2024, Month: 1}) {
		t.Errorf("after -12 cursor = %+v", got)
	}

	e = newTestEngine(Options{Now: fixedNow(2024, time.December, 5)})
	e.NavigateMonth(1)
	if got := e.Cursor(); got != (Cursor{Year: 2025, Month: 0}) {
		t.Errorf("December +1 = %+v", got)
	}
	e.NavigateMonth(-1)
	e.NavigateMonth(-11)
	e.NavigateMonth(-1)
	if got := e.Cursor(); got != (Cursor{Year: 2023, Month: 11}) {
		t.Errorf("January -1 = %+v", got)
	}
}

func TestNavigationKeepsSelection(t *testing.T) {
	e := newTestEngine(Options{})
	if !e.SelectDay(2024, 1, 20) {
		t.Fatal("SelectDay rejected 20 February")
	}
	cells := e.NavigateMonth(1)
	for _, c := range cells {
		if c.IsSelected {
			t.Fatalf("selection leaked into March grid: %+v", c)
		}
	}
	if got := e.Selection(); got != (Selection{Year: 2024, Month: 1, Day: 20}) {
		t.Errorf("selection = %+v", got)
	}
	cells = e.NavigateMonth(-1)
	found := false
	for _, c := range cells {
		if c.IsSelected {
			found = c.Day == 20
		}
	}
	if !found {
		t.Error("selection not marked after returning to February")
	}
}

func TestNavigateYearAndJump(t *testing.T) {
	e := newTestEngine(Options{})
	e.NavigateYear(-1)
	if got := e.Cursor(); got != (Cursor{Year: 2023, Month: 1}) {
		t.Errorf("year back = %+v", got)
	}
	e.NavigateYear(2)
	if got := e.Cursor(); got != (Cursor{Year: 2025, Month: 1}) {
		t.Errorf("year forward = %+v", got)
	}

	if _, err := e.JumpToYear(1990); err != nil {
		t.Fatal(err)
	}
	if got := e.Cursor(); got != (Cursor{Year: 1990, Month: 1}) {
		t.Errorf("jump = %+v", got)
	}
	if _, err := e.JumpToYear(0); err == nil {
		t.Error("expected error for year 0")
	}
	if _, err := e.JumpToYear(10000); err == nil {
		t.Error("expected error for year 10000")
	}
	if got := e.Cursor(); got.Year != 1990 {
		t.Errorf("rejected jump moved cursor to %+v", got)
	}

	e.SelectDay(1990, 1, 3)
	e.JumpToToday()
	if got := e.Cursor(); got != (Cursor{Year: 2024, Month: 1}) {
		t.Errorf("today cursor = %+v", got)
	}
	if got := e.Selection(); got != (Selection{Year: 2024, Month: 1, Day: 15}) {
		t.Errorf("today selection = %+v", got)
	}
}

func TestSelectDayRejectsInvalidDates(t *testing.T) {
	e := newTestEngine(Options{})
	tests := []struct {
		name             string
		year, month, day int
	}{
		{"february 30", 2024, 1, 30},
		{"february 29 non-leap", 2023, 1, 29},
		{"day zero", 2024, 4, 0},
		{"month twelve", 2024, 12, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if e.SelectDay(tt.year, tt.month, tt.day) {
				t.Error("expected selection to be rejected")
			}
			if got := e.Selection(); got != (Selection{Year: 2024, Month: 1, Day: 15}) {
				t.Errorf("selection changed to %+v", got)
			}
		})
	}
}

func TestGridIsIdempotent(t *testing.T) {
	e := newTestEngine(Options{Layout: Fixed, WeekStart: Monday})
	a := e.Grid()
	b := e.Grid()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("cell %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDayDetail(t *testing.T) {
	fake := lunar.Func(func(year, month, day int) (lunar.Label, error) {
		if month != 2 {
			t.Errorf("converter received month %d, want 1-indexed 2", month)
		}
		return lunar.Label{Month: "正", Day: "初一"}, nil
	})
	failing := lunar.Func(func(year, month, day int) (lunar.Label, error) {
		return lunar.Label{}, &lunar.ConversionError{Year: year, Month: month, Day: day}
	})

	tests := []struct {
		name string
		conv lunar.Converter
		want string
	}{
		{"converted", fake, "2024年2月10日 星期六 | 农历正月初一"},
		{"conversion failure", failing, "2024年2月10日 星期六 | 农历计算失败"},
		{"no converter", nil, "2024年2月10日 星期六 | 农历暂不可用"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(Options{Lunar: tt.conv})
			if got := e.DayDetail(2024, 1, 10); got != tt.want {
				t.Errorf("DayDetail = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayDetailInvalidDate(t *testing.T) {
	e := newTestEngine(Options{})
	if got := e.DayDetail(2023, 1, 29); got != DetailErrorText {
		t.Errorf("DayDetail = %q, want %q", got, DetailErrorText)
	}
}

func TestSelectedDetailWithChineseConverter(t *testing.T) {
	e := newTestEngine(Options{Lunar: lunar.Chinese{}})
	if !e.SelectDay(2022, 0, 31) {
		t.Fatal("SelectDay rejected 31 January")
	}
	want := "2022年1月31日 星期一 | 农历腊月廿九"
	if got := e.SelectedDetail(); got != want {
		t.Errorf("SelectedDetail = %q, want %q", got, want)
	}
}
