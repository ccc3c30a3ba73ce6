// Package calendar implements the month grid, navigation cursor, day selection
// and day-detail text of the info board.
//
// Months are 0-indexed (0 = January) everywhere in this package; the lunar
// converter is the only collaborator that receives 1-indexed months.
package calendar

import "fmt"

// WeekStart selects which weekday occupies the first grid column.
type WeekStart int

const (
	Sunday WeekStart = iota
	Monday
)

func (w WeekStart) String() string {
	if w == Monday {
		return "monday"
	}
	return "sunday"
}

// ParseWeekStart accepts "sunday" or "monday".
func ParseWeekStart(s string) (WeekStart, error) {
	switch s {
	case "sunday", "sun", "":
		return Sunday, nil
	case "monday", "mon":
		return Monday, nil
	}
	return Sunday, fmt.Errorf("invalid week start %q (want sunday or monday)", s)
}

// Layout controls how many spillover cells surround the month.
type Layout int

const (
	// Compact renders only as many complete weeks as the month needs.
	Compact Layout = iota
	// Fixed always renders six weeks (42 cells) so the grid height never changes.
	Fixed
)

func (l Layout) String() string {
	if l == Fixed {
		return "fixed"
	}
	return "compact"
}

// ParseLayout accepts "compact" or "fixed".
func ParseLayout(s string) (Layout, error) {
	switch s {
	case "compact", "":
		return Compact, nil
	case "fixed":
		return Fixed, nil
	}
	return Compact, fmt.Errorf("invalid grid layout %q (want compact or fixed)", s)
}

// Cursor is the (year, month) the calendar is displaying.
type Cursor struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 0..11
}

// Add moves the cursor by a number of months, carrying into the year.
func (c Cursor) Add(months int) Cursor {
	total := c.Year*12 + c.Month + months
	year := floorDiv(total, 12)
	return Cursor{Year: year, Month: total - year*12}
}

// Selection is the day chosen for detail display.
type Selection struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 0..11
	Day   int `json:"day"`
}

// DayCell is one rendered position of the month grid.
type DayCell struct {
	Year           int  `json:"year"`
	Month          int  `json:"month"` // 0..11
	Day            int  `json:"day"`
	IsCurrentMonth bool `json:"is_current_month"`
	IsToday        bool `json:"is_today"`
	IsSelected     bool `json:"is_selected"`
}

var (
	weekdayNames  = [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}
	weekdayShorts = [7]string{"日", "一", "二", "三", "四", "五", "六"}
)

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in a 0-indexed month, or 0 when the
// month is out of range.
func DaysInMonth(year, month int) int {
	switch month {
	case 0, 2, 4, 6, 7, 9, 11:
		return 31
	case 3, 5, 8, 10:
		return 30
	case 1:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return 0
}

// ValidDate reports whether day exists in the given 0-indexed month.
func ValidDate(year, month, day int) bool {
	return day >= 1 && day <= DaysInMonth(year, month)
}

// Weekday returns 0 (Sunday) through 6 (Saturday) using Zeller's congruence.
func Weekday(year, month, day int) int {
	m := month + 1
	y := year
	if m < 3 {
		m += 12
		y--
	}
	k := floorMod(y, 100)
	j := floorDiv(y, 100)
	h := floorMod(day+(13*(m+1))/5+k+k/4+floorDiv(j, 4)+5*j, 7)
	// Zeller yields 0 = Saturday.
	return (h + 6) % 7
}

// WeekdayName returns the full Chinese weekday name, e.g. 星期四.
func WeekdayName(year, month, day int) string {
	return weekdayNames[Weekday(year, month, day)]
}

// FirstWeekdayOffset is the number of cells preceding the 1st of the month.
func FirstWeekdayOffset(year, month int, ws WeekStart) int {
	wd := Weekday(year, month, 1)
	if ws == Monday {
		return (wd + 6) % 7
	}
	return wd
}

// WeekdayHeader returns the single-character column labels for ws.
func WeekdayHeader(ws WeekStart) []string {
	header := make([]string, 0, 7)
	for i := 0; i < 7; i++ {
		idx := i
		if ws == Monday {
			idx = (i + 1) % 7
		}
		header = append(header, weekdayShorts[idx])
	}
	return header
}

// Title renders the month heading, e.g. 2024年2月.
func Title(c Cursor) string {
	return fmt.Sprintf("%d年%d月", c.Year, c.Month+1)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
