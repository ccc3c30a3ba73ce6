package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/infoboard/internal/board"
	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/cli"
)

type MonthCmd struct {
	Year  int `help:"Year to show (defaults to the current year)."`
	Month int `help:"Month to show, 1-12 (defaults to the current month)."`
}

func (c *MonthCmd) Run(ctx *cli.Context) error {
	cfg, err := ctx.BoardConfig()
	if err != nil {
		return err
	}
	engine, err := board.NewEngine(cfg)
	if err != nil {
		return err
	}

	cur := engine.Cursor()
	if c.Year != 0 {
		if c.Year < calendar.MinYear || c.Year > calendar.MaxYear {
			return fmt.Errorf("year must be between %d and %d", calendar.MinYear, calendar.MaxYear)
		}
		cur.Year = c.Year
	}
	if c.Month != 0 {
		if c.Month < 1 || c.Month > 12 {
			return fmt.Errorf("month must be between 1 and 12")
		}
		cur.Month = c.Month - 1
	}

	ctx.Printf("%s", RenderMonth(calendar.Title(cur), engine.Header(), engine.BuildGrid(cur)))
	ctx.Println()
	ctx.Println(engine.SelectedDetail())
	return nil
}

// RenderMonth lays the grid out in rows of seven four-column cells. Days
// outside the month are left blank and today is marked with '*'.
func RenderMonth(title string, header []string, cells []calendar.DayCell) string {
	var b strings.Builder

	pad := (7*4 - lipgloss.Width(title)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + title + "\n")

	for _, h := range header {
		b.WriteString("  " + h)
	}
	b.WriteString("\n")

	for i, cell := range cells {
		switch {
		case !cell.IsCurrentMonth:
			b.WriteString("    ")
		case cell.IsToday:
			fmt.Fprintf(&b, "%3d*", cell.Day)
		default:
			fmt.Fprintf(&b, "%3d ", cell.Day)
		}
		if i%7 == 6 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
