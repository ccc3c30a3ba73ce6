package views

import (
	"fmt"
	"time"

	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/constants"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Date in YYYY-MM-DD format (defaults to today)."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	cfg, err := ctx.BoardConfig()
	if err != nil {
		return err
	}
	opts, err := cfg.CalendarOptions()
	if err != nil {
		return err
	}

	var day time.Time
	if c.Date == "" {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		day = now()
	} else {
		day, err = time.Parse(constants.DateFormat, c.Date)
		if err != nil {
			return fmt.Errorf("invalid date format: %w", err)
		}
	}

	ctx.Println(calendar.Detail(opts.Lunar, day.Year(), int(day.Month())-1, day.Day()))
	return nil
}
