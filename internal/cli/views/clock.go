package views

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/clock"
)

type ClockCmd struct {
	Watch bool `short:"w" help:"Keep printing the time every second until interrupted."`
}

func (c *ClockCmd) Run(ctx *cli.Context) error {
	now := time.Now
	if ctx.Board.Now != nil {
		now = ctx.Board.Now
	}

	show := func() {
		r := clock.Format(now())
		ctx.Printf("%s %s\n", r.Time, r.Date)
	}
	show()
	if !c.Watch {
		return nil
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(clock.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-sigCtx.Done():
			return nil
		case <-ticker.C:
			show()
		}
	}
}
