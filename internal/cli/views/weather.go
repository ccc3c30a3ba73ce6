package views

import (
	"context"
	"fmt"
	"time"

	"github.com/julianstephens/infoboard/internal/board"
	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/geo"
	"github.com/julianstephens/infoboard/internal/weather"
)

type WeatherCmd struct {
	City    string        `help:"Fetch weather for this city instead of locating."`
	Timeout time.Duration `help:"Give up after this long." default:"30s"`
}

func (c *WeatherCmd) Run(ctx *cli.Context) error {
	cfg, err := ctx.BoardConfig()
	if err != nil {
		return err
	}
	if c.City != "" {
		cfg.Settings.DefaultCity = c.City
		cfg.Locator = geo.Unsupported{}
	}

	runCtx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, c.Timeout)
		defer cancel()
	}

	st := board.NewAcquisition(cfg).Run(runCtx)
	printWeather(ctx, st, c.City == "")

	if st.Phase == weather.Failed {
		return fmt.Errorf("weather unavailable: %s", st.Reason)
	}
	return nil
}

func printWeather(ctx *cli.Context, st weather.State, withNotes bool) {
	ctx.Println(st.Text())
	switch {
	case st.Payload != nil && st.Payload.Location != "":
		ctx.Println(st.Payload.Location)
	case st.City != "":
		ctx.Println("城市：" + st.City)
	}
	if st.Reason != "" {
		ctx.Println(st.Reason)
	}
	if withNotes {
		if st.LocateReason != "" {
			ctx.Println("定位失败原因：" + st.LocateReason)
		}
		if st.Note != "" {
			ctx.Println(st.Note)
		}
	}
	if u := st.Updated(); u != "" {
		ctx.Println(u)
	}
}
