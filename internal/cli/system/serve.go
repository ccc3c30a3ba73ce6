package system

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/julianstephens/infoboard/internal/board"
	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/server"
	"github.com/julianstephens/infoboard/internal/weather"
)

type ServeCmd struct {
	Addr string `help:"Address to listen on." default:"${serve_addr}"`
}

func (c *ServeCmd) Run(ctx *cli.Context) error {
	cfg, err := ctx.BoardConfig()
	if err != nil {
		return err
	}
	engine, err := board.NewEngine(cfg)
	if err != nil {
		return err
	}
	runner := weather.NewRunner(board.NewAcquisition(cfg), board.RefreshInterval(cfg.Settings))

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx.Printf("Serving infoboard on http://%s\n", c.Addr)
	return server.New(engine, runner).Start(sigCtx, c.Addr)
}
