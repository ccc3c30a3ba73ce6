package system

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/infoboard/internal/board"
	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	cfg, err := ctx.BoardConfig()
	if err != nil {
		return err
	}
	engine, err := board.NewEngine(cfg)
	if err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(runCtx, engine, board.NewAcquisition(cfg), board.RefreshInterval(cfg.Settings))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(runCtx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal board failed: %w", err)
	}
	return nil
}
