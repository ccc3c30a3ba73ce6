package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/infoboard/internal/board"
	"github.com/julianstephens/infoboard/internal/keyring"
	"github.com/julianstephens/infoboard/internal/logger"
	"github.com/julianstephens/infoboard/internal/models"
	"github.com/julianstephens/infoboard/internal/storage"
)

type Context struct {
	Store storage.Provider
	// APIKey is the OpenWeather key from --openweather-key or the
	// environment. The keyring is consulted when it is empty.
	APIKey string
	Debug  bool
	Out    io.Writer

	// Board carries optional overrides (clock, lunar converter, locator,
	// providers) into every board the commands build.
	Board board.Config
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Settings returns the persisted settings, or the defaults before init.
func (c *Context) Settings() (models.Settings, error) {
	return board.LoadSettings(c.Store)
}

// BoardConfig combines the settings, the resolved API key and any overrides.
func (c *Context) BoardConfig() (board.Config, error) {
	s, err := c.Settings()
	if err != nil {
		return board.Config{}, err
	}

	cfg := c.Board
	cfg.Settings = s
	if cfg.APIKey == "" {
		key, source := keyring.ResolveAPIKey(c.APIKey)
		logger.Debug("resolved openweather api key", "source", source)
		cfg.APIKey = key
	}
	return cfg, nil
}
