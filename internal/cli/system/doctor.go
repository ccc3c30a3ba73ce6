package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/infoboard/internal/board"
	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/keyring"
	"github.com/julianstephens/infoboard/internal/lunar"
)

// schemaStore is implemented by stores that can report on their database.
type schemaStore interface {
	Ping() error
	SchemaVersion() (current, latest int, err error)
}

type DoctorCmd struct{}

type check struct {
	name    string
	run     func(*cli.Context) error
	warning bool
}

var checks = []check{
	{name: "Database reachable", run: checkDBReachable},
	{name: "Schema version", run: checkSchemaVersion},
	{name: "Settings valid", run: checkSettings},
	{name: "Lunar calendar", run: checkLunar},
	{name: "Clock/timezone", run: checkClockTimezone},
	{name: "OS keyring", run: checkKeyring, warning: true},
	{name: "OpenWeather API key", run: checkAPIKey, warning: true},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	hasError := false
	for _, c := range checks {
		err := c.run(ctx)
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			hasError = true
		}
	}

	ctx.Println()
	if hasError {
		ctx.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	ctx.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if s, ok := ctx.Store.(schemaStore); ok {
		return s.Ping()
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	s, ok := ctx.Store.(schemaStore)
	if !ok {
		return nil
	}
	current, latest, err := s.SchemaVersion()
	if err != nil {
		return err
	}
	if current != latest {
		return fmt.Errorf("schema version %d, expected %d", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	_, err := board.LoadSettings(ctx.Store)
	return err
}

// checkLunar converts a known date; the conversion tables are compiled in,
// so a failure here means a broken build.
func checkLunar(ctx *cli.Context) error {
	label, err := lunar.Chinese{}.Convert(2024, 2, 10)
	if err != nil {
		return err
	}
	if got := label.String(); got != "农历正月初一" {
		return fmt.Errorf("2024-02-10 converted to %q", got)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

func checkKeyring(ctx *cli.Context) error {
	if !keyring.IsAvailable() {
		return keyring.ErrKeyringUnavailable
	}
	return nil
}

func checkAPIKey(ctx *cli.Context) error {
	if _, source := keyring.ResolveAPIKey(ctx.APIKey); source == keyring.SourceNone {
		return errors.New("no API key configured; city weather lookups will fail. Use 'infoboard key set' or --openweather-key")
	}
	return nil
}
