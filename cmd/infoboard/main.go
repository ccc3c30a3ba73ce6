package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/infoboard/internal/cli"
	"github.com/julianstephens/infoboard/internal/cli/backups"
	"github.com/julianstephens/infoboard/internal/cli/settings"
	"github.com/julianstephens/infoboard/internal/cli/system"
	"github.com/julianstephens/infoboard/internal/cli/views"
	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/errors"
	"github.com/julianstephens/infoboard/internal/logger"
	"github.com/julianstephens/infoboard/internal/storage"
)

var CLI struct {
	Version        kong.VersionFlag
	Config         string `help:"Settings database path." type:"path" default:"${config_path}" env:"INFOBOARD_CONFIG"`
	Debug          bool   `help:"Enable debug logging."`
	OpenweatherKey string `help:"OpenWeather API key (overrides the keyring)." env:"INFOBOARD_OPENWEATHER_KEY"`

	Tui      system.TuiCmd        `cmd:"" help:"Launch the terminal board." default:"1"`
	Init     system.InitCmd       `cmd:"" help:"Initialize infoboard storage."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Serve    system.ServeCmd      `cmd:"" help:"Serve the board as a JSON API."`
	Month    views.MonthCmd       `cmd:"" help:"Print a month grid."`
	Day      views.DayCmd         `cmd:"" help:"Print the detail line for a day."`
	Weather  views.WeatherCmd     `cmd:"" help:"Fetch and print the current weather."`
	Clock    views.ClockCmd       `cmd:"" help:"Print the current date and time."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage board settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Back up the settings database." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore settings from a backup."`
	} `cmd:"" help:"Manage settings backups."`
	Key struct {
		Set    system.KeySetCmd    `cmd:"" help:"Store the OpenWeather API key in the OS keyring."`
		Delete system.KeyDeleteCmd `cmd:"" help:"Remove the OpenWeather API key from the OS keyring."`
		Status system.KeyStatusCmd `cmd:"" help:"Show where the API key is read from." default:"1"`
	} `cmd:"" help:"Manage the OpenWeather API key."`
}

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Calendar, lunar date, clock and weather board"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"serve_addr":  constants.DefaultServeAddr,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
		Quiet:     ctx.Command() == "tui",
	}); err != nil {
		errors.Fatalf("failed to initialize logger: %v", err)
	}

	store := storage.NewSQLiteStore(CLI.Config)
	defer store.Close()

	appCtx := &cli.Context{
		Store:  store,
		APIKey: CLI.OpenweatherKey,
		Debug:  CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
