package settings

import (
	"fmt"

	"github.com/julianstephens/infoboard/internal/cli"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	WeekStart       *string  `help:"First day of the week (sunday or monday)."`
	GridLayout      *string  `help:"Month grid layout (compact or fixed)."`
	DefaultCity     *string  `help:"City used when geolocation or the coordinate lookup fails."`
	RefreshInterval *int     `help:"Weather refresh interval in minutes."`
	CoordProvider   *string  `help:"Weather provider for coordinates (open-meteo or openweather)."`
	GeoMode         *string  `help:"How to find the board's position (ip, static or off)."`
	Latitude        *float64 `help:"Latitude used when geo-mode is static."`
	Longitude       *float64 `help:"Longitude used when geo-mode is static."`
	GeoTimeoutMs    *int     `help:"Geolocation timeout in milliseconds."`
	GeoMaxAgeMs     *int     `help:"Maximum age of a cached position in milliseconds."`
	GeoHighAccuracy *bool    `help:"Request a high accuracy position."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	settings, err := ctx.Settings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Calendar:")
		ctx.Printf("  Week Start:        %s\n", settings.WeekStart)
		ctx.Printf("  Grid Layout:       %s\n", settings.GridLayout)
		ctx.Println("\nWeather:")
		ctx.Printf("  Default City:      %s\n", settings.DefaultCity)
		ctx.Printf("  Refresh Interval:  %d min\n", settings.RefreshIntervalMin)
		ctx.Printf("  Coord Provider:    %s\n", settings.CoordProvider)
		ctx.Println("\nGeolocation:")
		ctx.Printf("  Mode:              %s\n", settings.GeoMode)
		ctx.Printf("  Position:          %.4f, %.4f\n", settings.Latitude, settings.Longitude)
		ctx.Printf("  Timeout:           %d ms\n", settings.GeoTimeoutMs)
		ctx.Printf("  Max Age:           %d ms\n", settings.GeoMaxAgeMs)
		ctx.Printf("  High Accuracy:     %v\n", settings.GeoHighAccuracy)
		return nil
	}

	updated := false
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
			updated = true
		}
	}
	setInt := func(dst *int, v *int) {
		if v != nil {
			*dst = *v
			updated = true
		}
	}
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
			updated = true
		}
	}

	setString(&settings.WeekStart, c.WeekStart)
	setString(&settings.GridLayout, c.GridLayout)
	setString(&settings.DefaultCity, c.DefaultCity)
	setInt(&settings.RefreshIntervalMin, c.RefreshInterval)
	setString(&settings.CoordProvider, c.CoordProvider)
	setString(&settings.GeoMode, c.GeoMode)
	setFloat(&settings.Latitude, c.Latitude)
	setFloat(&settings.Longitude, c.Longitude)
	setInt(&settings.GeoTimeoutMs, c.GeoTimeoutMs)
	setInt(&settings.GeoMaxAgeMs, c.GeoMaxAgeMs)
	if c.GeoHighAccuracy != nil {
		settings.GeoHighAccuracy = *c.GeoHighAccuracy
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}
