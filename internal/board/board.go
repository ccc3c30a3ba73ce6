// Package board builds the calendar engine and weather acquisition from the
// persisted settings. The terminal board, the CLI and the HTTP server all
// share this wiring.
package board

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/infoboard/internal/calendar"
	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/geo"
	"github.com/julianstephens/infoboard/internal/logger"
	"github.com/julianstephens/infoboard/internal/lunar"
	"github.com/julianstephens/infoboard/internal/models"
	"github.com/julianstephens/infoboard/internal/storage"
	"github.com/julianstephens/infoboard/internal/weather"
)

// Config is everything needed to assemble a board.
type Config struct {
	Settings models.Settings
	APIKey   string

	// Optional overrides, mostly for tests.
	Now     func() time.Time
	Lunar   lunar.Converter
	Locator geo.Locator
	Coords  weather.CoordinateProvider
	City    weather.CityProvider
}

// LoadSettings reads settings from store. An uninitialized store yields the
// defaults so the board works before `infoboard init`. The caller owns store.
func LoadSettings(store storage.Provider) (models.Settings, error) {
	if err := store.Load(); err != nil {
		if errors.Is(err, storage.ErrNotInitialized) {
			logger.Debug("settings store not initialized, using defaults", "path", store.GetConfigPath())
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, err
	}

	s, err := store.GetSettings()
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	models.ApplyDefaultSettings(&s)
	if err := s.Validate(); err != nil {
		return models.Settings{}, err
	}
	return s, nil
}

// CalendarOptions translates the calendar settings.
func (c Config) CalendarOptions() (calendar.Options, error) {
	ws, err := calendar.ParseWeekStart(c.Settings.WeekStart)
	if err != nil {
		return calendar.Options{}, err
	}
	layout, err := calendar.ParseLayout(c.Settings.GridLayout)
	if err != nil {
		return calendar.Options{}, err
	}
	conv := c.Lunar
	if conv == nil {
		conv = lunar.Chinese{}
	}
	return calendar.Options{WeekStart: ws, Layout: layout, Lunar: conv, Now: c.Now}, nil
}

// NewEngine creates a calendar engine positioned on today.
func NewEngine(c Config) (*calendar.Engine, error) {
	opts, err := c.CalendarOptions()
	if err != nil {
		return nil, err
	}
	return calendar.New(opts), nil
}

// GeoOptions translates the geolocation settings.
func GeoOptions(s models.Settings) geo.Options {
	return geo.Options{
		EnableHighAccuracy: s.GeoHighAccuracy,
		Timeout:            time.Duration(s.GeoTimeoutMs) * time.Millisecond,
		MaximumAge:         time.Duration(s.GeoMaxAgeMs) * time.Millisecond,
	}
}

// NewLocator picks the locator for the configured geo mode.
func NewLocator(s models.Settings) geo.Locator {
	switch s.GeoMode {
	case constants.GeoModeStatic:
		return geo.Static{Latitude: s.Latitude, Longitude: s.Longitude}
	case constants.GeoModeOff:
		return geo.Denied{}
	case constants.GeoModeIP:
		return geo.NewCached(geo.NewIPLocator())
	}
	return geo.Unsupported{}
}

// RefreshInterval is the weather refresh period.
func RefreshInterval(s models.Settings) time.Duration {
	if s.RefreshIntervalMin <= 0 {
		return constants.WeatherRefreshInterval
	}
	return time.Duration(s.RefreshIntervalMin) * time.Minute
}

// NewAcquisition creates an Idle weather acquisition with the configured
// locator and providers.
func NewAcquisition(c Config) *weather.Acquisition {
	locator := c.Locator
	if locator == nil {
		locator = NewLocator(c.Settings)
	}

	city := c.City
	if city == nil {
		city = weather.NewOpenWeather(c.APIKey)
	}

	coords := c.Coords
	if coords == nil {
		if c.Settings.CoordProvider == constants.ProviderOpenWeather {
			coords = weather.NewOpenWeather(c.APIKey)
		} else {
			coords = weather.NewOpenMeteo()
		}
	}

	return weather.NewAcquisition(weather.Config{
		Locator:     locator,
		GeoOptions:  GeoOptions(c.Settings),
		Coordinates: coords,
		City:        city,
		DefaultCity: c.Settings.DefaultCity,
		Now:         c.Now,
	})
}
