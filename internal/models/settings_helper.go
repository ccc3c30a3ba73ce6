package models

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/infoboard/internal/constants"
)

// MapToSettings converts a map of key-value pairs to a Settings struct.
// Unknown keys are ignored.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		var err error
		switch key {
		case constants.SettingWeekStart:
			settings.WeekStart = value
		case constants.SettingGridLayout:
			settings.GridLayout = value
		case constants.SettingDefaultCity:
			settings.DefaultCity = value
		case constants.SettingRefreshIntervalMin:
			settings.RefreshIntervalMin, err = strconv.Atoi(value)
		case constants.SettingCoordProvider:
			settings.CoordProvider = value
		case constants.SettingGeoMode:
			settings.GeoMode = value
		case constants.SettingLatitude:
			settings.Latitude, err = strconv.ParseFloat(value, 64)
		case constants.SettingLongitude:
			settings.Longitude, err = strconv.ParseFloat(value, 64)
		case constants.SettingGeoTimeoutMs:
			settings.GeoTimeoutMs, err = strconv.Atoi(value)
		case constants.SettingGeoMaxAgeMs:
			settings.GeoMaxAgeMs, err = strconv.Atoi(value)
		case constants.SettingGeoHighAccuracy:
			settings.GeoHighAccuracy = value == "true"
		}
		if err != nil {
			return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingWeekStart:          settings.WeekStart,
		constants.SettingGridLayout:         settings.GridLayout,
		constants.SettingDefaultCity:        settings.DefaultCity,
		constants.SettingRefreshIntervalMin: strconv.Itoa(settings.RefreshIntervalMin),
		constants.SettingCoordProvider:      settings.CoordProvider,
		constants.SettingGeoMode:            settings.GeoMode,
		constants.SettingLatitude:           strconv.FormatFloat(settings.Latitude, 'f', -1, 64),
		constants.SettingLongitude:          strconv.FormatFloat(settings.Longitude, 'f', -1, 64),
		constants.SettingGeoTimeoutMs:       strconv.Itoa(settings.GeoTimeoutMs),
		constants.SettingGeoMaxAgeMs:        strconv.Itoa(settings.GeoMaxAgeMs),
		constants.SettingGeoHighAccuracy:    strconv.FormatBool(settings.GeoHighAccuracy),
	}
}

// DefaultSettings returns a Settings value with every default applied.
func DefaultSettings() Settings {
	s := Settings{}
	ApplyDefaultSettings(&s)
	return s
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.WeekStart == "" {
		settings.WeekStart = constants.DefaultWeekStart
	}
	if settings.GridLayout == "" {
		settings.GridLayout = constants.DefaultGridLayout
	}
	if settings.DefaultCity == "" {
		settings.DefaultCity = constants.DefaultCity
	}
	if settings.RefreshIntervalMin == 0 {
		settings.RefreshIntervalMin = constants.DefaultRefreshIntervalMin
	}
	if settings.CoordProvider == "" {
		settings.CoordProvider = constants.DefaultCoordProvider
	}
	if settings.GeoMode == "" {
		settings.GeoMode = constants.DefaultGeoMode
	}
	if settings.GeoTimeoutMs == 0 {
		settings.GeoTimeoutMs = constants.DefaultGeoTimeoutMs
	}
	if settings.GeoMaxAgeMs == 0 {
		settings.GeoMaxAgeMs = constants.DefaultGeoMaxAgeMs
	}
}

// Validate checks that every enumerated setting holds an allowed value.
func (s Settings) Validate() error {
	switch s.WeekStart {
	case constants.WeekStartSunday, constants.WeekStartMonday:
	default:
		return fmt.Errorf("invalid %s %q: must be %s or %s", constants.SettingWeekStart, s.WeekStart, constants.WeekStartSunday, constants.WeekStartMonday)
	}
	switch s.GridLayout {
	case constants.GridLayoutCompact, constants.GridLayoutFixed:
	default:
		return fmt.Errorf("invalid %s %q: must be %s or %s", constants.SettingGridLayout, s.GridLayout, constants.GridLayoutCompact, constants.GridLayoutFixed)
	}
	switch s.CoordProvider {
	case constants.ProviderOpenMeteo, constants.ProviderOpenWeather:
	default:
		return fmt.Errorf("invalid %s %q: must be %s or %s", constants.SettingCoordProvider, s.CoordProvider, constants.ProviderOpenMeteo, constants.ProviderOpenWeather)
	}
	switch s.GeoMode {
	case constants.GeoModeIP, constants.GeoModeStatic, constants.GeoModeOff:
	default:
		return fmt.Errorf("invalid %s %q: must be ip, static or off", constants.SettingGeoMode, s.GeoMode)
	}
	if s.DefaultCity == "" {
		return fmt.Errorf("%s must not be empty", constants.SettingDefaultCity)
	}
	if s.RefreshIntervalMin < 1 {
		return fmt.Errorf("%s must be at least 1 minute", constants.SettingRefreshIntervalMin)
	}
	if s.GeoTimeoutMs < 0 || s.GeoMaxAgeMs < 0 {
		return fmt.Errorf("geolocation timeouts must not be negative")
	}
	if s.GeoMode == constants.GeoModeStatic {
		if s.Latitude < -90 || s.Latitude > 90 {
			return fmt.Errorf("%s %v out of range", constants.SettingLatitude, s.Latitude)
		}
		if s.Longitude < -180 || s.Longitude > 180 {
			return fmt.Errorf("%s %v out of range", constants.SettingLongitude, s.Longitude)
		}
	}
	return nil
}
