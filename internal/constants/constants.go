package constants

import "time"

// SessionState represents the current state of the TUI application
type SessionState int

const (
	AppName            = "infoboard"
	DefaultKeyringUser = "openweather-api-key"
	DefaultConfigPath  = "~/.config/infoboard/infoboard.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the 24-hour clock format used by the clock (HH:MM:SS)
	TimeFormat = "15:04:05"

	// ShortTimeFormat is used for "last updated" notes (HH:MM)
	ShortTimeFormat = "15:04"

	// Clock / weather cadence
	ClockInterval          = time.Second
	WeatherRefreshInterval = 10 * time.Minute
	HTTPTimeout            = 10 * time.Second

	// Geolocation defaults
	GeoTimeout      = 7 * time.Second
	GeoMaxAge       = 60 * time.Second
	GeoHighAccuracy = false

	// Provider endpoints
	OpenMeteoBaseURL   = "https://api.open-meteo.com"
	OpenWeatherBaseURL = "https://api.openweathermap.org"
	IPLocatorBaseURL   = "http://ip-api.com"
	UserAgent          = "infoboard/0.3 (+https://github.com/julianstephens/infoboard)"

	// Server
	DefaultServeAddr = "127.0.0.1:8080"
)

// Session States
const (
	StateBoard SessionState = iota
	StateJumpYear
)
