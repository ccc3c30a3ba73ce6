package constants

const (
	// Calendar Settings
	SettingWeekStart  = "week_start"
	SettingGridLayout = "grid_layout"

	// Weather Settings
	SettingDefaultCity        = "default_city"
	SettingRefreshIntervalMin = "refresh_interval_min"
	SettingCoordProvider      = "coord_provider"

	// Geolocation Settings
	SettingGeoMode         = "geo_mode"
	SettingLatitude        = "latitude"
	SettingLongitude       = "longitude"
	SettingGeoTimeoutMs    = "geo_timeout_ms"
	SettingGeoMaxAgeMs     = "geo_max_age_ms"
	SettingGeoHighAccuracy = "geo_high_accuracy"

	// Allowed values
	WeekStartSunday = "sunday"
	WeekStartMonday = "monday"

	GridLayoutCompact = "compact"
	GridLayoutFixed   = "fixed"

	GeoModeIP     = "ip"
	GeoModeStatic = "static"
	GeoModeOff    = "off"

	ProviderOpenMeteo   = "open-meteo"
	ProviderOpenWeather = "openweather"

	// Default Settings Values
	DefaultWeekStart          = WeekStartSunday
	DefaultGridLayout         = GridLayoutCompact
	DefaultCity               = "Beijing"
	DefaultRefreshIntervalMin = 10
	DefaultCoordProvider      = ProviderOpenMeteo
	DefaultGeoMode            = GeoModeIP
	DefaultGeoTimeoutMs       = 7000
	DefaultGeoMaxAgeMs        = 60000
)
