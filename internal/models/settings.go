package models

// Settings represents the persisted board configuration
type Settings struct {
	WeekStart          string  `json:"week_start"`           // "sunday" or "monday"
	GridLayout         string  `json:"grid_layout"`          // "compact" or "fixed"
	DefaultCity        string  `json:"default_city"`         // city used when geolocation or the coordinate fetch fails
	RefreshIntervalMin int     `json:"refresh_interval_min"` // weather refresh period in minutes
	CoordProvider      string  `json:"coord_provider"`       // "open-meteo" or "openweather"
	GeoMode            string  `json:"geo_mode"`             // "ip", "static" or "off"
	Latitude           float64 `json:"latitude"`             // used when geo_mode is static
	Longitude          float64 `json:"longitude"`            // used when geo_mode is static
	GeoTimeoutMs       int     `json:"geo_timeout_ms"`
	GeoMaxAgeMs        int     `json:"geo_max_age_ms"`
	GeoHighAccuracy    bool    `json:"geo_high_accuracy"`
}
