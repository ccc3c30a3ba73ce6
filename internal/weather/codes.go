package weather

import (
	"fmt"
	"strings"
)

// CodeInfo is the display form of an Open-Meteo weather code.
type CodeInfo struct {
	Icon        string
	Description string
}

// Label joins icon and description, e.g. "⛈️ 雷阵雨".
func (c CodeInfo) Label() string {
	if c.Icon == "" {
		return c.Description
	}
	return c.Icon + " " + c.Description
}

var codeTable = map[int]CodeInfo{
	0:  {"☀️", "晴天"},
	1:  {"🌤️", "少云"},
	2:  {"⛅", "多云"},
	3:  {"☁️", "阴天"},
	45: {"🌫️", "雾"},
	48: {"🌫️", "霜雾"},
	51: {"🌦️", "毛毛雨"},
	53: {"🌦️", "小雨"},
	55: {"🌦️", "中雨"},
	56: {"❄️", "冻毛毛雨"},
	57: {"❄️", "冻小雨"},
	61: {"🌧️", "小雨"},
	63: {"🌧️", "中雨"},
	65: {"🌧️", "大雨"},
	66: {"❄️", "冻小雨"},
	67: {"❄️", "冻大雨"},
	71: {"❄️", "小雪"},
	73: {"❄️", "中雪"},
	75: {"❄️", "大雪"},
	77: {"❄️", "雪粒"},
	80: {"🌦️", "阵雨"},
	81: {"🌦️", "中阵雨"},
	82: {"🌦️", "大阵雨"},
	85: {"❄️", "小阵雪"},
	86: {"❄️", "大阵雪"},
	95: {"⛈️", "雷阵雨"},
	96: {"⛈️", "冰雹阵雨"},
	99: {"⛈️", "大冰雹阵雨"},
}

// LookupCode maps an Open-Meteo weather code. Unknown codes get no icon and
// the description 未知天气(code).
func LookupCode(code int) CodeInfo {
	if info, ok := codeTable[code]; ok {
		return info
	}
	return CodeInfo{Description: fmt.Sprintf("未知天气(%d)", code)}
}

// Codes returns every mapped code, for listings.
func Codes() map[int]CodeInfo {
	out := make(map[int]CodeInfo, len(codeTable))
	for k, v := range codeTable {
		out[k] = v
	}
	return out
}

// FallbackIcon is shown for OpenWeather categories without a mapping.
const FallbackIcon = "🌈"

var categoryIcons = map[string]string{
	"clear":        "☀️",
	"clouds":       "☁️",
	"rain":         "🌧️",
	"drizzle":      "🌦️",
	"thunderstorm": "⛈️",
	"snow":         "❄️",
	"mist":         "🌫️",
	"fog":          "🌫️",
	"haze":         "🌫️",
	"smoke":        "🚬",
}

// CategoryIcon maps an OpenWeather "main" category such as "Clouds".
func CategoryIcon(category string) string {
	if icon, ok := categoryIcons[strings.ToLower(strings.TrimSpace(category))]; ok {
		return icon
	}
	return FallbackIcon
}
