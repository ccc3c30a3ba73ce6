// Package weather fetches current conditions and runs the acquisition state
// machine that decides which provider to ask.
package weather

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/geo"
)

// Payload is one observation of current conditions.
type Payload struct {
	Description  string    `json:"description"`
	Icon         string    `json:"icon,omitempty"`
	TemperatureC float64   `json:"temperature_c"`
	WindSpeed    float64   `json:"wind_speed"`
	WindUnit     string    `json:"wind_unit"`
	Humidity     *float64  `json:"humidity,omitempty"`
	ObservedAt   time.Time `json:"observed_at"`
	Location     string    `json:"location,omitempty"`
	Code         int       `json:"code,omitempty"`
	Category     string    `json:"category,omitempty"`
}

// Summary renders the one-line reading, e.g. "☀️ 晴天 | 3℃ | 风速 12 km/h".
func (p Payload) Summary() string {
	var b strings.Builder
	if p.Icon != "" {
		b.WriteString(p.Icon)
		b.WriteString(" ")
	}
	b.WriteString(p.Description)
	fmt.Fprintf(&b, " | %d℃ | 风速 %s %s", int(math.Round(p.TemperatureC)), formatNumber(p.WindSpeed), p.WindUnit)
	if p.Humidity != nil {
		fmt.Fprintf(&b, " | 湿度 %s%%", formatNumber(*p.Humidity))
	}
	return b.String()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Phase is the tag of the acquisition state.
type Phase int

const (
	Idle Phase = iota
	Locating
	Fetching
	Ready
	Failed
)

var phaseNames = [...]string{"idle", "locating", "fetching", "ready", "failed"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// Source identifies which provider a fetch is using.
type Source int

const (
	SourceNone Source = iota
	SourceCoordinates
	SourceCity
)

func (s Source) String() string {
	switch s {
	case SourceCoordinates:
		return "coordinates"
	case SourceCity:
		return "city"
	}
	return "none"
}

// MarshalText implements encoding.TextMarshaler.
func (s Source) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// State is the single weather state published to the presentation layer.
// Payload is set only in Ready, Reason only in Failed.
type State struct {
	Phase        Phase         `json:"phase"`
	Source       Source        `json:"source"`
	Generation   uint64        `json:"generation"`
	Cycle        string        `json:"cycle,omitempty"`
	Position     *geo.Position `json:"position,omitempty"`
	City         string        `json:"city,omitempty"`
	Payload      *Payload      `json:"payload,omitempty"`
	Reason       string        `json:"reason,omitempty"`
	LocateReason string        `json:"locate_reason,omitempty"`
	Note         string        `json:"note,omitempty"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Text is the main weather line for the current phase.
func (s State) Text() string {
	switch s.Phase {
	case Locating:
		return "正在获取位置..."
	case Fetching:
		return "正在加载天气…"
	case Ready:
		if s.Payload == nil {
			return "无天气数据"
		}
		return s.Payload.Summary()
	case Failed:
		return "天气加载失败"
	}
	return "等待获取天气"
}

// Updated renders the refresh time note, or "" before the first success.
func (s State) Updated() string {
	if s.UpdatedAt.IsZero() {
		return ""
	}
	return "更新时间：" + s.UpdatedAt.Format(constants.ShortTimeFormat)
}

// Busy reports whether a lookup is in flight.
func (s State) Busy() bool {
	return s.Phase == Locating || s.Phase == Fetching
}
