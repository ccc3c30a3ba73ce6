package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/julianstephens/infoboard/internal/constants"
)

// OpenMeteo is the keyless coordinate provider.
type OpenMeteo struct {
	Client
	BaseURL string
	Now     func() time.Time
}

// NewOpenMeteo creates a provider against the public Open-Meteo API.
func NewOpenMeteo() *OpenMeteo {
	return &OpenMeteo{
		Client:  newClient(),
		BaseURL: constants.OpenMeteoBaseURL,
		Now:     time.Now,
	}
}

type openMeteoResponse struct {
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		Windspeed   float64 `json:"windspeed"`
		Weathercode int     `json:"weathercode"`
		Time        string  `json:"time"`
	} `json:"current_weather"`
}

// ByCoordinates fetches current conditions for (lat, lon).
func (o *OpenMeteo) ByCoordinates(ctx context.Context, lat, lon float64) (Payload, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("current_weather", "true")

	data, err := o.get(ctx, "open-meteo", o.BaseURL+"/v1/forecast?"+q.Encode())
	if err != nil {
		return Payload{}, err
	}

	var resp openMeteoResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Payload{}, fmt.Errorf("decode open-meteo response: %w", err)
	}
	if resp.CurrentWeather == nil {
		return Payload{}, errors.New("open-meteo response has no current_weather")
	}

	cw := resp.CurrentWeather
	info := LookupCode(cw.Weathercode)
	observed, err := time.Parse("2006-01-02T15:04", cw.Time)
	if err != nil {
		now := time.Now
		if o.Now != nil {
			now = o.Now
		}
		observed = now()
	}

	return Payload{
		Description:  info.Description,
		Icon:         info.Icon,
		TemperatureC: cw.Temperature,
		WindSpeed:    cw.Windspeed,
		WindUnit:     "km/h",
		ObservedAt:   observed,
		Location:     CoordinateLabel(lat, lon),
		Code:         cw.Weathercode,
	}, nil
}

// CoordinateLabel renders a position as 经纬度 (lat, lon) to three places.
func CoordinateLabel(lat, lon float64) string {
	return fmt.Sprintf("经纬度 (%.3f, %.3f)", lat, lon)
}
