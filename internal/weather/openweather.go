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

// OpenWeather is the keyed provider. It answers both coordinate and named
// city lookups.
type OpenWeather struct {
	Client
	BaseURL string
	APIKey  string
	Now     func() time.Time
}

// NewOpenWeather creates a provider against api.openweathermap.org.
func NewOpenWeather(apiKey string) *OpenWeather {
	return &OpenWeather{
		Client:  newClient(),
		BaseURL: constants.OpenWeatherBaseURL,
		APIKey:  apiKey,
		Now:     time.Now,
	}
}

type openWeatherResponse struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Main struct {
		Temp     float64  `json:"temp"`
		Humidity *float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// ByCity fetches current conditions for a named city.
func (o *OpenWeather) ByCity(ctx context.Context, city string) (Payload, error) {
	q := url.Values{}
	q.Set("q", city)
	p, name, err := o.fetch(ctx, q, city)
	if err == nil && name != "" {
		p.Location = name
	}
	return p, err
}

// ByCoordinates fetches current conditions for (lat, lon).
func (o *OpenWeather) ByCoordinates(ctx context.Context, lat, lon float64) (Payload, error) {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', 4, 64))
	p, _, err := o.fetch(ctx, q, CoordinateLabel(lat, lon))
	return p, err
}

func (o *OpenWeather) fetch(ctx context.Context, q url.Values, label string) (Payload, string, error) {
	if o.APIKey == "" {
		return Payload{}, "", ErrMissingAPIKey
	}
	q.Set("appid", o.APIKey)
	q.Set("units", "metric")
	q.Set("lang", "zh_cn")

	data, err := o.get(ctx, "openweather", o.BaseURL+"/data/2.5/weather?"+q.Encode())
	if err != nil {
		return Payload{}, "", err
	}

	var resp openWeatherResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return Payload{}, "", fmt.Errorf("decode openweather response: %w", err)
	}
	if len(resp.Weather) == 0 {
		return Payload{}, "", errors.New("openweather response has no conditions")
	}

	observed := time.Unix(resp.Dt, 0)
	if resp.Dt == 0 {
		now := time.Now
		if o.Now != nil {
			now = o.Now
		}
		observed = now()
	}
	cond := resp.Weather[0]
	return Payload{
		Description:  cond.Description,
		Icon:         CategoryIcon(cond.Main),
		TemperatureC: resp.Main.Temp,
		WindSpeed:    resp.Wind.Speed,
		WindUnit:     "m/s",
		Humidity:     resp.Main.Humidity,
		ObservedAt:   observed,
		Location:     label,
		Code:         cond.ID,
		Category:     cond.Main,
	}, resp.Name, nil
}
