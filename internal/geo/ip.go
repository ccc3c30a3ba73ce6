package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/julianstephens/infoboard/internal/constants"
	"github.com/julianstephens/infoboard/internal/logger"
)

// IPLocator approximates the position from the public IP address using the
// ip-api.com JSON endpoint.
type IPLocator struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Now        func() time.Time
}

// NewIPLocator creates a locator against the public ip-api.com service.
func NewIPLocator() *IPLocator {
	return &IPLocator{
		BaseURL:   constants.IPLocatorBaseURL,
		UserAgent: constants.UserAgent,
		HTTPClient: &http.Client{
			Timeout: constants.HTTPTimeout,
		},
		Now: time.Now,
	}
}

type ipResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
	Country string  `json:"country"`
}

// Locate implements Locator. High accuracy cannot be honored by an IP lookup
// and is ignored.
func (l *IPLocator) Locate(ctx context.Context, opts Options) (Position, error) {
	url := l.BaseURL + "/json/?fields=status,message,lat,lon,city,country"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Position{}, &Error{Code: CodeUnknown, Err: err}
	}
	req.Header.Set("User-Agent", l.UserAgent)
	req.Header.Set("Accept", "application/json")

	client := l.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return Position{}, &Error{Code: CodePositionUnavailable, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return Position{}, &Error{Code: CodePermissionDenied, Err: fmt.Errorf("ip lookup refused: %s", resp.Status)}
	case resp.StatusCode != http.StatusOK:
		return Position{}, &Error{Code: CodePositionUnavailable, Err: fmt.Errorf("ip lookup error: %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Position{}, &Error{Code: CodePositionUnavailable, Err: err}
	}
	var data ipResponse
	if err := json.Unmarshal(body, &data); err != nil {
		return Position{}, &Error{Code: CodePositionUnavailable, Err: err}
	}
	if data.Status != "success" {
		return Position{}, &Error{Code: CodePositionUnavailable, Err: fmt.Errorf("ip lookup failed: %s", data.Message)}
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	logger.Debug("ip geolocation resolved", "city", data.City, "lat", data.Lat, "lon", data.Lon)
	return Position{
		Latitude:  data.Lat,
		Longitude: data.Lon,
		Label:     data.City,
		Timestamp: now(),
	}, nil
}
