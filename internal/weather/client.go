package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/julianstephens/infoboard/internal/constants"
)

// ErrMissingAPIKey is returned by OpenWeather before any request is made when
// no key is configured.
var ErrMissingAPIKey = errors.New("openweather api key not configured")

// StatusError reports a non-2xx provider response.
type StatusError struct {
	Provider   string
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: %s", e.Provider, e.Status)
}

// Client holds the HTTP settings shared by every provider.
type Client struct {
	UserAgent  string
	HTTPClient *http.Client
}

func newClient() Client {
	return Client{
		UserAgent: constants.UserAgent,
		HTTPClient: &http.Client{
			Timeout: constants.HTTPTimeout,
		},
	}
}

func (c *Client) get(ctx context.Context, provider, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Provider: provider, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// FailureReason turns a fetch error into the text shown in the Failed state.
func FailureReason(err error) string {
	var statusErr *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingAPIKey):
		return "未配置 API Key"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("请求失败: %d", statusErr.StatusCode)
	default:
		return "天气请求失败，请检查网络或 API Key。"
	}
}
