package opencage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mzansibiz/mzansibiz-services/api/internal/public/domain"
)

// DefaultEndpoint is the OpenCage forward/reverse geocoding API.
const DefaultEndpoint = "https://api.opencagedata.com/geocode/v1/json"

// Client implements application.ReverseGeocoder against the OpenCage
// API. One static API credential authorizes every request.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates an OpenCage client. An empty endpoint falls back to
// the public API.
func NewClient(endpoint, apiKey string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type reverseResponse struct {
	Results []struct {
		Formatted string `json:"formatted"`
	} `json:"results"`
}

// Reverse looks up the formatted address for a coordinate pair. An empty
// or absent result list yields domain.ErrGeocodeEmpty; any transport or
// parsing failure is wrapped as a *domain.GeocodeTransportError so the
// caller's flow never crashes on it.
func (c *Client) Reverse(ctx context.Context, coord domain.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("q", coord.String())
	params.Set("key", c.apiKey)
	lookupURL := c.endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return "", &domain.GeocodeTransportError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &domain.GeocodeTransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.GeocodeTransportError{Err: fmt.Errorf("geocoding API returned status %d", resp.StatusCode)}
	}

	var payload reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &domain.GeocodeTransportError{Err: fmt.Errorf("failed to parse geocoding response: %w", err)}
	}

	if len(payload.Results) == 0 {
		return "", domain.ErrGeocodeEmpty
	}

	return payload.Results[0].Formatted, nil
}
