// Package geocode provides reverse geocoding for display names. Results are
// cosmetic only; validation and snapping never depend on them.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/seaward-io/seaward/internal/geo"
)

const (
	nominatimDefaultURL = "https://nominatim.openstreetmap.org/reverse"

	// Nominatim's usage policy requires an identifying User-Agent.
	userAgent = "seaward/1.0 (maritime route intelligence)"

	requestTimeout = 8 * time.Second
)

// ErrNoResult indicates the position resolved to nothing, typically open
// ocean.
var ErrNoResult = errors.New("no geocoding result")

// Client is a Nominatim reverse-geocoding client.
type Client struct {
	baseURL string
	client  *http.Client
}

// New constructs a Client against the public Nominatim instance.
func New() *Client {
	return NewWithURL(nominatimDefaultURL)
}

// NewWithURL constructs a Client against a custom endpoint (used in tests).
func NewWithURL(baseURL string) *Client {
	return &Client{baseURL: baseURL, client: &http.Client{Timeout: requestTimeout}}
}

type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		Country string `json:"country"`
	} `json:"address"`
}

// Reverse resolves c to a short place label like "Rotterdam, Netherlands".
func (g *Client) Reverse(ctx context.Context, c geo.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(c.Lat, 'f', 6, 64))
	params.Set("lon", strconv.FormatFloat(c.Lon, 'f', 6, 64))
	params.Set("format", "jsonv2")
	params.Set("zoom", "10")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("geocode: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geocode: status %d", resp.StatusCode)
	}

	var data nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("geocode: decode: %w", err)
	}

	locality := data.Address.City
	if locality == "" {
		locality = data.Address.Town
	}
	if locality == "" {
		locality = data.Address.Village
	}

	switch {
	case locality != "" && data.Address.Country != "":
		return locality + ", " + data.Address.Country, nil
	case data.DisplayName != "":
		return data.DisplayName, nil
	default:
		return "", ErrNoResult
	}
}
