// Package weather fetches ambient marine conditions from Open-Meteo for the
// safety classifier.
package weather

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
	"github.com/seaward-io/seaward/internal/verdict"
)

const (
	forecastDefaultURL = "https://api.open-meteo.com/v1/forecast"
	marineDefaultURL   = "https://marine-api.open-meteo.com/v1/marine"

	requestTimeout = 10 * time.Second
)

// ErrUnavailable indicates the forecast provider could not be reached or
// returned garbage.
var ErrUnavailable = errors.New("weather provider unavailable")

// Client reads current conditions from the Open-Meteo forecast API and wave
// height from the separate marine API. The marine call is best effort; wave
// data simply stays unknown when it fails, since the marine endpoint has no
// coverage for inland waters.
type Client struct {
	forecastURL string
	marineURL   string
	client      *http.Client
}

// NewClient constructs a Client against the production endpoints.
func NewClient() *Client {
	return NewClientWithURLs(forecastDefaultURL, marineDefaultURL)
}

// NewClientWithURLs constructs a Client against custom endpoints (used in
// tests).
func NewClientWithURLs(forecastURL, marineURL string) *Client {
	return &Client{
		forecastURL: forecastURL,
		marineURL:   marineURL,
		client:      &http.Client{Timeout: requestTimeout},
	}
}

type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
		WindGusts   float64 `json:"wind_gusts_10m"`
		Visibility  float64 `json:"visibility"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
}

type marineResponse struct {
	Current struct {
		WaveHeight float64 `json:"wave_height"`
	} `json:"current"`
}

// Current returns the ambient conditions at c. A forecast failure returns an
// error and an unavailable result; a marine failure only leaves the wave
// height unknown.
func (w *Client) Current(ctx context.Context, c geo.Coordinate) (verdict.AmbientConditions, error) {
	var forecast forecastResponse
	if err := w.getJSON(ctx, w.forecastURL, c, "temperature_2m,wind_speed_10m,wind_gusts_10m,visibility,weather_code", &forecast); err != nil {
		return verdict.AmbientConditions{}, err
	}

	out := verdict.AmbientConditions{
		Available:    true,
		WindSpeedKmh: forecast.Current.WindSpeed,
		WindGustsKmh: forecast.Current.WindGusts,
		VisibilityM:  forecast.Current.Visibility,
		Description:  describeWeatherCode(forecast.Current.WeatherCode),
	}

	var marine marineResponse
	if err := w.getJSON(ctx, w.marineURL, c, "wave_height", &marine); err == nil {
		out.WaveHeightM = marine.Current.WaveHeight
		out.WaveDataKnown = true
	}
	return out, nil
}

func (w *Client) getJSON(ctx context.Context, base string, c geo.Coordinate, fields string, dst any) error {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(c.Lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(c.Lon, 'f', 4, 64))
	params.Set("current", fields)
	params.Set("timezone", "UTC")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return nil
}

// describeWeatherCode translates WMO weather interpretation codes into short
// human-readable descriptions.
func describeWeatherCode(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code <= 3:
		return "partly cloudy"
	case code == 45 || code == 48:
		return "fog"
	case code >= 51 && code <= 57:
		return "drizzle"
	case code >= 61 && code <= 67:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "rain showers"
	case code >= 95:
		return "thunderstorm"
	default:
		return "unsettled"
	}
}
