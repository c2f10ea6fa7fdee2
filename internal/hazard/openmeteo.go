package hazard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const openMeteoDefaultURL = "https://api.open-meteo.com/v1/forecast"

// Condition thresholds for synthesized alerts, in km/h and millimeters.
// Derived from current marine practice: sustained wind above 50 km/h is
// hazardous to small craft, above 70 km/h to most vessels.
const (
	windModerateKmh  = 50.0
	windSevereKmh    = 70.0
	heavyPrecipMm    = 10.0
	lowVisibilityM   = 1000.0
	forecastHorizonH = 24
)

// OpenMeteoSource synthesizes hazard events from Open-Meteo current
// conditions and the short-term forecast. Unlike the feed-based sources it
// has no event catalog; it reports threshold exceedances at the query point.
type OpenMeteoSource struct {
	baseURL string
	client  *http.Client
}

// NewOpenMeteoSource constructs an OpenMeteoSource against the production API.
func NewOpenMeteoSource() *OpenMeteoSource {
	return NewOpenMeteoSourceWithURL(openMeteoDefaultURL)
}

// NewOpenMeteoSourceWithURL constructs an OpenMeteoSource against a custom
// base URL (used in tests).
func NewOpenMeteoSourceWithURL(baseURL string) *OpenMeteoSource {
	return &OpenMeteoSource{baseURL: baseURL, client: newHTTPClient()}
}

// Name implements Source.
func (s *OpenMeteoSource) Name() string { return "open-meteo" }

type openMeteoResponse struct {
	Current struct {
		Time       string  `json:"time"`
		WindSpeed  float64 `json:"wind_speed_10m"`
		WindGusts  float64 `json:"wind_gusts_10m"`
		Visibility float64 `json:"visibility"`
	} `json:"current"`
	Hourly struct {
		Precipitation []float64 `json:"precipitation"`
	} `json:"hourly"`
}

// Fetch implements Source. Global queries return nothing: point conditions
// are meaningless without a point.
func (s *OpenMeteoSource) Fetch(ctx context.Context, q GeoQuery) ([]Event, error) {
	if q.Global {
		return nil, nil
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(q.Center.Lat, 'f', 4, 64))
	params.Set("longitude", strconv.FormatFloat(q.Center.Lon, 'f', 4, 64))
	params.Set("current", "wind_speed_10m,wind_gusts_10m,visibility")
	params.Set("hourly", "precipitation")
	params.Set("timezone", "UTC")

	var data openMeteoResponse
	if err := doGetJSON(ctx, s.client, s.baseURL+"?"+params.Encode(), &data); err != nil {
		return nil, fmt.Errorf("open-meteo fetch: %w", err)
	}

	now := time.Now().UTC()
	var events []Event

	if ws := data.Current.WindSpeed; ws >= windModerateKmh {
		sev := SeverityModerate
		if ws >= windSevereKmh {
			sev = SeveritySevere
		}
		events = append(events, Event{
			ID:          fmt.Sprintf("openmeteo_wind_%.2f_%.2f", q.Center.Lat, q.Center.Lon),
			Type:        TypeHighWind,
			Severity:    sev,
			Title:       "High wind warning",
			Description: fmt.Sprintf("Sustained wind %.0f km/h with gusts up to %.0f km/h", ws, data.Current.WindGusts),
			Advice:      AdviceFor(TypeHighWind),
			Sources:     []string{s.Name()},
			Center:      q.Center,
			IssuedAt:    now,
			Urgency:     "immediate",
			Certainty:   "observed",
		})
	}

	if v := data.Current.Visibility; v > 0 && v < lowVisibilityM {
		events = append(events, Event{
			ID:          fmt.Sprintf("openmeteo_fog_%.2f_%.2f", q.Center.Lat, q.Center.Lon),
			Type:        TypeFog,
			Severity:    SeverityModerate,
			Title:       "Low visibility",
			Description: fmt.Sprintf("Visibility reduced to %.0f m", v),
			Advice:      AdviceFor(TypeFog),
			Sources:     []string{s.Name()},
			Center:      q.Center,
			IssuedAt:    now,
			Urgency:     "immediate",
			Certainty:   "observed",
		})
	}

	horizon := min(forecastHorizonH, len(data.Hourly.Precipitation))
	for i := 0; i < horizon; i++ {
		if p := data.Hourly.Precipitation[i]; p > heavyPrecipMm {
			events = append(events, Event{
				ID:          fmt.Sprintf("openmeteo_precip_%.2f_%.2f", q.Center.Lat, q.Center.Lon),
				Type:        TypeFlood,
				Severity:    SeverityModerate,
				Title:       "Heavy precipitation warning",
				Description: fmt.Sprintf("Heavy precipitation expected: %.1f mm within %d hours", p, i+1),
				Advice:      AdviceFor(TypeFlood),
				Sources:     []string{s.Name()},
				Center:      q.Center,
				IssuedAt:    now,
				Urgency:     "expected",
				Certainty:   "likely",
			})
			break
		}
	}

	return events, nil
}
