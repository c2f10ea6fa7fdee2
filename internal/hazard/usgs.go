package hazard

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/seaward-io/seaward/internal/geo"
)

const usgsDefaultURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"

// USGSSource reads the USGS earthquake GeoJSON summary feed. The feed is
// global; events outside the query scope are filtered out client-side.
type USGSSource struct {
	feedURL      string
	minMagnitude float64
	client       *http.Client
}

// NewUSGSSource constructs a USGSSource against the production feed,
// reporting earthquakes of magnitude 4.0 and above.
func NewUSGSSource() *USGSSource {
	return NewUSGSSourceWithURL(usgsDefaultURL)
}

// NewUSGSSourceWithURL constructs a USGSSource against a custom feed URL
// (used in tests).
func NewUSGSSourceWithURL(feedURL string) *USGSSource {
	return &USGSSource{feedURL: feedURL, minMagnitude: 4.0, client: newHTTPClient()}
}

// Name implements Source.
func (s *USGSSource) Name() string { return "usgs" }

type usgsResponse struct {
	Features []usgsFeature `json:"features"`
}

type usgsFeature struct {
	ID         string `json:"id"`
	Properties struct {
		Mag     float64 `json:"mag"`
		Place   string  `json:"place"`
		Time    int64   `json:"time"` // unix millis
		Title   string  `json:"title"`
		Tsunami int     `json:"tsunami"` // 0 or 1
	} `json:"properties"`
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat, depth]
	} `json:"geometry"`
}

// Fetch implements Source.
func (s *USGSSource) Fetch(ctx context.Context, q GeoQuery) ([]Event, error) {
	var data usgsResponse
	if err := doGetJSON(ctx, s.client, s.feedURL, &data); err != nil {
		return nil, fmt.Errorf("usgs fetch: %w", err)
	}

	events := make([]Event, 0, len(data.Features))
	for _, f := range data.Features {
		if f.Properties.Mag < s.minMagnitude || len(f.Geometry.Coordinates) < 2 {
			continue
		}

		center := geo.Coordinate{Lat: f.Geometry.Coordinates[1], Lon: f.Geometry.Coordinates[0]}
		if !q.Contains(center) {
			continue
		}

		typ := TypeEarthquake
		if f.Properties.Tsunami == 1 {
			typ = TypeTsunami
		}

		events = append(events, Event{
			ID:          "usgs_" + f.ID,
			Type:        typ,
			Severity:    earthquakeSeverity(f.Properties.Mag),
			Title:       f.Properties.Title,
			Description: fmt.Sprintf("Magnitude %.1f earthquake, %s", f.Properties.Mag, f.Properties.Place),
			Advice:      AdviceFor(typ),
			Sources:     []string{s.Name()},
			Center:      center,
			IssuedAt:    time.UnixMilli(f.Properties.Time).UTC(),
			Certainty:   "observed",
		})
	}
	return events, nil
}

// earthquakeSeverity maps Richter magnitude to a severity tier.
func earthquakeSeverity(mag float64) Severity {
	switch {
	case mag >= 7.0:
		return SeverityExtreme
	case mag >= 6.0:
		return SeveritySevere
	case mag >= 5.0:
		return SeverityModerate
	default:
		return SeverityMinor
	}
}
