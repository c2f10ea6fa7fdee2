package hazard

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/seaward-io/seaward/internal/geo"
)

const gdacsDefaultURL = "https://www.gdacs.org/xml/rss.xml"

// GDACSSource reads the GDACS (Global Disaster Alert and Coordination System)
// RSS feed, which carries cyclones, floods, earthquakes, and other disasters
// worldwide.
type GDACSSource struct {
	feedURL string
	client  *http.Client
}

// NewGDACSSource constructs a GDACSSource against the production feed.
func NewGDACSSource() *GDACSSource {
	return NewGDACSSourceWithURL(gdacsDefaultURL)
}

// NewGDACSSourceWithURL constructs a GDACSSource against a custom feed URL
// (used in tests).
func NewGDACSSourceWithURL(feedURL string) *GDACSSource {
	return &GDACSSource{feedURL: feedURL, client: newHTTPClient()}
}

// Name implements Source.
func (s *GDACSSource) Name() string { return "gdacs" }

type gdacsRSS struct {
	Channel struct {
		Items []gdacsItem `xml:"item"`
	} `xml:"channel"`
}

type gdacsItem struct {
	Title       string  `xml:"title"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
	Lat         float64 `xml:"http://www.georss.org/georss point>lat"`
	Lon         float64 `xml:"http://www.georss.org/georss point>lon"`
	EventType   string  `xml:"http://www.gdacs.org gdacs>eventtype"`
	AlertLevel  string  `xml:"http://www.gdacs.org gdacs>alertlevel"`
	EventID     string  `xml:"http://www.gdacs.org gdacs>eventid"`
}

// Fetch implements Source.
func (s *GDACSSource) Fetch(ctx context.Context, q GeoQuery) ([]Event, error) {
	var data gdacsRSS
	if err := doGetXML(ctx, s.client, s.feedURL, &data); err != nil {
		return nil, fmt.Errorf("gdacs fetch: %w", err)
	}

	events := make([]Event, 0, len(data.Channel.Items))
	for _, item := range data.Channel.Items {
		center := geo.Coordinate{Lat: item.Lat, Lon: item.Lon}
		if !q.Contains(center) {
			continue
		}

		typ := mapGDACSEventType(item.EventType)
		issued, err := time.Parse(time.RFC1123, item.PubDate)
		if err != nil {
			// Feed timestamps occasionally use the numeric-zone variant.
			issued, err = time.Parse(time.RFC1123Z, item.PubDate)
		}
		if err != nil {
			// Ranking leans on IssuedAt; an undated item would silently
			// sink to the bottom of its severity tier, so skip it.
			continue
		}

		desc := item.Description
		if len(desc) > 500 {
			desc = desc[:500]
		}

		events = append(events, Event{
			ID:          "gdacs_" + item.EventID,
			Type:        typ,
			Severity:    mapGDACSAlertLevel(item.AlertLevel),
			Title:       item.Title,
			Description: desc,
			Advice:      AdviceFor(typ),
			Sources:     []string{s.Name()},
			Center:      center,
			IssuedAt:    issued.UTC(),
			Certainty:   "observed",
		})
	}
	return events, nil
}

func mapGDACSEventType(eventType string) Type {
	switch strings.ToUpper(eventType) {
	case "EQ":
		return TypeEarthquake
	case "TC":
		return TypeStorm
	case "FL":
		return TypeFlood
	case "TS":
		return TypeTsunami
	case "WF":
		return TypeWildfire
	default:
		return TypeOther
	}
}

func mapGDACSAlertLevel(level string) Severity {
	switch strings.ToLower(level) {
	case "red":
		return SeverityExtreme
	case "orange":
		return SeveritySevere
	case "yellow":
		return SeverityModerate
	case "green":
		return SeverityMinor
	default:
		return SeverityUnknown
	}
}
