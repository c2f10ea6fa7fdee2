// Package hazard normalizes hazard signals from independent providers and
// merges them into a single ranked alert set.
package hazard

import (
	"time"

	"github.com/seaward-io/seaward/internal/geo"
)

// Severity is the ordinal severity tier of a hazard event.
type Severity string

const (
	SeverityUnknown  Severity = "unknown"
	SeverityMinor    Severity = "minor"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityExtreme  Severity = "extreme"
)

// Rank orders severities for sorting and comparison. Unknown sorts below
// minor so that unclassifiable signals never crowd out real ones.
func (s Severity) Rank() int {
	switch s {
	case SeverityMinor:
		return 1
	case SeverityModerate:
		return 2
	case SeveritySevere:
		return 3
	case SeverityExtreme:
		return 4
	default:
		return 0
	}
}

// Type is the normalized hazard category, assigned once at the adapter
// boundary so downstream code never scans free text.
type Type string

const (
	TypeStorm      Type = "storm"
	TypeEarthquake Type = "earthquake"
	TypeFlood      Type = "flood"
	TypeWildfire   Type = "wildfire"
	TypeTsunami    Type = "tsunami"
	TypeHighWind   Type = "high-wind"
	TypeFog        Type = "fog"
	TypeOther      Type = "other"
)

// Event is one normalized hazard signal. Immutable once constructed; a
// repeated fetch yields a fresh snapshot rather than mutating an old one.
type Event struct {
	ID          string         `json:"id"`
	Type        Type           `json:"type"`
	Severity    Severity       `json:"severity"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Advice      string         `json:"advice,omitempty"`
	Sources     []string       `json:"sources"`
	Center      geo.Coordinate `json:"center"`
	RadiusKm    float64        `json:"radius_km,omitempty"`
	IssuedAt    time.Time      `json:"issued_at"`
	Urgency     string         `json:"urgency,omitempty"`
	Certainty   string         `json:"certainty,omitempty"`
}

// AlertSet is the deduplicated, severity-ranked output of one aggregation.
// Index 0 is always the most important event.
type AlertSet struct {
	Events        []Event          `json:"events"`
	Total         int              `json:"total"`
	BySeverity    map[Severity]int `json:"by_severity"`
	Highest       Severity         `json:"highest_severity"`
	UrgentCount   int              `json:"urgent_count"`
	Degraded      bool             `json:"degraded"`
	FailedSources []string         `json:"failed_sources,omitempty"`
}

// CountAtLeast returns how many events are at or above the given severity.
func (s AlertSet) CountAtLeast(min Severity) int {
	n := 0
	for _, e := range s.Events {
		if e.Severity.Rank() >= min.Rank() {
			n++
		}
	}
	return n
}

// CountExactly returns how many events carry exactly the given severity.
func (s AlertSet) CountExactly(sev Severity) int {
	return s.BySeverity[sev]
}

// Top returns the highest-ranked event, or false for an empty set.
func (s AlertSet) Top() (Event, bool) {
	if len(s.Events) == 0 {
		return Event{}, false
	}
	return s.Events[0], true
}
