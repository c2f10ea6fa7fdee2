// Package harbor holds the harbor gazetteer and the coordinate
// validation/snapping logic built on top of it.
package harbor

import (
	"errors"
	"sort"
	"strings"

	"github.com/seaward-io/seaward/internal/geo"
)

// ErrNotFound indicates no harbor exists within the requested distance bound.
var ErrNotFound = errors.New("no harbor within range")

// Category classifies what kind of port a harbor is.
type Category string

const (
	CategoryCommercial   Category = "commercial"
	CategoryFishing      Category = "fishing"
	CategoryContainer    Category = "container"
	CategoryMarina       Category = "marina"
	CategoryUnclassified Category = "unclassified"
)

// Harbor is a single known port. Reference data, immutable after startup.
type Harbor struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Country  string         `json:"country"`
	Position geo.Coordinate `json:"position"`
	Category Category       `json:"category"`
}

// DisplayName returns the human-readable "Name, Country" form.
func (h Harbor) DisplayName() string {
	return h.Name + ", " + h.Country
}

// Gazetteer is a read-only index of known harbors, built once at startup.
// Lookups need no locking.
type Gazetteer struct {
	harbors []Harbor
}

// NewGazetteer builds a gazetteer from the given harbors. The internal order
// is by harbor ID so that distance ties resolve reproducibly.
func NewGazetteer(harbors []Harbor) *Gazetteer {
	hs := make([]Harbor, len(harbors))
	copy(hs, harbors)
	sort.Slice(hs, func(i, j int) bool { return hs[i].ID < hs[j].ID })
	return &Gazetteer{harbors: hs}
}

// Len returns the number of harbors in the gazetteer.
func (g *Gazetteer) Len() int { return len(g.harbors) }

// Nearest returns the minimum-distance harbor within maxKm of c, along with
// its distance in kilometers. Ties are broken by harbor ID ordering. Returns
// ErrNotFound when no harbor is within the bound; the caller decides whether
// to reject or widen the search.
func (g *Gazetteer) Nearest(c geo.Coordinate, maxKm float64) (Harbor, float64, error) {
	var (
		best     Harbor
		bestDist = maxKm
		found    bool
	)
	for _, h := range g.harbors {
		d := geo.HaversineKm(c, h.Position)
		// Strict less keeps the lowest-ID harbor on exact ties because the
		// slice is ID-ordered.
		if d <= maxKm && (!found || d < bestDist) {
			best = h
			bestDist = d
			found = true
		}
	}
	if !found {
		return Harbor{}, 0, ErrNotFound
	}
	return best, bestDist, nil
}

// Search returns up to limit harbors whose name, country, or category
// contains the query, case-insensitively. Harbors sharing the same
// coordinates are collapsed to one entry.
func (g *Gazetteer) Search(query string, limit int) []Harbor {
	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < 2 || limit <= 0 {
		return nil
	}

	seen := make(map[geo.Coordinate]struct{})
	var out []Harbor
	for _, h := range g.harbors {
		if !strings.Contains(strings.ToLower(h.Name), query) &&
			!strings.Contains(strings.ToLower(h.Country), query) &&
			!strings.Contains(string(h.Category), query) {
			continue
		}
		if _, dup := seen[h.Position]; dup {
			continue
		}
		seen[h.Position] = struct{}{}
		out = append(out, h)
		if len(out) == limit {
			break
		}
	}
	return out
}
