package api

import (
	"context"

	"github.com/seaward-io/seaward/internal/engine"
	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/harbor"
	"github.com/seaward-io/seaward/internal/hazard"
	"github.com/seaward-io/seaward/internal/route"
)

// LocationValidator defines the coordinate validation operation needed by handlers.
type LocationValidator interface {
	ValidateLocation(ctx context.Context, c geo.Coordinate) (engine.LocationReport, error)
}

// HarborSearcher defines the gazetteer search operation needed by handlers.
type HarborSearcher interface {
	SearchHarbors(query string, limit int) []harbor.Harbor
}

// HazardProvider defines the hazard aggregation operation needed by handlers.
type HazardProvider interface {
	GetHazards(ctx context.Context, c geo.Coordinate, radiusKm float64, includeGlobal bool) (hazard.AlertSet, error)
}

// RouteAnalyzer defines the route analysis operation needed by handlers.
type RouteAnalyzer interface {
	AnalyzeRoute(ctx context.Context, start, end geo.Coordinate, vessel route.Vessel) (engine.RouteAnalysis, error)
}
