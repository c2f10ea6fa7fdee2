package hazard

import (
	"context"
	"errors"

	"github.com/seaward-io/seaward/internal/geo"
)

// ErrUnavailable marks a provider outage. Adapters wrap transport and decode
// failures in this error so the aggregator can proceed with partial data.
var ErrUnavailable = errors.New("hazard provider unavailable")

// GeoQuery selects the geographic scope of a hazard fetch: a point with a
// radius, a bounding box, or the whole globe.
type GeoQuery struct {
	Center   geo.Coordinate
	RadiusKm float64
	BBox     *BBox
	Global   bool
}

// BBox is a simple latitude/longitude bounding box.
type BBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// PointQuery builds a point-plus-radius query.
func PointQuery(c geo.Coordinate, radiusKm float64) GeoQuery {
	return GeoQuery{Center: c, RadiusKm: radiusKm}
}

// GlobalQuery matches every location. Used for the merged "global events"
// pass alongside a local query.
func GlobalQuery() GeoQuery {
	return GeoQuery{Global: true}
}

// Contains reports whether a coordinate falls inside the query scope.
// Point queries use great-circle distance, not a planar approximation.
func (q GeoQuery) Contains(c geo.Coordinate) bool {
	if q.Global {
		return true
	}
	if q.BBox != nil {
		return c.Lat >= q.BBox.MinLat && c.Lat <= q.BBox.MaxLat &&
			c.Lon >= q.BBox.MinLon && c.Lon <= q.BBox.MaxLon
	}
	return geo.HaversineKm(q.Center, c) <= q.RadiusKm
}

// Source is one external hazard provider. Implementations must be safe for
// concurrent use, must honor ctx cancellation, and must report outages as
// errors wrapping ErrUnavailable rather than panicking; the aggregator
// continues with whatever subset of providers succeeds.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q GeoQuery) ([]Event, error)
}
