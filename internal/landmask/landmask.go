// Package landmask answers "is this coordinate on land" from a Natural Earth
// land polygon shapefile. Resolution is coastline-scale, which is enough to
// catch a ship position reported in the middle of a continent.
package landmask

import (
	"context"
	"fmt"

	shp "github.com/jonas-p/go-shp"

	"github.com/seaward-io/seaward/internal/geo"
)

// ring is one closed polygon ring with its precomputed bounding box.
type ring struct {
	pts            []geo.Coordinate
	minLat, maxLat float64
	minLon, maxLon float64
}

// Mask is an in-memory land polygon index. Immutable after construction, safe
// for concurrent lookups.
type Mask struct {
	rings []ring
}

// Load reads land polygons from a shapefile. Point coordinates are expected
// in lon/lat order, as Natural Earth ships them.
func Load(path string) (*Mask, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("landmask: open %s: %w", path, err)
	}
	defer r.Close()

	var polys [][]geo.Coordinate
	for r.Next() {
		_, shape := r.Shape()
		poly, ok := shape.(*shp.Polygon)
		if !ok {
			continue
		}
		for p := 0; p < len(poly.Parts); p++ {
			start := int(poly.Parts[p])
			end := len(poly.Points)
			if p+1 < len(poly.Parts) {
				end = int(poly.Parts[p+1])
			}
			part := make([]geo.Coordinate, 0, end-start)
			for _, pt := range poly.Points[start:end] {
				part = append(part, geo.Coordinate{Lat: pt.Y, Lon: pt.X})
			}
			polys = append(polys, part)
		}
	}
	return FromPolygons(polys), nil
}

// FromPolygons builds a mask directly from closed rings. Used in tests and by
// Load.
func FromPolygons(polys [][]geo.Coordinate) *Mask {
	m := &Mask{rings: make([]ring, 0, len(polys))}
	for _, pts := range polys {
		if len(pts) < 3 {
			continue
		}
		rg := ring{
			pts:    pts,
			minLat: pts[0].Lat, maxLat: pts[0].Lat,
			minLon: pts[0].Lon, maxLon: pts[0].Lon,
		}
		for _, p := range pts[1:] {
			rg.minLat = min(rg.minLat, p.Lat)
			rg.maxLat = max(rg.maxLat, p.Lat)
			rg.minLon = min(rg.minLon, p.Lon)
			rg.maxLon = max(rg.maxLon, p.Lon)
		}
		m.rings = append(m.rings, rg)
	}
	return m
}

// IsLand reports whether c falls inside any land ring. Even-odd ray casting,
// so lakes represented as holes come out as water.
func (m *Mask) IsLand(_ context.Context, c geo.Coordinate) (bool, error) {
	inside := false
	for _, rg := range m.rings {
		if c.Lat < rg.minLat || c.Lat > rg.maxLat || c.Lon < rg.minLon || c.Lon > rg.maxLon {
			continue
		}
		if pointInRing(c, rg.pts) {
			inside = !inside
		}
	}
	return inside, nil
}

// pointInRing is the standard ray-casting test against one ring.
func pointInRing(c geo.Coordinate, pts []geo.Coordinate) bool {
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := pts[i], pts[j]
		if (pi.Lat > c.Lat) != (pj.Lat > c.Lat) &&
			c.Lon < (pj.Lon-pi.Lon)*(c.Lat-pi.Lat)/(pj.Lat-pi.Lat)+pi.Lon {
			inside = !inside
		}
	}
	return inside
}
