// Package geo provides spherical-earth geometry for maritime distances,
// bearings, and great-circle interpolation.
package geo

import (
	"errors"
	"fmt"
	"math"
)

const (
	// EarthRadiusKm is the mean earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// KmPerNauticalMile converts kilometers to nautical miles.
	KmPerNauticalMile = 1.852
)

// ErrInvalidCoordinate indicates a coordinate outside the valid lat/lon range
// or the (0,0) missing-value sentinel.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate is a WGS84 latitude/longitude pair in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Validate rejects out-of-range coordinates and the exact (0,0) pair, which
// in practice is a missing value rather than a real position in the Gulf of
// Guinea. Out-of-range values are never clamped.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %.4f out of range [-90, 90]", ErrInvalidCoordinate, c.Lat)
	}
	if c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %.4f out of range [-180, 180]", ErrInvalidCoordinate, c.Lon)
	}
	if c.Lat == 0 && c.Lon == 0 {
		return fmt.Errorf("%w: (0,0) treated as missing value", ErrInvalidCoordinate)
	}
	return nil
}

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// NauticalMiles converts a distance in kilometers to nautical miles.
func NauticalMiles(km float64) float64 {
	return km / KmPerNauticalMile
}

// InitialBearing returns the initial great-circle bearing from a to b in
// degrees true, normalized to [0, 360).
func InitialBearing(a, b Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLon := radians(b.Lon - a.Lon)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

// Interpolate returns n points strictly between a and b along the great
// circle, using spherical linear interpolation. Naive lat/lon interpolation
// drifts off the true path over long distances and near the poles.
func Interpolate(a, b Coordinate, n int) []Coordinate {
	if n <= 0 {
		return nil
	}

	lat1, lon1 := radians(a.Lat), radians(a.Lon)
	lat2, lon2 := radians(b.Lat), radians(b.Lon)

	// Angular distance between the endpoints.
	d := HaversineKm(a, b) / EarthRadiusKm
	if d == 0 {
		pts := make([]Coordinate, n)
		for i := range pts {
			pts[i] = a
		}
		return pts
	}

	sinD := math.Sin(d)
	pts := make([]Coordinate, 0, n)
	for i := 1; i <= n; i++ {
		f := float64(i) / float64(n+1)

		fa := math.Sin((1-f)*d) / sinD
		fb := math.Sin(f*d) / sinD

		x := fa*math.Cos(lat1)*math.Cos(lon1) + fb*math.Cos(lat2)*math.Cos(lon2)
		y := fa*math.Cos(lat1)*math.Sin(lon1) + fb*math.Cos(lat2)*math.Sin(lon2)
		z := fa*math.Sin(lat1) + fb*math.Sin(lat2)

		pts = append(pts, Coordinate{
			Lat: degrees(math.Atan2(z, math.Sqrt(x*x+y*y))),
			Lon: degrees(math.Atan2(y, x)),
		})
	}
	return pts
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }
