// Package route turns a pair of harbors into a great-circle transit plan
// with distance, bearing, waypoints, and timing estimates.
package route

import (
	"fmt"
	"math"

	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/harbor"
)

const (
	// DefaultCruisingSpeedKn is assumed when the vessel profile does not
	// specify a speed. Typical for a mid-size merchant vessel.
	DefaultCruisingSpeedKn = 15.0

	// WaypointCount is the fixed length of the waypoint list, endpoints
	// included.
	WaypointCount = 10
)

// Vessel carries the optional vessel profile used for timing and fuel
// estimates. Zero values mean "not provided".
type Vessel struct {
	CruisingSpeedKn float64 `json:"cruising_speed_kn,omitempty"`
	FuelRangeKm     float64 `json:"fuel_range_km,omitempty"`
	ReservePercent  float64 `json:"reserve_percent,omitempty"`
}

// FuelAssessment is the advisory fuel feasibility result. It is only present
// on a Route when the vessel profile includes a fuel range.
type FuelAssessment struct {
	// Feasible reports whether the usable range covers the route distance.
	Feasible bool `json:"feasible"`
	// UsableRangeKm is the fuel range left after setting aside the reserve.
	UsableRangeKm float64 `json:"usable_range_km"`
	// MarginKm is the usable range left over after the route. Negative when
	// the route is out of reach.
	MarginKm float64 `json:"margin_km"`
}

// Waypoint is one point along the planned track.
type Waypoint struct {
	Position geo.Coordinate `json:"position"`
	// FractionOfRoute is the point's position along the track in [0, 1].
	FractionOfRoute float64 `json:"fraction_of_route"`
	// DistanceFromStartKm accumulates leg distances from the origin.
	DistanceFromStartKm float64 `json:"distance_from_start_km"`
}

// Route is a synthesized great-circle plan between two harbors.
type Route struct {
	Start harbor.Harbor `json:"start"`
	End   harbor.Harbor `json:"end"`

	DistanceKm       float64 `json:"distance_km"`
	DistanceNm       float64 `json:"distance_nm"`
	InitialBearing   float64 `json:"initial_bearing_deg"`
	CruisingSpeedKn  float64 `json:"cruising_speed_kn"`
	TransitHours     float64 `json:"transit_hours"`
	TransitHumanized string  `json:"transit_humanized"`

	Waypoints []Waypoint      `json:"waypoints"`
	Fuel      *FuelAssessment `json:"fuel,omitempty"`
}

// Synthesize plans the great-circle route from start to end for the given
// vessel. The same harbor on both ends yields a valid zero-length route.
func Synthesize(start, end harbor.Harbor, v Vessel) Route {
	distKm := geo.HaversineKm(start.Position, end.Position)

	speed := v.CruisingSpeedKn
	if speed <= 0 {
		speed = DefaultCruisingSpeedKn
	}

	r := Route{
		Start:           start,
		End:             end,
		DistanceKm:      distKm,
		DistanceNm:      geo.NauticalMiles(distKm),
		InitialBearing:  geo.InitialBearing(start.Position, end.Position),
		CruisingSpeedKn: speed,
		Waypoints:       waypoints(start.Position, end.Position),
	}

	r.TransitHours = r.DistanceNm / speed
	r.TransitHumanized = humanizeHours(r.TransitHours)

	if v.FuelRangeKm > 0 {
		reserve := v.ReservePercent
		if reserve < 0 {
			reserve = 0
		}
		// The reserve comes out of the range before comparing against the
		// distance, so a 20% reserve demands range >= distance / 0.8.
		usable := v.FuelRangeKm * (1 - reserve/100)
		r.Fuel = &FuelAssessment{
			Feasible:      distKm <= usable,
			UsableRangeKm: usable,
			MarginKm:      usable - distKm,
		}
	}
	return r
}

// waypoints builds the fixed-length track. The first and last entries are the
// harbor coordinates themselves, never interpolated, so downstream consumers
// can rely on exact endpoint fidelity.
func waypoints(a, b geo.Coordinate) []Waypoint {
	interior := geo.Interpolate(a, b, WaypointCount-2)

	pts := make([]Waypoint, 0, WaypointCount)
	pts = append(pts, Waypoint{Position: a})
	prev := a
	accum := 0.0
	for i, p := range interior {
		accum += geo.HaversineKm(prev, p)
		pts = append(pts, Waypoint{
			Position:            p,
			FractionOfRoute:     float64(i+1) / float64(WaypointCount-1),
			DistanceFromStartKm: accum,
		})
		prev = p
	}
	accum += geo.HaversineKm(prev, b)
	pts = append(pts, Waypoint{
		Position:            b,
		FractionOfRoute:     1,
		DistanceFromStartKm: accum,
	})
	return pts
}

func humanizeHours(h float64) string {
	total := int(math.Round(h))
	if total <= 0 {
		if h > 0 {
			return "<1h"
		}
		return "0h"
	}
	days, hours := total/24, total%24
	switch {
	case days > 0 && hours > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case days > 0:
		return fmt.Sprintf("%dd", days)
	default:
		return fmt.Sprintf("%dh", hours)
	}
}
