package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/seaward-io/seaward/internal/engine"
	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/route"
)

const defaultSearchLimit = 10

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	validator LocationValidator
	searcher  HarborSearcher
	hazards   HazardProvider
	routes    RouteAnalyzer
	log       *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(validator LocationValidator, searcher HarborSearcher, hazards HazardProvider, routes RouteAnalyzer, log *slog.Logger) *Handlers {
	return &Handlers{
		validator: validator,
		searcher:  searcher,
		hazards:   hazards,
		routes:    routes,
		log:       log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

type coordinatePayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p coordinatePayload) coordinate() geo.Coordinate {
	return geo.Coordinate{Lat: p.Lat, Lon: p.Lon}
}

// ValidateLocation handles POST /api/v1/locations/validate.
// The body carries a single lat/lon pair; the response says whether it is a
// usable harbor location and which harbor it snaps to.
func (h *Handlers) ValidateLocation(w http.ResponseWriter, r *http.Request) {
	var payload coordinatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	report, err := h.validator.ValidateLocation(r.Context(), payload.coordinate())
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("validate location failed", "lat", payload.Lat, "lon", payload.Lon, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// SearchHarbors handles GET /api/v1/harbors?q=<query>&limit=<n>.
func (h *Handlers) SearchHarbors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	harbors := h.searcher.SearchHarbors(query, limit)
	writeJSON(w, http.StatusOK, map[string]any{
		"harbors": harbors,
		"count":   len(harbors),
	})
}

// GetHazards handles GET /api/v1/hazards?lat=&lon=&radius_km=&global=.
func (h *Handlers) GetHazards(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("lon"), 64)
	if errLat != nil || errLon != nil {
		writeError(w, http.StatusBadRequest, "lat and lon must be decimal degrees")
		return
	}

	var radiusKm float64
	if raw := q.Get("radius_km"); raw != "" {
		var err error
		if radiusKm, err = strconv.ParseFloat(raw, 64); err != nil || radiusKm < 0 {
			writeError(w, http.StatusBadRequest, "radius_km must be a non-negative number")
			return
		}
	}
	includeGlobal := q.Get("global") == "true"

	set, err := h.hazards.GetHazards(r.Context(), geo.Coordinate{Lat: lat, Lon: lon}, radiusKm, includeGlobal)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("hazard query failed", "lat", lat, "lon", lon, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := map[string]any{"alerts": set}
	if notice := set.DegradedNotice(); notice != "" {
		resp["notice"] = notice
	}
	writeJSON(w, http.StatusOK, resp)
}

type analyzeRouteRequest struct {
	Start  coordinatePayload `json:"start"`
	End    coordinatePayload `json:"end"`
	Vessel route.Vessel      `json:"vessel"`
}

// AnalyzeRoute handles POST /api/v1/routes/analyze.
// Both endpoints must validate as harbor locations; the response carries the
// synthesized plan plus a safety assessment at each end.
func (h *Handlers) AnalyzeRoute(w http.ResponseWriter, r *http.Request) {
	var req analyzeRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := h.routes.AnalyzeRoute(r.Context(), req.Start.coordinate(), req.End.coordinate(), req.Vessel)
	if err != nil {
		switch {
		case errors.Is(err, geo.ErrInvalidCoordinate):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, engine.ErrInvalidEndpoint):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, context.Canceled):
			// Client went away mid-analysis; nothing useful to write.
			h.log.Warn("route analysis cancelled")
		default:
			h.log.Error("route analysis failed", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

// HealthCheck handles GET /api/v1/health.
// Pings DB and Redis; returns 200 if both ok, 503 otherwise. A nil pinger
// means that backend is not configured and reports "disabled".
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis connectivity.
func HealthHandlerFunc(db Pinger, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		check := func(name string, p Pinger) string {
			if p == nil {
				return "disabled"
			}
			if err := p.Ping(ctx); err != nil {
				log.Error("health check failed", "backend", name, "err", err)
				status = http.StatusServiceUnavailable
				return "error"
			}
			return "ok"
		}

		dbStatus := check("db", db)
		redisStatus := check("redis", redis)

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
