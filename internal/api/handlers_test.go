package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaward-io/seaward/internal/api"
	"github.com/seaward-io/seaward/internal/engine"
	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/harbor"
	"github.com/seaward-io/seaward/internal/hazard"
	"github.com/seaward-io/seaward/internal/route"
	"github.com/seaward-io/seaward/internal/verdict"
)

// ---- mock implementations ----

type mockValidator struct {
	validateFn func(ctx context.Context, c geo.Coordinate) (engine.LocationReport, error)
}

func (m *mockValidator) ValidateLocation(ctx context.Context, c geo.Coordinate) (engine.LocationReport, error) {
	return m.validateFn(ctx, c)
}

type mockSearcher struct {
	searchFn func(query string, limit int) []harbor.Harbor
}

func (m *mockSearcher) SearchHarbors(query string, limit int) []harbor.Harbor {
	return m.searchFn(query, limit)
}

type mockHazards struct {
	getFn func(ctx context.Context, c geo.Coordinate, radiusKm float64, global bool) (hazard.AlertSet, error)
}

func (m *mockHazards) GetHazards(ctx context.Context, c geo.Coordinate, radiusKm float64, global bool) (hazard.AlertSet, error) {
	return m.getFn(ctx, c, radiusKm, global)
}

type mockRoutes struct {
	analyzeFn func(ctx context.Context, start, end geo.Coordinate, vessel route.Vessel) (engine.RouteAnalysis, error)
}

func (m *mockRoutes) AnalyzeRoute(ctx context.Context, start, end geo.Coordinate, vessel route.Vessel) (engine.RouteAnalysis, error) {
	return m.analyzeFn(ctx, start, end, vessel)
}

type mockPinger struct{ err error }

func (m *mockPinger) Ping(_ context.Context) error { return m.err }

// ---- helpers ----

var (
	rotterdamPos = geo.Coordinate{Lat: 51.9496, Lon: 4.1453}
	rotterdamHbr = harbor.Harbor{
		ID: "nl-rotterdam", Name: "Port of Rotterdam", Country: "Netherlands",
		Position: rotterdamPos, Category: harbor.CategoryContainer,
	}
)

func validReport() engine.LocationReport {
	return engine.LocationReport{
		ValidationResult: harbor.ValidationResult{
			IsValid:       true,
			NearestHarbor: &rotterdamHbr,
			DistanceKm:    1.2,
			Message:       "valid harbor location near Port of Rotterdam",
		},
		PlaceName: "Rotterdam, Netherlands",
	}
}

func sampleAlerts() hazard.AlertSet {
	return hazard.AlertSet{
		Events: []hazard.Event{{
			ID: "gdacs_1", Type: hazard.TypeStorm, Severity: hazard.SeveritySevere,
			Title: "North Sea storm", Sources: []string{"gdacs"},
			Center: rotterdamPos, IssuedAt: time.Now().UTC(),
		}},
		Total:      1,
		BySeverity: map[hazard.Severity]int{hazard.SeveritySevere: 1},
		Highest:    hazard.SeveritySevere,
	}
}

const testToken = "secret-token"

func buildRouter(v api.LocationValidator, s api.HarborSearcher, hz api.HazardProvider, rt api.RouteAnalyzer, db, redis api.Pinger) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handlers := api.NewHandlers(v, s, hz, rt, log)
	return api.NewRouter(handlers, testToken, db, redis, log)
}

func authedRequest(method, target string, body any) *http.Request {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

// ---- POST /api/v1/locations/validate ----

func TestValidateLocation_OK(t *testing.T) {
	v := &mockValidator{
		validateFn: func(_ context.Context, c geo.Coordinate) (engine.LocationReport, error) {
			assert.Equal(t, rotterdamPos, c)
			return validReport(), nil
		},
	}

	router := buildRouter(v, nil, nil, nil, nil, nil)
	req := authedRequest(http.MethodPost, "/api/v1/locations/validate", map[string]float64{
		"lat": rotterdamPos.Lat, "lon": rotterdamPos.Lon,
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got engine.LocationReport
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.True(t, got.IsValid)
	assert.Equal(t, "Rotterdam, Netherlands", got.PlaceName)
}

func TestValidateLocation_InvalidCoordinate(t *testing.T) {
	v := &mockValidator{
		validateFn: func(_ context.Context, c geo.Coordinate) (engine.LocationReport, error) {
			return engine.LocationReport{}, c.Validate()
		},
	}

	router := buildRouter(v, nil, nil, nil, nil, nil)
	req := authedRequest(http.MethodPost, "/api/v1/locations/validate", map[string]float64{"lat": 0, "lon": 0})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateLocation_BadBody(t *testing.T) {
	router := buildRouter(&mockValidator{}, nil, nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/locations/validate", bytes.NewReader([]byte("{not-json")))
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateLocation_InternalError(t *testing.T) {
	v := &mockValidator{
		validateFn: func(_ context.Context, _ geo.Coordinate) (engine.LocationReport, error) {
			return engine.LocationReport{}, fmt.Errorf("gazetteer unavailable")
		},
	}

	router := buildRouter(v, nil, nil, nil, nil, nil)
	req := authedRequest(http.MethodPost, "/api/v1/locations/validate", map[string]float64{"lat": 10, "lon": 10})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ---- GET /api/v1/harbors ----

func TestSearchHarbors_OK(t *testing.T) {
	s := &mockSearcher{
		searchFn: func(query string, limit int) []harbor.Harbor {
			assert.Equal(t, "rotterdam", query)
			assert.Equal(t, 5, limit)
			return []harbor.Harbor{rotterdamHbr}
		},
	}

	router := buildRouter(nil, s, nil, nil, nil, nil)
	req := authedRequest(http.MethodGet, "/api/v1/harbors?q=rotterdam&limit=5", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Harbors []harbor.Harbor `json:"harbors"`
		Count   int             `json:"count"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, "nl-rotterdam", body.Harbors[0].ID)
}

func TestSearchHarbors_MissingQuery(t *testing.T) {
	router := buildRouter(nil, &mockSearcher{}, nil, nil, nil, nil)
	req := authedRequest(http.MethodGet, "/api/v1/harbors", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchHarbors_BadLimit(t *testing.T) {
	router := buildRouter(nil, &mockSearcher{}, nil, nil, nil, nil)
	req := authedRequest(http.MethodGet, "/api/v1/harbors?q=rotterdam&limit=zero", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ---- GET /api/v1/hazards ----

func TestGetHazards_OK(t *testing.T) {
	hz := &mockHazards{
		getFn: func(_ context.Context, c geo.Coordinate, radiusKm float64, global bool) (hazard.AlertSet, error) {
			assert.InDelta(t, 51.9496, c.Lat, 1e-9)
			assert.Equal(t, 300.0, radiusKm)
			assert.True(t, global)
			return sampleAlerts(), nil
		},
	}

	router := buildRouter(nil, nil, hz, nil, nil, nil)
	req := authedRequest(http.MethodGet, "/api/v1/hazards?lat=51.9496&lon=4.1453&radius_km=300&global=true", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Alerts hazard.AlertSet `json:"alerts"`
		Notice string          `json:"notice"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, 1, body.Alerts.Total)
	assert.Empty(t, body.Notice)
}

func TestGetHazards_DegradedCarriesNotice(t *testing.T) {
	hz := &mockHazards{
		getFn: func(_ context.Context, _ geo.Coordinate, _ float64, _ bool) (hazard.AlertSet, error) {
			set := sampleAlerts()
			set.Degraded = true
			set.FailedSources = []string{"usgs"}
			return set, nil
		},
	}

	router := buildRouter(nil, nil, hz, nil, nil, nil)
	req := authedRequest(http.MethodGet, "/api/v1/hazards?lat=51.9496&lon=4.1453", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Contains(t, body["notice"], "partial results")
}

func TestGetHazards_MissingCoordinates(t *testing.T) {
	router := buildRouter(nil, nil, &mockHazards{}, nil, nil, nil)
	req := authedRequest(http.MethodGet, "/api/v1/hazards?lat=abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetHazards_InvalidCoordinate(t *testing.T) {
	hz := &mockHazards{
		getFn: func(_ context.Context, c geo.Coordinate, _ float64, _ bool) (hazard.AlertSet, error) {
			return hazard.AlertSet{}, c.Validate()
		},
	}

	router := buildRouter(nil, nil, hz, nil, nil, nil)
	req := authedRequest(http.MethodGet, "/api/v1/hazards?lat=0&lon=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ---- POST /api/v1/routes/analyze ----

func TestAnalyzeRoute_OK(t *testing.T) {
	rt := &mockRoutes{
		analyzeFn: func(_ context.Context, start, end geo.Coordinate, vessel route.Vessel) (engine.RouteAnalysis, error) {
			assert.Equal(t, 18.0, vessel.CruisingSpeedKn)
			return engine.RouteAnalysis{
				Route:   route.Synthesize(rotterdamHbr, rotterdamHbr, vessel),
				Overall: verdict.TierSafe,
			}, nil
		},
	}

	router := buildRouter(nil, nil, nil, rt, nil, nil)
	req := authedRequest(http.MethodPost, "/api/v1/routes/analyze", map[string]any{
		"start":  map[string]float64{"lat": 1.2644, "lon": 103.84},
		"end":    map[string]float64{"lat": 51.9496, "lon": 4.1453},
		"vessel": map[string]float64{"cruising_speed_kn": 18},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var got engine.RouteAnalysis
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, verdict.TierSafe, got.Overall)
}

func TestAnalyzeRoute_InvalidEndpointIsUnprocessable(t *testing.T) {
	rt := &mockRoutes{
		analyzeFn: func(_ context.Context, _, _ geo.Coordinate, _ route.Vessel) (engine.RouteAnalysis, error) {
			return engine.RouteAnalysis{}, fmt.Errorf("%w: start: not a harbor location", engine.ErrInvalidEndpoint)
		},
	}

	router := buildRouter(nil, nil, nil, rt, nil, nil)
	req := authedRequest(http.MethodPost, "/api/v1/routes/analyze", map[string]any{
		"start": map[string]float64{"lat": -40, "lon": -120},
		"end":   map[string]float64{"lat": 51.9496, "lon": 4.1453},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestAnalyzeRoute_BadBody(t *testing.T) {
	router := buildRouter(nil, nil, nil, &mockRoutes{}, nil, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/routes/analyze", bytes.NewReader([]byte("[")))
	req.Header.Set("Authorization", "Bearer "+testToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeRoute_InternalError(t *testing.T) {
	rt := &mockRoutes{
		analyzeFn: func(_ context.Context, _, _ geo.Coordinate, _ route.Vessel) (engine.RouteAnalysis, error) {
			return engine.RouteAnalysis{}, fmt.Errorf("aggregator blew up")
		},
	}

	router := buildRouter(nil, nil, nil, rt, nil, nil)
	req := authedRequest(http.MethodPost, "/api/v1/routes/analyze", map[string]any{
		"start": map[string]float64{"lat": 1.2644, "lon": 103.84},
		"end":   map[string]float64{"lat": 51.9496, "lon": 4.1453},
	})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// ---- GET /api/v1/health ----

func TestHealth_OK(t *testing.T) {
	router := buildRouter(nil, nil, nil, nil, &mockPinger{}, &mockPinger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["db"])
	assert.Equal(t, "ok", body["redis"])
}

func TestHealth_DBDown(t *testing.T) {
	router := buildRouter(nil, nil, nil, nil,
		&mockPinger{err: fmt.Errorf("db unreachable")},
		&mockPinger{},
	)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "error", body["db"])
}

func TestHealth_DisabledBackendsStillOK(t *testing.T) {
	// Without DB and Redis configured the service still reports healthy.
	router := buildRouter(nil, nil, nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "disabled", body["db"])
	assert.Equal(t, "disabled", body["redis"])
}

// ---- Auth middleware ----

func TestBearerAuth_NoHeader(t *testing.T) {
	router := buildRouter(nil, &mockSearcher{}, nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/harbors?q=rotterdam", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuth_WrongToken(t *testing.T) {
	router := buildRouter(nil, &mockSearcher{}, nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/harbors?q=rotterdam", nil)
	req.Header.Set("Authorization", "Bearer wrong-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBearerAuth_HealthNoAuth(t *testing.T) {
	// Health endpoint must not require auth.
	router := buildRouter(nil, nil, nil, nil, &mockPinger{}, &mockPinger{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerAuth_MissingBearerPrefix(t *testing.T) {
	router := buildRouter(nil, &mockSearcher{}, nil, nil, nil, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/harbors?q=rotterdam", nil)
	req.Header.Set("Authorization", testToken) // no "Bearer " prefix
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
