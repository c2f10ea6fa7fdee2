// Package engine orchestrates validation, hazard aggregation, route
// synthesis, and safety classification into the operations the API exposes.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/harbor"
	"github.com/seaward-io/seaward/internal/hazard"
	"github.com/seaward-io/seaward/internal/route"
	"github.com/seaward-io/seaward/internal/verdict"
)

// ErrInvalidEndpoint indicates a route endpoint that failed validation.
var ErrInvalidEndpoint = errors.New("invalid route endpoint")

// AmbientProvider supplies current marine weather for the classifier. A
// failure only withholds ambient data; it never fails the caller.
type AmbientProvider interface {
	Current(ctx context.Context, c geo.Coordinate) (verdict.AmbientConditions, error)
}

// Geocoder resolves coordinates to display labels. Optional and cosmetic.
type Geocoder interface {
	Reverse(ctx context.Context, c geo.Coordinate) (string, error)
}

// AlertCache is a short-TTL cache for aggregated alert sets. Optional; a nil
// cache means every query hits the providers.
type AlertCache interface {
	Get(ctx context.Context, c geo.Coordinate, radiusKm float64, global bool) (*hazard.AlertSet, error)
	Set(ctx context.Context, c geo.Coordinate, radiusKm float64, global bool, set *hazard.AlertSet) error
}

// QueryWatcher is told about every served hazard query so a background
// refresher can keep those locations warm. Optional; *Refresher implements
// it.
type QueryWatcher interface {
	Watch(c geo.Coordinate, radiusKm float64)
}

// Config carries the engine-level tunables.
type Config struct {
	// DefaultRadiusKm is used when a hazard query omits a radius.
	DefaultRadiusKm float64
}

// DefaultConfig returns the production engine settings.
func DefaultConfig() Config {
	return Config{DefaultRadiusKm: 500}
}

// Engine wires the domain components together. All fields are set at
// construction; the engine itself is stateless and safe for concurrent use.
type Engine struct {
	gazetteer  *harbor.Gazetteer
	validator  *harbor.Validator
	aggregator *hazard.Aggregator
	classifier *verdict.Classifier
	ambient    AmbientProvider
	geocoder   Geocoder
	cache      AlertCache
	watcher    QueryWatcher
	cfg        Config
	log        *slog.Logger
}

// New constructs an Engine. ambient, geocoder, cache, and watcher may be nil;
// the corresponding enrichments are then skipped.
func New(
	log *slog.Logger,
	cfg Config,
	gaz *harbor.Gazetteer,
	val *harbor.Validator,
	agg *hazard.Aggregator,
	cls *verdict.Classifier,
	ambient AmbientProvider,
	geocoder Geocoder,
	cache AlertCache,
	watcher QueryWatcher,
) *Engine {
	return &Engine{
		gazetteer:  gaz,
		validator:  val,
		aggregator: agg,
		classifier: cls,
		ambient:    ambient,
		geocoder:   geocoder,
		cache:      cache,
		watcher:    watcher,
		cfg:        cfg,
		log:        log,
	}
}

// LocationReport is a validation result enriched with an optional reverse
// geocoded place label.
type LocationReport struct {
	harbor.ValidationResult
	PlaceName string `json:"place_name,omitempty"`
}

// ValidateLocation validates c and, when a geocoder is configured, attaches
// a display label for the position.
func (e *Engine) ValidateLocation(ctx context.Context, c geo.Coordinate) (LocationReport, error) {
	res, err := e.validator.Validate(ctx, c)
	if err != nil {
		return LocationReport{}, err
	}

	report := LocationReport{ValidationResult: res}
	if e.geocoder != nil {
		if name, gerr := e.geocoder.Reverse(ctx, c); gerr == nil {
			report.PlaceName = name
		}
	}
	return report, nil
}

// SearchHarbors returns gazetteer matches for a free-text query.
func (e *Engine) SearchHarbors(query string, limit int) []harbor.Harbor {
	return e.gazetteer.Search(query, limit)
}

// GetHazards aggregates hazard data around c, consulting the cache first.
// radiusKm <= 0 falls back to the configured default. Degraded sets are
// never cached; a later retry may find the failed provider back up.
func (e *Engine) GetHazards(ctx context.Context, c geo.Coordinate, radiusKm float64, includeGlobal bool) (hazard.AlertSet, error) {
	if err := c.Validate(); err != nil {
		return hazard.AlertSet{}, err
	}
	if radiusKm <= 0 {
		radiusKm = e.cfg.DefaultRadiusKm
	}
	if e.watcher != nil {
		e.watcher.Watch(c, radiusKm)
	}

	if e.cache != nil {
		if cached, err := e.cache.Get(ctx, c, radiusKm, includeGlobal); err != nil {
			e.log.Warn("alert cache get failed", "err", err)
		} else if cached != nil {
			return *cached, nil
		}
	}

	set := e.aggregator.Aggregate(ctx, hazard.PointQuery(c, radiusKm), includeGlobal)
	if err := ctx.Err(); err != nil {
		return hazard.AlertSet{}, err
	}

	if e.cache != nil && !set.Degraded {
		if err := e.cache.Set(ctx, c, radiusKm, includeGlobal, &set); err != nil {
			e.log.Warn("alert cache set failed", "err", err)
		}
	}
	return set, nil
}

// RefreshHazards re-aggregates around c and rewrites the cache entry. Unlike
// GetHazards it skips the cache read, so a still-fresh entry cannot
// short-circuit the refresh, and it does not register the query as an active
// view. Degraded results are discarded, same as GetHazards.
func (e *Engine) RefreshHazards(ctx context.Context, c geo.Coordinate, radiusKm float64) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if radiusKm <= 0 {
		radiusKm = e.cfg.DefaultRadiusKm
	}

	set := e.aggregator.Aggregate(ctx, hazard.PointQuery(c, radiusKm), false)
	if err := ctx.Err(); err != nil {
		return err
	}

	if e.cache != nil && !set.Degraded {
		if err := e.cache.Set(ctx, c, radiusKm, false, &set); err != nil {
			return fmt.Errorf("alert cache set: %w", err)
		}
	}
	return nil
}

// SafetyReport pairs an alert set with the ambient reading and the verdict
// derived from both.
type SafetyReport struct {
	Alerts  hazard.AlertSet           `json:"alerts"`
	Ambient verdict.AmbientConditions `json:"ambient"`
	Verdict verdict.Verdict           `json:"verdict"`
}

// AssessLocation produces the full safety picture for one coordinate:
// aggregated hazards, ambient conditions, and the classified verdict.
func (e *Engine) AssessLocation(ctx context.Context, c geo.Coordinate, radiusKm float64) (SafetyReport, error) {
	set, err := e.GetHazards(ctx, c, radiusKm, false)
	if err != nil {
		return SafetyReport{}, err
	}

	ambient := e.currentAmbient(ctx, c)
	return SafetyReport{
		Alerts:  set,
		Ambient: ambient,
		Verdict: e.classifier.Classify(set, ambient),
	}, nil
}

func (e *Engine) currentAmbient(ctx context.Context, c geo.Coordinate) verdict.AmbientConditions {
	if e.ambient == nil {
		return verdict.AmbientConditions{}
	}
	ambient, err := e.ambient.Current(ctx, c)
	if err != nil {
		e.log.Warn("ambient conditions unavailable", "err", err)
		return verdict.AmbientConditions{}
	}
	return ambient
}

// EndpointAssessment is the safety picture at one end of a route.
type EndpointAssessment struct {
	Harbor harbor.Harbor `json:"harbor"`
	SafetyReport
}

// RouteAnalysis is the full output of AnalyzeRoute.
type RouteAnalysis struct {
	Route route.Route        `json:"route"`
	Start EndpointAssessment `json:"start_assessment"`
	End   EndpointAssessment `json:"end_assessment"`
	// Overall is the more pessimistic of the two endpoint verdicts.
	Overall verdict.Tier `json:"overall"`
}

// AnalyzeRoute validates both endpoints, snaps them to their harbors,
// synthesizes the great-circle plan, and assesses hazards at both ends.
// Endpoint validation and the two endpoint assessments each run
// concurrently. Cancellation propagates; a cancelled analysis returns the
// context error with no partial result.
func (e *Engine) AnalyzeRoute(ctx context.Context, start, end geo.Coordinate, vessel route.Vessel) (RouteAnalysis, error) {
	var startRes, endRes harbor.ValidationResult

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		startRes, err = e.validator.Validate(gCtx, start)
		return err
	})
	g.Go(func() error {
		var err error
		endRes, err = e.validator.Validate(gCtx, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return RouteAnalysis{}, err
	}

	if !startRes.IsValid {
		return RouteAnalysis{}, fmt.Errorf("%w: start: %s", ErrInvalidEndpoint, startRes.Message)
	}
	if !endRes.IsValid {
		return RouteAnalysis{}, fmt.Errorf("%w: end: %s", ErrInvalidEndpoint, endRes.Message)
	}

	startHarbor := *startRes.NearestHarbor
	endHarbor := *endRes.NearestHarbor
	plan := route.Synthesize(startHarbor, endHarbor, vessel)

	var startReport, endReport SafetyReport
	g, gCtx = errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		startReport, err = e.AssessLocation(gCtx, startHarbor.Position, 0)
		return err
	})
	g.Go(func() error {
		var err error
		endReport, err = e.AssessLocation(gCtx, endHarbor.Position, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return RouteAnalysis{}, err
	}
	if err := ctx.Err(); err != nil {
		return RouteAnalysis{}, err
	}

	return RouteAnalysis{
		Route:   plan,
		Start:   EndpointAssessment{Harbor: startHarbor, SafetyReport: startReport},
		End:     EndpointAssessment{Harbor: endHarbor, SafetyReport: endReport},
		Overall: worseTier(startReport.Verdict.Tier, endReport.Verdict.Tier),
	}, nil
}

// tierOrder ranks tiers from best to worst for the overall roll-up.
// INDETERMINATE sits between CAUTION and UNSAFE: not knowing is worse than a
// known caution.
func tierOrder(t verdict.Tier) int {
	switch t {
	case verdict.TierSafe:
		return 0
	case verdict.TierCaution:
		return 1
	case verdict.TierIndeterminate:
		return 2
	default:
		return 3
	}
}

func worseTier(a, b verdict.Tier) verdict.Tier {
	if tierOrder(a) >= tierOrder(b) {
		return a
	}
	return b
}
