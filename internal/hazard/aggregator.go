package hazard

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// AggregatorConfig tunes the merge pipeline. The family table and proximity
// box are empirically chosen product parameters, not invariants; both are
// configurable on purpose.
type AggregatorConfig struct {
	// PerSourceTimeout bounds each provider fetch independently.
	PerSourceTimeout time.Duration
	// DedupDegrees is the half-width of the proximity box, in degrees of
	// both latitude and longitude. A fast bounding check, not a distance
	// metric.
	DedupDegrees float64
	// MaxEvents caps the returned list. Applied after dedup and ranking,
	// never before.
	MaxEvents int
	// Families maps each hazard type to its dedup family. Types sharing a
	// family are considered the same underlying event when close enough.
	Families map[Type]string
}

// DefaultAggregatorConfig returns the production merge parameters.
func DefaultAggregatorConfig() AggregatorConfig {
	return AggregatorConfig{
		PerSourceTimeout: 10 * time.Second,
		DedupDegrees:     0.5,
		MaxEvents:        15,
		Families: map[Type]string{
			TypeStorm:      "wind",
			TypeHighWind:   "wind",
			TypeEarthquake: "seismic",
			TypeTsunami:    "tsunami",
			TypeFlood:      "flood",
			TypeWildfire:   "fire",
			TypeFog:        "fog",
			TypeOther:      "other",
		},
	}
}

// Aggregator fans a query out to every source concurrently and merges
// whatever subset succeeds into one ranked AlertSet.
type Aggregator struct {
	sources []Source
	cfg     AggregatorConfig
	log     *slog.Logger
}

// NewAggregator constructs an Aggregator over the given sources.
func NewAggregator(log *slog.Logger, cfg AggregatorConfig, sources ...Source) *Aggregator {
	return &Aggregator{sources: sources, cfg: cfg, log: log}
}

// Aggregate fetches q from every source, optionally merging a second global
// pass through the same dedup and ranking pipeline. A provider failure never
// fails the aggregation; if every fetch fails the result is an empty set with
// Degraded set, so callers can still render "no confirmed hazards".
func (a *Aggregator) Aggregate(ctx context.Context, q GeoQuery, includeGlobal bool) AlertSet {
	queries := []GeoQuery{q}
	if includeGlobal && !q.Global {
		queries = append(queries, GlobalQuery())
	}

	var (
		mu        sync.Mutex
		collected []Event
		failed    = make(map[string]bool)
	)

	g, gCtx := errgroup.WithContext(ctx)
	for _, src := range a.sources {
		for _, query := range queries {
			g.Go(func() error {
				defer func() {
					if r := recover(); r != nil {
						a.log.Error("hazard source panicked", "source", src.Name(), "recover", r)
						mu.Lock()
						failed[src.Name()] = true
						mu.Unlock()
					}
				}()

				fetchCtx, cancel := context.WithTimeout(gCtx, a.cfg.PerSourceTimeout)
				defer cancel()

				events, fetchErr := src.Fetch(fetchCtx, query)
				mu.Lock()
				defer mu.Unlock()
				if fetchErr != nil {
					// Timeouts are provider failures, not retried here.
					a.log.Warn("hazard source failed", "source", src.Name(), "err", fetchErr)
					failed[src.Name()] = true
					return nil
				}
				collected = append(collected, events...)
				return nil
			})
		}
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		// A cancelled aggregation returns nothing rather than a partial set.
		return AlertSet{Degraded: true, BySeverity: map[Severity]int{}, Highest: SeverityUnknown}
	}

	set := a.build(collected)
	if len(failed) > 0 {
		set.Degraded = true
		for name := range failed {
			set.FailedSources = append(set.FailedSources, name)
		}
		sort.Strings(set.FailedSources)
	}
	return set
}

// build runs dedup, ranking, counters, and truncation over raw events.
func (a *Aggregator) build(events []Event) AlertSet {
	ranked := a.dedup(events)

	set := AlertSet{
		BySeverity: make(map[Severity]int),
		Highest:    SeverityUnknown,
	}
	for _, e := range ranked {
		set.BySeverity[e.Severity]++
		if e.Severity.Rank() > set.Highest.Rank() {
			set.Highest = e.Severity
		}
		if e.Urgency == "immediate" || e.Urgency == "expected" {
			set.UrgentCount++
		}
	}
	set.Total = len(ranked)

	// Truncation comes last so duplicated low-priority events can never
	// crowd out a rare high-priority one.
	if a.cfg.MaxEvents > 0 && len(ranked) > a.cfg.MaxEvents {
		ranked = ranked[:a.cfg.MaxEvents]
	}
	set.Events = ranked
	return set
}

// dedup sorts events into their final ranking order, then greedily merges
// later events into earlier ones when they describe the same underlying
// hazard. Sorting first makes the merge order-independent: the survivor is
// always the higher-severity, more recent record no matter which source
// reported it first.
func (a *Aggregator) dedup(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ri, rj := sorted[i].Severity.Rank(), sorted[j].Severity.Rank(); ri != rj {
			return ri > rj
		}
		if !sorted[i].IssuedAt.Equal(sorted[j].IssuedAt) {
			return sorted[i].IssuedAt.After(sorted[j].IssuedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	var kept []Event
	for _, e := range sorted {
		merged := false
		for k := range kept {
			if a.sameEvent(kept[k], e) {
				kept[k].Sources = mergeSources(kept[k].Sources, e.Sources)
				merged = true
				break
			}
		}
		if !merged {
			kept = append(kept, e)
		}
	}
	return kept
}

// sameEvent applies the family-compatibility and proximity-box policy.
// Proximity merging is cross-source corroboration only: two records carrying
// the same source set are distinct events from one provider (an aftershock
// sequence, say), not duplicate reports of one hazard.
func (a *Aggregator) sameEvent(x, y Event) bool {
	if x.ID == y.ID {
		return true
	}
	fx, fy := a.cfg.Families[x.Type], a.cfg.Families[y.Type]
	if fx == "" || fy == "" || fx != fy {
		return false
	}
	if sameSources(x.Sources, y.Sources) {
		return false
	}
	return math.Abs(x.Center.Lat-y.Center.Lat) <= a.cfg.DedupDegrees &&
		math.Abs(x.Center.Lon-y.Center.Lon) <= a.cfg.DedupDegrees
}

// sameSources compares two source lists. Adapters emit a single source and
// mergeSources keeps merged lists sorted, so element-wise comparison holds.
func sameSources(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func mergeSources(dst, add []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, s := range dst {
		seen[s] = true
	}
	for _, s := range add {
		if !seen[s] {
			dst = append(dst, s)
			seen[s] = true
		}
	}
	sort.Strings(dst)
	return dst
}

// DegradedNotice returns the user-facing caveat for a degraded set, or an
// empty string for a complete one.
func (s AlertSet) DegradedNotice() string {
	if !s.Degraded {
		return ""
	}
	return fmt.Sprintf("insufficient hazard data — showing partial results (%d provider(s) unreachable)", len(s.FailedSources))
}
