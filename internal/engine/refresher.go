package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/seaward-io/seaward/internal/geo"
)

// HazardRefresher re-aggregates hazards for one location, bypassing any
// cached entry so fresh data actually lands in the cache.
type HazardRefresher interface {
	RefreshHazards(ctx context.Context, c geo.Coordinate, radiusKm float64) error
}

// Refresher periodically re-runs hazard aggregation for recently queried
// locations so the cache stays warm while a view is active. It implements
// QueryWatcher: the engine registers every served hazard query, and targets
// not re-queried within the TTL are evicted. Each cycle cancels the previous
// one first; a stale in-flight refresh never outlives a newer one.
type Refresher struct {
	interval time.Duration
	ttl      time.Duration
	log      *slog.Logger

	mu         sync.Mutex
	targets    map[string]refreshTarget
	cancelPrev context.CancelFunc
}

type refreshTarget struct {
	center   geo.Coordinate
	radiusKm float64
	lastSeen time.Time
}

// NewRefresher constructs a Refresher. Targets idle longer than ttl are
// dropped; ttl <= 0 keeps watches forever.
func NewRefresher(log *slog.Logger, interval, ttl time.Duration) *Refresher {
	return &Refresher{
		interval: interval,
		ttl:      ttl,
		log:      log,
		targets:  make(map[string]refreshTarget),
	}
}

// Watch registers c as an active hazard view. Re-watching an already watched
// coordinate extends its lifetime.
func (r *Refresher) Watch(c geo.Coordinate, radiusKm float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.targets[watchKey(c, radiusKm)] = refreshTarget{
		center:   c,
		radiusKm: radiusKm,
		lastSeen: time.Now(),
	}
}

// Unwatch removes c from the refresh set.
func (r *Refresher) Unwatch(c geo.Coordinate, radiusKm float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.targets, watchKey(c, radiusKm))
}

func watchKey(c geo.Coordinate, radiusKm float64) string {
	return fmt.Sprintf("%.4f:%.4f:%.0f", c.Lat, c.Lon, radiusKm)
}

// Run blocks, refreshing every interval through src until ctx is cancelled.
// Call it from its own goroutine.
func (r *Refresher) Run(ctx context.Context, src HazardRefresher) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var wg sync.WaitGroup
	for {
		select {
		case <-ctx.Done():
			r.cancelInFlight()
			wg.Wait()
			return
		case <-ticker.C:
			r.cancelInFlight()

			cycleCtx, cancel := context.WithCancel(ctx)
			now := time.Now()
			r.mu.Lock()
			r.cancelPrev = cancel
			snapshot := make([]refreshTarget, 0, len(r.targets))
			for key, t := range r.targets {
				if r.ttl > 0 && now.Sub(t.lastSeen) > r.ttl {
					delete(r.targets, key)
					continue
				}
				snapshot = append(snapshot, t)
			}
			r.mu.Unlock()

			wg.Add(1)
			go func() {
				defer wg.Done()
				r.refreshAll(cycleCtx, src, snapshot)
			}()
		}
	}
}

func (r *Refresher) cancelInFlight() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancelPrev != nil {
		r.cancelPrev()
		r.cancelPrev = nil
	}
}

func (r *Refresher) refreshAll(ctx context.Context, src HazardRefresher, targets []refreshTarget) {
	for _, t := range targets {
		if ctx.Err() != nil {
			return
		}
		if err := src.RefreshHazards(ctx, t.center, t.radiusKm); err != nil {
			r.log.Warn("background refresh failed", "lat", t.center.Lat, "lon", t.center.Lon, "err", err)
		}
	}
}
