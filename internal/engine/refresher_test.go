package engine_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/seaward-io/seaward/internal/engine"
	"github.com/seaward-io/seaward/internal/harbor"
	"github.com/seaward-io/seaward/internal/hazard"
	"github.com/seaward-io/seaward/internal/verdict"
)

// countingSource records how many fetches reached it and how many were
// cancelled mid-flight.
type countingSource struct {
	fetches   atomic.Int64
	cancelled atomic.Int64
	delay     time.Duration
}

func (s *countingSource) Name() string { return "counting" }
func (s *countingSource) Fetch(ctx context.Context, _ hazard.GeoQuery) ([]hazard.Event, error) {
	s.fetches.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			s.cancelled.Add(1)
			return nil, ctx.Err()
		}
	}
	return nil, nil
}

func newRefreshEngine(src hazard.Source) *engine.Engine {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	gaz := harbor.NewGazetteer([]harbor.Harbor{singapore})
	val := harbor.NewValidator(gaz, nil, harbor.DefaultValidatorConfig())
	agg := hazard.NewAggregator(log, hazard.DefaultAggregatorConfig(), src)
	cls := verdict.NewClassifier(verdict.DefaultThresholds())
	return engine.New(log, engine.DefaultConfig(), gaz, val, agg, cls, nil, nil, nil, nil)
}

func newRefresher(interval, ttl time.Duration) *engine.Refresher {
	return engine.NewRefresher(slog.New(slog.NewTextHandler(io.Discard, nil)), interval, ttl)
}

func TestRefresher_RefreshesWatchedLocations(t *testing.T) {
	src := &countingSource{}
	e := newRefreshEngine(src)

	r := newRefresher(20*time.Millisecond, time.Minute)
	r.Watch(singapore.Position, 300)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, e)
		close(done)
	}()

	time.Sleep(120 * time.Millisecond)
	cancel()
	<-done

	assert.Greater(t, src.fetches.Load(), int64(2), "multiple refresh cycles ran")
}

func TestRefresher_CancelsInFlightCycle(t *testing.T) {
	// Each cycle takes far longer than the interval, so every tick must
	// cancel the previous cycle before starting its own.
	src := &countingSource{delay: time.Second}
	e := newRefreshEngine(src)

	r := newRefresher(30*time.Millisecond, time.Minute)
	r.Watch(singapore.Position, 300)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, e)
		close(done)
	}()

	time.Sleep(150 * time.Millisecond)
	cancel()
	<-done

	assert.Greater(t, src.cancelled.Load(), int64(0), "stale cycles were cancelled")
}

func TestRefresher_UnwatchStopsRefreshing(t *testing.T) {
	src := &countingSource{}
	e := newRefreshEngine(src)

	r := newRefresher(20*time.Millisecond, time.Minute)
	r.Watch(singapore.Position, 300)
	r.Unwatch(singapore.Position, 300)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, e)
		close(done)
	}()

	time.Sleep(80 * time.Millisecond)
	cancel()
	<-done

	assert.Zero(t, src.fetches.Load())
}

func TestRefresher_EvictsIdleWatches(t *testing.T) {
	src := &countingSource{}
	e := newRefreshEngine(src)

	r := newRefresher(20*time.Millisecond, 50*time.Millisecond)
	r.Watch(singapore.Position, 300)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		r.Run(ctx, e)
		close(done)
	}()

	// The watch is never renewed, so refreshes stop once the TTL passes.
	time.Sleep(150 * time.Millisecond)
	settled := src.fetches.Load()
	assert.Greater(t, settled, int64(0), "the watch was refreshed while alive")

	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, settled, src.fetches.Load(), "no refreshes after the watch expired")
}
