package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seaward-io/seaward/internal/cache"
	"github.com/seaward-io/seaward/internal/geo"
	"github.com/seaward-io/seaward/internal/hazard"
)

func newTestCache(t *testing.T) (*cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewCache(client), mr
}

var rotterdam = geo.Coordinate{Lat: 51.9496, Lon: 4.1453}

func sampleSet() *hazard.AlertSet {
	return &hazard.AlertSet{
		Events: []hazard.Event{{
			ID: "gdacs_1", Type: hazard.TypeStorm, Severity: hazard.SeveritySevere,
			Title: "North Sea storm", Sources: []string{"gdacs"},
			Center: rotterdam, IssuedAt: time.Now().UTC().Truncate(time.Second),
		}},
		Total:      1,
		BySeverity: map[hazard.Severity]int{hazard.SeveritySevere: 1},
		Highest:    hazard.SeveritySevere,
	}
}

func TestCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, rotterdam, 500, false, sampleSet()))

	got, err := c.Get(ctx, rotterdam, 500, false)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Events, 1)
	assert.Equal(t, "gdacs_1", got.Events[0].ID)
	assert.Equal(t, hazard.SeveritySevere, got.Highest)
}

func TestCache_Get_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	got, err := c.Get(context.Background(), rotterdam, 500, false)
	require.NoError(t, err)
	assert.Nil(t, got, "cache miss should return nil, nil")
}

func TestCache_NearbyCoordinatesShareEntry(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, rotterdam, 500, false, sampleSet()))

	// A position a few hundred meters away rounds to the same key.
	nearby := geo.Coordinate{Lat: 51.9501, Lon: 4.1449}
	got, err := c.Get(ctx, nearby, 500, false)
	require.NoError(t, err)
	require.NotNil(t, got)
}

func TestCache_ScopeIsPartOfTheKey(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, rotterdam, 500, false, sampleSet()))

	global, err := c.Get(ctx, rotterdam, 500, true)
	require.NoError(t, err)
	assert.Nil(t, global, "global scope must not reuse the local entry")

	wider, err := c.Get(ctx, rotterdam, 1000, false)
	require.NoError(t, err)
	assert.Nil(t, wider, "a different radius must not reuse the entry")
}

func TestCache_Delete(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, rotterdam, 500, false, sampleSet()))
	require.NoError(t, c.Delete(ctx, rotterdam, 500, false))

	got, err := c.Get(ctx, rotterdam, 500, false)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should be gone after delete")
}

func TestCache_Set_NilSet(t *testing.T) {
	c, _ := newTestCache(t)
	err := c.Set(context.Background(), rotterdam, 500, false, nil)
	require.NoError(t, err)
}

func TestCache_TTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, rotterdam, 500, false, sampleSet()))

	mr.FastForward(10 * time.Minute)

	got, err := c.Get(ctx, rotterdam, 500, false)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should be expired after TTL")
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}
