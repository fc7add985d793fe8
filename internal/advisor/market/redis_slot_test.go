package market

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSlotRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	slot := NewRedisSlot(rdb, "Tomato", 30*time.Minute)
	ctx := context.Background()

	_, ok, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, slot.Store(ctx, Snapshot{Prices: samplePrices, FetchedAt: at}))

	snap, ok, err := slot.Load(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, samplePrices, snap.Prices)
	assert.True(t, at.Equal(snap.FetchedAt))

	assert.True(t, mr.Exists("market:prices:tomato"))
	assert.Equal(t, 24*time.Hour, mr.TTL("market:prices:tomato"))
}

func TestRedisSlotCorruptValue(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	require.NoError(t, mr.Set("market:prices:tomato", "{not json"))
	_, ok, err := NewRedisSlot(rdb, "Tomato", time.Minute).Load(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestCacheOverRedisSlot(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	clk := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	f := &fakeFetcher{prices: samplePrices}
	c := NewCache(f, NewRedisSlot(rdb, "Tomato", 30*time.Minute), 30*time.Minute, WithClock(clk.Now))

	c.Prices(context.Background())
	res := c.Prices(context.Background())
	assert.Equal(t, SourceCache, res.Source)
	assert.EqualValues(t, 1, f.calls.Load())
}
