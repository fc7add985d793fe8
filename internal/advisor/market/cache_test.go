package market

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	errx "github.com/agrosmart-advisor/server/internal/core/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	calls  atomic.Int32
	prices []model.PriceEntry
	err    error
	block  chan struct{}
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]model.PriceEntry, error) {
	f.calls.Add(1)
	if f.block != nil {
		<-f.block
	}
	if f.err != nil {
		return nil, f.err
	}
	return model.ClonePrices(f.prices), nil
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

var samplePrices = []model.PriceEntry{
	{Commodity: "Tomato", Market: "Azadpur", State: "NCT of Delhi", Price: "₹2400/quintal", Trend: model.TrendUp},
	{Commodity: "Tomato", Market: "Kolar", State: "Karnataka", Price: "₹1800/quintal", Trend: model.TrendFlat},
}

func newCache(f Fetcher, clk *clock) *Cache {
	return NewCache(f, NewMemorySlot(), 30*time.Minute, WithClock(clk.Now))
}

func TestCacheHitWithinTTLDoesNotRefetch(t *testing.T) {
	clk := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	f := &fakeFetcher{prices: samplePrices}
	c := newCache(f, clk)

	first := c.Prices(context.Background())
	require.Equal(t, SourceUpstream, first.Source)

	clk.Advance(29 * time.Minute)
	second := c.Prices(context.Background())

	assert.Equal(t, SourceCache, second.Source)
	assert.Equal(t, first.Prices, second.Prices)
	assert.Equal(t, first.FetchedAt, second.FetchedAt)
	assert.EqualValues(t, 1, f.calls.Load())
}

func TestCacheExpiredReadRefetches(t *testing.T) {
	clk := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	f := &fakeFetcher{prices: samplePrices}
	c := newCache(f, clk)

	c.Prices(context.Background())
	clk.Advance(30 * time.Minute)
	res := c.Prices(context.Background())

	assert.Equal(t, SourceUpstream, res.Source)
	assert.Equal(t, clk.Now(), res.FetchedAt)
	assert.EqualValues(t, 2, f.calls.Load())
}

func TestCacheFailureServesStale(t *testing.T) {
	clk := &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	f := &fakeFetcher{prices: samplePrices}
	c := newCache(f, clk)

	fetchedAt := c.Prices(context.Background()).FetchedAt

	clk.Advance(2 * time.Hour)
	f.err = errx.WrapUpstream("agmarknet", http.StatusTooManyRequests, nil)
	res := c.Prices(context.Background())

	assert.Equal(t, SourceStale, res.Source)
	assert.Equal(t, samplePrices, res.Prices)
	assert.Equal(t, fetchedAt, res.FetchedAt)
}

func TestCacheFailureWithoutStaleServesFallback(t *testing.T) {
	clk := &clock{t: time.Now()}
	f := &fakeFetcher{err: errors.New("connection reset")}
	c := newCache(f, clk)

	res := c.Prices(context.Background())
	assert.Equal(t, SourceFallback, res.Source)
	assert.Equal(t, model.FallbackPrices, res.Prices)
	assert.True(t, res.FetchedAt.IsZero())

	// Fallback data is never cached, so the next read tries again.
	c.Prices(context.Background())
	assert.EqualValues(t, 2, f.calls.Load())
}

func TestCacheResultIsACopy(t *testing.T) {
	clk := &clock{t: time.Now()}
	c := newCache(&fakeFetcher{prices: samplePrices}, clk)

	res := c.Prices(context.Background())
	res.Prices[0].Market = "tampered"

	again := c.Prices(context.Background())
	assert.Equal(t, "Azadpur", again.Prices[0].Market)
}

func TestCacheCollapsesConcurrentRefreshes(t *testing.T) {
	clk := &clock{t: time.Now()}
	f := &fakeFetcher{prices: samplePrices, block: make(chan struct{})}
	c := newCache(f, clk)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := c.Prices(context.Background())
			assert.Equal(t, samplePrices, res.Prices)
		}()
	}

	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(f.block)
	wg.Wait()

	// Late readers find the freshly stored snapshot instead of fetching again.
	assert.EqualValues(t, 1, f.calls.Load())
}

type brokenSlot struct{}

func (brokenSlot) Load(context.Context) (Snapshot, bool, error) {
	return Snapshot{}, false, errors.New("slot down")
}
func (brokenSlot) Store(context.Context, Snapshot) error { return errors.New("slot down") }

func TestCacheSurvivesBrokenSlot(t *testing.T) {
	f := &fakeFetcher{prices: samplePrices}
	c := NewCache(f, brokenSlot{}, time.Minute)

	res := c.Prices(context.Background())
	assert.Equal(t, SourceUpstream, res.Source)
	assert.Equal(t, samplePrices, res.Prices)
	assert.Equal(t, time.Minute, c.TTL())
}
