package market

import (
	"context"
	"time"

	"github.com/agrosmart-advisor/server/internal/advisor/model"
	errx "github.com/agrosmart-advisor/server/internal/core/error"
	logx "github.com/agrosmart-advisor/server/pkg/logger"
	"golang.org/x/sync/singleflight"
)

// Source tells where a Result came from.
type Source string

const (
	SourceCache    Source = "cache"
	SourceUpstream Source = "upstream"
	SourceStale    Source = "stale"
	SourceFallback Source = "fallback"
)

// Fetcher loads fresh prices from the upstream API.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.PriceEntry, error)
}

type Result struct {
	Prices    []model.PriceEntry
	FetchedAt time.Time // zero for fallback data
	Source    Source
}

// Cache guards a rate-limited price API with a single TTL slot.
type Cache struct {
	fetcher Fetcher
	slot    Slot
	ttl     time.Duration
	now     func() time.Time
	group   singleflight.Group
}

type Option func(*Cache)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func NewCache(fetcher Fetcher, slot Slot, ttl time.Duration, opts ...Option) *Cache {
	c := &Cache{
		fetcher: fetcher,
		slot:    slot,
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL is the age up to which a cached snapshot is served without refetching.
func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// Prices returns the cached prices while they are fresh. Otherwise it fetches;
// on failure it serves the stale snapshot if there is one, else FallbackPrices.
// It never returns an error.
func (c *Cache) Prices(ctx context.Context) Result {
	snap, ok := c.load(ctx)
	if ok && c.fresh(snap) {
		return Result{Prices: model.ClonePrices(snap.Prices), FetchedAt: snap.FetchedAt, Source: SourceCache}
	}

	// Concurrent expired reads share one upstream call. The call outlives a
	// cancelled first caller; the client timeout still bounds it.
	v, _, _ := c.group.Do("prices", func() (any, error) {
		return c.refresh(context.WithoutCancel(ctx), snap, ok), nil
	})
	res := v.(Result)
	res.Prices = model.ClonePrices(res.Prices)
	return res
}

func (c *Cache) load(ctx context.Context) (Snapshot, bool) {
	snap, ok, err := c.slot.Load(ctx)
	if err != nil {
		logx.Ctx(ctx).Warn().Err(err).Msg("market cache slot unreadable, treating as empty")
		return Snapshot{}, false
	}
	return snap, ok && len(snap.Prices) > 0
}

func (c *Cache) fresh(snap Snapshot) bool {
	return c.now().Sub(snap.FetchedAt) < c.ttl
}

func (c *Cache) refresh(ctx context.Context, stale Snapshot, haveStale bool) Result {
	now := c.now()
	prices, err := c.fetcher.Fetch(ctx)
	if err != nil {
		ev := logx.Ctx(ctx).Warn().Err(err)
		if errx.IsRateLimited(err) {
			ev = ev.Bool("rate_limited", true)
		}
		if haveStale {
			ev.Time("stale_fetched_at", stale.FetchedAt).Msg("market fetch failed, serving stale prices")
			return Result{Prices: stale.Prices, FetchedAt: stale.FetchedAt, Source: SourceStale}
		}
		ev.Msg("market fetch failed, serving fallback prices")
		return Result{Prices: model.FallbackPrices, Source: SourceFallback}
	}

	snap := Snapshot{Prices: prices, FetchedAt: now}
	if err := c.slot.Store(ctx, snap); err != nil {
		logx.Ctx(ctx).Warn().Err(err).Msg("failed to store market snapshot")
	}
	logx.Ctx(ctx).Debug().Int("records", len(prices)).Msg("market prices refreshed")
	return Result{Prices: prices, FetchedAt: now, Source: SourceUpstream}
}
