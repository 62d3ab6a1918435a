package provider

import (
	"context"

	"github.com/rs/zerolog"

	"QuantDesk/internal/model"
	"QuantDesk/internal/pricecache"
)

// CachedProvider serves price history from a cache keyed on the full fetch
// tuple (symbol, days), falling through to the wrapped provider on miss.
// The analytics core stays cache-agnostic; this wrapper owns the policy.
type CachedProvider struct {
	inner Provider
	cache pricecache.Cache
	log   zerolog.Logger
}

// NewCachedProvider wraps inner with the given cache.
func NewCachedProvider(inner Provider, cache pricecache.Cache, log zerolog.Logger) *CachedProvider {
	return &CachedProvider{
		inner: inner,
		cache: cache,
		log:   log.With().Str("component", "cached_provider").Logger(),
	}
}

func (p *CachedProvider) Name() string { return p.inner.Name() }

func (p *CachedProvider) DailyCloses(ctx context.Context, symbol string, days int) (model.PriceSeries, error) {
	if series, ok := p.cache.Get(symbol, days); ok {
		p.log.Debug().Str("symbol", symbol).Int("days", days).Msg("cache hit")
		return series, nil
	}

	series, err := p.inner.DailyCloses(ctx, symbol, days)
	if err != nil {
		return model.PriceSeries{}, err
	}
	p.cache.Put(symbol, days, series)
	return series, nil
}
