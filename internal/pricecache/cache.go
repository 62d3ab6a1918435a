// Package pricecache stores fetched price history at the data boundary.
// Entries are keyed on the full fetch tuple (symbol, days) and are
// read-only once stored, so concurrent readers need no coordination.
package pricecache

import "QuantDesk/internal/model"

// Cache is a TTL-bound store for fetched price series.
type Cache interface {
	Get(symbol string, days int) (model.PriceSeries, bool)
	Put(symbol string, days int, series model.PriceSeries)
	Close() error
}

// NoopCache never stores anything; used when caching is disabled.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (*NoopCache) Get(string, int) (model.PriceSeries, bool) { return model.PriceSeries{}, false }
func (*NoopCache) Put(string, int, model.PriceSeries)        {}
func (*NoopCache) Close() error                              { return nil }
