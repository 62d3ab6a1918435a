package pricecache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantDesk/internal/model"
)

func sampleSeries() model.PriceSeries {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	return model.PriceSeries{
		Symbol: "BTC",
		Points: []model.PricePoint{
			{Time: start, Close: 40000},
			{Time: start.AddDate(0, 0, 1), Close: 41000},
		},
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Hour)
	_, ok := c.Get("BTC", 365)
	assert.False(t, ok)

	c.Put("BTC", 365, sampleSeries())
	got, ok := c.Get("BTC", 365)
	require.True(t, ok)
	assert.Equal(t, sampleSeries().Closes(), got.Closes())

	// A different window is a different entry.
	_, ok = c.Get("BTC", 30)
	assert.False(t, ok)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	c.Put("BTC", 365, sampleSeries())
	_, ok := c.Get("BTC", 365)
	require.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = c.Get("BTC", 365)
	assert.False(t, ok)
}

func TestNoopCache_NeverHits(t *testing.T) {
	c := NewNoopCache()
	c.Put("BTC", 365, sampleSeries())
	_, ok := c.Get("BTC", 365)
	assert.False(t, ok)
}
