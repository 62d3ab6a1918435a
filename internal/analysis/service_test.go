package analysis

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantDesk/internal/model"
	"QuantDesk/internal/provider"
)

func fixedSeries(symbol string, closes ...float64) model.PriceSeries {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	points := make([]model.PricePoint, len(closes))
	for i, c := range closes {
		points[i] = model.PricePoint{Time: start.AddDate(0, 0, i), Close: c}
	}
	return model.PriceSeries{Symbol: symbol, Points: points}
}

func TestAssetStatistics_HappyPath(t *testing.T) {
	mock := &provider.MockProvider{Series: map[string]model.PriceSeries{
		"AAPL": fixedSeries("AAPL", 100, 102, 101, 105),
	}}
	svc := New(mock, 0.05, 365, zerolog.Nop())

	stats, err := svc.AssetStatistics(context.Background(), "AAPL", 0)
	require.NoError(t, err)
	assert.Equal(t, 105.0, stats.CurrentPrice)
	assert.InDelta(t, 5.0, stats.AnnualizedReturn, 1e-9)
}

func TestAssetStatistics_UnknownSymbolIsMissingData(t *testing.T) {
	mock := &provider.MockProvider{}
	svc := New(mock, 0.05, 365, zerolog.Nop())

	_, err := svc.AssetStatistics(context.Background(), "NOPE", 30)
	require.Error(t, err)
	assert.Equal(t, model.KindMissingData, model.KindOf(err))
	// The provider sentinel stays reachable for transport-level mapping.
	assert.ErrorIs(t, err, provider.ErrNotFound)
}

func TestAssetStatistics_UpstreamFailureIsMissingData(t *testing.T) {
	mock := &provider.MockProvider{Err: provider.ErrUnavailable}
	svc := New(mock, 0.05, 365, zerolog.Nop())

	_, err := svc.AssetStatistics(context.Background(), "AAPL", 30)
	require.Error(t, err)
	assert.Equal(t, model.KindMissingData, model.KindOf(err))
	assert.ErrorIs(t, err, provider.ErrUnavailable)
}

func TestPortfolioMetrics_ReportsAllMissingSymbols(t *testing.T) {
	mock := &provider.MockProvider{Series: map[string]model.PriceSeries{
		"AAPL": fixedSeries("AAPL", 100, 102, 101, 105),
	}}
	svc := New(mock, 0.05, 365, zerolog.Nop())

	holdings := []model.Holding{
		{Symbol: "AAPL", Shares: 10, CurrentPrice: 105},
		{Symbol: "GHOST", Shares: 1, CurrentPrice: 50},
		{Symbol: "PHANTOM", Shares: 2, CurrentPrice: 75},
	}
	_, err := svc.PortfolioMetrics(context.Background(), holdings, 0)
	require.Error(t, err)
	assert.Equal(t, model.KindMissingData, model.KindOf(err))

	var me *model.Error
	require.ErrorAs(t, err, &me)
	assert.Contains(t, me.Symbol, "GHOST")
	assert.Contains(t, me.Symbol, "PHANTOM")
	assert.NotContains(t, me.Symbol, "AAPL")
}

func TestPortfolioMetrics_HappyPath(t *testing.T) {
	mock := &provider.MockProvider{Series: map[string]model.PriceSeries{
		"AAPL": fixedSeries("AAPL", 100, 102, 101, 105, 104),
		"MSFT": fixedSeries("MSFT", 300, 303, 301, 308, 306),
	}}
	svc := New(mock, 0.05, 365, zerolog.Nop())

	holdings := []model.Holding{
		{Symbol: "AAPL", Shares: 10, CurrentPrice: 104},
		{Symbol: "MSFT", Shares: 5, CurrentPrice: 306},
	}
	metrics, err := svc.PortfolioMetrics(context.Background(), holdings, 0)
	require.NoError(t, err)

	assert.InDelta(t, 10*104+5*306.0, metrics.TotalValue, 1e-9)
	require.Len(t, metrics.Holdings, 2)
	sum := metrics.Holdings[0].Weight + metrics.Holdings[1].Weight
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestPortfolioMetrics_EmptyPortfolio(t *testing.T) {
	svc := New(&provider.MockProvider{}, 0.05, 365, zerolog.Nop())
	_, err := svc.PortfolioMetrics(context.Background(), nil, 0)
	require.Error(t, err)
	assert.Equal(t, model.KindInvalidParameter, model.KindOf(err))
}
