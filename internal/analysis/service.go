// Package analysis composes the price-history provider with the analytics core.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"QuantDesk/internal/model"
	"QuantDesk/internal/portfolio"
	"QuantDesk/internal/provider"
	"QuantDesk/internal/statistics"
)

// Service runs request-scoped analytics over freshly fetched price history.
// It performs no retries of its own; fetch policy lives in the provider stack.
type Service struct {
	provider      provider.Provider
	riskFreeRate  float64
	defaultWindow int
	log           zerolog.Logger
}

// New creates an analysis service. defaultWindow (days) applies when a
// request does not specify its own lookback.
func New(p provider.Provider, riskFreeRate float64, defaultWindow int, log zerolog.Logger) *Service {
	return &Service{
		provider:      p,
		riskFreeRate:  riskFreeRate,
		defaultWindow: defaultWindow,
		log:           log.With().Str("component", "analysis").Logger(),
	}
}

func (s *Service) window(days int) int {
	if days > 0 {
		return days
	}
	return s.defaultWindow
}

// AssetStatistics fetches history for one symbol and derives its statistics.
func (s *Service) AssetStatistics(ctx context.Context, symbol string, days int) (model.AssetStatistics, error) {
	days = s.window(days)
	series, err := s.provider.DailyCloses(ctx, symbol, days)
	if err != nil {
		return model.AssetStatistics{}, missingData(symbol, err)
	}

	stats, err := statistics.Compute(series, days)
	if err != nil {
		return model.AssetStatistics{}, err
	}
	s.log.Debug().Str("symbol", symbol).Int("observations", stats.Observations).Msg("asset statistics computed")
	return stats, nil
}

// PortfolioMetrics fetches history for every holding and runs the risk engine.
// All unfetchable symbols are reported together so the caller can remediate
// in one pass.
func (s *Service) PortfolioMetrics(ctx context.Context, holdings []model.Holding, days int) (*model.PortfolioMetrics, error) {
	if len(holdings) == 0 {
		return nil, model.Errorf(model.KindInvalidParameter, "portfolio cannot be empty")
	}
	days = s.window(days)

	series := make(map[string]model.PriceSeries, len(holdings))
	var missing []string
	var firstErr error
	for _, h := range holdings {
		ps, err := s.provider.DailyCloses(ctx, h.Symbol, days)
		if err != nil {
			missing = append(missing, h.Symbol)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		series[h.Symbol] = ps
	}
	if len(missing) > 0 {
		return nil, missingData(strings.Join(missing, ","), firstErr)
	}

	metrics, err := portfolio.ComputeMetrics(holdings, series, s.riskFreeRate, days)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int("holdings", len(holdings)).
		Int("observations", metrics.Observations).
		Float64("volatility", metrics.Volatility).
		Msg("portfolio metrics computed")
	return metrics, nil
}

// missingData wraps a provider failure as MissingData while keeping the
// provider sentinel reachable through errors.Is.
func missingData(symbol string, err error) error {
	kind := model.SymbolErrorf(model.KindMissingData, symbol, "price history unavailable")
	if errors.Is(err, provider.ErrNotFound) {
		kind = model.SymbolErrorf(model.KindMissingData, symbol, "unknown symbol")
	}
	return fmt.Errorf("%w: %w", kind, err)
}
