// Package statistics derives per-asset summary metrics from a daily price series.
package statistics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"QuantDesk/internal/model"
)

// TradingDays is the annualization base for daily observations.
const TradingDays = 252

// Compute derives AssetStatistics from the most recent windowDays closes of
// the series. A windowDays <= 0 uses the whole series.
//
// The annualized return is the simple endpoint-to-endpoint percentage change
// over the window, while volatility is the sample stdev of daily log returns
// scaled by sqrt(252). The two conventions differ on purpose: downstream
// consumers depend on the endpoint return staying a plain window change.
func Compute(series model.PriceSeries, windowDays int) (model.AssetStatistics, error) {
	if windowDays > 0 {
		series = series.Tail(windowDays)
	}
	closes := series.Closes()

	if len(closes) < 2 {
		return model.AssetStatistics{}, model.SymbolErrorf(model.KindInsufficientData,
			series.Symbol, "need at least 2 observations, got %d", len(closes))
	}
	for i, c := range closes {
		if c <= 0 {
			return model.AssetStatistics{}, model.SymbolErrorf(model.KindDataIntegrity,
				series.Symbol, "non-positive close %g at index %d breaks log returns", c, i)
		}
	}

	current := closes[len(closes)-1]
	previous := closes[len(closes)-2]
	first := closes[0]

	logReturns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		logReturns[i-1] = math.Log(closes[i] / closes[i-1])
	}

	volatility := 0.0
	if len(logReturns) >= 2 {
		volatility = stat.StdDev(logReturns, nil) * math.Sqrt(TradingDays) * 100
	}

	return model.AssetStatistics{
		Symbol:               series.Symbol,
		CurrentPrice:         current,
		PeriodChange:         (current - previous) / previous * 100,
		AnnualizedReturn:     (current - first) / first * 100,
		AnnualizedVolatility: volatility,
		Observations:         len(closes),
	}, nil
}
