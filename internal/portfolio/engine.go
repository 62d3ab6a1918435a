// Package portfolio computes covariance-based risk metrics for a set of holdings.
package portfolio

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"QuantDesk/internal/model"
)

// TradingDays is the annualization base for daily observations.
const TradingDays = 252

// ComputeMetrics derives aggregate portfolio metrics from holdings and their
// historical price series.
//
// Daily simple returns are inner-joined on calendar date across all symbols,
// so the historical sample size is uniform over the portfolio. Returns and
// volatilities stay fractional internally and are converted to percentages
// only in the result; the Sharpe ratio is computed on the fractional values.
func ComputeMetrics(holdings []model.Holding, series map[string]model.PriceSeries, riskFreeRate float64, windowDays int) (*model.PortfolioMetrics, error) {
	if err := validateHoldings(holdings); err != nil {
		return nil, err
	}

	totalValue := 0.0
	for _, h := range holdings {
		totalValue += h.Value()
	}

	aligned, err := alignCloses(holdings, series, windowDays)
	if err != nil {
		return nil, err
	}

	returns, err := dailyReturns(aligned)
	if err != nil {
		return nil, err
	}
	numObs := len(returns[0])

	// Per-symbol weights and annualized statistics (fractional).
	k := len(holdings)
	weights := make([]float64, k)
	annReturns := make([]float64, k)
	annVols := make([]float64, k)
	for i, h := range holdings {
		weights[i] = h.Value() / totalValue
		annReturns[i] = stat.Mean(returns[i], nil) * TradingDays
		annVols[i] = sampleStdDev(returns[i]) * math.Sqrt(TradingDays)
	}

	expectedReturn := 0.0
	for i := range weights {
		expectedReturn += weights[i] * annReturns[i]
	}

	variance := portfolioVariance(returns, weights)
	if variance < 0 {
		// Rounding can nudge w'*Cov*w just below zero for degenerate inputs.
		variance = 0
	}
	volatility := math.Sqrt(variance)
	if volatility == 0 {
		return nil, model.Errorf(model.KindDivisionByZero,
			"portfolio volatility is zero, Sharpe ratio undefined")
	}
	sharpe := (expectedReturn - riskFreeRate) / volatility

	metrics := &model.PortfolioMetrics{
		TotalValue:     totalValue,
		ExpectedReturn: expectedReturn * 100,
		Volatility:     volatility * 100,
		SharpeRatio:    sharpe,
		Observations:   numObs,
		Holdings:       make([]model.HoldingMetrics, k),
	}
	for i, h := range holdings {
		metrics.Holdings[i] = model.HoldingMetrics{
			Symbol:               h.Symbol,
			Shares:               h.Shares,
			CurrentPrice:         h.CurrentPrice,
			Value:                h.Value(),
			Weight:               weights[i],
			AnnualizedReturn:     annReturns[i] * 100,
			AnnualizedVolatility: annVols[i] * 100,
		}
	}
	return metrics, nil
}

func validateHoldings(holdings []model.Holding) error {
	if len(holdings) == 0 {
		return model.Errorf(model.KindInvalidParameter, "portfolio cannot be empty")
	}
	seen := make(map[string]bool, len(holdings))
	for _, h := range holdings {
		if h.Symbol == "" {
			return model.Errorf(model.KindInvalidParameter, "holding symbol cannot be empty")
		}
		if seen[h.Symbol] {
			return model.SymbolErrorf(model.KindInvalidParameter, h.Symbol, "duplicate holding")
		}
		seen[h.Symbol] = true
		if h.Shares <= 0 {
			return model.SymbolErrorf(model.KindInvalidParameter, h.Symbol, "shares must be positive, got %g", h.Shares)
		}
		if h.CurrentPrice <= 0 {
			return model.SymbolErrorf(model.KindInvalidParameter, h.Symbol, "current price must be positive, got %g", h.CurrentPrice)
		}
	}
	return nil
}

// alignCloses inner-joins the daily closes of all holdings on calendar date.
// The result holds one close slice per holding, in holdings order, all of
// equal length; dates missing any symbol are dropped.
func alignCloses(holdings []model.Holding, series map[string]model.PriceSeries, windowDays int) ([][]float64, error) {
	type dayKey struct{ y, m, d int }
	key := func(t time.Time) dayKey {
		y, m, d := t.Date()
		return dayKey{y, int(m), d}
	}

	bySymbol := make([]map[dayKey]float64, len(holdings))
	for i, h := range holdings {
		s, ok := series[h.Symbol]
		if !ok {
			return nil, model.SymbolErrorf(model.KindMissingData, h.Symbol, "no price series provided")
		}
		if windowDays > 0 {
			s = s.Tail(windowDays)
		}
		if s.Len() < 2 {
			return nil, model.SymbolErrorf(model.KindMissingData, h.Symbol,
				"need at least 2 observations in window, got %d", s.Len())
		}
		closes := make(map[dayKey]float64, s.Len())
		for _, p := range s.Points {
			closes[key(p.Time)] = p.Close
		}
		bySymbol[i] = closes
	}

	// Dates present for every symbol, ascending.
	var common []dayKey
	for dk := range bySymbol[0] {
		shared := true
		for _, closes := range bySymbol[1:] {
			if _, ok := closes[dk]; !ok {
				shared = false
				break
			}
		}
		if shared {
			common = append(common, dk)
		}
	}
	sort.Slice(common, func(a, b int) bool {
		if common[a].y != common[b].y {
			return common[a].y < common[b].y
		}
		if common[a].m != common[b].m {
			return common[a].m < common[b].m
		}
		return common[a].d < common[b].d
	})

	if len(common) < 2 {
		return nil, model.Errorf(model.KindInsufficientData,
			"only %d dates shared across all symbols, need at least 2", len(common))
	}

	aligned := make([][]float64, len(holdings))
	for i := range holdings {
		aligned[i] = make([]float64, len(common))
		for j, dk := range common {
			aligned[i][j] = bySymbol[i][dk]
		}
	}
	return aligned, nil
}

// dailyReturns converts aligned close rows into simple percentage returns.
func dailyReturns(aligned [][]float64) ([][]float64, error) {
	returns := make([][]float64, len(aligned))
	for i, closes := range aligned {
		returns[i] = make([]float64, len(closes)-1)
		for j := 1; j < len(closes); j++ {
			if closes[j-1] <= 0 || closes[j] <= 0 {
				return nil, model.Errorf(model.KindDataIntegrity,
					"non-positive close %g breaks return computation", math.Min(closes[j-1], closes[j]))
			}
			returns[i][j-1] = (closes[j] - closes[j-1]) / closes[j-1]
		}
	}
	return returns, nil
}

// portfolioVariance computes w' * Cov * w over the annualized sample
// covariance of the aligned daily-return matrix.
func portfolioVariance(returns [][]float64, weights []float64) float64 {
	k := len(returns)
	numObs := len(returns[0])
	if numObs < 2 {
		// A single aligned return per symbol has no sample variance.
		return 0
	}

	// Observations in rows, symbols in columns, holdings order.
	data := mat.NewDense(numObs, k, nil)
	for i := 0; i < k; i++ {
		for j := 0; j < numObs; j++ {
			data.Set(j, i, returns[i][j])
		}
	}

	cov := mat.NewSymDense(k, nil)
	stat.CovarianceMatrix(cov, data, nil)
	cov.ScaleSym(TradingDays, cov)

	w := mat.NewVecDense(k, weights)
	return mat.Inner(w, cov, w)
}

// sampleStdDev returns the sample standard deviation, treating a single
// observation as zero spread instead of NaN.
func sampleStdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	return stat.StdDev(xs, nil)
}
