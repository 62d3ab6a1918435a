package model

import "time"

// PricePoint is one daily closing observation.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds the ordered daily closes for one symbol.
// Timestamps are strictly increasing; the series is consumed read-only.
type PriceSeries struct {
	Symbol    string
	Points    []PricePoint
	FetchedAt time.Time
}

// Len returns the number of observations.
func (s PriceSeries) Len() int { return len(s.Points) }

// Closes returns the closing prices in time order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Tail returns a copy of the series truncated to the most recent n observations.
func (s PriceSeries) Tail(n int) PriceSeries {
	if n <= 0 || n >= len(s.Points) {
		return s
	}
	out := s
	out.Points = s.Points[len(s.Points)-n:]
	return out
}

// AssetStatistics is the derived per-asset summary. Return and volatility
// are percentages; recomputed on each request, never mutated in place.
type AssetStatistics struct {
	Symbol               string  `json:"symbol"`
	CurrentPrice         float64 `json:"current_price"`
	PeriodChange         float64 `json:"period_change"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
	Observations         int     `json:"observations"`
}
