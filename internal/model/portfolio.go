package model

// Holding is one position in a portfolio.
type Holding struct {
	Symbol       string  `json:"symbol"`
	Shares       float64 `json:"shares"`        // > 0
	CurrentPrice float64 `json:"current_price"` // > 0
}

// Value returns the market value of the position.
func (h Holding) Value() float64 { return h.Shares * h.CurrentPrice }

// HoldingMetrics is the per-symbol breakdown inside PortfolioMetrics.
// Weight is a fraction of total value; return and volatility are percentages.
type HoldingMetrics struct {
	Symbol               string  `json:"symbol"`
	Shares               float64 `json:"shares"`
	CurrentPrice         float64 `json:"current_price"`
	Value                float64 `json:"value"`
	Weight               float64 `json:"weight"`
	AnnualizedReturn     float64 `json:"annualized_return"`
	AnnualizedVolatility float64 `json:"annualized_volatility"`
}

// PortfolioMetrics is the aggregate result of one risk computation.
// ExpectedReturn and Volatility are percentages; SharpeRatio is unitless.
// The value is regenerated per request and never cached as mutable state.
type PortfolioMetrics struct {
	TotalValue     float64          `json:"total_value"`
	ExpectedReturn float64          `json:"expected_return"`
	Volatility     float64          `json:"volatility"`
	SharpeRatio    float64          `json:"sharpe_ratio"`
	Holdings       []HoldingMetrics `json:"holdings"`
	Observations   int              `json:"observations"` // aligned daily return samples used
}
