package model

// OptionType selects the payoff side of a vanilla European option.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// OptionParameters holds the inputs to one Black-Scholes valuation.
// Values are immutable per pricing call.
type OptionParameters struct {
	Spot       float64    // current underlying price, > 0
	Strike     float64    // strike price, > 0
	Maturity   float64    // time to expiry in years, > 0
	RiskFree   float64    // annual risk-free rate as a decimal, >= 0
	Volatility float64    // annualized volatility as a decimal, >= 0
	Type       OptionType // call or put
}
