package pricing

import (
	"math"

	"QuantDesk/internal/model"
)

// timeValueEpsilon is the threshold below which sigma*sqrt(T) is treated as
// zero and the option collapses to its discounted intrinsic value.
const timeValueEpsilon = 1e-10

// Price computes the Black-Scholes value of a European option.
// Pure function: safe to memoize on the exact parameter tuple.
func Price(p model.OptionParameters) (float64, error) {
	if err := validate(p); err != nil {
		return 0, err
	}

	discountedStrike := p.Strike * math.Exp(-p.RiskFree*p.Maturity)

	// Degenerate time value: d1/d2 are undefined, fall back to the
	// discounted intrinsic value instead of propagating NaN.
	sigmaSqrtT := p.Volatility * math.Sqrt(p.Maturity)
	if sigmaSqrtT < timeValueEpsilon {
		if p.Type == model.Call {
			return math.Max(p.Spot-discountedStrike, 0), nil
		}
		return math.Max(discountedStrike-p.Spot, 0), nil
	}

	d1 := (math.Log(p.Spot/p.Strike) + (p.RiskFree+0.5*p.Volatility*p.Volatility)*p.Maturity) / sigmaSqrtT
	d2 := d1 - sigmaSqrtT

	if p.Type == model.Call {
		return p.Spot*normCDF(d1) - discountedStrike*normCDF(d2), nil
	}
	return discountedStrike*normCDF(-d2) - p.Spot*normCDF(-d1), nil
}

func validate(p model.OptionParameters) error {
	switch {
	case p.Spot <= 0:
		return model.Errorf(model.KindInvalidParameter, "spot must be positive, got %g", p.Spot)
	case p.Strike <= 0:
		return model.Errorf(model.KindInvalidParameter, "strike must be positive, got %g", p.Strike)
	case p.Maturity <= 0:
		return model.Errorf(model.KindInvalidParameter, "maturity must be positive, got %g", p.Maturity)
	case p.RiskFree < 0:
		return model.Errorf(model.KindInvalidParameter, "risk-free rate must be non-negative, got %g", p.RiskFree)
	case p.Volatility < 0:
		return model.Errorf(model.KindInvalidParameter, "volatility must be non-negative, got %g", p.Volatility)
	case p.Type != model.Call && p.Type != model.Put:
		return model.Errorf(model.KindInvalidParameter, "option type must be call or put, got %q", p.Type)
	}
	return nil
}

// normCDF is the standard normal cumulative distribution function.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
