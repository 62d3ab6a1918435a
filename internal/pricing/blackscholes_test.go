package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantDesk/internal/model"
)

func TestPrice_ReferenceValues(t *testing.T) {
	// Standard textbook scenario: S=100, K=110, T=1, r=5%, sigma=20%.
	base := model.OptionParameters{
		Spot:       100,
		Strike:     110,
		Maturity:   1,
		RiskFree:   0.05,
		Volatility: 0.2,
	}

	base.Type = model.Call
	call, err := Price(base)
	require.NoError(t, err)
	assert.InDelta(t, 6.040, call, 0.01)

	base.Type = model.Put
	put, err := Price(base)
	require.NoError(t, err)
	assert.InDelta(t, 10.675, put, 0.01)
}

func TestPrice_PutCallParity(t *testing.T) {
	cases := []model.OptionParameters{
		{Spot: 100, Strike: 110, Maturity: 1, RiskFree: 0.05, Volatility: 0.2},
		{Spot: 50, Strike: 45, Maturity: 0.25, RiskFree: 0.01, Volatility: 0.6},
		{Spot: 250, Strike: 250, Maturity: 2, RiskFree: 0, Volatility: 0.15},
		{Spot: 10, Strike: 100, Maturity: 5, RiskFree: 0.1, Volatility: 1.2},
	}
	for _, p := range cases {
		p.Type = model.Call
		call, err := Price(p)
		require.NoError(t, err)

		p.Type = model.Put
		put, err := Price(p)
		require.NoError(t, err)

		parity := p.Spot - p.Strike*math.Exp(-p.RiskFree*p.Maturity)
		assert.InDeltaf(t, parity, call-put, 1e-6,
			"parity violated for S=%g K=%g T=%g", p.Spot, p.Strike, p.Maturity)
	}
}

func TestPrice_ZeroVolatilityIsIntrinsic(t *testing.T) {
	p := model.OptionParameters{
		Spot:     120,
		Strike:   100,
		Maturity: 1,
		RiskFree: 0.05,
		Type:     model.Call,
	}
	intrinsic := 120 - 100*math.Exp(-0.05)

	call, err := Price(p)
	require.NoError(t, err)
	assert.InDelta(t, intrinsic, call, 1e-12)

	// Out-of-the-money put at zero volatility is worthless.
	p.Type = model.Put
	put, err := Price(p)
	require.NoError(t, err)
	assert.Zero(t, put)
}

func TestPrice_VanishingVolatilityConverges(t *testing.T) {
	p := model.OptionParameters{
		Spot:     100,
		Strike:   90,
		Maturity: 1,
		RiskFree: 0.03,
		Type:     model.Call,
	}
	intrinsic := 100 - 90*math.Exp(-0.03)

	for _, sigma := range []float64{1e-2, 1e-4, 1e-6} {
		p.Volatility = sigma
		price, err := Price(p)
		require.NoError(t, err)
		assert.InDelta(t, intrinsic, price, 1e-6)
	}
}

func TestPrice_InvalidParameters(t *testing.T) {
	valid := model.OptionParameters{
		Spot: 100, Strike: 110, Maturity: 1, RiskFree: 0.05, Volatility: 0.2, Type: model.Call,
	}
	cases := []struct {
		name   string
		mutate func(*model.OptionParameters)
	}{
		{"zero spot", func(p *model.OptionParameters) { p.Spot = 0 }},
		{"negative spot", func(p *model.OptionParameters) { p.Spot = -10 }},
		{"zero strike", func(p *model.OptionParameters) { p.Strike = 0 }},
		{"zero maturity", func(p *model.OptionParameters) { p.Maturity = 0 }},
		{"negative maturity", func(p *model.OptionParameters) { p.Maturity = -1 }},
		{"negative rate", func(p *model.OptionParameters) { p.RiskFree = -0.01 }},
		{"negative volatility", func(p *model.OptionParameters) { p.Volatility = -0.2 }},
		{"bad type", func(p *model.OptionParameters) { p.Type = "straddle" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := valid
			tc.mutate(&p)
			_, err := Price(p)
			require.Error(t, err)
			assert.Equal(t, model.KindInvalidParameter, model.KindOf(err))
		})
	}
}

func TestPrice_NeverNegative(t *testing.T) {
	for _, spot := range []float64{1, 50, 100, 500} {
		for _, sigma := range []float64{0, 0.05, 0.5, 2} {
			for _, typ := range []model.OptionType{model.Call, model.Put} {
				p := model.OptionParameters{
					Spot: spot, Strike: 100, Maturity: 0.5, RiskFree: 0.02,
					Volatility: sigma, Type: typ,
				}
				price, err := Price(p)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, price, 0.0)
			}
		}
	}
}
