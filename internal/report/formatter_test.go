package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"QuantDesk/internal/model"
	"QuantDesk/internal/pricing"
)

func TestFormatPortfolioMetrics(t *testing.T) {
	m := &model.PortfolioMetrics{
		TotalValue:     2000,
		ExpectedReturn: 25.2,
		Volatility:     15.87,
		SharpeRatio:    1.27,
		Observations:   8,
		Holdings: []model.HoldingMetrics{
			{Symbol: "A", Shares: 10, CurrentPrice: 100, Value: 1000, Weight: 0.5, AnnualizedReturn: 25.2, AnnualizedVolatility: 15.87},
			{Symbol: "B", Shares: 5, CurrentPrice: 200, Value: 1000, Weight: 0.5, AnnualizedReturn: 25.2, AnnualizedVolatility: 15.87},
		},
	}
	out := FormatPortfolioMetrics(m)
	assert.Contains(t, out, "Total Value:     $2000.00")
	assert.Contains(t, out, "Expected Return: +25.20%")
	assert.Contains(t, out, "Sharpe Ratio:    1.27")
	assert.Contains(t, out, "Weight:     50.00%")
	assert.Contains(t, out, "A:")
	assert.Contains(t, out, "B:")
}

func TestFormatSurface_RowsFollowSpots(t *testing.T) {
	grids, err := pricing.Surface(model.OptionParameters{
		Strike: 110, Maturity: 1, RiskFree: 0.05,
	}, 50, 150, 0.1, 0.5, 4)
	require.NoError(t, err)

	out := FormatSurface(grids)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header, sigma axis, then one line per spot level.
	assert.Len(t, lines, 2+4)
	assert.Contains(t, lines[2], "50.00")
	assert.Contains(t, lines[5], "150.00")
}

func TestFormatAssetStatistics(t *testing.T) {
	out := FormatAssetStatistics(model.AssetStatistics{
		Symbol: "BTC", CurrentPrice: 40123.45, PeriodChange: -1.5,
		AnnualizedReturn: 80.2, AnnualizedVolatility: 65.3, Observations: 365,
	})
	assert.Contains(t, out, "BTC")
	assert.Contains(t, out, "40123.45")
	assert.Contains(t, out, "-1.50%")
	assert.Contains(t, out, "65.30%")
}
