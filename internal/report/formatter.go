// Package report renders computed analytics as plain text for CLI and
// scheduled output. It consumes plain data structures only.
package report

import (
	"fmt"
	"strings"
	"time"

	"QuantDesk/internal/model"
	"QuantDesk/internal/pricing"
)

// FormatAssetStatistics renders one asset's statistics.
func FormatAssetStatistics(stats model.AssetStatistics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | %s\n", stats.Symbol, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("  Current Price:         %.2f\n", stats.CurrentPrice))
	b.WriteString(fmt.Sprintf("  Period Change:         %+.2f%%\n", stats.PeriodChange))
	b.WriteString(fmt.Sprintf("  Annualized Return:     %+.2f%%\n", stats.AnnualizedReturn))
	b.WriteString(fmt.Sprintf("  Annualized Volatility: %.2f%%\n", stats.AnnualizedVolatility))
	b.WriteString(fmt.Sprintf("  Observations:          %d\n", stats.Observations))
	return b.String()
}

// FormatOptionPrices renders a call/put valuation pair for one parameter set.
func FormatOptionPrices(p model.OptionParameters, call, put float64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Black-Scholes | S=%.2f K=%.2f T=%.2fy r=%.2f%% sigma=%.2f%%\n",
		p.Spot, p.Strike, p.Maturity, p.RiskFree*100, p.Volatility*100))
	b.WriteString(fmt.Sprintf("  Call: %.4f\n", call))
	b.WriteString(fmt.Sprintf("  Put:  %.4f\n", put))
	return b.String()
}

// FormatSurface renders the call-price lattice as an aligned table, one row
// per spot level ascending.
func FormatSurface(grids *pricing.SurfaceGrids) string {
	var b strings.Builder
	b.WriteString("Call price surface (rows: spot, cols: volatility)\n")
	b.WriteString("        ")
	for _, sigma := range grids.Sigmas {
		b.WriteString(fmt.Sprintf("%8.2f", sigma))
	}
	b.WriteString("\n")
	for i, spot := range grids.Spots {
		b.WriteString(fmt.Sprintf("%8.2f", spot))
		for j := range grids.Sigmas {
			b.WriteString(fmt.Sprintf("%8.2f", grids.Call[i][j]))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPortfolioMetrics renders the aggregate metrics and the per-symbol
// breakdown.
func FormatPortfolioMetrics(m *model.PortfolioMetrics) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Portfolio Analysis | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Total Value:     $%.2f\n", m.TotalValue))
	b.WriteString(fmt.Sprintf("Expected Return: %+.2f%%\n", m.ExpectedReturn))
	b.WriteString(fmt.Sprintf("Volatility:      %.2f%%\n", m.Volatility))
	b.WriteString(fmt.Sprintf("Sharpe Ratio:    %.2f\n", m.SharpeRatio))
	b.WriteString(fmt.Sprintf("Sample Size:     %d aligned daily returns\n\n", m.Observations))

	b.WriteString("Holdings:\n")
	for _, h := range m.Holdings {
		b.WriteString(fmt.Sprintf("  %s:\n", h.Symbol))
		b.WriteString(fmt.Sprintf("    Shares:     %.4g\n", h.Shares))
		b.WriteString(fmt.Sprintf("    Price:      $%.2f\n", h.CurrentPrice))
		b.WriteString(fmt.Sprintf("    Value:      $%.2f\n", h.Value))
		b.WriteString(fmt.Sprintf("    Weight:     %.2f%%\n", h.Weight*100))
		b.WriteString(fmt.Sprintf("    Return:     %+.2f%%\n", h.AnnualizedReturn))
		b.WriteString(fmt.Sprintf("    Volatility: %.2f%%\n", h.AnnualizedVolatility))
	}
	return b.String()
}
