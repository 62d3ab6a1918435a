package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"QuantDesk/internal/model"
	"QuantDesk/internal/pricing"
	"QuantDesk/internal/report"
)

var (
	surfaceStrike   float64
	surfaceMaturity float64
	surfaceRiskFree float64
	surfaceMinSpot  float64
	surfaceMaxSpot  float64
	surfaceMinVol   float64
	surfaceMaxVol   float64
	surfaceGrid     int
)

var surfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Price a (spot, volatility) sensitivity surface",
	Long: `Evaluate call and put prices on a regular lattice over spot and
volatility ranges, with strike, maturity and rate held fixed.

Example:
  quantdesk surface --strike 110 --min-spot 50 --max-spot 150 --min-vol 0.1 --max-vol 0.5`,
	RunE: runSurface,
}

func init() {
	rootCmd.AddCommand(surfaceCmd)
	surfaceCmd.Flags().Float64Var(&surfaceStrike, "strike", 100, "strike price")
	surfaceCmd.Flags().Float64Var(&surfaceMaturity, "maturity", 1, "time to expiry in years")
	surfaceCmd.Flags().Float64Var(&surfaceRiskFree, "rate", 0.05, "annual risk-free rate")
	surfaceCmd.Flags().Float64Var(&surfaceMinSpot, "min-spot", 50, "lower spot bound")
	surfaceCmd.Flags().Float64Var(&surfaceMaxSpot, "max-spot", 150, "upper spot bound")
	surfaceCmd.Flags().Float64Var(&surfaceMinVol, "min-vol", 0.1, "lower volatility bound")
	surfaceCmd.Flags().Float64Var(&surfaceMaxVol, "max-vol", 0.5, "upper volatility bound")
	surfaceCmd.Flags().IntVar(&surfaceGrid, "grid", 0, "lattice size per axis (0 uses the configured default)")
}

func runSurface(_ *cobra.Command, _ []string) error {
	gridSize := surfaceGrid
	if gridSize == 0 {
		gridSize = cfg.Analysis.GridSize
	}

	base := model.OptionParameters{
		Strike:   surfaceStrike,
		Maturity: surfaceMaturity,
		RiskFree: surfaceRiskFree,
	}
	grids, err := pricing.Surface(base, surfaceMinSpot, surfaceMaxSpot, surfaceMinVol, surfaceMaxVol, gridSize)
	if err != nil {
		return err
	}

	fmt.Print(report.FormatSurface(grids))
	return nil
}
