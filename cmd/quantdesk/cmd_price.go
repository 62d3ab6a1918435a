package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"QuantDesk/internal/model"
	"QuantDesk/internal/pricing"
	"QuantDesk/internal/report"
)

var (
	priceSpot       float64
	priceStrike     float64
	priceMaturity   float64
	priceRiskFree   float64
	priceVolatility float64
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Price a European call and put",
	Long: `Price a European call and put option with the Black-Scholes model.

Example:
  quantdesk price --spot 100 --strike 110 --maturity 1 --rate 0.05 --vol 0.2`,
	RunE: runPrice,
}

func init() {
	rootCmd.AddCommand(priceCmd)
	priceCmd.Flags().Float64Var(&priceSpot, "spot", 100, "current asset price")
	priceCmd.Flags().Float64Var(&priceStrike, "strike", 100, "strike price")
	priceCmd.Flags().Float64Var(&priceMaturity, "maturity", 1, "time to expiry in years")
	priceCmd.Flags().Float64Var(&priceRiskFree, "rate", 0.05, "annual risk-free rate")
	priceCmd.Flags().Float64Var(&priceVolatility, "vol", 0.2, "annualized volatility")
}

func runPrice(_ *cobra.Command, _ []string) error {
	params := model.OptionParameters{
		Spot:       priceSpot,
		Strike:     priceStrike,
		Maturity:   priceMaturity,
		RiskFree:   priceRiskFree,
		Volatility: priceVolatility,
	}

	params.Type = model.Call
	call, err := pricing.Price(params)
	if err != nil {
		return err
	}
	params.Type = model.Put
	put, err := pricing.Price(params)
	if err != nil {
		return err
	}

	fmt.Print(report.FormatOptionPrices(params, call, put))
	return nil
}
