package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"QuantDesk/internal/holdings"
	"QuantDesk/internal/report"
)

var (
	portfolioFile string
	portfolioDays int
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Compute portfolio risk metrics from a holdings file",
	Long: `Fetch daily history for every position in the holdings file and
compute value weights, expected return, volatility and Sharpe ratio.`,
	RunE: runPortfolio,
}

func init() {
	rootCmd.AddCommand(portfolioCmd)
	portfolioCmd.Flags().StringVar(&portfolioFile, "file", "", "holdings JSON file (defaults to schedule.holdings_file)")
	portfolioCmd.Flags().IntVar(&portfolioDays, "days", 0, "lookback window in calendar days (0 uses the configured default)")
}

func runPortfolio(cmd *cobra.Command, _ []string) error {
	path := portfolioFile
	if path == "" {
		path = cfg.Schedule.HoldingsFile
	}
	if path == "" {
		return fmt.Errorf("no holdings file given; use --file or set schedule.holdings_file")
	}

	hs, err := holdings.Load(path)
	if err != nil {
		return err
	}

	svc, cleanup, err := buildService()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	metrics, err := svc.PortfolioMetrics(ctx, hs, portfolioDays)
	if err != nil {
		return err
	}
	fmt.Print(report.FormatPortfolioMetrics(metrics))
	return nil
}
